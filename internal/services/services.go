// Package services holds the orchestration flows between the web layer, the
// document store, image storage and the remote model.
package services

import (
	"context"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/models"
)

// ItemStore is the slice of the document store these flows need.
type ItemStore interface {
	CreateItem(ctx context.Context, item *models.FoundItem) error
	ListItems(ctx context.Context) ([]models.FoundItem, error)
	GetItem(ctx context.Context, id string) (*models.FoundItem, error)
	DeleteItem(ctx context.Context, id string) error
}

// Inference is the remote generative model.
type Inference interface {
	DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error)
	Generate(ctx context.Context, prompt string) (string, error)
}
