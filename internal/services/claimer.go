package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/storage"
)

// Claimer removes a found item once it has been returned to its owner.
type Claimer struct {
	Items     ItemStore
	Images    storage.ImageStore
	Publisher *EventPublisher
}

// Claim deletes the backing image and then the record. The two deletes are
// not transactional: a failure after the file is gone leaves the record in
// place and is surfaced, not rolled back.
func (c *Claimer) Claim(ctx context.Context, id string) error {
	item, err := c.Items.GetItem(ctx, id)
	if err != nil {
		return err
	}

	// A missing backing file is tolerated; Delete no-ops on absent objects.
	if err := c.Images.Delete(ctx, item.ImagePath); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	if item.ThumbPath != "" {
		if err := c.Images.Delete(ctx, item.ThumbPath); err != nil {
			log.Warn().Str("object", item.ThumbPath).Err(err).Msg("failed to delete thumbnail")
		}
	}

	if err := c.Items.DeleteItem(ctx, id); err != nil {
		log.Error().Str("item_id", id).Err(err).Msg("image deleted but record removal failed")
		return fmt.Errorf("failed to delete found item: %w", err)
	}

	if err := c.Publisher.Publish("items.claimed", map[string]any{
		"item_id": id,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to publish items.claimed event")
	}

	return nil
}
