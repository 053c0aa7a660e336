package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/jpeg"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/gemini"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/models"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/storage"
)

// ErrNoImage is returned when the upload carries no image payload.
var ErrNoImage = errors.New("image is required")

// DefaultLocation is recorded when the reporter leaves the field blank.
const DefaultLocation = "Unknown"

// fallbackDescription keeps the description invariant (never empty) when the
// model answers with no usable text.
const fallbackDescription = "No description available"

const thumbWidth = 200

// Reporter handles the report-found flow: scan, store the image, generate a
// description and persist the record.
type Reporter struct {
	Items     ItemStore
	Images    storage.ImageStore
	Model     Inference
	Scanner   *Scanner
	Publisher *EventPublisher
}

// ReportFound stores the uploaded image and creates the found-item record.
// Any failure leaves no partial state behind: stored blobs are cleaned up
// when the record insert fails, and nothing is written for a rejected upload.
func (r *Reporter) ReportFound(ctx context.Context, originalName string, data []byte, mimeType, location string) (*models.FoundItem, error) {
	if len(data) == 0 {
		return nil, ErrNoImage
	}

	if err := r.Scanner.Scan(ctx, data); err != nil {
		return nil, err
	}

	objectName := storage.ObjectName(originalName)
	contentType := mimeType
	if contentType == "" {
		contentType = storage.ContentTypeFor(filepath.Ext(objectName))
	}

	if err := r.Images.Save(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	// Thumbnail generation is best effort; the full image always remains
	// the source of truth.
	thumbName := r.makeThumbnail(ctx, objectName, data)

	description, err := r.Model.DescribeImage(ctx, data, contentType)
	if errors.Is(err, gemini.ErrNoContent) {
		description = ""
	} else if err != nil {
		r.cleanup(ctx, objectName, thumbName)
		return nil, fmt.Errorf("failed to generate description: %w", err)
	}
	if description == "" {
		description = fallbackDescription
	}

	if location == "" {
		location = DefaultLocation
	}

	item := &models.FoundItem{
		ID:          uuid.New().String(),
		ImagePath:   objectName,
		ThumbPath:   thumbName,
		Description: description,
		Location:    location,
	}

	if err := r.Items.CreateItem(ctx, item); err != nil {
		r.cleanup(ctx, objectName, thumbName)
		return nil, fmt.Errorf("failed to save found item: %w", err)
	}

	if err := r.Publisher.Publish("items.reported", map[string]any{
		"item_id":  item.ID,
		"location": item.Location,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to publish items.reported event")
	}

	return item, nil
}

func (r *Reporter) makeThumbnail(ctx context.Context, objectName string, data []byte) string {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		log.Warn().Str("object", objectName).Err(err).Msg("thumbnail skipped: undecodable image")
		return ""
	}

	preview := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, preview, imaging.JPEG, imaging.JPEGQuality(jpeg.DefaultQuality)); err != nil {
		log.Warn().Str("object", objectName).Err(err).Msg("thumbnail skipped: encode failed")
		return ""
	}

	thumbName := storage.ThumbName(objectName)
	if err := r.Images.Save(ctx, thumbName, &buf, int64(buf.Len()), "image/jpeg"); err != nil {
		log.Warn().Str("object", thumbName).Err(err).Msg("thumbnail skipped: store failed")
		return ""
	}
	return thumbName
}

func (r *Reporter) cleanup(ctx context.Context, objectName, thumbName string) {
	if err := r.Images.Delete(ctx, objectName); err != nil {
		log.Warn().Str("object", objectName).Err(err).Msg("failed to clean up stored image")
	}
	if thumbName == "" {
		return
	}
	if err := r.Images.Delete(ctx, thumbName); err != nil {
		log.Warn().Str("object", thumbName).Err(err).Msg("failed to clean up thumbnail")
	}
}
