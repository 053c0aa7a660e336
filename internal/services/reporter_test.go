package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/gemini"
)

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestReportFound_EmptyImageRejected(t *testing.T) {
	items := &fakeItemStore{}
	images := newFakeImageStore()
	r := &Reporter{Items: items, Images: images, Model: &fakeInference{}}

	_, err := r.ReportFound(context.Background(), "x.jpg", nil, "image/jpeg", "")
	require.ErrorIs(t, err, ErrNoImage)
	assert.Empty(t, items.items, "no record on rejected upload")
	assert.Zero(t, images.count(), "no file on rejected upload")
}

func TestReportFound_Success(t *testing.T) {
	items := &fakeItemStore{}
	images := newFakeImageStore()
	r := &Reporter{
		Items:  items,
		Images: images,
		Model:  &fakeInference{describeText: "A small red umbrella with a wooden handle."},
	}

	item, err := r.ReportFound(context.Background(), "umbrella.jpg", jpegBytes(t), "image/jpeg", "main hall")
	require.NoError(t, err)

	require.Len(t, items.items, 1)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "A small red umbrella with a wooden handle.", item.Description)
	assert.Equal(t, "main hall", item.Location)

	exists, err := images.Exists(context.Background(), item.ImagePath)
	require.NoError(t, err)
	assert.True(t, exists, "image path must resolve to a stored object")

	require.NotEmpty(t, item.ThumbPath)
	exists, err = images.Exists(context.Background(), item.ThumbPath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestReportFound_DefaultsLocationToUnknown(t *testing.T) {
	r := &Reporter{
		Items:  &fakeItemStore{},
		Images: newFakeImageStore(),
		Model:  &fakeInference{describeText: "desc"},
	}

	item, err := r.ReportFound(context.Background(), "x.jpg", jpegBytes(t), "image/jpeg", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultLocation, item.Location)
}

func TestReportFound_EmptyDescriptionFallsBack(t *testing.T) {
	r := &Reporter{
		Items:  &fakeItemStore{},
		Images: newFakeImageStore(),
		Model:  &fakeInference{describeText: ""},
	}

	item, err := r.ReportFound(context.Background(), "x.jpg", jpegBytes(t), "image/jpeg", "")
	require.NoError(t, err)
	assert.NotEmpty(t, item.Description)
}

func TestReportFound_DescribeFailureCleansUpImage(t *testing.T) {
	items := &fakeItemStore{}
	images := newFakeImageStore()
	r := &Reporter{
		Items:  items,
		Images: images,
		Model:  &fakeInference{describeErr: errors.New("gemini returned status 503")},
	}

	_, err := r.ReportFound(context.Background(), "x.jpg", jpegBytes(t), "image/jpeg", "")
	require.Error(t, err)
	assert.Empty(t, items.items, "no partial row on remote failure")
	assert.Zero(t, images.count(), "stored image cleaned up on remote failure")
}

func TestReportFound_StoreFailureCleansUpImage(t *testing.T) {
	items := &fakeItemStore{createErr: errors.New("connection reset")}
	images := newFakeImageStore()
	r := &Reporter{
		Items:  items,
		Images: images,
		Model:  &fakeInference{describeText: "desc"},
	}

	_, err := r.ReportFound(context.Background(), "x.jpg", jpegBytes(t), "image/jpeg", "")
	require.Error(t, err)
	assert.Zero(t, images.count())
}

func TestReportFound_NoModelTextFallsBackToSentinel(t *testing.T) {
	r := &Reporter{
		Items:  &fakeItemStore{},
		Images: newFakeImageStore(),
		Model:  &fakeInference{describeErr: gemini.ErrNoContent},
	}

	item, err := r.ReportFound(context.Background(), "x.jpg", jpegBytes(t), "image/jpeg", "")
	require.NoError(t, err)
	assert.NotEmpty(t, item.Description)
}

func TestReportFound_StorageWriteFailureCreatesNoRecord(t *testing.T) {
	items := &fakeItemStore{}
	images := newFakeImageStore()
	images.saveErr = errors.New("disk full")
	r := &Reporter{Items: items, Images: images, Model: &fakeInference{describeText: "desc"}}

	_, err := r.ReportFound(context.Background(), "x.jpg", jpegBytes(t), "image/jpeg", "")
	require.Error(t, err)
	assert.Empty(t, items.items)
}

func TestReportFound_UndecodableImageStillStored(t *testing.T) {
	// Not every upload decodes as an image; the thumbnail is skipped but the
	// flow continues.
	items := &fakeItemStore{}
	images := newFakeImageStore()
	r := &Reporter{
		Items:  items,
		Images: images,
		Model:  &fakeInference{describeText: "desc"},
	}

	item, err := r.ReportFound(context.Background(), "blob.bin", []byte{0x01, 0x02}, "application/octet-stream", "")
	require.NoError(t, err)
	assert.Empty(t, item.ThumbPath)
	assert.Equal(t, 1, images.count())
}
