package storage

import (
	"context"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SaveOpenDelete(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	body := "fake image bytes"
	require.NoError(t, store.Save(ctx, "123-photo.jpg", strings.NewReader(body), int64(len(body)), "image/jpeg"))

	exists, err := store.Exists(ctx, "123-photo.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := store.Open(ctx, "123-photo.jpg")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, body, string(got))

	require.NoError(t, store.Delete(ctx, "123-photo.jpg"))
	exists, err = store.Exists(ctx, "123-photo.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocal_DeleteMissingIsTolerated(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-existed.jpg"))
}

func TestLocal_OpenMissing(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open(context.Background(), "missing.jpg")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLocal_SaveIntoSubdirectory(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "thumbs/123-photo.jpg", strings.NewReader("thumb"), 5, "image/jpeg"))
	exists, err := store.Exists(ctx, "thumbs/123-photo.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocal_RejectsTraversal(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	err = store.Save(context.Background(), "../escape.jpg", strings.NewReader("x"), 1, "image/jpeg")
	assert.Error(t, err)
}

func TestObjectName(t *testing.T) {
	name := ObjectName("my photo.jpg")
	assert.Regexp(t, `^\d+-my_photo\.jpg$`, name)

	// empty original names still get a unique object name
	assert.Regexp(t, `^\d+-[0-9a-f-]{36}$`, ObjectName(""))
}

func TestThumbName(t *testing.T) {
	assert.Equal(t, "thumbs/123-photo.jpg", ThumbName("123-photo.png"))
}
