package services

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"sync"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/models"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/store"
)

// fakeItemStore is an in-memory ItemStore that keeps insertion order.
type fakeItemStore struct {
	mu    sync.Mutex
	items []models.FoundItem

	createErr error
	listErr   error
}

func (f *fakeItemStore) CreateItem(ctx context.Context, item *models.FoundItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeItemStore) ListItems(ctx context.Context) ([]models.FoundItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.FoundItem, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeItemStore) GetItem(ctx context.Context, id string) (*models.FoundItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeItemStore) DeleteItem(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// fakeImageStore keeps blobs in a map.
type fakeImageStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	saveErr error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{objects: make(map[string][]byte)}
}

func (f *fakeImageStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[name] = data
	return nil
}

func (f *fakeImageStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeImageStore) Delete(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, name)
	return nil
}

func (f *fakeImageStore) Exists(ctx context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[name]
	return ok, nil
}

func (f *fakeImageStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

// fakeInference returns canned answers.
type fakeInference struct {
	describeText string
	describeErr  error

	generateText string
	generateErr  error
	lastPrompt   string
}

func (f *fakeInference) DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	return f.describeText, f.describeErr
}

func (f *fakeInference) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.generateText, f.generateErr
}
