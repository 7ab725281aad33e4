package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// MockAssetStore implements domain.AssetStore for testing. Calls records
// the operation order so tests can assert upload-before-destroy.
type MockAssetStore struct {
	UploadFunc  func(ctx context.Context, payload, folder string, width int) (*domain.AssetRef, error)
	DestroyFunc func(ctx context.Context, assetID string) error

	mu    sync.Mutex
	seq   int
	Calls []string
}

// NewMockAssetStore creates a new MockAssetStore with default behaviors
func NewMockAssetStore() *MockAssetStore {
	return &MockAssetStore{}
}

// Upload stores an asset
func (m *MockAssetStore) Upload(ctx context.Context, payload, folder string, width int) (*domain.AssetRef, error) {
	m.record("upload")
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, payload, folder, width)
	}
	m.mu.Lock()
	m.seq++
	id := fmt.Sprintf("%s/asset_%d", folder, m.seq)
	m.mu.Unlock()
	return &domain.AssetRef{AssetID: id, URL: "https://assets.test/" + id}, nil
}

// Destroy removes an asset
func (m *MockAssetStore) Destroy(ctx context.Context, assetID string) error {
	m.record("destroy:" + assetID)
	if m.DestroyFunc != nil {
		return m.DestroyFunc(ctx, assetID)
	}
	return nil
}

func (m *MockAssetStore) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

// Compile-time interface compliance verification
var _ domain.AssetStore = (*MockAssetStore)(nil)
