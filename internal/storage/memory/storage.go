package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/gameutils/internal/model"
	"github.com/mcoot/gameutils/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu        sync.RWMutex
	documents map[string][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		documents: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveDocument(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[name] = append([]byte(nil), data...)
	return nil
}

func (s *Storage) GetDocument(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.documents[name]
	if !ok {
		return nil, model.ErrDocumentNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *Storage) ListDocuments(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.documents))
	for name := range s.documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
