package storage

import "context"

// Storage keeps roster documents: flat player XML stored by name
type Storage interface {
	SaveDocument(ctx context.Context, name string, data []byte) error
	GetDocument(ctx context.Context, name string) ([]byte, error)
	ListDocuments(ctx context.Context) ([]string, error)
}
