package service

import (
	"context"
	"time"
)

// StoredObject describes an object held in the image bucket.
type StoredObject struct {
	Key     string
	URL     string
	Size    int64
	ModTime time.Time
}

// ObjectStorage stores uploaded images and exposes them by public URL.
type ObjectStorage interface {
	// Put writes the object and returns its public URL.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)

	// List returns the objects whose keys start with prefix.
	List(ctx context.Context, prefix string) ([]StoredObject, error)

	Close() error
}
