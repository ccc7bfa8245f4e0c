// Package storage holds the destinations product images can be written to.
package storage

import (
	"context"
	"io"
)

type PutInput struct {
	Filename    string
	ContentType string
	Extension   string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

// Storage persists one image and returns the URL the catalog records for it.
type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
