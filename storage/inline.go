package storage

import (
	"context"
	"io"

	"labisco_server/lib"
)

// Inline keeps the image inside the catalog as a data URI. Nothing is written elsewhere.
type Inline struct{}

func NewInline() *Inline {
	return &Inline{}
}

func (Inline) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return PutResult{}, err
	}
	return PutResult{URL: lib.EncodeDataURI(in.ContentType, data)}, nil
}

func (Inline) Delete(ctx context.Context, key string) error {
	return nil
}

func (Inline) String() string { return "inline" }
