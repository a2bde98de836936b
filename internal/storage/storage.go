package storage

import (
	"context"
	"io"
)

// Store persists uploaded product images and returns the location to record
// on the product (a local path or an object URL).
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
