package filesystem

import (
	"context"
	"io"
)

// Storage persists uploaded artifacts (visitor photos, documents, QR codes)
// and returns a dereferenceable URL for each stored object.
type Storage interface {
	Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	Read(ctx context.Context, key string, out io.Writer) error
}
