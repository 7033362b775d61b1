package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrFileNotFound is returned when the requested binary is not stored.
var ErrFileNotFound = errors.New("app file not found")

// AppFileStore defines the interface for app binary distribution storage.
type AppFileStore interface {
	// Save stores the uploaded binary under the given file name,
	// replacing any previous version.
	Save(ctx context.Context, name string, contentType string, r io.Reader) error

	// Open returns a reader for the stored binary and its content type.
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
}
