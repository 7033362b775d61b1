// Package appfiles stores distributed app binaries in a blob bucket.
package appfiles

import (
	"context"
	"io"
	"log/slog"

	"mealbell/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local bucket driver for development
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket *blob.Bucket
}

// StoreParams holds dependencies for the app file store, injected by Fx
type StoreParams struct {
	fx.In

	Lc        fx.Lifecycle
	Ctx       context.Context
	Logger    *slog.Logger
	BucketURL string `name:"appFilesBucketURL"`
}

// NewBlobStore opens the configured bucket and registers its shutdown hook.
func NewBlobStore(params StoreParams) (service.AppFileStore, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", params.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing app file bucket")

			return bucket.Close()
		},
	})

	return &blobStore{bucket: bucket}, nil
}

// Save stores the binary under name, replacing any previous version.
func (s *blobStore) Save(ctx context.Context, name string, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", name)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return errors.Wrapf(err, "write %s", name)
	}

	return errors.Wrapf(w.Close(), "close writer for %s", name)
}

// Open returns a reader for the stored binary and its content type.
func (s *blobStore) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, name, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrFileNotFound
		}

		return nil, "", errors.Wrapf(err, "open reader for %s", name)
	}

	return r, r.ContentType(), nil
}
