// Package storage provides the key-value backends the local stores sit on.
package storage

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// BlobStore keeps one blob per key in a Go CDK bucket.
type BlobStore struct {
	bucket *blob.Bucket
}

var _ repository.KeyValueStore = (*BlobStore)(nil)

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket) *BlobStore {
	return &BlobStore{bucket: bucket}
}

// OpenFileStore opens a bucket backed by the directory at dir, creating it if needed.
func OpenFileStore(dir string) (*BlobStore, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open file bucket %q", dir)
	}

	return NewBlobStore(bucket), nil
}

// OpenMemoryStore opens a process-local bucket. Its content is lost on exit.
func OpenMemoryStore() *BlobStore {
	return NewBlobStore(memblob.OpenBucket(nil))
}

// OpenURLStore opens any bucket URL registered with the Go CDK, e.g. file:///var/lib/storefront or mem://.
func OpenURLStore(ctx context.Context, url string) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %q", url)
	}

	return NewBlobStore(bucket), nil
}

// Get returns the value stored under key, or repository.ErrKeyNotFound.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read blob %q", key)
	}

	return data, nil
}

// Set stores value under key.
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: "application/json"})
	if err != nil {
		return errors.Wrapf(err, "write blob %q", key)
	}

	return nil
}

// Delete removes key; a missing key is not an error.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete blob %q", key)
	}

	return nil
}

// Close releases the bucket.
func (s *BlobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
