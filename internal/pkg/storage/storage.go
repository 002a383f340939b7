package storage

import (
	"context"
	"io"
)

// Storage is the object store used for user uploads such as avatars.
type Storage interface {
	io.Closer

	// PutObject streams r into bucket/key. A negative opts.Size means the
	// length is unknown and the backend uploads in parts.
	PutObject(ctx context.Context, bucket, key string, r io.Reader, opts PutOptions) (ObjectInfo, error)
	// DeleteObject removes bucket/key. Deleting a missing object is not an error.
	DeleteObject(ctx context.Context, bucket, key string) error
}

// PutOptions configures upload behavior.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Bucket string
	Key    string
	Size   int64
	ETag   string
}
