// Package storage defines the interface for object storage operations.
// The MinIO implementation works with any S3-compatible provider.
package storage

import "context"

// ObjectStorage is the surface the upload service needs from the object store.
type ObjectStorage interface {
	// Put writes data under key in the given bucket.
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
	// Remove deletes the object identified by bucket and key.
	Remove(ctx context.Context, bucket, key string) error
}
