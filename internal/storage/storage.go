// internal/storage/storage.go
package storage

import "context"

// ObjectStorage mirrors rendered report artifacts to an S3-compatible
// bucket, keyed by filename.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}
