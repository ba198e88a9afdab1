// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so project files (scene files, the asset
// catalog, the model manifest) can be audited straight out of a bucket.
// The abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider and makes
// storage interactions easy to mock for unit testing (see core/storage/mocks).
// Because the audit never mutates assets, the interface is read-only:
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "projects")
package storage
