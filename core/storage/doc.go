// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a narrow Client interface used to keep
// exported contract snapshots. Both AWS S3 and self-hosted MinIO work.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket checks, see EnsureBucket.
//   - PutObject: uploads a rendered document.
//   - GetObject: retrieves a snapshot as a stream.
//   - ListObjects: lists snapshots under a prefix.
//   - RemoveObject: deletes a snapshot.
//
// A testify mock of Client lives in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	ok, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region, false)
package storage
