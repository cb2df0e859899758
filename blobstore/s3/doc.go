// Package s3 provides an S3 implementation of the blobstore.Store
// interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("fills/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
// # Features
//
//   - Managed multipart uploads for large snapshots
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
