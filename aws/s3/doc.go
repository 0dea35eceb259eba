// Package s3 provides a small Go client for the AWS S3 operations used to
// publish directory indexes. It wraps AWS SDK v2 and exposes two calls:
// ListDir, a delimiter listing that transparently follows continuation
// tokens, and Put, a single-request upload with content type and canned ACL.
//
// Credentials come from the AWS default credential chain unless a custom
// aws.Config is supplied. S3-compatible services (MinIO, LocalStack) are
// reached with WithEndpoint and WithForcePathStyle.
//
// Example usage:
//
//	client, err := s3.New(ctx)
//	if err != nil {
//	    return err
//	}
//
//	listing, err := client.ListDir(ctx, "my-bucket", "releases/")
//	if err != nil {
//	    return err
//	}
package s3
