// Package s3 provides the main S3 client and core operations.
package s3

import (
	"bytes"
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"

	s3errors "github.com/iandees/s3-index-maker/aws/s3/errors"
	"github.com/iandees/s3-index-maker/aws/s3/s3types"
)

const (
	// DefaultContentType is the default content type used when content type detection fails
	DefaultContentType = "application/octet-stream"

	// DefaultDelimiter folds keys into "directories"
	DefaultDelimiter = "/"

	// maxPageSize is the largest page ListObjectsV2 returns
	maxPageSize = 1000

	// maxKeyLength is the S3 limit on object key length in bytes
	maxKeyLength = 1024
)

// ListDir returns the complete delimiter listing of prefix: the immediate
// child prefixes and the objects directly under it.
//
// ListObjectsV2 returns at most 1000 entries per call, so ListDir follows
// NextContinuationToken until a page reports it is not truncated. Common
// prefixes and objects are appended in page order.
//
// Errors:
//   - ErrInvalidInput: If bucket is empty
//   - ErrAccessDenied: If the credentials lack permission to list
//   - ErrBucketNotFound: If the specified bucket doesn't exist
//   - Network errors or AWS SDK errors wrapped in Error type
//
// Example:
//
//	listing, err := client.ListDir(ctx, "my-bucket", "photos/")
//	if err != nil {
//	    return err
//	}
//	for _, p := range listing.CommonPrefixes {
//	    fmt.Println("dir:", p)
//	}
func (c *Client) ListDir(
	ctx context.Context,
	bucket, prefix string,
	opts ...s3types.ListOption,
) (*s3types.Listing, error) {
	if bucket == "" {
		return nil, s3errors.NewError("list", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("bucket name cannot be empty")
	}

	config := &s3types.ListOptionConfig{
		Delimiter: DefaultDelimiter,
		MaxKeys:   maxPageSize,
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.MaxKeys <= 0 || config.MaxKeys > maxPageSize {
		config.MaxKeys = maxPageSize
	}

	startTime := time.Now()
	listing := &s3types.Listing{Prefix: prefix}

	var continuationToken *string
	for {
		input := &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			Prefix:            aws.String(prefix),
			MaxKeys:           aws.Int32(config.MaxKeys),
			ContinuationToken: continuationToken,
		}
		if config.Delimiter != "" {
			input.Delimiter = aws.String(config.Delimiter)
		}

		output, err := c.s3Client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, s3errors.NewError("list", err).WithBucket(bucket).WithKey(prefix)
		}
		listing.Pages++

		for _, cp := range output.CommonPrefixes {
			listing.CommonPrefixes = append(listing.CommonPrefixes, aws.ToString(cp.Prefix))
		}
		for _, obj := range output.Contents {
			listing.Objects = append(listing.Objects, convertObject(obj))
		}

		if !aws.ToBool(output.IsTruncated) {
			break
		}
		if aws.ToString(output.NextContinuationToken) == "" {
			return nil, s3errors.NewError("list", s3errors.ErrInvalidInput).
				WithBucket(bucket).
				WithKey(prefix).
				WithMessage("truncated page without continuation token")
		}
		continuationToken = output.NextContinuationToken
	}

	listing.Duration = time.Since(startTime)
	return listing, nil
}

// convertObject converts an S3 object record to our Object type.
func convertObject(obj types.Object) s3types.Object {
	return s3types.Object{
		Key:          aws.ToString(obj.Key),
		Size:         aws.ToInt64(obj.Size),
		LastModified: aws.ToTime(obj.LastModified),
	}
}

// Put uploads a byte slice to S3 with a single PutObject call.
// When no content type is given it is detected from the data.
//
// Errors:
//   - ErrInvalidInput: If bucket is empty or key is invalid
//   - ErrAccessDenied: If the credentials lack permission to upload or set the ACL
//   - ErrBucketNotFound: If the specified bucket doesn't exist
//   - Network errors or AWS SDK errors wrapped in Error type
//
// Example:
//
//	err := client.Put(ctx, "my-bucket", "docs/index.html", page,
//	    s3.WithContentType("text/html"),
//	    s3.WithACL(s3types.ACLPublicRead),
//	)
func (c *Client) Put(ctx context.Context, bucket, key string, data []byte, opts ...s3types.UploadOption) error {
	if bucket == "" {
		return s3errors.NewError("put", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage("bucket name cannot be empty")
	}
	if msg := validateObjectKey(key); msg != "" {
		return s3errors.NewError("put", s3errors.ErrInvalidInput).
			WithBucket(bucket).
			WithKey(key).
			WithMessage(msg)
	}

	config := &s3types.UploadOptionConfig{
		Metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(config)
	}

	if config.ContentType == "" {
		config.ContentType = detectContentType(data)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(config.ContentType),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if config.ACL != "" {
		input.ACL = types.ObjectCannedACL(config.ACL)
	}
	if config.CacheControl != "" {
		input.CacheControl = aws.String(config.CacheControl)
	}
	if len(config.Metadata) > 0 {
		input.Metadata = config.Metadata
	}

	if _, err := c.s3Client.PutObject(ctx, input); err != nil {
		return s3errors.NewError("put", err).WithBucket(bucket).WithKey(key)
	}

	return nil
}

// detectContentType sniffs the content type of data with mimetype.
func detectContentType(data []byte) string {
	if len(data) == 0 {
		return DefaultContentType
	}
	if mt := mimetype.Detect(data); mt != nil {
		return mt.String()
	}
	return DefaultContentType
}

// validateObjectKey returns a description of what is wrong with key, or "".
func validateObjectKey(key string) string {
	switch {
	case key == "":
		return "object key cannot be empty"
	case len(key) > maxKeyLength:
		return "object key cannot exceed 1024 bytes"
	case !utf8.ValidString(key):
		return "object key must be valid UTF-8"
	case strings.IndexFunc(key, unicode.IsControl) >= 0:
		return "object key cannot contain control characters"
	}
	return ""
}
