// Package s3types provides shared type definitions for the S3 module.
package s3types

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// ObjectACL represents the canned access control list applied to uploaded objects.
type ObjectACL string

// Predefined object ACLs
const (
	// ACLPrivate grants private access (bucket default)
	ACLPrivate ObjectACL = "private"

	// ACLPublicRead grants public read access
	ACLPublicRead ObjectACL = "public-read"

	// ACLBucketOwnerFullControl grants bucket owner full control
	ACLBucketOwnerFullControl ObjectACL = "bucket-owner-full-control"
)

// Object represents an S3 object with its basic metadata.
type Object struct {
	// Key is the S3 object key (path)
	Key string

	// Size is the object size in bytes
	Size int64

	// LastModified is when the object was last modified
	LastModified time.Time
}

// Listing is the complete delimiter listing of a single prefix.
// CommonPrefixes and Objects keep the order in which the pages returned them.
type Listing struct {
	// Prefix is the listed prefix
	Prefix string

	// CommonPrefixes holds the immediate child prefixes, each ending in the delimiter
	CommonPrefixes []string

	// Objects holds the objects directly under Prefix
	Objects []Object

	// Pages is the number of ListObjectsV2 pages that were fetched
	Pages int

	// Duration is how long the listing took
	Duration time.Duration
}

// Configuration types for functional options

// ClientConfig holds configuration for the S3 client.
type ClientConfig struct {
	Region          string
	Endpoint        string
	MaxRetries      int
	Timeout         time.Duration
	ForcePathStyle  bool
	CustomAWSConfig *aws.Config

	// Profile selects a named profile from the shared config files
	Profile string

	// AccessKeyID, SecretAccessKey and SessionToken replace the default
	// credential chain when AccessKeyID is set
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// UploadOptionConfig holds configuration for upload operations via functional options.
type UploadOptionConfig struct {
	ContentType  string
	CacheControl string
	Metadata     map[string]string
	ACL          ObjectACL
}

// ListOptionConfig holds configuration for list operations via functional options.
type ListOptionConfig struct {
	Delimiter string
	MaxKeys   int32
}

type (
	// Option is a functional option for configuring the S3 client.
	Option func(*ClientConfig)
	// UploadOption is a functional option for configuring S3 upload operations.
	UploadOption func(*UploadOptionConfig)
	// ListOption is a functional option for configuring S3 list operations.
	ListOption func(*ListOptionConfig)
)
