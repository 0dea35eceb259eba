// Package errors describes failures of the listing and upload calls the
// index generator makes.
//
// Every failure is an *Error naming the operation ("list" or "put"), the
// bucket, and the prefix or key involved, so a failed walk reports which
// level broke. The SDK error stays in the chain; when it carries an S3
// error code that a caller can act on, a sentinel is attached alongside it:
//
//	errors.Is(err, ErrAccessDenied)   // permission or ACL problem
//	errors.As(err, &apiErr)           // smithy.APIError, original code and message
package errors

import (
	"errors"
	"fmt"
)

// Error is a failed S3 call made while indexing.
type Error struct {
	// Op is "list" or "put", or "client initialization"
	Op string

	// Bucket is the S3 bucket name (if applicable)
	Bucket string

	// Key is the listed prefix for "list" and the page key for "put"
	Key string

	// Err is the classified SDK error
	Err error
}

// Error formats as "s3.<op> <bucket>/<key>: <cause>", omitting what is unset.
func (e *Error) Error() string {
	if e.Bucket != "" && e.Key != "" {
		return fmt.Sprintf("s3.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("s3.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("s3.%s object %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("s3.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithBucket adds bucket context to an existing error.
func (e *Error) WithBucket(bucket string) *Error {
	e.Bucket = bucket
	return e
}

// WithKey adds object key context to an existing error.
func (e *Error) WithKey(key string) *Error {
	e.Key = key
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError wraps err for op after running it through Classify.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: Classify(err),
	}
}

// Sentinels attached by Classify. The S3 error codes each one stands for
// are listed with it; codes not listed are left unclassified.
var (
	// ErrBucketNotFound: NoSuchBucket.
	ErrBucketNotFound = errors.New("s3: bucket not found")

	// ErrAccessDenied: AccessDenied, AllAccessDisabled. Returned by PutObject
	// when the caller may not set the public-read ACL, or when the bucket
	// has ACLs disabled.
	ErrAccessDenied = errors.New("s3: access denied")

	// ErrInvalidInput is never derived from an S3 code; ListDir and Put
	// return it for an empty bucket, a bad key, or a truncated listing
	// page without a continuation token.
	ErrInvalidInput = errors.New("s3: invalid input")

	// ErrInvalidBucketName: InvalidBucketName.
	ErrInvalidBucketName = errors.New("s3: invalid bucket name")

	// ErrTooManyRequests: SlowDown, after the SDK's own retries ran out.
	ErrTooManyRequests = errors.New("s3: too many requests")

	// ErrTimeout: RequestTimeout, and context.DeadlineExceeded from a
	// per-request timeout.
	ErrTimeout = errors.New("s3: operation timeout")

	// ErrInvalidCredentials: InvalidAccessKeyId, SignatureDoesNotMatch,
	// ExpiredToken.
	ErrInvalidCredentials = errors.New("s3: invalid credentials")
)

// IsBucketNotFound checks if an error indicates that a bucket was not found.
func IsBucketNotFound(err error) bool {
	return errors.Is(err, ErrBucketNotFound)
}

// IsAccessDenied checks if an error indicates access was denied.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsInvalidInput checks if an error indicates invalid input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
