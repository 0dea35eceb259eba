package errors

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// codeSentinels maps S3 error codes to the sentinels documented in errors.go.
var codeSentinels = map[string]error{
	"AccessDenied":          ErrAccessDenied,
	"AllAccessDisabled":     ErrAccessDenied,
	"NoSuchBucket":          ErrBucketNotFound,
	"InvalidBucketName":     ErrInvalidBucketName,
	"SlowDown":              ErrTooManyRequests,
	"RequestTimeout":        ErrTimeout,
	"InvalidAccessKeyId":    ErrInvalidCredentials,
	"SignatureDoesNotMatch": ErrInvalidCredentials,
	"ExpiredToken":          ErrInvalidCredentials,
}

// Classify attaches the matching sentinel error to err when err carries a
// known S3 API error code. The original error stays in the chain, so both
// errors.Is(err, ErrAccessDenied) and errors.As(err, &smithy.APIError) hold.
// Errors that are already classified, or carry no known code, are returned as is.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range codeSentinels {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if sentinel, ok := codeSentinels[apiErr.ErrorCode()]; ok {
			return fmt.Errorf("%w: %w", sentinel, err)
		}
	}

	return err
}
