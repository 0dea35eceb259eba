// Package s3 provides client initialization and configuration.
//
// The Client provides a narrow, high-level interface over Amazon S3 for
// the operations the index generator needs: delimiter listings that follow
// continuation tokens, and small object uploads with ACL and content type.
package s3

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/iandees/s3-index-maker/aws/s3/errors"
	"github.com/iandees/s3-index-maker/aws/s3/s3types"
	"github.com/iandees/s3-index-maker/internal/s3api"
)

// Client represents an S3 client with configurable options.
// The client holds no mutable state after construction and is safe for
// concurrent use.
type Client struct {
	// s3Client is the underlying AWS SDK S3 client
	s3Client s3api.S3API

	// config holds the AWS configuration
	config aws.Config
}

// New creates a new S3 client with the provided options.
// It loads AWS credentials using the default credential chain
// and applies the specified configuration options.
//
// Example:
//
//	client, err := s3.New(ctx,
//	    s3.WithRegion("us-west-2"),
//	    s3.WithMaxRetries(3),
//	)
func New(ctx context.Context, opts ...s3types.Option) (*Client, error) {
	clientCfg := &s3types.ClientConfig{
		MaxRetries:     3, // Default retry count
		Timeout:        0, // No timeout by default
		ForcePathStyle: false,
	}

	for _, opt := range opts {
		opt(clientCfg)
	}

	var cfg aws.Config
	var err error

	if clientCfg.CustomAWSConfig != nil {
		cfg = *clientCfg.CustomAWSConfig
	} else {
		cfg, err = config.LoadDefaultConfig(ctx, loadOptions(clientCfg)...)
		if err != nil {
			return nil, errors.NewError("client initialization", err)
		}
	}

	// Apply region from options if specified, otherwise ensure a region is set
	if clientCfg.Region != "" {
		cfg.Region = clientCfg.Region
	} else if cfg.Region == "" {
		cfg.Region = "us-east-1" // AWS default region
	}

	if clientCfg.MaxRetries > 0 {
		cfg.RetryMaxAttempts = clientCfg.MaxRetries
	}

	s3Client := s3.NewFromConfig(cfg, serviceOptions(clientCfg)...)

	return &Client{
		s3Client: s3Client,
		config:   cfg,
	}, nil
}

// loadOptions translates the credential settings into config load options.
func loadOptions(clientCfg *s3types.ClientConfig) []func(*config.LoadOptions) error {
	var loadOpts []func(*config.LoadOptions) error

	if clientCfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(clientCfg.Profile))
	}

	if clientCfg.AccessKeyID != "" {
		provider := credentials.NewStaticCredentialsProvider(
			clientCfg.AccessKeyID,
			clientCfg.SecretAccessKey,
			clientCfg.SessionToken,
		)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(provider))
	}

	return loadOpts
}

// serviceOptions translates the client configuration into S3 service options.
func serviceOptions(clientCfg *s3types.ClientConfig) []func(*s3.Options) {
	var s3Opts []func(*s3.Options)

	// S3-compatible services (MinIO, LocalStack) need a custom endpoint
	if clientCfg.Endpoint != "" {
		endpoint := clientCfg.Endpoint
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}

	if clientCfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	if clientCfg.Timeout > 0 {
		httpClient := &http.Client{
			Timeout: clientCfg.Timeout,
		}
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.HTTPClient = httpClient
		})
	}

	return s3Opts
}

// NewWithClient creates a new S3 client with a custom S3API implementation.
// This is primarily used for testing with mocked clients.
func NewWithClient(s3Client s3api.S3API) *Client {
	return &Client{
		s3Client: s3Client,
		config:   aws.Config{},
	}
}

// Region returns the AWS region the client was configured with.
func (c *Client) Region() string {
	return c.config.Region
}
