// Package s3 provides tests for client initialization and configuration.
package s3

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iandees/s3-index-maker/aws/s3/s3types"
	"github.com/iandees/s3-index-maker/internal/testutil"
)

// TestClient_New tests the New() constructor with a caller-supplied AWS config.
func TestClient_New(t *testing.T) {
	tests := []struct {
		name       string
		base       aws.Config
		opts       []s3types.Option
		wantRegion string
		wantRetry  int
	}{
		{
			name:       "region falls back to us-east-1",
			base:       aws.Config{},
			wantRegion: "us-east-1",
			wantRetry:  3,
		},
		{
			name:       "region from aws config",
			base:       aws.Config{Region: "eu-west-1"},
			wantRegion: "eu-west-1",
			wantRetry:  3,
		},
		{
			name:       "region option wins",
			base:       aws.Config{Region: "eu-west-1"},
			opts:       []s3types.Option{WithRegion("us-west-2"), WithMaxRetries(7)},
			wantRegion: "us-west-2",
			wantRetry:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := tt.base
			opts := append([]s3types.Option{WithAWSConfig(&base)}, tt.opts...)

			client, err := New(context.Background(), opts...)
			require.NoError(t, err)
			require.NotNil(t, client)
			assert.NotNil(t, client.s3Client)
			assert.Equal(t, tt.wantRegion, client.Region())
			assert.Equal(t, tt.wantRetry, client.config.RetryMaxAttempts)
		})
	}
}

func TestLoadOptions(t *testing.T) {
	t.Run("default chain", func(t *testing.T) {
		assert.Empty(t, loadOptions(&s3types.ClientConfig{}))
	})

	t.Run("profile and static credentials", func(t *testing.T) {
		cfg := &s3types.ClientConfig{}
		WithProfile("indexer")(cfg)
		WithStaticCredentials("AKID", "SECRET", "TOKEN")(cfg)

		var lo config.LoadOptions
		for _, opt := range loadOptions(cfg) {
			require.NoError(t, opt(&lo))
		}

		assert.Equal(t, "indexer", lo.SharedConfigProfile)
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "AKID", creds.AccessKeyID)
		assert.Equal(t, "SECRET", creds.SecretAccessKey)
		assert.Equal(t, "TOKEN", creds.SessionToken)
	})
}

func TestServiceOptions(t *testing.T) {
	tests := []struct {
		name  string
		cfg   s3types.ClientConfig
		check func(t *testing.T, o *s3.Options)
	}{
		{
			name: "defaults leave options untouched",
			cfg:  s3types.ClientConfig{},
			check: func(t *testing.T, o *s3.Options) {
				assert.Nil(t, o.BaseEndpoint)
				assert.False(t, o.UsePathStyle)
				assert.Nil(t, o.HTTPClient)
			},
		},
		{
			name: "endpoint and path style",
			cfg:  s3types.ClientConfig{Endpoint: "http://localhost:4566", ForcePathStyle: true},
			check: func(t *testing.T, o *s3.Options) {
				assert.Equal(t, "http://localhost:4566", aws.ToString(o.BaseEndpoint))
				assert.True(t, o.UsePathStyle)
			},
		},
		{
			name: "timeout builds an http client",
			cfg:  s3types.ClientConfig{Timeout: 5 * time.Second},
			check: func(t *testing.T, o *s3.Options) {
				hc, ok := o.HTTPClient.(*http.Client)
				require.True(t, ok)
				assert.Equal(t, 5*time.Second, hc.Timeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			o := &s3.Options{}
			for _, fn := range serviceOptions(&cfg) {
				fn(o)
			}
			tt.check(t, o)
		})
	}
}

func TestNewWithClient(t *testing.T) {
	mock := &testutil.MockS3Client{}
	client := NewWithClient(mock)

	require.NotNil(t, client)
	assert.Same(t, mock, client.s3Client)
	assert.Empty(t, client.Region())
}
