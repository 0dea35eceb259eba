package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantBucket string
		wantPrefix string
		wantErr    bool
	}{
		{name: "bucket and prefix", raw: "s3://bucket/path/", wantBucket: "bucket", wantPrefix: "path/"},
		{name: "nested prefix", raw: "s3://bucket/a/b/c/", wantBucket: "bucket", wantPrefix: "a/b/c/"},
		{name: "bucket root with slash", raw: "s3://bucket/", wantBucket: "bucket", wantPrefix: ""},
		{name: "bucket root", raw: "s3://bucket", wantBucket: "bucket", wantPrefix: ""},
		{name: "prefix without trailing slash", raw: "s3://bucket/path", wantBucket: "bucket", wantPrefix: "path"},
		{name: "escaped slash kept", raw: "s3://bucket/a%2Fb/", wantBucket: "bucket", wantPrefix: "a%2Fb/"},
		{name: "escaped space kept", raw: "s3://bucket/my%20dir/", wantBucket: "bucket", wantPrefix: "my%20dir/"},
		{name: "stray percent", raw: "s3://bucket/100%/", wantBucket: "bucket", wantPrefix: "100%/"},
		{name: "invalid escape", raw: "s3://bucket/%zz", wantBucket: "bucket", wantPrefix: "%zz"},
		{name: "literal space", raw: "s3://bucket/my dir/", wantBucket: "bucket", wantPrefix: "my dir/"},
		{name: "upper-case scheme", raw: "S3://bucket/p/", wantBucket: "bucket", wantPrefix: "p/"},
		{name: "query dropped", raw: "s3://bucket/p/?versions", wantBucket: "bucket", wantPrefix: "p/"},
		{name: "bucket then query", raw: "s3://bucket?x", wantBucket: "bucket", wantPrefix: ""},
		{name: "http scheme", raw: "http://bucket/path", wantErr: true},
		{name: "empty bucket", raw: "s3:///path", wantErr: true},
		{name: "no scheme", raw: "bucket/path", wantErr: true},
		{name: "opaque", raw: "s3:bucket/path", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "query only", raw: "s3://?p", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, prefix, err := ParseTarget(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantPrefix, prefix)
		})
	}
}
