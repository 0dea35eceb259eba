package index

import (
	"math"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0B"},
		{1, "1.0B"},
		{10, "10.0B"},
		{1023, "1023.0B"},
		{1024, "1.0KiB"},
		{1536, "1.5KiB"},
		{1048576, "1.0MiB"},
		{5 * math.Pow(1024, 3), "5.0GiB"},
		{math.Pow(1024, 7), "1.0ZiB"},
		{math.Pow(1024, 8), "1.0YiB"},
		{3 * math.Pow(1024, 9), "3072.0YiB"},
		{-1, "-1.0B"},
		{-2048, "-2.0KiB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.in))
		})
	}
}

func TestFormatSize_MagnitudeBelowThreshold(t *testing.T) {
	re := regexp.MustCompile(`^(-?[0-9]+\.[0-9])(|Ki|Mi|Gi|Ti|Pi|Ei|Zi)B$`)

	for n := float64(1); n < math.Pow(1024, 8); n = n*3 + 7 {
		got := FormatSize(n)
		m := re.FindStringSubmatch(got)
		require.NotNil(t, m, "unexpected format %q for %v", got, n)

		v, err := strconv.ParseFloat(m[1], 64)
		require.NoError(t, err)
		// One-decimal rounding can print 1024.0 for values just under the threshold.
		assert.LessOrEqual(t, v, 1024.0, "magnitude too large in %q", got)
	}
}
