package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iandees/s3-index-maker/index"
)

func TestPrintFailures(t *testing.T) {
	t.Run("nothing to report", func(t *testing.T) {
		var buf bytes.Buffer
		printFailures(&buf, nil)
		assert.Empty(t, buf.String())
	})

	t.Run("one row per failure", func(t *testing.T) {
		var buf bytes.Buffer
		printFailures(&buf, []index.Failure{
			{Prefix: "", Err: errors.New("root listing failed")},
			{Prefix: "logs/2024/", Err: errors.New("access denied")},
		})

		out := buf.String()
		assert.Contains(t, out, "2 level(s) could not be indexed")
		assert.Contains(t, out, "PREFIX")
		assert.Contains(t, out, "(bucket root)")
		assert.Contains(t, out, "root listing failed")
		assert.Contains(t, out, "logs/2024/")
		assert.Contains(t, out, "access denied")
	})
}
