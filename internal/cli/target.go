package cli

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme is the only URL scheme accepted for the target argument.
const Scheme = "s3"

// ErrUsage marks errors caused by invalid command-line input.
var ErrUsage = errors.New("usage error")

// ParseTarget splits an s3://bucket/prefix URL into its bucket and prefix.
//
// The prefix is the path after the bucket without its leading slash. It is
// taken literally: percent escapes are not decoded, so any key can be named,
// and "s3://bucket/path" and "s3://bucket/path/" name different prefixes.
// A query or fragment ("?..." or "#...") ends the path.
func ParseTarget(raw string) (bucket, prefix string, err error) {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok || !strings.EqualFold(scheme, Scheme) {
		return "", "", fmt.Errorf("%w: prefix URL %q must start with %s://", ErrUsage, raw, Scheme)
	}

	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("%w: prefix URL %q has no bucket", ErrUsage, raw)
	}
	return bucket, prefix, nil
}
