package index

import (
	"io"
	"log/slog"

	"github.com/iandees/s3-index-maker/aws/s3/s3types"
)

// Option is a functional option for configuring an Indexer.
type Option func(*Indexer)

// WithLogger configures the indexer with a structured logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Indexer) {
		ix.logger = logger
	}
}

// WithOutput sets where the "Wrote index to ..." lines are printed.
// Default is io.Discard.
func WithOutput(w io.Writer) Option {
	return func(ix *Indexer) {
		ix.out = w
	}
}

// WithDelimiter sets the key delimiter that defines directory levels.
// Default is "/".
func WithDelimiter(delimiter string) Option {
	return func(ix *Indexer) {
		if delimiter != "" {
			ix.delimiter = delimiter
		}
	}
}

// WithURLBase sets the public URL prefix reported for written indexes.
// Default is https://s3.amazonaws.com.
func WithURLBase(base string) Option {
	return func(ix *Indexer) {
		if base != "" {
			ix.urlBase = base
		}
	}
}

// WithWorkers sets how many levels are indexed concurrently. With one
// worker (the default) levels are processed strictly in depth-first order.
func WithWorkers(n int) Option {
	return func(ix *Indexer) {
		if n > 0 {
			ix.workers = n
		}
	}
}

// WithKeepGoing makes a failing level stop only its own subtree instead of
// the whole walk. Failures are collected in Result.Failures.
func WithKeepGoing(keepGoing bool) Option {
	return func(ix *Indexer) {
		ix.keepGoing = keepGoing
	}
}

// WithSink sends rendered pages to w instead of back to the listed storage.
func WithSink(w Writer) Option {
	return func(ix *Indexer) {
		if w != nil {
			ix.writer = w
		}
	}
}

// WithACL sets the canned ACL applied to uploaded pages.
// Default is public-read.
func WithACL(acl s3types.ObjectACL) Option {
	return func(ix *Indexer) {
		ix.acl = acl
	}
}

// WithSkipDirectoryMarkers leaves out the object whose key equals the
// listed prefix, as created by consoles that "create folders". By default
// it is listed as a file with an empty name.
func WithSkipDirectoryMarkers(skip bool) Option {
	return func(ix *Indexer) {
		ix.skipMarkers = skip
	}
}

// WithRelativeFileLinks links files by their name relative to the page
// instead of by their full key.
func WithRelativeFileLinks(relative bool) Option {
	return func(ix *Indexer) {
		ix.relativeFileLinks = relative
	}
}
