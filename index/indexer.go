package index

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/iandees/s3-index-maker/aws/s3"
	"github.com/iandees/s3-index-maker/aws/s3/s3types"
)

const (
	// IndexFile is the name of the page written at every level.
	IndexFile = "index.html"

	// ContentType is the content type pages are stored with.
	ContentType = "text/html"

	// DefaultURLBase prefixes the bucket and key in confirmation lines.
	DefaultURLBase = "https://s3.amazonaws.com"
)

// Lister lists the immediate children of a prefix.
type Lister interface {
	ListDir(ctx context.Context, bucket, prefix string, opts ...s3types.ListOption) (*s3types.Listing, error)
}

// Writer stores a rendered page.
type Writer interface {
	Put(ctx context.Context, bucket, key string, data []byte, opts ...s3types.UploadOption) error
}

// Storage is both halves of the storage contract; *s3.Client implements it.
type Storage interface {
	Lister
	Writer
}

// Locator is implemented by writers that report where a page ended up.
type Locator interface {
	Location(bucket, key string) string
}

// Failure records a level that could not be indexed.
type Failure struct {
	Prefix string
	Err    error
}

// Result summarizes a walk.
type Result struct {
	// Indexes holds the keys of the written pages in write order.
	Indexes []string

	// Failures holds the levels that failed when keep-going is enabled.
	Failures []Failure

	// Duration is how long the walk took
	Duration time.Duration
}

// Err joins the recorded failures, or returns nil when there are none.
func (r *Result) Err() error {
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

// Indexer writes an index page at every level below a prefix.
type Indexer struct {
	lister Lister
	writer Writer

	logger            *slog.Logger
	out               io.Writer
	delimiter         string
	urlBase           string
	acl               s3types.ObjectACL
	workers           int
	keepGoing         bool
	relativeFileLinks bool
	skipMarkers       bool

	// outMu serializes confirmation lines
	outMu sync.Mutex
}

// New creates an Indexer that lists and writes through storage.
func New(storage Storage, opts ...Option) *Indexer {
	ix := &Indexer{
		lister:    storage,
		writer:    storage,
		out:       io.Discard,
		delimiter: s3.DefaultDelimiter,
		urlBase:   DefaultURLBase,
		acl:       s3types.ACLPublicRead,
		workers:   1,
	}
	for _, opt := range opts {
		opt(ix)
	}
	if ix.logger == nil {
		ix.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if ix.out == nil {
		ix.out = io.Discard
	}
	return ix
}

// Process indexes prefix and every level below it.
//
// By default the first listing or upload error stops the walk: no further
// pages are written and the error is returned along with the partial
// result. With keep-going enabled, a failing level is recorded and the walk
// continues with the remaining levels; the returned error joins all failures.
func (ix *Indexer) Process(ctx context.Context, bucket, prefix string) (*Result, error) {
	startTime := time.Now()
	result := &Result{}

	var err error
	if ix.workers > 1 {
		err = ix.processConcurrent(ctx, bucket, prefix, result)
	} else {
		err = ix.processSequential(ctx, bucket, prefix, result)
	}

	result.Duration = time.Since(startTime)
	if err != nil {
		return result, err
	}
	return result, result.Err()
}

// processSequential walks the tree with an explicit stack. Children are
// pushed in reverse so they pop in listing order, which reproduces a
// recursive pre-order walk.
func (ix *Indexer) processSequential(ctx context.Context, bucket, root string, result *Result) error {
	stack := []string{root}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		prefix := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key, children, err := ix.indexLevel(ctx, bucket, prefix)
		if key != "" {
			result.Indexes = append(result.Indexes, key)
		}
		if err != nil {
			if !ix.keepGoing {
				return err
			}
			result.Failures = append(result.Failures, Failure{Prefix: prefix, Err: err})
		}

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil
}

// processConcurrent runs ix.workers goroutines that pull levels from a
// shared queue. Output is the same as the sequential walk; order is not.
func (ix *Indexer) processConcurrent(ctx context.Context, bucket, root string, result *Result) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := newWorkQueue(root)
	stop := context.AfterFunc(ctx, queue.close)
	defer stop()

	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)

	for i := 0; i < ix.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				prefix, ok := queue.pop()
				if !ok {
					return
				}

				key, children, err := ix.indexLevel(ctx, bucket, prefix)

				mu.Lock()
				if key != "" {
					result.Indexes = append(result.Indexes, key)
				}
				if err != nil {
					if ix.keepGoing {
						result.Failures = append(result.Failures, Failure{Prefix: prefix, Err: err})
					} else if firstErr == nil {
						firstErr = err
						cancel()
					}
				}
				mu.Unlock()

				queue.push(children...)
				queue.done()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// indexLevel lists prefix, renders and writes its page, and returns the key
// written (empty when nothing was written) and the child prefixes to visit.
// Children are returned even when only the write failed.
func (ix *Indexer) indexLevel(ctx context.Context, bucket, prefix string) (string, []string, error) {
	logger := ix.logger.With("bucket", bucket, "prefix", prefix)

	listing, err := ix.lister.ListDir(ctx, bucket, prefix, s3.WithDelimiter(ix.delimiter))
	if err != nil {
		return "", nil, fmt.Errorf("index %q: %w", prefix, err)
	}
	logger.Debug("listed prefix",
		"directories", len(listing.CommonPrefixes),
		"objects", len(listing.Objects),
		"pages", listing.Pages,
		"duration", listing.Duration,
	)

	entries := ix.entries(prefix, listing)
	page, err := Render(entries)
	if err != nil {
		return "", listing.CommonPrefixes, fmt.Errorf("index %q: render: %w", prefix, err)
	}

	key := prefix + IndexFile
	err = ix.writer.Put(ctx, bucket, key, []byte(page),
		s3.WithContentType(ContentType),
		s3.WithACL(ix.acl),
	)
	if err != nil {
		return "", listing.CommonPrefixes, fmt.Errorf("index %q: %w", prefix, err)
	}

	location := ix.location(bucket, key)
	ix.outMu.Lock()
	fmt.Fprintf(ix.out, "Wrote index to %s\n", location)
	ix.outMu.Unlock()

	logger.Info("wrote index", "key", key, "entries", len(entries), "location", location)
	return key, listing.CommonPrefixes, nil
}

// entries builds the rows for a listing: directories first, then files,
// each in listing order. The level's own index page is left out, and so is
// the directory marker object (key equal to prefix) when skipMarkers is set.
func (ix *Indexer) entries(prefix string, listing *s3types.Listing) []Entry {
	entries := make([]Entry, 0, len(listing.CommonPrefixes)+len(listing.Objects))
	for _, child := range listing.CommonPrefixes {
		entries = append(entries, DirectoryEntry(prefix, child, ix.delimiter))
	}
	for _, obj := range listing.Objects {
		if ix.skipMarkers && obj.Key == prefix {
			continue
		}
		entry := FileEntry(prefix, obj, ix.delimiter, ix.relativeFileLinks)
		if entry.Name == IndexFile {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// location returns the public address of a written page.
func (ix *Indexer) location(bucket, key string) string {
	if loc, ok := ix.writer.(Locator); ok {
		return loc.Location(bucket, key)
	}
	return strings.TrimSuffix(ix.urlBase, "/") + "/" + bucket + "/" + key
}
