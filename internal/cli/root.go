// Package cli implements the s3-index-maker command line.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iandees/s3-index-maker/aws/s3"
	"github.com/iandees/s3-index-maker/aws/s3/s3types"
	"github.com/iandees/s3-index-maker/index"
)

// StorageFactory builds the storage the walk lists from and, unless a dry
// run is requested, writes to.
type StorageFactory func(ctx context.Context, opts ...s3types.Option) (index.Storage, error)

// DefaultStorage connects to S3 with the default credential chain.
func DefaultStorage(ctx context.Context, opts ...s3types.Option) (index.Storage, error) {
	client, err := s3.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// flags holds the parsed command-line configuration.
type flags struct {
	region     string
	endpoint   string
	pathStyle  bool
	profile    string
	maxRetries int
	timeout    time.Duration

	delimiter     string
	urlBase       string
	acl           string
	workers       int
	keepGoing     bool
	outputDir     string
	relativeLinks bool
	skipMarkers   bool

	logLevel  string
	logFormat string
}

// clientOptions translates the connection flags into client options.
func (f *flags) clientOptions() []s3types.Option {
	opts := []s3types.Option{
		s3.WithMaxRetries(f.maxRetries),
		s3.WithForcePathStyle(f.pathStyle),
	}
	if f.region != "" {
		opts = append(opts, s3.WithRegion(f.region))
	}
	if f.endpoint != "" {
		opts = append(opts, s3.WithEndpoint(f.endpoint))
	}
	if f.profile != "" {
		opts = append(opts, s3.WithProfile(f.profile))
	}
	if f.timeout > 0 {
		opts = append(opts, s3.WithTimeout(f.timeout))
	}
	return opts
}

// NewRootCommand creates the s3-index-maker command. A nil factory uses
// DefaultStorage.
func NewRootCommand(factory StorageFactory) *cobra.Command {
	if factory == nil {
		factory = DefaultStorage
	}
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "s3-index-maker [flags] s3://bucket/prefix/",
		Short: "Write an index.html at every level of an S3 prefix",
		Long: `s3-index-maker walks every level below an S3 prefix and writes a
browsable index.html into each one, listing the level's subdirectories and
files with their sizes and modification times.

Pages are uploaded with the public-read ACL. Use --output-dir to write them
to a local directory instead.`,
		Example: `  s3-index-maker s3://my-bucket/releases/
  s3-index-maker --workers 8 --keep-going s3://my-bucket/
  s3-index-maker --output-dir ./preview s3://my-bucket/data/`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], f, factory)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.region, "region", "", "AWS region (default from the AWS config, else us-east-1)")
	fl.StringVar(&f.endpoint, "endpoint", "", "custom S3 endpoint URL for S3-compatible services")
	fl.BoolVar(&f.pathStyle, "path-style", false, "use path-style bucket addressing")
	fl.StringVar(&f.profile, "profile", "", "shared config profile to load credentials from")
	fl.IntVar(&f.maxRetries, "max-retries", 3, "maximum attempts per S3 request")
	fl.DurationVar(&f.timeout, "timeout", 0, "HTTP timeout per S3 request (0 disables)")

	fl.StringVar(&f.delimiter, "delimiter", s3.DefaultDelimiter, "key delimiter that separates directory levels")
	fl.StringVar(&f.urlBase, "url-base", index.DefaultURLBase, "URL prefix shown for written indexes")
	fl.StringVar(&f.acl, "acl", string(s3types.ACLPublicRead), "canned ACL applied to uploaded indexes")
	fl.IntVarP(&f.workers, "workers", "w", 1, "number of levels indexed concurrently")
	fl.BoolVarP(&f.keepGoing, "keep-going", "k", false, "continue with other levels when one fails")
	fl.StringVarP(&f.outputDir, "output-dir", "o", "", "write indexes below this local directory instead of uploading")
	fl.BoolVar(&f.relativeLinks, "relative-links", false, "link files relative to the index instead of by full key")
	fl.BoolVar(&f.skipMarkers, "skip-markers", false, "leave out the empty object named like the directory itself")

	fl.StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fl.StringVar(&f.logFormat, "log-format", LogFormatText, "log format (text, json)")

	return cmd
}

func run(cmd *cobra.Command, target string, f *flags, factory StorageFactory) error {
	bucket, prefix, err := ParseTarget(target)
	if err != nil {
		return err
	}
	if f.workers < 1 {
		return fmt.Errorf("%w: --workers must be at least 1", ErrUsage)
	}

	logger, err := NewLogger(cmd.ErrOrStderr(), f.logLevel, f.logFormat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processing bucket '%s', prefix '%s'\n", bucket, prefix)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	storage, err := factory(ctx, f.clientOptions()...)
	if err != nil {
		return fmt.Errorf("connect to s3: %w", err)
	}

	opts := []index.Option{
		index.WithLogger(logger),
		index.WithOutput(out),
		index.WithDelimiter(f.delimiter),
		index.WithURLBase(f.urlBase),
		index.WithACL(s3types.ObjectACL(f.acl)),
		index.WithWorkers(f.workers),
		index.WithKeepGoing(f.keepGoing),
		index.WithRelativeFileLinks(f.relativeLinks),
		index.WithSkipDirectoryMarkers(f.skipMarkers),
	}
	if f.outputDir != "" {
		logger.Info("dry run, writing indexes locally", "dir", f.outputDir)
		opts = append(opts, index.WithSink(index.NewOSSink(f.outputDir)))
	}

	result, err := index.New(storage, opts...).Process(ctx, bucket, prefix)
	if result != nil {
		logger.Info("indexing finished",
			"bucket", bucket,
			"prefix", prefix,
			"indexes", len(result.Indexes),
			"failures", len(result.Failures),
			"duration", result.Duration,
		)
		printFailures(cmd.ErrOrStderr(), result.Failures)
	}
	return err
}

// Execute runs the root command against S3.
func Execute(ctx context.Context) error {
	return NewRootCommand(nil).ExecuteContext(ctx)
}
