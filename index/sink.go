package index

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/iandees/s3-index-maker/aws/s3/s3types"
)

// FSSink writes pages to a filesystem instead of uploading them, mirroring
// the key layout below its root. It is used for dry runs.
type FSSink struct {
	fs   billy.Filesystem
	root string
}

// NewFSSink creates a sink backed by fs. root is only used to report
// locations.
func NewFSSink(fs billy.Filesystem, root string) *FSSink {
	return &FSSink{fs: fs, root: root}
}

// NewOSSink creates a sink that writes below dir on the local disk.
func NewOSSink(dir string) *FSSink {
	return NewFSSink(osfs.New(dir), dir)
}

// Put implements Writer. Upload options have no meaning on a filesystem
// and are ignored.
func (s *FSSink) Put(ctx context.Context, _ string, key string, data []byte, _ ...s3types.UploadOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := path.Dir(key); dir != "." && dir != "/" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("sink: mkdirall %q: %w", dir, err)
		}
	}
	if err := util.WriteFile(s.fs, key, data, 0o644); err != nil {
		return fmt.Errorf("sink: write %q: %w", key, err)
	}
	return nil
}

// Location implements Locator.
func (s *FSSink) Location(_ string, key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// ReadFile returns a page previously written to the sink.
func (s *FSSink) ReadFile(key string) ([]byte, error) {
	data, err := util.ReadFile(s.fs, key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("sink: %q not written: %w", key, err)
		}
		return nil, fmt.Errorf("sink: read %q: %w", key, err)
	}
	return data, nil
}
