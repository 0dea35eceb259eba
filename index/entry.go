package index

import (
	"strings"
	"time"

	"github.com/iandees/s3-index-maker/aws/s3/s3types"
)

// Kind tells directories and files apart.
type Kind int

const (
	// KindFile is an object directly under the indexed prefix.
	KindFile Kind = iota
	// KindDirectory is a common prefix one level below the indexed prefix.
	KindDirectory
)

// String returns the kind's name.
func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// timeLayout prints timestamps with a numeric zone offset, e.g. 2024-01-02T03:04:05+00:00.
const timeLayout = "2006-01-02T15:04:05-07:00"

// Entry is one row of a rendered index page.
type Entry struct {
	Kind Kind
	// Name is the label; directory names end in the delimiter.
	Name string
	// Link is the href target.
	Link string
	// Size and Modified are only set for files.
	Size     int64
	Modified time.Time
}

// Marker returns the type column: "D" for directories, "F" for files.
func (e Entry) Marker() string {
	if e.Kind == KindDirectory {
		return "D"
	}
	return "F"
}

// ModifiedText returns the last-modified column.
func (e Entry) ModifiedText() string {
	if e.Modified.IsZero() {
		return "-"
	}
	return e.Modified.Format(timeLayout)
}

// SizeText returns the size column.
func (e Entry) SizeText() string {
	if e.Size == 0 {
		return "-"
	}
	return FormatSize(float64(e.Size))
}

// DirectoryEntry builds the entry for the common prefix child listed under prefix.
func DirectoryEntry(prefix, child, delimiter string) Entry {
	name := strings.TrimSuffix(child, delimiter)
	if delimiter != "" {
		if idx := strings.LastIndex(name, delimiter); idx >= 0 {
			name = name[idx+len(delimiter):]
		}
	}
	return Entry{
		Kind: KindDirectory,
		Name: name + delimiter,
		Link: strings.TrimPrefix(child, prefix) + IndexFile,
	}
}

// FileEntry builds the entry for an object listed under prefix. The link is
// the full key unless relative is set, in which case prefix is stripped.
func FileEntry(prefix string, obj s3types.Object, delimiter string, relative bool) Entry {
	name := obj.Key
	if delimiter != "" {
		if idx := strings.LastIndex(name, delimiter); idx >= 0 {
			name = name[idx+len(delimiter):]
		}
	}
	link := obj.Key
	if relative {
		link = strings.TrimPrefix(obj.Key, prefix)
	}
	return Entry{
		Kind:     KindFile,
		Name:     name,
		Link:     link,
		Size:     obj.Size,
		Modified: obj.LastModified,
	}
}
