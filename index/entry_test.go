package index

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iandees/s3-index-maker/aws/s3/s3types"
)

func TestDirectoryEntry(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		child     string
		delimiter string
		want      Entry
	}{
		{
			name:      "top level",
			prefix:    "",
			child:     "photos/",
			delimiter: "/",
			want:      Entry{Kind: KindDirectory, Name: "photos/", Link: "photos/index.html"},
		},
		{
			name:      "nested",
			prefix:    "a/b/",
			child:     "a/b/c/",
			delimiter: "/",
			want:      Entry{Kind: KindDirectory, Name: "c/", Link: "c/index.html"},
		},
		{
			name:      "prefix without trailing delimiter",
			prefix:    "releases/v1",
			child:     "releases/v1.2/",
			delimiter: "/",
			want:      Entry{Kind: KindDirectory, Name: "v1.2/", Link: ".2/index.html"},
		},
		{
			name:      "custom delimiter",
			prefix:    "logs|",
			child:     "logs|2024|",
			delimiter: "|",
			want:      Entry{Kind: KindDirectory, Name: "2024|", Link: "2024|index.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectoryEntry(tt.prefix, tt.child, tt.delimiter))
		})
	}
}

func TestFileEntry(t *testing.T) {
	modified := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)
	obj := s3types.Object{Key: "a/b/file.tar.gz", Size: 2048, LastModified: modified}

	got := FileEntry("a/b/", obj, "/", false)
	assert.Equal(t, Entry{
		Kind:     KindFile,
		Name:     "file.tar.gz",
		Link:     "a/b/file.tar.gz",
		Size:     2048,
		Modified: modified,
	}, got)

	relative := FileEntry("a/b/", obj, "/", true)
	assert.Equal(t, "file.tar.gz", relative.Link)
	assert.Equal(t, "file.tar.gz", relative.Name)

	top := FileEntry("", s3types.Object{Key: "README"}, "/", false)
	assert.Equal(t, "README", top.Name)
	assert.Equal(t, "README", top.Link)
}

func TestEntry_Columns(t *testing.T) {
	modified := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("EST", -5*3600))

	file := Entry{Kind: KindFile, Size: 1536, Modified: modified}
	assert.Equal(t, "F", file.Marker())
	assert.Equal(t, "1.5KiB", file.SizeText())
	assert.Equal(t, "2024-01-02T03:04:05-05:00", file.ModifiedText())
	assert.Equal(t, "file", file.Kind.String())

	dir := Entry{Kind: KindDirectory}
	assert.Equal(t, "D", dir.Marker())
	assert.Equal(t, "-", dir.SizeText())
	assert.Equal(t, "-", dir.ModifiedText())
	assert.Equal(t, "directory", dir.Kind.String())
}
