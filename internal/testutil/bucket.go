package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/iandees/s3-index-maker/internal/s3api"
)

// StoredObject is an object held by Bucket.
type StoredObject struct {
	Key          string
	Body         []byte
	Size         int64
	LastModified time.Time
	ContentType  string
	ACL          types.ObjectCannedACL
}

// PutRecord records one PutObject call accepted by Bucket.
type PutRecord struct {
	Key         string
	Body        []byte
	ContentType string
	ACL         types.ObjectCannedACL
}

// Bucket is an in-memory, single-bucket S3 fake. ListObjectsV2 implements
// prefix and delimiter folding with lexicographic ordering and paginates
// every PageSize entries (objects and common prefixes both count), handing
// out opaque continuation tokens. It is safe for concurrent use.
type Bucket struct {
	// Name is the only bucket name the fake accepts; empty accepts any.
	Name string

	// PageSize overrides the page size requested by the caller when > 0.
	PageSize int

	// ListErrs fails ListObjectsV2 for the given prefixes.
	ListErrs map[string]error

	// PutErrs fails PutObject for the given keys.
	PutErrs map[string]error

	mu        sync.Mutex
	objects   map[string]StoredObject
	puts      []PutRecord
	listCalls []string
}

// NewBucket creates an empty Bucket.
func NewBucket(name string) *Bucket {
	return &Bucket{
		Name:     name,
		ListErrs: map[string]error{},
		PutErrs:  map[string]error{},
		objects:  map[string]StoredObject{},
	}
}

// Add stores an object with the given size and modification time.
func (b *Bucket) Add(key string, size int64, modified time.Time) *Bucket {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = StoredObject{Key: key, Size: size, LastModified: modified}
	return b
}

// Object returns the stored object for key.
func (b *Bucket) Object(key string) (StoredObject, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	obj, ok := b.objects[key]
	return obj, ok
}

// Puts returns the accepted PutObject calls in call order.
func (b *Bucket) Puts() []PutRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]PutRecord(nil), b.puts...)
}

// PutKeys returns the keys of the accepted PutObject calls in call order.
func (b *Bucket) PutKeys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]string, 0, len(b.puts))
	for _, p := range b.puts {
		keys = append(keys, p.Key)
	}
	return keys
}

// ListCalls returns the prefix of every ListObjectsV2 call in call order.
func (b *Bucket) ListCalls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.listCalls...)
}

// listItem is either a common prefix or an object in listing order.
type listItem struct {
	prefix string
	object *StoredObject
}

// ListObjectsV2 implements s3api.S3API.
func (b *Bucket) ListObjectsV2(
	ctx context.Context,
	params *s3.ListObjectsV2Input,
	_ ...func(*s3.Options),
) (*s3.ListObjectsV2Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	prefix := aws.ToString(params.Prefix)
	b.listCalls = append(b.listCalls, prefix)

	if err := b.checkBucket(params.Bucket); err != nil {
		return nil, err
	}
	if err, ok := b.ListErrs[prefix]; ok {
		return nil, err
	}

	items := b.items(prefix, aws.ToString(params.Delimiter))

	offset := 0
	if token := aws.ToString(params.ContinuationToken); token != "" {
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 || n > len(items) {
			return nil, fmt.Errorf("invalid continuation token %q", token)
		}
		offset = n
	}

	pageSize := int(aws.ToInt32(params.MaxKeys))
	if b.PageSize > 0 {
		pageSize = b.PageSize
	}
	if pageSize <= 0 {
		pageSize = 1000
	}

	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}

	out := &s3.ListObjectsV2Output{
		Name:        params.Bucket,
		Prefix:      params.Prefix,
		Delimiter:   params.Delimiter,
		IsTruncated: aws.Bool(end < len(items)),
		KeyCount:    aws.Int32(int32(end - offset)),
	}
	for _, item := range items[offset:end] {
		if item.object != nil {
			out.Contents = append(out.Contents, types.Object{
				Key:          aws.String(item.object.Key),
				Size:         aws.Int64(item.object.Size),
				LastModified: aws.Time(item.object.LastModified),
			})
			continue
		}
		out.CommonPrefixes = append(out.CommonPrefixes, types.CommonPrefix{Prefix: aws.String(item.prefix)})
	}
	if end < len(items) {
		out.NextContinuationToken = aws.String(strconv.Itoa(end))
	}

	return out, nil
}

// items folds the stored keys under prefix into listing order.
func (b *Bucket) items(prefix, delimiter string) []listItem {
	keys := make([]string, 0, len(b.objects))
	for key := range b.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var items []listItem
	seen := map[string]bool{}
	for _, key := range keys {
		rest := key[len(prefix):]
		if delimiter != "" {
			if idx := strings.Index(rest, delimiter); idx >= 0 {
				cp := prefix + rest[:idx+len(delimiter)]
				if !seen[cp] {
					seen[cp] = true
					items = append(items, listItem{prefix: cp})
				}
				continue
			}
		}
		obj := b.objects[key]
		items = append(items, listItem{object: &obj})
	}
	return items
}

// PutObject implements s3api.S3API.
func (b *Bucket) PutObject(
	ctx context.Context,
	params *s3.PutObjectInput,
	_ ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var body []byte
	if params.Body != nil {
		data, err := io.ReadAll(params.Body)
		if err != nil {
			return nil, err
		}
		body = data
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkBucket(params.Bucket); err != nil {
		return nil, err
	}
	key := aws.ToString(params.Key)
	if err, ok := b.PutErrs[key]; ok {
		return nil, err
	}

	b.objects[key] = StoredObject{
		Key:          key,
		Body:         body,
		Size:         int64(len(body)),
		LastModified: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ContentType:  aws.ToString(params.ContentType),
		ACL:          params.ACL,
	}
	b.puts = append(b.puts, PutRecord{
		Key:         key,
		Body:        bytes.Clone(body),
		ContentType: aws.ToString(params.ContentType),
		ACL:         params.ACL,
	})

	return &s3.PutObjectOutput{ETag: aws.String(fmt.Sprintf("%q", strconv.Itoa(len(b.puts))))}, nil
}

func (b *Bucket) checkBucket(name *string) error {
	if b.Name != "" && aws.ToString(name) != b.Name {
		return &types.NoSuchBucket{Message: aws.String("The specified bucket does not exist")}
	}
	return nil
}

var _ s3api.S3API = (*Bucket)(nil)
