package service

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"atleti-backend/metrics"
	"atleti-backend/model"
	"atleti-backend/storage"
)

// FileCategory selects which bucket and public base URL an upload targets.
type FileCategory string

const (
	CategoryCover   FileCategory = "cover"
	CategoryContent FileCategory = "content"
)

// MaxFileSize is the upload size ceiling: 5 MiB.
const MaxFileSize = 5 << 20

var allowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"image/gif",
}

type uploadTarget struct {
	bucket  string
	baseURL string
}

// UploadService validates image uploads, derives storage keys and
// delegates to the object storage gateway.
type UploadService struct {
	store   storage.ObjectStorage
	targets map[FileCategory]uploadTarget
}

// NewUploadService wires the two fixed category targets. Adding a category
// means adding a map entry; call sites stay untouched.
func NewUploadService(store storage.ObjectStorage, bucketCovers, urlCovers, bucketImages, urlImages string) *UploadService {
	return &UploadService{
		store: store,
		targets: map[FileCategory]uploadTarget{
			CategoryCover:   {bucket: bucketCovers, baseURL: urlCovers},
			CategoryContent: {bucket: bucketImages, baseURL: urlImages},
		},
	}
}

// Upload validates the file, stores it under a collision-resistant key and
// returns the public metadata. Uploads are single-shot: a gateway failure
// is surfaced immediately, nothing is retried.
func (s *UploadService) Upload(ctx context.Context, category FileCategory, originalName, mimeType string, data []byte) (*model.UploadResult, error) {
	target, ok := s.targets[category]
	if !ok {
		return nil, fmt.Errorf("%w: unknown upload category %q", ErrValidation, category)
	}

	if !isAllowedImageType(mimeType) {
		metrics.UploadsTotal.WithLabelValues(string(category), "rejected").Inc()
		return nil, fmt.Errorf("%w: file type %q not allowed, accepted types: %s",
			ErrValidation, mimeType, strings.Join(allowedImageTypes, ", "))
	}
	if int64(len(data)) > MaxFileSize {
		metrics.UploadsTotal.WithLabelValues(string(category), "rejected").Inc()
		return nil, fmt.Errorf("%w: file too large, max size is %dMB", ErrValidation, MaxFileSize/1024/1024)
	}

	key := deriveKey(originalName)
	if err := s.store.Put(ctx, target.bucket, key, data, mimeType); err != nil {
		metrics.UploadsTotal.WithLabelValues(string(category), "error").Inc()
		return nil, fmt.Errorf("upload %s to %s: %w", key, target.bucket, err)
	}

	metrics.UploadsTotal.WithLabelValues(string(category), "ok").Inc()
	return &model.UploadResult{
		URL:      target.baseURL + "/" + key,
		Key:      key,
		Size:     int64(len(data)),
		MimeType: mimeType,
	}, nil
}

// DeleteFile removes a previously stored object.
func (s *UploadService) DeleteFile(ctx context.Context, bucket, key string) error {
	if err := s.store.Remove(ctx, bucket, key); err != nil {
		return fmt.Errorf("delete %s from %s: %w", key, bucket, err)
	}
	return nil
}

// ExtractKeyFromURL returns the storage key embedded in a public URL
// (the path minus its leading slash), or "" when the URL is unusable.
func ExtractKeyFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

// deriveKey builds "{millisecond timestamp}-{uuid}.{ext}". Uniqueness needs
// no lookup and concurrent uploads of the same file name cannot collide.
func deriveKey(originalName string) string {
	ext := strings.TrimPrefix(filepath.Ext(originalName), ".")
	id := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.New().String())
	if ext == "" {
		return id
	}
	return id + "." + ext
}

func isAllowedImageType(mimeType string) bool {
	for _, t := range allowedImageTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}
