package service_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atleti-backend/service"
)

// stubStorage records calls; err forces failures.
type stubStorage struct {
	putBucket      string
	putKey         string
	putData        []byte
	putContentType string

	removedBucket string
	removedKey    string

	err error
}

func (s *stubStorage) Put(_ context.Context, bucket, key string, data []byte, contentType string) error {
	if s.err != nil {
		return s.err
	}
	s.putBucket = bucket
	s.putKey = key
	s.putData = data
	s.putContentType = contentType
	return nil
}

func (s *stubStorage) Remove(_ context.Context, bucket, key string) error {
	if s.err != nil {
		return s.err
	}
	s.removedBucket = bucket
	s.removedKey = key
	return nil
}

func newUploadService(store *stubStorage) *service.UploadService {
	return service.NewUploadService(store,
		"af-cover-image-articles", "https://covers.example.com",
		"af-images-articles", "https://images.example.com")
}

var keyPattern = regexp.MustCompile(`^\d+-[0-9a-f-]{36}\.png$`)

func TestUploadCoverSucceeds(t *testing.T) {
	store := &stubStorage{}
	svc := newUploadService(store)

	data := bytes.Repeat([]byte{0xAB}, 3<<20) // 3 MiB
	result, err := svc.Upload(context.Background(), service.CategoryCover, "team photo.png", "image/png", data)
	require.NoError(t, err)

	assert.Regexp(t, keyPattern, result.Key)
	assert.Equal(t, "https://covers.example.com/"+result.Key, result.URL)
	assert.EqualValues(t, len(data), result.Size)
	assert.Equal(t, "image/png", result.MimeType)

	assert.Equal(t, "af-cover-image-articles", store.putBucket)
	assert.Equal(t, result.Key, store.putKey)
	assert.Equal(t, "image/png", store.putContentType)
	assert.Equal(t, data, store.putData)
}

func TestUploadContentTargetsImageBucket(t *testing.T) {
	store := &stubStorage{}
	svc := newUploadService(store)

	result, err := svc.Upload(context.Background(), service.CategoryContent, "pitch.webp", "image/webp", []byte("img"))
	require.NoError(t, err)

	assert.Equal(t, "af-images-articles", store.putBucket)
	assert.True(t, strings.HasPrefix(result.URL, "https://images.example.com/"))
	assert.True(t, strings.HasSuffix(result.Key, ".webp"))
}

func TestUploadRejectsDisallowedMimeType(t *testing.T) {
	store := &stubStorage{}
	svc := newUploadService(store)

	_, err := svc.Upload(context.Background(), service.CategoryCover, "report.pdf", "application/pdf", []byte("%PDF"))
	require.ErrorIs(t, err, service.ErrValidation)
	assert.Contains(t, err.Error(), "image/png", "error must list accepted types")
	assert.Empty(t, store.putKey, "nothing must reach the gateway")
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	store := &stubStorage{}
	svc := newUploadService(store)

	data := make([]byte, 6<<20) // 6 MiB
	_, err := svc.Upload(context.Background(), service.CategoryCover, "huge.png", "image/png", data)
	require.ErrorIs(t, err, service.ErrValidation)
	assert.Contains(t, err.Error(), "5MB")
	assert.Empty(t, store.putKey)
}

func TestUploadExactlyAtLimitSucceeds(t *testing.T) {
	store := &stubStorage{}
	svc := newUploadService(store)

	data := make([]byte, service.MaxFileSize)
	_, err := svc.Upload(context.Background(), service.CategoryCover, "limit.png", "image/png", data)
	assert.NoError(t, err)
}

func TestUploadUnknownCategory(t *testing.T) {
	svc := newUploadService(&stubStorage{})

	_, err := svc.Upload(context.Background(), service.FileCategory("avatars"), "a.png", "image/png", []byte("x"))
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestUploadGatewayFailureIsInternal(t *testing.T) {
	store := &stubStorage{err: errors.New("connection reset")}
	svc := newUploadService(store)

	_, err := svc.Upload(context.Background(), service.CategoryCover, "a.png", "image/png", []byte("x"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrValidation)
	assert.NotErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteFileDelegates(t *testing.T) {
	store := &stubStorage{}
	svc := newUploadService(store)

	err := svc.DeleteFile(context.Background(), "af-cover-image-articles", "123-abc.png")
	require.NoError(t, err)
	assert.Equal(t, "af-cover-image-articles", store.removedBucket)
	assert.Equal(t, "123-abc.png", store.removedKey)

	store.err = errors.New("not reachable")
	err = svc.DeleteFile(context.Background(), "af-cover-image-articles", "123-abc.png")
	assert.Error(t, err)
}

func TestExtractKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain key", "https://covers.example.com/1712-abc.png", "1712-abc.png"},
		{"nested path", "https://covers.example.com/a/b/c.png", "a/b/c.png"},
		{"no path", "https://covers.example.com", ""},
		{"missing scheme", "covers.example.com/key.png", ""},
		{"garbage", "://not a url", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ExtractKeyFromURL(tt.url))
		})
	}
}
