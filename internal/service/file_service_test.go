package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}
)

func TestUploadStoresImages(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		contentType string
		ext         string
	}{
		{"png", pngHeader, "image/png", ".png"},
		{"jpeg", jpegHeader, "image/jpeg", ".jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStorage{}
			svc := NewFileService(store, 102400, nil)

			resp, err := svc.Upload(context.Background(), bytes.NewReader(tt.data), int64(len(tt.data)))
			require.NoError(t, err)
			assert.Equal(t, tt.contentType, store.contentType)
			assert.True(t, strings.HasSuffix(store.key, tt.ext), store.key)
			assert.Len(t, store.key, 36+len(tt.ext))
			assert.Equal(t, tt.data, store.body)
			assert.Equal(t, "https://bucket.s3.example.com/"+store.key, resp.URI)
		})
	}
}

func TestUploadRejections(t *testing.T) {
	ctx := context.Background()
	svc := NewFileService(&fakeStorage{}, 64, nil)

	_, err := svc.Upload(ctx, nil, 0)
	assert.ErrorIs(t, err, ErrFileMissing)

	_, err = svc.Upload(ctx, bytes.NewReader(nil), 0)
	assert.ErrorIs(t, err, ErrFileMissing)

	_, err = svc.Upload(ctx, bytes.NewReader(pngHeader), 65)
	assert.ErrorIs(t, err, ErrFileTooLarge, "declared size over the limit")

	oversized := append(append([]byte{}, pngHeader...), make([]byte, 64)...)
	_, err = svc.Upload(ctx, bytes.NewReader(oversized), 1)
	assert.ErrorIs(t, err, ErrFileTooLarge, "actual size over the limit even when the declared size lies")

	_, err = svc.Upload(ctx, strings.NewReader("GIF89a plain text pretending"), 10)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestUploadStorageFailure(t *testing.T) {
	svc := NewFileService(&fakeStorage{err: errBoom}, 102400, nil)

	_, err := svc.Upload(context.Background(), bytes.NewReader(pngHeader), int64(len(pngHeader)))
	assert.ErrorIs(t, err, errBoom)
}
