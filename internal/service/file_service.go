package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"fitbyte-be/internal/metrics"
	"fitbyte-be/internal/models"
	"fitbyte-be/internal/storage"
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// FileService validates uploads and stores them in object storage
type FileService interface {
	Upload(ctx context.Context, file io.Reader, size int64) (*models.FileResponse, error)
}

type fileService struct {
	storage  storage.ObjectStorage
	maxBytes int64
	metrics  *metrics.Metrics
}

// NewFileService creates a file service accepting images up to maxBytes
func NewFileService(store storage.ObjectStorage, maxBytes int64, m *metrics.Metrics) FileService {
	return &fileService{storage: store, maxBytes: maxBytes, metrics: m}
}

// Upload checks size and sniffed content type, then stores the file under a random key.
// size is the client-declared length; the body is still read with a hard cap.
func (s *fileService) Upload(ctx context.Context, file io.Reader, size int64) (*models.FileResponse, error) {
	if file == nil {
		s.metrics.RecordUpload("rejected")
		return nil, ErrFileMissing
	}
	if size > s.maxBytes {
		s.metrics.RecordUpload("rejected")
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		s.metrics.RecordUpload("failed")
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		s.metrics.RecordUpload("rejected")
		return nil, ErrFileMissing
	}
	if int64(len(data)) > s.maxBytes {
		s.metrics.RecordUpload("rejected")
		return nil, ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !allowedUploadTypes[mtype.String()] {
		s.metrics.RecordUpload("rejected")
		return nil, ErrUnsupportedFileType
	}

	key := uuid.NewString() + mtype.Extension()
	uri, err := s.storage.Upload(ctx, key, mtype.String(), bytes.NewReader(data), int64(len(data)))
	if err != nil {
		s.metrics.RecordUpload("failed")
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	s.metrics.RecordUpload("stored")
	return &models.FileResponse{URI: uri}, nil
}
