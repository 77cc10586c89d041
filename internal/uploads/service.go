// Package uploads stores submitted resume files and records them in the
// tracker.
package uploads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"jobassist-backend/internal/activity"
	"jobassist-backend/internal/extract"
	"jobassist-backend/internal/shared/storage/object"
	"jobassist-backend/internal/shared/telemetry"
	"jobassist-backend/internal/shared/util"
)

// UploadedContent is the tracker content for every stored upload.
const UploadedContent = "File Uploaded to Server"

// Service saves uploaded files and appends UPLOAD records.
type Service struct {
	Activity    *activity.Service
	Store       object.ObjectStore
	AllowedExts []string
}

func NewService(activitySvc *activity.Service, store object.ObjectStore, allowedExts []string) *Service {
	if len(allowedExts) == 0 {
		allowedExts = []string{"pdf"}
	}
	return &Service{Activity: activitySvc, Store: store, AllowedExts: allowedExts}
}

// Result describes a stored upload.
type Result struct {
	Record     activity.Record `json:"record"`
	StorageKey string          `json:"storageKey"`
	SizeBytes  int64           `json:"sizeBytes"`
	MimeType   string          `json:"mimeType"`
}

// Upload validates the extension, stores the file and appends an UPLOAD
// record labeled with the original file name.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Result, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" || r == nil {
		return Result{}, ErrInvalidInput
	}
	if !s.extAllowed(fileName) {
		return Result{}, ErrUnsupportedFileType
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Result{}, err
	}

	// Extraction is best effort. A scanned or malformed PDF still counts as a
	// successful upload.
	if _, err := extract.TextFromBytes(ctx, data, mimeType, fileName); err != nil {
		telemetry.Info("upload text extraction skipped", map[string]any{
			"storage_key": storageKey,
			"error":       err.Error(),
		})
	}

	record, err := s.Activity.Append(ctx, userID, fileName, activity.ModeUpload, UploadedContent)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Record:     record,
		StorageKey: storageKey,
		SizeBytes:  size,
		MimeType:   mimeType,
	}, nil
}

// Fetch opens a stored upload for reading. Keys are namespaced by the hashed
// owner ID, so a key outside the caller's namespace is treated as absent.
func (s *Service) Fetch(ctx context.Context, userID, storageKey string) (io.ReadCloser, error) {
	storageKey = strings.TrimSpace(storageKey)
	if storageKey == "" {
		return nil, ErrInvalidInput
	}
	if !strings.HasPrefix(storageKey, util.HashUserKey(userID)+"/") {
		return nil, ErrNotFound
	}

	rc, err := s.Store.Open(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, storageKey)
	}
	return rc, nil
}

func (s *Service) extAllowed(fileName string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext == "" {
		return false
	}
	for _, allowed := range s.AllowedExts {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
