package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"internova/config"
	domainerrors "internova/internal/domain/errors"
	"internova/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// recordingStore counts Put calls and can be told to fail.
type recordingStore struct {
	calls int
	keys  []string
	err   error
}

func (s *recordingStore) Put(_ context.Context, key string, r io.Reader, _ string) (string, error) {
	s.calls++
	s.keys = append(s.keys, key)
	if s.err != nil {
		return "", s.err
	}
	_, _ = io.Copy(io.Discard, r)

	return "https://files.example/" + key, nil
}

func newTestUploader(store ArtifactStore) *resumeUploader {
	cfg := &config.Config{Storage: &config.StorageConfig{
		Prefix:      "resumes/",
		MaxFileSize: config.DefaultMaxResumeSize,
	}}

	u, _ := NewResumeUploader(UploaderParams{
		Store:  store,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*resumeUploader)

	return u
}

func pdfUpload(size int) service.ResumeUpload {
	return service.ResumeUpload{
		Reader:      bytes.NewReader(bytes.Repeat([]byte("%"), size)),
		FileName:    "cv.pdf",
		ContentType: "application/pdf",
		Size:        int64(size),
		OwnerID:     42,
	}
}

func TestResumeUploader_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *service.ResumeUpload)
		wantErr error
	}{
		{
			name:    "missing reader",
			mutate:  func(u *service.ResumeUpload) { u.Reader = nil },
			wantErr: domainerrors.ErrResumeRequired,
		},
		{
			name:    "empty file",
			mutate:  func(u *service.ResumeUpload) { u.Size = 0 },
			wantErr: domainerrors.ErrResumeRequired,
		},
		{
			name:    "six megabytes",
			mutate:  func(u *service.ResumeUpload) { u.Size = 6 * 1024 * 1024 },
			wantErr: domainerrors.ErrResumeTooLarge,
		},
		{
			name:    "pdf extension with text content type",
			mutate:  func(u *service.ResumeUpload) { u.ContentType = "text/plain" },
			wantErr: domainerrors.ErrResumeUnsupportedType,
		},
		{
			name:    "pdf content type with docx extension",
			mutate:  func(u *service.ResumeUpload) { u.FileName = "cv.docx" },
			wantErr: domainerrors.ErrResumeUnsupportedType,
		},
		{
			name:    "no extension",
			mutate:  func(u *service.ResumeUpload) { u.FileName = "cv" },
			wantErr: domainerrors.ErrResumeUnsupportedType,
		},
		{
			name: "oversized file with wrong type reports size first",
			mutate: func(u *service.ResumeUpload) {
				u.Size = 6 * 1024 * 1024
				u.ContentType = "image/png"
			},
			wantErr: domainerrors.ErrResumeTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &recordingStore{}
			uploader := newTestUploader(store)

			upload := pdfUpload(1024)
			tt.mutate(&upload)

			url, err := uploader.Upload(context.Background(), upload)
			assert.Empty(t, url)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
			assert.Zero(t, store.calls, "nothing may be stored when validation fails")
		})
	}
}

func TestResumeUploader_TooLargeMessageIncludesSize(t *testing.T) {
	uploader := newTestUploader(&recordingStore{})

	upload := pdfUpload(10)
	upload.Size = 6 * 1024 * 1024

	_, err := uploader.Upload(context.Background(), upload)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Resume file must not exceed 5.0 MB. Received 6.0 MB.", appErr.Message())

	upload.Size = config.DefaultMaxResumeSize + 1
	_, err = uploader.Upload(context.Background(), upload)
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Message(), "Received 5242881 bytes.")
}

func TestResumeUploader_AcceptsCaseInsensitiveType(t *testing.T) {
	store := &recordingStore{}
	uploader := newTestUploader(store)

	upload := pdfUpload(1024)
	upload.FileName = "Jane_CV.PDF"
	upload.ContentType = "Application/PDF; charset=binary"

	url, err := uploader.Upload(context.Background(), upload)
	require.NoError(t, err)
	assert.Equal(t, 1, store.calls)
	assert.True(t, strings.HasPrefix(url, "https://files.example/resumes/42_"))
}

func TestResumeUploader_ExactLimitAccepted(t *testing.T) {
	store := &recordingStore{}
	uploader := newTestUploader(store)

	upload := pdfUpload(16)
	upload.Size = config.DefaultMaxResumeSize

	_, err := uploader.Upload(context.Background(), upload)
	require.NoError(t, err)
	assert.Equal(t, 1, store.calls)
}

func TestResumeUploader_StorageFailureIsTransient(t *testing.T) {
	store := &recordingStore{err: errors.New("bucket unreachable")}
	uploader := newTestUploader(store)

	url, err := uploader.Upload(context.Background(), pdfUpload(1024))
	assert.Empty(t, url)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResumeUploadFailed))
	assert.Equal(t, domainerrors.KindTransient, domainerrors.KindOf(err))
}

func TestResumeUploader_ObjectKey(t *testing.T) {
	uploader := newTestUploader(&recordingStore{})
	uploader.now = func() time.Time {
		return time.Date(2026, 3, 1, 10, 15, 0, 123456789, time.FixedZone("UTC+7", 7*3600))
	}

	assert.Equal(t, "resumes/42_20260301031500123456789_resume.pdf", uploader.objectKey(42))
}

func TestResumeUploader_RepeatedUploadsGetDistinctKeys(t *testing.T) {
	store := &recordingStore{}
	uploader := newTestUploader(store)

	tick := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	uploader.now = func() time.Time {
		tick = tick.Add(time.Nanosecond)

		return tick
	}

	for range 3 {
		_, err := uploader.Upload(context.Background(), pdfUpload(8))
		require.NoError(t, err)
	}

	require.Len(t, store.keys, 3)
	assert.NotEqual(t, store.keys[0], store.keys[1])
	assert.NotEqual(t, store.keys[1], store.keys[2])
}

func TestResumeUploader_StoresIntoBucket(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	uploader := newTestUploader(NewBlobStore(bucket, "https://files.example/"))

	content := bytes.Repeat([]byte("pdf"), 342)
	url, err := uploader.Upload(context.Background(), service.ResumeUpload{
		Reader:      bytes.NewReader(content),
		FileName:    "cv.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		OwnerID:     7,
	})
	require.NoError(t, err)

	key := strings.TrimPrefix(url, "https://files.example/")
	require.True(t, strings.HasPrefix(key, "resumes/7_"))

	stored, err := bucket.ReadAll(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, content, stored)

	attrs, err := bucket.Attributes(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", attrs.ContentType)
}
