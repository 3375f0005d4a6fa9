package storage

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path"
	"strings"
	"time"

	"internova/config"
	deliverycontext "internova/internal/delivery/context"
	domainerrors "internova/internal/domain/errors"
	"internova/internal/domain/service"
	"internova/internal/errors"
	"internova/internal/util"

	"go.uber.org/fx"
)

const (
	pdfExtension   = ".pdf"
	pdfContentType = "application/pdf"
)

// resumeUploader implements service.ResumeUploader on top of an ArtifactStore.
type resumeUploader struct {
	store   ArtifactStore
	maxSize int64
	prefix  string
	logger  *slog.Logger
	now     func() time.Time
}

// UploaderParams holds dependencies for the resume uploader, injected by Fx.
type UploaderParams struct {
	fx.In

	Store  ArtifactStore
	Config *config.Config
	Logger *slog.Logger
}

// NewResumeUploader is the constructor for resumeUploader.
func NewResumeUploader(params UploaderParams) service.ResumeUploader {
	maxSize, prefix := config.DefaultMaxResumeSize, ""
	if params.Config != nil && params.Config.Storage != nil {
		if params.Config.Storage.MaxFileSize > 0 {
			maxSize = params.Config.Storage.MaxFileSize
		}
		prefix = params.Config.Storage.Prefix
	}

	return &resumeUploader{
		store:   params.Store,
		maxSize: maxSize,
		prefix:  prefix,
		logger:  params.Logger,
		now:     time.Now,
	}
}

func (u *resumeUploader) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, u.logger)
}

// Upload validates the file, then stores it as a private PDF.
func (u *resumeUploader) Upload(ctx context.Context, upload service.ResumeUpload) (string, error) {
	if err := u.validate(upload); err != nil {
		return "", err
	}

	key := u.objectKey(upload.OwnerID)

	u.log(ctx).Debug("Storing resume",
		slog.Int64("ownerID", upload.OwnerID),
		slog.String("key", key),
		slog.Int64("size", upload.Size),
	)

	url, err := u.store.Put(ctx, key, upload.Reader, pdfContentType)
	if err != nil {
		u.log(ctx).Error("Resume storage failed",
			slog.Int64("ownerID", upload.OwnerID),
			slog.String("key", key),
			slog.Any("error", err),
		)

		return "", errors.Wrap(domainerrors.ErrResumeUploadFailed, err.Error())
	}

	return url, nil
}

// validate checks presence, then size, then type. Nothing is stored on failure.
func (u *resumeUploader) validate(upload service.ResumeUpload) error {
	if upload.Reader == nil || upload.Size <= 0 {
		return domainerrors.ErrResumeRequired
	}

	if upload.Size > u.maxSize {
		limit := util.FormatBytes(u.maxSize)
		received := util.FormatBytes(upload.Size)
		if received == limit {
			received = fmt.Sprintf("%d bytes", upload.Size)
		}

		return domainerrors.NewResumeTooLargeError(limit, received)
	}

	if !strings.EqualFold(path.Ext(upload.FileName), pdfExtension) || !isPDFContentType(upload.ContentType) {
		return domainerrors.ErrResumeUnsupportedType
	}

	return nil
}

func isPDFContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == pdfContentType
}

// objectKey names the artifact after its owner and a nanosecond UTC
// timestamp, e.g. resumes/42_20260301101500123456789_resume.pdf.
func (u *resumeUploader) objectKey(ownerID int64) string {
	now := u.now().UTC()

	return fmt.Sprintf("%s%d_%s%09d_resume%s",
		u.prefix, ownerID, now.Format("20060102150405"), now.Nanosecond(), pdfExtension)
}
