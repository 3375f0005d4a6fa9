package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "internova/internal/delivery/context"
	"internova/internal/domain/entity"
	domainerrors "internova/internal/domain/errors"
	"internova/internal/domain/repository"
	"internova/internal/domain/service"
	"internova/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.StudentProfileRepository
	uploader    service.ResumeUploader
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.StudentProfileRepository
	Uploader    service.ResumeUploader
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		uploader:    params.Uploader,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertStudentProfile uploads the resume and then replaces the whole profile
// in one atomic write. If the write fails after the upload succeeded, the
// stored resume is left behind and its URL is logged for cleanup.
func (srv *profileService) UpsertStudentProfile(
	ctx context.Context,
	accountID int64,
	input *usecase.UpsertStudentProfileInput,
) (*usecase.UpsertStudentProfileOutput, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Upserting student profile", slog.Int64("accountID", accountID))

	resumeURL, err := srv.uploader.Upload(ctx, service.ResumeUpload{
		Reader:      input.Resume.Reader,
		FileName:    input.Resume.FileName,
		ContentType: input.Resume.ContentType,
		Size:        input.Resume.Size,
		OwnerID:     accountID,
	})
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindValidation {
			return nil, err
		}
		if errors.Is(err, domainerrors.ErrResumeUploadFailed) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrResumeUploadFailed, err.Error())
	}

	now := time.Now().UTC()
	profile := &entity.StudentProfile{
		AccountID:    accountID,
		UniversityID: strings.TrimSpace(input.UniversityID),
		Department:   strings.TrimSpace(input.Department),
		GPA:          entity.RoundGPA(input.GPA),
		Skills:       strings.TrimSpace(input.Skills),
		ResumeURL:    resumeURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := srv.profileRepo.Upsert(ctx, profile)
	if err != nil {
		srv.log(ctx).Warn("Profile write failed after resume upload; resume is orphaned",
			slog.Int64("accountID", accountID),
			slog.String("orphanedResumeUrl", resumeURL),
			slog.Any("error", err),
		)

		if domainerrors.KindOf(err) == domainerrors.KindValidation {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrProfileSaveFailed, err.Error())
	}

	srv.log(ctx).Debug("Student profile saved", slog.Int64("accountID", accountID), slog.Int64("profileID", saved.ID))

	return &usecase.UpsertStudentProfileOutput{
		Profile:   saved,
		ResumeURL: saved.ResumeURL,
	}, nil
}

// GetStudentProfile returns the stored profile for the account.
func (srv *profileService) GetStudentProfile(ctx context.Context, accountID int64) (*entity.StudentProfile, error) {
	profile, err := srv.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrStudentProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		srv.log(ctx).Error("Failed to load student profile", slog.Int64("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load student profile")
	}

	return profile, nil
}

// validateProfileInput runs every field check before anything is uploaded.
func validateProfileInput(input *usecase.UpsertStudentProfileInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed
	}

	if strings.TrimSpace(input.UniversityID) == "" {
		return domainerrors.ErrUniversityIDRequired
	}

	if !entity.ValidGPA(input.GPA) {
		return domainerrors.ErrGPAOutOfRange
	}

	if input.Resume == nil || input.Resume.Reader == nil || input.Resume.Size <= 0 {
		return domainerrors.ErrResumeRequired
	}

	return nil
}
