package impl

import (
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"internova/internal/domain/entity"
	domainerrors "internova/internal/domain/errors"
	"internova/internal/domain/repository"
	"internova/internal/domain/service"
	mockRepo "internova/internal/mocks/repository"
	mockSvc "internova/internal/mocks/service"
	"internova/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testResumeURL = "https://files.example/resumes/5_20260301101500000000001_resume.pdf"

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockStudentProfileRepository
	uploader    *mockSvc.MockResumeUploader
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockStudentProfileRepository(t)
	uploader := mockSvc.NewMockResumeUploader(t)

	service := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		Uploader:    uploader,
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		uploader:    uploader,
	}
}

func validProfileInput() *usecase.UpsertStudentProfileInput {
	return &usecase.UpsertStudentProfileInput{
		UniversityID: " U123 ",
		Department:   " CS ",
		GPA:          3.456,
		Skills:       " Go, SQL ",
		Resume: &usecase.ResumeFile{
			Reader:      bytes.NewReader(make([]byte, 1024)),
			FileName:    "cv.pdf",
			ContentType: "application/pdf",
			Size:        1024,
		},
	}
}

func TestProfileService_Upsert_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.uploader.EXPECT().
		Upload(ctx, mock.MatchedBy(func(u service.ResumeUpload) bool {
			return u.OwnerID == 5 && u.FileName == "cv.pdf" && u.Size == 1024
		})).
		Return(testResumeURL, nil)

	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.StudentProfile")).
		RunAndReturn(func(_ context.Context, p *entity.StudentProfile) (*entity.StudentProfile, error) {
			assert.Equal(t, int64(5), p.AccountID)
			assert.Equal(t, "U123", p.UniversityID)
			assert.Equal(t, "CS", p.Department)
			assert.InDelta(t, 3.46, p.GPA, 1e-9)
			assert.Equal(t, "Go, SQL", p.Skills)
			assert.Equal(t, testResumeURL, p.ResumeURL)
			assert.Equal(t, p.CreatedAt, p.UpdatedAt)

			saved := *p
			saved.ID = 11

			return &saved, nil
		})

	output, err := fx.service.UpsertStudentProfile(ctx, 5, validProfileInput())

	require.NoError(t, err)
	assert.Equal(t, testResumeURL, output.ResumeURL)
	assert.Equal(t, int64(11), output.Profile.ID)
}

func TestProfileService_Upsert_ValidationBeforeUpload(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *usecase.UpsertStudentProfileInput)
		wantErr error
	}{
		{name: "blank university id", mutate: func(in *usecase.UpsertStudentProfileInput) { in.UniversityID = "  " }, wantErr: domainerrors.ErrUniversityIDRequired},
		{name: "gpa above range", mutate: func(in *usecase.UpsertStudentProfileInput) { in.GPA = 4.01 }, wantErr: domainerrors.ErrGPAOutOfRange},
		{name: "gpa below range", mutate: func(in *usecase.UpsertStudentProfileInput) { in.GPA = -0.01 }, wantErr: domainerrors.ErrGPAOutOfRange},
		{name: "gpa not a number", mutate: func(in *usecase.UpsertStudentProfileInput) { in.GPA = math.NaN() }, wantErr: domainerrors.ErrGPAOutOfRange},
		{name: "missing resume", mutate: func(in *usecase.UpsertStudentProfileInput) { in.Resume = nil }, wantErr: domainerrors.ErrResumeRequired},
		{name: "empty resume", mutate: func(in *usecase.UpsertStudentProfileInput) { in.Resume.Size = 0 }, wantErr: domainerrors.ErrResumeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No uploader or repository expectations: nothing may be touched.
			fx := createTestProfileService(t)

			input := validProfileInput()
			tt.mutate(input)

			output, err := fx.service.UpsertStudentProfile(context.Background(), 5, input)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestProfileService_Upsert_GPABoundsInclusive(t *testing.T) {
	for _, gpa := range []float64{0, 4} {
		fx := createTestProfileService(t)
		ctx := context.Background()

		fx.uploader.EXPECT().Upload(ctx, mock.Anything).Return(testResumeURL, nil)
		fx.profileRepo.EXPECT().
			Upsert(ctx, mock.MatchedBy(func(p *entity.StudentProfile) bool { return p.GPA == gpa })).
			RunAndReturn(func(_ context.Context, p *entity.StudentProfile) (*entity.StudentProfile, error) {
				return p, nil
			})

		input := validProfileInput()
		input.GPA = gpa

		_, err := fx.service.UpsertStudentProfile(ctx, 5, input)
		require.NoError(t, err, "gpa %v", gpa)
	}
}

func TestProfileService_Upsert_UploaderValidationPropagates(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.uploader.EXPECT().Upload(ctx, mock.Anything).Return("", domainerrors.ErrResumeUnsupportedType)

	_, err := fx.service.UpsertStudentProfile(ctx, 5, validProfileInput())
	assert.True(t, errors.Is(err, domainerrors.ErrResumeUnsupportedType))
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestProfileService_Upsert_UploadFailureSkipsWrite(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.uploader.EXPECT().Upload(ctx, mock.Anything).Return("", errors.New("bucket unreachable"))

	_, err := fx.service.UpsertStudentProfile(ctx, 5, validProfileInput())
	assert.True(t, errors.Is(err, domainerrors.ErrResumeUploadFailed))
	assert.Equal(t, domainerrors.KindTransient, domainerrors.KindOf(err))
	fx.profileRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestProfileService_Upsert_WriteFailureOrphansResume(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.uploader.EXPECT().Upload(ctx, mock.Anything).Return(testResumeURL, nil)
	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "failed to upsert student profile"))

	output, err := fx.service.UpsertStudentProfile(ctx, 5, validProfileInput())
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileSaveFailed))
	assert.Equal(t, domainerrors.KindTransient, domainerrors.KindOf(err))
}

func TestProfileService_Upsert_ReturnsStoredTimestamps(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	created := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

	fx.uploader.EXPECT().Upload(ctx, mock.Anything).Return(testResumeURL, nil)
	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, p *entity.StudentProfile) (*entity.StudentProfile, error) {
			// The store keeps the original row's identity and creation time.
			saved := *p
			saved.ID = 3
			saved.CreatedAt = created

			return &saved, nil
		})

	output, err := fx.service.UpsertStudentProfile(ctx, 5, validProfileInput())
	require.NoError(t, err)
	assert.Equal(t, int64(3), output.Profile.ID)
	assert.Equal(t, created, output.Profile.CreatedAt)
	assert.True(t, output.Profile.UpdatedAt.After(created))
}

func TestProfileService_GetStudentProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	stored := &entity.StudentProfile{ID: 3, AccountID: 5, UniversityID: "U123"}
	fx.profileRepo.EXPECT().FindByAccountID(ctx, int64(5)).Return(stored, nil)
	fx.profileRepo.EXPECT().FindByAccountID(ctx, int64(6)).Return(nil, repository.ErrStudentProfileNotFound)

	profile, err := fx.service.GetStudentProfile(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, stored, profile)

	profile, err = fx.service.GetStudentProfile(ctx, 6)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}
