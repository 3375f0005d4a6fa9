package postgres

import (
	"context"

	"internova/internal/domain/entity"
	domainerrors "internova/internal/domain/errors"
	"internova/internal/domain/repository"
	"internova/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns replaced when a profile for the same account already exists.
// id, account_id and created_at are never overwritten.
var studentProfileUpsertColumns = []string{
	"university_id",
	"department",
	"gpa",
	"skills",
	"resume_url",
	"updated_at",
}

// studentProfileRepository implements the domain.StudentProfileRepository interface using GORM.
type studentProfileRepository struct {
	db *gorm.DB
}

// NewStudentProfileRepository is the constructor for studentProfileRepository.
func NewStudentProfileRepository(db *gorm.DB) repository.StudentProfileRepository {
	return &studentProfileRepository{db: db}
}

// FindByAccountID retrieves the profile owned by the given account.
func (repo *studentProfileRepository) FindByAccountID(ctx context.Context, accountID int64) (*entity.StudentProfile, error) {
	var profileM model.StudentProfileModel

	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Take(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find student profile")
	}

	return toStudentProfileDomain(&profileM), nil
}

// Upsert issues a single INSERT ... ON CONFLICT (account_id) DO UPDATE ...
// RETURNING *, so concurrent upserts for one account can never create a
// second row and the returned record is exactly what was stored.
func (repo *studentProfileRepository) Upsert(ctx context.Context, profile *entity.StudentProfile) (*entity.StudentProfile, error) {
	profileM := fromStudentProfileDomain(profile)
	// Never reuse a caller-supplied key; the store owns identity.
	profileM.ID = 0

	if err := upsertStudentProfile(repo.db.WithContext(ctx), profileM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrGPAOutOfRange.WrapMessage("gpa rejected by check constraint")
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("profile owner does not exist")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert student profile")
	}

	return toStudentProfileDomain(profileM), nil
}

// upsertStudentProfile builds the conditional write keyed on account_id.
func upsertStudentProfile(tx *gorm.DB, profileM *model.StudentProfileModel) *gorm.DB {
	return tx.
		Omit(clause.Associations).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "account_id"}},
				DoUpdates: clause.AssignmentColumns(studentProfileUpsertColumns),
			},
			clause.Returning{},
		).
		Create(profileM)
}

func toStudentProfileDomain(m *model.StudentProfileModel) *entity.StudentProfile {
	if m == nil {
		return nil
	}

	return &entity.StudentProfile{
		ID:           m.ID,
		AccountID:    m.AccountID,
		UniversityID: m.UniversityID,
		Department:   m.Department,
		GPA:          m.GPA,
		Skills:       m.Skills,
		ResumeURL:    m.ResumeURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromStudentProfileDomain(p *entity.StudentProfile) *model.StudentProfileModel {
	if p == nil {
		return nil
	}

	return &model.StudentProfileModel{
		ID:           p.ID,
		AccountID:    p.AccountID,
		UniversityID: p.UniversityID,
		Department:   p.Department,
		GPA:          entity.RoundGPA(p.GPA),
		Skills:       p.Skills,
		ResumeURL:    p.ResumeURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
