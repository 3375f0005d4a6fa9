package postgres

import (
	"strings"
	"testing"
	"time"

	"internova/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB renders PostgreSQL statements without a server.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=internova dbname=internova sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestUpsertStudentProfile_SingleConditionalWrite(t *testing.T) {
	db := newDryRunDB(t)
	now := time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)

	profileM := fromStudentProfileDomain(&entity.StudentProfile{
		AccountID:    5,
		UniversityID: "U123",
		Department:   "CS",
		GPA:          3.5,
		Skills:       "Go, SQL",
		ResumeURL:    "https://files.example/resumes/5_resume.pdf",
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return upsertStudentProfile(tx, profileM)
	})

	require.True(t, strings.HasPrefix(sql, `INSERT INTO "student_profiles"`), sql)
	assert.Equal(t, 1, strings.Count(sql, "INSERT INTO"), "exactly one statement: %s", sql)
	assert.Contains(t, sql, `ON CONFLICT ("account_id") DO UPDATE SET`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(sql), "RETURNING *"), sql)

	// The first write stores created_at; later writes must not touch it.
	insertPart, updatePart, found := strings.Cut(sql, "DO UPDATE SET")
	require.True(t, found)
	assert.Contains(t, insertPart, `"created_at"`)
	assert.Contains(t, insertPart, `"account_id"`)

	for _, column := range studentProfileUpsertColumns {
		assert.Contains(t, updatePart, `"`+column+`"="excluded"."`+column+`"`)
	}
	assert.NotContains(t, updatePart, `"created_at"=`)
	assert.NotContains(t, updatePart, `"id"=`)
	assert.NotContains(t, updatePart, `"account_id"=`)
}
