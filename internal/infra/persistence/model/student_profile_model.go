package model

import "time"

// StudentProfileModel mirrors the 'student_profiles' table. The unique index
// on account_id is the conflict target of the profile upsert.
type StudentProfileModel struct {
	ID           int64        `gorm:"primaryKey;autoIncrement"`
	AccountID    int64        `gorm:"not null;uniqueIndex:ux_student_profiles_account_id"`
	Account      AccountModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	UniversityID string       `gorm:"type:varchar(64);not null"`
	Department   string       `gorm:"type:varchar(200);not null;default:''"`
	GPA          float64      `gorm:"column:gpa;type:numeric(3,2);not null;check:chk_student_profiles_gpa,gpa >= 0 AND gpa <= 4"`
	Skills       string       `gorm:"type:text;not null;default:''"`
	ResumeURL    string       `gorm:"type:text;not null"`
	CreatedAt    time.Time    `gorm:"not null"`
	UpdatedAt    time.Time    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (StudentProfileModel) TableName() string {
	return "student_profiles"
}
