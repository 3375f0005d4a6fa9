package model

import "time"

// AccountModel mirrors the 'accounts' table. Email is stored normalized, so a
// plain unique index enforces case-insensitive uniqueness.
type AccountModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	FullName     string    `gorm:"type:varchar(200);not null"`
	Email        string    `gorm:"type:varchar(320);not null;uniqueIndex:ux_accounts_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;check:chk_accounts_role,role IN ('Student','Company','Admin')"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
