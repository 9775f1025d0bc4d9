package model

import (
	"time"
)

// AccountModel mirrors the 'users' table. PostgreSQL assigns IDs from a bigserial sequence.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AccountModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash []byte `gorm:"type:bytea;not null"`
	PasswordSalt []byte `gorm:"type:bytea;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}
