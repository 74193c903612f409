// Package model contains the GORM persistence models mirroring the
// database schema. Mapping to and from domain entities happens in the
// postgres repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The roles column is text of variable shape and is
// normalized in the domain layer, never here.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Password     string    `gorm:"type:varchar(255)"`      // legacy column: plaintext or hash
	PasswordHash string    `gorm:"type:varchar(255)"`      // dedicated hash column
	Roles        string    `gorm:"type:text"`              // raw role encoding
	Active       bool      `gorm:"not null;default:true"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
