package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system operators. Every API operation except login and
// health requires an authenticated user.
type Usuario struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username      string    `gorm:"uniqueIndex;not null"`
	PasswordHash  string    `gorm:"not null"`
	FechaRegistro time.Time `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Usuario) TableName() string { return "usuarios" }
