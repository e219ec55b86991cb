package models

import (
	"gorm.io/gorm"
)

// Role distinguishes the two kinds of accounts in the system. Exactly one
// role applies to any user; the ambiguous dual/neither state is not
// representable.
type Role string

const (
	RoleOrganiser Role = "organiser"
	RoleAgent     Role = "agent"
)

// User represents a login account. Organisers own a workspace; agents work
// inside the workspace of the organiser who created them.
type User struct {
	gorm.Model

	// Authentication fields
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Google OAuth fields
	GoogleID *string `gorm:"uniqueIndex" json:"google_id,omitempty"`

	// Profile information
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Role Role `gorm:"type:varchar(16);not null;default:'organiser'" json:"role"`

	// Account status
	IsActive     bool `gorm:"default:true" json:"is_active"`
	TokenVersion int  `gorm:"default:0" json:"-"`

	// Relations
	Profile *UserProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

// UserProfile is the workspace record. Every user gets one at creation time,
// but only an organiser's profile is referenced as the owning organisation of
// leads, categories and agents.
type UserProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	// Relations
	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
