package models

import (
	"gorm.io/gorm"
)

// Agent wraps an agent-role user and pins it to the organisation that
// employs it. An agent never belongs to more than one organisation.
type Agent struct {
	gorm.Model
	UserID         uint `gorm:"uniqueIndex;not null" json:"user_id"`
	OrganisationID uint `gorm:"not null;index" json:"organisation_id"`

	// Relations
	User         User        `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	Organisation UserProfile `gorm:"foreignKey:OrganisationID;constraint:OnDelete:CASCADE" json:"-"`
}
