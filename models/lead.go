package models

import (
	"time"

	"gorm.io/gorm"
)

// Lead is the core business record: a prospective customer owned by exactly
// one organisation, optionally assigned to one of that organisation's agents
// and labelled with one of its categories.
type Lead struct {
	gorm.Model

	FirstName   string `gorm:"not null" json:"first_name"`
	LastName    string `gorm:"not null" json:"last_name"`
	Age         *uint  `json:"age,omitempty"`
	PhoneNumber string `gorm:"not null" json:"phone_number"`
	Email       string `gorm:"not null;index" json:"email"`
	Description string `gorm:"type:text" json:"description"`

	// DateAdded is fixed at creation and never updated afterwards.
	DateAdded time.Time `gorm:"autoCreateTime;<-:create" json:"date_added"`

	// OrganisationID always points at the organiser's workspace, even when
	// the lead is assigned to an agent.
	OrganisationID uint  `gorm:"not null;index" json:"organisation_id"`
	AgentID        *uint `gorm:"index" json:"agent_id,omitempty"`
	CategoryID     *uint `gorm:"index" json:"category_id,omitempty"`

	// Relations
	Organisation UserProfile `gorm:"foreignKey:OrganisationID;constraint:OnDelete:CASCADE" json:"-"`
	Agent        *Agent      `gorm:"constraint:OnDelete:SET NULL" json:"agent,omitempty"`
	Category     *Category   `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

// Assigned reports whether the lead currently has an agent.
func (l *Lead) Assigned() bool {
	return l.AgentID != nil
}
