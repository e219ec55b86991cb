package models

import (
	"gorm.io/gorm"
)

// Category is a workspace-scoped label applied to leads, e.g. New,
// Contacted, Converted. Names are unique within an organisation.
type Category struct {
	gorm.Model
	Name           string `gorm:"not null;uniqueIndex:idx_categories_org_name" json:"name"`
	OrganisationID uint   `gorm:"not null;uniqueIndex:idx_categories_org_name;index" json:"organisation_id"`

	// Relations
	Organisation UserProfile `gorm:"foreignKey:OrganisationID;constraint:OnDelete:CASCADE" json:"-"`
	Leads        []Lead      `gorm:"foreignKey:CategoryID" json:"-"`

	// Count is the number of leads currently in the category. Computed per
	// request, never stored.
	Count int64 `gorm:"-" json:"count"`
}
