package scope

import (
	"errors"

	"gorm.io/gorm"

	"leadhub/models"
)

// RequireOrganiser rejects agent-role identities before any write on the
// organiser-only surfaces (lead, category and agent mutations).
func RequireOrganiser(id *Identity) error {
	if !id.IsOrganiser() {
		return ErrForbidden
	}
	return nil
}

// SelectableAgents returns the agents an organiser may offer for assignment:
// exactly the agents of its own workspace, never anyone else's.
func SelectableAgents(db *gorm.DB, id *Identity) ([]models.Agent, error) {
	if err := RequireOrganiser(id); err != nil {
		return nil, err
	}
	var agents []models.Agent
	err := db.Where("organisation_id = ?", id.TenantID).
		Preload("User").
		Order("id").
		Find(&agents).Error
	return agents, err
}

// CheckAgentChoice validates a submitted agent id against the workspace. A
// cross-workspace id fails exactly like an unknown one.
func CheckAgentChoice(db *gorm.DB, id *Identity, agentID uint) error {
	var agent models.Agent
	err := db.Where("id = ? AND organisation_id = ?", agentID, id.TenantID).First(&agent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewValidationError("agent", "no such agent in your organisation")
	}
	return err
}

// CheckCategoryChoice validates a submitted category id against the
// workspace.
func CheckCategoryChoice(db *gorm.DB, id *Identity, categoryID uint) error {
	var category models.Category
	err := db.Where("id = ? AND organisation_id = ?", categoryID, id.TenantID).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewValidationError("category", "no such category in your organisation")
	}
	return err
}

// CheckCategoryName enforces unique-within-workspace category names.
// excludeID skips the row being updated.
func CheckCategoryName(db *gorm.DB, id *Identity, name string, excludeID uint) error {
	var count int64
	tx := db.Model(&models.Category{}).
		Where("organisation_id = ? AND name = ?", id.TenantID, name)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return NewValidationError("name", "a category with this name already exists")
	}
	return nil
}
