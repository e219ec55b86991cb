package scope

import (
	"errors"

	"gorm.io/gorm"

	"leadhub/models"
)

// Identity is an authenticated user resolved to its role and workspace. For
// organisers TenantID is the user's own profile; for agents it is the
// employer's profile and AgentID is the agent row acting on its behalf.
type Identity struct {
	UserID   uint
	Role     models.Role
	TenantID uint
	AgentID  uint // zero for organisers
}

// IsOrganiser reports whether the identity may use organiser-only surfaces.
func (id *Identity) IsOrganiser() bool {
	return id.Role == models.RoleOrganiser
}

// Resolve computes the (role, tenant) pair for a user. An agent-role user
// without an agent record fails with ErrUnscopedPrincipal.
func Resolve(db *gorm.DB, user *models.User) (*Identity, error) {
	switch user.Role {
	case models.RoleOrganiser:
		var profile models.UserProfile
		if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnscopedPrincipal
			}
			return nil, err
		}
		return &Identity{
			UserID:   user.ID,
			Role:     models.RoleOrganiser,
			TenantID: profile.ID,
		}, nil
	case models.RoleAgent:
		var agent models.Agent
		if err := db.Where("user_id = ?", user.ID).First(&agent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnscopedPrincipal
			}
			return nil, err
		}
		return &Identity{
			UserID:   user.ID,
			Role:     models.RoleAgent,
			TenantID: agent.OrganisationID,
			AgentID:  agent.ID,
		}, nil
	default:
		return nil, ErrUnscopedPrincipal
	}
}
