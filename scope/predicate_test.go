package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadhub/models"
)

func organiserIdentity() *Identity {
	return &Identity{UserID: 1, Role: models.RoleOrganiser, TenantID: 10}
}

func agentIdentity() *Identity {
	return &Identity{UserID: 2, Role: models.RoleAgent, TenantID: 10, AgentID: 5}
}

func TestLeadListPredicate(t *testing.T) {
	t.Run("organiser sees the workspace's assigned leads", func(t *testing.T) {
		pred := LeadList(organiserIdentity())
		assert.Equal(t, Predicate{TenantID: 10, Assignment: AssignedOnly}, pred)
	})

	t.Run("agent sees only leads assigned to them", func(t *testing.T) {
		pred := LeadList(agentIdentity())
		assert.Equal(t, Predicate{TenantID: 10, Assignment: AssignedTo, AgentID: 5}, pred)
	})
}

func TestLeadUnassignedPredicate(t *testing.T) {
	t.Run("organiser gets the unassigned pool", func(t *testing.T) {
		pred, err := LeadUnassigned(organiserIdentity())
		require.NoError(t, err)
		assert.Equal(t, Predicate{TenantID: 10, Assignment: UnassignedOnly}, pred)
	})

	t.Run("not exposed to agents", func(t *testing.T) {
		_, err := LeadUnassigned(agentIdentity())
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestLeadDetailPredicate(t *testing.T) {
	t.Run("organiser detail scope covers unassigned leads too", func(t *testing.T) {
		pred := LeadDetail(organiserIdentity())
		assert.Equal(t, Predicate{TenantID: 10, Assignment: AnyAssignment}, pred)
	})

	t.Run("agent detail scope matches its list scope", func(t *testing.T) {
		id := agentIdentity()
		assert.Equal(t, LeadList(id), LeadDetail(id))
	})
}

func TestCategoriesPredicate(t *testing.T) {
	// Both roles share read access to the whole workspace's categories
	assert.Equal(t, Categories(organiserIdentity()), Categories(agentIdentity()))
	assert.Equal(t, uint(10), Categories(agentIdentity()).TenantID)
}

func TestAgentsPredicate(t *testing.T) {
	pred, err := Agents(organiserIdentity())
	require.NoError(t, err)
	assert.Equal(t, Predicate{TenantID: 10}, pred)

	_, err = Agents(agentIdentity())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRequireOrganiser(t *testing.T) {
	assert.NoError(t, RequireOrganiser(organiserIdentity()))
	assert.ErrorIs(t, RequireOrganiser(agentIdentity()), ErrForbidden)
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("email", "must be a valid email address")
	assert.Equal(t, "email: must be a valid email address", err.Error())
	assert.Contains(t, err.Fields, "email")
}
