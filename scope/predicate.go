package scope

import (
	"gorm.io/gorm"
)

// Assignment narrows a lead predicate by its agent column.
type Assignment int

const (
	// AnyAssignment applies no agent filter.
	AnyAssignment Assignment = iota
	// AssignedOnly keeps leads that have an agent.
	AssignedOnly
	// UnassignedOnly keeps leads with no agent.
	UnassignedOnly
	// AssignedTo keeps leads assigned to one specific agent.
	AssignedTo
)

// Predicate is a row-visibility filter: which rows of a workspace-owned
// table the acting identity may see. It is a plain value so the scoping
// rules stay testable without a database; Apply translates it to a query at
// the store boundary.
type Predicate struct {
	TenantID   uint
	Assignment Assignment
	AgentID    uint // set when Assignment == AssignedTo
}

// Apply narrows tx to the rows the predicate admits. The agent filters only
// make sense for the leads table; category and agent predicates always carry
// AnyAssignment.
func (p Predicate) Apply(tx *gorm.DB) *gorm.DB {
	tx = tx.Where("organisation_id = ?", p.TenantID)
	switch p.Assignment {
	case AssignedOnly:
		tx = tx.Where("agent_id IS NOT NULL")
	case UnassignedOnly:
		tx = tx.Where("agent_id IS NULL")
	case AssignedTo:
		tx = tx.Where("agent_id = ?", p.AgentID)
	}
	return tx
}

// LeadList is the primary lead listing: organisers see their workspace's
// assigned leads, agents only the leads assigned to them.
func LeadList(id *Identity) Predicate {
	if id.IsOrganiser() {
		return Predicate{TenantID: id.TenantID, Assignment: AssignedOnly}
	}
	return Predicate{TenantID: id.TenantID, Assignment: AssignedTo, AgentID: id.AgentID}
}

// LeadUnassigned is the organiser-only sublist of leads awaiting an agent.
// There is no unassigned concept for agents, who never see such leads.
func LeadUnassigned(id *Identity) (Predicate, error) {
	if !id.IsOrganiser() {
		return Predicate{}, ErrForbidden
	}
	return Predicate{TenantID: id.TenantID, Assignment: UnassignedOnly}, nil
}

// LeadDetail governs single-lead access. It is deliberately broader than
// LeadList for organisers: an unassigned lead is excluded from the primary
// list but must still open for editing and deletion.
func LeadDetail(id *Identity) Predicate {
	if id.IsOrganiser() {
		return Predicate{TenantID: id.TenantID}
	}
	return Predicate{TenantID: id.TenantID, Assignment: AssignedTo, AgentID: id.AgentID}
}

// Categories governs category reads for both roles.
func Categories(id *Identity) Predicate {
	return Predicate{TenantID: id.TenantID}
}

// Agents governs the agent management surface, which only organisers may
// reach.
func Agents(id *Identity) (Predicate, error) {
	if !id.IsOrganiser() {
		return Predicate{}, ErrForbidden
	}
	return Predicate{TenantID: id.TenantID}, nil
}
