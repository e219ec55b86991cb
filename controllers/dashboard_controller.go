package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"leadhub/models"
	"leadhub/scope"
	"leadhub/utils"
)

type DashboardController struct {
	DB     *gorm.DB
	Logger *logrus.Entry
}

func NewDashboardController(db *gorm.DB, logger *logrus.Entry) *DashboardController {
	return &DashboardController{
		DB:     db,
		Logger: logger,
	}
}

type DashboardStats struct {
	TotalLeads      int64 `json:"total_leads"`
	AssignedLeads   int64 `json:"assigned_leads"`
	UnassignedLeads int64 `json:"unassigned_leads"`
	AgentCount      int64 `json:"agent_count"`
	CategoryCount   int64 `json:"category_count"`
}

// GetDashboardStats returns summary counts for the workspace dashboard
// cards. Agents see the figures for their own slice of the workspace.
func (dc *DashboardController) GetDashboardStats(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	var stats DashboardStats

	listScope := scope.LeadDetail(identity)
	if err := listScope.Apply(dc.DB.Model(&models.Lead{})).Count(&stats.TotalLeads).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count leads", err)
	}
	if err := scope.LeadList(identity).Apply(dc.DB.Model(&models.Lead{})).Count(&stats.AssignedLeads).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count leads", err)
	}

	if pred, err := scope.LeadUnassigned(identity); err == nil {
		if err := pred.Apply(dc.DB.Model(&models.Lead{})).Count(&stats.UnassignedLeads).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count leads", err)
		}
	}

	if identity.IsOrganiser() {
		if err := dc.DB.Model(&models.Agent{}).
			Where("organisation_id = ?", identity.TenantID).
			Count(&stats.AgentCount).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count agents", err)
		}
	}

	if err := scope.Categories(identity).Apply(dc.DB.Model(&models.Category{})).Count(&stats.CategoryCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count categories", err)
	}

	return c.JSON(utils.SuccessResponse(stats))
}
