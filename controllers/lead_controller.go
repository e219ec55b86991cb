package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"leadhub/models"
	"leadhub/scope"
	"leadhub/utils"
)

type LeadController struct {
	DB     *gorm.DB
	Logger *logrus.Entry
}

func NewLeadController(db *gorm.DB, logger *logrus.Entry) *LeadController {
	return &LeadController{
		DB:     db,
		Logger: logger,
	}
}

type leadInput struct {
	FirstName   string `json:"first_name" validate:"required,max=20"`
	LastName    string `json:"last_name" validate:"required,max=20"`
	Age         *int   `json:"age" validate:"omitempty,gte=0"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
	Email       string `json:"email" validate:"required,email"`
	Description string `json:"description"`
	AgentID     *uint  `json:"agent_id"`
	CategoryID  *uint  `json:"category_id"`
}

// age converts the validated signed input into the stored column type.
func (in *leadInput) age() *uint {
	if in.Age == nil {
		return nil
	}
	v := uint(*in.Age)
	return &v
}

// CreateLead adds a lead to the organiser's own workspace. The owning
// organisation always comes from the resolved identity, never from the
// request body.
func (lc *LeadController) CreateLead(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	identity := c.Locals("identity").(*scope.Identity)

	if err := scope.RequireOrganiser(identity); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	var input leadInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	// A submitted agent or category must live in the same workspace
	if input.AgentID != nil {
		if err := scope.CheckAgentChoice(lc.DB, identity, *input.AgentID); err != nil {
			return utils.ScopeErrorResponse(c, err)
		}
	}
	if input.CategoryID != nil {
		if err := scope.CheckCategoryChoice(lc.DB, identity, *input.CategoryID); err != nil {
			return utils.ScopeErrorResponse(c, err)
		}
	}

	lead := models.Lead{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Age:            input.age(),
		PhoneNumber:    input.PhoneNumber,
		Email:          input.Email,
		Description:    input.Description,
		OrganisationID: identity.TenantID,
		AgentID:        input.AgentID,
		CategoryID:     input.CategoryID,
	}

	if err := lc.DB.Create(&lead).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create lead", err)
	}

	// Best-effort notification; the lead is already committed
	if err := utils.SendLeadCreatedNotice(user.Email, lead.FirstName+" "+lead.LastName); err != nil {
		lc.Logger.WithError(err).Warn("failed to send lead-created notice")
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(lead))
}

// GetLeads returns the role-scoped lead list. Organisers additionally get
// the unassigned sublist, which backs the assign-an-agent action.
func (lc *LeadController) GetLeads(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	var leads []models.Lead
	err := scope.LeadList(identity).Apply(lc.DB).
		Preload("Agent.User").
		Preload("Category").
		Order("date_added, id").
		Find(&leads).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch leads", err)
	}

	response := fiber.Map{"leads": leads}

	if pred, err := scope.LeadUnassigned(identity); err == nil {
		var unassigned []models.Lead
		if err := pred.Apply(lc.DB).Preload("Category").Order("date_added, id").Find(&unassigned).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch unassigned leads", err)
		}
		response["unassigned_leads"] = unassigned
	}

	return c.JSON(utils.SuccessResponse(response))
}

// GetLead returns a single lead within the caller's detail scope.
func (lc *LeadController) GetLead(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	lead, err := lc.findLead(identity, c.Params("id"))
	if err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	return c.JSON(utils.SuccessResponse(lead))
}

// UpdateLead rewrites a lead's fields. Organiser-only; the detail predicate
// intentionally admits unassigned leads.
func (lc *LeadController) UpdateLead(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	if err := scope.RequireOrganiser(identity); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	lead, err := lc.findLead(identity, c.Params("id"))
	if err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	var input leadInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	if input.AgentID != nil {
		if err := scope.CheckAgentChoice(lc.DB, identity, *input.AgentID); err != nil {
			return utils.ScopeErrorResponse(c, err)
		}
	}
	if input.CategoryID != nil {
		if err := scope.CheckCategoryChoice(lc.DB, identity, *input.CategoryID); err != nil {
			return utils.ScopeErrorResponse(c, err)
		}
	}

	// Full rewrite: a null agent or category in the payload clears the
	// column, returning the lead to the unassigned pool
	lead.FirstName = input.FirstName
	lead.LastName = input.LastName
	lead.Age = input.age()
	lead.PhoneNumber = input.PhoneNumber
	lead.Email = input.Email
	lead.Description = input.Description
	lead.AgentID = input.AgentID
	lead.CategoryID = input.CategoryID

	if err := lc.DB.Save(lead).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update lead", err)
	}

	return c.JSON(utils.SuccessResponse(lead))
}

// DeleteLead removes a lead from the organiser's workspace.
func (lc *LeadController) DeleteLead(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	if err := scope.RequireOrganiser(identity); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	result := scope.LeadDetail(identity).Apply(lc.DB).
		Where("id = ?", utils.ParseUint(c.Params("id"))).
		Delete(&models.Lead{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete lead", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ScopeErrorResponse(c, scope.ErrNotFound)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"message": "Lead deleted successfully",
	}))
}

// AssignAgent moves a lead from the unassigned pool to one of the
// workspace's agents.
func (lc *LeadController) AssignAgent(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	if err := scope.RequireOrganiser(identity); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	var input struct {
		AgentID uint `json:"agent_id" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	lead, err := lc.findLead(identity, c.Params("id"))
	if err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	if err := scope.CheckAgentChoice(lc.DB, identity, input.AgentID); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	lead.AgentID = &input.AgentID
	if err := lc.DB.Save(lead).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to assign agent", err)
	}

	lc.Logger.WithFields(logrus.Fields{
		"lead_id":  lead.ID,
		"agent_id": input.AgentID,
	}).Info("lead assigned")

	return c.JSON(utils.SuccessResponse(lead))
}

// UpdateLeadCategory labels a lead. Unlike the other lead writes this is
// open to the assigned agent, whose detail scope covers exactly the leads
// assigned to them.
func (lc *LeadController) UpdateLeadCategory(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	lead, err := lc.findLead(identity, c.Params("id"))
	if err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	var input struct {
		CategoryID *uint `json:"category_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if input.CategoryID != nil {
		if err := scope.CheckCategoryChoice(lc.DB, identity, *input.CategoryID); err != nil {
			return utils.ScopeErrorResponse(c, err)
		}
	}

	lead.CategoryID = input.CategoryID
	if err := lc.DB.Model(lead).Update("category_id", input.CategoryID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update category", err)
	}

	return c.JSON(utils.SuccessResponse(lead))
}

// findLead fetches one lead through the caller's detail predicate. Rows in
// other workspaces answer exactly like missing rows.
func (lc *LeadController) findLead(identity *scope.Identity, param string) (*models.Lead, error) {
	var lead models.Lead
	err := scope.LeadDetail(identity).Apply(lc.DB).
		Preload("Agent.User").
		Preload("Category").
		Where("id = ?", utils.ParseUint(param)).
		First(&lead).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scope.ErrNotFound
		}
		return nil, err
	}
	return &lead, nil
}
