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

type AgentController struct {
	DB     *gorm.DB
	Logger *logrus.Entry
}

func NewAgentController(db *gorm.DB, logger *logrus.Entry) *AgentController {
	return &AgentController{
		DB:     db,
		Logger: logger,
	}
}

type createAgentInput struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

type updateAgentInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// GetAgents lists the organiser's own agents.
func (ac *AgentController) GetAgents(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	agents, err := scope.SelectableAgents(ac.DB, identity)
	if err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	return c.JSON(utils.SuccessResponse(agents))
}

// GetAgent returns one agent within the organiser's workspace.
func (ac *AgentController) GetAgent(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	agent, err := ac.findAgent(identity, c.Params("id"))
	if err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	return c.JSON(utils.SuccessResponse(agent))
}

// CreateAgent provisions a new agent account inside the organiser's
// workspace: a user with a random initial credential the organiser never
// sees, the mandatory profile row, and the agent record, in one
// transaction. The invitation email is best effort and runs after commit.
func (ac *AgentController) CreateAgent(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	identity := c.Locals("identity").(*scope.Identity)

	if err := scope.RequireOrganiser(identity); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	var input createAgentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	var existing models.User
	err := ac.DB.Where("email = ? OR username = ?", input.Email, input.Username).First(&existing).Error
	if err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Email or username already registered", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Database error", err)
	}

	initialPassword, err := utils.GenerateInitialPassword()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to provision agent", nil)
	}
	hashed, err := utils.HashPassword(initialPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to provision agent", nil)
	}

	agentUser := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         models.RoleAgent,
		IsActive:     true,
	}
	agent := models.Agent{OrganisationID: identity.TenantID}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&agentUser).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.UserProfile{UserID: agentUser.ID}).Error; err != nil {
			return err
		}
		agent.UserID = agentUser.ID
		return tx.Create(&agent).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create agent", err)
	}

	organiserName := user.FirstName
	if organiserName == "" {
		organiserName = user.Username
	}
	if err := utils.SendAgentInvitation(agentUser.Email, agentUser.FirstName, agentUser.Username, organiserName); err != nil {
		ac.Logger.WithError(err).Warn("failed to send agent invitation")
	}

	agent.User = agentUser
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(agent))
}

// UpdateAgent edits the agent's user details within the organiser's
// workspace.
func (ac *AgentController) UpdateAgent(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	agent, err := ac.findAgent(identity, c.Params("id"))
	if err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	var input updateAgentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	if input.Email != agent.User.Email {
		var existing models.User
		err := ac.DB.Where("email = ? AND id <> ?", input.Email, agent.UserID).First(&existing).Error
		if err == nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Email already registered", nil)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Database error", err)
		}
	}

	agent.User.Email = input.Email
	agent.User.FirstName = input.FirstName
	agent.User.LastName = input.LastName

	if err := ac.DB.Save(&agent.User).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update agent", err)
	}

	return c.JSON(utils.SuccessResponse(agent))
}

// DeleteAgent removes the agent and its login. Leads assigned to it are
// kept and revert to the unassigned pool.
func (ac *AgentController) DeleteAgent(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	agent, err := ac.findAgent(identity, c.Params("id"))
	if err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Lead{}).
			Where("agent_id = ?", agent.ID).
			Update("agent_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(agent).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", agent.UserID).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, agent.UserID).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete agent", err)
	}

	ac.Logger.WithFields(logrus.Fields{
		"agent_id": agent.ID,
	}).Info("agent deleted")

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"message": "Agent deleted successfully",
	}))
}

// findAgent fetches one agent through the organiser's scope. Non-organisers
// fail with ErrForbidden before any row is touched.
func (ac *AgentController) findAgent(identity *scope.Identity, param string) (*models.Agent, error) {
	pred, err := scope.Agents(identity)
	if err != nil {
		return nil, err
	}

	var agent models.Agent
	err = pred.Apply(ac.DB).
		Preload("User").
		Where("id = ?", utils.ParseUint(param)).
		First(&agent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scope.ErrNotFound
		}
		return nil, err
	}
	return &agent, nil
}
