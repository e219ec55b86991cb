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

type CategoryController struct {
	DB     *gorm.DB
	Logger *logrus.Entry
}

func NewCategoryController(db *gorm.DB, logger *logrus.Entry) *CategoryController {
	return &CategoryController{
		DB:     db,
		Logger: logger,
	}
}

type categoryInput struct {
	Name string `json:"name" validate:"required,max=30"`
}

// GetCategories lists the workspace's categories with live lead counts,
// plus the count of leads carrying no category at all.
func (cc *CategoryController) GetCategories(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	var categories []models.Category
	err := scope.Categories(identity).Apply(cc.DB).
		Order("name").
		Find(&categories).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch categories", err)
	}

	for i := range categories {
		if err := cc.DB.Model(&models.Lead{}).
			Where("category_id = ?", categories[i].ID).
			Count(&categories[i].Count).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count leads", err)
		}
	}

	var uncategorised int64
	err = cc.DB.Model(&models.Lead{}).
		Where("organisation_id = ? AND category_id IS NULL", identity.TenantID).
		Count(&uncategorised).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count leads", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"categories":          categories,
		"uncategorised_count": uncategorised,
	}))
}

// GetCategory returns one category with its lead count.
func (cc *CategoryController) GetCategory(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	category, err := cc.findCategory(identity, c.Params("id"))
	if err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	if err := cc.DB.Model(&models.Lead{}).
		Where("category_id = ?", category.ID).
		Count(&category.Count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count leads", err)
	}

	return c.JSON(utils.SuccessResponse(category))
}

// CreateCategory adds a category to the organiser's workspace.
func (cc *CategoryController) CreateCategory(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	if err := scope.RequireOrganiser(identity); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	var input categoryInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}
	if err := scope.CheckCategoryName(cc.DB, identity, input.Name, 0); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	category := models.Category{
		Name:           input.Name,
		OrganisationID: identity.TenantID,
	}
	if err := cc.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create category", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(category))
}

// UpdateCategory renames a category.
func (cc *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	if err := scope.RequireOrganiser(identity); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	category, err := cc.findCategory(identity, c.Params("id"))
	if err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	var input categoryInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}
	if err := scope.CheckCategoryName(cc.DB, identity, input.Name, category.ID); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	category.Name = input.Name
	if err := cc.DB.Save(category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update category", err)
	}

	return c.JSON(utils.SuccessResponse(category))
}

// DeleteCategory removes a category; leads that carried it fall back to
// uncategorised rather than being deleted.
func (cc *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	identity := c.Locals("identity").(*scope.Identity)

	if err := scope.RequireOrganiser(identity); err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	category, err := cc.findCategory(identity, c.Params("id"))
	if err != nil {
		return utils.ScopeErrorResponse(c, err)
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Lead{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete category", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"message": "Category deleted successfully",
	}))
}

func (cc *CategoryController) findCategory(identity *scope.Identity, param string) (*models.Category, error) {
	var category models.Category
	err := scope.Categories(identity).Apply(cc.DB).
		Where("id = ?", utils.ParseUint(param)).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scope.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}
