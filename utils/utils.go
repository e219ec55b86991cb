package utils

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"leadhub/scope"
)

// NewLogger returns a logrus entry tagged with the owning component.
func NewLogger(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}

// ErrorResponse creates a standardized error response
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	response := fiber.Map{
		"success": false,
		"error":   message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	return c.Status(status).JSON(response)
}

// SuccessResponse creates a standardized success response
func SuccessResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}

// ScopeErrorResponse maps the access-control error taxonomy onto HTTP. Rows
// outside the caller's scope answer like missing rows, so another
// workspace's data cannot be probed for existence.
func ScopeErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *scope.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Validation failed",
			"fields":  validationErr.Fields,
		})
	case errors.Is(err, scope.ErrForbidden):
		return ErrorResponse(c, fiber.StatusForbidden, "You do not have permission to do this", nil)
	case errors.Is(err, scope.ErrNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, "Not found", nil)
	case errors.Is(err, scope.ErrUnscopedPrincipal):
		return ErrorResponse(c, fiber.StatusInternalServerError, "Account is misconfigured", nil)
	default:
		return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", err)
	}
}

// Pointer returns a pointer to the given value
func Pointer[T any](v T) *T {
	return &v
}

// ParseUint safely parses a string to uint
func ParseUint(s string) uint {
	i, _ := strconv.ParseUint(s, 10, 32)
	return uint(i)
}
