package server

import (
	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	user, err := s.accountService.Profile(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	// Hide password
	user.Password = ""
	return c.JSON(user)
}

// ChangeMyRole handles PUT /api/users/me/role
func (s *Server) ChangeMyRole(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.accountService.SetRole(ctx, userID, models.Role(req.Role))
	if err != nil {
		return respondServiceError(c, err)
	}

	user.Password = ""
	return c.JSON(user)
}
