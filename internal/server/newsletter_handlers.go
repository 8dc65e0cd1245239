package server

import (
	"newsroom/internal/models"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyNewsletters handles GET /api/newsletters/mine
func (s *Server) GetMyNewsletters(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var (
		newsletters []models.Newsletter
		err         error
	)
	if c.QueryBool("independent", false) {
		newsletters, err = s.contentService.ListMyIndependentNewsletters(ctx, userID)
	} else {
		newsletters, err = s.contentService.ListMyNewsletters(ctx, userID)
	}
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"newsletters": newsletters})
}

// CreateNewsletter handles POST /api/newsletters
func (s *Server) CreateNewsletter(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		PublisherID *uint  `json:"publisher_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	newsletter, err := s.contentService.CreateNewsletter(ctx, service.CreateContentInput{
		AuthorID:    userID,
		Title:       req.Title,
		Content:     req.Content,
		PublisherID: req.PublisherID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newsletter)
}

// UpdateNewsletter handles PUT /api/newsletters/:id
func (s *Server) UpdateNewsletter(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	newsletterID, err := parseID(c, "id", "newsletter ID")
	if err != nil {
		return nil
	}

	var req struct {
		Title          string `json:"title"`
		Content        string `json:"content"`
		PublisherID    *uint  `json:"publisher_id"`
		ClearPublisher bool   `json:"clear_publisher"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	newsletter, err := s.contentService.UpdateNewsletter(ctx, newsletterID, service.UpdateContentInput{
		CallerID:       userID,
		Title:          req.Title,
		Content:        req.Content,
		PublisherID:    req.PublisherID,
		ClearPublisher: req.ClearPublisher,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(newsletter)
}

// DeleteNewsletter handles DELETE /api/newsletters/:id
func (s *Server) DeleteNewsletter(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	newsletterID, err := parseID(c, "id", "newsletter ID")
	if err != nil {
		return nil
	}

	if err := s.contentService.DeleteNewsletter(ctx, userID, newsletterID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
