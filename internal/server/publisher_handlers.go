package server

import (
	"strings"

	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPublishers handles GET /api/publishers
func (s *Server) GetPublishers(c *fiber.Ctx) error {
	ctx := c.Context()
	p := parsePagination(c, 20)

	publishers, err := s.publisherRepo.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"publishers": publishers,
		"limit":      p.Limit,
		"offset":     p.Offset,
	})
}

// CreatePublisher handles POST /api/publishers
func (s *Server) CreatePublisher(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Publisher name is required"))
	}

	existing, err := s.publisherRepo.GetByName(ctx, req.Name)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("A publisher with that name already exists"))
	}

	publisher := models.Publisher{Name: req.Name}
	if err := s.publisherRepo.Create(ctx, &publisher); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(publisher)
}

// GetPublisher handles GET /api/publishers/:id
func (s *Server) GetPublisher(c *fiber.Ctx) error {
	ctx := c.Context()

	publisherID, err := parseID(c, "id", "publisher ID")
	if err != nil {
		return nil
	}

	publisher, err := s.publisherRepo.GetByID(ctx, publisherID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(publisher)
}

// TogglePublisherSubscription handles POST /api/publishers/:id/subscription
func (s *Server) TogglePublisherSubscription(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	publisherID, err := parseID(c, "id", "publisher ID")
	if err != nil {
		return nil
	}

	subscribed, err := s.subscriptionService.TogglePublisher(ctx, userID, publisherID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"publisher_id": publisherID,
		"subscribed":   subscribed,
	})
}

// GetPublisherArticles handles GET /api/publishers/:id/articles
func (s *Server) GetPublisherArticles(c *fiber.Ctx) error {
	ctx := c.Context()

	publisherID, err := parseID(c, "id", "publisher ID")
	if err != nil {
		return nil
	}

	articles, err := s.feedService.PublisherArticles(ctx, publisherID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"articles": articles})
}

// ToggleJournalistSubscription handles POST /api/journalists/:id/subscription
func (s *Server) ToggleJournalistSubscription(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	journalistID, err := parseID(c, "id", "journalist ID")
	if err != nil {
		return nil
	}

	subscribed, err := s.subscriptionService.ToggleJournalist(ctx, userID, journalistID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"journalist_id": journalistID,
		"subscribed":    subscribed,
	})
}

// GetJournalistArticles handles GET /api/journalists/:id/articles
func (s *Server) GetJournalistArticles(c *fiber.Ctx) error {
	ctx := c.Context()

	journalistID, err := parseID(c, "id", "journalist ID")
	if err != nil {
		return nil
	}

	articles, err := s.feedService.JournalistArticles(ctx, journalistID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"articles": articles})
}
