package server

import (
	"newsroom/internal/models"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyArticles handles GET /api/articles/mine
func (s *Server) GetMyArticles(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var (
		articles []models.Article
		err      error
	)
	if c.QueryBool("independent", false) {
		articles, err = s.contentService.ListMyIndependentArticles(ctx, userID)
	} else {
		articles, err = s.contentService.ListMyArticles(ctx, userID)
	}
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"articles": articles})
}

// GetPendingArticles handles GET /api/articles/pending
func (s *Server) GetPendingArticles(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	articles, err := s.editorialService.ListPending(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"articles": articles})
}

// CreateArticle handles POST /api/articles
func (s *Server) CreateArticle(c *fiber.Ctx) error {
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

	article, err := s.contentService.CreateArticle(ctx, service.CreateContentInput{
		AuthorID:    userID,
		Title:       req.Title,
		Content:     req.Content,
		PublisherID: req.PublisherID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(article)
}

// ApproveArticle handles POST /api/articles/:id/approve
func (s *Server) ApproveArticle(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	articleID, err := parseID(c, "id", "article ID")
	if err != nil {
		return nil
	}

	article, err := s.editorialService.ApproveArticle(ctx, userID, articleID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(article)
}

// UpdateArticle handles PUT /api/articles/:id
func (s *Server) UpdateArticle(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	articleID, err := parseID(c, "id", "article ID")
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

	article, err := s.contentService.UpdateArticle(ctx, articleID, service.UpdateContentInput{
		CallerID:       userID,
		Title:          req.Title,
		Content:        req.Content,
		PublisherID:    req.PublisherID,
		ClearPublisher: req.ClearPublisher,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(article)
}

// DeleteArticle handles DELETE /api/articles/:id
func (s *Server) DeleteArticle(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	articleID, err := parseID(c, "id", "article ID")
	if err != nil {
		return nil
	}

	if err := s.contentService.DeleteArticle(ctx, userID, articleID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
