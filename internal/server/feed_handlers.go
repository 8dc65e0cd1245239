package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
//
// Returns the caller's personalized feed: approved articles from subscribed
// publishers plus approved articles authored by subscribed journalists,
// newest first.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	articles, err := s.feedService.ReaderFeed(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"articles": articles,
		"count":    len(articles),
	})
}
