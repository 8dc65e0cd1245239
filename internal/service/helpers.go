// Package service implements the domain policy engine: role exclusivity,
// subscription toggling, content authorship, editorial approval, and feed
// computation. Handlers call services; services call repositories.
package service

import (
	"fmt"

	"newsroom/internal/models"
)

// requireRole is the capability check used by every role-gated operation.
func requireRole(user *models.User, role models.Role) error {
	if user.Role != role {
		return models.NewForbiddenError(fmt.Sprintf("%s role required", role))
	}
	return nil
}
