// Package identity extracts the authenticated caller from Fiber
// context and provides GORM scopes for caller-visible task sets.
package identity

import (
	"errors"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the authenticated principal attached to every request by
// the JWT middleware. Services trust it and never re-verify credentials.
type Identity struct {
	ID   uuid.UUID
	Role string
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// FromContext builds the caller identity from JWT claims in context.
func FromContext(c *fiber.Ctx) (Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return Identity{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, errors.New("missing sub claim")
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, err
	}

	role, _ := claims["role"].(string)
	return Identity{ID: id, Role: role}, nil
}

// GetUserID extracts just the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	ident, err := FromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	return ident.ID, nil
}
