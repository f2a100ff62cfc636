package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var errMissingActor = errors.New("missing authenticated user")

func actorID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(userID) == "" {
		return "", errMissingActor
	}
	return userID, nil
}
