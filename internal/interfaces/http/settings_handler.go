package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rudhirsetu/website-backend/internal/application"
)

type SettingsHandler struct {
	service *application.SettingsService
}

func NewSettingsHandler(service *application.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get returns the donation/contact/social settings rendered across the site.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.service.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load site settings"})
	}
	return c.JSON(settings)
}
