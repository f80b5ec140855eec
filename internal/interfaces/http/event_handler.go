package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rudhirsetu/website-backend/internal/application"
	"github.com/rudhirsetu/website-backend/internal/domain"
)

type EventHandler struct {
	service *application.EventService
}

func NewEventHandler(service *application.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) GetUpcoming(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", application.DefaultEventPageSize)

	events, pagination, err := h.service.ListUpcoming(c.Context(), page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load upcoming events"})
	}
	return c.JSON(fiber.Map{"data": events, "pagination": pagination})
}

func (h *EventHandler) GetPast(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", application.DefaultEventPageSize)

	events, pagination, err := h.service.ListPast(c.Context(), page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load past events"})
	}
	return c.JSON(fiber.Map{"data": events, "pagination": pagination})
}

// GetByID answers 404 explicitly on unknown ids; a missing event is never a
// silent empty render.
func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	event, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load event"})
	}
	return c.JSON(event)
}
