package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rudhirsetu/website-backend/internal/application"
	"github.com/rudhirsetu/website-backend/internal/domain"
)

type ContactHandler struct {
	service *application.ContactService
}

func NewContactHandler(service *application.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req domain.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	contact, err := h.service.Create(c.Context(), req, c.IP())
	if err != nil {
		var validationErr *application.ValidationError
		switch {
		case errors.Is(err, application.ErrRateLimited):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save submission"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"reference_id": contact.ReferenceID,
		"message":      "Thank you for reaching out. We will get back to you soon.",
	})
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	contacts, err := h.service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(contacts)
}

func (h *ContactHandler) MarkResponded(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := h.service.MarkResponded(c.Context(), int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "submission not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Submission marked as responded"})
}
