package http

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/rudhirsetu/website-backend/internal/domain"
	"github.com/rudhirsetu/website-backend/internal/ogimage"
)

const ogCacheControl = "public, max-age=3600, s-maxage=3600"

// OGHandler serves the dynamic social preview images.
type OGHandler struct {
	composer     *ogimage.Composer
	events       domain.EventRepository
	defaultTitle string
	defaultDesc  string
}

func NewOGHandler(composer *ogimage.Composer, events domain.EventRepository, defaultTitle, defaultDesc string) *OGHandler {
	return &OGHandler{
		composer:     composer,
		events:       events,
		defaultTitle: defaultTitle,
		defaultDesc:  defaultDesc,
	}
}

// Generic serves GET /api/og. Missing params fall back to the organisation
// defaults; asset trouble degrades inside the composer, so this endpoint
// only fails on an encoding error.
func (h *OGHandler) Generic(c *fiber.Ctx) error {
	title := c.Query("title")
	if title == "" {
		title = h.defaultTitle
	}
	description := c.Query("description")
	if description == "" {
		description = h.defaultDesc
	}

	card, err := h.composer.RenderGeneric(c.Context(), title, description)
	if err != nil {
		log.Printf("og: generic card render failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render preview image")
	}

	c.Set(fiber.HeaderCacheControl, ogCacheControl)
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(card)
}

// Event serves GET /api/og/event/:id. Unknown ids are a plain-text 404 and
// any asset or composition failure a plain-text 500, never a partial card.
func (h *OGHandler) Event(c *fiber.Ctx) error {
	id := c.Params("id")

	event, err := h.events.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("event not found")
		}
		log.Printf("og: event %s lookup failed: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load event")
	}

	card, err := h.composer.RenderEvent(c.Context(), event)
	if err != nil {
		log.Printf("og: event %s card render failed: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render preview image")
	}

	c.Set(fiber.HeaderCacheControl, ogCacheControl)
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(card)
}
