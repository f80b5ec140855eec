package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rudhirsetu/website-backend/internal/application"
	"github.com/rudhirsetu/website-backend/internal/domain"
)

type GalleryHandler struct {
	service *application.GalleryService
}

func NewGalleryHandler(service *application.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// GetFeatured returns the featured carousel collection.
func (h *GalleryHandler) GetFeatured(c *fiber.Ctx) error {
	images, err := h.service.GetFeatured(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load featured images"})
	}
	return c.JSON(fiber.Map{"images": images})
}

// GetPage returns one page of the general grid. Unknown categories are not
// an error, they just match nothing.
func (h *GalleryHandler) GetPage(c *fiber.Ctx) error {
	category := c.Query("category", domain.CategoryAll)
	page := c.QueryInt("page", 1)

	result, err := h.service.GetPage(c.Context(), category, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load gallery"})
	}
	return c.JSON(result)
}

// GetCategories returns the fixed taxonomy for the filter bar.
func (h *GalleryHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": domain.KnownCategories()})
}
