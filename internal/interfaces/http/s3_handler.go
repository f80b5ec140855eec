package http

import (
	"log"

	"github.com/gofiber/fiber/v2"
	services "github.com/rudhirsetu/website-backend/internal/service"
)

type S3Handler struct {
	service *services.S3Service
}

func NewS3Handler(service *services.S3Service) *S3Handler {
	return &S3Handler{
		service: service,
	}
}

// HandleUploadImage receives a multipart image and stores it in the media
// bucket, returning the public URL for the CMS entry.
func (h *S3Handler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Printf("upload: failed to retrieve file: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing file field",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("upload: failed to open file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer file.Close()

	url, err := h.service.UploadImage(c.Context(), file, fileHeader)
	if err != nil {
		log.Printf("upload: failed to upload file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to upload file",
		})
	}

	return c.JSON(fiber.Map{
		"url": url,
	})
}
