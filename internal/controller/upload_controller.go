package controller

import (
	"github.com/gofiber/fiber/v2"

	"inmosalta_backend/pkg/utils/image"
)

// InlineImage converts an uploaded file into a base64 data URL the
// property form can attach to its images list. Nothing is stored
// server-side; the payload travels inside the property record.
func InlineImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image file provided",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not open uploaded file",
		})
	}
	defer file.Close()

	dataURL, err := image.Inline(file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"image": dataURL})
}
