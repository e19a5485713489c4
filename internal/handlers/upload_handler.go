package handlers

import (
	"fmt"
	"path/filepath"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/config"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/dto"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/identity"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// UploadHandler stores profile images on local disk and hands back a
// URL. Durable storage is a collaborator's concern; this stays dumb.
type UploadHandler struct {
	cfg *config.Config
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// UploadImage handles POST /auth/upload-image (multipart field "image").
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	userID, err := identity.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Image file is required",
		})
	}

	if file.Size > maxImageSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Image size must be less than 5MB",
		})
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid image format. Only JPEG and PNG are allowed",
		})
	}

	fileExt := filepath.Ext(file.Filename)
	if fileExt == "" {
		fileExt = ".jpg"
	}
	filename := fmt.Sprintf("%s_%s%s", userID.String()[:8], uuid.New().String()[:8], fileExt)

	savePath := filepath.Join(h.cfg.UploadDir, "profile", filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save image",
		})
	}

	return c.JSON(dto.UploadImageResponse{
		ImageURL: fmt.Sprintf("/uploads/profile/%s", filename),
	})
}
