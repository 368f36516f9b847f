package handlers

import (
	"errors"

	service "github.com/divinedekor/decor-service/internal/services"
	"github.com/divinedekor/decor-service/internal/utils"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GalleryHandler struct {
	svc *service.GalleryService
	log *zap.SugaredLogger
}

func NewGalleryHandler(svc *service.GalleryService, log *zap.SugaredLogger) *GalleryHandler {
	return &GalleryHandler{svc: svc, log: log}
}

type fileUploadRequest struct {
	FilePath string `json:"filePath"`
	FileType string `json:"fileType"`
}

// POST /api/fileUpload — persists metadata only; the media bytes already
// live on the external host.
func (h *GalleryHandler) Upload(c *fiber.Ctx) error {
	var req fileUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.svc.Create(c.Context(), req.FilePath, req.FileType)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return utils.JSONError(c, fiber.StatusBadRequest, verr.Message)
		}
		h.log.Errorf("POST /api/fileUpload: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Server Error")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "File metadata saved",
		"data":    item,
	})
}

// GET /api/gallery?page=&limit=
func (h *GalleryHandler) ListAll(c *fiber.Ctx) error {
	page, err := h.svc.ListAll(c.Context(), c.QueryInt("page"), c.QueryInt("limit"))
	if err != nil {
		h.log.Errorf("GET /api/gallery: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Server Error")
	}
	return c.JSON(page)
}

// GET /api/gallery/type/:fileType?page=&limit=
func (h *GalleryHandler) ListByType(c *fiber.Ctx) error {
	page, err := h.svc.ListByType(c.Context(), c.Params("fileType"), c.QueryInt("page"), c.QueryInt("limit"))
	if err != nil {
		h.log.Errorf("GET /api/gallery/type: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Server Error")
	}
	return c.JSON(page)
}

// POST /api/gallery/like/:id
func (h *GalleryHandler) Like(c *fiber.Ctx) error {
	item, err := h.svc.Like(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.JSONError(c, fiber.StatusNotFound, "Gallery item not found")
		}
		h.log.Errorf("POST /api/gallery/like: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Server Error")
	}
	return c.JSON(fiber.Map{
		"message": "Like count incremented",
		"data":    item,
	})
}
