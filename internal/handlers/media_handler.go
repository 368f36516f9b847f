package handlers

import (
	"io"
	"net/http"

	service "github.com/divinedekor/decor-service/internal/services"
	"github.com/divinedekor/decor-service/internal/utils"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MediaHandler struct {
	svc *service.MediaService
	log *zap.SugaredLogger
}

func NewMediaHandler(svc *service.MediaService, log *zap.SugaredLogger) *MediaHandler {
	return &MediaHandler{svc: svc, log: log}
}

// POST /api/media (multipart/form-data 'file') — pushes the bytes to the
// media host and returns the durable URL for the follow-up /api/fileUpload.
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "Missing 'file' field")
	}
	if err := utils.ValidateFileHeader(fileHeader); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.log.Errorf("POST /api/media open: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Server Error")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		h.log.Errorf("POST /api/media read: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Server Error")
	}

	ct := fileHeader.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(data)
	}

	res, err := h.svc.Upload(c.Context(), fileHeader.Filename, ct, data)
	if err != nil {
		h.log.Errorf("POST /api/media upload: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Server Error")
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
