package handlers

import (
	"errors"

	service "github.com/divinedekor/decor-service/internal/services"
	"github.com/divinedekor/decor-service/internal/utils"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TestimonialHandler struct {
	svc *service.TestimonialService
	log *zap.SugaredLogger
}

func NewTestimonialHandler(svc *service.TestimonialService, log *zap.SugaredLogger) *TestimonialHandler {
	return &TestimonialHandler{svc: svc, log: log}
}

// GET /api/testimonials
func (h *TestimonialHandler) List(c *fiber.Ctx) error {
	reviews, err := h.svc.List()
	if err != nil {
		h.log.Errorf("GET /api/testimonials: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Server Error")
	}
	return c.JSON(reviews)
}

// POST /api/testimonials
func (h *TestimonialHandler) Submit(c *fiber.Ctx) error {
	var in service.SubmitTestimonialInput
	if err := c.BodyParser(&in); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	created, err := h.svc.Submit(in)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return utils.JSONError(c, fiber.StatusBadRequest, verr.Message)
		}
		h.log.Errorf("POST /api/testimonials: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Server Error")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
