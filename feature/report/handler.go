package report

import (
	"errors"
	"strconv"

	"scene-audit/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for persisted audit reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reports")
	group.Get("/", h.HandleList)
	group.Get("/latest", h.HandleLatest)
	group.Get("/:id", h.HandleGet)
}

// HandleList returns run summaries, newest first. The optional "limit"
// query parameter caps the result count.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	runs, err := h.service.List(c.Context(), limit)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list runs"})
	}
	return c.JSON(runs)
}

// HandleLatest returns the most recent run with its findings.
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	run, err := h.service.Latest(c.Context())
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no runs recorded"})
		}
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Failed to load latest run", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load run"})
	}
	return c.JSON(run)
}

// HandleGet returns one run by ID with its findings.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	run, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "run not found"})
		}
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Failed to load run", zap.Error(err), zap.String("id", c.Params("id")))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load run"})
	}
	return c.JSON(run)
}

func isNotFound(err error) bool {
	// Store errors wrap the GORM sentinel.
	return errors.Is(err, gorm.ErrRecordNotFound)
}
