package ingest

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"stock-migrator/core/logger"
)

// Handler handles HTTP requests for the migration pipeline.
type Handler struct {
	service *Service
	cfg     Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cfg Config) *Handler {
	return &Handler{service: service, cfg: cfg}
}

// RegisterRoutes registers the migration routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/migration")
	group.Get("/classifications", h.HandleClassifications)
	group.Get("/runs", h.HandleRecentRuns)
	group.Post("/run", h.HandleRun)
}

// HandleClassifications classifies the configured input directory without
// parsing anything, so operators can verify file detection before a run.
func (h *Handler) HandleClassifications(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	dir := c.Query("dir", h.cfg.InputDir)
	classifications, err := h.service.Classify(dir)
	if err != nil {
		l.Error("Classification failed", zap.String("dir", dir), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(classifications)
}

// HandleRun executes a full migration over the configured input directory and
// writes the aggregate to the configured output file.
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	agg, report, err := h.service.Run(c.Context(), h.cfg.InputDir)
	if err != nil {
		l.Error("Migration run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.service.WriteAggregate(agg, h.cfg.OutputFile); err != nil {
		l.Error("Failed to write aggregate", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if h.cfg.Persist {
		if err := h.service.SaveRun(c.Context(), h.cfg.InputDir, agg, report); err != nil {
			l.Error("Failed to persist run", zap.Error(err))
		}
	}

	return c.JSON(report)
}

// HandleRecentRuns lists persisted run summaries.
func (h *Handler) HandleRecentRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.RecentRuns(c.Context(), c.QueryInt("limit", 20))
	if err != nil {
		l.Error("Failed to load runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(runs)
}
