package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	rangeKey := c.Query("range", "30d")

	stats, err := h.dashboardService.GetStats(rangeKey)
	if err != nil {
		slog.Error("dashboard stats failed", "error", err, "path", c.Path(), "range", rangeKey)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to compute dashboard stats"})
	}
	return c.JSON(stats)
}
