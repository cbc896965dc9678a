package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/services"
)

type CategoryHandler struct {
	catalogService *services.CatalogService
}

func NewCategoryHandler(catalogService *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalogService: catalogService}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	rows, err := h.catalogService.ListCategories()
	if err != nil {
		slog.Error("failed to list categories", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to load categories"})
	}
	return c.JSON(rows)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	resp, err := h.catalogService.CreateCategory(&req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		slog.Error("failed to create category", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to create category"})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *CategoryHandler) SyncReport(c *fiber.Ctx) error {
	report, err := h.catalogService.SyncReport()
	if err != nil {
		slog.Error("category sync report failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Sync failed"})
	}
	return c.JSON(report)
}

func (h *CategoryHandler) SyncRepair(c *fiber.Ctx) error {
	if err := h.catalogService.SyncRepair(); err != nil {
		slog.Error("category sync repair failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Sync failed"})
	}
	return c.JSON(fiber.Map{"success": true})
}
