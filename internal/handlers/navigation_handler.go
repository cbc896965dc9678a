package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/services"
)

type NavigationHandler struct {
	catalogService *services.CatalogService
}

func NewNavigationHandler(catalogService *services.CatalogService) *NavigationHandler {
	return &NavigationHandler{catalogService: catalogService}
}

func (h *NavigationHandler) List(c *fiber.Ctx) error {
	items, err := h.catalogService.ListNavigation()
	if err != nil {
		slog.Error("failed to list navigation", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch navigation"})
	}
	return c.JSON(items)
}

func (h *NavigationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateNavigationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	item, err := h.catalogService.CreateNavigationItem(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleSlugRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrParentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		slog.Error("failed to create navigation item", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to create navigation item"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *NavigationHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateNavigationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	if err := h.catalogService.UpdateNavigationItem(&req); err != nil {
		switch {
		case errors.Is(err, services.ErrTitleSlugRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrNavigationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		slog.Error("failed to update navigation item", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update navigation item"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *NavigationHandler) Delete(c *fiber.Ctx) error {
	var req dto.DeleteNavigationRequest
	if err := c.BodyParser(&req); err != nil || req.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "ID is required"})
	}

	if err := h.catalogService.DeleteNavigationItem(req.ID); err != nil {
		var hasChildren *services.HasChildrenError
		switch {
		case errors.As(err, &hasChildren):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":    true,
				"message":  hasChildren.Error(),
				"children": hasChildren.Children,
			})
		case errors.Is(err, services.ErrNavigationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		slog.Error("failed to delete navigation item", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to delete navigation item"})
	}
	return c.JSON(fiber.Map{"success": true})
}
