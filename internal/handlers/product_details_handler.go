package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/services"
)

type ProductDetailsHandler struct {
	detailsService *services.ProductDetailsService
}

func NewProductDetailsHandler(detailsService *services.ProductDetailsService) *ProductDetailsHandler {
	return &ProductDetailsHandler{detailsService: detailsService}
}

func (h *ProductDetailsHandler) Get(c *fiber.Ctx) error {
	productID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid product ID"})
	}

	details, err := h.detailsService.Get(productID)
	if err != nil {
		if errors.Is(err, services.ErrDetailsNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		slog.Error("failed to fetch product details", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch product details"})
	}
	return c.JSON(details)
}

func (h *ProductDetailsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	details, err := h.detailsService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProductID) || errors.Is(err, services.ErrInvalidRating) ||
			errors.Is(err, services.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		slog.Error("failed to create product details", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to create product details"})
	}
	return c.Status(fiber.StatusCreated).JSON(details)
}

func (h *ProductDetailsHandler) Update(c *fiber.Ctx) error {
	productID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid product ID"})
	}

	var req dto.UpdateProductDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	details, err := h.detailsService.Update(productID, &req)
	if err != nil {
		if errors.Is(err, services.ErrDetailsNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		slog.Error("failed to update product details", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update product details"})
	}
	return c.JSON(details)
}

func (h *ProductDetailsHandler) Delete(c *fiber.Ctx) error {
	productID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid product ID"})
	}

	if err := h.detailsService.Delete(productID); err != nil {
		slog.Error("failed to delete product details", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to delete product details"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ProductDetailsHandler) ReduceStock(c *fiber.Ctx) error {
	productID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid product ID"})
	}

	quantity, err := h.detailsService.ReduceStock(productID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDetailsNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrOutOfStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		slog.Error("failed to reduce stock", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update stock"})
	}
	return c.JSON(dto.ReduceStockResponse{Message: "Quantity reduced", Quantity: quantity})
}
