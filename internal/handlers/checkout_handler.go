package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/softcorner-studio/storefront-api/internal/config"
	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/payments"
)

type CheckoutHandler struct {
	payments *payments.Client
	cfg      *config.Config
}

func NewCheckoutHandler(paymentsClient *payments.Client, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{payments: paymentsClient, cfg: cfg}
}

// Create builds a hosted payment session for the cart and returns the
// redirect URL. Orders are persisted separately; payment completion is not
// reconciled with order state.
func (h *CheckoutHandler) Create(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Cart is empty"})
	}

	url, err := h.payments.CreateCheckoutSession(c.Context(), req.Items,
		h.cfg.BaseURL+"/success", h.cfg.BaseURL+"/checkout")
	if err != nil {
		slog.Error("checkout session failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: true, Message: "Failed to create payment session"})
	}
	return c.JSON(dto.CheckoutResponse{URL: url})
}
