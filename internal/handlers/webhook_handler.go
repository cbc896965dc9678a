package handlers

import (
	"crypto/subtle"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/softcorner-studio/storefront-api/internal/config"
	"github.com/softcorner-studio/storefront-api/internal/dto"
	"github.com/softcorner-studio/storefront-api/internal/services"
)

type WebhookHandler struct {
	userService *services.UserService
	cfg         *config.Config
}

func NewWebhookHandler(userService *services.UserService, cfg *config.Config) *WebhookHandler {
	return &WebhookHandler{userService: userService, cfg: cfg}
}

// HandleIdentity receives the identity provider's user notifications and
// mirrors new users into the store. The shared webhook secret is compared in
// constant time.
func (h *WebhookHandler) HandleIdentity(c *fiber.Ctx) error {
	if h.cfg.IdentityWebhookSecret == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Webhooks not configured",
		})
	}

	authHeader := c.Get("Authorization")
	if subtle.ConstantTimeCompare([]byte(authHeader), []byte("Bearer "+h.cfg.IdentityWebhookSecret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var webhook dto.IdentityWebhook
	if err := c.BodyParser(&webhook); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid webhook payload",
		})
	}

	if err := h.userService.SyncFromWebhook(&webhook.Data); err != nil {
		slog.Error("identity webhook processing failed", "error", err, "user_id", webhook.Data.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to process webhook",
		})
	}

	slog.Info("identity webhook processed", "user_id", webhook.Data.ID, "type", webhook.Type)
	return c.JSON(fiber.Map{"message": "User created"})
}
