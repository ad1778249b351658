package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/salon-booking/internal/config"
	apperrors "github.com/spec-kit/salon-booking/pkg/util"
)

// AdminKeyMiddleware gates admin routes behind a shared-secret key passed
// as the "key" query parameter or the x-admin-key header. Running without a
// configured key requires the explicit insecure opt-in at config load.
type AdminKeyMiddleware struct {
	key    string
	logger *zap.Logger
}

// NewAdminKeyMiddleware constructs middleware.
func NewAdminKeyMiddleware(cfg config.AdminConfig, logger *zap.Logger) *AdminKeyMiddleware {
	if cfg.Key == "" {
		logger.Warn("admin key not configured, admin endpoints are open to everyone")
	}
	return &AdminKeyMiddleware{key: cfg.Key, logger: logger}
}

// Handle enforces the admin key for protected routes.
func (m *AdminKeyMiddleware) Handle(c *fiber.Ctx) error {
	if m.key == "" {
		return c.Next()
	}

	provided := c.Query("key")
	if provided == "" {
		provided = c.Get("x-admin-key")
	}
	if subtle.ConstantTimeCompare([]byte(provided), []byte(m.key)) != 1 {
		return apperrors.NewUnauthorized("Unauthorized: Invalid admin key")
	}
	return c.Next()
}
