// file: internals/middlewares/api_key_middleware.go
package middlewares

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"classraum_backend/internals/features/finance/payments/model"
	helper "classraum_backend/internals/helpers"
)

// ApiKeyAuth gates server-to-server endpoints. Keys are presented as
// "Bearer <prefix>.<secret>"; the prefix locates the row and the secret
// is checked against the stored bcrypt hash.
func ApiKeyAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authz, "Bearer ") {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing api key")
		}
		raw := strings.TrimPrefix(authz, "Bearer ")

		prefix, secret, ok := strings.Cut(raw, ".")
		if !ok || prefix == "" || secret == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "malformed api key")
		}

		var key model.ApiKeyModel
		if err := db.First(&key, "api_key_prefix = ? AND api_key_is_active = TRUE", prefix).Error; err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid api key")
		}
		if bcrypt.CompareHashAndPassword([]byte(key.ApiKeyHash), []byte(secret)) != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid api key")
		}

		// Best effort, a lost timestamp must not fail the request.
		now := time.Now()
		_ = db.Model(&model.ApiKeyModel{}).
			Where("api_key_id = ?", key.ApiKeyID).
			Update("api_key_last_used_at", now).Error

		return c.Next()
	}
}
