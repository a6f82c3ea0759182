// file: internals/helpers/tenant.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID    = "user_id"
	LocAcademyID = "academy_id"
	LocRole      = "role"
)

func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" missing from token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" missing from token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" invalid in token")
	}
	return id, nil
}

// AcademyIDFromToken is the single source of the tenant id. Handlers never
// accept an academy id from the request payload.
func AcademyIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocAcademyID)
}

func UserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocUserID)
}

// ScopeAcademy injects the tenant filter on the given physical column.
// Every list/read query goes through this scope so isolation is structural,
// not a per-call-site convention.
func ScopeAcademy(column string, academyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", academyID)
	}
}

// EnsureAcademyOwned is the defence-in-depth check on rows fetched by primary
// key: a mismatch means the caller guessed a foreign id.
func EnsureAcademyOwned(c *fiber.Ctx, rowAcademyID, academyID uuid.UUID) error {
	if rowAcademyID != academyID {
		return fiber.NewError(fiber.StatusForbidden, "security error: resource belongs to another academy")
	}
	return nil
}
