package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/cache"
	"classraum_backend/internals/features/school/sessions/controller"
)

func SessionRoutes(api fiber.Router, db *gorm.DB, store *cache.Store) {
	ctrl := controller.NewSessionController(db, store)

	sessions := api.Group("/sessions")
	sessions.Get("/", ctrl.List)
	sessions.Post("/", ctrl.Create)
	sessions.Patch("/:id", ctrl.Update)
	sessions.Delete("/:id", ctrl.Delete)
}
