package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/cache"
	"classraum_backend/internals/features/users/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB, store *cache.Store) {
	ctrl := controller.NewStudentController(db, store)

	students := api.Group("/students")
	students.Get("/", ctrl.List)
	students.Post("/", ctrl.Create)
	students.Patch("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}
