package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/cache"
	"classraum_backend/internals/features/school/classrooms/controller"
)

func ClassroomRoutes(api fiber.Router, db *gorm.DB, store *cache.Store) {
	ctrl := controller.NewClassroomController(db, store)

	classrooms := api.Group("/classrooms")
	classrooms.Get("/", ctrl.List)
	classrooms.Get("/:id", ctrl.Get)
	classrooms.Post("/", ctrl.Create)
	classrooms.Patch("/:id", ctrl.Update)
	classrooms.Delete("/:id", ctrl.Delete)
}
