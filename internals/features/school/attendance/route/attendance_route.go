package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/cache"
	"classraum_backend/internals/features/school/attendance/controller"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB, store *cache.Store) {
	ctrl := controller.NewAttendanceController(db, store)

	attendance := api.Group("/attendance")
	attendance.Get("/", ctrl.List)
	attendance.Post("/", ctrl.Create)
	attendance.Patch("/:id", ctrl.Update)
	attendance.Delete("/:id", ctrl.Delete)
}
