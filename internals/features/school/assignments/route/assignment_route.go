// file: internals/features/school/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/cache"
	"classraum_backend/internals/features/school/assignments/controller"
)

func AssignmentRoutes(api fiber.Router, db *gorm.DB, store *cache.Store) {
	ctrl := controller.NewAssignmentController(db, store)

	assignments := api.Group("/assignments")
	assignments.Get("/", ctrl.List)
	assignments.Post("/", ctrl.Create)
	assignments.Patch("/:id", ctrl.Update)
	assignments.Delete("/:id", ctrl.Delete)
	assignments.Get("/:id/grades", ctrl.ListGrades)
	assignments.Put("/:id/grades", ctrl.UpsertGrade)
}
