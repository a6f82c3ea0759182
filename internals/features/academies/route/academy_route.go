package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/features/academies/controller"
)

func AcademyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAcademyController(db)

	academies := api.Group("/academies")
	academies.Get("/me", ctrl.GetMyAcademy)
}
