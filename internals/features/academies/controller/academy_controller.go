package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/features/academies/model"
	helper "classraum_backend/internals/helpers"
)

type AcademyController struct {
	DB *gorm.DB
}

func NewAcademyController(db *gorm.DB) *AcademyController {
	return &AcademyController{DB: db}
}

// 🟢 GET /api/a/academies/me — the caller's own academy, by token only.
func (ctrl *AcademyController) GetMyAcademy(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var academy model.AcademyModel
	if err := ctrl.DB.
		First(&academy, "academy_id = ?", academyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "academy not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := helper.EnsureAcademyOwned(c, academy.AcademyID, academyID); err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", academy)
}
