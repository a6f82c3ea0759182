// file: internals/features/finance/payments/controller/recurring_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/features/finance/payments/dto"
	"classraum_backend/internals/features/finance/payments/model"
	"classraum_backend/internals/features/finance/payments/service"
	helper "classraum_backend/internals/helpers"
)

type RecurringController struct {
	DB        *gorm.DB
	Generator *service.Generator
}

func NewRecurringController(db *gorm.DB) *RecurringController {
	return &RecurringController{DB: db, Generator: service.NewGenerator(db)}
}

// 🟢 POST /api/a/payments/recurring/control
// Template level (no student_id): pause/resume flip is_active,
// deactivate additionally drops all enrollments.
// Enrollment level (student_id set): pause/resume flip the enrollment
// status, deactivate removes the enrollment.
func (ctrl *RecurringController) Control(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.RecurringControlDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var tpl model.PaymentTemplateModel
	if err := ctrl.DB.First(&tpl, "payment_template_id = ?", in.TemplateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment template not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, tpl.PaymentTemplateAcademyID, academyID); err != nil {
		return err
	}

	if in.StudentID == nil {
		return ctrl.controlTemplate(c, &tpl, in.Action)
	}
	return ctrl.controlEnrollment(c, &tpl, in)
}

func (ctrl *RecurringController) controlTemplate(c *fiber.Ctx, tpl *model.PaymentTemplateModel, action string) error {
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		switch action {
		case "pause":
			tpl.PaymentTemplateIsActive = false
		case "resume":
			tpl.PaymentTemplateIsActive = true
		case "deactivate":
			tpl.PaymentTemplateIsActive = false
			if err := tx.Where("template_enrollment_template_id = ?", tpl.PaymentTemplateID).
				Delete(&model.TemplateEnrollmentModel{}).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.PaymentTemplateModel{}).
			Where("payment_template_id = ?", tpl.PaymentTemplateID).
			Update("payment_template_is_active", tpl.PaymentTemplateIsActive).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "template "+action+"d", fiber.Map{
		"action":              action,
		"payment_template_id": tpl.PaymentTemplateID,
		"is_active":           tpl.PaymentTemplateIsActive,
	})
}

func (ctrl *RecurringController) controlEnrollment(c *fiber.Ctx, tpl *model.PaymentTemplateModel, in dto.RecurringControlDTO) error {
	q := ctrl.DB.
		Where("template_enrollment_template_id = ?", tpl.PaymentTemplateID).
		Where("template_enrollment_student_id = ?", *in.StudentID)

	switch in.Action {
	case "pause", "resume":
		status := model.EnrollmentPaused
		if in.Action == "resume" {
			status = model.EnrollmentActive
		}
		res := q.Model(&model.TemplateEnrollmentModel{}).
			Update("template_enrollment_status", status)
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "enrollment not found")
		}

	case "deactivate":
		res := q.Delete(&model.TemplateEnrollmentModel{})
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "enrollment not found")
		}
	}

	return helper.JsonUpdated(c, "enrollment "+in.Action+"d", fiber.Map{
		"action":              in.Action,
		"payment_template_id": tpl.PaymentTemplateID,
		"student_id":          *in.StudentID,
	})
}

// 🟢 POST /api/payments/recurring/generate — API-key gated.
func (ctrl *RecurringController) Generate(c *fiber.Ctx) error {
	res, err := ctrl.Generator.Run()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "generation completed", res)
}

// 🟢 GET /api/payments/recurring/generate — monitoring view.
func (ctrl *RecurringController) GenerateStatus(c *fiber.Ctx) error {
	st, err := ctrl.Generator.Status()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", st)
}
