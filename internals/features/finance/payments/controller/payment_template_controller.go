// file: internals/features/finance/payments/controller/payment_template_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"classraum_backend/internals/features/finance/payments/dto"
	"classraum_backend/internals/features/finance/payments/model"
	"classraum_backend/internals/features/finance/payments/service"
	helper "classraum_backend/internals/helpers"
)

type PaymentTemplateController struct {
	DB *gorm.DB
}

func NewPaymentTemplateController(db *gorm.DB) *PaymentTemplateController {
	return &PaymentTemplateController{DB: db}
}

var templateSortable = map[string]string{
	"created_at":    "payment_template_created_at",
	"name":          "payment_template_name",
	"next_due_date": "payment_template_next_due_date",
}

// 🟢 GET /api/a/payments/templates
// Filters: active=true|false
func (ctrl *PaymentTemplateController) List(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.PaymentTemplateModel{}).
		Scopes(helper.ScopeAcademy("payment_template_academy_id", academyID))

	if v := c.Query("active"); v == "true" || v == "false" {
		q = q.Where("payment_template_is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(templateSortable, "created_at")
	var list []model.PaymentTemplateModel
	if err := q.Preload("Enrollments").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToPaymentTemplateResponses(list), helper.BuildMeta(total, p))
}

// 🟢 GET /api/a/payments/templates/:id
func (ctrl *PaymentTemplateController) Get(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	tpl, err := ctrl.findOwned(c, academyID, true)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToPaymentTemplateResponse(*tpl))
}

// 🟢 POST /api/a/payments/templates
// Template + initial enrollments are one transaction.
func (ctrl *PaymentTemplateController) Create(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.PaymentTemplateCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_date, want YYYY-MM-DD")
	}
	var endPtr *time.Time
	if in.EndDate != nil {
		end, err := time.Parse("2006-01-02", *in.EndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid end_date, want YYYY-MM-DD")
		}
		if end.Before(start) {
			return helper.JsonError(c, fiber.StatusBadRequest, "end_date must not be before start_date")
		}
		endPtr = &end
	}

	m := in.ToModel(academyID, start, endPtr)

	// The recurrence config must be coherent before anything is stored.
	next, err := service.NextDueDate(m, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrInvalidRecurrenceConfig) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"recurrence_type monthly requires day_of_month, weekly requires day_of_week")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	m.PaymentTemplateNextDueDate = &next

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if len(in.StudentIDs) == 0 {
			return nil
		}
		rows := make([]model.TemplateEnrollmentModel, 0, len(in.StudentIDs))
		for _, sid := range in.StudentIDs {
			rows = append(rows, model.TemplateEnrollmentModel{
				TemplateEnrollmentTemplateID: m.PaymentTemplateID,
				TemplateEnrollmentStudentID:  sid,
				TemplateEnrollmentAcademyID:  academyID,
				TemplateEnrollmentStatus:     model.EnrollmentActive,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		m.Enrollments = rows
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "payment template created", dto.ToPaymentTemplateResponse(m))
}

// 🟢 PATCH /api/a/payments/templates/:id
func (ctrl *PaymentTemplateController) Update(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	tpl, err := ctrl.findOwned(c, academyID, false)
	if err != nil {
		return err
	}

	var in dto.PaymentTemplateUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var endPtr *time.Time
	if in.EndDate != nil {
		end, err := time.Parse("2006-01-02", *in.EndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid end_date, want YYYY-MM-DD")
		}
		endPtr = &end
	}

	in.ApplyTemplateUpdate(tpl, endPtr)

	// Re-derive the next occurrence when the schedule fields moved.
	if in.DayOfMonth != nil || in.DayOfWeek != nil || in.EndDate != nil {
		next, err := service.NextDueDate(*tpl, time.Now())
		if err != nil {
			if errors.Is(err, service.ErrInvalidRecurrenceConfig) {
				return helper.JsonError(c, fiber.StatusBadRequest,
					"recurrence_type monthly requires day_of_month, weekly requires day_of_week")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		tpl.PaymentTemplateNextDueDate = &next
	}

	if err := ctrl.DB.Save(tpl).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "payment template updated", dto.ToPaymentTemplateResponse(*tpl))
}

// 🟢 DELETE /api/a/payments/templates/:id
// Soft-deletes the template and drops its enrollments; issued invoices
// keep their snapshot and stay untouched.
func (ctrl *PaymentTemplateController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	tpl, err := ctrl.findOwned(c, academyID, false)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_enrollment_template_id = ?", tpl.PaymentTemplateID).
			Delete(&model.TemplateEnrollmentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(tpl).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "payment template deleted", fiber.Map{"payment_template_id": tpl.PaymentTemplateID})
}

// 🟢 POST /api/a/payments/templates/:id/students
func (ctrl *PaymentTemplateController) AddEnrollment(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	tpl, err := ctrl.findOwned(c, academyID, false)
	if err != nil {
		return err
	}

	var in dto.EnrollmentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	row := model.TemplateEnrollmentModel{
		TemplateEnrollmentTemplateID:     tpl.PaymentTemplateID,
		TemplateEnrollmentStudentID:      in.StudentID,
		TemplateEnrollmentAcademyID:      academyID,
		TemplateEnrollmentAmountOverride: in.AmountOverride,
		TemplateEnrollmentStatus:         model.EnrollmentActive,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "student already enrolled in this template")
	}

	return helper.JsonCreated(c, "student enrolled", dto.ToEnrollmentResponse(row))
}

// 🟢 PATCH /api/a/payments/templates/:id/students/:studentId
func (ctrl *PaymentTemplateController) UpdateEnrollment(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	tpl, err := ctrl.findOwned(c, academyID, false)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var in dto.EnrollmentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var row model.TemplateEnrollmentModel
	if err := ctrl.DB.
		Where("template_enrollment_template_id = ?", tpl.PaymentTemplateID).
		Where("template_enrollment_student_id = ?", studentID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if in.AmountOverride != nil {
		row.TemplateEnrollmentAmountOverride = in.AmountOverride
	}
	if in.Status != nil {
		row.TemplateEnrollmentStatus = model.EnrollmentStatus(*in.Status)
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "enrollment updated", dto.ToEnrollmentResponse(row))
}

// 🟢 DELETE /api/a/payments/templates/:id/students/:studentId
func (ctrl *PaymentTemplateController) RemoveEnrollment(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	tpl, err := ctrl.findOwned(c, academyID, false)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	res := ctrl.DB.
		Where("template_enrollment_template_id = ?", tpl.PaymentTemplateID).
		Where("template_enrollment_student_id = ?", studentID).
		Delete(&model.TemplateEnrollmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "enrollment not found")
	}

	return helper.JsonDeleted(c, "student removed from template", fiber.Map{
		"payment_template_id": tpl.PaymentTemplateID,
		"student_id":          studentID,
	})
}

// findOwned loads :id and checks tenancy.
func (ctrl *PaymentTemplateController) findOwned(c *fiber.Ctx, academyID uuid.UUID, withEnrollments bool) (*model.PaymentTemplateModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid template id")
	}

	q := ctrl.DB
	if withEnrollments {
		q = q.Preload("Enrollments")
	}
	var m model.PaymentTemplateModel
	if err := q.First(&m, "payment_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "payment template not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.PaymentTemplateAcademyID, academyID); err != nil {
		return nil, err
	}
	return &m, nil
}
