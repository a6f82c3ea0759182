// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"classraum_backend/internals/cache"
	"classraum_backend/internals/features/school/attendance/dto"
	"classraum_backend/internals/features/school/attendance/model"
	helper "classraum_backend/internals/helpers"
)

type AttendanceController struct {
	DB    *gorm.DB
	Cache *cache.Store
}

func NewAttendanceController(db *gorm.DB, store *cache.Store) *AttendanceController {
	return &AttendanceController{DB: db, Cache: store}
}

// 🟢 GET /api/a/attendance?session_id=&student_id=&status=
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.AttendanceModel{}).
		Scopes(helper.ScopeAcademy("attendance_academy_id", academyID))

	if v := c.Query("session_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("attendance_session_id = ?", id)
		}
	}
	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("attendance_student_id = ?", id)
		}
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("attendance_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.AttendanceModel
	if err := q.Order("attendance_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToAttendanceResponses(list), helper.BuildMeta(total, p))
}

// 🟢 POST /api/a/attendance
func (ctrl *AttendanceController) Create(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.AttendanceCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := in.ToModel(academyID)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindAttendance, cache.KindSessions)
	return helper.JsonCreated(c, "attendance recorded", dto.ToAttendanceResponse(m))
}

// 🟢 PATCH /api/a/attendance/:id
func (ctrl *AttendanceController) Update(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid attendance id")
	}

	var in dto.AttendanceUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m model.AttendanceModel
	if err := ctrl.DB.First(&m, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.AttendanceAcademyID, academyID); err != nil {
		return err
	}

	dto.ApplyAttendanceUpdate(&m, in)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindAttendance, cache.KindSessions)
	return helper.JsonUpdated(c, "attendance updated", dto.ToAttendanceResponse(m))
}

// 🟢 DELETE /api/a/attendance/:id
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid attendance id")
	}

	var m model.AttendanceModel
	if err := ctrl.DB.First(&m, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.AttendanceAcademyID, academyID); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindAttendance, cache.KindSessions)
	return helper.JsonDeleted(c, "attendance deleted", fiber.Map{"attendance_id": id})
}
