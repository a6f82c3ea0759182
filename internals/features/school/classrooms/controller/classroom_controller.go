// file: internals/features/school/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"classraum_backend/internals/cache"
	"classraum_backend/internals/features/school/classrooms/dto"
	"classraum_backend/internals/features/school/classrooms/model"
	"classraum_backend/internals/features/school/classrooms/service"
	helper "classraum_backend/internals/helpers"
)

type ClassroomController struct {
	DB    *gorm.DB
	Cache *cache.Store
}

func NewClassroomController(db *gorm.DB, store *cache.Store) *ClassroomController {
	return &ClassroomController{DB: db, Cache: store}
}

// 🟢 GET /api/a/classrooms — read-through cached per academy.
func (ctrl *ClassroomController) List(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	if cached, ok := ctrl.Cache.Get(cache.KindClassrooms, academyID); ok {
		return helper.JsonOK(c, "ok", cached)
	}

	var list []model.ClassroomModel
	if err := ctrl.DB.
		Scopes(helper.ScopeAcademy("classroom_academy_id", academyID)).
		Preload("Schedules").
		Order("classroom_created_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.ToClassroomResponses(list)
	ctrl.Cache.Set(cache.KindClassrooms, academyID, resp)
	return helper.JsonOK(c, "ok", resp)
}

// 🟢 GET /api/a/classrooms/:id
func (ctrl *ClassroomController) Get(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}

	var m model.ClassroomModel
	if err := ctrl.DB.Preload("Schedules").First(&m, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.ClassroomAcademyID, academyID); err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToClassroomResponse(m))
}

// 🟢 POST /api/a/classrooms
// Classroom + schedules + enrollments are one transaction: a failed later
// step must not leave orphaned rows.
func (ctrl *ClassroomController) Create(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.ClassroomCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := in.ToModel(academyID)
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if len(in.Schedules) > 0 {
			rows := scheduleRows(m.ClassroomID, academyID, in.Schedules)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if len(in.StudentIDs) > 0 {
			rows := enrollmentRows(m.ClassroomID, academyID, in.StudentIDs)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[CLASSROOM] create failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindClassrooms, cache.KindSessions)

	if err := ctrl.DB.Preload("Schedules").First(&m, "classroom_id = ?", m.ClassroomID).Error; err == nil {
		return helper.JsonCreated(c, "classroom created", dto.ToClassroomResponse(m))
	}
	return helper.JsonCreated(c, "classroom created", dto.ToClassroomResponse(m))
}

// 🟢 PATCH /api/a/classrooms/:id
// A schedule edit that moves or drops an existing slot is destructive; it is
// answered with 409 + the diff until the caller repeats the request with
// confirm=true.
func (ctrl *ClassroomController) Update(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}

	var in dto.ClassroomUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m model.ClassroomModel
	if err := ctrl.DB.Preload("Schedules").First(&m, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.ClassroomAcademyID, academyID); err != nil {
		return err
	}

	replaceSchedules := in.Schedules != nil
	if replaceSchedules {
		diff := service.DiffWeeklySchedule(dto.SlotsFromModels(m.Schedules), dto.SlotsFromDTOs(in.Schedules))
		if diff.RequiresConfirmation() && !in.Confirm {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success":               false,
				"message":               "schedule change requires confirmation",
				"error_code":            "SCHEDULE_CHANGE_CONFIRMATION_REQUIRED",
				"diff":                  diff,
				"requires_confirmation": true,
			})
		}
	}

	dto.ApplyClassroomUpdate(&m, in)

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		if replaceSchedules {
			if err := tx.Where("classroom_schedule_classroom_id = ?", m.ClassroomID).
				Delete(&model.ClassroomScheduleModel{}).Error; err != nil {
				return err
			}
			if len(in.Schedules) > 0 {
				rows := scheduleRows(m.ClassroomID, academyID, in.Schedules)
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}
		if in.StudentIDs != nil {
			if err := tx.Where("classroom_student_classroom_id = ?", m.ClassroomID).
				Delete(&model.ClassroomStudentModel{}).Error; err != nil {
				return err
			}
			if len(*in.StudentIDs) > 0 {
				rows := enrollmentRows(m.ClassroomID, academyID, *in.StudentIDs)
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[CLASSROOM] update failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindClassrooms, cache.KindSessions)

	var out model.ClassroomModel
	if err := ctrl.DB.Preload("Schedules").First(&out, "classroom_id = ?", m.ClassroomID).Error; err != nil {
		out = m
	}
	return helper.JsonUpdated(c, "classroom updated", dto.ToClassroomResponse(out))
}

// 🟢 DELETE /api/a/classrooms/:id — soft deletes classroom, hard removes
// schedules and enrollments, all in one transaction.
func (ctrl *ClassroomController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}

	var m model.ClassroomModel
	if err := ctrl.DB.First(&m, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.ClassroomAcademyID, academyID); err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("classroom_schedule_classroom_id = ?", id).
			Delete(&model.ClassroomScheduleModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("classroom_student_classroom_id = ?", id).
			Delete(&model.ClassroomStudentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		log.Printf("[CLASSROOM] delete failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindClassrooms, cache.KindSessions)
	return helper.JsonDeleted(c, "classroom deleted", fiber.Map{"classroom_id": id})
}

func scheduleRows(classroomID, academyID uuid.UUID, in []dto.ScheduleSlotDTO) []model.ClassroomScheduleModel {
	rows := make([]model.ClassroomScheduleModel, 0, len(in))
	for _, s := range in {
		rows = append(rows, model.ClassroomScheduleModel{
			ClassroomScheduleClassroomID: classroomID,
			ClassroomScheduleAcademyID:   academyID,
			ClassroomScheduleDay:         s.Day,
			ClassroomScheduleStartTime:   s.StartTime,
			ClassroomScheduleEndTime:     s.EndTime,
		})
	}
	return rows
}

func enrollmentRows(classroomID, academyID uuid.UUID, studentIDs []uuid.UUID) []model.ClassroomStudentModel {
	rows := make([]model.ClassroomStudentModel, 0, len(studentIDs))
	for _, sid := range studentIDs {
		rows = append(rows, model.ClassroomStudentModel{
			ClassroomStudentClassroomID: classroomID,
			ClassroomStudentStudentID:   sid,
			ClassroomStudentAcademyID:   academyID,
		})
	}
	return rows
}
