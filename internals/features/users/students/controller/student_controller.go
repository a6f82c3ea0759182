// file: internals/features/users/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"classraum_backend/internals/cache"
	"classraum_backend/internals/features/users/students/dto"
	"classraum_backend/internals/features/users/students/model"
	helper "classraum_backend/internals/helpers"
)

type StudentController struct {
	DB    *gorm.DB
	Cache *cache.Store
}

func NewStudentController(db *gorm.DB, store *cache.Store) *StudentController {
	return &StudentController{DB: db, Cache: store}
}

var studentSortable = map[string]string{
	"created_at": "student_created_at",
	"updated_at": "student_updated_at",
	"name":       "student_name",
}

// 🟢 GET /api/a/students
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.StudentModel{}).
		Scopes(helper.ScopeAcademy("student_academy_id", academyID))

	if v := c.Query("active"); v != "" {
		q = q.Where("student_active = ?", strings.EqualFold(v, "true"))
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("student_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(studentSortable, "created_at")
	var list []model.StudentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToStudentResponses(list), helper.BuildMeta(total, p))
}

// 🟢 POST /api/a/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.StudentCreateDTO
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

	ctrl.Cache.Invalidate(academyID, cache.KindStudents)
	return helper.JsonCreated(c, "student created", dto.ToStudentResponse(m))
}

// 🟢 PATCH /api/a/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m model.StudentModel
	if err := ctrl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.StudentAcademyID, academyID); err != nil {
		return err
	}

	dto.ApplyStudentUpdate(&m, in)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindStudents)
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(m))
}

// 🟢 DELETE /api/a/students/:id (soft delete)
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var m model.StudentModel
	if err := ctrl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.StudentAcademyID, academyID); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindStudents)
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}
