// file: internals/features/school/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"classraum_backend/internals/cache"
	"classraum_backend/internals/features/school/assignments/dto"
	"classraum_backend/internals/features/school/assignments/model"
	helper "classraum_backend/internals/helpers"
)

type AssignmentController struct {
	DB    *gorm.DB
	Cache *cache.Store
}

func NewAssignmentController(db *gorm.DB, store *cache.Store) *AssignmentController {
	return &AssignmentController{DB: db, Cache: store}
}

var assignmentSortable = map[string]string{
	"created_at": "assignment_created_at",
	"due_date":   "assignment_due_date",
	"title":      "assignment_title",
}

// 🟢 GET /api/a/assignments
// Filters: classroom_id, session_id, type
func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	// Cache only the unfiltered first page, the common dashboard read.
	cacheable := c.Query("classroom_id") == "" && c.Query("session_id") == "" &&
		c.Query("type") == "" && p.Page == 1
	if cacheable {
		if v, ok := ctrl.Cache.Get(cache.KindAssignments, academyID); ok {
			if cached, ok := v.(fiber.Map); ok {
				return c.Status(fiber.StatusOK).JSON(cached)
			}
		}
	}

	q := ctrl.DB.Model(&model.AssignmentModel{}).
		Scopes(helper.ScopeAcademy("assignment_academy_id", academyID))

	if v := c.Query("classroom_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("assignment_classroom_id = ?", id)
		}
	}
	if v := c.Query("session_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("assignment_session_id = ?", id)
		}
	}
	if v := c.Query("type"); v != "" {
		q = q.Where("assignment_type = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(assignmentSortable, "created_at")
	var list []model.AssignmentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	payload := fiber.Map{
		"success": true,
		"message": "ok",
		"data":    dto.ToAssignmentResponses(list),
		"meta":    helper.BuildMeta(total, p),
	}
	if cacheable {
		ctrl.Cache.Set(cache.KindAssignments, academyID, payload)
	}
	return c.Status(fiber.StatusOK).JSON(payload)
}

// 🟢 POST /api/a/assignments
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.AssignmentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	duePtr, err := parseDueDate(in.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid due_date, want YYYY-MM-DD")
	}

	m := in.ToModel(academyID, duePtr)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindAssignments)
	return helper.JsonCreated(c, "assignment created", dto.ToAssignmentResponse(m))
}

// 🟢 PATCH /api/a/assignments/:id
func (ctrl *AssignmentController) Update(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	var in dto.AssignmentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	duePtr, err := parseDueDate(in.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid due_date, want YYYY-MM-DD")
	}

	var m model.AssignmentModel
	if err := ctrl.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.AssignmentAcademyID, academyID); err != nil {
		return err
	}

	in.ApplyAssignmentUpdate(&m, duePtr)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindAssignments)
	return helper.JsonUpdated(c, "assignment updated", dto.ToAssignmentResponse(m))
}

// 🟢 DELETE /api/a/assignments/:id
func (ctrl *AssignmentController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	var m model.AssignmentModel
	if err := ctrl.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.AssignmentAcademyID, academyID); err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_grade_assignment_id = ?", id).
			Delete(&model.AssignmentGradeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindAssignments)
	return helper.JsonDeleted(c, "assignment deleted", fiber.Map{"assignment_id": id})
}

// 🟢 GET /api/a/assignments/:id/grades
func (ctrl *AssignmentController) ListGrades(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	var a model.AssignmentModel
	if err := ctrl.DB.First(&a, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, a.AssignmentAcademyID, academyID); err != nil {
		return err
	}

	var rows []model.AssignmentGradeModel
	if err := ctrl.DB.
		Where("assignment_grade_assignment_id = ?", id).
		Order("assignment_grade_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.ToAssignmentGradeResponses(rows))
}

// 🟢 PUT /api/a/assignments/:id/grades
// Upsert on (assignment, student).
func (ctrl *AssignmentController) UpsertGrade(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	var in dto.AssignmentGradeUpsertDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var a model.AssignmentModel
	if err := ctrl.DB.First(&a, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, a.AssignmentAcademyID, academyID); err != nil {
		return err
	}

	status := in.Status
	if status == "" {
		status = "graded"
	}
	var submittedAt *time.Time
	if status == "submitted" || status == "graded" {
		now := time.Now()
		submittedAt = &now
	}

	row := model.AssignmentGradeModel{
		AssignmentGradeAssignmentID: id,
		AssignmentGradeStudentID:    in.StudentID,
		AssignmentGradeAcademyID:    academyID,
		AssignmentGradeScore:        in.Score,
		AssignmentGradeStatus:       status,
		AssignmentGradeFeedback:     in.Feedback,
		AssignmentGradeSubmittedAt:  submittedAt,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "assignment_grade_assignment_id"},
			{Name: "assignment_grade_student_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"assignment_grade_score",
			"assignment_grade_status",
			"assignment_grade_feedback",
			"assignment_grade_submitted_at",
			"assignment_grade_updated_at",
		}),
	}).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindAssignments)
	return helper.JsonUpdated(c, "grade saved", dto.ToAssignmentGradeResponse(row))
}

func parseDueDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
