// file: internals/features/school/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"classraum_backend/internals/cache"
	"classraum_backend/internals/features/school/sessions/dto"
	"classraum_backend/internals/features/school/sessions/model"
	helper "classraum_backend/internals/helpers"
)

type SessionController struct {
	DB    *gorm.DB
	Cache *cache.Store
}

func NewSessionController(db *gorm.DB, store *cache.Store) *SessionController {
	return &SessionController{DB: db, Cache: store}
}

var sessionSortable = map[string]string{
	"created_at": "session_created_at",
	"date":       "session_date",
	"status":     "session_status",
}

// 🟢 GET /api/a/sessions
// Filters: classroom_id, status, date_from, date_to
func (ctrl *SessionController) List(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "date", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.SessionModel{}).
		Scopes(helper.ScopeAcademy("session_academy_id", academyID))

	if v := c.Query("classroom_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("session_classroom_id = ?", id)
		}
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("session_status = ?", v)
	}
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("session_date >= ?", t)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("session_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(sessionSortable, "date")
	var list []model.SessionModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToSessionResponses(list), helper.BuildMeta(total, p))
}

// 🟢 POST /api/a/sessions
func (ctrl *SessionController) Create(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.SessionCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	date, err := time.Parse("2006-01-02", in.SessionDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid session_date, want YYYY-MM-DD")
	}

	m := in.ToModel(academyID, date)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindSessions, cache.KindClassrooms)
	return helper.JsonCreated(c, "session created", dto.ToSessionResponse(m))
}

// 🟢 PATCH /api/a/sessions/:id
func (ctrl *SessionController) Update(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid session id")
	}

	var in dto.SessionUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var datePtr *time.Time
	if in.SessionDate != nil {
		d, err := time.Parse("2006-01-02", *in.SessionDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid session_date, want YYYY-MM-DD")
		}
		datePtr = &d
	}

	var m model.SessionModel
	if err := ctrl.DB.First(&m, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.SessionAcademyID, academyID); err != nil {
		return err
	}

	dto.ApplySessionUpdate(&m, in, datePtr)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindSessions, cache.KindClassrooms)
	return helper.JsonUpdated(c, "session updated", dto.ToSessionResponse(m))
}

// 🟢 DELETE /api/a/sessions/:id
func (ctrl *SessionController) Delete(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid session id")
	}

	var m model.SessionModel
	if err := ctrl.DB.First(&m, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.SessionAcademyID, academyID); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.Cache.Invalidate(academyID, cache.KindSessions, cache.KindClassrooms)
	return helper.JsonDeleted(c, "session deleted", fiber.Map{"session_id": id})
}
