// file: internals/features/home/notifications/controller/notification_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"classraum_backend/internals/features/home/notifications/dto"
	"classraum_backend/internals/features/home/notifications/model"
	helper "classraum_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

var notificationSortable = map[string]string{
	"created_at": "notification_created_at",
	"is_read":    "notification_is_read",
}

// 🟢 GET /api/a/notifications
// Filters: unread=true, user_id, tag
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.NotificationModel{}).
		Scopes(helper.ScopeAcademy("notification_academy_id", academyID))

	if c.Query("unread") == "true" {
		q = q.Where("notification_is_read = FALSE")
	}
	if v := c.Query("user_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("notification_user_id = ?", id)
		}
	}
	if v := c.Query("tag"); v != "" {
		q = q.Where("? = ANY(notification_tags)", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(notificationSortable, "created_at")
	var list []model.NotificationModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToNotificationResponses(list), helper.BuildMeta(total, p))
}

// 🟢 POST /api/a/notifications
func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.NotificationCreateDTO
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

	return helper.JsonCreated(c, "notification created", dto.ToNotificationResponse(m))
}

// 🟢 PATCH /api/a/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	var m model.NotificationModel
	if err := ctrl.DB.First(&m, "notification_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helper.EnsureAcademyOwned(c, m.NotificationAcademyID, academyID); err != nil {
		return err
	}

	if !m.NotificationIsRead {
		now := time.Now()
		m.NotificationIsRead = true
		m.NotificationReadAt = &now
		if err := ctrl.DB.Save(&m).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonUpdated(c, "notification marked read", dto.ToNotificationResponse(m))
}

// 🟢 POST /api/a/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	academyID, err := helper.AcademyIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Scopes(helper.ScopeAcademy("notification_academy_id", academyID)).
		Where("notification_is_read = FALSE").
		Updates(map[string]any{
			"notification_is_read": true,
			"notification_read_at": time.Now(),
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}

	return helper.JsonUpdated(c, "notifications marked read", fiber.Map{"updated": res.RowsAffected})
}
