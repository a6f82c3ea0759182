// file: internals/features/home/notifications/dto/notification_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"classraum_backend/internals/features/home/notifications/model"
)

type NotificationCreateDTO struct {
	UserID  *uuid.UUID `json:"user_id"`
	Title   string     `json:"title" validate:"required,min=1,max=200"`
	Message string     `json:"message" validate:"required,min=1,max=5000"`
	Tags    []string   `json:"tags" validate:"omitempty,max=10,dive,min=1,max=40"`
}

func (in NotificationCreateDTO) ToModel(academyID uuid.UUID) model.NotificationModel {
	return model.NotificationModel{
		NotificationAcademyID: academyID,
		NotificationUserID:    in.UserID,
		NotificationTitle:     in.Title,
		NotificationMessage:   in.Message,
		NotificationTags:      in.Tags,
	}
}

type NotificationResponse struct {
	NotificationID uuid.UUID  `json:"notification_id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Tags           []string   `json:"tags"`
	IsRead         bool       `json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToNotificationResponse(m model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID: m.NotificationID,
		UserID:         m.NotificationUserID,
		Title:          m.NotificationTitle,
		Message:        m.NotificationMessage,
		Tags:           m.NotificationTags,
		IsRead:         m.NotificationIsRead,
		ReadAt:         m.NotificationReadAt,
		CreatedAt:      m.NotificationCreatedAt,
	}
}

func ToNotificationResponses(rows []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToNotificationResponse(m))
	}
	return out
}
