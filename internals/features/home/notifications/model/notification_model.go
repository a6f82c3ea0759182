// file: internals/features/home/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type NotificationModel struct {
	NotificationID        uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationAcademyID uuid.UUID      `gorm:"column:notification_academy_id;type:uuid;not null;index" json:"notification_academy_id"`
	NotificationUserID    *uuid.UUID     `gorm:"column:notification_user_id;type:uuid;index" json:"notification_user_id,omitempty"`
	NotificationTitle     string         `gorm:"column:notification_title;type:varchar(200);not null" json:"notification_title"`
	NotificationMessage   string         `gorm:"column:notification_message;type:text;not null" json:"notification_message"`
	NotificationTags      pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationIsRead    bool           `gorm:"column:notification_is_read;not null;default:false;index" json:"notification_is_read"`
	NotificationReadAt    *time.Time     `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`
	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
