// file: internals/features/school/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

type SessionModel struct {
	SessionID          uuid.UUID      `gorm:"column:session_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"session_id"`
	SessionAcademyID   uuid.UUID      `gorm:"column:session_academy_id;type:uuid;not null;index" json:"session_academy_id"`
	SessionClassroomID uuid.UUID      `gorm:"column:session_classroom_id;type:uuid;not null;index" json:"session_classroom_id"`
	SessionDate        time.Time      `gorm:"column:session_date;type:date;not null;index" json:"session_date"`
	SessionStartTime   string         `gorm:"column:session_start_time;type:varchar(5);not null" json:"session_start_time"`
	SessionEndTime     string         `gorm:"column:session_end_time;type:varchar(5);not null" json:"session_end_time"`
	SessionStatus      SessionStatus  `gorm:"column:session_status;type:varchar(20);not null;default:'scheduled';index" json:"session_status"`
	SessionLocation    *string        `gorm:"column:session_location;type:varchar(120)" json:"session_location,omitempty"`
	SessionNotes       *string        `gorm:"column:session_notes;type:text" json:"session_notes,omitempty"`
	SessionCreatedAt   time.Time      `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt   time.Time      `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at"`
	SessionDeletedAt   gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"-"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
