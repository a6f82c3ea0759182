package model

import (
	"time"

	"github.com/google/uuid"
)

// Weekly recurring slot for a classroom. The slot set is replaced as a whole
// on classroom edits; the diff service decides whether that needs the
// caller's confirmation first.
type ClassroomScheduleModel struct {
	ClassroomScheduleID          uuid.UUID `gorm:"column:classroom_schedule_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"classroom_schedule_id"`
	ClassroomScheduleClassroomID uuid.UUID `gorm:"column:classroom_schedule_classroom_id;type:uuid;not null;index" json:"classroom_schedule_classroom_id"`
	ClassroomScheduleAcademyID   uuid.UUID `gorm:"column:classroom_schedule_academy_id;type:uuid;not null;index" json:"classroom_schedule_academy_id"`
	ClassroomScheduleDay         int       `gorm:"column:classroom_schedule_day;type:smallint;not null;check:classroom_schedule_day BETWEEN 0 AND 6" json:"classroom_schedule_day"` // 0=Sunday..6=Saturday
	ClassroomScheduleStartTime   string    `gorm:"column:classroom_schedule_start_time;type:varchar(5);not null" json:"classroom_schedule_start_time"`                             // "HH:MM"
	ClassroomScheduleEndTime     string    `gorm:"column:classroom_schedule_end_time;type:varchar(5);not null" json:"classroom_schedule_end_time"`
	ClassroomScheduleCreatedAt   time.Time `gorm:"column:classroom_schedule_created_at;autoCreateTime" json:"classroom_schedule_created_at"`
}

func (ClassroomScheduleModel) TableName() string {
	return "classroom_schedules"
}
