// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

type AttendanceModel struct {
	AttendanceID        uuid.UUID        `gorm:"column:attendance_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"attendance_id"`
	AttendanceAcademyID uuid.UUID        `gorm:"column:attendance_academy_id;type:uuid;not null;index" json:"attendance_academy_id"`
	AttendanceSessionID uuid.UUID        `gorm:"column:attendance_session_id;type:uuid;not null;index;uniqueIndex:uniq_session_student,priority:1" json:"attendance_session_id"`
	AttendanceStudentID uuid.UUID        `gorm:"column:attendance_student_id;type:uuid;not null;index;uniqueIndex:uniq_session_student,priority:2" json:"attendance_student_id"`
	AttendanceStatus    AttendanceStatus `gorm:"column:attendance_status;type:varchar(20);not null;default:'present';index" json:"attendance_status"`
	AttendanceNote      *string          `gorm:"column:attendance_note;type:text" json:"attendance_note,omitempty"`
	AttendanceCreatedAt time.Time        `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time        `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt   `gorm:"column:attendance_deleted_at;index" json:"-"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
