// file: internals/features/school/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassroomModel struct {
	ClassroomID        uuid.UUID      `gorm:"column:classroom_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"classroom_id"`
	ClassroomAcademyID uuid.UUID      `gorm:"column:classroom_academy_id;type:uuid;not null;index" json:"classroom_academy_id"`
	ClassroomName      string         `gorm:"column:classroom_name;type:varchar(120);not null" json:"classroom_name"`
	ClassroomGrade     *string        `gorm:"column:classroom_grade;type:varchar(40)" json:"classroom_grade,omitempty"`
	ClassroomSubject   *string        `gorm:"column:classroom_subject;type:varchar(80)" json:"classroom_subject,omitempty"`
	ClassroomTeacherID *uuid.UUID     `gorm:"column:classroom_teacher_id;type:uuid;index" json:"classroom_teacher_id,omitempty"`
	ClassroomColor     *string        `gorm:"column:classroom_color;type:varchar(16)" json:"classroom_color,omitempty"`
	ClassroomNotes     *string        `gorm:"column:classroom_notes;type:text" json:"classroom_notes,omitempty"`
	ClassroomPaused    bool           `gorm:"column:classroom_paused;not null;default:false" json:"classroom_paused"`
	ClassroomCreatedAt time.Time      `gorm:"column:classroom_created_at;autoCreateTime" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"column:classroom_updated_at;autoUpdateTime" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"-"`

	Schedules []ClassroomScheduleModel `gorm:"foreignKey:ClassroomScheduleClassroomID;references:ClassroomID" json:"schedules,omitempty"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}
