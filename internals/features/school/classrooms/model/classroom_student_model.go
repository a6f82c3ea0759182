package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassroomStudentModel struct {
	ClassroomStudentID          uuid.UUID `gorm:"column:classroom_student_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"classroom_student_id"`
	ClassroomStudentClassroomID uuid.UUID `gorm:"column:classroom_student_classroom_id;type:uuid;not null;index;uniqueIndex:uniq_classroom_student,priority:1" json:"classroom_student_classroom_id"`
	ClassroomStudentStudentID   uuid.UUID `gorm:"column:classroom_student_student_id;type:uuid;not null;index;uniqueIndex:uniq_classroom_student,priority:2" json:"classroom_student_student_id"`
	ClassroomStudentAcademyID   uuid.UUID `gorm:"column:classroom_student_academy_id;type:uuid;not null;index" json:"classroom_student_academy_id"`
	ClassroomStudentCreatedAt   time.Time `gorm:"column:classroom_student_created_at;autoCreateTime" json:"classroom_student_created_at"`
}

func (ClassroomStudentModel) TableName() string {
	return "classroom_students"
}
