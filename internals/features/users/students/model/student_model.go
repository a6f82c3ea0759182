package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID         uuid.UUID      `gorm:"column:student_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"student_id"`
	StudentAcademyID  uuid.UUID      `gorm:"column:student_academy_id;type:uuid;not null;index" json:"student_academy_id"`
	StudentName       string         `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentEmail      *string        `gorm:"column:student_email;type:varchar(255)" json:"student_email,omitempty"`
	StudentPhone      *string        `gorm:"column:student_phone;type:varchar(32)" json:"student_phone,omitempty"`
	StudentSchoolName *string        `gorm:"column:student_school_name;type:varchar(120)" json:"student_school_name,omitempty"`
	StudentActive     bool           `gorm:"column:student_active;not null;default:true;index" json:"student_active"`
	StudentCreatedAt  time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt  time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt  gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string {
	return "students"
}
