// file: internals/features/users/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"classraum_backend/internals/features/users/students/model"
)

type StudentCreateDTO struct {
	StudentName       string  `json:"student_name" validate:"required,min=1,max=120"`
	StudentEmail      *string `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentPhone      *string `json:"student_phone,omitempty"`
	StudentSchoolName *string `json:"student_school_name,omitempty"`
}

type StudentUpdateDTO struct {
	StudentName       *string `json:"student_name,omitempty" validate:"omitempty,min=1,max=120"`
	StudentEmail      *string `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentPhone      *string `json:"student_phone,omitempty"`
	StudentSchoolName *string `json:"student_school_name,omitempty"`
	StudentActive     *bool   `json:"student_active,omitempty"`
}

type StudentResponse struct {
	StudentID         uuid.UUID `json:"student_id"`
	StudentAcademyID  uuid.UUID `json:"student_academy_id"`
	StudentName       string    `json:"student_name"`
	StudentEmail      *string   `json:"student_email,omitempty"`
	StudentPhone      *string   `json:"student_phone,omitempty"`
	StudentSchoolName *string   `json:"student_school_name,omitempty"`
	StudentActive     bool      `json:"student_active"`
	StudentCreatedAt  time.Time `json:"student_created_at"`
	StudentUpdatedAt  time.Time `json:"student_updated_at"`
}

func (d StudentCreateDTO) ToModel(academyID uuid.UUID) model.StudentModel {
	return model.StudentModel{
		StudentAcademyID:  academyID,
		StudentName:       d.StudentName,
		StudentEmail:      d.StudentEmail,
		StudentPhone:      d.StudentPhone,
		StudentSchoolName: d.StudentSchoolName,
		StudentActive:     true,
	}
}

func ApplyStudentUpdate(m *model.StudentModel, d StudentUpdateDTO) {
	if d.StudentName != nil {
		m.StudentName = *d.StudentName
	}
	if d.StudentEmail != nil {
		m.StudentEmail = d.StudentEmail
	}
	if d.StudentPhone != nil {
		m.StudentPhone = d.StudentPhone
	}
	if d.StudentSchoolName != nil {
		m.StudentSchoolName = d.StudentSchoolName
	}
	if d.StudentActive != nil {
		m.StudentActive = *d.StudentActive
	}
}

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:         m.StudentID,
		StudentAcademyID:  m.StudentAcademyID,
		StudentName:       m.StudentName,
		StudentEmail:      m.StudentEmail,
		StudentPhone:      m.StudentPhone,
		StudentSchoolName: m.StudentSchoolName,
		StudentActive:     m.StudentActive,
		StudentCreatedAt:  m.StudentCreatedAt,
		StudentUpdatedAt:  m.StudentUpdatedAt,
	}
}

func ToStudentResponses(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentResponse(v))
	}
	return out
}
