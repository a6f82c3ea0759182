// file: internals/features/school/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"classraum_backend/internals/features/school/assignments/model"
)

/* =========================
 * Requests
 * ========================= */

type AssignmentCreateDTO struct {
	ClassroomID uuid.UUID  `json:"classroom_id" validate:"required"`
	SessionID   *uuid.UUID `json:"session_id"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Type        string     `json:"type" validate:"omitempty,oneof=homework quiz test project"`
	DueDate     *string    `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type AssignmentUpdateDTO struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Type        *string `json:"type" validate:"omitempty,oneof=homework quiz test project"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type AssignmentGradeUpsertDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Score     *int      `json:"score" validate:"omitempty,min=0,max=100"`
	Status    string    `json:"status" validate:"omitempty,oneof=pending submitted graded"`
	Feedback  *string   `json:"feedback" validate:"omitempty,max=5000"`
}

func (in AssignmentCreateDTO) ToModel(academyID uuid.UUID, dueDate *time.Time) model.AssignmentModel {
	typ := model.AssignmentTypeHomework
	if in.Type != "" {
		typ = model.AssignmentType(in.Type)
	}
	return model.AssignmentModel{
		AssignmentAcademyID:   academyID,
		AssignmentClassroomID: in.ClassroomID,
		AssignmentSessionID:   in.SessionID,
		AssignmentTitle:       in.Title,
		AssignmentDescription: in.Description,
		AssignmentType:        typ,
		AssignmentDueDate:     dueDate,
	}
}

func (in AssignmentUpdateDTO) ApplyAssignmentUpdate(m *model.AssignmentModel, dueDate *time.Time) {
	if in.Title != nil {
		m.AssignmentTitle = *in.Title
	}
	if in.Description != nil {
		m.AssignmentDescription = in.Description
	}
	if in.Type != nil {
		m.AssignmentType = model.AssignmentType(*in.Type)
	}
	if dueDate != nil {
		m.AssignmentDueDate = dueDate
	}
}

/* =========================
 * Responses
 * ========================= */

type AssignmentResponse struct {
	AssignmentID uuid.UUID  `json:"assignment_id"`
	ClassroomID  uuid.UUID  `json:"classroom_id"`
	SessionID    *uuid.UUID `json:"session_id,omitempty"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	Type         string     `json:"type"`
	DueDate      *string    `json:"due_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type AssignmentGradeResponse struct {
	AssignmentGradeID uuid.UUID  `json:"assignment_grade_id"`
	AssignmentID      uuid.UUID  `json:"assignment_id"`
	StudentID         uuid.UUID  `json:"student_id"`
	Score             *int       `json:"score,omitempty"`
	Status            string     `json:"status"`
	Feedback          *string    `json:"feedback,omitempty"`
	SubmittedAt       *time.Time `json:"submitted_at,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func ToAssignmentResponse(m model.AssignmentModel) AssignmentResponse {
	var due *string
	if m.AssignmentDueDate != nil {
		s := m.AssignmentDueDate.Format("2006-01-02")
		due = &s
	}
	return AssignmentResponse{
		AssignmentID: m.AssignmentID,
		ClassroomID:  m.AssignmentClassroomID,
		SessionID:    m.AssignmentSessionID,
		Title:        m.AssignmentTitle,
		Description:  m.AssignmentDescription,
		Type:         string(m.AssignmentType),
		DueDate:      due,
		CreatedAt:    m.AssignmentCreatedAt,
		UpdatedAt:    m.AssignmentUpdatedAt,
	}
}

func ToAssignmentResponses(rows []model.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToAssignmentResponse(m))
	}
	return out
}

func ToAssignmentGradeResponse(m model.AssignmentGradeModel) AssignmentGradeResponse {
	return AssignmentGradeResponse{
		AssignmentGradeID: m.AssignmentGradeID,
		AssignmentID:      m.AssignmentGradeAssignmentID,
		StudentID:         m.AssignmentGradeStudentID,
		Score:             m.AssignmentGradeScore,
		Status:            m.AssignmentGradeStatus,
		Feedback:          m.AssignmentGradeFeedback,
		SubmittedAt:       m.AssignmentGradeSubmittedAt,
		UpdatedAt:         m.AssignmentGradeUpdatedAt,
	}
}

func ToAssignmentGradeResponses(rows []model.AssignmentGradeModel) []AssignmentGradeResponse {
	out := make([]AssignmentGradeResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToAssignmentGradeResponse(m))
	}
	return out
}
