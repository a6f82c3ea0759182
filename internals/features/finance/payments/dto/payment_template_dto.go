// file: internals/features/finance/payments/dto/payment_template_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"classraum_backend/internals/features/finance/payments/model"
)

/* =========================
 * Requests
 * ========================= */

type PaymentTemplateCreateDTO struct {
	Name           string  `json:"name" validate:"required,min=1,max=150"`
	Amount         int64   `json:"amount" validate:"min=0"`
	RecurrenceType string  `json:"recurrence_type" validate:"required,oneof=monthly weekly"`
	DayOfMonth     *int    `json:"day_of_month" validate:"omitempty,min=1,max=31"`
	DayOfWeek      *int    `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`

	// Initial enrollments, created with the template in one transaction.
	StudentIDs []uuid.UUID `json:"student_ids" validate:"omitempty,dive,required"`
}

type PaymentTemplateUpdateDTO struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=150"`
	Amount     *int64  `json:"amount" validate:"omitempty,min=0"`
	DayOfMonth *int    `json:"day_of_month" validate:"omitempty,min=1,max=31"`
	DayOfWeek  *int    `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	EndDate    *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type EnrollmentCreateDTO struct {
	StudentID      uuid.UUID `json:"student_id" validate:"required"`
	AmountOverride *int64    `json:"amount_override" validate:"omitempty,min=0"`
}

type EnrollmentUpdateDTO struct {
	AmountOverride *int64  `json:"amount_override" validate:"omitempty,min=0"`
	Status         *string `json:"status" validate:"omitempty,oneof=active paused"`
}

type RecurringControlDTO struct {
	Action     string     `json:"action" validate:"required,oneof=pause resume deactivate"`
	TemplateID uuid.UUID  `json:"template_id" validate:"required"`
	StudentID  *uuid.UUID `json:"student_id"`
}

func (in PaymentTemplateCreateDTO) ToModel(academyID uuid.UUID, start time.Time, end *time.Time) model.PaymentTemplateModel {
	return model.PaymentTemplateModel{
		PaymentTemplateAcademyID:      academyID,
		PaymentTemplateName:           in.Name,
		PaymentTemplateAmount:         in.Amount,
		PaymentTemplateRecurrenceType: model.RecurrenceType(in.RecurrenceType),
		PaymentTemplateDayOfMonth:     in.DayOfMonth,
		PaymentTemplateDayOfWeek:      in.DayOfWeek,
		PaymentTemplateStartDate:      start,
		PaymentTemplateEndDate:        end,
		PaymentTemplateIsActive:       true,
	}
}

func (in PaymentTemplateUpdateDTO) ApplyTemplateUpdate(m *model.PaymentTemplateModel, end *time.Time) {
	if in.Name != nil {
		m.PaymentTemplateName = *in.Name
	}
	if in.Amount != nil {
		m.PaymentTemplateAmount = *in.Amount
	}
	if in.DayOfMonth != nil {
		m.PaymentTemplateDayOfMonth = in.DayOfMonth
	}
	if in.DayOfWeek != nil {
		m.PaymentTemplateDayOfWeek = in.DayOfWeek
	}
	if end != nil {
		m.PaymentTemplateEndDate = end
	}
}

/* =========================
 * Responses
 * ========================= */

type EnrollmentResponse struct {
	EnrollmentID   uuid.UUID `json:"enrollment_id"`
	StudentID      uuid.UUID `json:"student_id"`
	AmountOverride *int64    `json:"amount_override,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type PaymentTemplateResponse struct {
	PaymentTemplateID uuid.UUID            `json:"payment_template_id"`
	Name              string               `json:"name"`
	Amount            int64                `json:"amount"`
	RecurrenceType    string               `json:"recurrence_type"`
	DayOfMonth        *int                 `json:"day_of_month,omitempty"`
	DayOfWeek         *int                 `json:"day_of_week,omitempty"`
	StartDate         string               `json:"start_date"`
	EndDate           *string              `json:"end_date,omitempty"`
	NextDueDate       *string              `json:"next_due_date,omitempty"`
	IsActive          bool                 `json:"is_active"`
	Enrollments       []EnrollmentResponse `json:"enrollments,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

func ToEnrollmentResponse(m model.TemplateEnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:   m.TemplateEnrollmentID,
		StudentID:      m.TemplateEnrollmentStudentID,
		AmountOverride: m.TemplateEnrollmentAmountOverride,
		Status:         string(m.TemplateEnrollmentStatus),
		CreatedAt:      m.TemplateEnrollmentCreatedAt,
	}
}

func ToEnrollmentResponses(rows []model.TemplateEnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToEnrollmentResponse(m))
	}
	return out
}

func ToPaymentTemplateResponse(m model.PaymentTemplateModel) PaymentTemplateResponse {
	resp := PaymentTemplateResponse{
		PaymentTemplateID: m.PaymentTemplateID,
		Name:              m.PaymentTemplateName,
		Amount:            m.PaymentTemplateAmount,
		RecurrenceType:    string(m.PaymentTemplateRecurrenceType),
		DayOfMonth:        m.PaymentTemplateDayOfMonth,
		DayOfWeek:         m.PaymentTemplateDayOfWeek,
		StartDate:         m.PaymentTemplateStartDate.Format("2006-01-02"),
		IsActive:          m.PaymentTemplateIsActive,
		Enrollments:       ToEnrollmentResponses(m.Enrollments),
		CreatedAt:         m.PaymentTemplateCreatedAt,
		UpdatedAt:         m.PaymentTemplateUpdatedAt,
	}
	if m.PaymentTemplateEndDate != nil {
		s := m.PaymentTemplateEndDate.Format("2006-01-02")
		resp.EndDate = &s
	}
	if m.PaymentTemplateNextDueDate != nil {
		s := m.PaymentTemplateNextDueDate.Format("2006-01-02")
		resp.NextDueDate = &s
	}
	return resp
}

func ToPaymentTemplateResponses(rows []model.PaymentTemplateModel) []PaymentTemplateResponse {
	out := make([]PaymentTemplateResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToPaymentTemplateResponse(m))
	}
	return out
}
