package dto

import (
	"time"

	"github.com/google/uuid"

	"classraum_backend/internals/features/school/sessions/model"
)

type SessionCreateDTO struct {
	SessionClassroomID uuid.UUID `json:"session_classroom_id" validate:"required"`
	SessionDate        string    `json:"session_date" validate:"required"` // "2006-01-02"
	SessionStartTime   string    `json:"session_start_time" validate:"required,len=5"`
	SessionEndTime     string    `json:"session_end_time" validate:"required,len=5"`
	SessionLocation    *string   `json:"session_location,omitempty"`
	SessionNotes       *string   `json:"session_notes,omitempty"`
}

type SessionUpdateDTO struct {
	SessionDate      *string `json:"session_date,omitempty"`
	SessionStartTime *string `json:"session_start_time,omitempty" validate:"omitempty,len=5"`
	SessionEndTime   *string `json:"session_end_time,omitempty" validate:"omitempty,len=5"`
	SessionStatus    *string `json:"session_status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled"`
	SessionLocation  *string `json:"session_location,omitempty"`
	SessionNotes     *string `json:"session_notes,omitempty"`
}

type SessionResponse struct {
	SessionID          uuid.UUID `json:"session_id"`
	SessionAcademyID   uuid.UUID `json:"session_academy_id"`
	SessionClassroomID uuid.UUID `json:"session_classroom_id"`
	SessionDate        string    `json:"session_date"`
	SessionStartTime   string    `json:"session_start_time"`
	SessionEndTime     string    `json:"session_end_time"`
	SessionStatus      string    `json:"session_status"`
	SessionLocation    *string   `json:"session_location,omitempty"`
	SessionNotes       *string   `json:"session_notes,omitempty"`
	SessionCreatedAt   time.Time `json:"session_created_at"`
	SessionUpdatedAt   time.Time `json:"session_updated_at"`
}

func (d SessionCreateDTO) ToModel(academyID uuid.UUID, date time.Time) model.SessionModel {
	return model.SessionModel{
		SessionAcademyID:   academyID,
		SessionClassroomID: d.SessionClassroomID,
		SessionDate:        date,
		SessionStartTime:   d.SessionStartTime,
		SessionEndTime:     d.SessionEndTime,
		SessionStatus:      model.SessionStatusScheduled,
		SessionLocation:    d.SessionLocation,
		SessionNotes:       d.SessionNotes,
	}
}

func ApplySessionUpdate(m *model.SessionModel, d SessionUpdateDTO, date *time.Time) {
	if date != nil {
		m.SessionDate = *date
	}
	if d.SessionStartTime != nil {
		m.SessionStartTime = *d.SessionStartTime
	}
	if d.SessionEndTime != nil {
		m.SessionEndTime = *d.SessionEndTime
	}
	if d.SessionStatus != nil {
		m.SessionStatus = model.SessionStatus(*d.SessionStatus)
	}
	if d.SessionLocation != nil {
		m.SessionLocation = d.SessionLocation
	}
	if d.SessionNotes != nil {
		m.SessionNotes = d.SessionNotes
	}
}

func ToSessionResponse(m model.SessionModel) SessionResponse {
	return SessionResponse{
		SessionID:          m.SessionID,
		SessionAcademyID:   m.SessionAcademyID,
		SessionClassroomID: m.SessionClassroomID,
		SessionDate:        m.SessionDate.Format("2006-01-02"),
		SessionStartTime:   m.SessionStartTime,
		SessionEndTime:     m.SessionEndTime,
		SessionStatus:      string(m.SessionStatus),
		SessionLocation:    m.SessionLocation,
		SessionNotes:       m.SessionNotes,
		SessionCreatedAt:   m.SessionCreatedAt,
		SessionUpdatedAt:   m.SessionUpdatedAt,
	}
}

func ToSessionResponses(list []model.SessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToSessionResponse(v))
	}
	return out
}
