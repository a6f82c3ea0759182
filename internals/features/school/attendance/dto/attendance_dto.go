package dto

import (
	"time"

	"github.com/google/uuid"

	"classraum_backend/internals/features/school/attendance/model"
)

type AttendanceCreateDTO struct {
	AttendanceSessionID uuid.UUID `json:"attendance_session_id" validate:"required"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceStatus    string    `json:"attendance_status" validate:"required,oneof=present absent late excused"`
	AttendanceNote      *string   `json:"attendance_note,omitempty"`
}

type AttendanceUpdateDTO struct {
	AttendanceStatus *string `json:"attendance_status,omitempty" validate:"omitempty,oneof=present absent late excused"`
	AttendanceNote   *string `json:"attendance_note,omitempty"`
}

type AttendanceResponse struct {
	AttendanceID        uuid.UUID `json:"attendance_id"`
	AttendanceAcademyID uuid.UUID `json:"attendance_academy_id"`
	AttendanceSessionID uuid.UUID `json:"attendance_session_id"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id"`
	AttendanceStatus    string    `json:"attendance_status"`
	AttendanceNote      *string   `json:"attendance_note,omitempty"`
	AttendanceCreatedAt time.Time `json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `json:"attendance_updated_at"`
}

func (d AttendanceCreateDTO) ToModel(academyID uuid.UUID) model.AttendanceModel {
	return model.AttendanceModel{
		AttendanceAcademyID: academyID,
		AttendanceSessionID: d.AttendanceSessionID,
		AttendanceStudentID: d.AttendanceStudentID,
		AttendanceStatus:    model.AttendanceStatus(d.AttendanceStatus),
		AttendanceNote:      d.AttendanceNote,
	}
}

func ApplyAttendanceUpdate(m *model.AttendanceModel, d AttendanceUpdateDTO) {
	if d.AttendanceStatus != nil {
		m.AttendanceStatus = model.AttendanceStatus(*d.AttendanceStatus)
	}
	if d.AttendanceNote != nil {
		m.AttendanceNote = d.AttendanceNote
	}
}

func ToAttendanceResponse(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:        m.AttendanceID,
		AttendanceAcademyID: m.AttendanceAcademyID,
		AttendanceSessionID: m.AttendanceSessionID,
		AttendanceStudentID: m.AttendanceStudentID,
		AttendanceStatus:    string(m.AttendanceStatus),
		AttendanceNote:      m.AttendanceNote,
		AttendanceCreatedAt: m.AttendanceCreatedAt,
		AttendanceUpdatedAt: m.AttendanceUpdatedAt,
	}
}

func ToAttendanceResponses(list []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToAttendanceResponse(v))
	}
	return out
}
