// file: internals/features/school/classrooms/dto/classroom_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"classraum_backend/internals/features/school/classrooms/model"
	"classraum_backend/internals/features/school/classrooms/service"
)

type ScheduleSlotDTO struct {
	Day       int    `json:"day" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,len=5"`
	EndTime   string `json:"end_time" validate:"required,len=5"`
}

type ClassroomCreateDTO struct {
	ClassroomName      string            `json:"classroom_name" validate:"required,min=1,max=120"`
	ClassroomGrade     *string           `json:"classroom_grade,omitempty"`
	ClassroomSubject   *string           `json:"classroom_subject,omitempty"`
	ClassroomTeacherID *uuid.UUID        `json:"classroom_teacher_id,omitempty"`
	ClassroomColor     *string           `json:"classroom_color,omitempty"`
	ClassroomNotes     *string           `json:"classroom_notes,omitempty"`
	Schedules          []ScheduleSlotDTO `json:"schedules" validate:"dive"`
	StudentIDs         []uuid.UUID       `json:"student_ids"`
}

type ClassroomUpdateDTO struct {
	ClassroomName      *string           `json:"classroom_name,omitempty" validate:"omitempty,min=1,max=120"`
	ClassroomGrade     *string           `json:"classroom_grade,omitempty"`
	ClassroomSubject   *string           `json:"classroom_subject,omitempty"`
	ClassroomTeacherID *uuid.UUID        `json:"classroom_teacher_id,omitempty"`
	ClassroomColor     *string           `json:"classroom_color,omitempty"`
	ClassroomNotes     *string           `json:"classroom_notes,omitempty"`
	ClassroomPaused    *bool             `json:"classroom_paused,omitempty"`
	Schedules          []ScheduleSlotDTO `json:"schedules" validate:"dive"`
	StudentIDs         *[]uuid.UUID      `json:"student_ids,omitempty"`

	// Confirm acknowledges a destructive schedule change (moved/removed
	// slot). Without it such an edit is answered with 409 + the diff.
	Confirm bool `json:"confirm"`
}

type ClassroomResponse struct {
	ClassroomID        uuid.UUID         `json:"classroom_id"`
	ClassroomAcademyID uuid.UUID         `json:"classroom_academy_id"`
	ClassroomName      string            `json:"classroom_name"`
	ClassroomGrade     *string           `json:"classroom_grade,omitempty"`
	ClassroomSubject   *string           `json:"classroom_subject,omitempty"`
	ClassroomTeacherID *uuid.UUID        `json:"classroom_teacher_id,omitempty"`
	ClassroomColor     *string           `json:"classroom_color,omitempty"`
	ClassroomNotes     *string           `json:"classroom_notes,omitempty"`
	ClassroomPaused    bool              `json:"classroom_paused"`
	Schedules          []ScheduleSlotDTO `json:"schedules"`
	ClassroomCreatedAt time.Time         `json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time         `json:"classroom_updated_at"`
}

/* ===============================
   Mappers
=================================*/

func (d ClassroomCreateDTO) ToModel(academyID uuid.UUID) model.ClassroomModel {
	return model.ClassroomModel{
		ClassroomAcademyID: academyID,
		ClassroomName:      d.ClassroomName,
		ClassroomGrade:     d.ClassroomGrade,
		ClassroomSubject:   d.ClassroomSubject,
		ClassroomTeacherID: d.ClassroomTeacherID,
		ClassroomColor:     d.ClassroomColor,
		ClassroomNotes:     d.ClassroomNotes,
	}
}

func ApplyClassroomUpdate(m *model.ClassroomModel, d ClassroomUpdateDTO) {
	if d.ClassroomName != nil {
		m.ClassroomName = *d.ClassroomName
	}
	if d.ClassroomGrade != nil {
		m.ClassroomGrade = d.ClassroomGrade
	}
	if d.ClassroomSubject != nil {
		m.ClassroomSubject = d.ClassroomSubject
	}
	if d.ClassroomTeacherID != nil {
		m.ClassroomTeacherID = d.ClassroomTeacherID
	}
	if d.ClassroomColor != nil {
		m.ClassroomColor = d.ClassroomColor
	}
	if d.ClassroomNotes != nil {
		m.ClassroomNotes = d.ClassroomNotes
	}
	if d.ClassroomPaused != nil {
		m.ClassroomPaused = *d.ClassroomPaused
	}
}

func SlotsFromDTOs(in []ScheduleSlotDTO) []service.Slot {
	out := make([]service.Slot, 0, len(in))
	for _, s := range in {
		out = append(out, service.Slot{Day: s.Day, StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return out
}

func SlotsFromModels(in []model.ClassroomScheduleModel) []service.Slot {
	out := make([]service.Slot, 0, len(in))
	for _, s := range in {
		out = append(out, service.Slot{
			Day:       s.ClassroomScheduleDay,
			StartTime: s.ClassroomScheduleStartTime,
			EndTime:   s.ClassroomScheduleEndTime,
		})
	}
	return out
}

func ToClassroomResponse(m model.ClassroomModel) ClassroomResponse {
	slots := make([]ScheduleSlotDTO, 0, len(m.Schedules))
	for _, s := range m.Schedules {
		slots = append(slots, ScheduleSlotDTO{
			Day:       s.ClassroomScheduleDay,
			StartTime: s.ClassroomScheduleStartTime,
			EndTime:   s.ClassroomScheduleEndTime,
		})
	}
	return ClassroomResponse{
		ClassroomID:        m.ClassroomID,
		ClassroomAcademyID: m.ClassroomAcademyID,
		ClassroomName:      m.ClassroomName,
		ClassroomGrade:     m.ClassroomGrade,
		ClassroomSubject:   m.ClassroomSubject,
		ClassroomTeacherID: m.ClassroomTeacherID,
		ClassroomColor:     m.ClassroomColor,
		ClassroomNotes:     m.ClassroomNotes,
		ClassroomPaused:    m.ClassroomPaused,
		Schedules:          slots,
		ClassroomCreatedAt: m.ClassroomCreatedAt,
		ClassroomUpdatedAt: m.ClassroomUpdatedAt,
	}
}

func ToClassroomResponses(list []model.ClassroomModel) []ClassroomResponse {
	out := make([]ClassroomResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToClassroomResponse(v))
	}
	return out
}
