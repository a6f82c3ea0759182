// file: internals/features/school/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentType string

const (
	AssignmentTypeHomework AssignmentType = "homework"
	AssignmentTypeQuiz     AssignmentType = "quiz"
	AssignmentTypeTest     AssignmentType = "test"
	AssignmentTypeProject  AssignmentType = "project"
)

type AssignmentModel struct {
	AssignmentID          uuid.UUID      `gorm:"column:assignment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"assignment_id"`
	AssignmentAcademyID   uuid.UUID      `gorm:"column:assignment_academy_id;type:uuid;not null;index" json:"assignment_academy_id"`
	AssignmentClassroomID uuid.UUID      `gorm:"column:assignment_classroom_id;type:uuid;not null;index" json:"assignment_classroom_id"`
	AssignmentSessionID   *uuid.UUID     `gorm:"column:assignment_session_id;type:uuid;index" json:"assignment_session_id,omitempty"`
	AssignmentTitle       string         `gorm:"column:assignment_title;type:varchar(200);not null" json:"assignment_title"`
	AssignmentDescription *string        `gorm:"column:assignment_description;type:text" json:"assignment_description,omitempty"`
	AssignmentType        AssignmentType `gorm:"column:assignment_type;type:varchar(20);not null;default:'homework'" json:"assignment_type"`
	AssignmentDueDate     *time.Time     `gorm:"column:assignment_due_date;type:date;index" json:"assignment_due_date,omitempty"`
	AssignmentCreatedAt   time.Time      `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt   time.Time      `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at"`
	AssignmentDeletedAt   gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"-"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}

// Per-student grade, one row per (assignment, student).
type AssignmentGradeModel struct {
	AssignmentGradeID           uuid.UUID  `gorm:"column:assignment_grade_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"assignment_grade_id"`
	AssignmentGradeAssignmentID uuid.UUID  `gorm:"column:assignment_grade_assignment_id;type:uuid;not null;index;uniqueIndex:uniq_assignment_student,priority:1" json:"assignment_grade_assignment_id"`
	AssignmentGradeStudentID    uuid.UUID  `gorm:"column:assignment_grade_student_id;type:uuid;not null;index;uniqueIndex:uniq_assignment_student,priority:2" json:"assignment_grade_student_id"`
	AssignmentGradeAcademyID    uuid.UUID  `gorm:"column:assignment_grade_academy_id;type:uuid;not null;index" json:"assignment_grade_academy_id"`
	AssignmentGradeScore        *int       `gorm:"column:assignment_grade_score;type:smallint;check:assignment_grade_score BETWEEN 0 AND 100" json:"assignment_grade_score,omitempty"`
	AssignmentGradeStatus       string     `gorm:"column:assignment_grade_status;type:varchar(20);not null;default:'pending'" json:"assignment_grade_status"` // pending|submitted|graded
	AssignmentGradeFeedback     *string    `gorm:"column:assignment_grade_feedback;type:text" json:"assignment_grade_feedback,omitempty"`
	AssignmentGradeSubmittedAt  *time.Time `gorm:"column:assignment_grade_submitted_at" json:"assignment_grade_submitted_at,omitempty"`
	AssignmentGradeCreatedAt    time.Time  `gorm:"column:assignment_grade_created_at;autoCreateTime" json:"assignment_grade_created_at"`
	AssignmentGradeUpdatedAt    time.Time  `gorm:"column:assignment_grade_updated_at;autoUpdateTime" json:"assignment_grade_updated_at"`
}

func (AssignmentGradeModel) TableName() string {
	return "assignment_grades"
}
