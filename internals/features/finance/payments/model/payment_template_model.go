// file: internals/features/finance/payments/model/payment_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecurrenceType string

const (
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceWeekly  RecurrenceType = "weekly"
)

type EnrollmentStatus string

const (
	EnrollmentActive EnrollmentStatus = "active"
	EnrollmentPaused EnrollmentStatus = "paused"
)

// Recurring payment plan. Each run stamps invoices for the template's
// active enrollments, then advances payment_template_next_due_date.
type PaymentTemplateModel struct {
	PaymentTemplateID             uuid.UUID      `gorm:"column:payment_template_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"payment_template_id"`
	PaymentTemplateAcademyID      uuid.UUID      `gorm:"column:payment_template_academy_id;type:uuid;not null;index" json:"payment_template_academy_id"`
	PaymentTemplateName           string         `gorm:"column:payment_template_name;type:varchar(150);not null" json:"payment_template_name"`
	PaymentTemplateAmount         int64          `gorm:"column:payment_template_amount;not null;check:payment_template_amount >= 0" json:"payment_template_amount"`
	PaymentTemplateRecurrenceType RecurrenceType `gorm:"column:payment_template_recurrence_type;type:varchar(10);not null" json:"payment_template_recurrence_type"`

	// Exactly one of the two applies, per recurrence type.
	PaymentTemplateDayOfMonth *int `gorm:"column:payment_template_day_of_month;type:smallint;check:payment_template_day_of_month BETWEEN 1 AND 31" json:"payment_template_day_of_month,omitempty"`
	PaymentTemplateDayOfWeek  *int `gorm:"column:payment_template_day_of_week;type:smallint;check:payment_template_day_of_week BETWEEN 0 AND 6" json:"payment_template_day_of_week,omitempty"`

	PaymentTemplateStartDate   time.Time  `gorm:"column:payment_template_start_date;type:date;not null" json:"payment_template_start_date"`
	PaymentTemplateEndDate     *time.Time `gorm:"column:payment_template_end_date;type:date" json:"payment_template_end_date,omitempty"`
	PaymentTemplateNextDueDate *time.Time `gorm:"column:payment_template_next_due_date;type:date;index" json:"payment_template_next_due_date,omitempty"`
	PaymentTemplateIsActive    bool       `gorm:"column:payment_template_is_active;not null;default:true;index" json:"payment_template_is_active"`

	PaymentTemplateCreatedAt time.Time      `gorm:"column:payment_template_created_at;autoCreateTime" json:"payment_template_created_at"`
	PaymentTemplateUpdatedAt time.Time      `gorm:"column:payment_template_updated_at;autoUpdateTime" json:"payment_template_updated_at"`
	PaymentTemplateDeletedAt gorm.DeletedAt `gorm:"column:payment_template_deleted_at;index" json:"-"`

	Enrollments []TemplateEnrollmentModel `gorm:"foreignKey:TemplateEnrollmentTemplateID;references:PaymentTemplateID" json:"enrollments,omitempty"`
}

func (PaymentTemplateModel) TableName() string {
	return "recurring_payment_templates"
}

// Links a student to a recurring template. A paused enrollment is skipped
// by the generator but keeps its history.
type TemplateEnrollmentModel struct {
	TemplateEnrollmentID             uuid.UUID        `gorm:"column:template_enrollment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"template_enrollment_id"`
	TemplateEnrollmentTemplateID     uuid.UUID        `gorm:"column:template_enrollment_template_id;type:uuid;not null;index;uniqueIndex:uniq_template_student,priority:1" json:"template_enrollment_template_id"`
	TemplateEnrollmentStudentID      uuid.UUID        `gorm:"column:template_enrollment_student_id;type:uuid;not null;index;uniqueIndex:uniq_template_student,priority:2" json:"template_enrollment_student_id"`
	TemplateEnrollmentAcademyID      uuid.UUID        `gorm:"column:template_enrollment_academy_id;type:uuid;not null;index" json:"template_enrollment_academy_id"`
	TemplateEnrollmentAmountOverride *int64           `gorm:"column:template_enrollment_amount_override;check:template_enrollment_amount_override >= 0" json:"template_enrollment_amount_override,omitempty"`
	TemplateEnrollmentStatus         EnrollmentStatus `gorm:"column:template_enrollment_status;type:varchar(10);not null;default:'active';index" json:"template_enrollment_status"`
	TemplateEnrollmentCreatedAt      time.Time        `gorm:"column:template_enrollment_created_at;autoCreateTime" json:"template_enrollment_created_at"`
	TemplateEnrollmentUpdatedAt      time.Time        `gorm:"column:template_enrollment_updated_at;autoUpdateTime" json:"template_enrollment_updated_at"`
}

func (TemplateEnrollmentModel) TableName() string {
	return "recurring_payment_template_students"
}
