// file: internals/features/finance/payments/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoicePending  InvoiceStatus = "pending"
	InvoicePaid     InvoiceStatus = "paid"
	InvoiceFailed   InvoiceStatus = "failed"
	InvoiceRefunded InvoiceStatus = "refunded"
)

// Amounts are KRW, whole-won integers.
type InvoiceModel struct {
	InvoiceID         uuid.UUID  `gorm:"column:invoice_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"invoice_id"`
	InvoiceAcademyID  uuid.UUID  `gorm:"column:invoice_academy_id;type:uuid;not null;index" json:"invoice_academy_id"`
	InvoiceStudentID  uuid.UUID  `gorm:"column:invoice_student_id;type:uuid;not null;index" json:"invoice_student_id"`
	InvoiceTemplateID *uuid.UUID `gorm:"column:invoice_template_id;type:uuid;index" json:"invoice_template_id,omitempty"`

	InvoiceAmount         int64 `gorm:"column:invoice_amount;not null;check:invoice_amount >= 0" json:"invoice_amount"`
	InvoiceDiscountAmount int64 `gorm:"column:invoice_discount_amount;not null;default:0;check:invoice_discount_amount >= 0" json:"invoice_discount_amount"`
	// Snapshot of amount - discount at creation time; later template edits
	// never touch issued invoices.
	InvoiceFinalAmount int64 `gorm:"column:invoice_final_amount;not null;check:invoice_final_amount >= 0" json:"invoice_final_amount"`

	InvoiceDueDate        time.Time     `gorm:"column:invoice_due_date;type:date;not null;index" json:"invoice_due_date"`
	InvoiceStatus         InvoiceStatus `gorm:"column:invoice_status;type:varchar(10);not null;default:'pending';index" json:"invoice_status"`
	InvoicePaidAt         *time.Time    `gorm:"column:invoice_paid_at" json:"invoice_paid_at,omitempty"`
	InvoicePaymentMethod  *string       `gorm:"column:invoice_payment_method;type:varchar(40)" json:"invoice_payment_method,omitempty"`
	InvoiceRefundedAmount int64         `gorm:"column:invoice_refunded_amount;not null;default:0" json:"invoice_refunded_amount"`
	InvoiceOrderID        *string       `gorm:"column:invoice_order_id;type:varchar(64);uniqueIndex" json:"invoice_order_id,omitempty"`

	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;autoCreateTime" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;autoUpdateTime" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"-"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}
