// file: internals/features/finance/payments/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"classraum_backend/internals/features/finance/payments/model"
)

/* =========================
 * Requests
 * ========================= */

type InvoiceCreateDTO struct {
	StudentID      uuid.UUID `json:"student_id" validate:"required"`
	Amount         int64     `json:"amount" validate:"min=0"`
	DiscountAmount int64     `json:"discount_amount" validate:"min=0"`
	DueDate        string    `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type InvoiceUpdateDTO struct {
	Amount         *int64  `json:"amount" validate:"omitempty,min=0"`
	DiscountAmount *int64  `json:"discount_amount" validate:"omitempty,min=0"`
	DueDate        *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type InvoiceMarkPaidDTO struct {
	PaymentMethod string `json:"payment_method" validate:"required,min=1,max=40"`
}

type InvoiceRefundDTO struct {
	Amount int64 `json:"amount" validate:"min=1"`
}

// ToModel snapshots final_amount at creation; later edits of the
// source template never change an issued invoice.
func (in InvoiceCreateDTO) ToModel(academyID uuid.UUID, dueDate time.Time) model.InvoiceModel {
	final := in.Amount - in.DiscountAmount
	if final < 0 {
		final = 0
	}
	return model.InvoiceModel{
		InvoiceAcademyID:      academyID,
		InvoiceStudentID:      in.StudentID,
		InvoiceAmount:         in.Amount,
		InvoiceDiscountAmount: in.DiscountAmount,
		InvoiceFinalAmount:    final,
		InvoiceDueDate:        dueDate,
		InvoiceStatus:         model.InvoicePending,
	}
}

/* =========================
 * Responses
 * ========================= */

type InvoiceResponse struct {
	InvoiceID      uuid.UUID  `json:"invoice_id"`
	StudentID      uuid.UUID  `json:"student_id"`
	TemplateID     *uuid.UUID `json:"template_id,omitempty"`
	Amount         int64      `json:"amount"`
	DiscountAmount int64      `json:"discount_amount"`
	FinalAmount    int64      `json:"final_amount"`
	DueDate        string     `json:"due_date"`
	Status         string     `json:"status"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	PaymentMethod  *string    `json:"payment_method,omitempty"`
	RefundedAmount int64      `json:"refunded_amount"`
	OrderID        *string    `json:"order_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CheckoutResponse struct {
	InvoiceID   uuid.UUID `json:"invoice_id"`
	OrderID     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
}

func ToInvoiceResponse(m model.InvoiceModel) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:      m.InvoiceID,
		StudentID:      m.InvoiceStudentID,
		TemplateID:     m.InvoiceTemplateID,
		Amount:         m.InvoiceAmount,
		DiscountAmount: m.InvoiceDiscountAmount,
		FinalAmount:    m.InvoiceFinalAmount,
		DueDate:        m.InvoiceDueDate.Format("2006-01-02"),
		Status:         string(m.InvoiceStatus),
		PaidAt:         m.InvoicePaidAt,
		PaymentMethod:  m.InvoicePaymentMethod,
		RefundedAmount: m.InvoiceRefundedAmount,
		OrderID:        m.InvoiceOrderID,
		CreatedAt:      m.InvoiceCreatedAt,
	}
}

func ToInvoiceResponses(rows []model.InvoiceModel) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToInvoiceResponse(m))
	}
	return out
}
