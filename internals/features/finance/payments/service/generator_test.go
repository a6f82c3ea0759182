// file: internals/features/finance/payments/service/generator_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classraum_backend/internals/features/finance/payments/model"
)

func int64p(v int64) *int64 { return &v }

func TestInvoicesForTemplate(t *testing.T) {
	tplID := uuid.New()
	academyID := uuid.New()
	tpl := model.PaymentTemplateModel{
		PaymentTemplateID:     tplID,
		PaymentTemplateAmount: 150000,
	}
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()
	rows := []enrollmentRow{
		{StudentID: s1, AcademyID: academyID},
		{StudentID: s2, AcademyID: academyID, AmountOverride: int64p(120000)},
		{StudentID: s3, AcademyID: academyID, AmountOverride: int64p(0)},
	}
	due := day(2026, time.September, 1)

	invoices := invoicesForTemplate(tpl, rows, due)
	require.Len(t, invoices, 3)

	assert.Equal(t, int64(150000), invoices[0].InvoiceAmount)
	assert.Equal(t, int64(150000), invoices[0].InvoiceFinalAmount)
	assert.Equal(t, int64(120000), invoices[1].InvoiceAmount, "override beats template amount")
	assert.Equal(t, int64(0), invoices[2].InvoiceAmount, "zero override is a valid free slot")

	for _, inv := range invoices {
		assert.Equal(t, model.InvoicePending, inv.InvoiceStatus)
		assert.Equal(t, int64(0), inv.InvoiceDiscountAmount)
		assert.Equal(t, inv.InvoiceAmount-inv.InvoiceDiscountAmount, inv.InvoiceFinalAmount)
		assert.Equal(t, due, inv.InvoiceDueDate)
		require.NotNil(t, inv.InvoiceTemplateID)
		assert.Equal(t, tplID, *inv.InvoiceTemplateID)
		assert.Equal(t, academyID, inv.InvoiceAcademyID)
	}
}

func TestInvoicesForTemplate_NoEnrollments(t *testing.T) {
	invoices := invoicesForTemplate(model.PaymentTemplateModel{}, nil, day(2026, time.September, 1))
	assert.Empty(t, invoices)
}
