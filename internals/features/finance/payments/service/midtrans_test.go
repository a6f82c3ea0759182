// file: internals/features/finance/payments/service/midtrans_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classraum_backend/internals/features/finance/payments/model"
)

func TestMapMidtransStatus(t *testing.T) {
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		ts, fraud   string
		want        model.InvoiceStatus
		wantPaid    bool
		wantRefund  bool
	}{
		{"settlement pays", "settlement", "", model.InvoicePaid, true, false},
		{"capture accept pays", "capture", "accept", model.InvoicePaid, true, false},
		{"capture challenge holds", "capture", "challenge", model.InvoicePending, false, false},
		{"capture reject fails", "capture", "deny", model.InvoiceFailed, false, false},
		{"pending stays pending", "pending", "", model.InvoicePending, false, false},
		{"deny fails", "deny", "", model.InvoiceFailed, false, false},
		{"expire fails", "expire", "", model.InvoiceFailed, false, false},
		{"cancel fails", "cancel", "", model.InvoiceFailed, false, false},
		{"refund refunds", "refund", "", model.InvoiceRefunded, false, true},
		{"partial refund refunds", "partial_refund", "", model.InvoiceRefunded, false, true},
		{"case insensitive", "SETTLEMENT", "", model.InvoicePaid, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, fields := MapMidtransStatus(model.InvoicePending, tc.ts, tc.fraud, now)
			assert.Equal(t, tc.want, got)
			if tc.wantPaid {
				require.NotNil(t, fields.PaidAt)
				assert.Equal(t, now, *fields.PaidAt)
			} else {
				assert.Nil(t, fields.PaidAt)
			}
			if tc.wantRefund {
				require.NotNil(t, fields.RefundedAt)
			} else {
				assert.Nil(t, fields.RefundedAt)
			}
		})
	}
}

func TestMapMidtransStatus_UnknownKeepsCurrent(t *testing.T) {
	got, fields := MapMidtransStatus(model.InvoicePaid, "authorize", "", time.Now())
	assert.Equal(t, model.InvoicePaid, got)
	assert.Nil(t, fields.PaidAt)
	assert.Nil(t, fields.RefundedAt)
}
