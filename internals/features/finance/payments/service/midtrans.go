// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"classraum_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called at app bootstrap.
// useProduction=true for Production, false for Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Snap Checkout
========================================================= */

type CustomerInput struct {
	FirstName string
	Email     string
	Phone     string
}

// BuildOrderID makes the gateway order id for an invoice. The prefix
// keeps classraum orders distinguishable in the Midtrans dashboard.
func BuildOrderID(inv model.InvoiceModel) string {
	return fmt.Sprintf("CLR-%s", inv.InvoiceID)
}

// GenerateSnapToken creates a Snap transaction for a pending invoice
// and returns the token and redirect URL.
func GenerateSnapToken(inv model.InvoiceModel, orderID string, cust CustomerInput) (string, string, error) {
	if inv.InvoiceFinalAmount <= 0 {
		return "", "", errors.New("invalid invoice final amount")
	}
	if orderID == "" {
		return "", "", errors.New("order id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: inv.InvoiceFinalAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       inv.InvoiceID.String(),
				Price:    inv.InvoiceFinalAmount,
				Qty:      1,
				Name:     fmt.Sprintf("Tuition %s", inv.InvoiceDueDate.Format("2006-01")),
				Category: "tuition",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

/* =========================================================
   Webhook status mapping
========================================================= */

// MappedFields carries the timestamp side effects of a status change.
type MappedFields struct {
	PaidAt     *time.Time
	RefundedAt *time.Time
}

// MapMidtransStatus converts a Midtrans transaction status into the
// internal invoice status. Unknown statuses keep the current one.
func MapMidtransStatus(current model.InvoiceStatus, transactionStatus, fraudStatus string, now time.Time) (model.InvoiceStatus, MappedFields) {
	ts := strings.ToLower(transactionStatus)
	fraud := strings.ToLower(fraudStatus)

	switch ts {
	case "capture":
		if fraud == "accept" {
			return model.InvoicePaid, MappedFields{PaidAt: &now}
		}
		if fraud == "challenge" {
			return model.InvoicePending, MappedFields{}
		}
		return model.InvoiceFailed, MappedFields{}

	case "settlement":
		return model.InvoicePaid, MappedFields{PaidAt: &now}

	case "pending":
		return model.InvoicePending, MappedFields{}

	case "deny", "cancel", "expire", "failure":
		return model.InvoiceFailed, MappedFields{}

	case "refund", "partial_refund":
		return model.InvoiceRefunded, MappedFields{RefundedAt: &now}
	}

	return current, MappedFields{}
}
