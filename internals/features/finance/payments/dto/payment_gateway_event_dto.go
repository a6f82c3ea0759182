// file: internals/features/finance/payments/dto/payment_gateway_event_dto.go
package dto

// MidtransNotificationDTO is the subset of the Midtrans HTTP
// notification the webhook acts on. The full payload is persisted
// verbatim alongside it.
type MidtransNotificationDTO struct {
	OrderID           string `json:"order_id" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	StatusCode        string `json:"status_code"`
	TransactionID     string `json:"transaction_id"`
}
