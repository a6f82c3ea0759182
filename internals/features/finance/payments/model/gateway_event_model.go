// file: internals/features/finance/payments/model/gateway_event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Raw gateway notification, stored before any state transition so a
// disputed payment can always be replayed from the source payload.
type PaymentGatewayEventModel struct {
	PaymentGatewayEventID        uuid.UUID      `gorm:"column:payment_gateway_event_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"payment_gateway_event_id"`
	PaymentGatewayEventInvoiceID *uuid.UUID     `gorm:"column:payment_gateway_event_invoice_id;type:uuid;index" json:"payment_gateway_event_invoice_id,omitempty"`
	PaymentGatewayEventOrderID   string         `gorm:"column:payment_gateway_event_order_id;type:varchar(64);not null;index" json:"payment_gateway_event_order_id"`
	PaymentGatewayEventType      string         `gorm:"column:payment_gateway_event_type;type:varchar(40);not null" json:"payment_gateway_event_type"`
	PaymentGatewayEventPayload   datatypes.JSON `gorm:"column:payment_gateway_event_payload;type:jsonb" json:"payment_gateway_event_payload"`
	PaymentGatewayEventCreatedAt time.Time      `gorm:"column:payment_gateway_event_created_at;autoCreateTime" json:"payment_gateway_event_created_at"`
}

func (PaymentGatewayEventModel) TableName() string {
	return "payment_gateway_events"
}
