// file: internals/features/finance/payments/controller/webhook_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"classraum_backend/internals/features/finance/payments/dto"
	"classraum_backend/internals/features/finance/payments/model"
	"classraum_backend/internals/features/finance/payments/service"
	notificationModel "classraum_backend/internals/features/home/notifications/model"
	helper "classraum_backend/internals/helpers"
)

type WebhookController struct {
	DB *gorm.DB
}

func NewWebhookController(db *gorm.DB) *WebhookController {
	return &WebhookController{DB: db}
}

// 🟢 POST /api/webhooks/payments
// Midtrans HTTP notification. The raw payload is persisted first, then
// the invoice transitions in the same transaction. Always returns 200
// for matched orders so the gateway stops retrying.
func (ctrl *WebhookController) HandlePaymentNotification(c *fiber.Ctx) error {
	var in dto.MidtransNotificationDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	log.Printf("[WEBHOOK] payment notification order=%s status=%s", in.OrderID, in.TransactionStatus)

	var inv model.InvoiceModel
	if err := ctrl.DB.First(&inv, "invoice_order_id = ?", in.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Keep the event for audit even when nothing matches.
			_ = ctrl.DB.Create(&model.PaymentGatewayEventModel{
				PaymentGatewayEventOrderID: in.OrderID,
				PaymentGatewayEventType:    in.TransactionStatus,
				PaymentGatewayEventPayload: datatypes.JSON(c.Body()),
			}).Error
			return helper.JsonError(c, fiber.StatusNotFound, "unknown order id")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	newStatus, fields := service.MapMidtransStatus(inv.InvoiceStatus, in.TransactionStatus, in.FraudStatus, now)

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		event := model.PaymentGatewayEventModel{
			PaymentGatewayEventInvoiceID: &inv.InvoiceID,
			PaymentGatewayEventOrderID:   in.OrderID,
			PaymentGatewayEventType:      in.TransactionStatus,
			PaymentGatewayEventPayload:   datatypes.JSON(c.Body()),
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		if newStatus == inv.InvoiceStatus {
			return nil
		}

		inv.InvoiceStatus = newStatus
		if fields.PaidAt != nil {
			inv.InvoicePaidAt = fields.PaidAt
			if in.PaymentType != "" {
				inv.InvoicePaymentMethod = &in.PaymentType
			}
		}
		if fields.RefundedAt != nil {
			inv.InvoiceRefundedAmount = inv.InvoiceFinalAmount
		}
		if err := tx.Save(&inv).Error; err != nil {
			return err
		}

		if newStatus == model.InvoicePaid {
			studentID := inv.InvoiceStudentID
			return tx.Create(&notificationModel.NotificationModel{
				NotificationAcademyID: inv.InvoiceAcademyID,
				NotificationUserID:    &studentID,
				NotificationTitle:     "Payment received",
				NotificationMessage:   "Invoice " + inv.InvoiceID.String() + " has been paid.",
				NotificationTags:      []string{"payments", "webhook"},
			}).Error
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "notification processed", fiber.Map{
		"order_id": in.OrderID,
		"status":   string(inv.InvoiceStatus),
	})
}
