// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/features/finance/payments/controller"
)

// PaymentRoutes wires the JWT-protected payment surface.
func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	tplCtrl := controller.NewPaymentTemplateController(db)
	invCtrl := controller.NewInvoiceController(db)
	recCtrl := controller.NewRecurringController(db)
	keyCtrl := controller.NewApiKeyController(db)

	payments := api.Group("/payments")

	templates := payments.Group("/templates")
	templates.Get("/", tplCtrl.List)
	templates.Post("/", tplCtrl.Create)
	templates.Get("/:id", tplCtrl.Get)
	templates.Patch("/:id", tplCtrl.Update)
	templates.Delete("/:id", tplCtrl.Delete)
	templates.Post("/:id/students", tplCtrl.AddEnrollment)
	templates.Patch("/:id/students/:studentId", tplCtrl.UpdateEnrollment)
	templates.Delete("/:id/students/:studentId", tplCtrl.RemoveEnrollment)

	invoices := payments.Group("/invoices")
	invoices.Get("/", invCtrl.List)
	invoices.Post("/", invCtrl.Create)
	invoices.Patch("/:id", invCtrl.Update)
	invoices.Post("/:id/mark-paid", invCtrl.MarkPaid)
	invoices.Post("/:id/refund", invCtrl.Refund)
	invoices.Post("/:id/checkout", invCtrl.Checkout)

	payments.Post("/recurring/control", recCtrl.Control)

	apiKeys := payments.Group("/api-keys")
	apiKeys.Get("/", keyCtrl.List)
	apiKeys.Post("/", keyCtrl.Create)
	apiKeys.Delete("/:id", keyCtrl.Revoke)
}
