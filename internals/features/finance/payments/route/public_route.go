// file: internals/features/finance/payments/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/features/finance/payments/controller"
	"classraum_backend/internals/middlewares"
)

// PaymentPublicRoutes wires the surfaces no browser session reaches:
// the gateway webhook and the API-key gated generation endpoints.
func PaymentPublicRoutes(app fiber.Router, db *gorm.DB) {
	recCtrl := controller.NewRecurringController(db)
	hookCtrl := controller.NewWebhookController(db)

	app.Post("/api/webhooks/payments", hookCtrl.HandlePaymentNotification)

	generate := app.Group("/api/payments/recurring/generate",
		middlewares.GenerateRateLimiter(),
		middlewares.ApiKeyAuth(db),
	)
	generate.Post("/", recCtrl.Generate)
	generate.Get("/", recCtrl.GenerateStatus)
}
