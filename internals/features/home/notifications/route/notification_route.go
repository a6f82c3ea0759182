// file: internals/features/home/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/features/home/notifications/controller"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notifications := api.Group("/notifications")
	notifications.Get("/", ctrl.List)
	notifications.Post("/", ctrl.Create)
	notifications.Patch("/:id/read", ctrl.MarkRead)
	notifications.Post("/read-all", ctrl.MarkAllRead)
}
