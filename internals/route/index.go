// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classraum_backend/internals/cache"
	academyRoute "classraum_backend/internals/features/academies/route"
	paymentRoute "classraum_backend/internals/features/finance/payments/route"
	notificationRoute "classraum_backend/internals/features/home/notifications/route"
	assignmentRoute "classraum_backend/internals/features/school/assignments/route"
	attendanceRoute "classraum_backend/internals/features/school/attendance/route"
	classroomRoute "classraum_backend/internals/features/school/classrooms/route"
	sessionRoute "classraum_backend/internals/features/school/sessions/route"
	studentRoute "classraum_backend/internals/features/users/students/route"
	"classraum_backend/internals/middlewares"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, store *cache.Store) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	// Gateway webhook + API-key gated generation, no JWT.
	log.Println("[INFO] Mounting public payment routes...")
	paymentRoute.PaymentPublicRoutes(app, db)

	// ===================== ACADEMY (JWT) =====================
	log.Println("[INFO] Setting up ACADEMY group...")
	academy := app.Group("/api/a",
		middlewares.AuthJWT(middlewares.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Mounting Academy routes...")
	academyRoute.AcademyRoutes(academy, db)

	log.Println("[INFO] Mounting Student routes...")
	studentRoute.StudentRoutes(academy, db, store)

	log.Println("[INFO] Mounting Classroom routes...")
	classroomRoute.ClassroomRoutes(academy, db, store)

	log.Println("[INFO] Mounting Session routes...")
	sessionRoute.SessionRoutes(academy, db, store)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(academy, db, store)

	log.Println("[INFO] Mounting Assignment routes...")
	assignmentRoute.AssignmentRoutes(academy, db, store)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentRoutes(academy, db)

	log.Println("[INFO] Mounting Notification routes...")
	notificationRoute.NotificationRoutes(academy, db)
}
