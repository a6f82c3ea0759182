// file: internals/features/finance/payments/scheduler/generate_scheduler.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"classraum_backend/internals/features/finance/payments/service"
)

// StartInvoiceGenerationScheduler runs the recurring invoice generator
// in a background loop. The generator early-exits when nothing is due,
// so running it more than once a day is harmless.
func StartInvoiceGenerationScheduler(db *gorm.DB) {
	go func() {
		intervalHours := 24
		if val := os.Getenv("RECURRING_GENERATE_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		gen := service.NewGenerator(db)
		for {
			res, err := gen.Run()
			if err != nil {
				log.Printf("[RECURRING ERROR] scheduled generation failed: %v", err)
			} else if !res.Skipped {
				log.Printf("[RECURRING] scheduled run: %d invoices across %d templates",
					res.TotalInvoicesCreated, res.TemplatesProcessed)
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
