// file: internals/features/finance/payments/service/generator.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"classraum_backend/internals/features/finance/payments/model"
	notificationModel "classraum_backend/internals/features/home/notifications/model"
)

// Generator stamps invoices for every active template whose next due
// date is today or overdue. Safe to run more than once a day: a run
// advances next_due_date, so the early-exit count drops to zero.
type Generator struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewGenerator(db *gorm.DB) *Generator {
	return &Generator{DB: db, Now: time.Now}
}

type GenerateResult struct {
	Date                 string   `json:"date"`
	TemplatesFound       int      `json:"templates_found"`
	TemplatesProcessed   int      `json:"templates_processed"`
	TotalInvoicesCreated int      `json:"total_invoices_created"`
	Skipped              bool     `json:"skipped,omitempty"`
	Errors               []string `json:"errors,omitempty"`
}

// enrollmentRow is what the generator needs per student: the join of an
// active enrollment with an active student.
type enrollmentRow struct {
	StudentID      uuid.UUID
	AcademyID      uuid.UUID
	AmountOverride *int64
}

// invoicesForTemplate builds the pending invoices one run of a template
// produces. The amount override wins over the template amount, the
// discount is zero at generation time, and the final amount is
// snapshotted as amount minus discount.
func invoicesForTemplate(tpl model.PaymentTemplateModel, rows []enrollmentRow, dueDate time.Time) []model.InvoiceModel {
	out := make([]model.InvoiceModel, 0, len(rows))
	for _, r := range rows {
		amount := tpl.PaymentTemplateAmount
		if r.AmountOverride != nil {
			amount = *r.AmountOverride
		}
		tplID := tpl.PaymentTemplateID
		out = append(out, model.InvoiceModel{
			InvoiceAcademyID:      r.AcademyID,
			InvoiceStudentID:      r.StudentID,
			InvoiceTemplateID:     &tplID,
			InvoiceAmount:         amount,
			InvoiceDiscountAmount: 0,
			InvoiceFinalAmount:    amount,
			InvoiceDueDate:        dueDate,
			InvoiceStatus:         model.InvoicePending,
		})
	}
	return out
}

// Run executes one generation pass.
func (g *Generator) Run() (GenerateResult, error) {
	today := truncateDay(g.Now())
	res := GenerateResult{Date: today.Format("2006-01-02")}

	log.Printf("[RECURRING] Starting invoice generation for %s", res.Date)

	var dueCount int64
	if err := g.DB.Model(&model.PaymentTemplateModel{}).
		Where("payment_template_is_active = TRUE").
		Where("payment_template_next_due_date <= ?", today).
		Count(&dueCount).Error; err != nil {
		return res, err
	}
	if dueCount == 0 {
		log.Printf("[RECURRING] No templates due today (%s), skipping", res.Date)
		res.Skipped = true
		return res, nil
	}

	var templates []model.PaymentTemplateModel
	if err := g.DB.
		Where("payment_template_is_active = TRUE").
		Where("payment_template_next_due_date <= ?", today).
		Find(&templates).Error; err != nil {
		return res, err
	}
	res.TemplatesFound = len(templates)

	for _, tpl := range templates {
		created, err := g.processTemplate(tpl, today)
		if err != nil {
			log.Printf("[RECURRING] Template %s (%s) failed: %v",
				tpl.PaymentTemplateName, tpl.PaymentTemplateID, err)
			res.Errors = append(res.Errors,
				fmt.Sprintf("template %s: %v", tpl.PaymentTemplateName, err))
			continue
		}
		res.TemplatesProcessed++
		res.TotalInvoicesCreated += created
	}

	log.Printf("[RECURRING] Completed: %d/%d templates, %d invoices",
		res.TemplatesProcessed, res.TemplatesFound, res.TotalInvoicesCreated)
	return res, nil
}

// processTemplate runs a single template inside one transaction:
// invoices, the next_due_date advance, and the student notifications
// commit together or not at all.
func (g *Generator) processTemplate(tpl model.PaymentTemplateModel, today time.Time) (int, error) {
	var rows []enrollmentRow
	if err := g.DB.Table("recurring_payment_template_students AS te").
		Select(`te.template_enrollment_student_id AS student_id,
			te.template_enrollment_academy_id AS academy_id,
			te.template_enrollment_amount_override AS amount_override`).
		Joins(`JOIN students s ON s.student_id = te.template_enrollment_student_id
			AND s.student_active = TRUE AND s.student_deleted_at IS NULL`).
		Where("te.template_enrollment_template_id = ?", tpl.PaymentTemplateID).
		Where("te.template_enrollment_status = ?", model.EnrollmentActive).
		Scan(&rows).Error; err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		log.Printf("[RECURRING] No active students for template: %s", tpl.PaymentTemplateName)
		return 0, g.advanceNextDueDate(g.DB, &tpl, today)
	}

	dueDate := today
	if tpl.PaymentTemplateNextDueDate != nil {
		dueDate = truncateDay(*tpl.PaymentTemplateNextDueDate)
	}
	invoices := invoicesForTemplate(tpl, rows, dueDate)

	err := g.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invoices).Error; err != nil {
			return err
		}
		if err := g.advanceNextDueDate(tx, &tpl, today); err != nil {
			return err
		}

		notifications := make([]notificationModel.NotificationModel, 0, len(invoices))
		for _, inv := range invoices {
			studentID := inv.InvoiceStudentID
			notifications = append(notifications, notificationModel.NotificationModel{
				NotificationAcademyID: inv.InvoiceAcademyID,
				NotificationUserID:    &studentID,
				NotificationTitle:     "New invoice issued",
				NotificationMessage: fmt.Sprintf("%s: %d KRW due %s",
					tpl.PaymentTemplateName, inv.InvoiceFinalAmount,
					inv.InvoiceDueDate.Format("2006-01-02")),
				NotificationTags: []string{"payments", "invoice"},
			})
		}
		return tx.Create(&notifications).Error
	})
	if err != nil {
		return 0, err
	}

	log.Printf("[RECURRING] Created %d invoices for template: %s", len(invoices), tpl.PaymentTemplateName)
	return len(invoices), nil
}

// advanceNextDueDate recomputes and persists the template's next
// occurrence. A misconfigured template keeps its stored hint so it
// stays visible on the overdue list instead of silently moving on.
func (g *Generator) advanceNextDueDate(tx *gorm.DB, tpl *model.PaymentTemplateModel, today time.Time) error {
	next, err := NextDueDate(*tpl, today)
	if err != nil {
		if errors.Is(err, ErrInvalidRecurrenceConfig) {
			log.Printf("[RECURRING] Template %s has inconsistent recurrence config, next_due_date left as-is",
				tpl.PaymentTemplateID)
			return nil
		}
		return err
	}
	tpl.PaymentTemplateNextDueDate = &next
	return tx.Model(&model.PaymentTemplateModel{}).
		Where("payment_template_id = ?", tpl.PaymentTemplateID).
		Update("payment_template_next_due_date", next).Error
}

/* =========================
 * Monitoring (GET endpoint)
 * ========================= */

type TemplateBrief struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	NextDueDate  *string   `json:"next_due_date,omitempty"`
	Recurrence   string    `json:"recurrence_type"`
	DaysUntilDue *int      `json:"days_until_due,omitempty"`
}

type GenerateStatus struct {
	Date                 string          `json:"date"`
	TemplatesReady       int             `json:"templates_ready"`
	TotalActiveTemplates int             `json:"total_active_templates"`
	NextExecutionDate    *string         `json:"next_execution_date"`
	DaysUntilNextRun     *int            `json:"days_until_next_run"`
	Due                  []TemplateBrief `json:"due"`
	Upcoming             []TemplateBrief `json:"upcoming"`
}

// Status reports what the next Run would do, for dashboards and cron
// health checks.
func (g *Generator) Status() (GenerateStatus, error) {
	today := truncateDay(g.Now())
	st := GenerateStatus{Date: today.Format("2006-01-02")}

	var all []model.PaymentTemplateModel
	if err := g.DB.
		Where("payment_template_is_active = TRUE").
		Order("payment_template_next_due_date ASC").
		Find(&all).Error; err != nil {
		return st, err
	}
	st.TotalActiveTemplates = len(all)

	for i, tpl := range all {
		brief := TemplateBrief{
			ID:         tpl.PaymentTemplateID,
			Name:       tpl.PaymentTemplateName,
			Recurrence: string(tpl.PaymentTemplateRecurrenceType),
		}
		var due *time.Time
		if tpl.PaymentTemplateNextDueDate != nil {
			d := truncateDay(*tpl.PaymentTemplateNextDueDate)
			due = &d
			s := d.Format("2006-01-02")
			brief.NextDueDate = &s
			days := int(d.Sub(today).Hours() / 24)
			brief.DaysUntilDue = &days
		}

		if due != nil && !due.After(today) {
			st.TemplatesReady++
			st.Due = append(st.Due, brief)
		} else if len(st.Upcoming) < 5 {
			st.Upcoming = append(st.Upcoming, brief)
		}

		if i == 0 && brief.NextDueDate != nil {
			st.NextExecutionDate = brief.NextDueDate
			st.DaysUntilNextRun = brief.DaysUntilDue
		}
	}
	return st, nil
}
