// file: internals/features/finance/payments/service/recurrence.go
package service

import (
	"errors"
	"time"

	"classraum_backend/internals/features/finance/payments/model"
)

// ErrInvalidRecurrenceConfig is returned when a template's recurrence
// fields are inconsistent, e.g. monthly without day_of_month. Callers
// must surface or log the misconfiguration instead of guessing a date.
var ErrInvalidRecurrenceConfig = errors.New("invalid recurrence config: recurrence type does not match its day field")

// NextDueDate computes the next occurrence for a template, relative to
// today. All math is calendar-day precision in today's location.
//
// Rules:
//   - start date in the future wins over everything: the first due date
//     is the start date itself.
//   - end date on or before today means the plan is over; the end date
//     is returned so callers can close it out.
//   - monthly: the configured day of the current month, clamped to the
//     month's length (day 31 in April lands on April 30). If that day is
//     today or already past, the next month's clamped day.
//   - weekly: the next strictly-future occurrence of the configured
//     weekday, so a run on the due weekday schedules one week ahead.
func NextDueDate(tpl model.PaymentTemplateModel, today time.Time) (time.Time, error) {
	today = truncateDay(today)

	start := truncateDay(tpl.PaymentTemplateStartDate)
	if start.After(today) {
		return start, nil
	}
	if tpl.PaymentTemplateEndDate != nil {
		end := truncateDay(*tpl.PaymentTemplateEndDate)
		if !end.After(today) {
			return end, nil
		}
	}

	switch tpl.PaymentTemplateRecurrenceType {
	case model.RecurrenceMonthly:
		if tpl.PaymentTemplateDayOfMonth == nil {
			return time.Time{}, ErrInvalidRecurrenceConfig
		}
		day := *tpl.PaymentTemplateDayOfMonth
		candidate := clampedMonthDay(today.Year(), today.Month(), day, today.Location())
		if !candidate.After(today) {
			next := today.AddDate(0, 1, -today.Day()+1) // first of next month
			candidate = clampedMonthDay(next.Year(), next.Month(), day, today.Location())
		}
		return candidate, nil

	case model.RecurrenceWeekly:
		if tpl.PaymentTemplateDayOfWeek == nil {
			return time.Time{}, ErrInvalidRecurrenceConfig
		}
		offset := *tpl.PaymentTemplateDayOfWeek - int(today.Weekday())
		if offset <= 0 {
			offset += 7
		}
		return today.AddDate(0, 0, offset), nil
	}

	return time.Time{}, ErrInvalidRecurrenceConfig
}

// clampedMonthDay builds year/month/day with day clamped to the month's
// actual length.
func clampedMonthDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
