// file: internals/features/finance/payments/service/recurrence_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classraum_backend/internals/features/finance/payments/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intp(v int) *int { return &v }

func monthlyTpl(dayOfMonth int, start time.Time) model.PaymentTemplateModel {
	return model.PaymentTemplateModel{
		PaymentTemplateRecurrenceType: model.RecurrenceMonthly,
		PaymentTemplateDayOfMonth:     intp(dayOfMonth),
		PaymentTemplateStartDate:      start,
	}
}

func weeklyTpl(dayOfWeek int, start time.Time) model.PaymentTemplateModel {
	return model.PaymentTemplateModel{
		PaymentTemplateRecurrenceType: model.RecurrenceWeekly,
		PaymentTemplateDayOfWeek:      intp(dayOfWeek),
		PaymentTemplateStartDate:      start,
	}
}

func TestNextDueDate_MonthlyClampsToShortMonth(t *testing.T) {
	// Day 31 in April lands on April 30.
	tpl := monthlyTpl(31, day(2026, time.January, 1))
	got, err := NextDueDate(tpl, day(2026, time.April, 10))
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.April, 30), got)
}

func TestNextDueDate_MonthlyFebruary(t *testing.T) {
	tpl := monthlyTpl(30, day(2026, time.January, 1))
	got, err := NextDueDate(tpl, day(2026, time.February, 10))
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.February, 28), got)

	// Leap year.
	got, err = NextDueDate(tpl, day(2028, time.February, 10))
	require.NoError(t, err)
	assert.Equal(t, day(2028, time.February, 29), got)
}

func TestNextDueDate_MonthlyAdvancesWhenDueToday(t *testing.T) {
	tpl := monthlyTpl(15, day(2026, time.January, 1))

	got, err := NextDueDate(tpl, day(2026, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.April, 15), got, "on the due day the next occurrence is a month out")

	got, err = NextDueDate(tpl, day(2026, time.March, 16))
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.April, 15), got)

	got, err = NextDueDate(tpl, day(2026, time.March, 14))
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.March, 15), got)
}

func TestNextDueDate_MonthlyClampAfterAdvance(t *testing.T) {
	// Due day 31, today Jan 31: next occurrence is Feb 28.
	tpl := monthlyTpl(31, day(2026, time.January, 1))
	got, err := NextDueDate(tpl, day(2026, time.January, 31))
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.February, 28), got)
}

func TestNextDueDate_WeeklyNextOccurrence(t *testing.T) {
	// 2026-08-26 is a Wednesday (weekday 3).
	today := day(2026, time.August, 26)
	require.Equal(t, time.Wednesday, today.Weekday())

	tpl := weeklyTpl(5, day(2026, time.January, 1)) // Friday
	got, err := NextDueDate(tpl, today)
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.August, 28), got)
}

func TestNextDueDate_WeeklySameDayGoesNextWeek(t *testing.T) {
	today := day(2026, time.August, 26) // Wednesday
	tpl := weeklyTpl(3, day(2026, time.January, 1))
	got, err := NextDueDate(tpl, today)
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.September, 2), got)
}

func TestNextDueDate_WeeklyEarlierWeekdayWrap(t *testing.T) {
	today := day(2026, time.August, 26) // Wednesday
	tpl := weeklyTpl(1, day(2026, time.January, 1)) // Monday
	got, err := NextDueDate(tpl, today)
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.August, 31), got)
}

func TestNextDueDate_FutureStartDateWins(t *testing.T) {
	tpl := monthlyTpl(15, day(2026, time.December, 1))
	got, err := NextDueDate(tpl, day(2026, time.August, 26))
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.December, 1), got)
}

func TestNextDueDate_PastEndDateReturnsEndDate(t *testing.T) {
	end := day(2026, time.June, 30)
	tpl := monthlyTpl(15, day(2026, time.January, 1))
	tpl.PaymentTemplateEndDate = &end

	got, err := NextDueDate(tpl, day(2026, time.August, 26))
	require.NoError(t, err)
	assert.Equal(t, end, got)

	// End date exactly today also closes the plan.
	got, err = NextDueDate(tpl, end)
	require.NoError(t, err)
	assert.Equal(t, end, got)
}

func TestNextDueDate_InvalidConfig(t *testing.T) {
	tpl := model.PaymentTemplateModel{
		PaymentTemplateRecurrenceType: model.RecurrenceMonthly,
		PaymentTemplateStartDate:      day(2026, time.January, 1),
	}
	_, err := NextDueDate(tpl, day(2026, time.August, 26))
	assert.ErrorIs(t, err, ErrInvalidRecurrenceConfig)

	tpl.PaymentTemplateRecurrenceType = model.RecurrenceWeekly
	_, err = NextDueDate(tpl, day(2026, time.August, 26))
	assert.ErrorIs(t, err, ErrInvalidRecurrenceConfig)

	tpl.PaymentTemplateRecurrenceType = "yearly"
	tpl.PaymentTemplateDayOfMonth = intp(1)
	_, err = NextDueDate(tpl, day(2026, time.August, 26))
	assert.ErrorIs(t, err, ErrInvalidRecurrenceConfig)
}

func TestNextDueDate_IgnoresTimeOfDay(t *testing.T) {
	tpl := weeklyTpl(4, day(2026, time.January, 1)) // Thursday
	todayEvening := time.Date(2026, time.August, 26, 23, 55, 0, 0, time.UTC)
	got, err := NextDueDate(tpl, todayEvening)
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.August, 27), got)
}
