package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sunday    = 0
	monday    = 1
	tuesday   = 2
	wednesday = 3
)

func TestIdenticalSlotIsUnchanged(t *testing.T) {
	old := []Slot{{Day: monday, StartTime: "09:00", EndTime: "10:00"}}
	new := []Slot{{Day: monday, StartTime: "09:00", EndTime: "10:00"}}

	d := DiffWeeklySchedule(old, new)

	require.Len(t, d.Changes, 1)
	assert.Equal(t, VerdictUnchanged, d.Changes[0].Verdict)
	assert.False(t, d.RequiresConfirmation())
}

func TestMovedSlotIsMaterialChange(t *testing.T) {
	old := []Slot{{Day: monday, StartTime: "09:00", EndTime: "10:00"}}
	new := []Slot{{Day: monday, StartTime: "10:00", EndTime: "11:00"}}

	d := DiffWeeklySchedule(old, new)

	require.Len(t, d.Changes, 1)
	assert.Equal(t, VerdictChanged, d.Changes[0].Verdict)
	assert.True(t, d.RequiresConfirmation())
}

func TestEndTimeOnlyChangeIsMaterial(t *testing.T) {
	old := []Slot{{Day: monday, StartTime: "09:00", EndTime: "10:00"}}
	new := []Slot{{Day: monday, StartTime: "09:00", EndTime: "10:30"}}

	d := DiffWeeklySchedule(old, new)

	require.Len(t, d.Changes, 1)
	assert.Equal(t, VerdictChanged, d.Changes[0].Verdict)
	assert.True(t, d.RequiresConfirmation())
}

func TestPureAdditionNeedsNoConfirmation(t *testing.T) {
	d := DiffWeeklySchedule(nil, []Slot{{Day: tuesday, StartTime: "09:00", EndTime: "10:00"}})

	require.Len(t, d.Changes, 1)
	assert.Equal(t, VerdictAdded, d.Changes[0].Verdict)
	assert.False(t, d.RequiresConfirmation())
}

func TestRemovalRequiresConfirmation(t *testing.T) {
	d := DiffWeeklySchedule([]Slot{{Day: monday, StartTime: "09:00", EndTime: "10:00"}}, nil)

	require.Len(t, d.Changes, 1)
	assert.Equal(t, VerdictRemoved, d.Changes[0].Verdict)
	assert.True(t, d.RequiresConfirmation())
}

func TestMixedEdit(t *testing.T) {
	old := []Slot{
		{Day: monday, StartTime: "09:00", EndTime: "10:00"},
		{Day: wednesday, StartTime: "14:00", EndTime: "15:00"},
	}
	new := []Slot{
		{Day: monday, StartTime: "09:00", EndTime: "10:00"},
		{Day: tuesday, StartTime: "16:00", EndTime: "17:00"},
	}

	d := DiffWeeklySchedule(old, new)

	verdicts := map[int]Verdict{}
	for _, ch := range d.Changes {
		switch {
		case ch.Old != nil:
			verdicts[ch.Old.Day] = ch.Verdict
		case ch.New != nil:
			verdicts[ch.New.Day] = ch.Verdict
		}
	}
	assert.Equal(t, VerdictUnchanged, verdicts[monday])
	assert.Equal(t, VerdictAdded, verdicts[tuesday])
	assert.Equal(t, VerdictRemoved, verdicts[wednesday])
	assert.True(t, d.RequiresConfirmation())
}

func TestEmptyToEmptyIsNoop(t *testing.T) {
	d := DiffWeeklySchedule(nil, nil)
	assert.Empty(t, d.Changes)
	assert.False(t, d.RequiresConfirmation())
}

func TestSundayBoundaryDay(t *testing.T) {
	old := []Slot{{Day: sunday, StartTime: "08:00", EndTime: "09:00"}}
	new := []Slot{{Day: sunday, StartTime: "08:00", EndTime: "09:00"}}

	d := DiffWeeklySchedule(old, new)

	require.Len(t, d.Changes, 1)
	assert.Equal(t, VerdictUnchanged, d.Changes[0].Verdict)
}
