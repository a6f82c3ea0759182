// file: internals/features/school/classrooms/service/schedule_diff.go
package service

/* =========================================
   Weekly schedule diff

   Classifies a proposed slot-set edit so the handler knows whether the
   change is destructive (existing day moved or dropped → the caller must
   confirm how historical sessions are handled) or a pure addition/no-op
   that can be written directly.
========================================= */

type Slot struct {
	Day       int    `json:"day"` // 0=Sunday..6=Saturday
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type Verdict string

const (
	VerdictUnchanged Verdict = "unchanged"
	VerdictChanged   Verdict = "changed" // same day, different start or end time
	VerdictRemoved   Verdict = "removed"
	VerdictAdded     Verdict = "added"
)

type SlotChange struct {
	Verdict Verdict `json:"verdict"`
	Old     *Slot   `json:"old,omitempty"`
	New     *Slot   `json:"new,omitempty"`
}

type Diff struct {
	Changes []SlotChange `json:"changes"`
}

// RequiresConfirmation is true when an existing day's slot was moved or
// dropped. Pure additions and no-ops apply without asking.
func (d Diff) RequiresConfirmation() bool {
	for _, ch := range d.Changes {
		if ch.Verdict == VerdictChanged || ch.Verdict == VerdictRemoved {
			return true
		}
	}
	return false
}

// DiffWeeklySchedule compares the old and proposed slot sets keyed by day.
// Slot splits or overlaps within one day are not modelled; the first slot
// per day wins.
func DiffWeeklySchedule(oldSlots, newSlots []Slot) Diff {
	oldByDay := firstByDay(oldSlots)
	newByDay := firstByDay(newSlots)

	var changes []SlotChange

	// stable order: walk days 0..6 so the output is deterministic
	for day := 0; day <= 6; day++ {
		o, hasOld := oldByDay[day]
		n, hasNew := newByDay[day]

		switch {
		case hasOld && hasNew:
			if o.StartTime == n.StartTime && o.EndTime == n.EndTime {
				changes = append(changes, SlotChange{Verdict: VerdictUnchanged, Old: ptr(o), New: ptr(n)})
			} else {
				changes = append(changes, SlotChange{Verdict: VerdictChanged, Old: ptr(o), New: ptr(n)})
			}
		case hasOld:
			changes = append(changes, SlotChange{Verdict: VerdictRemoved, Old: ptr(o)})
		case hasNew:
			changes = append(changes, SlotChange{Verdict: VerdictAdded, New: ptr(n)})
		}
	}

	return Diff{Changes: changes}
}

func firstByDay(slots []Slot) map[int]Slot {
	out := make(map[int]Slot, len(slots))
	for _, s := range slots {
		if _, seen := out[s.Day]; !seen {
			out[s.Day] = s
		}
	}
	return out
}

func ptr(s Slot) *Slot { return &s }
