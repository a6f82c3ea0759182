package cache

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrozen(ttl time.Duration) (*Store, *time.Time) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	s := NewWithTTL(ttl)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestGetWithinTTL(t *testing.T) {
	s, now := newFrozen(2 * time.Minute)
	academy := uuid.New()

	s.Set(KindClassrooms, academy, []string{"math-a"})

	*now = now.Add(119 * time.Second)
	got, ok := s.Get(KindClassrooms, academy)
	require.True(t, ok)
	assert.Equal(t, []string{"math-a"}, got)
}

func TestGetAfterTTLIsMiss(t *testing.T) {
	s, now := newFrozen(2 * time.Minute)
	academy := uuid.New()

	s.Set(KindClassrooms, academy, []string{"math-a"})

	*now = now.Add(121 * time.Second)
	_, ok := s.Get(KindClassrooms, academy)
	assert.False(t, ok)
	assert.Zero(t, s.Len(), "expired entry dropped on read")
}

func TestInvalidateRemovesEntry(t *testing.T) {
	s, _ := newFrozen(2 * time.Minute)
	academy := uuid.New()

	s.Set(KindClassrooms, academy, 1)
	s.Invalidate(academy, KindClassrooms)

	_, ok := s.Get(KindClassrooms, academy)
	assert.False(t, ok, "post-mutation read must not see pre-mutation data")
}

func TestInvalidateIsTenantScoped(t *testing.T) {
	s, _ := newFrozen(2 * time.Minute)
	a, b := uuid.New(), uuid.New()

	s.Set(KindClassrooms, a, "a")
	s.Set(KindClassrooms, b, "b")
	s.Invalidate(a, KindClassrooms)

	_, ok := s.Get(KindClassrooms, a)
	assert.False(t, ok)
	got, ok := s.Get(KindClassrooms, b)
	require.True(t, ok)
	assert.Equal(t, "b", got)
}

func TestKindsAreIndependent(t *testing.T) {
	s, _ := newFrozen(2 * time.Minute)
	academy := uuid.New()

	s.Set(KindClassrooms, academy, "c")
	s.Set(KindSessions, academy, "s")
	s.Invalidate(academy, KindSessions)

	got, ok := s.Get(KindClassrooms, academy)
	require.True(t, ok)
	assert.Equal(t, "c", got)
}

func TestInvalidateAcademy(t *testing.T) {
	s, _ := newFrozen(2 * time.Minute)
	academy := uuid.New()

	s.Set(KindClassrooms, academy, "c")
	s.Set(KindSessions, academy, "s")
	s.Set(KindAttendance, academy, "at")
	s.InvalidateAcademy(academy)

	assert.Zero(t, s.Len())
}
