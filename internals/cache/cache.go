// file: internals/cache/cache.go
package cache

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind names a cached resource collection. Producers invalidate by kind, so
// no mutation site has to enumerate raw string keys.
type Kind string

const (
	KindClassrooms  Kind = "classrooms"
	KindSessions    Kind = "sessions"
	KindAssignments Kind = "assignments"
	KindAttendance  Kind = "attendance"
	KindStudents    Kind = "students"
)

// DefaultTTL matches the freshness window the list endpoints tolerate.
const DefaultTTL = 2 * time.Minute

type key struct {
	AcademyID uuid.UUID
	Kind      Kind
}

type entry struct {
	data      any
	timestamp time.Time
	ttl       time.Duration
}

// Store is a process-wide read-through cache with per-entry TTL and explicit
// tenant-scoped invalidation.
type Store struct {
	mu      sync.RWMutex
	entries map[key]entry
	ttl     time.Duration
	now     func() time.Time
}

func New() *Store {
	return NewWithTTL(DefaultTTL)
}

func NewWithTTL(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[key]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached payload when it is younger than its TTL. Expired
// entries are dropped on read.
func (s *Store) Get(kind Kind, academyID uuid.UUID) (any, bool) {
	k := key{AcademyID: academyID, Kind: kind}

	s.mu.RLock()
	e, ok := s.entries[k]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if s.now().Sub(e.timestamp) >= e.ttl {
		s.mu.Lock()
		// re-check under the write lock; a Set may have refreshed it
		if cur, ok := s.entries[k]; ok && s.now().Sub(cur.timestamp) >= cur.ttl {
			delete(s.entries, k)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.data, true
}

func (s *Store) Set(kind Kind, academyID uuid.UUID, data any) {
	s.SetTTL(kind, academyID, data, s.ttl)
}

func (s *Store) SetTTL(kind Kind, academyID uuid.UUID, data any, ttl time.Duration) {
	s.mu.Lock()
	s.entries[key{AcademyID: academyID, Kind: kind}] = entry{
		data:      data,
		timestamp: s.now(),
		ttl:       ttl,
	}
	s.mu.Unlock()
}

// Invalidate is the single entry point mutations call. A classroom write
// invalidates (KindClassrooms, academy); a session write (KindSessions,
// academy); and so on.
func (s *Store) Invalidate(academyID uuid.UUID, kinds ...Kind) {
	s.mu.Lock()
	for _, kind := range kinds {
		delete(s.entries, key{AcademyID: academyID, Kind: kind})
	}
	s.mu.Unlock()
	log.Printf("[CACHE] invalidated %v academy=%s", kinds, academyID)
}

// InvalidateAcademy drops every entry for one tenant.
func (s *Store) InvalidateAcademy(academyID uuid.UUID) {
	s.mu.Lock()
	for k := range s.entries {
		if k.AcademyID == academyID {
			delete(s.entries, k)
		}
	}
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
