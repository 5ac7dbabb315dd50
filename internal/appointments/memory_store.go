package appointments

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Store records completed bookings and lists them newest-created-first.
type Store interface {
	Record(ctx context.Context, d Details) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
}

// MemoryStore keeps appointments in an append-only in-process slice.
type MemoryStore struct {
	mu           sync.RWMutex
	appointments []Appointment
	now          func() time.Time
}

// NewMemoryStore creates an empty in-memory appointment store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// Record appends a new appointment. It never fails for well-formed input.
func (s *MemoryStore) Record(_ context.Context, d Details) (Appointment, error) {
	appt := newAppointment(d, s.now())
	s.mu.Lock()
	s.appointments = append(s.appointments, appt)
	s.mu.Unlock()
	return appt, nil
}

// List returns all recorded appointments sorted newest-created-first.
func (s *MemoryStore) List(_ context.Context) ([]Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortNewestFirst(s.appointments), nil
}

// sortNewestFirst copies appts and orders them by creation time descending.
// The input is reversed before the stable sort so that records sharing a
// timestamp keep most-recently-appended-first order.
func sortNewestFirst(appts []Appointment) []Appointment {
	out := make([]Appointment, len(appts))
	for i, a := range appts {
		out[len(appts)-1-i] = a
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
