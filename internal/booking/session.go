package booking

import (
	"context"
	"fmt"
	"sync"
)

// Step is the position of a session in the booking form.
type Step int

const (
	StepStart Step = iota
	StepName
	StepEmail
	StepPhone
	StepPurpose
	StepTime
)

var stepNames = map[Step]string{
	StepStart:   "start",
	StepName:    "name",
	StepEmail:   "email",
	StepPhone:   "phone",
	StepPurpose: "purpose",
	StepTime:    "time",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// MarshalText serializes the step by name so persisted sessions stay readable.
func (s Step) MarshalText() ([]byte, error) {
	name, ok := stepNames[s]
	if !ok {
		return nil, fmt.Errorf("booking: unknown step %d", int(s))
	}
	return []byte(name), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	for step, name := range stepNames {
		if name == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("booking: unknown step %q", string(text))
}

// Session is the in-progress booking form for one visitor. Fields fill in
// incrementally as steps validate; a session only exists while incomplete.
type Session struct {
	Step            Step   `json:"step"`
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Purpose         string `json:"purpose,omitempty"`
	AppointmentTime string `json:"appointment_time,omitempty"`
}

// SessionStore maps session identifiers to in-progress booking forms.
// Get returns (nil, nil) when no session exists for the identifier.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*Session, error)
	Put(ctx context.Context, sessionID string, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}

// MemorySessionStore is the default mutex-guarded map store. Same-ID races
// resolve last-writer-wins, which is accepted for this widget.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]Session)}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	copied := sess
	return &copied, nil
}

func (s *MemorySessionStore) Put(_ context.Context, sessionID string, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = *session
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
