package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quillhq/chatdesk/internal/appointments"
	"github.com/quillhq/chatdesk/pkg/logging"
)

// ReplySaveFailed is returned when the final step validated but the
// appointment could not be persisted. Callers can compare against it to
// tell a failed completion from a successful one.
const ReplySaveFailed = "I'm sorry, there was an error saving your appointment. Please try again or contact support."

// Sink persists a completed booking.
type Sink interface {
	Record(ctx context.Context, d appointments.Details) (appointments.Appointment, error)
}

// Engine advances one session's booking form per user message. It owns no
// state itself; sessions live in the store and the only side effect is the
// Sink call on the final step.
type Engine struct {
	sessions SessionStore
	sink     Sink
	logger   *logging.Logger
	now      func() time.Time
}

// NewEngine creates a booking dialogue engine.
func NewEngine(sessions SessionStore, sink Sink, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Default()
	}
	return &Engine{
		sessions: sessions,
		sink:     sink,
		logger:   logger,
		now:      time.Now,
	}
}

// Active reports whether a booking session is open for the identifier.
func (e *Engine) Active(ctx context.Context, sessionID string) (bool, error) {
	sess, err := e.sessions.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return sess != nil, nil
}

// Advance applies one user message to the session's current step and returns
// the reply plus whether the booking finished (successfully or not). Invalid
// input re-prompts on the same step without touching stored fields. When the
// time step validates, the appointment is persisted and the session deleted;
// a sink failure also deletes the session and reports completion with a
// generic failure reply rather than leaving the booking retryable.
func (e *Engine) Advance(ctx context.Context, sessionID, message string) (string, bool, error) {
	sess, err := e.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", false, err
	}
	if sess == nil {
		sess = &Session{Step: StepStart}
	}
	msg := strings.TrimSpace(message)

	var reply string
	switch sess.Step {
	case StepStart:
		// The triggering message is discarded, whatever else it contains.
		sess.Step = StepName
		reply = "I'd be happy to help you book an appointment! Let's start by getting your name. What should I call you?"

	case StepName:
		if len([]rune(msg)) < 2 {
			reply = "Please provide a valid name with at least 2 characters."
		} else {
			sess.Name = msg
			sess.Step = StepEmail
			reply = fmt.Sprintf("Nice to meet you, %s! Could you please provide your email address?", sess.Name)
		}

	case StepEmail:
		if !ValidEmail(msg) {
			reply = "Please provide a valid email address (e.g., john@example.com)."
		} else {
			sess.Email = msg
			sess.Step = StepPhone
			reply = "Great! Now I need your phone number for contact purposes."
		}

	case StepPhone:
		if !ValidPhone(msg) {
			reply = "Please provide a valid phone number with at least 10 digits (e.g., +1-234-567-8900 or 1234567890)."
		} else {
			sess.Phone = msg
			sess.Step = StepPurpose
			reply = "Perfect! What's the purpose of your appointment? (e.g., consultation, meeting, support, etc.)"
		}

	case StepPurpose:
		// Any purpose is accepted verbatim, empty included.
		sess.Purpose = msg
		sess.Step = StepTime
		reply = "Thank you! Now let's schedule your appointment. " + SuggestAppointmentTimes(e.now())

	case StepTime:
		if !ValidAppointmentTime(msg) {
			reply = "Please choose from the available time slots. " + SuggestAppointmentTimes(e.now())
			break
		}
		sess.AppointmentTime = msg
		return e.complete(ctx, sessionID, sess), true, nil
	}

	if err := e.sessions.Put(ctx, sessionID, sess); err != nil {
		return "", false, err
	}
	e.logger.Debug("booking: session advanced", "session_id", sessionID, "step", sess.Step.String())
	return reply, false, nil
}

// complete persists the appointment and removes the session either way.
func (e *Engine) complete(ctx context.Context, sessionID string, sess *Session) string {
	appt, err := e.sink.Record(ctx, appointments.Details{
		Name:            sess.Name,
		Email:           sess.Email,
		Phone:           sess.Phone,
		Purpose:         sess.Purpose,
		AppointmentTime: sess.AppointmentTime,
	})

	if delErr := e.sessions.Delete(ctx, sessionID); delErr != nil {
		e.logger.Error("booking: failed to delete completed session", "session_id", sessionID, "error", delErr)
	}

	if err != nil {
		e.logger.Error("booking: failed to save appointment", "session_id", sessionID, "error", err)
		return ReplySaveFailed
	}

	e.logger.Info("booking: appointment scheduled",
		"session_id", sessionID,
		"appointment_id", appt.ID,
		"date", appt.Date,
		"time", appt.AppointmentTime,
	)

	date := appointments.NextBusinessDay(e.now()).Format("Monday, January 2, 2006")
	return fmt.Sprintf(`Perfect! Your appointment has been scheduled successfully. Here's a summary:

Name: %s
Email: %s
Phone: %s
Purpose: %s
Time: %s on %s

Your appointment has been saved. Is there anything else I can help you with?`,
		sess.Name, sess.Email, sess.Phone, sess.Purpose, sess.AppointmentTime, date)
}
