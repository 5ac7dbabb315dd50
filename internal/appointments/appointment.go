package appointments

import (
	"strconv"
	"time"
)

// StatusScheduled is the only status an appointment ever carries; records are
// append-only and never mutated after creation.
const StatusScheduled = "Scheduled"

// DefaultPurpose is substituted when the visitor leaves the purpose blank.
const DefaultPurpose = "General consultation"

// Details carries the fields collected by the booking dialogue.
type Details struct {
	Name            string
	Email           string
	Phone           string
	Purpose         string
	AppointmentTime string
}

// Appointment is a completed booking.
type Appointment struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"` // resolved business day, YYYY-MM-DD
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Purpose         string    `json:"purpose"`
	AppointmentTime string    `json:"appointmentTime"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NextBusinessDay returns the first calendar day after today that is not a
// Saturday or Sunday.
func NextBusinessDay(today time.Time) time.Time {
	next := today.AddDate(0, 0, 1)
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// newAppointment resolves the appointment date, assigns the creation-time
// identifier, and applies the purpose default.
func newAppointment(d Details, now time.Time) Appointment {
	purpose := d.Purpose
	if purpose == "" {
		purpose = DefaultPurpose
	}
	return Appointment{
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		Date:            NextBusinessDay(now).Format("2006-01-02"),
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		Purpose:         purpose,
		AppointmentTime: d.AppointmentTime,
		Status:          StatusScheduled,
		CreatedAt:       now.UTC(),
	}
}
