package appointments

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// csvHeader is the fixed column layout of the appointments file. Date holds
// the RFC3339 creation timestamp; Appointment Date holds the resolved
// business day.
const csvHeader = `Date,Name,Email,Phone,Purpose,Appointment Time,Appointment Date,Status`

// CSVStore appends appointments to a CSV file. Every field is written
// double-quoted with embedded quotes doubled so that commas and quotes inside
// values survive a round trip.
type CSVStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewCSVStore creates a store backed by the file at path. The file is created
// lazily on the first Record.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path, now: time.Now}
}

// Record appends a new appointment row, writing the header first when the
// file is new or empty.
func (s *CSVStore) Record(_ context.Context, d Details) (Appointment, error) {
	appt := newAppointment(d, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Appointment{}, fmt.Errorf("appointments: failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Appointment{}, fmt.Errorf("appointments: failed to stat %s: %w", s.path, err)
	}

	var sb strings.Builder
	if info.Size() == 0 {
		sb.WriteString(csvHeader)
		sb.WriteString("\n")
	}
	sb.WriteString(quotedRow(
		appt.CreatedAt.Format(time.RFC3339),
		appt.Name,
		appt.Email,
		appt.Phone,
		appt.Purpose,
		appt.AppointmentTime,
		appt.Date,
		appt.Status,
	))

	if _, err := f.WriteString(sb.String()); err != nil {
		return Appointment{}, fmt.Errorf("appointments: failed to append to %s: %w", s.path, err)
	}
	return appt, nil
}

// List parses the backing file and returns appointments newest-created-first.
// A missing or header-only file yields an empty list.
func (s *CSVStore) List(_ context.Context) ([]Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("appointments: failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 8
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("appointments: failed to parse %s: %w", s.path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	appts := make([]Appointment, 0, len(rows)-1)
	for _, row := range rows[1:] {
		createdAt, err := time.Parse(time.RFC3339, row[0])
		if err != nil {
			return nil, fmt.Errorf("appointments: bad created-at %q in %s: %w", row[0], s.path, err)
		}
		appts = append(appts, Appointment{
			ID:              strconv.FormatInt(createdAt.UnixMilli(), 10),
			Date:            row[6],
			Name:            row[1],
			Email:           row[2],
			Phone:           row[3],
			Purpose:         row[4],
			AppointmentTime: row[5],
			Status:          row[7],
			CreatedAt:       createdAt,
		})
	}
	return sortNewestFirst(appts), nil
}

// quotedRow renders one CSV line with every field quoted and embedded quotes
// doubled, terminated by a newline.
func quotedRow(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",") + "\n"
}
