package appointments

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCSVStore(t *testing.T) *CSVStore {
	t.Helper()
	store := NewCSVStore(filepath.Join(t.TempDir(), "appointments.csv"))
	current := time.Date(2026, time.January, 2, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		now := current
		current = current.Add(time.Minute)
		return now
	}
	return store
}

func TestCSVStore_MissingFileListsEmpty(t *testing.T) {
	store := NewCSVStore(filepath.Join(t.TempDir(), "nope.csv"))
	appts, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, appts)
}

func TestCSVStore_HeaderOnlyListsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvHeader+"\n"), 0o644))

	store := NewCSVStore(path)
	appts, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, appts)
}

func TestCSVStore_WritesHeaderOnceAndQuotesEveryField(t *testing.T) {
	store := newTestCSVStore(t)

	_, err := store.Record(context.Background(), Details{
		Name: "Al", Email: "al@example.com", Phone: "1234567890",
		Purpose: "checkup", AppointmentTime: "9:00 AM",
	})
	require.NoError(t, err)
	_, err = store.Record(context.Background(), Details{
		Name: "Bea", Email: "bea@example.com", Phone: "+1-234-567-8900",
		Purpose: "intro call", AppointmentTime: "2:00 PM",
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(store.path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, csvHeader, lines[0])
	assert.Contains(t, lines[1], `"Al","al@example.com","1234567890","checkup","9:00 AM"`)
	assert.Contains(t, lines[2], `"Bea"`)
}

func TestCSVStore_RoundTripWithCommaAndQuote(t *testing.T) {
	store := newTestCSVStore(t)
	purpose := `Meeting, "urgent"`

	recorded, err := store.Record(context.Background(), Details{
		Name: "Al", Email: "al@example.com", Phone: "1234567890",
		Purpose: purpose, AppointmentTime: "3:00 PM",
	})
	require.NoError(t, err)

	appts, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, purpose, appts[0].Purpose)
	assert.Equal(t, recorded.Date, appts[0].Date)
	assert.Equal(t, recorded.AppointmentTime, appts[0].AppointmentTime)
	assert.Equal(t, recorded.CreatedAt, appts[0].CreatedAt)
	assert.Equal(t, StatusScheduled, appts[0].Status)
}

func TestCSVStore_ListNewestFirst(t *testing.T) {
	store := newTestCSVStore(t)

	for _, name := range []string{"first", "second", "third"} {
		_, err := store.Record(context.Background(), Details{
			Name: name, Email: "x@example.com", Phone: "1234567890", AppointmentTime: "9:00 AM",
		})
		require.NoError(t, err)
	}

	appts, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, appts, 3)
	assert.Equal(t, "third", appts[0].Name)
	assert.Equal(t, "first", appts[2].Name)
}
