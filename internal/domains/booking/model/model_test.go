package model_test

import (
	"testing"
	"time"

	"roomio/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, value string) model.Clock {
	t.Helper()

	c, err := model.ParseClock(value)
	require.NoError(t, err)

	return c
}

func booking(t *testing.T, roomID int64, date, start, end string) model.Booking {
	t.Helper()

	return model.Booking{
		RoomID:    roomID,
		Date:      model.Date(date),
		StartTime: clock(t, start),
		EndTime:   clock(t, end),
		Status:    model.StatusConfirmed,
	}
}

func TestConflicts(t *testing.T) {
	existing := []model.Booking{
		booking(t, 1, "2024-01-01", "09:00", "10:00"),
		booking(t, 1, "2024-01-01", "13:00", "14:30"),
	}

	tests := []struct {
		name      string
		candidate model.Booking
		want      bool
	}{
		{name: "identical interval", candidate: booking(t, 1, "2024-01-01", "09:00", "10:00"), want: true},
		{name: "partial overlap at start", candidate: booking(t, 1, "2024-01-01", "08:30", "09:30"), want: true},
		{name: "partial overlap at end", candidate: booking(t, 1, "2024-01-01", "09:30", "10:30"), want: true},
		{name: "contained", candidate: booking(t, 1, "2024-01-01", "13:15", "13:45"), want: true},
		{name: "containing", candidate: booking(t, 1, "2024-01-01", "12:00", "15:00"), want: true},
		{name: "touching after", candidate: booking(t, 1, "2024-01-01", "10:00", "11:00"), want: false},
		{name: "touching before", candidate: booking(t, 1, "2024-01-01", "08:00", "09:00"), want: false},
		{name: "between bookings", candidate: booking(t, 1, "2024-01-01", "10:00", "13:00"), want: false},
		{name: "other room", candidate: booking(t, 2, "2024-01-01", "09:00", "10:00"), want: false},
		{name: "other date", candidate: booking(t, 1, "2024-01-02", "09:00", "10:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Conflicts(tt.candidate.Slot(), existing))
		})
	}
}

func TestConflicts_IgnoresUnconfirmed(t *testing.T) {
	existing := booking(t, 1, "2024-01-01", "09:00", "10:00")
	existing.Status = "Cancelled"

	candidate := booking(t, 1, "2024-01-01", "09:00", "10:00")

	assert.False(t, model.Conflicts(candidate.Slot(), []model.Booking{existing}))
	assert.False(t, model.Conflicts(candidate.Slot(), nil))
}

func TestSlot_OverlapsIsSymmetric(t *testing.T) {
	a := booking(t, 1, "2024-01-01", "09:00", "10:00").Slot()
	b := booking(t, 1, "2024-01-01", "09:59", "12:00").Slot()
	c := booking(t, 1, "2024-01-01", "10:00", "12:00").Slot()

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
	assert.False(t, c.Overlaps(a))
}

func TestParseClock(t *testing.T) {
	c, err := model.ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, model.Clock(570), c)
	assert.Equal(t, "09:30", c.String())

	_, err = model.ParseClock("9.30")
	assert.Error(t, err)

	_, err = model.ParseClock("25:00")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := model.ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, model.Date("2024-01-01"), d)

	_, err = model.ParseDate("2024-02-30")
	assert.Error(t, err)
}

func TestDate_Scan(t *testing.T) {
	var d model.Date

	require.NoError(t, d.Scan(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, model.Date("2024-01-01"), d)

	require.NoError(t, d.Scan([]byte("2024-03-05T00:00:00Z")))
	assert.Equal(t, model.Date("2024-03-05"), d)

	assert.Error(t, d.Scan(42))
}

func TestClock_Scan(t *testing.T) {
	var c model.Clock

	require.NoError(t, c.Scan(int64(600)))
	assert.Equal(t, "10:00", c.String())

	assert.Error(t, c.Scan("10:00"))
}

func TestFilter_Match(t *testing.T) {
	b := booking(t, 1, "2024-01-01", "09:00", "10:00")
	b.CustomerID = 7

	assert.True(t, model.Filter{}.Match(b))
	assert.True(t, model.Filter{RoomID: 1, Date: "2024-01-01", CustomerID: 7}.Match(b))
	assert.False(t, model.Filter{RoomID: 2}.Match(b))
	assert.False(t, model.Filter{Date: "2024-01-02"}.Match(b))
	assert.False(t, model.Filter{CustomerID: 8}.Match(b))
}
