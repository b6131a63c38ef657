package model

import (
	"errors"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldCustomerID  = "customer_id"
	FieldBookingDate = "booking_date"
	FieldStatus      = "status"
)

const StatusConfirmed = "Confirmed"

var (
	ErrSlotTaken        = errors.New("Room already booked for the specified date and time.") //nolint:revive,stylecheck
	ErrRoomNotFound     = errors.New("room not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidTimeRange = errors.New("startTime must be before endTime")
)

type Booking struct {
	ID           int64     `db:"id"`
	CustomerID   int64     `db:"customer_id"`
	CustomerName string    `db:"customer_name"`
	RoomID       int64     `db:"room_id"`
	Date         Date      `db:"booking_date"`
	StartTime    Clock     `db:"start_minute"`
	EndTime      Clock     `db:"end_minute"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

// Slot is the room, day and [Start, End) interval a reservation asks for.
type Slot struct {
	RoomID int64
	Date   Date
	Start  Clock
	End    Clock
}

func (b Booking) Slot() Slot {
	return Slot{
		RoomID: b.RoomID,
		Date:   b.Date,
		Start:  b.StartTime,
		End:    b.EndTime,
	}
}

// Overlaps reports whether the half-open intervals of both slots intersect on the same room and day.
func (s Slot) Overlaps(other Slot) bool {
	if s.RoomID != other.RoomID || s.Date != other.Date {
		return false
	}

	return s.Start < other.End && other.Start < s.End
}

// Conflicts reports whether any confirmed booking in existing overlaps candidate.
func Conflicts(candidate Slot, existing []Booking) bool {
	for _, booking := range existing {
		if booking.Status != StatusConfirmed {
			continue
		}

		if candidate.Overlaps(booking.Slot()) {
			return true
		}
	}

	return false
}

// Filter narrows a booking listing. Zero fields are ignored.
type Filter struct {
	RoomID     int64
	Date       Date
	CustomerID int64
}

func (f Filter) Match(booking Booking) bool {
	if f.RoomID != 0 && booking.RoomID != f.RoomID {
		return false
	}

	if f.Date != "" && booking.Date != f.Date {
		return false
	}

	if f.CustomerID != 0 && booking.CustomerID != f.CustomerID {
		return false
	}

	return true
}
