package dto

import (
	"strings"
	"time"

	"roomio/internal/domains/booking/model"
	"roomio/shared/constant"
	"roomio/shared/failure"
)

type CreateBookingRequest struct {
	CustomerID   int64  `json:"customerId"   validate:"gte=0"`
	CustomerName string `json:"customerName" validate:"required_without=CustomerID,omitempty,notblank,max=100"`
	Date         string `json:"date"         validate:"required,date"`
	StartTime    string `json:"startTime"    validate:"required,clock"`
	EndTime      string `json:"endTime"      validate:"required,clock"`
	RoomID       int64  `json:"roomId"       validate:"required,gt=0"`
}

// ToSlot parses the requested interval. The interval must not be empty.
func (c *CreateBookingRequest) ToSlot() (model.Slot, error) {
	date, err := model.ParseDate(c.Date)
	if err != nil {
		return model.Slot{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	start, err := model.ParseClock(c.StartTime)
	if err != nil {
		return model.Slot{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	end, err := model.ParseClock(c.EndTime)
	if err != nil {
		return model.Slot{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	if start >= end {
		return model.Slot{}, failure.BadRequest(model.ErrInvalidTimeRange) //nolint:wrapcheck
	}

	return model.Slot{
		RoomID: c.RoomID,
		Date:   date,
		Start:  start,
		End:    end,
	}, nil
}

func (c *CreateBookingRequest) ToModel(slot model.Slot, customerName string) model.Booking {
	return model.Booking{
		CustomerID:   c.CustomerID,
		CustomerName: strings.TrimSpace(customerName),
		RoomID:       slot.RoomID,
		Date:         slot.Date,
		StartTime:    slot.Start,
		EndTime:      slot.End,
		Status:       model.StatusConfirmed,
	}
}

type GetBookingsRequest struct {
	RoomID int64  `json:"roomId" validate:"gte=0"`
	Date   string `json:"date"   validate:"omitempty,date"`
}

func (g *GetBookingsRequest) ToFilter() model.Filter {
	return model.Filter{
		RoomID: g.RoomID,
		Date:   model.Date(g.Date),
	}
}

type BookingResponse struct {
	BookingID    int64  `json:"bookingId"`
	CustomerID   int64  `json:"customerId,omitempty"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	RoomID       int64  `json:"roomId"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.BookingID = model.ID
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
	r.Date = model.Date.String()
	r.StartTime = model.StartTime.String()
	r.EndTime = model.EndTime.String()
	r.RoomID = model.RoomID
	r.Status = model.Status
	r.CreatedAt = model.CreatedAt.UTC().Format(constant.TimestampFormat)
}

type GetBookingsResponse []BookingResponse

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	*r = make(GetBookingsResponse, len(models))

	for i, mod := range models {
		(*r)[i].FromModel(mod)
	}
}

// Event is published once a reservation is confirmed.
type Event struct {
	Type    string          `json:"type"`
	Booking BookingResponse `json:"booking"`
	SentAt  string          `json:"sentAt"`
}

const EventTypeConfirmed = "booking.confirmed"

func NewConfirmedEvent(booking BookingResponse, now time.Time) Event {
	return Event{
		Type:    EventTypeConfirmed,
		Booking: booking,
		SentAt:  now.UTC().Format(constant.TimestampFormat),
	}
}
