package dto

import (
	"slices"
	"time"

	bookingModel "roomio/internal/domains/booking/model"
	bookingDto "roomio/internal/domains/booking/model/dto"
	"roomio/internal/domains/room/model"
	"roomio/shared/constant"
)

type CreateRoomRequest struct {
	RoomName      string   `json:"roomName"      validate:"required,notblank,max=100"`
	NumberOfSeats int      `json:"numberOfSeats" validate:"gte=0"`
	Amenities     []string `json:"amenities"     validate:"omitempty,dive,required,max=50"`
	PricePerHour  float64  `json:"pricePerHour"  validate:"gte=0"`
}

func (c *CreateRoomRequest) ToModel(now time.Time) model.Room {
	amenities := slices.Clone(c.Amenities)
	if amenities == nil {
		amenities = []string{}
	}

	return model.Room{
		Name:          c.RoomName,
		NumberOfSeats: c.NumberOfSeats,
		Amenities:     amenities,
		PricePerHour:  c.PricePerHour,
		CreatedAt:     now,
	}
}

type RoomResponse struct {
	RoomID        int64    `json:"roomId"`
	RoomName      string   `json:"roomName"`
	NumberOfSeats int      `json:"numberOfSeats"`
	Amenities     []string `json:"amenities"`
	PricePerHour  float64  `json:"pricePerHour"`
	CreatedAt     string   `json:"createdAt"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomID = model.ID
	r.RoomName = model.Name
	r.NumberOfSeats = model.NumberOfSeats
	r.Amenities = slices.Clone([]string(model.Amenities))
	r.PricePerHour = model.PricePerHour
	r.CreatedAt = model.CreatedAt.UTC().Format(constant.TimestampFormat)

	if r.Amenities == nil {
		r.Amenities = []string{}
	}
}

type RoomWithBookingsResponse struct {
	RoomResponse
	Bookings bookingDto.GetBookingsResponse `json:"bookings"`
}

func (r *RoomWithBookingsResponse) FromModel(room model.Room, bookings []bookingModel.Booking) {
	r.RoomResponse.FromModel(room)
	r.Bookings.FromModels(bookings)
}

type GetRoomsResponse []RoomWithBookingsResponse

// FromModels pairs every room with the bookings that reference it, keeping room order.
func (r *GetRoomsResponse) FromModels(rooms []model.Room, bookings []bookingModel.Booking) {
	byRoom := make(map[int64][]bookingModel.Booking, len(rooms))

	for _, booking := range bookings {
		byRoom[booking.RoomID] = append(byRoom[booking.RoomID], booking)
	}

	*r = make(GetRoomsResponse, len(rooms))

	for i, room := range rooms {
		(*r)[i].FromModel(room, byRoom[room.ID])
	}
}
