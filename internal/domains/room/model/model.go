package model

import (
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID = "id"
)

type Room struct {
	ID            int64          `db:"id"`
	Name          string         `db:"room_name"`
	NumberOfSeats int            `db:"number_of_seats"`
	Amenities     pq.StringArray `db:"amenities"`
	PricePerHour  float64        `db:"price_per_hour"`
	CreatedAt     time.Time      `db:"created_at"`
}
