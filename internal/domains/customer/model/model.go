package model

import "time"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID = "id"
)

type Customer struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
