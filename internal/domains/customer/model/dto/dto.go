package dto

import (
	"strings"
	"time"

	bookingDto "roomio/internal/domains/booking/model/dto"
	"roomio/internal/domains/customer/model"
	"roomio/shared/constant"
)

type CreateCustomerRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

func (c *CreateCustomerRequest) ToModel(now time.Time) model.Customer {
	return model.Customer{
		Name:      strings.TrimSpace(c.Name),
		CreatedAt: now,
	}
}

type CustomerResponse struct {
	CustomerID int64  `json:"customerId"`
	Name       string `json:"name"`
	CreatedAt  string `json:"createdAt"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.CustomerID = model.ID
	r.Name = model.Name
	r.CreatedAt = model.CreatedAt.UTC().Format(constant.TimestampFormat)
}

type CustomerWithBookingsResponse struct {
	CustomerResponse
	Bookings bookingDto.GetBookingsResponse `json:"bookings"`
}

type GetCustomersResponse []CustomerWithBookingsResponse
