package customer

import (
	"net/http"

	"roomio/infras/otel"
	"roomio/internal/domains/customer/model/dto"
	"roomio/internal/domains/customer/service"
	"roomio/shared"
	"roomio/shared/constant"
	"roomio/shared/validator"
	"roomio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCustomer)
		routerGroup.Get("/", handler.GetCustomers)
		routerGroup.Get("/{"+constant.RequestParamCustomerID+"}/bookings", handler.GetCustomerBookings)
	})
}

// CreateCustomer registers a customer that bookings can reference by id.
// @Summary Create a customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Create Customer Request"
// @Success 201 {object} response.Data[dto.CustomerResponse]
// @Failure 400 {object} response.Error
// @Router /customers [post]
func (handler *Handler) CreateCustomer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	req := dto.CreateCustomerRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	customer, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, customer)
}

// GetCustomers lists every customer with its bookings.
// @Summary List customers with bookings
// @Tags Customer
// @Produce json
// @Success 200 {object} response.Data[dto.GetCustomersResponse]
// @Router /customers [get]
func (handler *Handler) GetCustomers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	customers, err := handler.service.CustomersWithBookings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, customers)
}

// GetCustomerBookings lists the bookings made under a customer id.
// @Summary List bookings of a customer
// @Tags Customer
// @Produce json
// @Param customerId path int true "Customer ID"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Router /customers/{customerId}/bookings [get]
func (handler *Handler) GetCustomerBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerBookings")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamCustomerID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	bookings, err := handler.service.BookingsForCustomer(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("customerId", id).Msg("failed to get customer bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}
