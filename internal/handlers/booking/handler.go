package booking

import (
	"net/http"

	"roomio/infras/otel"
	"roomio/internal/domains/booking/model/dto"
	"roomio/internal/domains/booking/service"
	"roomio/shared"
	"roomio/shared/constant"
	"roomio/shared/validator"
	"roomio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{"+constant.RequestParamBookingID+"}", handler.GetBookingByID)
	})
}

// CreateBooking reserves a room for a date and time interval.
// @Summary Book a room
// @Description Rejects the request with 400 when the interval overlaps a confirmed booking of the room on that date.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Reserve(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("roomId", req.RoomID).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking confirmed")

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings lists bookings, optionally narrowed to a room and a date.
// @Summary List bookings
// @Tags Booking
// @Produce json
// @Param roomId query int false "Filter by room ID"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Router /bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	query := request.URL.Query()
	req := dto.GetBookingsRequest{
		Date: query.Get(constant.RequestParamDate),
	}

	if roomID := query.Get(constant.RequestParamRoomID); roomID != constant.Empty {
		id, err := shared.ParseID(roomID)
		if err != nil {
			response.WithError(writer, err)

			return
		}

		req.RoomID = id
	}

	if err := validator.ValidateStruct(&req); err != nil {
		response.WithError(writer, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookingByID returns one booking.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /bookings/{bookingId} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamBookingID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bookingId", id).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}
