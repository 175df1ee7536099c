package api

import (
	"net/http"
	"strconv"

	"hotel-simulator/internal/domain/room"
	reqdto "hotel-simulator/internal/handler/dto/request"
	resdto "hotel-simulator/internal/handler/dto/response"
	"hotel-simulator/internal/handler/httperr"
	"hotel-simulator/internal/pkg/errs"
	"hotel-simulator/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary List rooms
// @Description List every room with its fare class, rate and availability
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *BookingHandler) ListRooms(c *gin.Context) {
	views, err := h.bookingUseCase.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list rooms", nil)
		return
	}
	rooms, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list rooms", nil)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Book rooms
// @Description Reserve rooms of one fare class and register or credit the customer
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.bookingUseCase.BookRoom(c.Request.Context(), req.ToParams())
	if err != nil {
		h.abortBooking(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

func (h *BookingHandler) abortBooking(c *gin.Context, err error) {
	var invErr *room.InsufficientInventoryError
	var inputErr *usecase.InputError

	switch {
	case errs.Is(err, usecase.ErrInvalidRoomType):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Invalid room type. Please select either 0 for Standard or 1 for Deluxe.", nil)
	case errs.As(err, &inputErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", inputErr.Fields())
	case errs.As(err, &invErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Not enough rooms available", resdto.InsufficientInventoryDetail{
			FareClass: invErr.Class.String(),
			Requested: invErr.Requested,
			Available: invErr.Available,
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Booking failed", nil)
	}
}

// @Summary List customers
// @Description List every registered customer in registration order
// @Tags customers
// @Produce json
// @Success 200 {array} resdto.CustomerResponse
// @Router /customers [get]
func (h *BookingHandler) ListCustomers(c *gin.Context) {
	views, err := h.bookingUseCase.ListCustomers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list customers", nil)
		return
	}
	customers, err := resdto.FromCustomerViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list customers", nil)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// @Summary Check offers
// @Description Report whether a customer's loyalty points unlock a discount
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id}/offers [get]
func (h *BookingHandler) CheckOffers(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.bookingUseCase.CheckOffers(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, usecase.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to check offers", nil)
		return
	}

	offer, err := resdto.FromOfferView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to check offers", nil)
		return
	}
	c.JSON(http.StatusOK, offer)
}
