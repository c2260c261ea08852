package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/application/service"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/internal/presentation/http/dto/response"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// List handles listing bookings
func (h *BookingHandler) List(c *gin.Context) {
	params := &repository.BookingFilterParams{
		Pagination: paginationFromQuery(c),
	}

	var status enum.BookingStatus
	if enumQuery(c, "status", &status) {
		params.Status = &status
	}
	if guestID, err := uuid.Parse(c.Query("guest_id")); err == nil {
		params.GuestID = &guestID
	}
	if roomID, err := uuid.Parse(c.Query("room_id")); err == nil {
		params.RoomID = &roomID
	}
	if start, ok, err := parseDateQuery(c, "start_date"); err == nil && ok {
		params.StartDate = &start
	}
	if end, ok, err := parseDateQuery(c, "end_date"); err == nil && ok {
		params.EndDate = &end
	}

	result, err := h.bookingService.ListBookings(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bookings retrieved successfully", result)
}

// Create handles creating a booking
func (h *BookingHandler) Create(c *gin.Context) {
	var req struct {
		GuestID       uuid.UUID          `json:"guest_id" binding:"required"`
		RoomID        uuid.UUID          `json:"room_id" binding:"required"`
		CheckIn       string             `json:"check_in" binding:"required"`
		CheckOut      string             `json:"check_out" binding:"required"`
		PaymentMethod enum.PaymentMethod `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		response.BadRequest(c, "check_in must be in YYYY-MM-DD format")
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		response.BadRequest(c, "check_out must be in YYYY-MM-DD format")
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), &service.CreateBookingInput{
		GuestID:       req.GuestID,
		RoomID:        req.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Booking created successfully", booking)
}

// Get handles getting a single booking
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking retrieved successfully", booking)
}

// CheckIn handles the reserved to checked-in transition
func (h *BookingHandler) CheckIn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.CheckIn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest checked in successfully", booking)
}

// CheckOut handles the checked-in to checked-out transition
func (h *BookingHandler) CheckOut(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.CheckOut(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest checked out successfully", booking)
}

// Cancel handles cancelling a reserved booking
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking cancelled successfully", booking)
}

// Extend handles moving a checked-in booking's check-out date
func (h *BookingHandler) Extend(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var req struct {
		CheckOut string `json:"check_out" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		response.BadRequest(c, "check_out must be in YYYY-MM-DD format")
		return
	}

	booking, err := h.bookingService.ExtendStay(c.Request.Context(), id, checkOut)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking extended successfully", booking)
}
