package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/application/service"
	"github.com/prasert/baanpak-api/internal/domain/calc"
	"github.com/prasert/baanpak-api/internal/domain/enum"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/internal/presentation/http/dto/response"
)

// RoomHandler handles room-related HTTP requests
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// List handles listing rooms
func (h *RoomHandler) List(c *gin.Context) {
	params := &repository.RoomFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
		RoomType:   c.Query("room_type"),
	}

	var status enum.RoomStatus
	if enumQuery(c, "status", &status) {
		params.Status = &status
	}

	result, err := h.roomService.ListRooms(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Rooms retrieved successfully", result)
}

// Create handles creating a room
func (h *RoomHandler) Create(c *gin.Context) {
	var req struct {
		RoomNumber string  `json:"room_number" binding:"required"`
		RoomType   string  `json:"room_type" binding:"required"`
		Price      float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), &service.CreateRoomInput{
		RoomNumber: req.RoomNumber,
		RoomType:   req.RoomType,
		Price:      req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Room created successfully", room)
}

// Get handles getting a single room
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room retrieved successfully", room)
}

// Update handles updating a room
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	var req struct {
		RoomNumber *string  `json:"room_number"`
		RoomType   *string  `json:"room_type"`
		Price      *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), &service.UpdateRoomInput{
		ID:         id,
		RoomNumber: req.RoomNumber,
		RoomType:   req.RoomType,
		Price:      req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room updated successfully", room)
}

// UpdateStatus handles changing a room's housekeeping status
func (h *RoomHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	var req struct {
		Status enum.RoomStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.roomService.UpdateRoomStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Room status updated successfully", room)
}

// Delete handles deleting a room
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Available handles the availability search for a stay interval
func (h *RoomHandler) Available(c *gin.Context) {
	start, ok, err := parseDateQuery(c, "check_in")
	if err != nil || !ok {
		response.BadRequest(c, "check_in is required in YYYY-MM-DD format")
		return
	}
	end, ok, err := parseDateQuery(c, "check_out")
	if err != nil || !ok {
		response.BadRequest(c, "check_out is required in YYYY-MM-DD format")
		return
	}

	filters := calc.RoomFilters{
		ZonePrefix: c.Query("zone"),
		Floor:      intQuery(c, "floor", 0),
		RoomType:   c.Query("room_type"),
	}

	rooms, err := h.roomService.FindAvailable(c.Request.Context(), start, end, filters)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Available rooms retrieved successfully", rooms)
}
