package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prasert/baanpak-api/internal/application/service"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/internal/presentation/http/dto/response"
)

// GuestHandler handles guest-related HTTP requests
type GuestHandler struct {
	guestService *service.GuestService
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guestService *service.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// List handles listing guests
func (h *GuestHandler) List(c *gin.Context) {
	params := &repository.RegistryFilterParams{
		Pagination:      paginationFromQuery(c),
		Search:          c.Query("search"),
		IncludeInactive: c.Query("include_inactive") == "true",
	}

	result, err := h.guestService.ListGuests(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Guests retrieved successfully", result)
}

// Create handles registering a guest
func (h *GuestHandler) Create(c *gin.Context) {
	var req struct {
		FullName string  `json:"full_name" binding:"required"`
		Phone    *string `json:"phone"`
		IDCard   *string `json:"id_card"`
		Address  *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := h.guestService.CreateGuest(c.Request.Context(), &service.CreateGuestInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		IDCard:   req.IDCard,
		Address:  req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Guest created successfully", guest)
}

// Get handles getting a single guest
func (h *GuestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid guest ID")
		return
	}

	guest, err := h.guestService.GetGuest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest retrieved successfully", guest)
}

// Update handles updating a guest
func (h *GuestHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid guest ID")
		return
	}

	var req struct {
		FullName *string `json:"full_name"`
		Phone    *string `json:"phone"`
		IDCard   *string `json:"id_card"`
		Address  *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := h.guestService.UpdateGuest(c.Request.Context(), &service.UpdateGuestInput{
		ID:       id,
		FullName: req.FullName,
		Phone:    req.Phone,
		IDCard:   req.IDCard,
		Address:  req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest updated successfully", guest)
}

// Deactivate handles soft-deleting a guest
func (h *GuestHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid guest ID")
		return
	}

	if err := h.guestService.DeactivateGuest(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
