package catalog

import (
	"net/http"

	"meetingrooms/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service      *Service
	availability AvailabilityChecker
}

func NewHandler(service *Service, availability AvailabilityChecker) *Handler {
	return &Handler{
		service:      service,
		availability: availability,
	}
}

// RegisterPublicRoutes mounts the read-only room endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rooms := rg.Group("/rooms")
	{
		rooms.GET("", h.ListRooms)
		rooms.GET("/:id", h.GetRoom)
		rooms.GET("/:id/availability", h.GetAvailability)
	}
}

// RegisterProtectedRoutes mounts the endpoints that need a session.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms", h.CreateRoom)
}

// RegisterAdminRoutes mounts room management under the admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rooms := rg.Group("/rooms")
	{
		rooms.GET("/count", h.CountRooms)
		rooms.GET("", h.ListRooms)
		rooms.POST("", h.CreateRoom)
		rooms.GET("/:id", h.GetRoom)
		rooms.PUT("/:id", h.UpdateRoom)
		rooms.DELETE("/:id", h.DeleteRoom)
	}
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.service.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, room)
}

// GetAvailability handles GET /rooms/:id/availability?start=...&end=...
func (h *Handler) GetAvailability(c *gin.Context) {
	a, err := h.availability.CheckAvailability(c.Request.Context(), c.Param("id"), c.Query("start"), c.Query("end"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, room)
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, room)
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	if err := h.service.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "room deleted"})
}

func (h *Handler) CountRooms(c *gin.Context) {
	n, err := h.service.CountRooms(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n})
}
