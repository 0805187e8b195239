package booking

import (
	"net/http"

	"meetingrooms/internal/middleware"
	"meetingrooms/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the user booking endpoints. The group must already
// require a session.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.ListMine)
		bookings.POST("", h.CreateBooking)
		bookings.DELETE("/:id", h.CancelBooking)
	}
}

// RegisterAdminRoutes mounts booking management under the admin group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("/count", h.CountBookings)
		bookings.GET("/today/count", h.CountToday)
		bookings.GET("/recent", h.ListRecent)
		bookings.GET("", h.ListAll)
		bookings.POST("", h.AdminCreateBooking)
		bookings.GET("/:id", h.GetBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.DELETE("/:id", h.CancelBooking)
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.FromError(c, middleware.ErrAuthRequired)
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), id.UserID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) AdminCreateBooking(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.FromError(c, middleware.ErrAuthRequired)
		return
	}

	var req AdminCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	b, err := h.service.CreateBookingFor(c.Request.Context(), id.UserID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) ListMine(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.FromError(c, middleware.ErrAuthRequired)
		return
	}

	out, err := h.service.ListForUser(c.Request.Context(), id.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.FromError(c, middleware.ErrAuthRequired)
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), id.UserID, c.Param("id"), id.IsAdmin()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *Handler) ListAll(c *gin.Context) {
	out, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) ListRecent(c *gin.Context) {
	out, err := h.service.ListRecent(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) GetBooking(c *gin.Context) {
	v, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CountBookings(c *gin.Context) {
	n, err := h.service.CountBookings(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n})
}

func (h *Handler) CountToday(c *gin.Context) {
	n, err := h.service.CountToday(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n})
}
