package admin

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

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	// dashboard
	admin.GET("/stats", h.GetStats)

	// users
	users := admin.Group("/users")
	{
		users.GET("/count", h.CountUsers)
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.PUT("/:id/role", h.UpdateRole)
		users.DELETE("/:id", h.DeleteUser)
	}
}

func (h *Handler) GetStats(c *gin.Context) {
	st, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) CountUsers(c *gin.Context) {
	n, err := h.service.CountUsers(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Public())
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	u, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u.Public())
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.FromError(c, middleware.ErrAuthRequired)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	u, err := h.service.UpdateUser(c.Request.Context(), id.UserID, c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Public())
}

func (h *Handler) UpdateRole(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.FromError(c, middleware.ErrAuthRequired)
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	u, err := h.service.UpdateRole(c.Request.Context(), id.UserID, c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Public())
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.FromError(c, middleware.ErrAuthRequired)
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id.UserID, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "user deleted"})
}
