package auth

import (
	"net/http"

	"meetingrooms/internal/middleware"
	"meetingrooms/internal/pkg/apperror"
	"meetingrooms/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP side of registration, login and logout.
type Handler struct {
	service  *Service
	sessions Sessions
}

func NewHandler(service *Service, sessions Sessions) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.GET("/logout", h.Logout)
		users.POST("/logout", h.Logout)
		users.GET("/me", middleware.RequireAuth(), h.Me)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if _, err := h.sessions.Start(c.Request.Context(), c.Writer, u.ID); err != nil {
		response.FromError(c, apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusCreated, UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	u, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if _, err := h.sessions.Start(c.Request.Context(), c.Writer, u.ID); err != nil {
		response.FromError(c, apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	})
}

// Logout always succeeds for the client; a missing session is fine.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c.Request.Context(), c.Writer, c.Request); err != nil {
		response.FromError(c, apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) Me(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.FromError(c, ErrUnauthorized)
		return
	}

	u, err := h.service.CurrentUser(c.Request.Context(), id.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, MeResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	})
}
