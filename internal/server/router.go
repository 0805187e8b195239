package server

import (
	"context"
	"net/http"
	"time"

	"meetingrooms/internal/middleware"
	"meetingrooms/internal/modules/admin"
	"meetingrooms/internal/modules/auth"
	"meetingrooms/internal/modules/booking"
	"meetingrooms/internal/modules/catalog"
	"meetingrooms/internal/modules/events"
	"meetingrooms/internal/pkg/response"
	"meetingrooms/internal/repository"
	"meetingrooms/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps is everything the router needs to build the API.
type Deps struct {
	DB          *gorm.DB
	Sessions    *session.Manager
	Hub         *events.Hub
	Log         *logrus.Logger
	Location    *time.Location
	CORSOrigins []string
}

// NewRouter builds the gin engine with every module mounted under /api and
// wraps it in the CORS policy.
func NewRouter(d Deps) http.Handler {
	if d.Hub == nil {
		d.Hub = events.NewHub()
	}

	userRepo := repository.NewUserRepository(d.DB)
	roomRepo := repository.NewRoomRepository(d.DB)
	bookingRepo := repository.NewBookingRepository(d.DB)

	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService, d.Sessions)

	catalogService := catalog.NewService(roomRepo)

	bookingService := booking.NewService(bookingRepo, roomRepo, userRepo, d.Hub, d.Location)
	bookingHandler := booking.NewHandler(bookingService)

	catalogHandler := catalog.NewHandler(catalogService, bookingService)

	adminService := admin.NewService(userRepo, d.Sessions, catalogService, bookingService, d.Log)
	adminHandler := admin.NewHandler(adminService)

	cors := middleware.CORS(d.CORSOrigins)
	eventsHandler := events.NewHandler(d.Hub, d.Log, func(r *http.Request) bool {
		if r.Header.Get("Origin") == "" {
			return true
		}
		return cors.OriginAllowed(r)
	})

	r := gin.New()
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.SessionAuth(d.Sessions, userRepo))

	r.GET("/health", health(d.DB))

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			catalogHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
			catalogHandler.RegisterAdminRoutes(adminGroup)
			bookingHandler.RegisterAdminRoutes(adminGroup)
			eventsHandler.RegisterRoutes(adminGroup)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "route not found")
	})

	return cors.Handler(r)
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			_ = c.Error(err)
			response.ErrorWithDetails(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "database unreachable", gin.H{"status": "degraded", "db": "down"})
			return
		}

		response.Success(c, http.StatusOK, gin.H{"status": "ok", "db": "ok"})
	}
}
