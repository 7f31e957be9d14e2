package api

import (
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	h "busjo/internal/http/handlers"
	"busjo/internal/http/middleware"
)

func NewRouter(handler *h.Handler, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	session := middleware.Session(handler.Session)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", handler.Health)
		apiGroup.GET("/cities", handler.Cities)
		apiGroup.GET("/features", handler.Features)

		trips := apiGroup.Group("/trips")
		trips.GET("/search", handler.SearchTrips)
		trips.GET("/:id/geometry", handler.TripGeometry)
		trips.POST("/geometry/reset", handler.ResetGeometry)

		auth := apiGroup.Group("/auth")
		auth.POST("/login", handler.Login)
		auth.POST("/logout", session, handler.Logout)

		apiGroup.GET("/profile", session, handler.Profile)

		apiGroup.POST("/bookings", session, handler.CreateBooking)

		tickets := apiGroup.Group("/tickets", session)
		tickets.GET("", handler.ListTickets)
		tickets.GET("/:id/e-ticket", handler.TicketPDF)

		apiGroup.POST("/dataset/reload", handler.ReloadDataset)
	}

	return r
}
