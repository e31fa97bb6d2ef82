// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/ai"
	"wanderplan/internal/http/handlers"
	"wanderplan/internal/http/middleware"
	"wanderplan/internal/modules/trip"
	"wanderplan/internal/modules/user"
)

func NewRouter(
	planner *ai.Planner,
	userService *user.Service,
	tripService *trip.Service,
	citySearcher handlers.CitySearcher,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	authHandler := handlers.NewAuthHandler(userService)
	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/users/:email", authHandler.Profile)
	r.PUT("/api/users/avatar", authHandler.UpdateAvatar)

	tripHandler := handlers.NewTripHandler(tripService)
	r.POST("/api/trips", tripHandler.Save)
	r.GET("/api/trips", tripHandler.List)
	r.GET("/api/trips/:id", tripHandler.Get)
	r.PUT("/api/trips/:id", tripHandler.Update)

	planHandler := handlers.NewPlanHandler(planner)
	r.POST("/api/plan/itinerary", planHandler.GenerateItinerary)
	r.GET("/api/plan/exchange-rate", planHandler.ExchangeRate)
	r.GET("/api/plan/events", planHandler.Events)
	r.POST("/api/plan/recommendations", planHandler.Recommendations)

	cityHandler := handlers.NewCityHandler(citySearcher)
	r.GET("/api/cities/search", cityHandler.Search)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
