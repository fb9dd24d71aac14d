// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jackoske/AllGoGrand/controller"
	"github.com/jackoske/AllGoGrand/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	// Unversioned top-level paths plus a versioned group for newer clients.
	root := router.Group("/")
	controllers.Weather.RegisterRoutes(root)
	controllers.Token.RegisterRoutes(root)
	controllers.Health.RegisterRoutes(root)

	api := router.Group("/api/v1")
	controllers.Weather.RegisterRoutes(api)
	controllers.Token.RegisterRoutes(api)

	return router
}
