package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with middleware and all routes attached.
func (s *HTTPServer) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(s.allowedOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", s.healthHandler)

	api := router.Group("/api")
	{
		api.POST("/register", s.registerHandler)
		api.POST("/login", s.loginHandler)

		protected := api.Group("/tasks")
		protected.Use(s.requireToken())
		{
			protected.GET("", s.listTasksHandler)
			protected.POST("", s.createTaskHandler)
			protected.PUT("/:id", s.updateTaskHandler)
			protected.PATCH("/:id/toggle", s.toggleTaskHandler)
			protected.DELETE("/:id", s.deleteTaskHandler)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return router
}
