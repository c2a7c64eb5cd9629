package httpserver

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) newRouter(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(s.requestID(), s.accessLog(), s.recovery())
	r.Use(cors.New(corsConfig(allowedOrigins)))

	r.GET("/", s.Home)
	r.GET("/health", s.Health)
	r.POST("/register", s.Register)
	r.POST("/login", s.Login)

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
