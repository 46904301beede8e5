package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"interest-form/pkg/middleware"
)

// NewRouter builds the gin engine with middleware and routes
func NewRouter(handlers *Handlers, allowOrigins []string, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(allowOrigins))

	handlers.Register(router)

	return router
}
