package delivery

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter assembles the gin engine with middleware and every route.
func NewRouter(categories *CategoryHandler, products *ProductHandler, db Pinger, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))

	router.GET("/", ServeIndexPage)
	router.GET("/healthz", HealthCheck(db))

	categories.RegisterRoutes(router)
	products.RegisterRoutes(router)
	return router
}
