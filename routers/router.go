package routers

import (
	"github.com/gin-gonic/gin"

	"go.uber.org/zap"

	"github.com/unicsmcr/hs_teams/routers/api/models"
	v1 "github.com/unicsmcr/hs_teams/routers/api/v1"
)

// MainRouter is the router of the app
type MainRouter interface {
	models.Router
}

type mainRouter struct {
	models.BaseRouter
	logger      *zap.Logger
	apiV1Router v1.APIV1Router
}

// NewMainRouter creates a MainRouter
func NewMainRouter(logger *zap.Logger, apiV1Router v1.APIV1Router) MainRouter {
	return &mainRouter{
		logger:      logger,
		apiV1Router: apiV1Router,
	}
}

// RegisterRoutes registers the app's routes to the given router group
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)

	apiV1 := routerGroup.Group("/api/v1")
	r.apiV1Router.RegisterRoutes(apiV1)
}
