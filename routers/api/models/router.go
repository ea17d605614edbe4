package models

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is the interface implemented by all of the project's routers
type Router interface {
	RegisterRoutes(routerGroup *gin.RouterGroup)
}

// BaseRouter provides handlers shared by all routers
type BaseRouter struct{}

type heartbeatResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (r *BaseRouter) Heartbeat(ctx *gin.Context) {
	message := fmt.Sprintf("request to %s received", ctx.Request.URL.String())

	ctx.JSON(http.StatusOK, heartbeatResponse{Status: "OK", Code: http.StatusOK, Message: message})
}
