package main

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_teams/environment"
	"github.com/unicsmcr/hs_teams/routers"
)

// Server is the app's HTTP server
type Server struct {
	*gin.Engine
	Port string
}

// NewServer creates a Server with the app's routes registered
func NewServer(env *environment.Env, mainRouter routers.MainRouter) Server {
	server := gin.Default()

	mainRouter.RegisterRoutes(server.Group("/"))

	return Server{
		Engine: server,
		Port:   env.Get(environment.Port),
	}
}
