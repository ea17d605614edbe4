package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_teams/routers/api/models"
	"github.com/unicsmcr/hs_teams/services"
	"github.com/unicsmcr/hs_teams/services/export"
	"go.uber.org/zap"
)

// header set by the authenticating gateway in front of this service
const actingUserHeader = "X-User-Id"

// APIV1Router is the router for v1 of the API
type APIV1Router interface {
	models.Router
	GetTeams(ctx *gin.Context)
	CreateTeam(ctx *gin.Context)
	GetTeamStats(ctx *gin.Context)
	GetMyTeam(ctx *gin.Context)
	DeleteMyTeam(ctx *gin.Context)
	EditMyTeam(ctx *gin.Context)
	SetMyTeamRoles(ctx *gin.Context)
	LeaveTeam(ctx *gin.Context)
	RemoveMember(ctx *gin.Context)
	GetTeamRoles(ctx *gin.Context)
	JoinTeam(ctx *gin.Context)
	ApplyToTeam(ctx *gin.Context)
	GetTeam(ctx *gin.Context)
	GetTeamMembers(ctx *gin.Context)
	ExportTeams(ctx *gin.Context)
}

type apiV1Router struct {
	models.BaseRouter
	logger      *zap.Logger
	teamService services.TeamService
	exporter    export.Exporter
}

// NewAPIV1Router creates a APIV1Router
func NewAPIV1Router(logger *zap.Logger, teamService services.TeamService, exporter export.Exporter) APIV1Router {
	return &apiV1Router{
		logger:      logger,
		teamService: teamService,
		exporter:    exporter,
	}
}

// RegisterRoutes registers all of the API's (v1) routes to the given router group
func (r *apiV1Router) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)

	eventTeamsGroup := routerGroup.Group("/events/:event/teams")
	eventTeamsGroup.GET("/", r.GetTeams)
	eventTeamsGroup.POST("/", r.CreateTeam)
	eventTeamsGroup.GET("/stats", r.GetTeamStats)
	eventTeamsGroup.GET("/me", r.GetMyTeam)
	eventTeamsGroup.DELETE("/me", r.DeleteMyTeam)
	eventTeamsGroup.PATCH("/me", r.EditMyTeam)
	eventTeamsGroup.PUT("/me/roles", r.SetMyTeamRoles)
	eventTeamsGroup.POST("/me/leave", r.LeaveTeam)
	eventTeamsGroup.DELETE("/me/members/:userId", r.RemoveMember)
	eventTeamsGroup.GET("/code/:code/roles", r.GetTeamRoles)
	eventTeamsGroup.POST("/code/:code/join", r.JoinTeam)
	eventTeamsGroup.POST("/code/:code/apply", r.ApplyToTeam)

	teamsGroup := routerGroup.Group("/teams")
	teamsGroup.GET("/:id", r.GetTeam)
	teamsGroup.GET("/:id/members", r.GetTeamMembers)
	teamsGroup.POST("/export", r.ExportTeams)
}

// GetActingUser returns the id of the authenticated user making the request
func (r *apiV1Router) GetActingUser(ctx *gin.Context) string {
	return ctx.GetHeader(actingUserHeader)
}
