package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/routers/api/models"
	"go.uber.org/zap"
)

// GET: /api/v1/events/:event/teams
// Response: teams []entities.Team (invite codes redacted)
func (r *apiV1Router) GetTeams(ctx *gin.Context) {
	teams, err := r.teamService.GetTeamsForEvent(ctx, ctx.Param("event"))
	if err != nil {
		r.handleServiceError(ctx, err, "could not fetch teams")
		return
	}

	// participants must not see other teams' invite codes
	for i := range teams {
		teams[i].Code = ""
	}

	ctx.JSON(http.StatusOK, teamsRes{
		Teams: teams,
	})
}

// POST: /api/v1/events/:event/teams
// Request:  optional JSON body with the full team details
// Response: team entities.Team
func (r *apiV1Router) CreateTeam(ctx *gin.Context) {
	userID, ok := r.requireActingUser(ctx)
	if !ok {
		return
	}

	var req createTeamReq
	err := ctx.ShouldBindJSON(&req)
	if errors.Cause(err) == io.EOF {
		// no body, create a bare team with the caller as owner
		team, err := r.teamService.CreateTeam(ctx, ctx.Param("event"), userID)
		if err != nil {
			r.handleServiceError(ctx, err, "could not create team")
			return
		}
		ctx.JSON(http.StatusOK, teamRes{Team: *team})
		return
	} else if err != nil {
		r.logger.Debug("could not parse team details", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid team details")
		return
	}

	team, err := r.teamService.CreateTeamWithDetails(ctx, ctx.Param("event"), userID, req.TeamCreateParams)
	if err != nil {
		r.handleServiceError(ctx, err, "could not create team")
		return
	}

	ctx.JSON(http.StatusOK, teamRes{Team: *team})
}

// GET: /api/v1/events/:event/teams/stats
// Response: stats services.TeamStats
func (r *apiV1Router) GetTeamStats(ctx *gin.Context) {
	stats, err := r.teamService.GetTeamStats(ctx, ctx.Param("event"))
	if err != nil {
		r.handleServiceError(ctx, err, "could not fetch team stats")
		return
	}

	ctx.JSON(http.StatusOK, teamStatsRes{
		Stats: *stats,
	})
}

// GET: /api/v1/events/:event/teams/me
// Response: team services.TeamWithMeta, corrections []services.Correction
func (r *apiV1Router) GetMyTeam(ctx *gin.Context) {
	userID, ok := r.requireActingUser(ctx)
	if !ok {
		return
	}

	team, err := r.teamService.GetTeamForUser(ctx, ctx.Param("event"), userID)
	if err != nil {
		r.handleServiceError(ctx, err, "could not fetch team")
		return
	}

	teamWithMeta, corrections, err := r.teamService.AttachMeta(ctx, team)
	if err != nil {
		r.handleServiceError(ctx, err, "could not fetch team meta")
		return
	}

	ctx.JSON(http.StatusOK, teamWithMetaRes{
		Team:        *teamWithMeta,
		Corrections: corrections,
	})
}

// DELETE: /api/v1/events/:event/teams/me
func (r *apiV1Router) DeleteMyTeam(ctx *gin.Context) {
	userID, ok := r.requireActingUser(ctx)
	if !ok {
		return
	}

	err := r.teamService.DeleteTeam(ctx, ctx.Param("event"), userID)
	if err != nil {
		r.handleServiceError(ctx, err, "could not delete team")
		return
	}

	ctx.JSON(http.StatusOK, models.Response{Status: http.StatusOK})
}

// PATCH: /api/v1/events/:event/teams/me
// Request:  JSON body with the descriptive fields to overwrite
// Response: team entities.Team
func (r *apiV1Router) EditMyTeam(ctx *gin.Context) {
	userID, ok := r.requireActingUser(ctx)
	if !ok {
		return
	}

	var req editTeamReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		r.logger.Debug("could not parse team edits", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid team edits")
		return
	}

	team, err := r.teamService.EditTeam(ctx, ctx.Param("event"), userID, req.params())
	if err != nil {
		r.handleServiceError(ctx, err, "could not edit team")
		return
	}

	ctx.JSON(http.StatusOK, teamRes{Team: *team})
}

// PUT: /api/v1/events/:event/teams/me/roles
// Request:  JSON body with either labels []string or roles []entities.TeamRole
// Response: team entities.Team
func (r *apiV1Router) SetMyTeamRoles(ctx *gin.Context) {
	userID, ok := r.requireActingUser(ctx)
	if !ok {
		return
	}

	var req setRolesReq
	if err := ctx.ShouldBindJSON(&req); err != nil && errors.Cause(err) != io.EOF {
		r.logger.Debug("could not parse team roles", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid team roles")
		return
	}

	var err error
	var team *entities.Team
	if req.Roles != nil {
		team, err = r.teamService.ReplaceRoles(ctx, ctx.Param("event"), userID, req.Roles)
	} else {
		team, err = r.teamService.SetRoleLabels(ctx, ctx.Param("event"), userID, req.Labels)
	}
	if err != nil {
		r.handleServiceError(ctx, err, "could not update team roles")
		return
	}

	ctx.JSON(http.StatusOK, teamRes{Team: *team})
}

// POST: /api/v1/events/:event/teams/me/leave
func (r *apiV1Router) LeaveTeam(ctx *gin.Context) {
	userID, ok := r.requireActingUser(ctx)
	if !ok {
		return
	}

	err := r.teamService.LeaveTeam(ctx, ctx.Param("event"), userID)
	if err != nil {
		r.handleServiceError(ctx, err, "could not leave team")
		return
	}

	ctx.JSON(http.StatusOK, models.Response{Status: http.StatusOK})
}

// DELETE: /api/v1/events/:event/teams/me/members/:userId
// Response: team entities.Team
func (r *apiV1Router) RemoveMember(ctx *gin.Context) {
	userID, ok := r.requireActingUser(ctx)
	if !ok {
		return
	}

	team, err := r.teamService.RemoveMember(ctx, ctx.Param("event"), userID, ctx.Param("userId"))
	if err != nil {
		r.handleServiceError(ctx, err, "could not remove member")
		return
	}

	ctx.JSON(http.StatusOK, teamRes{Team: *team})
}

// GET: /api/v1/events/:event/teams/code/:code/roles
// Response: roles []entities.TeamRole
func (r *apiV1Router) GetTeamRoles(ctx *gin.Context) {
	roles, err := r.teamService.GetTeamRoles(ctx, ctx.Param("event"), ctx.Param("code"))
	if err != nil {
		r.handleServiceError(ctx, err, "could not fetch team roles")
		return
	}

	ctx.JSON(http.StatusOK, teamRolesRes{
		Roles: roles,
	})
}

// POST: /api/v1/events/:event/teams/code/:code/join
// Response: team entities.Team
func (r *apiV1Router) JoinTeam(ctx *gin.Context) {
	userID, ok := r.requireActingUser(ctx)
	if !ok {
		return
	}

	team, err := r.teamService.JoinTeam(ctx, ctx.Param("event"), userID, ctx.Param("code"))
	if err != nil {
		r.handleServiceError(ctx, err, "could not join team")
		return
	}

	ctx.JSON(http.StatusOK, teamRes{Team: *team})
}

// POST: /api/v1/events/:event/teams/code/:code/apply
// Request:  JSON body with the application roles and motivation
// Response: team entities.Team
func (r *apiV1Router) ApplyToTeam(ctx *gin.Context) {
	userID, ok := r.requireActingUser(ctx)
	if !ok {
		return
	}

	var req applyToTeamReq
	if err := ctx.ShouldBindJSON(&req); err != nil && errors.Cause(err) != io.EOF {
		r.logger.Debug("could not parse application", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid application")
		return
	}

	team, err := r.teamService.ApplyToTeam(ctx, ctx.Param("event"), userID, ctx.Param("code"), req.TeamApplication)
	if err != nil {
		r.handleServiceError(ctx, err, "could not apply to team")
		return
	}

	ctx.JSON(http.StatusOK, teamRes{Team: *team})
}

// GET: /api/v1/teams/:id
// Response: team services.TeamWithMeta, corrections []services.Correction
func (r *apiV1Router) GetTeam(ctx *gin.Context) {
	team, err := r.teamService.GetTeamWithID(ctx, ctx.Param("id"))
	if err != nil {
		r.handleServiceError(ctx, err, "could not fetch team")
		return
	}

	teamWithMeta, corrections, err := r.teamService.AttachMeta(ctx, team)
	if err != nil {
		r.handleServiceError(ctx, err, "could not fetch team meta")
		return
	}

	ctx.JSON(http.StatusOK, teamWithMetaRes{
		Team:        *teamWithMeta,
		Corrections: corrections,
	})
}

// GET: /api/v1/teams/:id/members
// Response: members []string, owner first
func (r *apiV1Router) GetTeamMembers(ctx *gin.Context) {
	members, err := r.teamService.GetTeamMembers(ctx, ctx.Param("id"))
	if err != nil {
		r.handleServiceError(ctx, err, "could not fetch team members")
		return
	}

	ctx.JSON(http.StatusOK, teamMembersRes{
		Members: members,
	})
}

// POST: /api/v1/teams/export
// Request:  teamIds []string
// Response: teams []export.FlatTeam
func (r *apiV1Router) ExportTeams(ctx *gin.Context) {
	var req exportTeamsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		r.logger.Debug("could not parse export request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "team ids must be provided")
		return
	}

	rows, err := r.exporter.ExportTeams(ctx, req.TeamIDs)
	if err != nil {
		r.handleServiceError(ctx, err, "could not export teams")
		return
	}

	ctx.JSON(http.StatusOK, exportTeamsRes{
		Teams: rows,
	})
}
