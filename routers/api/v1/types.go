package v1

import (
	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/services"
	"github.com/unicsmcr/hs_teams/services/export"
)

type createTeamReq struct {
	services.TeamCreateParams
}

type editTeamReq struct {
	Name            *string `json:"name"`
	Tagline         *string `json:"tagline"`
	Description     *string `json:"description"`
	Challenge       *string `json:"challenge"`
	IdeaTitle       *string `json:"ideaTitle"`
	IdeaDescription *string `json:"ideaDescription"`
	Email           *string `json:"email"`
	Telegram        *string `json:"telegram"`
	Discord         *string `json:"discord"`
	Slack           *string `json:"slack"`
}

// params maps the supplied fields to team update params
func (req *editTeamReq) params() services.TeamUpdateParams {
	params := services.TeamUpdateParams{}
	set := func(field entities.TeamField, value *string) {
		if value != nil {
			params[field] = *value
		}
	}

	set(entities.TeamName, req.Name)
	set(entities.TeamTagline, req.Tagline)
	set(entities.TeamDescription, req.Description)
	set(entities.TeamChallenge, req.Challenge)
	set(entities.TeamIdeaTitle, req.IdeaTitle)
	set(entities.TeamIdeaDescription, req.IdeaDescription)
	set(entities.TeamEmail, req.Email)
	set(entities.TeamTelegram, req.Telegram)
	set(entities.TeamDiscord, req.Discord)
	set(entities.TeamSlack, req.Slack)

	return params
}

// setRolesReq selects one of the two role operations: Roles replaces the
// role entries wholesale, Labels diffs labels against the current roles
type setRolesReq struct {
	Roles  []entities.TeamRole `json:"roles"`
	Labels []string            `json:"labels"`
}

type applyToTeamReq struct {
	services.TeamApplication
}

type exportTeamsReq struct {
	TeamIDs []string `json:"teamIds" binding:"required"`
}

type teamRes struct {
	Team entities.Team `json:"team"`
}

type teamsRes struct {
	Teams []entities.Team `json:"teams"`
}

type teamWithMetaRes struct {
	Team        services.TeamWithMeta `json:"team"`
	Corrections []services.Correction `json:"corrections,omitempty"`
}

type teamMembersRes struct {
	Members []string `json:"members"`
}

type teamRolesRes struct {
	Roles []entities.TeamRole `json:"roles"`
}

type teamStatsRes struct {
	Stats services.TeamStats `json:"stats"`
}

type exportTeamsRes struct {
	Teams []export.FlatTeam `json:"teams"`
}
