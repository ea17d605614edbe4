package services

import (
	"context"

	"github.com/unicsmcr/hs_teams/entities"
)

// TeamUpdateParams are the descriptive team fields to overwrite in an edit.
// Ownership, membership, roles, candidates and the invite code have their
// own operations and may not be updated through an edit.
type TeamUpdateParams map[entities.TeamField]interface{}

// TeamCreateParams is the full descriptive payload for creating a team
type TeamCreateParams struct {
	Name            string   `json:"name"`
	Tagline         string   `json:"tagline"`
	Description     string   `json:"description"`
	Challenge       string   `json:"challenge"`
	IdeaTitle       string   `json:"ideaTitle"`
	IdeaDescription string   `json:"ideaDescription"`
	Email           string   `json:"email"`
	Telegram        string   `json:"telegram"`
	Discord         string   `json:"discord"`
	Slack           string   `json:"slack"`
	RoleLabels      []string `json:"teamRoles"`
	Members         []string `json:"members"`
}

// TeamApplication is the payload of a candidate's application to a team
type TeamApplication struct {
	Roles      []string `json:"roles"`
	Motivation string   `json:"motivation"`
}

// TeamStats are aggregate team numbers for an event
type TeamStats struct {
	NumTeams int64 `json:"numTeams"`
}

// UserMeta is the enrichment data for a single surviving team member
type UserMeta struct {
	Registration RegistrationMeta     `json:"registration"`
	Profile      entities.UserProfile `json:"profile"`
}

// RegistrationMeta is the subset of a registration exposed through team meta
type RegistrationMeta struct {
	Status string `json:"status"`
}

// TeamWithMeta is a team together with its per-user enrichment data.
// Meta holds an entry for every user on the (possibly repaired) team,
// keyed by user id; iterate [Owner]+Members for owner-first order.
type TeamWithMeta struct {
	entities.Team
	Meta map[string]UserMeta `json:"meta"`
}

type CorrectionKind string

const (
	CorrectionMemberRemoved CorrectionKind = "member-removed"
	CorrectionOwnerPromoted CorrectionKind = "owner-promoted"
	CorrectionTeamDeleted   CorrectionKind = "team-deleted"
)

// Correction records a single repair applied while reconciling a team
// against the registration and user-profile stores
type Correction struct {
	Kind   CorrectionKind `json:"kind"`
	UserID string         `json:"userId"`
}

// TeamService is the service for interactions with a remote teams repository
type TeamService interface {
	CreateTeam(ctx context.Context, event, owner string) (*entities.Team, error)
	CreateTeamWithDetails(ctx context.Context, event, owner string, params TeamCreateParams) (*entities.Team, error)
	DeleteTeam(ctx context.Context, event, userID string) error
	EditTeam(ctx context.Context, event, userID string, params TeamUpdateParams) (*entities.Team, error)
	SetRoleLabels(ctx context.Context, event, userID string, labels []string) (*entities.Team, error)
	ReplaceRoles(ctx context.Context, event, userID string, roles []entities.TeamRole) (*entities.Team, error)

	JoinTeam(ctx context.Context, event, userID, code string) (*entities.Team, error)
	ApplyToTeam(ctx context.Context, event, userID, code string, application TeamApplication) (*entities.Team, error)
	LeaveTeam(ctx context.Context, event, userID string) error
	RemoveMember(ctx context.Context, event, userID, targetID string) (*entities.Team, error)

	GetTeamWithID(ctx context.Context, id string) (*entities.Team, error)
	GetTeamWithCode(ctx context.Context, event, code string) (*entities.Team, error)
	GetTeamForUser(ctx context.Context, event, userID string) (*entities.Team, error)
	GetTeamMembers(ctx context.Context, id string) ([]string, error)
	GetTeamRoles(ctx context.Context, event, code string) ([]entities.TeamRole, error)
	GetTeamsForEvent(ctx context.Context, event string) ([]entities.Team, error)
	GetTeamStats(ctx context.Context, event string) (*TeamStats, error)

	// AttachMeta reconciles the team against the registration and
	// user-profile stores, persisting any repairs, and returns the
	// enriched team along with the corrections that were applied
	AttachMeta(ctx context.Context, team *entities.Team) (*TeamWithMeta, []Correction, error)
}
