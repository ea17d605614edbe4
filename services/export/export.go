package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/unicsmcr/hs_teams/services"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FlatTeam is a single-line summary of a team for CSV-style exports
type FlatTeam struct {
	TeamCode    string `json:"teamCode"`
	TeamMembers string `json:"teamMembers"`
}

// Exporter produces flat export rows for teams
type Exporter interface {
	ExportTeams(ctx context.Context, teamIDs []string) ([]FlatTeam, error)
}

type exporter struct {
	logger      *zap.Logger
	teamService services.TeamService
}

// NewExporter creates a new Exporter backed by the given team service
func NewExporter(logger *zap.Logger, teamService services.TeamService) Exporter {
	return &exporter{
		logger:      logger,
		teamService: teamService,
	}
}

// ExportTeams loads and enriches every team concurrently, preserving the
// order of the requested ids in the result
func (e *exporter) ExportTeams(ctx context.Context, teamIDs []string) ([]FlatTeam, error) {
	rows := make([]FlatTeam, len(teamIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range teamIDs {
		i, id := i, id
		g.Go(func() error {
			team, err := e.teamService.GetTeamWithID(gctx, id)
			if err != nil {
				return err
			}

			teamWithMeta, _, err := e.teamService.AttachMeta(gctx, team)
			if err != nil {
				return err
			}

			rows[i] = FlattenTeam(teamWithMeta)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

// FlattenTeam builds the export row for an enriched team: the invite code and
// a comma-joined "First Last <email>" list, owner first, members in order
func FlattenTeam(team *services.TeamWithMeta) FlatTeam {
	memberEntries := make([]string, 0, len(team.Meta))
	for _, userID := range append([]string{team.Owner}, team.Members...) {
		userMeta, ok := team.Meta[userID]
		if !ok {
			continue
		}
		memberEntries = append(memberEntries, fmt.Sprintf("%s %s <%s>",
			userMeta.Profile.FirstName, userMeta.Profile.LastName, userMeta.Profile.Email))
	}

	return FlatTeam{
		TeamCode:    team.Code,
		TeamMembers: strings.Join(memberEntries, ", "),
	}
}
