package mongo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AttachMeta joins the team's roster against the registration and user-profile
// stores. Users missing either record are orphans: they are removed from the
// team, an orphaned owner is replaced by the first remaining member, and a
// team left with nobody valid is deleted. Repairs are persisted before the
// enriched team is returned, together with the list of applied corrections.
func (s *mongoTeamService) AttachMeta(ctx context.Context, team *entities.Team) (*services.TeamWithMeta, []services.Correction, error) {
	userIDs := append([]string{team.Owner}, team.Members...)

	var (
		registrations []entities.Registration
		profiles      []entities.UserProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		registrations, err = s.registrationService.GetRegistrationsForUsers(gctx, team.Event, userIDs)
		return err
	})
	g.Go(func() error {
		var err error
		profiles, err = s.userProfileService.GetPublicProfiles(gctx, userIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, errors.Wrap(err, "could not fetch team meta")
	}

	registrationsByUser := map[string]entities.Registration{}
	for _, registration := range registrations {
		registrationsByUser[registration.User] = registration
	}
	profilesByUser := map[string]entities.UserProfile{}
	for _, profile := range profiles {
		profilesByUser[profile.UserID] = profile
	}

	meta := map[string]services.UserMeta{}
	orphaned := map[string]bool{}
	for _, userID := range userIDs {
		registration, hasRegistration := registrationsByUser[userID]
		profile, hasProfile := profilesByUser[userID]
		if !hasRegistration || !hasProfile {
			orphaned[userID] = true
			continue
		}
		meta[userID] = services.UserMeta{
			Registration: services.RegistrationMeta{Status: registration.Status},
			Profile:      profile,
		}
	}

	if len(orphaned) == 0 {
		return &services.TeamWithMeta{Team: *team, Meta: meta}, nil, nil
	}

	corrections := []services.Correction{}
	members := make([]string, 0, len(team.Members))
	for _, member := range team.Members {
		if orphaned[member] {
			corrections = append(corrections, services.Correction{Kind: services.CorrectionMemberRemoved, UserID: member})
			continue
		}
		members = append(members, member)
	}
	team.Members = members

	if orphaned[team.Owner] {
		corrections = append(corrections, services.Correction{Kind: services.CorrectionMemberRemoved, UserID: team.Owner})
		if len(team.Members) > 0 {
			team.Owner = team.Members[0]
			team.Members = team.Members[1:]
			corrections = append(corrections, services.Correction{Kind: services.CorrectionOwnerPromoted, UserID: team.Owner})
		} else {
			corrections = append(corrections, services.Correction{Kind: services.CorrectionTeamDeleted, UserID: team.Owner})
			if err := s.deleteTeamWithID(ctx, team.ID); err != nil && errors.Cause(err) != services.ErrNotFound {
				return nil, corrections, err
			}
			return nil, corrections, services.ErrNotFound
		}
	}

	s.logger.Info("repaired team with orphaned members",
		zap.String("team", team.ID.Hex()),
		zap.Int("corrections", len(corrections)))

	_, err := s.teamRepository.UpdateOne(ctx, bson.M{
		string(entities.TeamID): team.ID,
	}, bson.M{
		"$set": bson.M{
			string(entities.TeamOwner):   team.Owner,
			string(entities.TeamMembers): team.Members,
		},
	})
	if err != nil {
		return nil, corrections, errors.Wrap(err, "could not persist team repairs")
	}

	return &services.TeamWithMeta{Team: *team, Meta: meta}, corrections, nil
}
