package mongo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/config"
	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/repositories"
	"github.com/unicsmcr/hs_teams/services"
	"github.com/unicsmcr/hs_teams/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// attempts at generating an unused invite code before giving up
const maxCodeAttempts = 5

// fields that may not be changed through EditTeam
var protectedTeamFields = map[entities.TeamField]bool{
	entities.TeamID:         true,
	entities.TeamEvent:      true,
	entities.TeamOwner:      true,
	entities.TeamMembers:    true,
	entities.TeamCode:       true,
	entities.TeamRoles:      true,
	entities.TeamCandidates: true,
}

type mongoTeamService struct {
	logger              *zap.Logger
	cfg                 *config.AppConfig
	teamRepository      repositories.TeamRepository
	registrationService services.RegistrationService
	userProfileService  services.UserProfileService
	timeProvider        utils.TimeProvider
}

// NewMongoTeamService creates a new TeamService that uses MongoDB as the storage technology
func NewMongoTeamService(logger *zap.Logger, cfg *config.AppConfig, teamRepository repositories.TeamRepository,
	registrationService services.RegistrationService, userProfileService services.UserProfileService,
	timeProvider utils.TimeProvider) services.TeamService {
	return &mongoTeamService{
		logger:              logger,
		cfg:                 cfg,
		teamRepository:      teamRepository,
		registrationService: registrationService,
		userProfileService:  userProfileService,
		timeProvider:        timeProvider,
	}
}

func (s *mongoTeamService) CreateTeam(ctx context.Context, event, owner string) (*entities.Team, error) {
	team := &entities.Team{
		Event:      event,
		Owner:      owner,
		Members:    []string{},
		Roles:      []entities.TeamRole{},
		Candidates: []entities.TeamCandidate{},
	}

	return s.insertTeamWithCode(ctx, team)
}

func (s *mongoTeamService) CreateTeamWithDetails(ctx context.Context, event, owner string, params services.TeamCreateParams) (*entities.Team, error) {
	roles := make([]entities.TeamRole, 0, len(params.RoleLabels))
	for _, label := range params.RoleLabels {
		roles = append(roles, entities.TeamRole{Role: label})
	}

	members := params.Members
	if members == nil {
		members = []string{}
	}

	team := &entities.Team{
		Event:           event,
		Owner:           owner,
		Members:         members,
		Roles:           roles,
		Candidates:      []entities.TeamCandidate{},
		Name:            params.Name,
		Tagline:         params.Tagline,
		Description:     params.Description,
		Challenge:       params.Challenge,
		IdeaTitle:       params.IdeaTitle,
		IdeaDescription: params.IdeaDescription,
		Email:           params.Email,
		Telegram:        params.Telegram,
		Discord:         params.Discord,
		Slack:           params.Slack,
	}

	return s.insertTeamWithCode(ctx, team)
}

// insertTeamWithCode assigns a generated invite code and inserts the team,
// retrying with a fresh code when the (event, code) index reports a clash
func (s *mongoTeamService) insertTeamWithCode(ctx context.Context, team *entities.Team) (*entities.Team, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := utils.GenerateTeamCode(s.cfg.Teams.CodeLength)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate invite code")
		}

		team.ID = primitive.NewObjectID()
		team.Code = code

		_, err = s.teamRepository.InsertOne(ctx, *team)
		if err == nil {
			return team, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, errors.Wrap(err, "could not create new team")
		}
		s.logger.Debug("invite code clash, retrying", zap.String("code", code))
	}

	return nil, errors.New("could not generate an unused invite code")
}

func (s *mongoTeamService) DeleteTeam(ctx context.Context, event, userID string) error {
	team, err := s.getOwnedTeam(ctx, event, userID)
	if err != nil {
		return err
	}

	return s.deleteTeamWithID(ctx, team.ID)
}

func (s *mongoTeamService) EditTeam(ctx context.Context, event, userID string, params services.TeamUpdateParams) (*entities.Team, error) {
	if len(params) == 0 {
		return nil, services.ErrInvalidUpdateParams
	}
	for field := range params {
		if protectedTeamFields[field] {
			return nil, services.ErrInvalidUpdateParams
		}
	}

	team, err := s.getOwnedTeam(ctx, event, userID)
	if err != nil {
		return nil, err
	}

	updates := bson.M{}
	for field, value := range params {
		updates[string(field)] = value
	}

	_, err = s.teamRepository.UpdateOne(ctx, bson.M{
		string(entities.TeamID): team.ID,
	}, bson.M{
		"$set": updates,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not update team")
	}

	return s.GetTeamWithID(ctx, team.ID.Hex())
}

func (s *mongoTeamService) SetRoleLabels(ctx context.Context, event, userID string, labels []string) (*entities.Team, error) {
	team, err := s.getOwnedTeam(ctx, event, userID)
	if err != nil {
		return nil, err
	}

	roles := []entities.TeamRole{}
	if len(labels) > 0 {
		incoming := map[string]bool{}
		for _, label := range labels {
			incoming[label] = true
		}

		// keep current entries whose label is still wanted
		current := map[string]bool{}
		for _, role := range team.Roles {
			if incoming[role.Role] {
				roles = append(roles, role)
				current[role.Role] = true
			}
		}
		// append newly requested labels in the order they were given
		for _, label := range labels {
			if !current[label] {
				roles = append(roles, entities.TeamRole{Role: label})
				current[label] = true
			}
		}
	}

	return s.updateTeamRoles(ctx, team, roles)
}

func (s *mongoTeamService) ReplaceRoles(ctx context.Context, event, userID string, roles []entities.TeamRole) (*entities.Team, error) {
	team, err := s.getOwnedTeam(ctx, event, userID)
	if err != nil {
		return nil, err
	}

	if roles == nil {
		roles = []entities.TeamRole{}
	}

	return s.updateTeamRoles(ctx, team, roles)
}

func (s *mongoTeamService) updateTeamRoles(ctx context.Context, team *entities.Team, roles []entities.TeamRole) (*entities.Team, error) {
	_, err := s.teamRepository.UpdateOne(ctx, bson.M{
		string(entities.TeamID): team.ID,
	}, bson.M{
		"$set": bson.M{
			string(entities.TeamRoles): roles,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not update team roles")
	}

	team.Roles = roles
	return team, nil
}

func (s *mongoTeamService) JoinTeam(ctx context.Context, event, userID, code string) (*entities.Team, error) {
	team, err := s.GetTeamWithCode(ctx, event, code)
	if err != nil {
		return nil, err
	}

	// the owner joining their own code would end up duplicated in members
	if team.HasMember(userID) {
		return nil, services.ErrAlreadyInTeam
	}

	// read-then-write, the size cap can be exceeded under contention
	if team.Size() >= s.cfg.Teams.MaxSize {
		return nil, services.ErrForbidden
	}

	_, err = s.teamRepository.UpdateOne(ctx, bson.M{
		string(entities.TeamID): team.ID,
	}, bson.M{
		"$push": bson.M{
			string(entities.TeamMembers): userID,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not add user to team")
	}

	team.Members = append(team.Members, userID)
	return team, nil
}

func (s *mongoTeamService) ApplyToTeam(ctx context.Context, event, userID, code string, application services.TeamApplication) (*entities.Team, error) {
	team, err := s.GetTeamWithCode(ctx, event, code)
	if err != nil {
		return nil, err
	}

	if team.HasMember(userID) || team.HasCandidate(userID) {
		return nil, services.ErrAlreadyInTeam
	}

	candidate := entities.TeamCandidate{
		UserID:     userID,
		Roles:      application.Roles,
		Motivation: application.Motivation,
		AppliedAt:  s.timeProvider.Now(),
	}

	_, err = s.teamRepository.UpdateOne(ctx, bson.M{
		string(entities.TeamID): team.ID,
	}, bson.M{
		"$push": bson.M{
			string(entities.TeamCandidates): candidate,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not add candidate to team")
	}

	team.Candidates = append(team.Candidates, candidate)
	return team, nil
}

func (s *mongoTeamService) LeaveTeam(ctx context.Context, event, userID string) error {
	team, err := s.GetTeamForUser(ctx, event, userID)
	if err != nil {
		return err
	}

	if team.Owner == userID {
		// the owner cannot abandon a team with members still on it
		if len(team.Members) > 0 {
			return services.ErrInsufficientPrivileges
		}
		return s.deleteTeamWithID(ctx, team.ID)
	}

	members := removeFromSlice(team.Members, userID)
	if len(members) == 0 {
		return s.deleteTeamWithID(ctx, team.ID)
	}

	_, err = s.teamRepository.UpdateOne(ctx, bson.M{
		string(entities.TeamID): team.ID,
	}, bson.M{
		"$set": bson.M{
			string(entities.TeamMembers): members,
		},
	})
	if err != nil {
		return errors.Wrap(err, "could not remove user from team")
	}

	return nil
}

func (s *mongoTeamService) RemoveMember(ctx context.Context, event, userID, targetID string) (*entities.Team, error) {
	team, err := s.getOwnedTeam(ctx, event, userID)
	if err != nil {
		return nil, err
	}

	members := removeFromSlice(team.Members, targetID)

	_, err = s.teamRepository.UpdateOne(ctx, bson.M{
		string(entities.TeamID): team.ID,
	}, bson.M{
		"$set": bson.M{
			string(entities.TeamMembers): members,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not remove member from team")
	}

	team.Members = members
	return team, nil
}

func (s *mongoTeamService) GetTeamWithID(ctx context.Context, id string) (*entities.Team, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.teamRepository.FindOne(ctx, bson.M{
		string(entities.TeamID): mongoID,
	})

	team, err := decodeTeamResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for team with ID")
	}

	return team, nil
}

func (s *mongoTeamService) GetTeamWithCode(ctx context.Context, event, code string) (*entities.Team, error) {
	res := s.teamRepository.FindOne(ctx, bson.M{
		string(entities.TeamEvent): event,
		string(entities.TeamCode):  code,
	})

	team, err := decodeTeamResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for team with code")
	}

	return team, nil
}

func (s *mongoTeamService) GetTeamForUser(ctx context.Context, event, userID string) (*entities.Team, error) {
	res := s.teamRepository.FindOne(ctx, bson.M{
		string(entities.TeamEvent): event,
		"$or": bson.A{
			bson.M{string(entities.TeamOwner): userID},
			bson.M{string(entities.TeamMembers): userID},
		},
	})

	team, err := decodeTeamResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for team for user")
	}

	return team, nil
}

func (s *mongoTeamService) GetTeamMembers(ctx context.Context, id string) ([]string, error) {
	team, err := s.GetTeamWithID(ctx, id)
	if err != nil {
		return nil, err
	}

	return append([]string{team.Owner}, team.Members...), nil
}

func (s *mongoTeamService) GetTeamRoles(ctx context.Context, event, code string) ([]entities.TeamRole, error) {
	team, err := s.GetTeamWithCode(ctx, event, code)
	if err != nil {
		return nil, err
	}

	return team.Roles, nil
}

func (s *mongoTeamService) GetTeamsForEvent(ctx context.Context, event string) ([]entities.Team, error) {
	cur, err := s.teamRepository.Find(ctx, bson.M{
		string(entities.TeamEvent): event,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for teams")
	}
	defer cur.Close(ctx)

	teams, err := decodeTeamsResult(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return teams, nil
}

func (s *mongoTeamService) GetTeamStats(ctx context.Context, event string) (*services.TeamStats, error) {
	numTeams, err := s.teamRepository.CountDocuments(ctx, bson.M{
		string(entities.TeamEvent): event,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not count teams")
	}

	return &services.TeamStats{
		NumTeams: numTeams,
	}, nil
}

// getOwnedTeam resolves the caller's team for the event and ensures the caller owns it
func (s *mongoTeamService) getOwnedTeam(ctx context.Context, event, userID string) (*entities.Team, error) {
	team, err := s.GetTeamForUser(ctx, event, userID)
	if err != nil {
		return nil, err
	}

	if team.Owner != userID {
		return nil, services.ErrInsufficientPrivileges
	}

	return team, nil
}

func (s *mongoTeamService) deleteTeamWithID(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.teamRepository.DeleteOne(ctx, bson.M{
		string(entities.TeamID): id,
	})
	if err != nil {
		return errors.Wrap(err, "could not delete team")
	} else if res.DeletedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func removeFromSlice(ids []string, toRemove string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != toRemove {
			out = append(out, id)
		}
	}
	return out
}

func decodeTeamResult(res *mongo.SingleResult) (*entities.Team, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var team entities.Team
	err = res.Decode(&team)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode team")
	}

	return &team, nil
}

func decodeTeamsResult(ctx context.Context, cur *mongo.Cursor) ([]entities.Team, error) {
	teams := []entities.Team{}
	for cur.Next(ctx) {
		var team entities.Team
		err := cur.Decode(&team)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode team")
		}
		teams = append(teams, team)
	}

	return teams, nil
}
