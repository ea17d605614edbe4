package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_teams/config"
	"github.com/unicsmcr/hs_teams/entities"
	mock_repositories "github.com/unicsmcr/hs_teams/mocks/repositories"
	mock_services "github.com/unicsmcr/hs_teams/mocks/services"
	mock_utils "github.com/unicsmcr/hs_teams/mocks/utils"
	"github.com/unicsmcr/hs_teams/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const testEvent = "test event"

type teamTestSetup struct {
	tService           *mongoTeamService
	mockTRepo          *mock_repositories.MockTeamRepository
	mockRegService     *mock_services.MockRegistrationService
	mockProfileService *mock_services.MockUserProfileService
	mockTimeProvider   *mock_utils.MockTimeProvider
}

func setupTeamTest(t *testing.T) *teamTestSetup {
	ctrl := gomock.NewController(t)
	mockTRepo := mock_repositories.NewMockTeamRepository(ctrl)
	mockRegService := mock_services.NewMockRegistrationService(ctrl)
	mockProfileService := mock_services.NewMockUserProfileService(ctrl)
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)

	cfg := &config.AppConfig{
		Teams: config.TeamsConfig{
			MaxSize:    5,
			CodeLength: 6,
		},
	}

	tService := &mongoTeamService{
		logger:              zap.NewNop(),
		cfg:                 cfg,
		teamRepository:      mockTRepo,
		registrationService: mockRegService,
		userProfileService:  mockProfileService,
		timeProvider:        mockTimeProvider,
	}

	return &teamTestSetup{
		tService:           tService,
		mockTRepo:          mockTRepo,
		mockRegService:     mockRegService,
		mockProfileService: mockProfileService,
		mockTimeProvider:   mockTimeProvider,
	}
}

func testTeamWith(owner string, members ...string) entities.Team {
	if members == nil {
		members = []string{}
	}
	return entities.Team{
		ID:         primitive.NewObjectID(),
		Event:      testEvent,
		Owner:      owner,
		Members:    members,
		Code:       "ABC234",
		Roles:      []entities.TeamRole{},
		Candidates: []entities.TeamCandidate{},
	}
}

func singleResultFor(team entities.Team) *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(team, nil, nil)
}

func noTeamResult() *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
}

func Test_NewMongoTeamService__should_return_non_nil_object(t *testing.T) {
	assert.NotNil(t, NewMongoTeamService(nil, nil, nil, nil, nil, nil))
}

func Test_CreateTeam__should_create_team_with_owner_only(t *testing.T) {
	setup := setupTeamTest(t)

	var inserted entities.Team
	setup.mockTRepo.EXPECT().InsertOne(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc interface{}, _ ...interface{}) (*mongo.InsertOneResult, error) {
			inserted = doc.(entities.Team)
			return &mongo.InsertOneResult{InsertedID: inserted.ID}, nil
		}).Times(1)

	team, err := setup.tService.CreateTeam(context.Background(), testEvent, "owner id")
	assert.NoError(t, err)

	assert.Equal(t, "owner id", team.Owner)
	assert.Empty(t, team.Members)
	assert.Len(t, team.Code, 6)
	assert.Equal(t, *team, inserted)
}

func Test_CreateTeam__should_retry_code_generation_on_duplicate_key(t *testing.T) {
	setup := setupTeamTest(t)

	duplicateKeyErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000}},
	}

	var codes []string
	gomock.InOrder(
		setup.mockTRepo.EXPECT().InsertOne(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc interface{}, _ ...interface{}) (*mongo.InsertOneResult, error) {
				codes = append(codes, doc.(entities.Team).Code)
				return nil, duplicateKeyErr
			}),
		setup.mockTRepo.EXPECT().InsertOne(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc interface{}, _ ...interface{}) (*mongo.InsertOneResult, error) {
				codes = append(codes, doc.(entities.Team).Code)
				return &mongo.InsertOneResult{}, nil
			}),
	)

	team, err := setup.tService.CreateTeam(context.Background(), testEvent, "owner id")
	assert.NoError(t, err)
	assert.Len(t, codes, 2)
	assert.Equal(t, codes[1], team.Code)
}

func Test_CreateTeamWithDetails__should_wrap_role_labels_and_keep_initial_members(t *testing.T) {
	setup := setupTeamTest(t)

	setup.mockTRepo.EXPECT().InsertOne(gomock.Any(), gomock.Any()).
		Return(&mongo.InsertOneResult{}, nil).Times(1)

	team, err := setup.tService.CreateTeamWithDetails(context.Background(), testEvent, "owner id", services.TeamCreateParams{
		Name:       "The Quacks",
		RoleLabels: []string{"designer", "backend"},
		Members:    []string{"member 1"},
	})
	assert.NoError(t, err)

	assert.Equal(t, "The Quacks", team.Name)
	assert.Equal(t, []entities.TeamRole{{Role: "designer"}, {Role: "backend"}}, team.Roles)
	assert.Equal(t, []string{"member 1"}, team.Members)
}

func Test_JoinTeam__should_return_ErrNotFound_when_code_does_not_match(t *testing.T) {
	setup := setupTeamTest(t)

	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(noTeamResult()).Times(1)

	_, err := setup.tService.JoinTeam(context.Background(), testEvent, "user id", "NOCODE")
	assert.Equal(t, services.ErrNotFound, err)
}

func Test_JoinTeam__should_return_ErrForbidden_when_team_is_full(t *testing.T) {
	setup := setupTeamTest(t)

	fullTeam := testTeamWith("owner id", "m1", "m2", "m3", "m4")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(fullTeam)).Times(1)

	_, err := setup.tService.JoinTeam(context.Background(), testEvent, "user id", fullTeam.Code)
	assert.Equal(t, services.ErrForbidden, err)
}

func Test_JoinTeam__should_append_user_to_members(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "m1")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)
	setup.mockTRepo.EXPECT().UpdateOne(gomock.Any(),
		gomock.Eq(bson.M{string(entities.TeamID): team.ID}),
		gomock.Eq(bson.M{"$push": bson.M{string(entities.TeamMembers): "user id"}})).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Times(1)

	joined, err := setup.tService.JoinTeam(context.Background(), testEvent, "user id", team.Code)
	assert.NoError(t, err)
	assert.Equal(t, []string{"m1", "user id"}, joined.Members)
	assert.NotContains(t, joined.Members, joined.Owner)
}

func Test_JoinTeam__should_return_ErrAlreadyInTeam_when_owner_joins_own_team(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member id")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)

	joined, err := setup.tService.JoinTeam(context.Background(), testEvent, "owner id", team.Code)
	assert.Equal(t, services.ErrAlreadyInTeam, err)
	assert.Nil(t, joined)
}

func Test_JoinTeam__should_return_ErrAlreadyInTeam_when_user_is_already_a_member(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member id")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)

	joined, err := setup.tService.JoinTeam(context.Background(), testEvent, "member id", team.Code)
	assert.Equal(t, services.ErrAlreadyInTeam, err)
	assert.Nil(t, joined)
}

func Test_ApplyToTeam__should_return_ErrAlreadyInTeam_for_owner_member_and_candidate(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member id")
	team.Candidates = []entities.TeamCandidate{{UserID: "candidate id"}}

	for _, userID := range []string{"owner id", "member id", "candidate id"} {
		setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)

		_, err := setup.tService.ApplyToTeam(context.Background(), testEvent, userID, team.Code, services.TeamApplication{})
		assert.Equal(t, services.ErrAlreadyInTeam, err, "user %s", userID)
	}
}

func Test_ApplyToTeam__should_persist_and_return_updated_team(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member id")
	appliedAt := time.Date(2020, 3, 14, 12, 0, 0, 0, time.UTC)

	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)
	setup.mockTimeProvider.EXPECT().Now().Return(appliedAt).Times(1)

	expectedCandidate := entities.TeamCandidate{
		UserID:     "applicant id",
		Roles:      []string{"designer"},
		Motivation: "I like ducks",
		AppliedAt:  appliedAt,
	}
	setup.mockTRepo.EXPECT().UpdateOne(gomock.Any(),
		gomock.Eq(bson.M{string(entities.TeamID): team.ID}),
		gomock.Eq(bson.M{"$push": bson.M{string(entities.TeamCandidates): expectedCandidate}})).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Times(1)

	updated, err := setup.tService.ApplyToTeam(context.Background(), testEvent, "applicant id", team.Code, services.TeamApplication{
		Roles:      []string{"designer"},
		Motivation: "I like ducks",
	})
	assert.NoError(t, err)
	assert.Equal(t, []entities.TeamCandidate{expectedCandidate}, updated.Candidates)
}

func Test_EditTeam__should_return_ErrInsufficientPrivileges_for_non_owner(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member id")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)

	// no UpdateOne is expected, the stored team must be unchanged
	_, err := setup.tService.EditTeam(context.Background(), testEvent, "member id", services.TeamUpdateParams{
		entities.TeamName: "new name",
	})
	assert.Equal(t, services.ErrInsufficientPrivileges, err)
}

func Test_EditTeam__should_reject_protected_fields(t *testing.T) {
	setup := setupTeamTest(t)

	for _, field := range []entities.TeamField{
		entities.TeamID, entities.TeamEvent, entities.TeamOwner,
		entities.TeamMembers, entities.TeamCode, entities.TeamRoles, entities.TeamCandidates,
	} {
		_, err := setup.tService.EditTeam(context.Background(), testEvent, "owner id", services.TeamUpdateParams{
			field: "new value",
		})
		assert.Equal(t, services.ErrInvalidUpdateParams, err, "field %s", field)
	}
}

func Test_EditTeam__should_overwrite_supplied_fields(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id")
	updatedTeam := team
	updatedTeam.Name = "new name"
	updatedTeam.Tagline = "new tagline"

	gomock.InOrder(
		setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)),
		setup.mockTRepo.EXPECT().UpdateOne(gomock.Any(),
			gomock.Eq(bson.M{string(entities.TeamID): team.ID}),
			gomock.Eq(bson.M{"$set": bson.M{
				string(entities.TeamName):    "new name",
				string(entities.TeamTagline): "new tagline",
			}})).
			Return(&mongo.UpdateResult{MatchedCount: 1}, nil),
		setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(updatedTeam)),
	)

	edited, err := setup.tService.EditTeam(context.Background(), testEvent, "owner id", services.TeamUpdateParams{
		entities.TeamName:    "new name",
		entities.TeamTagline: "new tagline",
	})
	assert.NoError(t, err)
	assert.Equal(t, "new name", edited.Name)
	assert.Equal(t, "new tagline", edited.Tagline)
}

func Test_SetRoleLabels__should_diff_labels_against_current_roles(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id")
	team.Roles = []entities.TeamRole{{Role: "A"}, {Role: "B"}}

	expectedRoles := []entities.TeamRole{{Role: "B"}, {Role: "C"}}

	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)
	setup.mockTRepo.EXPECT().UpdateOne(gomock.Any(),
		gomock.Eq(bson.M{string(entities.TeamID): team.ID}),
		gomock.Eq(bson.M{"$set": bson.M{string(entities.TeamRoles): expectedRoles}})).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Times(1)

	updated, err := setup.tService.SetRoleLabels(context.Background(), testEvent, "owner id", []string{"B", "C"})
	assert.NoError(t, err)
	assert.Equal(t, expectedRoles, updated.Roles)
}

func Test_SetRoleLabels__should_clear_roles_when_no_labels_given(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id")
	team.Roles = []entities.TeamRole{{Role: "A"}}

	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)
	setup.mockTRepo.EXPECT().UpdateOne(gomock.Any(), gomock.Any(),
		gomock.Eq(bson.M{"$set": bson.M{string(entities.TeamRoles): []entities.TeamRole{}}})).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Times(1)

	updated, err := setup.tService.SetRoleLabels(context.Background(), testEvent, "owner id", nil)
	assert.NoError(t, err)
	assert.Empty(t, updated.Roles)
}

func Test_ReplaceRoles__should_overwrite_role_entries(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id")
	team.Roles = []entities.TeamRole{{Role: "A"}}

	newRoles := []entities.TeamRole{{Role: "X"}, {Role: "Y"}}

	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)
	setup.mockTRepo.EXPECT().UpdateOne(gomock.Any(), gomock.Any(),
		gomock.Eq(bson.M{"$set": bson.M{string(entities.TeamRoles): newRoles}})).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Times(1)

	updated, err := setup.tService.ReplaceRoles(context.Background(), testEvent, "owner id", newRoles)
	assert.NoError(t, err)
	assert.Equal(t, newRoles, updated.Roles)
}

func Test_LeaveTeam__should_delete_team_when_last_member_leaves(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member id")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)
	setup.mockTRepo.EXPECT().DeleteOne(gomock.Any(),
		gomock.Eq(bson.M{string(entities.TeamID): team.ID})).
		Return(&mongo.DeleteResult{DeletedCount: 1}, nil).Times(1)

	err := setup.tService.LeaveTeam(context.Background(), testEvent, "member id")
	assert.NoError(t, err)
}

func Test_LeaveTeam__should_persist_remaining_members(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member 1", "member 2")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)
	setup.mockTRepo.EXPECT().UpdateOne(gomock.Any(),
		gomock.Eq(bson.M{string(entities.TeamID): team.ID}),
		gomock.Eq(bson.M{"$set": bson.M{string(entities.TeamMembers): []string{"member 2"}}})).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Times(1)

	err := setup.tService.LeaveTeam(context.Background(), testEvent, "member 1")
	assert.NoError(t, err)
}

func Test_LeaveTeam__should_not_let_owner_abandon_team_with_members(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member id")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)

	err := setup.tService.LeaveTeam(context.Background(), testEvent, "owner id")
	assert.Equal(t, services.ErrInsufficientPrivileges, err)
}

func Test_LeaveTeam__should_delete_team_when_owner_is_alone(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)
	setup.mockTRepo.EXPECT().DeleteOne(gomock.Any(), gomock.Any()).
		Return(&mongo.DeleteResult{DeletedCount: 1}, nil).Times(1)

	err := setup.tService.LeaveTeam(context.Background(), testEvent, "owner id")
	assert.NoError(t, err)
}

func Test_RemoveMember__should_return_ErrInsufficientPrivileges_for_non_owner(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member 1", "member 2")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)

	_, err := setup.tService.RemoveMember(context.Background(), testEvent, "member 1", "member 2")
	assert.Equal(t, services.ErrInsufficientPrivileges, err)
}

func Test_RemoveMember__should_remove_target_from_members(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member 1", "member 2")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)
	setup.mockTRepo.EXPECT().UpdateOne(gomock.Any(),
		gomock.Eq(bson.M{string(entities.TeamID): team.ID}),
		gomock.Eq(bson.M{"$set": bson.M{string(entities.TeamMembers): []string{"member 2"}}})).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Times(1)

	updated, err := setup.tService.RemoveMember(context.Background(), testEvent, "owner id", "member 1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"member 2"}, updated.Members)
}

func Test_DeleteTeam__should_return_ErrInsufficientPrivileges_for_non_owner(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member id")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)

	err := setup.tService.DeleteTeam(context.Background(), testEvent, "member id")
	assert.Equal(t, services.ErrInsufficientPrivileges, err)
}

func Test_GetTeamWithID__should_return_ErrInvalidID_for_malformed_id(t *testing.T) {
	setup := setupTeamTest(t)

	_, err := setup.tService.GetTeamWithID(context.Background(), "invalid id")
	assert.Equal(t, services.ErrInvalidID, err)
}

func Test_GetTeamWithID__should_return_ErrNotFound_when_team_does_not_exist(t *testing.T) {
	setup := setupTeamTest(t)

	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(noTeamResult()).Times(1)

	_, err := setup.tService.GetTeamWithID(context.Background(), primitive.NewObjectID().Hex())
	assert.Equal(t, services.ErrNotFound, err)
}

func Test_GetTeamForUser__should_match_owner_or_member(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member id")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Eq(bson.M{
		string(entities.TeamEvent): testEvent,
		"$or": bson.A{
			bson.M{string(entities.TeamOwner): "member id"},
			bson.M{string(entities.TeamMembers): "member id"},
		},
	})).Return(singleResultFor(team)).Times(1)

	got, err := setup.tService.GetTeamForUser(context.Background(), testEvent, "member id")
	assert.NoError(t, err)
	assert.Equal(t, team.ID, got.ID)
}

func Test_GetTeamMembers__should_return_owner_first(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id", "member 1", "member 2")
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)

	members, err := setup.tService.GetTeamMembers(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, []string{"owner id", "member 1", "member 2"}, members)
}

func Test_GetTeamRoles__should_return_roles_for_code(t *testing.T) {
	setup := setupTeamTest(t)

	team := testTeamWith("owner id")
	team.Roles = []entities.TeamRole{{Role: "designer"}}
	setup.mockTRepo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(singleResultFor(team)).Times(1)

	roles, err := setup.tService.GetTeamRoles(context.Background(), testEvent, team.Code)
	assert.NoError(t, err)
	assert.Equal(t, []entities.TeamRole{{Role: "designer"}}, roles)
}

func Test_GetTeamsForEvent__should_return_all_teams(t *testing.T) {
	setup := setupTeamTest(t)

	teams := []entities.Team{testTeamWith("owner 1"), testTeamWith("owner 2")}
	cur, err := mongo.NewCursorFromDocuments([]interface{}{teams[0], teams[1]}, nil, nil)
	assert.NoError(t, err)

	setup.mockTRepo.EXPECT().Find(gomock.Any(), gomock.Eq(bson.M{
		string(entities.TeamEvent): testEvent,
	})).Return(cur, nil).Times(1)

	got, err := setup.tService.GetTeamsForEvent(context.Background(), testEvent)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, teams[0].ID, got[0].ID)
	assert.Equal(t, teams[1].ID, got[1].ID)
}

func Test_GetTeamStats__should_return_team_count(t *testing.T) {
	setup := setupTeamTest(t)

	setup.mockTRepo.EXPECT().CountDocuments(gomock.Any(), gomock.Eq(bson.M{
		string(entities.TeamEvent): testEvent,
	})).Return(int64(12), nil).Times(1)

	stats, err := setup.tService.GetTeamStats(context.Background(), testEvent)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.NumTeams)
}
