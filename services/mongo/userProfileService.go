package mongo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/repositories"
	"github.com/unicsmcr/hs_teams/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoUserProfileService struct {
	logger                *zap.Logger
	userProfileRepository repositories.UserProfileRepository
}

// NewMongoUserProfileService creates a new UserProfileService reading from
// the user-profile service's mongo collection
func NewMongoUserProfileService(logger *zap.Logger, userProfileRepository repositories.UserProfileRepository) services.UserProfileService {
	return &mongoUserProfileService{
		logger:                logger,
		userProfileRepository: userProfileRepository,
	}
}

func (s *mongoUserProfileService) GetPublicProfiles(ctx context.Context, userIDs []string) ([]entities.UserProfile, error) {
	if len(userIDs) == 0 {
		return []entities.UserProfile{}, nil
	}

	cur, err := s.userProfileRepository.Find(ctx, bson.M{
		string(entities.UserProfileUserID): bson.M{"$in": userIDs},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for user profiles")
	}
	defer cur.Close(ctx)

	profiles, err := decodeUserProfilesResult(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return profiles, nil
}

func decodeUserProfilesResult(ctx context.Context, cur *mongo.Cursor) ([]entities.UserProfile, error) {
	profiles := []entities.UserProfile{}
	for cur.Next(ctx) {
		var profile entities.UserProfile
		err := cur.Decode(&profile)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode user profile")
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
