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

type mongoRegistrationService struct {
	logger                 *zap.Logger
	registrationRepository repositories.RegistrationRepository
}

// NewMongoRegistrationService creates a new RegistrationService reading from
// the registration service's mongo collection
func NewMongoRegistrationService(logger *zap.Logger, registrationRepository repositories.RegistrationRepository) services.RegistrationService {
	return &mongoRegistrationService{
		logger:                 logger,
		registrationRepository: registrationRepository,
	}
}

func (s *mongoRegistrationService) GetRegistrationsForUsers(ctx context.Context, event string, userIDs []string) ([]entities.Registration, error) {
	if len(userIDs) == 0 {
		return []entities.Registration{}, nil
	}

	cur, err := s.registrationRepository.Find(ctx, bson.M{
		string(entities.RegistrationEvent): event,
		string(entities.RegistrationUser):  bson.M{"$in": userIDs},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for registrations")
	}
	defer cur.Close(ctx)

	registrations, err := decodeRegistrationsResult(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return registrations, nil
}

func decodeRegistrationsResult(ctx context.Context, cur *mongo.Cursor) ([]entities.Registration, error) {
	registrations := []entities.Registration{}
	for cur.Next(ctx) {
		var registration entities.Registration
		err := cur.Decode(&registration)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode registration")
		}
		registrations = append(registrations, registration)
	}

	return registrations, nil
}
