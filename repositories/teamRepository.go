package repositories

import (
	"context"

	"github.com/unicsmcr/hs_teams/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const teamCollection = "teams"

// TeamRepository is the repository for Team objects.
// It is an interface rather than a concrete type so that services
// can be unit tested without a running database.
type TeamRepository interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

// NewTeamRepository creates a repository for the teams mongo collection.
// Invite codes are unique within an event, enforced by a compound index.
func NewTeamRepository(db *mongo.Database) (TeamRepository, error) {
	_, err := db.Collection(teamCollection).Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: string(entities.TeamEvent), Value: 1},
				{Key: string(entities.TeamCode), Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	)

	if err != nil {
		return nil, err
	}

	return db.Collection(teamCollection), nil
}
