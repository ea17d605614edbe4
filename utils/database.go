package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/environment"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NewDatabase connects to the mongo database specified in the environment
func NewDatabase(logger *zap.Logger, env *environment.Env) (*mongo.Database, error) {
	connectionURL := fmt.Sprintf(`mongodb://%s:%s@%s/%s`,
		env.Get(environment.MongoUser),
		env.Get(environment.MongoPassword),
		env.Get(environment.MongoHost),
		env.Get(environment.MongoDatabase))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionURL))
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to database")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not ping database")
	}
	logger.Info("connected to database", zap.String("database", env.Get(environment.MongoDatabase)))

	return client.Database(env.Get(environment.MongoDatabase)), nil
}
