package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userProfileCollection = "user-profiles"

// UserProfileRepository is the read-only repository for UserProfile objects.
// The collection is owned by the user-profile service.
type UserProfileRepository interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// NewUserProfileRepository creates a repository for the user-profiles mongo collection
func NewUserProfileRepository(db *mongo.Database) UserProfileRepository {
	return db.Collection(userProfileCollection)
}
