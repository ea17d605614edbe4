package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const registrationCollection = "registrations"

// RegistrationRepository is the read-only repository for Registration objects.
// The collection is owned by the registration service.
type RegistrationRepository interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// NewRegistrationRepository creates a repository for the registrations mongo collection
func NewRegistrationRepository(db *mongo.Database) RegistrationRepository {
	return db.Collection(registrationCollection)
}
