package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegistrationField string

const (
	RegistrationID     RegistrationField = "_id"
	RegistrationEvent  RegistrationField = "event"
	RegistrationUser   RegistrationField = "user"
	RegistrationStatus RegistrationField = "status"
)

// Registration is a participant's registration to an event.
// Registrations are owned by the registration service, this service only reads them.
type Registration struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id"`
	Event  string             `json:"event" bson:"event" validate:"required"`
	User   string             `json:"user" bson:"user" validate:"required"`
	Status string             `json:"status" bson:"status"`
}
