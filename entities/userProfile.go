package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserProfileField string

const (
	UserProfileID     UserProfileField = "_id"
	UserProfileUserID UserProfileField = "user_id"
)

// UserProfile is the public profile of a user.
// Profiles are owned by the user-profile service, this service only reads them.
type UserProfile struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	UserID    string             `json:"userId" bson:"user_id" validate:"required"`
	FirstName string             `json:"firstName" bson:"first_name"`
	LastName  string             `json:"lastName" bson:"last_name"`
	Email     string             `json:"email" bson:"email"`
	AvatarURL string             `json:"avatarUrl" bson:"avatar_url"`
}
