package services

import (
	"context"

	"github.com/unicsmcr/hs_teams/entities"
)

// UserProfileService is the service for read access to public user profiles
type UserProfileService interface {
	GetPublicProfiles(ctx context.Context, userIDs []string) ([]entities.UserProfile, error)
}
