package services

import (
	"context"

	"github.com/unicsmcr/hs_teams/entities"
)

// RegistrationService is the service for read access to event registrations
type RegistrationService interface {
	GetRegistrationsForUsers(ctx context.Context, event string, userIDs []string) ([]entities.Registration, error)
}
