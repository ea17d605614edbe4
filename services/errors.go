package services

import "errors"

var (
	// ErrInvalidID is the error returned by services when
	// the id provided in the call to the service is invalid
	ErrInvalidID = errors.New("id was invalid or not provided")
	// ErrNotFound is the error returned by services when
	// the requested object could not be found
	ErrNotFound = errors.New("requested object could not be found")
	// ErrForbidden is the error returned by services when
	// the operation would break a business rule, such as the team size cap
	ErrForbidden = errors.New("operation is not allowed")
	// ErrInsufficientPrivileges is the error returned by services when
	// the acting user lacks ownership required for the operation
	ErrInsufficientPrivileges = errors.New("user does not have sufficient privileges for the operation")
	// ErrAlreadyInTeam is the error returned by services when a user
	// applies to a team they are already part of. Callers treat this
	// as a not-found on the application slot.
	ErrAlreadyInTeam = errors.New("user is already in this team")
	// ErrInvalidUpdateParams is the error returned by services when
	// an update would touch a protected field
	ErrInvalidUpdateParams = errors.New("update params contain a protected field")
)
