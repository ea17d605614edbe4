package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/routers/api/models"
	"github.com/unicsmcr/hs_teams/services"
	"go.uber.org/zap"
)

// requireActingUser extracts the acting user id or rejects the request
func (r *apiV1Router) requireActingUser(ctx *gin.Context) (string, bool) {
	userID := r.GetActingUser(ctx)
	if len(userID) == 0 {
		r.logger.Debug("acting user not provided")
		models.SendAPIError(ctx, http.StatusUnauthorized, "user id must be provided")
		return "", false
	}
	return userID, true
}

// handleServiceError translates service errors into API error responses
func (r *apiV1Router) handleServiceError(ctx *gin.Context, err error, action string) {
	switch errors.Cause(err) {
	case services.ErrInvalidID:
		r.logger.Debug("invalid id", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid id")
	case services.ErrInvalidUpdateParams:
		r.logger.Debug("invalid update params", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid update params")
	case services.ErrNotFound:
		r.logger.Debug("team not found", zap.Error(err))
		models.SendAPIError(ctx, http.StatusNotFound, "team not found")
	case services.ErrAlreadyInTeam:
		r.logger.Debug("user already in team", zap.Error(err))
		models.SendAPIError(ctx, http.StatusNotFound, "you are already in this team")
	case services.ErrForbidden:
		r.logger.Debug("operation forbidden", zap.Error(err))
		models.SendAPIError(ctx, http.StatusForbidden, "operation is not allowed")
	case services.ErrInsufficientPrivileges:
		r.logger.Debug("insufficient privileges", zap.Error(err))
		models.SendAPIError(ctx, http.StatusForbidden, "only the team owner can perform this operation")
	default:
		r.logger.Error(action, zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
	}
}
