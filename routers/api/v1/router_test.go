package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gin-gonic/gin"

	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/services"

	mock_services "github.com/unicsmcr/hs_teams/mocks/services"
	mock_export "github.com/unicsmcr/hs_teams/mocks/services/export"

	"github.com/golang/mock/gomock"

	"go.uber.org/zap"
)

func Test_RegisterRoutes__should_register_required_routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTeamService := mock_services.NewMockTeamService(ctrl)
	mockExporter := mock_export.NewMockExporter(ctrl)

	mockTeamService.EXPECT().GetTeamsForEvent(gomock.Any(), gomock.Any()).AnyTimes()
	mockTeamService.EXPECT().GetTeamStats(gomock.Any(), gomock.Any()).
		Return(&services.TeamStats{}, nil).AnyTimes()
	mockTeamService.EXPECT().GetTeamRoles(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockTeamService.EXPECT().GetTeamWithID(gomock.Any(), gomock.Any()).
		Return(&entities.Team{}, nil).AnyTimes()
	mockTeamService.EXPECT().AttachMeta(gomock.Any(), gomock.Any()).
		Return(&services.TeamWithMeta{}, nil, nil).AnyTimes()
	mockTeamService.EXPECT().GetTeamMembers(gomock.Any(), gomock.Any()).AnyTimes()

	router := NewAPIV1Router(zap.NewNop(), mockTeamService, mockExporter)

	tests := []struct {
		route  string
		method string
	}{
		{
			route:  "/",
			method: http.MethodGet,
		},
		{
			route:  "/events/hack2026/teams/",
			method: http.MethodGet,
		},
		{
			route:  "/events/hack2026/teams/",
			method: http.MethodPost,
		},
		{
			route:  "/events/hack2026/teams/stats",
			method: http.MethodGet,
		},
		{
			route:  "/events/hack2026/teams/me",
			method: http.MethodGet,
		},
		{
			route:  "/events/hack2026/teams/me",
			method: http.MethodDelete,
		},
		{
			route:  "/events/hack2026/teams/me",
			method: http.MethodPatch,
		},
		{
			route:  "/events/hack2026/teams/me/roles",
			method: http.MethodPut,
		},
		{
			route:  "/events/hack2026/teams/me/leave",
			method: http.MethodPost,
		},
		{
			route:  "/events/hack2026/teams/me/members/user2",
			method: http.MethodDelete,
		},
		{
			route:  "/events/hack2026/teams/code/ABC234/roles",
			method: http.MethodGet,
		},
		{
			route:  "/events/hack2026/teams/code/ABC234/join",
			method: http.MethodPost,
		},
		{
			route:  "/events/hack2026/teams/code/ABC234/apply",
			method: http.MethodPost,
		},
		{
			route:  "/teams/5fc19b3e9f6f3a00123a1ab9",
			method: http.MethodGet,
		},
		{
			route:  "/teams/5fc19b3e9f6f3a00123a1ab9/members",
			method: http.MethodGet,
		},
		{
			route:  "/teams/export",
			method: http.MethodPost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.route, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, testServer := gin.CreateTestContext(w)

			router.RegisterRoutes(&testServer.RouterGroup)

			req := httptest.NewRequest(tt.method, tt.route, nil)

			testServer.ServeHTTP(w, req)

			// making sure route is defined
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}
