//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/unicsmcr/hs_teams/config"
	"github.com/unicsmcr/hs_teams/environment"
	"github.com/unicsmcr/hs_teams/repositories"
	"github.com/unicsmcr/hs_teams/routers"
	v1 "github.com/unicsmcr/hs_teams/routers/api/v1"
	"github.com/unicsmcr/hs_teams/services/export"
	"github.com/unicsmcr/hs_teams/services/mongo"
	"github.com/unicsmcr/hs_teams/utils"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		v1.NewAPIV1Router,
		export.NewExporter,
		mongo.NewMongoTeamService,
		mongo.NewMongoRegistrationService,
		mongo.NewMongoUserProfileService,
		repositories.NewTeamRepository,
		repositories.NewRegistrationRepository,
		repositories.NewUserProfileRepository,
		utils.NewDatabase,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}
