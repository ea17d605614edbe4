package config

import (
	"github.com/unicsmcr/hs_teams/environment"

	"go.uber.org/config"
)

// TeamsConfig stores team-related tunables. MaxSize is the maximum
// number of people on a team including the owner and is event-specific,
// which is why it lives in config rather than in the service.
type TeamsConfig struct {
	MaxSize    int `yaml:"maxSize"`
	CodeLength int `yaml:"codeLength"`
}

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name  string      `yaml:"name"`
	Teams TeamsConfig `yaml:"teams"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	var configProvider *config.YAML
	var err error
	configFiles := []config.YAMLOption{config.File("base.yaml")}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File("production.yaml"))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File("development.yaml"))
	}
	configProvider, err = config.NewYAML(configFiles...)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig

	err = configProvider.Get("").Populate(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
