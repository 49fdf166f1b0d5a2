package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. YTM_LOG_LEVEL.
const EnvPrefix = "YTM"

// Env holds settings that can be supplied through the environment.
type Env struct {
	ToolPath     string        `envconfig:"YTDLP_PATH"`
	DownloadDir  string        `envconfig:"DOWNLOAD_DIR"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat    string        `envconfig:"LOG_FORMAT" default:"console" validate:"oneof=console json"`
}

var validate = validator.New()

// LoadEnv reads YTM_* variables and validates them.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := env.Validate(); err != nil {
		return Env{}, fmt.Errorf("config validation failed: %w", err)
	}
	return env, nil
}

// Validate checks the environment values. A zero FetchTimeout means unset.
func (e Env) Validate() error {
	if err := validate.Struct(e); err != nil {
		return err
	}
	if e.FetchTimeout < 0 {
		return fmt.Errorf("fetch timeout must not be negative: %s", e.FetchTimeout)
	}
	return nil
}
