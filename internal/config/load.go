package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultPort is used when PORT is absent.
	DefaultPort = 8080
	// DefaultLogLevel is used when LOG_LEVEL is absent.
	DefaultLogLevel = "info"

	dotEnvFile = ".env"
)

// binding maps a viper key to the environment variable that feeds it.
type binding struct {
	key string
	env string
}

var bindings = []binding{
	{key: "server.port", env: "PORT"},
	{key: "server.log_level", env: "LOG_LEVEL"},
	{key: "database.url", env: "DATABASE_URL"},
	{key: "frontend.url", env: "FRONTEND_URL"},
}

var validate = newValidator()

// newValidator returns a validator that reports fields by their environment
// variable name instead of the Go field name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("env")
	})
	return v
}

// Load configuration from environment variables and an optional .env file in
// the working directory. Variables already present in the process environment
// take precedence over values from the .env file.
// Returns a populated Config or a *ConfigurationError listing every violation.
func Load() (*Config, error) {
	return loadFrom(dotEnvFile)
}

// loadFrom reads the process environment and the .env file at dotEnvPath.
// The .env values only fill variables the process environment lacks, and the
// process environment itself is left untouched.
func loadFrom(dotEnvPath string) (*Config, error) {
	dotEnv, err := godotenv.Read(dotEnvPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", dotEnvPath, err)
	}

	v := newViper()
	for _, b := range bindings {
		if value, ok := dotEnv[b.env]; ok && value != "" {
			if _, set := os.LookupEnv(b.env); !set {
				v.SetDefault(b.key, value)
			}
		}
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", b.env, err)
		}
	}

	return build(v)
}

// FromMap validates a raw key/value environment without touching the process
// environment. Empty values are treated as absent.
func FromMap(env map[string]string) (*Config, error) {
	v := newViper()
	for _, b := range bindings {
		if value, ok := env[b.env]; ok && value != "" {
			v.Set(b.key, value)
		}
	}

	return build(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	return v
}

// build coerces and validates the values held by v. It never returns a
// partially populated Config.
func build(v *viper.Viper) (*Config, error) {
	var problems []FieldError

	port, err := strconv.Atoi(strings.TrimSpace(v.GetString("server.port")))
	if err != nil {
		problems = append(problems, FieldError{Field: "PORT", Reason: "must be a non-negative integer"})
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     port,
			LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("server.log_level"))),
		},
		Database: DatabaseConfig{
			URL: strings.TrimSpace(v.GetString("database.url")),
		},
		Frontend: FrontendConfig{
			URL: strings.TrimSpace(v.GetString("frontend.url")),
		},
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, FieldError{Field: fe.Field(), Reason: reason(fe)})
		}
	}

	if len(problems) > 0 {
		return nil, &ConfigurationError{Fields: problems}
	}

	return cfg, nil
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "gte", "lte":
		return "must be between 0 and 65535"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}
