package config

import (
	"os"

	"github.com/30Piraten/asg-alarms/log"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environment variable names shared by the functions and the CDK app.
const (
	EnvLogLevel        = "LOG_LEVEL"
	EnvParameterPrefix = "PARAMETER_PREFIX"
)

// Lambda holds the settings the alarm functions read at cold start.
type Lambda struct {
	// LogLevel is a zap level name, "info" when unset
	LogLevel string
	// ParameterPrefix names the SSM parameters when a lifecycle
	// notification carries no metadata
	ParameterPrefix string
}

// Load reads an optional .env file into the process environment.
// A missing file is not an error.
func Load(filenames ...string) error {
	for _, f := range filenames {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
	}
	return nil
}

// FromEnv returns the function settings found in the environment.
func FromEnv() Lambda {
	c := Lambda{
		LogLevel:        os.Getenv(EnvLogLevel),
		ParameterPrefix: os.Getenv(EnvParameterPrefix),
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c
}

// CheckEnv returns the value of key and exits when it is empty.
func CheckEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Get().Fatal("environment variable is required", zap.String("key", key))
	}
	return value
}
