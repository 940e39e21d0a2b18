package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvParameterPrefix, "")

	assert.Equal(t, Lambda{LogLevel: "info"}, FromEnv())
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvParameterPrefix, "coral-prod")

	assert.Equal(t, Lambda{LogLevel: "debug", ParameterPrefix: "coral-prod"}, FromEnv())
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvParameterPrefix, "")
	os.Unsetenv(EnvParameterPrefix)

	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("PARAMETER_PREFIX=from-file\n"), 0o600))

	require.NoError(t, Load(filepath.Join(dir, "missing.env"), file))
	assert.Equal(t, "from-file", FromEnv().ParameterPrefix)
}

func TestCheckEnv(t *testing.T) {
	t.Setenv("ASG_ALARMS_TEST_KEY", "value")
	assert.Equal(t, "value", CheckEnv("ASG_ALARMS_TEST_KEY"))
}
