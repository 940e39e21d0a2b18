package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	defer Set(zap.NewNop())

	require.NoError(t, Init("debug"))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("warn"))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))
}

func TestInitInvalidLevel(t *testing.T) {
	assert.Error(t, Init("loud"))
}
