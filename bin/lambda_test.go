package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleCommand(t *testing.T) {
	for _, dir := range []string{"create", "delete"} {
		cmd := bundleCommand(dir)
		assert.True(t, strings.HasPrefix(cmd, "go build -tags lambda.norpc "), cmd)
		assert.Contains(t, cmd, "-o /asset-output/bootstrap")
		assert.True(t, strings.HasSuffix(cmd, " ./bin/lambda/"+dir), cmd)

		// the package is resolved from the module root mounted as the asset source
		_, err := os.Stat(filepath.Join("lambda", dir, "main.go"))
		require.NoError(t, err)
	}
}
