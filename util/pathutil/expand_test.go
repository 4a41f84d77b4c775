package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := Expand("~/projects")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "projects"), got)
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("GITVIEW_TEST_DIR", "/tmp/gitview-test")

	got, err := Expand("$GITVIEW_TEST_DIR/repo")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/gitview-test/repo", got)
}

func TestExpandRelativeBecomesAbsolute(t *testing.T) {
	got, err := Expand("some/relative/dir")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}
