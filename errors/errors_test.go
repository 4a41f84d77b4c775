package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewError(t *testing.T) {
	t.Run("error string without cause", func(t *testing.T) {
		err := New(ErrCodeRepoUnavailable, "no repository")
		assert.Equal(t, "REPO_UNAVAILABLE: no repository", err.Error())
	})

	t.Run("error string with cause", func(t *testing.T) {
		cause := fmt.Errorf("permission denied")
		err := Wrap(cause, ErrCodeFileRead, "failed to read file")
		assert.Contains(t, err.Error(), "FILE_READ")
		assert.Contains(t, err.Error(), "permission denied")
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("details are chained", func(t *testing.T) {
		err := PatchFailed("main.go", fmt.Errorf("boom")).WithDetail("staged", true)
		assert.Equal(t, "main.go", err.Details["file"])
		assert.Equal(t, true, err.Details["staged"])
	})
}

func TestIs(t *testing.T) {
	err := RepoUnavailable("/tmp/nowhere", fmt.Errorf("not found"))
	assert.True(t, Is(err, ErrCodeRepoUnavailable))
	assert.False(t, Is(err, ErrCodePatchFailed))
	assert.False(t, Is(nil, ErrCodeRepoUnavailable))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, Is(wrapped, ErrCodeRepoUnavailable))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetCode(nil))
	assert.Equal(t, ErrCodeConfigInvalid, GetCode(ConfigInvalid("bad yaml")))
	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("plain")))
}
