package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureForMatchesStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	sig := SignatureFor(path)
	require.NotNil(t, sig)
	assert.Equal(t, int64(5), sig.FileLen)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime().UnixNano(), sig.ModifiedUnixNanos)
}

func TestSignatureForMissingFile(t *testing.T) {
	assert.Nil(t, SignatureFor(filepath.Join(t.TempDir(), "nope")))
}

func TestSignatureChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))
	before := SignatureFor(path)

	require.NoError(t, os.WriteFile(path, []byte("longer content"), 0644))
	after := SignatureFor(path)

	require.NotNil(t, before)
	require.NotNil(t, after)
	assert.False(t, before.Equal(*after))
}

func TestSignaturesMatchNilHandling(t *testing.T) {
	sig := &FileVersionSignature{ModifiedUnixNanos: 1, FileLen: 2}

	assert.True(t, SignaturesMatch(nil, nil))
	assert.False(t, SignaturesMatch(sig, nil))
	assert.False(t, SignaturesMatch(nil, sig))
	assert.True(t, SignaturesMatch(sig, &FileVersionSignature{ModifiedUnixNanos: 1, FileLen: 2}))
	assert.False(t, SignaturesMatch(sig, &FileVersionSignature{ModifiedUnixNanos: 1, FileLen: 3}))
}
