package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingTokenReturnsEmpty(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nonexistent"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "skiffadmin"))

	require.NoError(t, store.Save("tok-abc123"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc123", token)
}

func TestLoadTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("  tok-x\n"), 0o600))

	token, err := New(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-x", token)
}

func TestSaveRestrictsPermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "skiffadmin")
	store := New(dir)
	require.NoError(t, store.Save("tok"))

	info, err := os.Stat(filepath.Join(dir, "token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestClearRemovesToken(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Save("tok"))
	require.NoError(t, store.Clear())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestClearWithoutTokenIsNoOp(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Clear())
}
