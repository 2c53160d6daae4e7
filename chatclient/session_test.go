package chatclient_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheKalyaniMohite/TableGrapeAgent/chatclient"
)

func TestSessionStoreGetOrCreateIsStable(t *testing.T) {
	store := chatclient.NewSessionStore(t.TempDir())

	id := store.GetOrCreate("farm-1")
	require.NotEmpty(t, id)
	assert.Equal(t, id, store.GetOrCreate("farm-1"))
	assert.NotEqual(t, id, store.GetOrCreate("farm-2"))
}

func TestSessionStoreGetDoesNotCreate(t *testing.T) {
	store := chatclient.NewSessionStore(t.TempDir())

	assert.Empty(t, store.Get("farm-1"))
	id := store.GetOrCreate("farm-1")
	assert.Equal(t, id, store.Get("farm-1"))
}

func TestSessionStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first := chatclient.NewSessionStore(dir)
	id := first.GetOrCreate("farm-1")

	second := chatclient.NewSessionStore(dir)
	assert.Equal(t, id, second.Get("farm-1"))
}

func TestSessionStoreRotateMintsFreshID(t *testing.T) {
	dir := t.TempDir()
	store := chatclient.NewSessionStore(dir)

	old := store.GetOrCreate("farm-1")
	rotated := store.Rotate("farm-1")

	assert.NotEqual(t, old, rotated)
	assert.Equal(t, rotated, store.Get("farm-1"))

	reloaded := chatclient.NewSessionStore(dir)
	assert.Equal(t, rotated, reloaded.Get("farm-1"))
}

func TestSessionStoreAdoptServerID(t *testing.T) {
	dir := t.TempDir()
	store := chatclient.NewSessionStore(dir)

	store.GetOrCreate("farm-1")
	store.Adopt("farm-1", "server-session-xyz")
	assert.Equal(t, "server-session-xyz", store.Get("farm-1"))

	// empty server value never clobbers the local id
	store.Adopt("farm-1", "")
	assert.Equal(t, "server-session-xyz", store.Get("farm-1"))

	reloaded := chatclient.NewSessionStore(dir)
	assert.Equal(t, "server-session-xyz", reloaded.Get("farm-1"))
}

func TestSessionStoreDegradesToMemoryOnBadDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := chatclient.NewSessionStore(blocker)

	// still fully functional, just not persisted
	id := store.GetOrCreate("farm-1")
	assert.NotEmpty(t, id)
	assert.Equal(t, id, store.Get("farm-1"))
}

func TestSessionStoreRecoversFromCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chat_sessions.json"), []byte("{broken"), 0o600))

	store := chatclient.NewSessionStore(dir)

	id := store.GetOrCreate("farm-1")
	assert.NotEmpty(t, id)

	reloaded := chatclient.NewSessionStore(dir)
	assert.Equal(t, id, reloaded.Get("farm-1"))
}
