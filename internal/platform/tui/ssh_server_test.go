package tui

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blueprint-pong/internal/audio"
	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/storage"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	assert.Equal(t, ":23234", cfg.Address)
	assert.Equal(t, 30*time.Minute, cfg.IdleTimeout)
	assert.Empty(t, cfg.HostKeyPath)
}

func TestSSHSessionContextUsesPerUserPrefs(t *testing.T) {
	store := openTestStore(t)
	alice, err := storage.LoadPrefs(store, "alice")
	require.NoError(t, err)
	require.NoError(t, alice.SetDifficulty(config.DifficultyHard))

	base := testContext()
	base.Store = store
	base.Audio = &recordingSink{}
	srv := &SSHServer{base: base, logger: log.New(io.Discard)}

	ctx := srv.sessionContext("alice", 100, 30)
	assert.Equal(t, "alice", ctx.Profile)
	assert.Equal(t, 100, ctx.Runtime.ScreenW)
	assert.Equal(t, 30, ctx.Runtime.ScreenH)
	assert.Equal(t, config.DifficultyHard, ctx.Prefs.Difficulty())
	assert.IsType(t, audio.Silent{}, ctx.Audio, "sessions never play on the server")

	bob := srv.sessionContext("bob", 80, 24)
	assert.Equal(t, config.DifficultyMedium, bob.Prefs.Difficulty())
	assert.Same(t, store, bob.Store, "sessions share the store")
}

func TestSSHSessionContextWithoutStore(t *testing.T) {
	srv := &SSHServer{base: testContext(), logger: log.New(io.Discard)}

	ctx := srv.sessionContext("", 80, 24)
	assert.Equal(t, storage.DefaultProfile, ctx.Profile)
	require.NotNil(t, ctx.Prefs)
	assert.True(t, ctx.Prefs.ShouldPlaySounds())

	a := NewApp(ctx)
	assert.IsType(t, &splashScreen{}, topView(t, a))
}
