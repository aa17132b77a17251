package assets

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blueprint-pong/internal/core"
)

func TestDefaultManifestHasRequiredIds(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	for _, id := range RequiredTextures {
		_, err := p.TextureOf(id)
		assert.NoError(t, err, id)
	}
	for _, id := range RequiredSounds {
		_, err := p.SoundOf(id)
		assert.NoError(t, err, id)
	}

	ball := p.MustTexture("ball")
	assert.Equal(t, '●', ball.Glyph)
	assert.Equal(t, core.ColorChalk, ball.Color)

	hit := p.MustSound("paddle-hit")
	assert.Equal(t, WaveSquare, hit.Wave)
	assert.Equal(t, 60*time.Millisecond, hit.Duration)
}

func TestLoadMissingRequiredId(t *testing.T) {
	data := strings.Replace(string(defaultManifest), "  wall-hit:", "  wall-bonk:", 1)

	_, err := Load([]byte(data))
	require.ErrorIs(t, err, ErrMissingAsset)
	assert.Contains(t, err.Error(), "sound wall-hit")
}

func TestLoadRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "textures: [\n"},
		{"empty glyph", "textures:\n  ball:\n    glyph: \"\"\n    color: chalk\n"},
		{"unknown color", "textures:\n  ball:\n    glyph: o\n    color: mauve\n"},
		{"unknown wave", "sounds:\n  beep:\n    wave: triangle\n    freq: 100\n    duration_ms: 10\n"},
		{"zero duration", "sounds:\n  beep:\n    freq: 100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrMissingAsset)
		})
	}
}

func TestUnknownIdLookup(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	_, err = p.TextureOf("nope")
	assert.ErrorIs(t, err, ErrMissingAsset)
	_, err = p.SoundOf("nope")
	assert.ErrorIs(t, err, ErrMissingAsset)
	assert.Panics(t, func() { p.MustTexture("nope") })
}

func TestFontOfCachesBySize(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	small := p.FontOf(12)
	assert.False(t, small.Bold)
	assert.False(t, small.Heading)
	assert.Equal(t, core.ColorChalk, small.Color)
	assert.Equal(t, "Play", small.Apply("Play"))

	title := p.FontOf(48)
	assert.True(t, title.Bold)
	assert.True(t, title.Heading)
	assert.Equal(t, core.ColorHighlight, title.Color)
	assert.Equal(t, "P O N G", title.Apply("pong"))

	p.FontOf(12)
	p.FontOf(48)
	assert.Equal(t, 2, p.CachedFonts())
}

func TestParseWaveform(t *testing.T) {
	tests := []struct {
		name     string
		expected Waveform
	}{
		{"sine", WaveSine},
		{"", WaveSine},
		{"Square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tt := range tests {
		w, err := ParseWaveform(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, w)
	}
}
