// Package assets resolves texture, font and sound ids to terminal resources
// described by a YAML manifest.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blueprint-pong/internal/core"
)

//go:embed manifest.yaml
var defaultManifest []byte

// ErrMissingAsset is returned when a required or requested id is not in the manifest.
var ErrMissingAsset = errors.New("assets: missing asset")

// Ids every game session needs before play starts.
var (
	RequiredTextures = []string{"ball", "paddle", "line", "background", "button-up", "button-down", "splash-background"}
	RequiredSounds   = []string{"paddle-hit", "wall-hit", "point-scored"}
)

// Texture is a glyph tiled over whatever rectangle it is drawn into.
type Texture struct {
	ID    string
	Glyph rune
	Color core.Color
}

// Waveform is the oscillator shape of a synthesized sound.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ParseWaveform looks up a waveform by name.
func ParseWaveform(name string) (Waveform, error) {
	switch strings.ToLower(name) {
	case "sine", "":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "saw":
		return WaveSaw, nil
	case "noise":
		return WaveNoise, nil
	default:
		return 0, fmt.Errorf("assets: unknown waveform %q", name)
	}
}

// Sound is a short synthesized effect.
// SweepTo, when non-zero, is the frequency reached at the end of the sound.
type Sound struct {
	ID       string
	Wave     Waveform
	Freq     float64
	SweepTo  float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// Font is a text treatment for a nominal pixel size. Large sizes become
// letter-spaced uppercase headings.
type Font struct {
	Size    int
	Color   core.Color
	Bold    bool
	Heading bool
}

// Apply transforms text for drawing on a canvas.
func (f Font) Apply(text string) string {
	if !f.Heading {
		return text
	}
	upper := []rune(strings.ToUpper(text))
	var sb strings.Builder
	for i, r := range upper {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Style returns the lipgloss style for text rendered outside the canvas.
func (f Font) Style() lipgloss.Style {
	return lipgloss.NewStyle().Bold(f.Bold)
}

type manifest struct {
	Textures map[string]textureSpec `yaml:"textures"`
	Fonts    fontSpec               `yaml:"fonts"`
	Sounds   map[string]soundSpec   `yaml:"sounds"`
}

type textureSpec struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

type fontSpec struct {
	Color        string `yaml:"color"`
	BoldFrom     int    `yaml:"bold_from"`
	HeadingFrom  int    `yaml:"heading_from"`
	HeadingColor string `yaml:"heading_color"`
}

type soundSpec struct {
	Wave       string  `yaml:"wave"`
	Freq       float64 `yaml:"freq"`
	SweepTo    float64 `yaml:"sweep_to"`
	DurationMS int     `yaml:"duration_ms"`
	AttackMS   int     `yaml:"attack_ms"`
	ReleaseMS  int     `yaml:"release_ms"`
}

// Provider resolves asset ids. It is read-only after Load except for the
// font cache, and is safe for concurrent use by multiple sessions.
type Provider struct {
	textures map[string]Texture
	sounds   map[string]Sound
	fontSpec fontSpec

	fontMu sync.Mutex
	fonts  map[int]Font
}

// Default loads the embedded manifest.
func Default() (*Provider, error) {
	return Load(defaultManifest)
}

// MustDefault is Default for callers that cannot run without the embedded
// manifest.
func MustDefault() *Provider {
	p, err := Default()
	if err != nil {
		panic(err)
	}
	return p
}

// Load parses a manifest and checks that every required id is present.
func Load(data []byte) (*Provider, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: cannot parse manifest: %w", err)
	}

	p := &Provider{
		textures: make(map[string]Texture, len(m.Textures)),
		sounds:   make(map[string]Sound, len(m.Sounds)),
		fontSpec: m.Fonts,
		fonts:    make(map[int]Font),
	}

	for id, spec := range m.Textures {
		glyph, size := utf8.DecodeRuneInString(spec.Glyph)
		if size == 0 || glyph == utf8.RuneError {
			return nil, fmt.Errorf("assets: texture %q: glyph must be one character", id)
		}
		color, ok := core.ParseColor(spec.Color)
		if !ok {
			return nil, fmt.Errorf("assets: texture %q: unknown color %q", id, spec.Color)
		}
		p.textures[id] = Texture{ID: id, Glyph: glyph, Color: color}
	}

	for id, spec := range m.Sounds {
		wave, err := ParseWaveform(spec.Wave)
		if err != nil {
			return nil, fmt.Errorf("assets: sound %q: %w", id, err)
		}
		if spec.Freq <= 0 || spec.DurationMS <= 0 {
			return nil, fmt.Errorf("assets: sound %q: frequency and duration must be positive", id)
		}
		p.sounds[id] = Sound{
			ID:       id,
			Wave:     wave,
			Freq:     spec.Freq,
			SweepTo:  spec.SweepTo,
			Duration: time.Duration(spec.DurationMS) * time.Millisecond,
			Attack:   time.Duration(spec.AttackMS) * time.Millisecond,
			Release:  time.Duration(spec.ReleaseMS) * time.Millisecond,
		}
	}

	if err := p.checkRequired(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Provider) checkRequired() error {
	var missing []string
	for _, id := range RequiredTextures {
		if _, ok := p.textures[id]; !ok {
			missing = append(missing, "texture "+id)
		}
	}
	for _, id := range RequiredSounds {
		if _, ok := p.sounds[id]; !ok {
			missing = append(missing, "sound "+id)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("%w: %s", ErrMissingAsset, strings.Join(missing, ", "))
	}
	return nil
}

// TextureOf returns the texture with the given id.
func (p *Provider) TextureOf(id string) (Texture, error) {
	t, ok := p.textures[id]
	if !ok {
		return Texture{}, fmt.Errorf("%w: texture %q", ErrMissingAsset, id)
	}
	return t, nil
}

// SoundOf returns the sound with the given id.
func (p *Provider) SoundOf(id string) (Sound, error) {
	s, ok := p.sounds[id]
	if !ok {
		return Sound{}, fmt.Errorf("%w: sound %q", ErrMissingAsset, id)
	}
	return s, nil
}

// MustTexture is TextureOf for required ids, which Load already verified.
func (p *Provider) MustTexture(id string) Texture {
	t, err := p.TextureOf(id)
	if err != nil {
		panic(err)
	}
	return t
}

// MustSound is SoundOf for required ids, which Load already verified.
func (p *Provider) MustSound(id string) Sound {
	s, err := p.SoundOf(id)
	if err != nil {
		panic(err)
	}
	return s
}

// FontOf returns the font for a nominal size. Fonts are built once per size.
func (p *Provider) FontOf(sizePx int) Font {
	p.fontMu.Lock()
	defer p.fontMu.Unlock()

	if f, ok := p.fonts[sizePx]; ok {
		return f
	}

	f := Font{Size: sizePx, Color: core.ColorDefault}
	if c, ok := core.ParseColor(p.fontSpec.Color); ok {
		f.Color = c
	}
	if p.fontSpec.BoldFrom > 0 && sizePx >= p.fontSpec.BoldFrom {
		f.Bold = true
	}
	if p.fontSpec.HeadingFrom > 0 && sizePx >= p.fontSpec.HeadingFrom {
		f.Heading = true
		if c, ok := core.ParseColor(p.fontSpec.HeadingColor); ok {
			f.Color = c
		}
	}
	p.fonts[sizePx] = f
	return f
}

// CachedFonts returns the number of font sizes built so far.
func (p *Provider) CachedFonts() int {
	p.fontMu.Lock()
	defer p.fontMu.Unlock()
	return len(p.fonts)
}
