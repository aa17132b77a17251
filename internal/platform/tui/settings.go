package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/blueprint-pong/internal/core"
)

// Row indexes in the settings list.
const (
	settingDifficulty = iota
	settingSounds
)

// settingsScreen edits preferences. Every change is written immediately.
type settingsScreen struct {
	s      *Session
	list   menuList
	status string
}

func newSettingsScreen(s *Session) *settingsScreen {
	v := &settingsScreen{s: s}
	prefs := s.ctx.Prefs
	v.list.items = []menuItem{
		{
			label:  func() string { return fmt.Sprintf("Difficulty  < %-6s >", prefs.Difficulty()) },
			action: func() { v.cycleDifficulty(1) },
		},
		{
			label:  func() string { return fmt.Sprintf("Sounds      %-10s", onOff(prefs.ShouldPlaySounds())) },
			action: v.toggleSounds,
		},
		item("Back", func() { s.Back() }),
	}
	return v
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

func (v *settingsScreen) String() string { return "settings" }

func (v *settingsScreen) OnActivate() {
	v.list.reset()
	v.status = ""
}

func (v *settingsScreen) OnResize(int, int) {}

func (v *settingsScreen) OnDestroy() {}

func (v *settingsScreen) HandleKey(k core.Key) {
	switch {
	case k == core.KeyBack:
		v.s.Back()
	case k == core.KeyLeft && v.list.cursor == settingDifficulty:
		v.cycleDifficulty(-1)
	case k == core.KeyRight && v.list.cursor == settingDifficulty:
		v.cycleDifficulty(1)
	case (k == core.KeyLeft || k == core.KeyRight) && v.list.cursor == settingSounds:
		v.toggleSounds()
	default:
		v.list.handleKey(k)
	}
}

func (v *settingsScreen) cycleDifficulty(dir int) {
	d := v.s.ctx.Prefs.Difficulty()
	if dir < 0 {
		d = d.Prev()
	} else {
		d = d.Next()
	}
	v.report(v.s.ctx.Prefs.SetDifficulty(d))
}

func (v *settingsScreen) toggleSounds() {
	prefs := v.s.ctx.Prefs
	v.report(prefs.SetPlaySounds(!prefs.ShouldPlaySounds()))
}

func (v *settingsScreen) report(err error) {
	if err != nil {
		v.s.ctx.Logger.Warn("could not save settings", "error", err)
		v.status = "settings could not be saved"
		return
	}
	v.status = ""
}

func (v *settingsScreen) Tick(float64) {}

func (v *settingsScreen) Render(c *core.Canvas) string {
	drawMenuPage(c, v.s.ctx.Assets, "Settings", &v.list)
	if v.status != "" {
		c.DrawTextCentered(c.Height()-2, v.status, core.ColorAlert)
	}
	return RenderCanvas(c)
}

func (v *settingsScreen) Help() []key.Binding {
	k := v.s.keys
	return []key.Binding{k.Up, k.Down, k.Left, k.Confirm, k.Back}
}
