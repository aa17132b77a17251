package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blueprint-pong/internal/core"
	"github.com/vovakirdan/blueprint-pong/internal/storage"
)

// historyLimit is how many recent matches the history screen lists.
const historyLimit = 20

var (
	historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	historyStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).MarginTop(1)
	historyEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	historyTableStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

// historyScreen lists the profile's recent matches.
type historyScreen struct {
	s      *Session
	table  table.Model
	stats  *storage.MatchStats
	empty  string
	width  int
	height int
}

func newHistoryScreen(s *Session) *historyScreen {
	v := &historyScreen{s: s}
	v.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "When", Width: 16},
			{Title: "Level", Width: 7},
			{Title: "Score", Width: 7},
			{Title: "Winner", Width: 9},
			{Title: "Time", Width: 6},
		}),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("25")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("25"))
	v.table.SetStyles(styles)
	return v
}

func (v *historyScreen) String() string { return "history" }

// OnActivate reloads the list so it reflects matches finished since the
// screen was created.
func (v *historyScreen) OnActivate() {
	v.load()
}

func (v *historyScreen) load() {
	v.stats = nil
	v.table.SetRows(nil)

	store := v.s.ctx.Store
	if store == nil {
		v.empty = "history is unavailable without a database"
		return
	}

	matches, err := store.RecentMatches(v.s.ctx.Profile, historyLimit)
	if err != nil {
		v.s.ctx.Logger.Warn("could not load history", "error", err)
		v.empty = "history could not be loaded"
		return
	}
	if len(matches) == 0 {
		v.empty = "no matches played yet"
		return
	}
	v.empty = ""

	rows := make([]table.Row, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, table.Row{
			m.CreatedAt.Local().Format("2006-01-02 15:04"),
			m.Difficulty,
			fmt.Sprintf("%d:%d", m.ComputerScore, m.PlayerScore),
			m.Winner,
			fmt.Sprintf("%ds", m.Duration),
		})
	}
	v.table.SetRows(rows)
	v.table.GotoTop()

	stats, err := store.Stats(v.s.ctx.Profile)
	if err != nil {
		v.s.ctx.Logger.Warn("could not load stats", "error", err)
		return
	}
	v.stats = stats
}

func (v *historyScreen) OnResize(width, height int) {
	v.width, v.height = width, height
	// Title, stats, border and margins take eight rows.
	v.table.SetHeight(max(height-8, 3))
}

func (v *historyScreen) OnDestroy() {}

func (v *historyScreen) HandleKey(k core.Key) {
	switch k {
	case core.KeyUp:
		v.table.MoveUp(1)
	case core.KeyDown:
		v.table.MoveDown(1)
	case core.KeyBack, core.KeyConfirm:
		v.s.Back()
	}
}

func (v *historyScreen) Tick(float64) {}

func (v *historyScreen) statsLine() string {
	st := v.stats
	if st == nil || st.Played == 0 {
		return ""
	}
	return fmt.Sprintf("%d played · %d won · %d lost · %.0f%% · points %d:%d",
		st.Played, st.Wins, st.Losses, st.WinRate()*100, st.PointsFor, st.PointsAgainst)
}

// Render draws with lipgloss rather than the canvas; the table renders
// itself.
func (v *historyScreen) Render(*core.Canvas) string {
	var b strings.Builder
	b.WriteString(historyTitleStyle.Render("History · " + v.s.ctx.Profile))
	b.WriteString("\n")
	if v.empty != "" {
		b.WriteString(historyEmptyStyle.Render(v.empty))
	} else {
		b.WriteString(historyTableStyle.Render(v.table.View()))
		if line := v.statsLine(); line != "" {
			b.WriteString("\n")
			b.WriteString(historyStatsStyle.Render(line))
		}
	}
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (v *historyScreen) Help() []key.Binding {
	k := v.s.keys
	return []key.Binding{k.Up, k.Down, k.Back}
}
