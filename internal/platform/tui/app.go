package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blueprint-pong/internal/core"
	"github.com/vovakirdan/blueprint-pong/internal/screens"
)

// View is a screen the frame driver can feed input and ticks to and draw.
type View interface {
	screens.Screen
	HandleKey(k core.Key)
	Tick(dt float64)
	Render(c *core.Canvas) string
	Help() []key.Binding
}

// pointerView is implemented by views that follow the mouse.
type pointerView interface {
	HandlePointer(col, row int, down bool)
}

// Session is the per-terminal state shared by all screens of one program:
// services, the screen stack and the input state.
type Session struct {
	ctx   *AppContext
	stack *screens.Stack[View]
	input *core.InputState
	keys  KeyMap

	quitting bool
}

func newSession(ctx AppContext) *Session {
	c := ctx.withDefaults()
	s := &Session{
		ctx:   &c,
		stack: screens.NewStack[View](c.Logger),
		input: core.NewInputState(),
		keys:  DefaultKeyMap(),
	}
	// Held keys and the pointer belong to the screen that saw them.
	s.stack.OnChange(func(View) { s.input.Reset() })
	return s
}

// Navigate pushes a view with an explicit transition.
func (s *Session) Navigate(v View, t screens.Transition) {
	if err := s.stack.Navigate(v, t); err != nil {
		s.ctx.Logger.Error("navigation failed", "error", err)
	}
}

// Back returns to the previous view, if any.
func (s *Session) Back() bool {
	return s.stack.SwitchToPrevious()
}

// Quit ends the program after the current message.
func (s *Session) Quit() {
	s.quitting = true
}

// Top returns the active view.
func (s *Session) Top() (View, bool) {
	return s.stack.Top()
}

// Input returns the session input state.
func (s *Session) Input() *core.InputState {
	return s.input
}

// App is the Bubble Tea model that owns one session's screen stack.
type App struct {
	session *Session
	canvas  *core.Canvas
	mapper  *KeyMapper
	help    help.Model
	width   int
	height  int
}

// NewApp creates the frame driver and shows the splash screen.
func NewApp(ctx AppContext) *App {
	s := newSession(ctx)
	rt := s.ctx.Runtime
	a := &App{
		session: s,
		canvas:  core.NewCanvas(max(rt.ScreenW, 1), max(rt.ScreenH-1, 1)),
		mapper:  NewKeyMapper(),
		help:    help.New(),
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
	s.stack.Resize(a.canvas.Width(), a.canvas.Height())
	s.Navigate(newSplashScreen(s), screens.DiscardAll)
	return a
}

// Session returns the app's session.
func (a *App) Session() *Session {
	return a.session
}

// Init starts the tick loop.
func (a *App) Init() tea.Cmd {
	return tickCmd(a.session.ctx.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		a.handleKey(msg)

	case tea.MouseMsg:
		a.handleMouse(msg)

	case tea.WindowSizeMsg:
		a.handleResize(msg.Width, msg.Height)

	case TickMsg:
		if top, ok := a.session.Top(); ok {
			top.Tick(a.session.ctx.Runtime.FrameDelta())
		}
		a.session.input.EndFrame()
		if !a.session.quitting {
			return a, tickCmd(a.session.ctx.Runtime.TickRate)
		}
	}

	if a.session.quitting || a.session.stack.Len() == 0 {
		return a, a.shutdown()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) {
	k := a.mapper.MapKey(msg)
	switch k {
	case core.KeyNone:
		return
	case core.KeyQuit:
		a.session.Quit()
		return
	}
	a.session.input.Press(k)
	if top, ok := a.session.Top(); ok {
		top.HandleKey(k)
	}
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	top, ok := a.session.Top()
	if !ok {
		return
	}
	pv, ok := top.(pointerView)
	if !ok {
		return
	}
	down := msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion
	pv.HandlePointer(msg.X, msg.Y, down)
}

func (a *App) handleResize(width, height int) {
	a.width, a.height = width, height
	a.help.Width = width
	a.canvas.Resize(max(width, 1), max(height-1, 1))
	a.session.stack.Resize(a.canvas.Width(), a.canvas.Height())
}

func (a *App) shutdown() tea.Cmd {
	a.session.quitting = true
	a.session.stack.DestroyAll()
	return tea.Quit
}

// View renders the active screen with a help footer.
func (a *App) View() string {
	if a.session.quitting {
		return ""
	}
	top, ok := a.session.Top()
	if !ok {
		return ""
	}
	return top.Render(a.canvas) + "\n" + a.help.View(helpKeys(top.Help()))
}

// Run starts the Bubble Tea program for a local terminal.
func Run(ctx AppContext) error {
	p := tea.NewProgram(
		NewApp(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags steer the paddle
	)

	_, err := p.Run()
	return err
}
