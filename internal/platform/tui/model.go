package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// noticeDuration is how long pickup and achievement notices stay on screen.
const noticeDuration = 2500 * time.Millisecond

// presenterState implements runner.Presenter for the terminal UI. The
// simulation pushes into it during Tick; View reads it when drawing overlays.
type presenterState struct {
	notice   string
	noticeAt time.Time
	summary  *runner.Summary
}

func (p *presenterState) Notify(text string) {
	p.notice = text
	p.noticeAt = time.Now()
}

func (p *presenterState) GameOver(s runner.Summary) {
	p.summary = &s
}

func (p *presenterState) reset() {
	p.notice = ""
	p.summary = nil
}

// Model is the Bubble Tea model driving one runner game.
type Model struct {
	game      *runner.Game
	screen    *core.Screen
	presenter *presenterState
	config    core.RuntimeConfig
	input     core.InputFrame
	state     core.GameState
	lastTick  time.Time
	quitting  bool
}

// NewModel creates the model for the given game.
func NewModel(game *runner.Game, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	presenter := &presenterState{}
	game.SetPresenter(presenter)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		presenter: presenter,
		config:    cfg,
		input:     core.NewInputFrame(),
	}
}

// Init starts the run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world-to-cell viewport rescales every frame, so a resize only
		// needs a bigger buffer; the run keeps going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key press to an intent for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := mapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step with the real elapsed delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionRestart) && m.state.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.presenter.reset()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.input.Clear()
		m.lastTick = now
		return m, tickCmd(m.config.TickRate)
	}

	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	result := m.game.Tick(dt, m.input)
	m.state = result.State

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the frame plus the notice and game-over overlays.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawNotice()
	if m.presenter.summary != nil {
		m.drawGameOver(*m.presenter.summary)
	}

	return RenderScreen(m.screen)
}

// drawNotice shows the most recent pickup or achievement notice while fresh.
func (m Model) drawNotice() {
	p := m.presenter
	if p.notice == "" || time.Since(p.noticeAt) > noticeDuration {
		return
	}
	x := (m.screen.Width() - len(p.notice)) / 2
	m.screen.DrawTextColored(x, 2, p.notice, core.ColorBrightYellow)
}

// drawGameOver paints the end-of-run box over the frozen frame.
func (m Model) drawGameOver(s runner.Summary) {
	w, h := 34, 9
	box := core.NewRect((m.screen.Width()-w)/2, (m.screen.Height()-h)/2, w, h)

	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box)

	line := func(row int, text string, c core.Color) {
		x := box.X + (w-len(text))/2
		m.screen.DrawTextColored(x, box.Y+row, text, c)
	}

	line(1, "GAME OVER", core.ColorBrightRed)
	line(3, fmt.Sprintf("Score %d   Coins %d", s.Score, s.Coins), core.ColorBrightWhite)
	if s.NewRecord {
		line(4, "NEW RECORD!", core.ColorBrightYellow)
	} else {
		line(4, fmt.Sprintf("Best %d", s.Best), core.ColorGray)
	}
	line(6, "R restart   Q quit", core.ColorGray)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game *runner.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
