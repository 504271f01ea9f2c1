package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arena-planner/internal/core"
)

const (
	minSpeed = 0.25
	maxSpeed = 8.0
)

// PlaybackOptions controls how fast a run is shown.
type PlaybackOptions struct {
	FPS   int     // redraws per second
	Speed float64 // simulated seconds per wall-clock second
}

// Model is the Bubble Tea model that replays a simulated run.
type Model struct {
	playback Playback
	opts     PlaybackOptions
	screen   *core.Screen
	keys     PlaybackKeyMap
	help     help.Model
	elapsed  time.Duration // simulated playback time
	paused   bool
	quitting bool
}

// NewModel creates a playback model sized to the terminal.
func NewModel(pb Playback, opts PlaybackOptions, width, height int) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Speed <= 0 {
		opts.Speed = 1
	}

	return Model{
		playback: pb,
		opts:     opts,
		screen:   core.NewScreen(width, core.Max(height-1, 1)),
		keys:     DefaultPlaybackKeyMap(),
		help:     help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Restart):
		m.elapsed = 0
		m.paused = false

	case key.Matches(msg, m.keys.Faster):
		m.opts.Speed = min(m.opts.Speed*2, maxSpeed)

	case key.Matches(msg, m.keys.Slower):
		m.opts.Speed = max(m.opts.Speed/2, minSpeed)
	}

	return m, nil
}

// handleTick advances playback time unless paused or already at the end.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.Finished() {
		step := time.Duration(float64(frameInterval(m.opts.FPS)) * m.opts.Speed)
		m.elapsed += step
	}
	return m, tickCmd(m.opts.FPS)
}

// Frame returns the frame currently on screen, or -1 for an empty run.
func (m Model) Frame() int {
	return m.playback.Result.FrameIndex(m.elapsed, m.playback.AnimationRate)
}

// Finished reports whether the last frame has been reached.
func (m Model) Finished() bool {
	return m.playback.Result.Finished(m.elapsed, m.playback.AnimationRate)
}

// Paused reports whether playback is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Speed returns the current playback speed multiplier.
func (m Model) Speed() float64 {
	return m.opts.Speed
}

// View renders the current frame followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, &m.playback, m.Frame(), m.opts.Speed, m.paused)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a playback.
func Run(pb Playback, opts PlaybackOptions, width, height int) error {
	model := NewModel(pb, opts, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
