// Package viz renders the pendulum wave in a terminal: a Bubble Tea event
// loop driving the scene runner, a braille canvas for the row itself and
// an asciigraph strip tracking the slowest pendulum's phase.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pendwave/internal/config"
	"github.com/san-kum/pendwave/internal/scene"
	"github.com/san-kum/pendwave/internal/wave"
)

const (
	canvasWidth  = 90
	canvasHeight = 22
	frameRate    = 30
	historyCap   = 240
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 2, 0, 2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// TickMsg paces the frame loop.
type TickMsg time.Time

// Model owns the scene for the lifetime of the terminal session.
type Model struct {
	runner    *scene.Runner
	canvas    *Canvas
	angles    []float64 // slowest oscillator's angle history
	lastFrame time.Time
}

// NewModel builds the field from the configuration and wraps it in a
// terminal frontend. Fails only on invalid configuration.
func NewModel(cfg *config.Config) (Model, error) {
	field, err := wave.NewField(cfg.Tuning())
	if err != nil {
		return Model{}, err
	}
	return Model{
		runner: scene.New(field),
		canvas: NewCanvas(canvasWidth, canvasHeight),
		angles: make([]float64, 0, historyCap),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update translates terminal input into scene events and steps the
// simulation once per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.runner.Handle(scene.Quit{})
			return m, tea.Quit
		case " ":
			m.runner.Handle(scene.TogglePause{})
		case "r":
			m.runner.Handle(scene.Reset{})
		case "up", "right", "k", "l":
			m.runner.Handle(scene.SpeedUp{})
		case "down", "left", "j", "h":
			m.runner.Handle(scene.SpeedDown{})
		}
	case TickMsg:
		now := time.Time(msg)
		dt := time.Second / frameRate
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		m.lastFrame = now

		m.runner.Step(dt.Seconds())

		if osc := m.runner.Field().Oscillators; len(osc) > 0 {
			m.angles = append(m.angles, osc[0].CurrentAngle)
			if len(m.angles) > historyCap {
				m.angles = m.angles[1:]
			}
		}
		return m, tick()
	}
	return m, nil
}

// View draws the frame: the runner renders onto the braille canvas, then
// status, phase strip and key help are laid out below it.
func (m Model) View() string {
	m.canvas.Clear()
	m.runner.Render(&canvasRenderer{
		canvas: m.canvas,
		tuning: m.runner.Field().Tuning,
	})

	var s strings.Builder
	s.WriteString(headerStyle.Render("PENDULUM WAVE") + "\n\n")
	s.WriteString(canvasStyle.Render(m.canvas.String()) + "\n")

	ck := m.runner.Clock()
	status := valueStyle.Render("running")
	if ck.Paused() {
		status = pausedStyle.Render("PAUSED")
	}
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", ck.Total())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2fx", ck.TimeScale())) + "\n")
	s.WriteString(labelStyle.Render("State") + status + "\n")

	if len(m.angles) > 1 {
		chart := asciigraph.Plot(m.angles,
			asciigraph.Height(4),
			asciigraph.Width(60),
			asciigraph.Caption("slowest pendulum angle (rad)"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("space pause · r reset · ←/→ speed · q quit"))
	return s.String()
}

// canvasRenderer projects screen-space geometry onto braille sub-pixels.
type canvasRenderer struct {
	canvas *Canvas
	tuning wave.Tuning
}

func (r *canvasRenderer) scale() (sx, sy float64) {
	return float64(r.canvas.Width*2) / r.tuning.ScreenWidth,
		float64(r.canvas.Height*4) / r.tuning.ScreenHeight
}

func (r *canvasRenderer) DrawPivot(center wave.Vec2, radius float64, _ wave.RGB) {
	sx, sy := r.scale()
	r.canvas.FillCircle(int(center.X*sx), int(center.Y*sy), int(radius*sy))
}

func (r *canvasRenderer) DrawString(from, to wave.Vec2, _ wave.RGB) {
	sx, sy := r.scale()
	r.canvas.DrawLine(int(from.X*sx), int(from.Y*sy), int(to.X*sx), int(to.Y*sy))
}

func (r *canvasRenderer) DrawBob(center wave.Vec2, radius float64, _ wave.RGB) {
	sx, sy := r.scale()
	r.canvas.FillCircle(int(center.X*sx), int(center.Y*sy), int(radius*sy))
}
