package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/starfield/internal/config"
	"github.com/san-kum/starfield/internal/field"
)

const (
	canvasWidth  = 80 // cells; sub-pixel space is 160x96
	canvasHeight = 24
	historyCap   = 240
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).Width(38)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives the spiral in a terminal: the same world and renderer as the
// GUI, rasterized onto a braille canvas at 60 ticks per second.
type Model struct {
	world   *field.World
	bounds  field.Bounds
	opts    field.Options
	canvas  *Canvas
	history []float64
	running bool
}

func NewModel(cfg *config.Config) (Model, error) {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return Model{}, err
	}
	return Model{
		world: field.NewWorld(cfg.FieldParams()),
		// World units map 1:1 onto braille sub-pixels.
		bounds:  field.CenteredBounds(canvasWidth*2, canvasHeight*4),
		opts:    opts,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		history: make([]float64, 0, historyCap),
		running: true,
	}, nil
}

// Run blocks in the terminal view until the user quits.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "p":
			if m.opts.Mode == field.ModeLines {
				m.opts.Mode = field.ModePoints
			} else {
				m.opts.Mode = field.ModeLines
			}
		case "l":
			m.opts.Primary = !m.opts.Primary
		case "n":
			m.opts.Secondary = !m.opts.Secondary
		case "c":
			m.opts.Static = !m.opts.Static
		}
	case TickMsg:
		if m.running {
			m.world.Advance(m.bounds)
		}
		m.history = append(m.history, float64(len(m.world.Stars)))
		if len(m.history) > historyCap {
			m.history = m.history[1:]
		}
		m.draw()
		return m, tickCmd()
	}
	return m, nil
}

// draw rasterizes the current primitive list onto the braille canvas.
func (m Model) draw() {
	m.canvas.Clear()
	prims := field.Render(m.world.Stars, m.world.Now(), m.opts)
	for _, p := range prims {
		if p.Kind == field.KindCircle {
			x, y := m.project(p.Center)
			m.canvas.Dot(x, y)
			continue
		}
		x0, y0 := m.project(p.From)
		x1, y1 := m.project(p.To)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}
}

// project maps origin-centered world coordinates to sub-pixel canvas
// coordinates with y growing downward.
func (m Model) project(v field.Vec2) (int, int) {
	return int(v.X) + canvasWidth, int(v.Y) + canvasHeight*2
}

func (m Model) View() string {
	stats := m.statsView()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats),
	)
}

func (m Model) statsView() string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}

	s := headerStyle.Render("starfield") + "\n"
	s += row("stars", fmt.Sprintf("%d", len(m.world.Stars)))
	s += row("spawned", fmt.Sprintf("%d", m.world.Spawned))
	s += row("sim time", fmt.Sprintf("%.1fs", m.world.Now()))
	s += row("angle", fmt.Sprintf("%.3f rad", m.world.Angle))
	s += row("angle vel", fmt.Sprintf("%.4f rad/tick", m.world.AngleVel))
	s += row("mode", modeName(m.opts))

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(28),
			asciigraph.Caption("stars retained"),
		)
		s += graphStyle.Render(graph)
	}

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s += "\n" + valueStyle.Render(status)
	s += helpStyle.Render("\n[space] pause  [p] points/lines\n[l] primary  [n] secondary\n[c] color mode  [q] quit")
	return s
}

func modeName(opts field.Options) string {
	if opts.Mode == field.ModePoints {
		return "points"
	}
	name := "lines"
	if opts.Secondary {
		name += "+2nd"
	}
	return name
}
