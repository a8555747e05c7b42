package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/moonsim/internal/cycle"
	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/physics"
)

const (
	canvasWidth     = 48
	canvasHeight    = 20
	historyCapacity = 600
	trailCapacity   = 64
	maxSpeed        = 4096
)

type TickMsg time.Time

type point struct{ x, y int64 }

// Model steps a copy of the initial state on every tick and tracks when each
// axis returns to its starting configuration.
type Model struct {
	moons    *physics.Moons
	initial  dynamo.State
	state    dynamo.State
	step     int64
	speed    int64
	running  bool
	detector *cycle.Detector
	canvas   *Canvas
	extent   int64
	trails   [][]point
	energy   []float64
	name     string
}

func NewModel(x0 dynamo.State, name string) Model {
	m := Model{
		moons:   physics.NewMoons(),
		initial: x0.Clone(),
		speed:   1,
		running: true,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		name:    name,
	}
	m.reset()
	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			m.running = !m.running
		case "r":
			m.reset()
		case "+", "=":
			m.speed = min(m.speed*2, maxSpeed)
		case "-", "_":
			m.speed = max(m.speed/2, 1)
		}
	case TickMsg:
		if m.running {
			for i := int64(0); i < m.speed; i++ {
				m.advance()
			}
		}
		return m, tick()
	}
	return m, nil
}

// Step is the current tick count.
func (m Model) Step() int64 { return m.step }

func (m *Model) reset() {
	m.state = m.initial.Clone()
	m.step = 0
	m.detector = cycle.NewDetector(m.initial)
	m.trails = make([][]point, len(m.initial))
	m.energy = m.energy[:0]
	m.extent = 1
	m.grow(m.state)
}

func (m *Model) advance() {
	m.moons.Step(m.state)
	m.step++
	m.detector.Observe(m.state, m.step)
	m.grow(m.state)

	for i, b := range m.state {
		m.trails[i] = append(m.trails[i], point{b.Pos[dynamo.X], b.Pos[dynamo.Y]})
		if len(m.trails[i]) > trailCapacity {
			m.trails[i] = m.trails[i][1:]
		}
	}

	m.energy = append(m.energy, float64(m.moons.Energy(m.state)))
	if len(m.energy) > historyCapacity {
		m.energy = m.energy[1:]
	}
}

// grow widens the plotted extent so every body stays on the canvas. It never
// shrinks, which keeps the picture from jittering.
func (m *Model) grow(x dynamo.State) {
	for _, b := range x {
		for _, a := range []dynamo.Axis{dynamo.X, dynamo.Y} {
			v := b.Pos[a]
			if v < 0 {
				v = -v
			}
			if v+1 > m.extent {
				m.extent = v + 1
			}
		}
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	for _, trail := range m.trails {
		for _, p := range trail {
			m.canvas.Plot(p.x, p.y, m.extent)
		}
	}
	for _, b := range m.state {
		m.canvas.Mark(b.Pos[dynamo.X], b.Pos[dynamo.Y], m.extent)
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := lipgloss.NewStyle().Padding(1, 2).Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(titleStyle.Render(strings.ToUpper(m.name)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s  x%d\n\n", status, m.speed))

	s.WriteString(row("Step", grouped(m.step)))
	energy := int64(0)
	if n := len(m.energy); n > 0 {
		energy = int64(m.energy[n-1])
	}
	s.WriteString(row("Energy", grouped(energy)))

	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\nRECURRENCE\n")
	for _, a := range dynamo.Axes {
		label := "  " + a.String()
		if rec := m.detector.Record(a); rec.Found {
			s.WriteString(labelStyle.Render(label) + foundStyle.Render(grouped(rec.Step)) + "\n")
		} else {
			s.WriteString(labelStyle.Render(label) + pendingStyle.Render("searching") + "\n")
		}
	}
	if period, err := m.detector.Period(); err == nil {
		s.WriteString(row("Period", grouped(period)))
	}

	s.WriteString("\n" + Separator(28) + "\n")
	s.WriteString(keyHintStyle.Render("SP:Pause R:Reset +/-:Speed Q:Quit"))

	statsView := panelStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
