package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/force"
	"github.com/celmech/gravsim/internal/integrators"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
	maxTrailLen     = 400
	stepsPerTick    = 8
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model is the bubbletea model for the live N-body view. It steps the
// system itself between ticks instead of replaying a recorded run.
type Model struct {
	sys     *body.System
	initial *body.System
	force   force.Model
	integ   integrators.Integrator

	t, dt    float64
	g, eps   float64
	running  bool
	title    string
	zoom     float64
	autoFit  bool
	viewport Viewport

	canvas        *Canvas
	trails        [][]struct{ x, y int }
	showTrails    bool
	energyHistory []float64
}

func NewModel(sys *body.System, f force.Model, integ integrators.Integrator, dt, g, eps float64, title string) Model {
	return Model{
		sys:           sys,
		initial:       sys.Clone(),
		force:         f,
		integ:         integ,
		dt:            dt,
		g:             g,
		eps:           eps,
		running:       true,
		title:         title,
		zoom:          1,
		autoFit:       true,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		trails:        make([][]struct{ x, y int }, sys.N()),
		showTrails:    true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			m.showTrails = !m.showTrails
			if !m.showTrails {
				m.clearTrails()
			}
		case "f":
			m.autoFit = !m.autoFit
		case "+", "=":
			m.zoom *= 1.25
		case "-", "_":
			m.zoom /= 1.25
		case "[":
			m.dt /= 2
		case "]":
			m.dt *= 2
		}
	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerTick; i++ {
				m.step()
			}
		}
		m.draw()
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	m.integ.Step(m.sys, m.force, m.dt)
	m.t += m.dt

	m.energyHistory = append(m.energyHistory, m.sys.TotalEnergy(m.g, m.eps))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m *Model) reset() {
	m.sys = m.initial.Clone()
	m.t = 0
	m.energyHistory = m.energyHistory[:0]
	m.clearTrails()
}

func (m *Model) clearTrails() {
	for i := range m.trails {
		m.trails[i] = m.trails[i][:0]
	}
}

func (m *Model) draw() {
	m.canvas.Clear()

	if m.autoFit {
		m.viewport = FitViewport(m.sys.Positions(), m.canvas)
	}
	vp := m.viewport
	vp.Scale *= m.zoom

	for i, p := range m.sys.Positions() {
		x, y := vp.Project(p)

		if m.showTrails {
			m.trails[i] = append(m.trails[i], struct{ x, y int }{x, y})
			if len(m.trails[i]) > maxTrailLen {
				m.trails[i] = m.trails[i][1:]
			}
			for _, pt := range m.trails[i] {
				m.canvas.Set(pt.x, pt.y)
			}
		}

		m.canvas.SetDisc(x, y, 1)
	}
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.sys.N())) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%.3g", m.dt)) + "\n")
	s.WriteString(labelStyle.Render("Force") + valueStyle.Render(m.force.Name()) + "\n")
	s.WriteString(labelStyle.Render("Integrator") + valueStyle.Render(m.integ.Name()) + "\n")
	if len(m.energyHistory) > 0 {
		e := m.energyHistory[len(m.energyHistory)-1]
		s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4f", e)) + "\n")
	}

	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset Q:Quit\nT:Trails F:AutoFit +/-:Zoom [ ]:dt"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
