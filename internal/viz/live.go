package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wavelab/internal/config"
	"github.com/san-kum/wavelab/internal/sim"
)

const historyCapacity = 300

type TickMsg time.Time

// Model is the bubbletea program driving the live wave view. Each tick
// advances the simulation one step and redraws the heatmap.
type Model struct {
	cfg        *config.Config
	driver     *sim.Driver
	heatmap    Heatmap
	frame      sim.Snapshot
	ampHistory []float64
	running    bool
	fps        int
	err        error
}

func NewModel(cfg *config.Config, fps int) (Model, error) {
	driver, err := sim.New(cfg)
	if err != nil {
		return Model{}, err
	}
	if fps <= 0 {
		fps = 30
	}
	return Model{
		cfg:        cfg,
		driver:     driver,
		heatmap:    NewHeatmap(),
		frame:      driver.Snapshot(),
		ampHistory: make([]float64, 0, historyCapacity),
		running:    true,
		fps:        fps,
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
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
			m.driver.Reset()
			m.frame = m.driver.Snapshot()
			m.ampHistory = m.ampHistory[:0]
			m.err = nil
			m.running = true
		}
	case TickMsg:
		if m.running && !m.driver.Done() && m.err == nil {
			if err := m.driver.StepOnce(); err != nil {
				m.err = err
				m.running = false
			}
			m.frame = m.driver.Snapshot()
			m.ampHistory = append(m.ampHistory, m.frame.MaxAbs())
			if len(m.ampHistory) > historyCapacity {
				m.ampHistory = m.ampHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("WAVELAB") + "\n")

	status := "RUNNING"
	switch {
	case m.err != nil:
		status = fmt.Sprintf("UNSTABLE: %v", m.err)
	case m.driver.Done():
		status = "DONE"
	case !m.running:
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	cf := m.driver.Coeffs()
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d / %d", m.frame.Step, m.driver.Steps())) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.4g s", m.frame.Time)) + "\n")
	s.WriteString(labelStyle.Render("Dt") + valueStyle.Render(fmt.Sprintf("%.4g s", cf.Dt)) + "\n")
	s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%d x %d", cf.Nx, cf.Ny)) + "\n")
	s.WriteString(labelStyle.Render("Max |u|") + valueStyle.Render(fmt.Sprintf("%.4f", m.frame.MaxAbs())) + "\n")

	if len(m.ampHistory) > 1 {
		chart := asciigraph.Plot(m.ampHistory,
			asciigraph.Height(5),
			asciigraph.Width(32),
			asciigraph.Caption("max |u|"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause  R:Reset  Q:Quit"))

	frameView := frameStyle.Render(m.heatmap.Render(m.frame))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, frameView, statsView)
}
