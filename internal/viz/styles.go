package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	frameStyle  = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	// One style per amplitude bucket, standard ANSI colors, plus the
	// near-zero dead zone rendered dim.
	bucketStyles = [NumBuckets]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		lipgloss.NewStyle().Foreground(lipgloss.Color("7")), // white
	}
	deadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
