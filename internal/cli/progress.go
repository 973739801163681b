package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BeginPhase shows transient progress while a remote command runs. On
// a terminal this is an animated spinner with the phase label; the
// returned func removes it. Off-terminal it degrades to a single
// plain line.
func (p *Presenter) BeginPhase(label string) func() {
	if !p.tty {
		fmt.Fprintf(p.out, "%s...\n", label)
		return func() {}
	}

	prog := tea.NewProgram(
		newPhaseModel(label),
		tea.WithOutput(p.out),
		tea.WithoutSignalHandler(),
	)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		_, _ = prog.Run()
	}()

	return func() {
		prog.Quit()
		<-finished
	}
}

type phaseModel struct {
	spin  spinner.Model
	label string
}

func newPhaseModel(label string) phaseModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	return phaseModel{spin: s, label: label}
}

func (m phaseModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m phaseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(tick)
		return m, cmd
	}
	return m, nil
}

func (m phaseModel) View() string {
	return m.spin.View() + m.label
}
