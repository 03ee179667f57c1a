package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dcf21/astrolabe/pkg/observability"
	"github.com/dcf21/astrolabe/pkg/sweep"
)

// =============================================================================
// Sweep Progress Model
// =============================================================================

// Messages sent into the model while a sweep runs in the background.
type (
	latitudeStartMsg struct{ latitude float64 }
	latitudeDoneMsg  struct {
		latitude  float64
		artifacts int
	}
	latitudeSkipMsg struct{ latitude float64 }
	sweepDoneMsg    struct {
		result *sweep.Result
		err    error
	}
	tickMsg time.Time
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SweepModel is the bubbletea model showing live sweep progress.
type SweepModel struct {
	Total int

	done      int
	skipped   int
	artifacts int
	current   float64
	running   bool
	frame     int

	result *sweep.Result
	err    error
}

// NewSweepModel creates a progress model for a sweep over total latitudes.
func NewSweepModel(total int) SweepModel {
	return SweepModel{Total: total}
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m SweepModel) Init() tea.Cmd {
	return tick()
}

func (m SweepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		m.frame++
		return m, tick()
	case latitudeStartMsg:
		m.current = msg.latitude
		m.running = true
	case latitudeDoneMsg:
		m.done++
		m.artifacts += msg.artifacts
	case latitudeSkipMsg:
		m.done++
		m.skipped++
	case sweepDoneMsg:
		m.result = msg.result
		m.err = msg.err
		m.running = false
		return m, tea.Quit
	}
	return m, nil
}

func (m SweepModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Latitude Sweep"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q to abort"))
	b.WriteString("\n\n")

	b.WriteString("  ")
	if m.running {
		b.WriteString(styleIconSpinner.Render(spinnerFrames[m.frame%len(spinnerFrames)]))
		b.WriteString(StyleDim.Render(fmt.Sprintf(" latitude %g", m.current)))
	} else {
		b.WriteString(StyleDim.Render("finishing"))
	}
	b.WriteString("\n\n")

	b.WriteString("  " + m.progressBar(30))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d/%d", m.done, m.Total)))
	b.WriteString("\n\n")

	b.WriteString("  " + StyleDim.Render(fmt.Sprintf("%d artifacts", m.artifacts)))
	if m.skipped > 0 {
		b.WriteString(StyleDim.Render(" · "))
		b.WriteString(StyleWarning.Render(fmt.Sprintf("%d skipped", m.skipped)))
	}
	b.WriteString("\n")

	return b.String()
}

// progressBar renders a fixed-width bar of filled and empty cells.
func (m SweepModel) progressBar(width int) string {
	filled := 0
	if m.Total > 0 {
		filled = m.done * width / m.Total
	}
	if filled > width {
		filled = width
	}
	bar := lipgloss.NewStyle().Foreground(colorCyan).Render(strings.Repeat("█", filled))
	rest := StyleDim.Render(strings.Repeat("░", width-filled))
	return bar + rest
}

// =============================================================================
// Hook Bridge
// =============================================================================

// teaSweepHooks forwards sweep events into a running bubbletea program.
type teaSweepHooks struct {
	observability.NoopSweepHooks
	program *tea.Program
}

func (h *teaSweepHooks) OnLatitudeStart(_ context.Context, latitude float64) {
	h.program.Send(latitudeStartMsg{latitude: latitude})
}

func (h *teaSweepHooks) OnLatitudeComplete(_ context.Context, latitude float64, artifacts int, _ time.Duration) {
	h.program.Send(latitudeDoneMsg{latitude: latitude, artifacts: artifacts})
}

func (h *teaSweepHooks) OnLatitudeSkipped(_ context.Context, latitude float64, _ string) {
	h.program.Send(latitudeSkipMsg{latitude: latitude})
}

// runSweepTUI executes the sweep behind a live progress display and returns
// its result once the program exits.
func runSweepTUI(ctx context.Context, runner *sweep.Runner, opts sweep.Options) (*sweep.Result, error) {
	model := NewSweepModel(len(sweep.Latitudes(opts.Config.Sweep)))
	if opts.Latitudes != nil {
		model.Total = len(opts.Latitudes)
	}

	program := tea.NewProgram(model, tea.WithContext(ctx))

	observability.SetSweepHooks(&teaSweepHooks{program: program})
	defer observability.Reset()

	go func() {
		result, err := runner.Run(ctx, opts)
		program.Send(sweepDoneMsg{result: result, err: err})
	}()

	final, err := program.Run()
	if err != nil {
		return nil, err
	}

	m := final.(SweepModel)
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return nil, context.Canceled // user quit before the sweep finished
	}
	return m.result, nil
}
