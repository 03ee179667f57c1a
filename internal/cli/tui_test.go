package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestSweepModelCountsProgress(t *testing.T) {
	var m tea.Model = NewSweepModel(10)

	m, _ = m.Update(latitudeStartMsg{latitude: 30})
	m, _ = m.Update(latitudeDoneMsg{latitude: 30, artifacts: 5})
	m, _ = m.Update(latitudeSkipMsg{latitude: 0})

	sm := m.(SweepModel)
	assert.Equal(t, 2, sm.done)
	assert.Equal(t, 1, sm.skipped)
	assert.Equal(t, 5, sm.artifacts)
}

func TestSweepModelQuitsWhenDone(t *testing.T) {
	var m tea.Model = NewSweepModel(1)

	m, cmd := m.Update(sweepDoneMsg{})
	assert.NotNil(t, cmd, "sweep completion should quit the program")

	sm := m.(SweepModel)
	assert.False(t, sm.running)
}

func TestSweepModelView(t *testing.T) {
	var m tea.Model = NewSweepModel(4)
	m, _ = m.Update(latitudeStartMsg{latitude: 52})
	m, _ = m.Update(latitudeDoneMsg{latitude: 52, artifacts: 5})

	view := m.(SweepModel).View()
	assert.True(t, strings.Contains(view, "1/4"))
	assert.True(t, strings.Contains(view, "5 artifacts"))
	assert.True(t, strings.Contains(view, "latitude 52"))
}

func TestSweepModelBarNeverOverflows(t *testing.T) {
	m := NewSweepModel(2)
	m.done = 5 // more events than expected must not panic the bar

	assert.NotPanics(t, func() { _ = m.progressBar(10) })
}
