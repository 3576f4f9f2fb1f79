package timer

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/slumber/internal/models"
)

// notify returns a command that runs the store-free hooks off the update
// loop. Quitting before it finishes loses nothing that was persisted.
func (m *Model) notify(sess models.SleepSession) tea.Cmd {
	hooks := m.hooks

	return func() tea.Msg {
		return savedMsg{sess: sess, err: hooks.Notify(&sess)}
	}
}

func (m *Model) handleStart() tea.Cmd {
	started, err := m.timer.Start(m.now())
	if err != nil {
		m.err = err
		return nil
	}

	if !started {
		m.notice = "The timer is already running"
		return nil
	}

	m.gen++
	m.notice = ""

	return m.tick()
}

func (m *Model) handleStop() {
	stopped, err := m.timer.Stop(m.now())
	if err != nil {
		m.err = err
		return
	}

	if !stopped {
		m.notice = "The timer is not running"
		return
	}

	// invalidate the pending tick
	m.gen++
	m.notice = "Pick a mood and press enter to save"
}

func (m *Model) handleSave() tea.Cmd {
	sess, err := m.timer.Save(m.picker.Selected(), m.notes.Value())
	if err != nil {
		m.err = err
		return nil
	}

	m.picker.Clear()
	m.notes.SetValue("")
	m.notice = "Saved " + sess.Duration + " of sleep"

	// the log entry goes through the store, which closes on quit
	if err := m.hooks.Record(&sess); err != nil {
		m.err = err
	}

	return m.notify(sess)
}

func (m *Model) handleDiscard() {
	discarded, err := m.timer.Discard()
	if err != nil {
		m.err = err
		return
	}

	if discarded {
		m.gen++
		m.picker.Clear()
		m.notice = "Session discarded"
	}
}

func (m *Model) handleNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.save):
		m.editing = false
		m.notes.Blur()

		return m, nil
	case key.Matches(msg, m.keys.cancel):
		m.editing = false
		m.notes.Blur()
		m.notes.Reset()

		return m, nil
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)

	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleNotes(msg)
	}

	m.err = nil

	switch {
	case key.Matches(msg, m.keys.quit):
		m.gen++
		return m, tea.Quit

	case key.Matches(msg, m.keys.start):
		return m, m.handleStart()

	case key.Matches(msg, m.keys.stop):
		m.handleStop()

	case key.Matches(msg, m.keys.mood):
		i, _ := strconv.Atoi(msg.String())

		_, err := m.picker.SelectIndex(i)
		if err != nil {
			m.err = err
		}

	case key.Matches(msg, m.keys.notes):
		m.editing = true
		return m, m.notes.Focus()

	case key.Matches(msg, m.keys.save):
		return m, m.handleSave()

	case key.Matches(msg, m.keys.discard):
		m.handleDiscard()
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	slog.Debug(spew.Sdump(msg))

	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != m.gen || m.timer.Status() != models.Running {
			return m, nil
		}

		return m, m.tick()

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = min(msg.Width-padding*2, maxWidth)

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}
