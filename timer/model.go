package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/slumber/internal/config"
	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/mood"
)

// tickMsg drives the elapsed clock. gen ties a tick to the run that
// scheduled it so that ticks from an earlier run are dropped.
type tickMsg struct {
	at  time.Time
	gen int
}

// savedMsg reports the outcome of the post-save hooks.
type savedMsg struct {
	err  error
	sess models.SleepSession
}

// Model is the interactive sleep logging screen.
type Model struct {
	timer  *Timer
	picker *mood.Picker
	hooks  *Hooks
	now    func() time.Time
	err    error
	styles styles
	notice string
	help   help.Model
	notes  textinput.Model
	keys   keymap
	gen    int
	clock  string
	// editing is true while the notes input has focus
	editing bool
}

// NewModel returns the logging screen for t.
func NewModel(
	t *Timer,
	picker *mood.Picker,
	hooks *Hooks,
	cfg *config.Config,
) *Model {
	notes := textinput.New()
	notes.Placeholder = "How did you sleep?"
	notes.CharLimit = 280
	notes.SetValue(cfg.CLI.Notes)

	clock := "03:04 PM"
	if cfg.Settings.TwentyFourHour {
		clock = "15:04"
	}

	return &Model{
		timer:  t,
		picker: picker,
		hooks:  hooks,
		now:    time.Now,
		styles: newStyles(cfg.Display.DarkTheme),
		help:   help.New(),
		notes:  notes,
		keys:   defaultKeymap,
		clock:  clock,
	}
}

// tick schedules the next clock update for the current run.
func (m *Model) tick() tea.Cmd {
	gen := m.gen

	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{at: t, gen: gen}
	})
}

func (m *Model) Init() tea.Cmd {
	if m.timer.Status() == models.Running {
		return m.tick()
	}

	return nil
}
