package timer

import (
	"fmt"
	"strings"

	"github.com/ayoisaiah/slumber/internal/models"
	"github.com/ayoisaiah/slumber/internal/timeutil"
)

func (m *Model) statusView() string {
	s := m.timer.State()

	switch s.Status {
	case models.Running:
		since := timeutil.FromMillis(*s.StartTime).Format(m.clock)

		return m.styles.running.Render("Sleeping") +
			m.styles.hint.Render(" since "+since)
	case models.Stopped:
		from := timeutil.FromMillis(*s.StartTime).Format(m.clock)
		to := timeutil.FromMillis(*s.EndTime).Format(m.clock)

		return m.styles.stopped.Render("Awake") +
			m.styles.hint.Render(fmt.Sprintf(" %s - %s", from, to))
	default:
		return m.styles.idle.Render("Ready to sleep")
	}
}

func (m *Model) moodView() string {
	selected := m.picker.Selected()

	moods := m.picker.Catalog()
	items := make([]string, len(moods))

	for i, mood := range moods {
		item := fmt.Sprintf("%d %s", i+1, mood.String())

		if selected != nil && selected.Label == mood.Label {
			item = m.styles.selected.Render(item)
		}

		items[i] = item
	}

	return strings.Join(items, "  ")
}

func (m *Model) View() string {
	var s strings.Builder

	status := m.timer.Status()

	s.WriteString(m.styles.title.Render("How are you feeling today?"))
	s.WriteString("\n\n" + m.statusView())
	s.WriteString("\n\n" + m.styles.clock.Render(
		timeutil.FormatDuration(m.timer.Elapsed(m.now())),
	))

	if status == models.Stopped {
		s.WriteString("\n\n" + m.moodView())

		if m.editing || m.notes.Value() != "" {
			s.WriteString("\n\n" + m.notes.View())
		}
	}

	if m.notice != "" {
		s.WriteString("\n\n" + m.styles.hint.Render(m.notice))
	}

	if m.err != nil {
		s.WriteString("\n\n" + m.styles.err.Render(m.err.Error()))
	}

	s.WriteString("\n\n" + m.help.ShortHelpView(m.keys.bindings(status)))

	return m.styles.base.Render(s.String())
}
