package mood

import (
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/slumber/internal/models"
)

const noMood = -1

// Prompt asks the user to pick a mood and enter notes. A nil mood means the
// user chose not to record one.
func Prompt(p *Picker, notes string) (*models.Mood, string, error) {
	choice := noMood

	options := []huh.Option[int]{
		huh.NewOption("No mood", noMood),
	}

	current := p.Selected()

	for i, m := range p.Catalog() {
		opt := huh.NewOption(m.String(), i+1)

		if current != nil && current.Label == m.Label {
			opt = opt.Selected(true)
			choice = i + 1
		}

		options = append(options, opt)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How are you feeling today?").
				Options(options...).
				Value(&choice),
			huh.NewText().
				Title("Notes").
				Value(&notes),
		),
	)

	if err := form.Run(); err != nil {
		return nil, "", err
	}

	if choice == noMood {
		p.Clear()
		return nil, notes, nil
	}

	m, err := p.SelectIndex(choice)
	if err != nil {
		return nil, "", err
	}

	return &m, notes, nil
}
