// Package mood implements single-select mood picking over a mood catalog
package mood

import (
	"strings"

	"github.com/ayoisaiah/slumber/internal/apperr"
	"github.com/ayoisaiah/slumber/internal/models"
)

var (
	errUnknownMood = &apperr.Error{
		Message: "unknown mood: %s",
	}

	errMoodIndex = &apperr.Error{
		Message: "mood %d is out of range (1-%d)",
	}
)

// ErrUnknownMood is returned when a selection is not in the catalog.
var ErrUnknownMood error = errUnknownMood

// Picker holds an ordered mood catalog and the current selection.
type Picker struct {
	selected *models.Mood
	catalog  []models.Mood
}

// NewPicker returns a picker over catalog with an optional initial
// selection. An initial mood that is not in the catalog is ignored.
func NewPicker(catalog []models.Mood, initial *models.Mood) *Picker {
	p := &Picker{
		catalog: append([]models.Mood(nil), catalog...),
	}

	if initial != nil {
		_, _ = p.Select(initial.Label)
	}

	return p
}

// Catalog returns a copy of the mood catalog.
func (p *Picker) Catalog() []models.Mood {
	return append([]models.Mood(nil), p.catalog...)
}

// Selected returns the current selection, or nil.
func (p *Picker) Selected() *models.Mood {
	if p.selected == nil {
		return nil
	}

	m := *p.selected

	return &m
}

// Select replaces the current selection with the mood whose label matches,
// ignoring case, and returns it.
func (p *Picker) Select(label string) (models.Mood, error) {
	label = strings.TrimSpace(label)

	for i := range p.catalog {
		if strings.EqualFold(p.catalog[i].Label, label) {
			m := p.catalog[i]
			p.selected = &m

			return m, nil
		}
	}

	return models.Mood{}, errUnknownMood.Fmt(label)
}

// SelectIndex selects the mood at the 1-based position i.
func (p *Picker) SelectIndex(i int) (models.Mood, error) {
	if i < 1 || i > len(p.catalog) {
		return models.Mood{}, errMoodIndex.Fmt(i, len(p.catalog))
	}

	m := p.catalog[i-1]
	p.selected = &m

	return m, nil
}

// Clear removes the current selection.
func (p *Picker) Clear() {
	p.selected = nil
}
