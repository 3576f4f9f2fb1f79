package session

import (
	"math/rand/v2"

	"github.com/ayoisaiah/slumber/internal/config"
)

const (
	MinQuality = 60
	MaxQuality = 100
)

// Scorer assigns a quality score to a session when it is saved. Scores
// outside [MinQuality, MaxQuality] are clamped by the recorder.
type Scorer interface {
	Score(startTime, endTime int64) int
}

// RandomScorer draws a uniform score from [MinQuality, MaxQuality].
type RandomScorer struct{}

func (RandomScorer) Score(_, _ int64) int {
	return MinQuality + rand.IntN(MaxQuality-MinQuality+1)
}

// FixedScorer always returns the same score.
type FixedScorer int

func (f FixedScorer) Score(_, _ int64) int {
	return int(f)
}

// NewScorer returns the scorer selected in the settings.
func NewScorer(s config.SettingsConfig) (Scorer, error) {
	switch s.QualityScorer {
	case config.ScorerRandom, "":
		return RandomScorer{}, nil
	case config.ScorerFixed:
		return FixedScorer(s.FixedQuality), nil
	default:
		return nil, errUnknownScorer.Fmt(s.QualityScorer)
	}
}

func clampQuality(q int) int {
	return min(max(q, MinQuality), MaxQuality)
}
