package scoring

import (
	"maps"

	"github.com/spigell/careerfit/internal/career"
)

// Tally holds the accumulated points per axis value. A Tally is never
// modified after it is returned; Add produces a new one.
//
// Archetype points are collected but not used when selecting a profile.
type Tally struct {
	Stream    map[career.Stream]int    `json:"stream"`
	Branch    map[career.Branch]int    `json:"branch"`
	Trait     map[career.Trait]int     `json:"trait"`
	Archetype map[career.Archetype]int `json:"archetype"`
}

// NewTally returns an empty tally.
func NewTally() Tally {
	return Tally{
		Stream:    map[career.Stream]int{},
		Branch:    map[career.Branch]int{},
		Trait:     map[career.Trait]int{},
		Archetype: map[career.Archetype]int{},
	}
}

// Add returns a new tally with points*weight added for every axis value in
// the impact.
func (t Tally) Add(impact career.ScoreImpact, weight career.Weight) Tally {
	return Tally{
		Stream:    addAxis(t.Stream, impact.Stream, int(weight)),
		Branch:    addAxis(t.Branch, impact.Branch, int(weight)),
		Trait:     addAxis(t.Trait, impact.Trait, int(weight)),
		Archetype: addAxis(t.Archetype, impact.Archetype, int(weight)),
	}
}

func addAxis[K comparable](acc, points map[K]int, weight int) map[K]int {
	next := maps.Clone(acc)
	if next == nil {
		next = make(map[K]int, len(points))
	}
	for k, v := range points {
		next[k] += v * weight
	}
	return next
}

// ProfileScore is the selection score of a profile: stream points plus
// branch points.
func (t Tally) ProfileScore(p *career.Profile) int {
	return t.Stream[p.Stream] + t.Branch[p.Branch]
}

// DominantTrait returns the trait with the highest score. Ties go to the
// trait listed first in career.Traits. ok is false when no trait has been
// scored.
func (t Tally) DominantTrait() (trait career.Trait, ok bool) {
	best := 0
	for _, candidate := range career.Traits {
		score, scored := t.Trait[candidate]
		if !scored {
			continue
		}
		if !ok || score > best {
			trait, best, ok = candidate, score, true
		}
	}
	return trait, ok
}
