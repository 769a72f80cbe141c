package engine

import "github.com/piwi3910/SceneForge/internal/model"

// Attempt is the per-scene-build accumulator of accepted footprints.
// Each successful placement appends to it; the orchestration layer
// discards the whole attempt on failure or commits it on success
// (arena-style ownership). The footprints committed by earlier attempts
// are included as constraints from the start.
type Attempt struct {
	footprints []model.Footprint
	base       int
}

// NewAttempt starts a build attempt constrained by everything already
// committed to the session.
func (s *Session) NewAttempt() *Attempt {
	base := make([]model.Footprint, len(s.committed))
	copy(base, s.committed)
	return &Attempt{footprints: base, base: len(base)}
}

// Add appends an accepted footprint. Placement searches call this on
// success; callers placing footprints by other means may add them here
// to constrain subsequent searches.
func (a *Attempt) Add(f model.Footprint) {
	a.footprints = append(a.footprints, f)
}

// Footprints returns every constraint footprint in acceptance order,
// committed ones first.
func (a *Attempt) Footprints() []model.Footprint {
	return a.footprints
}

// Placed returns only the footprints accepted during this attempt.
func (a *Attempt) Placed() []model.Footprint {
	return a.footprints[a.base:]
}

// Reset drops the attempt's own placements, keeping the committed
// constraints.
func (a *Attempt) Reset() {
	a.footprints = a.footprints[:a.base]
}

// Commit merges a finished attempt's placements into the session state.
func (s *Session) Commit(a *Attempt) {
	s.committed = append(s.committed, a.Placed()...)
}
