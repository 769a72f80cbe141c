// Package engine runs the placement searches: bounded-retry stochastic
// positioning of object footprints inside a room, and the named relative
// placement policies built on top of it.
package engine

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/piwi3910/SceneForge/internal/geom"
	"github.com/piwi3910/SceneForge/internal/model"
)

// Session is the scene-scoped service behind every placement search. It
// owns the caller-seeded random generator, the engine settings, and the
// footprints committed by finished build attempts. The engine keeps no
// other state between calls.
//
// A session is not safe for concurrent use: exactly one build attempt
// should drive it at a time.
type Session struct {
	room      model.RoomDimensions
	settings  model.PlacementSettings
	rng       *rand.Rand
	log       *zap.Logger
	committed []model.Footprint
}

// NewSession creates a session for one room. Seed lifecycle belongs to
// the caller; pass rand.New(rand.NewSource(seed)) for reproducible
// builds.
func NewSession(room model.RoomDimensions, rng *rand.Rand, settings model.PlacementSettings) *Session {
	return &Session{
		room:     room,
		settings: settings,
		rng:      rng,
		log:      zap.NewNop(),
	}
}

// SetLogger installs a structured logger for placement diagnostics. The
// default is a no-op logger.
func (s *Session) SetLogger(log *zap.Logger) {
	if log != nil {
		s.log = log
	}
}

// Room returns the room this session places into.
func (s *Session) Room() model.RoomDimensions { return s.room }

// Settings returns the engine settings in effect.
func (s *Session) Settings() model.PlacementSettings { return s.settings }

// Footprints returns the footprints committed so far.
func (s *Session) Footprints() []model.Footprint {
	out := make([]model.Footprint, len(s.committed))
	copy(out, s.committed)
	return out
}

// Reset discards all committed footprints, readying the session for a
// fresh scene build.
func (s *Session) Reset() {
	s.committed = nil
}

// performerFootprint builds the fixed square the performer occupies.
func (s *Session) performerFootprint(position model.Vector3) model.Footprint {
	return geom.PerformerFootprint(position, s.settings.PerformerHalfWidth, s.settings.PerformerHeight)
}

// fits runs the acceptance checks shared by every placement policy:
// room containment, no collision with the performer, no collision with
// any prior footprint.
func (s *Session) fits(candidate, performer model.Footprint, prior []model.Footprint) bool {
	if !geom.WithinRoom(candidate, s.room) {
		return false
	}
	if geom.SATEntry(candidate, performer) {
		return false
	}
	for _, other := range prior {
		if geom.SATEntry(candidate, other) {
			return false
		}
	}
	return true
}
