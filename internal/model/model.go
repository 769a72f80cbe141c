// Package model defines the value types shared by the placement engine:
// object specs, footprints, poses, and room geometry. All geometry code
// consumes the normalized ObjectSpec produced here; raw catalog records
// are converted at this boundary and never travel further in.
package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ErrMissingDimensions reports an object spec without valid dimensions.
// It is fatal for the current scene-build attempt and is never retried
// by the engine itself.
var ErrMissingDimensions = errors.New("object spec is missing dimensions")

// Vector3 is a 3D point or extent in room coordinates (meters).
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vector2 is a point in the horizontal (x, z) plane.
type Vector2 struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// RoomDimensions holds the extents of the room. Placement is constrained
// to [-X/2, X/2] x [-Z/2, Z/2] on the floor plane.
type RoomDimensions struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PerformerPose is the simulated agent's position and rotation.
// Rotation.Y is in degrees, clockwise from north (+Z).
type PerformerPose struct {
	Position Vector3 `json:"position"`
	Rotation Vector3 `json:"rotation"`
}

// ObjectSpec is the normalized description of one object as the geometry
// code sees it: dimensions, horizontal offset of the footprint from the
// position, standing height, and intrinsic rotation.
type ObjectSpec struct {
	Dimensions Vector3 `json:"dimensions"`
	Offset     Vector2 `json:"offset"`
	PositionY  float64 `json:"position_y" yaml:"position_y"`
	Rotation   Vector3 `json:"rotation"`
}

// NewObjectSpec validates and builds a normalized spec. Every axis of
// Dimensions must be positive; anything else is ErrMissingDimensions.
func NewObjectSpec(dimensions Vector3, offset Vector2, positionY float64, rotation Vector3) (ObjectSpec, error) {
	if dimensions.X <= 0 || dimensions.Y <= 0 || dimensions.Z <= 0 {
		return ObjectSpec{}, fmt.Errorf("%w: %+v", ErrMissingDimensions, dimensions)
	}
	return ObjectSpec{
		Dimensions: dimensions,
		Offset:     offset,
		PositionY:  positionY,
		Rotation:   rotation,
	}, nil
}

// MinHalfDimension returns half the smaller horizontal dimension.
func (s ObjectSpec) MinHalfDimension() float64 {
	return math.Min(s.Dimensions.X, s.Dimensions.Z) / 2
}

// HalfDiagonal returns half the footprint diagonal.
func (s ObjectSpec) HalfDiagonal() float64 {
	return math.Hypot(s.Dimensions.X, s.Dimensions.Z) / 2
}

// Location is a successful placement: the chosen pose plus the footprint
// derived from it.
type Location struct {
	Position  Vector3   `json:"position"`
	Rotation  Vector3   `json:"rotation"`
	Footprint Footprint `json:"footprint"`
}

// EnclosedArea is a cavity inside a container-type object that may hold
// other objects. Position is relative to the container.
type EnclosedArea struct {
	Position   Vector3 `json:"position"`
	Dimensions Vector3 `json:"dimensions"`
}

// ObjectDefinition is a catalog entry for a placeable object. Containers
// declare zero or more enclosed areas.
type ObjectDefinition struct {
	ID            string         `json:"id"`
	Label         string         `json:"label"`
	Dimensions    Vector3        `json:"dimensions"`
	Offset        Vector2        `json:"offset"`
	PositionY     float64        `json:"position_y" yaml:"position_y"`
	Rotation      Vector3        `json:"rotation"`
	EnclosedAreas []EnclosedArea `json:"enclosed_areas,omitempty" yaml:"enclosed_areas,omitempty"`
}

func NewObjectDefinition(label string, dimensions Vector3) ObjectDefinition {
	return ObjectDefinition{
		ID:         uuid.New().String()[:8],
		Label:      label,
		Dimensions: dimensions,
	}
}

// Spec normalizes the definition into the value type the geometry code
// consumes. Fails with ErrMissingDimensions on incomplete definitions.
func (d ObjectDefinition) Spec() (ObjectSpec, error) {
	return NewObjectSpec(d.Dimensions, d.Offset, d.PositionY, d.Rotation)
}

// PlacedObject pairs a definition with the location the engine chose
// for it.
type PlacedObject struct {
	Definition ObjectDefinition `json:"definition"`
	Location   Location         `json:"location"`
}

// SceneResult is the output of one scene-build attempt: the room, the
// performer, and every object successfully placed.
type SceneResult struct {
	Room      RoomDimensions `json:"room"`
	Performer PerformerPose  `json:"performer"`
	Objects   []PlacedObject `json:"objects"`
}
