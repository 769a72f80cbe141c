// Package containment decides whether objects fit inside the enclosed
// areas declared by container-type definitions. Fit is a pure dimension
// comparison; no geometry beyond a 0/90 degree rotation search.
package containment

import "github.com/piwi3910/SceneForge/internal/model"

// Orientation describes how a pair of objects is arranged inside an
// enclosed area.
type Orientation string

const (
	SideBySide  Orientation = "side_by_side"  // widths add, depths overlap
	FrontToBack Orientation = "front_to_back" // depths add, widths overlap
)

// Fit describes which enclosed area accepts a set of objects and at what
// rotation each one fits.
type Fit struct {
	AreaIndex int
	Angles    []int
}

// PairFit describes how two objects fit one enclosed area together.
type PairFit struct {
	AreaIndex   int
	AngleA      int
	AngleB      int
	Orientation Orientation
}

// CanEnclose reports whether target dimensions fit the area: angle 0 when
// the target fits as-is on all three axes, 90 when swapping the target's
// x and z makes it fit. ok is false when neither works.
func CanEnclose(area model.EnclosedArea, target model.Vector3) (angle int, ok bool) {
	if target.X <= area.Dimensions.X && target.Y <= area.Dimensions.Y && target.Z <= area.Dimensions.Z {
		return 0, true
	}
	if target.Z <= area.Dimensions.X && target.Y <= area.Dimensions.Y && target.X <= area.Dimensions.Z {
		return 90, true
	}
	return 0, false
}

// CanContain scans the container's enclosed areas in order and returns
// the first area where every given object fits individually. There is no
// mutual-packing check: each object is tested against the empty area.
// Returns nil when the container has no areas or none fit.
func CanContain(container model.ObjectDefinition, targets ...model.Vector3) *Fit {
	for i, area := range container.EnclosedAreas {
		angles := make([]int, 0, len(targets))
		fitsAll := true
		for _, target := range targets {
			angle, ok := CanEnclose(area, target)
			if !ok {
				fitsAll = false
				break
			}
			angles = append(angles, angle)
		}
		if fitsAll {
			return &Fit{AreaIndex: i, Angles: angles}
		}
	}
	return nil
}

// pairRotations is the fixed order in which rotation combinations are
// tried for a pair of objects.
var pairRotations = [4][2]int{{0, 0}, {0, 90}, {90, 0}, {90, 90}}

// CanContainBoth tries to fit two objects together into one enclosed
// area. Per area it tries 8 arrangements: {side-by-side, front-to-back}
// x {(0,0), (0,90), (90,0), (90,90)}; the first arrangement whose
// combined width and depth fit wins.
//
// When every arrangement fails for the first enclosed area, the search
// stops without trying later areas. That early return is long-standing
// behavior that callers depend on; it is pinned by a test, so do not
// quietly extend the scan.
func CanContainBoth(container model.ObjectDefinition, a, b model.Vector3) *PairFit {
	for i, area := range container.EnclosedAreas {
		for _, orientation := range []Orientation{SideBySide, FrontToBack} {
			for _, angles := range pairRotations {
				aw, ad := rotatedPlan(a, angles[0])
				bw, bd := rotatedPlan(b, angles[1])

				var width, depth float64
				if orientation == SideBySide {
					width = aw + bw
					depth = maxFloat(ad, bd)
				} else {
					width = maxFloat(aw, bw)
					depth = ad + bd
				}

				if width <= area.Dimensions.X && depth <= area.Dimensions.Z &&
					a.Y <= area.Dimensions.Y && b.Y <= area.Dimensions.Y {
					return &PairFit{
						AreaIndex:   i,
						AngleA:      angles[0],
						AngleB:      angles[1],
						Orientation: orientation,
					}
				}
			}
		}
		return nil
	}
	return nil
}

// rotatedPlan returns the horizontal width/depth of dims after a 0 or 90
// degree rotation.
func rotatedPlan(dims model.Vector3, angle int) (width, depth float64) {
	if angle == 90 {
		return dims.Z, dims.X
	}
	return dims.X, dims.Z
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
