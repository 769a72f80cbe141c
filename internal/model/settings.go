package model

// PlacementSettings holds the tunable constants of the placement engine.
type PlacementSettings struct {
	MaxTries             int     `json:"max_tries" yaml:"max_tries"`                         // Retry budget per placement search
	PositionDigits       int     `json:"position_digits" yaml:"position_digits"`             // Decimal places for sampled coordinates
	MinGap               float64 `json:"min_gap" yaml:"min_gap"`                             // Minimum separation and scan step (m)
	MaxReachDistance     float64 `json:"max_reach_distance" yaml:"max_reach_distance"`       // Performer arm reach (m)
	PerformerHalfWidth   float64 `json:"performer_half_width" yaml:"performer_half_width"`   // Half width of the performer footprint square (m)
	PerformerHeight      float64 `json:"performer_height" yaml:"performer_height"`           // Vertical extent of the performer footprint (m)
	MinForwardVisibility float64 `json:"min_forward_visibility" yaml:"min_forward_visibility"` // Closest visible point ahead of the performer (m)
	RotationStep         float64 `json:"rotation_step" yaml:"rotation_step"`                 // Default rotation sampling granularity (degrees)
}

// DefaultSettings returns the engine defaults. The default rotation
// generator draws from {0, 45, ..., 315}.
func DefaultSettings() PlacementSettings {
	return PlacementSettings{
		MaxTries:             50,
		PositionDigits:       2,
		MinGap:               0.1,
		MaxReachDistance:     1.0,
		PerformerHalfWidth:   0.27,
		PerformerHeight:      1.25,
		MinForwardVisibility: 1.25,
		RotationStep:         45,
	}
}
