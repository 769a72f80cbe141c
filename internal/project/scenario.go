// Package project handles persistence around the placement engine:
// loading scenario files that describe a room and the objects to place,
// and saving placement results and app configuration.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/SceneForge/internal/model"
)

// Scenario describes one scene-build request: the room, the performer
// pose, the RNG seed, and the objects to place.
type Scenario struct {
	Name      string                   `yaml:"name"`
	Room      model.RoomDimensions     `yaml:"room"`
	Performer model.PerformerPose      `yaml:"performer"`
	Seed      int64                    `yaml:"seed"`
	Settings  *model.PlacementSettings `yaml:"settings,omitempty"`
	Objects   []model.ObjectDefinition `yaml:"objects"`
}

// LoadScenario reads and validates a scenario YAML file. Every object
// must carry positive dimensions; the engine treats incomplete specs as
// fatal, so they are rejected here at the boundary.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario %s: %w", filepath.Base(path), err)
	}

	if scenario.Room.X <= 0 || scenario.Room.Z <= 0 {
		return Scenario{}, fmt.Errorf("scenario %s: room dimensions must be positive", filepath.Base(path))
	}
	for i := range scenario.Objects {
		if scenario.Objects[i].Label == "" {
			scenario.Objects[i].Label = fmt.Sprintf("object-%d", i+1)
		}
		if _, err := scenario.Objects[i].Spec(); err != nil {
			return Scenario{}, fmt.Errorf("scenario %s: object %q: %w", filepath.Base(path), scenario.Objects[i].Label, err)
		}
	}
	return scenario, nil
}

// SaveScenario writes a scenario back to disk as YAML, creating parent
// directories as needed.
func SaveScenario(path string, scenario Scenario) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(scenario)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
