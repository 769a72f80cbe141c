// RoomView — top-down preview of a placed scene
//
// Loads a scenario file, runs the placement engine once, and shows the
// resulting room layout in a window.
//
// Build:
//   go build -o roomview ./cmd/roomview
//
// Usage:
//   roomview -scenario scene.yaml

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/SceneForge/internal/engine"
	"github.com/piwi3910/SceneForge/internal/model"
	"github.com/piwi3910/SceneForge/internal/project"
	"github.com/piwi3910/SceneForge/internal/ui/widgets"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario YAML file (required)")
	seed := flag.Int64("seed", 0, "override the scenario RNG seed")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "roomview: -scenario is required")
		flag.Usage()
		os.Exit(2)
	}

	scenario, err := project.LoadScenario(*scenarioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roomview: %v\n", err)
		os.Exit(1)
	}

	settings := model.DefaultSettings()
	if scenario.Settings != nil {
		settings = *scenario.Settings
	}
	if *seed != 0 {
		scenario.Seed = *seed
	}

	session := engine.NewSession(scenario.Room, rand.New(rand.NewSource(scenario.Seed)), settings)
	attempt := session.NewAttempt()

	result := model.SceneResult{
		Room:      scenario.Room,
		Performer: scenario.Performer,
	}
	for _, def := range scenario.Objects {
		spec, err := def.Spec()
		if err != nil {
			fmt.Fprintf(os.Stderr, "roomview: %v\n", err)
			os.Exit(1)
		}
		if location := session.CalcObjPos(scenario.Performer.Position, attempt, spec, engine.Generators{}); location != nil {
			result.Objects = append(result.Objects, model.PlacedObject{Definition: def, Location: *location})
		}
	}

	application := app.NewWithID("com.piwi3910.sceneforge")
	window := application.NewWindow("RoomView — Scene Layout Preview")
	window.SetContent(widgets.RenderSceneResult(result))
	window.Resize(fyne.NewSize(900, 700))
	window.CenterOnScreen()
	window.ShowAndRun()
}
