// SceneForge — spatial placement engine CLI
//
// Loads a scenario file describing a room, a performer, and a list of
// objects, runs the stochastic placement engine, and writes the placed
// scene plus optional PDF/XLSX/DXF/label exports.
//
// Build:
//   go build -o sceneforge ./cmd/sceneforge
//
// Usage:
//   sceneforge -scenario scene.yaml -out ./exports -pdf -xlsx

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/piwi3910/SceneForge/internal/engine"
	"github.com/piwi3910/SceneForge/internal/export"
	"github.com/piwi3910/SceneForge/internal/model"
	"github.com/piwi3910/SceneForge/internal/project"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario YAML file (required)")
	outDir := flag.String("out", ".", "output directory for exports")
	seed := flag.Int64("seed", 0, "override the scenario RNG seed")
	writePDF := flag.Bool("pdf", false, "export a PDF layout diagram")
	writeXLSX := flag.Bool("xlsx", false, "export an XLSX placement report")
	writeDXF := flag.Bool("dxf", false, "export a DXF footprint drawing")
	writeLabels := flag.Bool("labels", false, "export QR-coded object labels")
	verbose := flag.Bool("v", false, "enable placement debug logging")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "sceneforge: -scenario is required")
		flag.Usage()
		os.Exit(2)
	}

	scenario, err := project.LoadScenario(*scenarioPath)
	if err != nil {
		fatal(err)
	}

	settings := model.DefaultSettings()
	if scenario.Settings != nil {
		settings = *scenario.Settings
	}
	if *seed != 0 {
		scenario.Seed = *seed
	}

	session := engine.NewSession(scenario.Room, rand.New(rand.NewSource(scenario.Seed)), settings)
	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fatal(err)
		}
		defer log.Sync()
		session.SetLogger(log)
	}

	result, unplaced := placeAll(session, scenario)
	session.Reset()

	fmt.Printf("Placed %d of %d objects in %.1f x %.1f m room (seed %d)\n",
		len(result.Objects), len(scenario.Objects), scenario.Room.X, scenario.Room.Z, scenario.Seed)
	for _, label := range unplaced {
		fmt.Printf("  could not place %q within retry budget\n", label)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fatal(err)
	}

	resultPath := filepath.Join(*outDir, "scene.json")
	if err := project.SaveResult(resultPath, result); err != nil {
		fatal(err)
	}
	fmt.Printf("  wrote %s\n", resultPath)

	exports := []struct {
		enabled bool
		name    string
		run     func(string) error
	}{
		{*writePDF, "scene.pdf", func(p string) error { return export.ExportPDF(p, result) }},
		{*writeXLSX, "scene.xlsx", func(p string) error { return export.ExportXLSX(p, result) }},
		{*writeDXF, "scene.dxf", func(p string) error { return export.ExportDXF(p, result) }},
		{*writeLabels, "labels.pdf", func(p string) error { return export.ExportLabels(p, result) }},
	}
	for _, e := range exports {
		if !e.enabled {
			continue
		}
		path := filepath.Join(*outDir, e.name)
		if err := e.run(path); err != nil {
			fatal(err)
		}
		fmt.Printf("  wrote %s\n", path)
	}
}

// placeAll runs one build attempt, placing every scenario object in
// order. Objects whose search exhausts the retry budget are reported,
// not fatal.
func placeAll(session *engine.Session, scenario project.Scenario) (model.SceneResult, []string) {
	result := model.SceneResult{
		Room:      scenario.Room,
		Performer: scenario.Performer,
	}
	var unplaced []string

	attempt := session.NewAttempt()
	for _, def := range scenario.Objects {
		spec, err := def.Spec()
		if err != nil {
			fatal(err)
		}
		location := session.CalcObjPos(scenario.Performer.Position, attempt, spec, engine.Generators{})
		if location == nil {
			unplaced = append(unplaced, def.Label)
			continue
		}
		result.Objects = append(result.Objects, model.PlacedObject{
			Definition: def,
			Location:   *location,
		})
	}
	session.Commit(attempt)

	return result, unplaced
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "sceneforge: %v\n", err)
	os.Exit(1)
}
