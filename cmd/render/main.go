package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wireframe-renderer/internal/batch"
	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/config"
	"wireframe-renderer/internal/input"
	"wireframe-renderer/internal/postprocess"
	"wireframe-renderer/internal/render"
	"wireframe-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene JSON file (default: built-in demo)")
	spriteDB := flag.String("db", "", "Sprite database (overrides -scene)")
	scriptFile := flag.String("script", "", "Key script JSON; without it a single frame is rendered")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Image format: webp, png or tga (default: webp)")
	width := flag.Int("width", 0, "Surface width in pixels")
	height := flag.Int("height", 0, "Surface height in pixels")
	supersample := flag.Int("ss", 0, "Supersample factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Render only the first N frames")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneFile:   *sceneFile,
		SpriteDB:    *spriteDB,
		ScriptFile:  *scriptFile,
		OutputDir:   *outputDir,
		Format:      *format,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Workers:     *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	src := scene.Source{File: cfg.SceneFile, Charset: cfg.SceneCharset, DB: cfg.SpriteDB}
	sc, err := scene.Open(context.Background(), src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	verts, edges, faces := sc.Counts()
	fmt.Printf("Scene: %s (%d sprites, %d vertices, %d edges, %d faces)\n", src, len(sc.Sprites), verts, edges, faces)

	// Viewpoints
	viewpoints := []camera.Viewpoint{cfg.Start()}
	if cfg.ScriptFile != "" {
		script, err := input.LoadScript(cfg.ScriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
			os.Exit(1)
		}
		viewpoints, err = script.Expand(cfg.Start(), cfg.Motion(), 1/float64(cfg.FPS))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error expanding script: %v\n", err)
			os.Exit(1)
		}
	}
	if *testN > 0 && *testN < len(viewpoints) {
		viewpoints = viewpoints[:*testN]
	}

	proj, err := camera.NewProjector(cfg.Params())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	filter, err := postprocess.Interpolator(cfg.Filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	outFormat, err := batch.NormalizeFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wireframe renderer → %s\n", outFormat)
	fmt.Printf("Frames: %d, Size: %dx%d, Workers: %d\n", len(viewpoints), cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      outFormat,
		Renderer:    render.New(proj, cfg.EdgeWorkers),
		Edges:       sc.Edges(),
		Style:       cfg.Style(),
		Supersample: cfg.Supersample,
		Filter:      filter,
		Workers:     cfg.Workers,
		Progress:    os.Stdout,
	}

	results := batch.Run(batchCfg, batch.Jobs(viewpoints))

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var failures []batch.Result
	var totals render.Stats
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			failures = append(failures, r)
		}
		totals.Drawn += r.Stats.Drawn
		totals.Culled += r.Stats.Culled
		totals.Clipped += r.Stats.Clipped
		totals.Failed += r.Stats.Failed
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))
	fmt.Printf("Edges: %d drawn, %d clipped, %d culled, %d failed\n", totals.Drawn, totals.Clipped, totals.Culled, totals.Failed)

	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(failures) < limit {
			limit = len(failures)
		}
		for _, e := range failures[:limit] {
			fmt.Printf("  frame %d %s: %s\n", e.Index, e.Viewpoint, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
