package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/config"
	"wireframe-renderer/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene JSON file (default: built-in demo)")
	spriteDB := flag.String("db", "", "Sprite database (overrides -scene)")
	x := flag.Float64("x", 0, "Eye X")
	y := flag.Float64("y", 0, "Eye Y")
	z := flag.Float64("z", 0, "Eye Z")
	yaw := flag.Float64("yaw", camera.DefaultYaw, "Yaw in degrees")
	pitch := flag.Float64("pitch", 0, "Pitch in degrees")
	edges := flag.Bool("edges", false, "Print a clip report for every edge")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{SceneFile: *sceneFile, SpriteDB: *spriteDB})

	src := scene.Source{File: cfg.SceneFile, Charset: cfg.SceneCharset, DB: cfg.SpriteDB}
	sc, err := scene.Open(context.Background(), src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	verts, nEdges, faces := sc.Counts()
	fmt.Printf("Scene: %s\n", src)
	fmt.Printf("Sprites: %d, Vertices: %d, Edges: %d, Faces: %d\n", len(sc.Sprites), verts, nEdges, faces)
	for i := range sc.Sprites {
		sp := &sc.Sprites[i]
		fmt.Printf("  %s: verts=%d, edges=%d, faces=%d\n", sp.ID, len(sp.Vertices), len(sp.Edges), len(sp.Faces))
		if lo, hi, ok := sp.Bounds(); ok {
			fmt.Printf("    BBox: X[%.1f, %.1f] Y[%.1f, %.1f] Z[%.1f, %.1f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
			fmt.Printf("    Size: %.1f x %.1f x %.1f\n", hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2])
		}
	}

	proj, err := camera.NewProjector(cfg.Params())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	vp := camera.Viewpoint{Position: [3]float64{*x, *y, *z}, Yaw: *yaw, Pitch: *pitch}
	f, err := vp.Frame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: viewpoint %v: %v\n", vp, err)
		os.Exit(1)
	}

	fmt.Printf("\nViewpoint: %v\n", vp)
	fmt.Printf("  forward=%.3v right=%.3v up=%.3v\n", f.Forward, f.Right, f.Up)

	var drawn, culled, clipped, failed int
	for i, e := range sc.Edges() {
		a, b, res, err := proj.Segment(e.A, e.B, vp.Position, f)
		status := "visible"
		switch {
		case err != nil:
			failed++
			status = "error: " + err.Error()
		case res.Culled:
			culled++
			status = "culled"
		default:
			drawn++
			if res.Clipped() {
				clipped++
				status = "clipped"
			}
		}
		if !*edges {
			continue
		}
		if err != nil || res.Culled {
			fmt.Printf("  [%3d] %-10s %s\n", i, e.Sprite, status)
			continue
		}
		fmt.Printf("  [%3d] %-10s (%7.1f, %7.1f) -> (%7.1f, %7.1f) %s\n", i, e.Sprite, a.X, a.Y, b.X, b.Y, status)
	}
	fmt.Printf("Edges: %d drawn (%d clipped), %d culled, %d failed\n", drawn, clipped, culled, failed)
}
