package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/draw"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/config"
	"wireframe-renderer/internal/input"
	"wireframe-renderer/internal/raster"
	"wireframe-renderer/internal/render"
	"wireframe-renderer/internal/scene"
)

type viewer struct {
	renderer *render.Renderer
	edges    []scene.Edge
	style    render.Style
	motion   input.Motion
	start    camera.Viewpoint
	vp       camera.Viewpoint
	dt       float64
	hud      bool

	fb     *raster.FrameBuffer
	rgba   *image.RGBA
	screen *ebiten.Image
}

func heldKeys() input.Keys {
	return input.Keys{
		Left:     ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Forward:  ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Back:     ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		LookUp:   ebiten.IsKeyPressed(ebiten.KeyPageUp),
		LookDown: ebiten.IsKeyPressed(ebiten.KeyPageDown),
	}
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyHome) {
		v.vp = v.start
	}
	if k := heldKeys(); k.Any() {
		v.vp = v.motion.Step(v.vp, k, v.dt)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	f, err := v.renderer.Render(v.edges, v.vp)
	if err != nil {
		ebitenutil.DebugPrint(screen, err.Error())
		return
	}

	render.Draw(v.fb, f, v.style)
	// Frame buffer pixels are straight alpha; ebiten wants premultiplied.
	draw.Draw(v.rgba, v.rgba.Bounds(), v.fb.Image(), image.Point{}, draw.Src)
	v.screen.WritePixels(v.rgba.Pix)
	screen.DrawImage(v.screen, nil)

	if v.hud {
		msg := fmt.Sprintf("%v\n%v\n%.0f fps", v.vp, f.Stats, ebiten.ActualFPS())
		if len(f.Errors) > 0 {
			msg += "\n" + f.Errors[0].Error()
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.fb.Width, v.fb.Height
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene JSON file (default: built-in demo)")
	spriteDB := flag.String("db", "", "Sprite database (overrides -scene)")
	width := flag.Int("width", 0, "Window width in pixels")
	height := flag.Int("height", 0, "Window height in pixels")
	hud := flag.Bool("hud", true, "Show the viewpoint overlay")
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
	cfg.Resolve(config.Flags{SceneFile: *sceneFile, SpriteDB: *spriteDB, Width: *width, Height: *height})
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

	proj, err := camera.NewProjector(cfg.Params())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	v := &viewer{
		renderer: render.New(proj, cfg.EdgeWorkers),
		edges:    sc.Edges(),
		style:    cfg.Style(),
		motion:   cfg.Motion(),
		start:    cfg.Start(),
		vp:       cfg.Start(),
		dt:       1 / float64(cfg.FPS),
		hud:      *hud,
		fb:       raster.NewFrameBuffer(cfg.Width, cfg.Height),
		rgba:     image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		screen:   ebiten.NewImage(cfg.Width, cfg.Height),
	}

	ebiten.SetWindowTitle("Wireframe: " + src.String())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.FPS)
	if err := ebiten.RunGame(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
