// Package config loads renderer settings from a JSON file and merges command
// line overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"wireframe-renderer/internal/batch"
	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/input"
	"wireframe-renderer/internal/postprocess"
	"wireframe-renderer/internal/render"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	SceneFile    string `json:"scene_file"`
	SceneCharset string `json:"scene_charset"`
	SpriteDB     string `json:"sprite_db"`
	ScriptFile   string `json:"script_file"`
	OutputDir    string `json:"output_dir"`

	// Camera
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	FocalLength   float64    `json:"focal_length"`
	NearPlane     float64    `json:"near_plane"`
	StartPosition [3]float64 `json:"start_position"`
	StartYaw      *float64   `json:"start_yaw"`
	StartPitch    float64    `json:"start_pitch"`

	// Motion
	MoveSpeed float64 `json:"move_speed"`
	TurnSpeed float64 `json:"turn_speed"`
	FPS       int     `json:"fps"`

	// Output
	Format      string  `json:"format"`
	Supersample int     `json:"supersample"`
	Filter      string  `json:"filter"`
	LineWidth   float64 `json:"line_width"`
	Background  string  `json:"background"`
	Stroke      string  `json:"stroke"`
	Crosshair   *bool   `json:"crosshair"`
	Workers     int     `json:"workers"`
	EdgeWorkers int     `json:"edge_workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values. Relative paths are taken
// relative to the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for _, p := range []*string{&cfg.SceneFile, &cfg.SpriteDB, &cfg.ScriptFile, &cfg.OutputDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SceneFile   string
	SpriteDB    string
	ScriptFile  string
	OutputDir   string
	Format      string
	Width       int
	Height      int
	Supersample int
	Workers     int
}

// Resolve applies flag overrides and fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.SpriteDB != "" {
		c.SpriteDB = flags.SpriteDB
	}
	if flags.ScriptFile != "" {
		c.ScriptFile = flags.ScriptFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Width <= 0 {
		c.Width = camera.DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = camera.DefaultHeight
	}
	if c.FocalLength == 0 {
		c.FocalLength = camera.DefaultFocal
	}
	if c.NearPlane == 0 {
		c.NearPlane = camera.DefaultNear
	}
	if c.StartYaw == nil {
		yaw := camera.DefaultYaw
		c.StartYaw = &yaw
	}
	if c.MoveSpeed == 0 {
		c.MoveSpeed = input.DefaultMoveSpeed
	}
	if c.TurnSpeed == 0 {
		c.TurnSpeed = input.DefaultTurnSpeed
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Format == "" {
		c.Format = batch.FormatWebP
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Filter == "" {
		c.Filter = postprocess.DefaultFilter
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 2
	}
	if c.Background == "" {
		c.Background = "#ffffff"
	}
	if c.Stroke == "" {
		c.Stroke = "#000000"
	}
	if c.Crosshair == nil {
		on := true
		c.Crosshair = &on
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.EdgeWorkers <= 0 {
		c.EdgeWorkers = 1
	}
}

// Validate reports every setting that cannot be used. Call after Resolve.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Params().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := batch.NormalizeFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if _, err := postprocess.Interpolator(c.Filter); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := ParseColor(c.Stroke); err != nil {
		errs = append(errs, fmt.Errorf("stroke: %w", err))
	}
	if c.MoveSpeed < 0 || c.TurnSpeed < 0 {
		errs = append(errs, errors.New("config: speeds must not be negative"))
	}
	return errors.Join(errs...)
}

// Params returns the projection parameters.
func (c *Config) Params() camera.Params {
	return camera.Params{
		Width:  c.Width,
		Height: c.Height,
		Focal:  c.FocalLength,
		Near:   c.NearPlane,
	}
}

// Motion returns the key motion speeds.
func (c *Config) Motion() input.Motion {
	return input.Motion{MoveSpeed: c.MoveSpeed, TurnSpeed: c.TurnSpeed}
}

// Start returns the initial viewpoint.
func (c *Config) Start() camera.Viewpoint {
	vp := camera.Viewpoint{Position: c.StartPosition, Pitch: c.StartPitch, Yaw: camera.DefaultYaw}
	if c.StartYaw != nil {
		vp.Yaw = *c.StartYaw
	}
	return vp
}

// Style returns the line style. Colors that fail to parse fall back to the
// defaults; Validate reports them.
func (c *Config) Style() render.Style {
	s := render.DefaultStyle()
	if bg, err := ParseColor(c.Background); err == nil {
		s.Background = bg
	}
	if fg, err := ParseColor(c.Stroke); err == nil {
		s.Stroke = fg
	}
	if c.LineWidth > 0 {
		s.LineWidth = c.LineWidth
	}
	if c.Crosshair != nil {
		s.Crosshair = *c.Crosshair
	}
	return s
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
