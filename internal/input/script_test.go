package input

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"wireframe-renderer/internal/camera"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`[
		{"keys": ["forward"], "frames": 3},
		{"keys": ["left", "up"], "frames": 2},
		{"frames": 1}
	]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 3 || s.Frames() != 6 {
		t.Errorf("got %d steps / %d frames, want 3 / 6", len(s), s.Frames())
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":      `[{"keys": }]`,
		"zero frames": `[{"keys": ["left"], "frames": 0}]`,
		"unknown key": `[{"keys": ["jump"], "frames": 1}]`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseScript([]byte(doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptExpand(t *testing.T) {
	s := Script{
		{Keys: []string{"forward"}, Frames: 2},
		{Keys: []string{"right"}, Frames: 3},
	}
	m := Motion{MoveSpeed: 60, TurnSpeed: 60}
	start := camera.DefaultViewpoint()

	vps, err := s.Expand(start, m, 1.0/60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vps) != 6 {
		t.Fatalf("got %d viewpoints, want 6", len(vps))
	}
	if vps[0] != start {
		t.Errorf("first viewpoint = %v, want start %v", vps[0], start)
	}
	end := vps[len(vps)-1]
	if math.Abs(end.Position[1]-2) > 1e-9 {
		t.Errorf("walked to y = %v, want 2", end.Position[1])
	}
	if math.Abs(end.Yaw-93) > 1e-9 {
		t.Errorf("yaw = %v, want 93", end.Yaw)
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.json")
	if err := os.WriteFile(path, []byte(`[{"keys":["back"],"frames":4}]`), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if s.Frames() != 4 {
		t.Errorf("Frames = %d, want 4", s.Frames())
	}
	if _, err := LoadScript(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
