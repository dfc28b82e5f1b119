package input

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"wireframe-renderer/internal/camera"
)

// Step holds a set of keys for a number of frames.
type Step struct {
	Keys   []string `json:"keys"`
	Frames int      `json:"frames"`
}

// Script is a scripted key sequence for a headless fly-through, e.g.
//
//	[{"keys": ["forward"], "frames": 30}, {"keys": ["left"], "frames": 45}]
type Script []Step

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}
	s, err := ParseScript(raw)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	return s, nil
}

// ParseScript decodes and validates a script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("input: parse script: %w", err)
	}
	for i, st := range s {
		if st.Frames <= 0 {
			return nil, fmt.Errorf("input: step %d: frames must be positive, got %d", i, st.Frames)
		}
		if _, err := ParseKeys(st.Keys); err != nil {
			return nil, fmt.Errorf("input: step %d: %w", i, err)
		}
	}
	return s, nil
}

// Frames returns the total frame count, not counting the start frame.
func (s Script) Frames() int {
	n := 0
	for _, st := range s {
		n += st.Frames
	}
	return n
}

// Expand plays the script from start, one Motion step of dt per frame.
// The result begins with start itself.
func (s Script) Expand(start camera.Viewpoint, m Motion, dt float64) ([]camera.Viewpoint, error) {
	out := make([]camera.Viewpoint, 0, s.Frames()+1)
	out = append(out, start)
	vp := start
	for i, st := range s {
		keys, err := ParseKeys(st.Keys)
		if err != nil {
			return nil, fmt.Errorf("input: step %d: %w", i, err)
		}
		for f := 0; f < st.Frames; f++ {
			vp = m.Step(vp, keys, dt)
			out = append(out, vp)
		}
	}
	return out, nil
}

// ParseKeys builds a key set from names: left, right, forward (up),
// back (down), lookup, lookdown.
func ParseKeys(names []string) (Keys, error) {
	var k Keys
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "left":
			k.Left = true
		case "right":
			k.Right = true
		case "forward", "up":
			k.Forward = true
		case "back", "down":
			k.Back = true
		case "lookup":
			k.LookUp = true
		case "lookdown":
			k.LookDown = true
		default:
			return Keys{}, fmt.Errorf("unknown key %q", n)
		}
	}
	return k, nil
}
