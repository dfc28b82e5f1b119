package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame    int        `json:"frame"`
	Image    string     `json:"image,omitempty"`
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Pitch    float64    `json:"pitch"`
	Edges    int        `json:"edges"`
	Drawn    int        `json:"drawn"`
	Culled   int        `json:"culled"`
	Clipped  int        `json:"clipped"`
	Failed   int        `json:"failed,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// Manifest converts results to manifest entries.
func Manifest(results []Result) []ManifestEntry {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Frame:    r.Index,
			Position: r.Viewpoint.Position,
			Yaw:      r.Viewpoint.Yaw,
			Pitch:    r.Viewpoint.Pitch,
			Edges:    r.Stats.Edges,
			Drawn:    r.Stats.Drawn,
			Culled:   r.Stats.Culled,
			Clipped:  r.Stats.Clipped,
			Failed:   r.Stats.Failed,
			Error:    r.Error,
		}
		if r.Success {
			entries[i].Image = r.File
		}
	}
	return entries
}

// WriteManifest writes the frame manifest as JSON.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(Manifest(results), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
