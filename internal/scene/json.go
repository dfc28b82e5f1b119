package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"wireframe-renderer/internal/mathutil"
)

// jsonScene matches the scene file schema:
//
//	{"sprites": [{"id": "box", "vertices": [[0,45,0], ...], "edges": [[0,1], ...], "faces": [[0,1,2,3]]}]}
type jsonScene struct {
	Sprites []jsonSprite `json:"sprites"`
}

type jsonSprite struct {
	ID       string       `json:"id"`
	Vertices [][3]float64 `json:"vertices"`
	Edges    [][2]int     `json:"edges"`
	Faces    [][]int      `json:"faces,omitempty"`
}

// LoadJSON reads a scene file. charset names the file's encoding; empty means
// UTF-8.
func LoadJSON(path, charset string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := ParseJSON(raw, charset)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	return s, nil
}

// ParseJSON decodes and validates a scene document.
func ParseJSON(data []byte, charset string) (*Scene, error) {
	data, err := decodeCharset(data, charset)
	if err != nil {
		return nil, err
	}

	var doc jsonScene
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}

	s := &Scene{Sprites: make([]Sprite, 0, len(doc.Sprites))}
	for i, js := range doc.Sprites {
		id := js.ID
		if id == "" {
			id = fmt.Sprintf("sprite%d", i)
		}
		sp := Sprite{
			ID:       id,
			Vertices: make([]mathutil.Vec3, len(js.Vertices)),
			Edges:    js.Edges,
			Faces:    js.Faces,
		}
		for k, v := range js.Vertices {
			sp.Vertices[k] = mathutil.Vec3(v)
		}
		s.Sprites = append(s.Sprites, sp)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// EncodeJSON encodes the scene in the scene file schema.
func (s *Scene) EncodeJSON() ([]byte, error) {
	doc := jsonScene{Sprites: make([]jsonSprite, len(s.Sprites))}
	for i, sp := range s.Sprites {
		js := jsonSprite{
			ID:       sp.ID,
			Vertices: make([][3]float64, len(sp.Vertices)),
			Edges:    sp.Edges,
			Faces:    sp.Faces,
		}
		for k, v := range sp.Vertices {
			js.Vertices[k] = v
		}
		if js.Edges == nil {
			js.Edges = [][2]int{}
		}
		doc.Sprites[i] = js
	}
	return json.MarshalIndent(doc, "", "  ")
}
