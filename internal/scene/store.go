package scene

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"wireframe-renderer/internal/mathutil"

	_ "modernc.org/sqlite"
)

// The sprite editor's table. Edges holds a JSON array of strings, each a JSON
// array of two strings, each a JSON "[x,y,z]" point. Vetex holds a JSON array
// of [x,y,z] arrays.
const spriteSchema = `CREATE TABLE IF NOT EXISTS Sprite (
	SpriteID TEXT NOT NULL UNIQUE PRIMARY KEY,
	Edges TEXT DEFAULT '[]',
	Vetex TEXT DEFAULT '[]'
)`

var (
	// ErrSpriteExists is returned by Save for a duplicate sprite ID.
	ErrSpriteExists = errors.New("scene: sprite already exists")

	// ErrSpriteNotFound is returned by Get for an unknown sprite ID.
	ErrSpriteNotFound = errors.New("scene: sprite not found")
)

// Store is a sprite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the sprite database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	if _, err := db.Exec(spriteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("scene: init %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Names lists sprite IDs in order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT SpriteID FROM Sprite ORDER BY SpriteID`)
	if err != nil {
		return nil, fmt.Errorf("scene: list sprites: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scene: list sprites: %w", err)
		}
		names = append(names, id)
	}
	return names, rows.Err()
}

// Load reads every sprite into a scene.
func (s *Store) Load(ctx context.Context) (*Scene, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT SpriteID, Edges, Vetex FROM Sprite ORDER BY SpriteID`)
	if err != nil {
		return nil, fmt.Errorf("scene: load sprites: %w", err)
	}
	defer rows.Close()

	sc := &Scene{}
	for rows.Next() {
		var id, edges, verts string
		if err := rows.Scan(&id, &edges, &verts); err != nil {
			return nil, fmt.Errorf("scene: load sprites: %w", err)
		}
		sp, err := decodeSprite(id, edges, verts)
		if err != nil {
			return nil, err
		}
		sc.Sprites = append(sc.Sprites, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scene: load sprites: %w", err)
	}
	return sc, nil
}

// Get reads one sprite.
func (s *Store) Get(ctx context.Context, id string) (Sprite, error) {
	var edges, verts string
	err := s.db.QueryRowContext(ctx, `SELECT Edges, Vetex FROM Sprite WHERE SpriteID = ?`, id).Scan(&edges, &verts)
	if errors.Is(err, sql.ErrNoRows) {
		return Sprite{}, fmt.Errorf("%w: %q", ErrSpriteNotFound, id)
	}
	if err != nil {
		return Sprite{}, fmt.Errorf("scene: get %q: %w", id, err)
	}
	return decodeSprite(id, edges, verts)
}

// Save inserts a sprite. Faces are not stored.
func (s *Store) Save(ctx context.Context, sp Sprite) error {
	if sp.ID == "" {
		return errors.New("scene: sprite ID is required")
	}
	if err := sp.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Sprite WHERE SpriteID = ?`, sp.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("scene: save %q: %w", sp.ID, err)
	}
	if exists > 0 {
		return fmt.Errorf("%w: %q", ErrSpriteExists, sp.ID)
	}

	edges, verts, err := encodeSprite(sp)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO Sprite (SpriteID, Edges, Vetex) VALUES (?, ?, ?)`, sp.ID, edges, verts)
	if err != nil {
		return fmt.Errorf("scene: save %q: %w", sp.ID, err)
	}
	return nil
}

// decodeSprite rebuilds indexed edges from the stored point pairs. Points are
// matched against the vertex list; a point missing from it is appended.
func decodeSprite(id, edgesJSON, vertsJSON string) (Sprite, error) {
	sp := Sprite{ID: id}

	var verts [][3]float64
	if err := json.Unmarshal([]byte(vertsJSON), &verts); err != nil {
		return Sprite{}, fmt.Errorf("scene: sprite %q vertices: %w", id, err)
	}
	index := make(map[[3]float64]int, len(verts))
	for _, v := range verts {
		if _, dup := index[v]; !dup {
			index[v] = len(sp.Vertices)
		}
		sp.Vertices = append(sp.Vertices, mathutil.Vec3(v))
	}
	vertexOf := func(p [3]float64) int {
		if i, ok := index[p]; ok {
			return i
		}
		index[p] = len(sp.Vertices)
		sp.Vertices = append(sp.Vertices, mathutil.Vec3(p))
		return index[p]
	}

	var edges []string
	if err := json.Unmarshal([]byte(edgesJSON), &edges); err != nil {
		return Sprite{}, fmt.Errorf("scene: sprite %q edges: %w", id, err)
	}
	for i, raw := range edges {
		var pair [2]string
		if err := json.Unmarshal([]byte(raw), &pair); err != nil {
			return Sprite{}, fmt.Errorf("scene: sprite %q edge %d: %w", id, i, err)
		}
		var a, b [3]float64
		if err := json.Unmarshal([]byte(pair[0]), &a); err != nil {
			return Sprite{}, fmt.Errorf("scene: sprite %q edge %d start: %w", id, i, err)
		}
		if err := json.Unmarshal([]byte(pair[1]), &b); err != nil {
			return Sprite{}, fmt.Errorf("scene: sprite %q edge %d end: %w", id, i, err)
		}
		sp.Edges = append(sp.Edges, [2]int{vertexOf(a), vertexOf(b)})
	}
	return sp, nil
}

func encodeSprite(sp Sprite) (edgesJSON, vertsJSON string, err error) {
	verts := make([][3]float64, len(sp.Vertices))
	for i, v := range sp.Vertices {
		verts[i] = v
	}
	vb, err := json.Marshal(verts)
	if err != nil {
		return "", "", fmt.Errorf("scene: encode %q vertices: %w", sp.ID, err)
	}

	edges := make([]string, len(sp.Edges))
	for i, e := range sp.Edges {
		a, err := json.Marshal(verts[e[0]])
		if err != nil {
			return "", "", fmt.Errorf("scene: encode %q edge %d: %w", sp.ID, i, err)
		}
		b, err := json.Marshal(verts[e[1]])
		if err != nil {
			return "", "", fmt.Errorf("scene: encode %q edge %d: %w", sp.ID, i, err)
		}
		pair, err := json.Marshal([2]string{string(a), string(b)})
		if err != nil {
			return "", "", fmt.Errorf("scene: encode %q edge %d: %w", sp.ID, i, err)
		}
		edges[i] = string(pair)
	}
	eb, err := json.Marshal(edges)
	if err != nil {
		return "", "", fmt.Errorf("scene: encode %q edges: %w", sp.ID, err)
	}
	return string(eb), string(vb), nil
}
