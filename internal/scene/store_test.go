package scene

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"wireframe-renderer/internal/mathutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "sprite.sqlite"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	demo := Demo()
	for _, sp := range demo.Sprites {
		if err := s.Save(ctx, sp); err != nil {
			t.Fatalf("Save(%s): %v", sp.ID, err)
		}
	}

	names, err := s.Names(ctx)
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"box", "pyramid"}) {
		t.Errorf("Names = %v, want [box pyramid]", names)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Sprites) != 2 {
		t.Fatalf("loaded %d sprites, want 2", len(got.Sprites))
	}
	for i, want := range demo.Sprites {
		sp := got.Sprites[i]
		if sp.ID != want.ID {
			t.Errorf("sprite %d ID = %q, want %q", i, sp.ID, want.ID)
		}
		if !reflect.DeepEqual(sp.Vertices, want.Vertices) {
			t.Errorf("%s vertices = %v, want %v", want.ID, sp.Vertices, want.Vertices)
		}
		if !reflect.DeepEqual(sp.Edges, want.Edges) {
			t.Errorf("%s edges = %v, want %v", want.ID, sp.Edges, want.Edges)
		}
		if sp.Faces != nil {
			t.Errorf("%s faces = %v, want none (not stored)", want.ID, sp.Faces)
		}
	}
}

func TestStoreRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	sp := Demo().Sprites[0]

	if err := s.Save(ctx, sp); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := s.Save(ctx, sp); !errors.Is(err, ErrSpriteExists) {
		t.Errorf("second Save error = %v, want ErrSpriteExists", err)
	}
	if err := s.Save(ctx, Sprite{}); err == nil {
		t.Error("expected error for sprite without ID")
	}
}

func TestStoreGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if _, err := s.Get(ctx, "nope"); !errors.Is(err, ErrSpriteNotFound) {
		t.Errorf("Get(nope) error = %v, want ErrSpriteNotFound", err)
	}

	want := Demo().Sprites[1]
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Get(ctx, "pyramid")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got.Edges, want.Edges) {
		t.Errorf("edges = %v, want %v", got.Edges, want.Edges)
	}
}

func TestStoreDecodesEditorRows(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	// Rows as the sprite editor writes them: the third edge point is missing
	// from the vertex list.
	edges := `["[\"[0,0,0]\",\"[4,0,0]\"]","[\"[4,0,0]\",\"[4,3,2]\"]"]`
	verts := `[[0,0,0],[4,0,0]]`
	if _, err := s.db.ExecContext(ctx, `INSERT INTO Sprite (SpriteID, Edges, Vetex) VALUES (?, ?, ?)`, "wedge", edges, verts); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO Sprite (SpriteID) VALUES (?)`, "blank"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	sc, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sc.Sprites) != 2 {
		t.Fatalf("loaded %d sprites, want 2", len(sc.Sprites))
	}
	if sc.Sprites[0].ID != "blank" || len(sc.Sprites[0].Edges) != 0 {
		t.Errorf("blank sprite = %+v", sc.Sprites[0])
	}

	wedge := sc.Sprites[1]
	wantVerts := []mathutil.Vec3{{0, 0, 0}, {4, 0, 0}, {4, 3, 2}}
	if !reflect.DeepEqual(wedge.Vertices, wantVerts) {
		t.Errorf("vertices = %v, want %v", wedge.Vertices, wantVerts)
	}
	if !reflect.DeepEqual(wedge.Edges, [][2]int{{0, 1}, {1, 2}}) {
		t.Errorf("edges = %v, want [[0 1] [1 2]]", wedge.Edges)
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("decoded scene invalid: %v", err)
	}
}
