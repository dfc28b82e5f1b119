package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"wireframe-renderer/internal/scene"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: spritedb -db sprites.db <list|import|export> [args]")
	fmt.Fprintln(os.Stderr, "  list                       list sprites with vertex and edge counts")
	fmt.Fprintln(os.Stderr, "  import <scene.json>        add every sprite of a scene file")
	fmt.Fprintln(os.Stderr, "  export <scene.json>        write all sprites to a scene file")
	flag.PrintDefaults()
}

func main() {
	dbPath := flag.String("db", "sprites.db", "Sprite database")
	charset := flag.String("charset", "", "Charset of imported scene files (default: UTF-8)")
	skipExisting := flag.Bool("skip-existing", false, "On import, skip sprites already in the database")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	st, err := scene.OpenStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	switch cmd := flag.Arg(0); cmd {
	case "list":
		err = list(ctx, st)
	case "import":
		if flag.NArg() < 2 {
			usage()
			os.Exit(2)
		}
		err = importScene(ctx, st, flag.Arg(1), *charset, *skipExisting)
	case "export":
		if flag.NArg() < 2 {
			usage()
			os.Exit(2)
		}
		err = exportScene(ctx, st, flag.Arg(1))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		st.Close()
		os.Exit(1)
	}
}

func list(ctx context.Context, st *scene.Store) error {
	s, err := st.Load(ctx)
	if err != nil {
		return err
	}
	for _, sp := range s.Sprites {
		fmt.Printf("%-20s verts=%d edges=%d\n", sp.ID, len(sp.Vertices), len(sp.Edges))
	}
	fmt.Printf("Sprites: %d\n", len(s.Sprites))
	return nil
}

func importScene(ctx context.Context, st *scene.Store, path, charset string, skipExisting bool) error {
	s, err := scene.LoadJSON(path, charset)
	if err != nil {
		return err
	}
	added, skipped := 0, 0
	for _, sp := range s.Sprites {
		err := st.Save(ctx, sp)
		switch {
		case err == nil:
			added++
		case skipExisting && errors.Is(err, scene.ErrSpriteExists):
			skipped++
		default:
			return err
		}
	}
	fmt.Printf("Imported: %d, Skipped: %d\n", added, skipped)
	return nil
}

func exportScene(ctx context.Context, st *scene.Store, path string) error {
	s, err := st.Load(ctx)
	if err != nil {
		return err
	}
	data, err := s.EncodeJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	fmt.Printf("Exported %d sprites to %s\n", len(s.Sprites), path)
	return nil
}
