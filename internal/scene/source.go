package scene

import (
	"context"
	"fmt"
)

// Source says where a scene is read from. DB wins over File; with neither
// set the demo scene is used.
type Source struct {
	File    string
	Charset string
	DB      string
}

func (src Source) String() string {
	switch {
	case src.DB != "":
		return "sprite db " + src.DB
	case src.File != "":
		return src.File
	}
	return "demo scene"
}

// Open loads the scene named by src and validates it.
func Open(ctx context.Context, src Source) (*Scene, error) {
	var (
		s   *Scene
		err error
	)
	switch {
	case src.DB != "":
		var st *Store
		st, err = OpenStore(src.DB)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		s, err = st.Load(ctx)
	case src.File != "":
		s, err = LoadJSON(src.File, src.Charset)
	default:
		s = Demo()
	}
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", src, err)
	}
	return s, nil
}
