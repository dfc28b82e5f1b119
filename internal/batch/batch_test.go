package batch

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/render"
	"wireframe-renderer/internal/scene"
)

func testConfig(t *testing.T, format string, ss int) Config {
	t.Helper()
	proj, err := camera.NewProjector(camera.Params{Width: 64, Height: 48, Focal: 24, Near: camera.DefaultNear})
	if err != nil {
		t.Fatalf("NewProjector: %v", err)
	}
	return Config{
		OutputDir:   t.TempDir(),
		Format:      format,
		Renderer:    render.New(proj, 1),
		Edges:       scene.Demo().Edges(),
		Style:       render.DefaultStyle(),
		Supersample: ss,
		Workers:     3,
	}
}

func TestRunWritesFrames(t *testing.T) {
	cfg := testConfig(t, "png", 2)
	vps := make([]camera.Viewpoint, 5)
	for i := range vps {
		vps[i] = camera.DefaultViewpoint()
		vps[i].Yaw += float64(i) * 10
	}

	results := Run(cfg, Jobs(vps))
	if len(results) != len(vps) {
		t.Fatalf("got %d results, want %d", len(results), len(vps))
	}
	for i, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", i, r.Error)
		}
		if r.Index != i || r.File != FileName(i, "png") {
			t.Errorf("frame %d: index %d file %q", i, r.Index, r.File)
		}
		if r.Stats.Edges != 20 {
			t.Errorf("frame %d: %d edges, want 20", i, r.Stats.Edges)
		}

		f, err := os.Open(filepath.Join(cfg.OutputDir, r.File))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode frame %d: %v", i, err)
		}
		if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
			t.Errorf("frame %d: size %v, want 64x48", i, b)
		}
	}
}

func TestRunReportsBadViewpoint(t *testing.T) {
	cfg := testConfig(t, "png", 1)
	vp := camera.DefaultViewpoint()
	vp.Yaw = math.NaN()

	results := Run(cfg, []Job{{Index: 0, Viewpoint: vp}})
	if results[0].Success || results[0].Error == "" {
		t.Fatalf("expected failure, got %+v", results[0])
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, FileName(0, "png"))); !os.IsNotExist(err) {
		t.Error("no file should be written for a failed frame")
	}
}

func TestRenderImageSupersampleKeepsSize(t *testing.T) {
	for _, ss := range []int{0, 1, 3} {
		cfg := testConfig(t, "png", ss)
		img, f, err := RenderImage(cfg, camera.DefaultViewpoint())
		if err != nil {
			t.Fatalf("ss=%d: %v", ss, err)
		}
		if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
			t.Errorf("ss=%d: size %v", ss, b)
		}
		if f.Stats.Drawn == 0 {
			t.Errorf("ss=%d: nothing drawn", ss)
		}
	}
}

func TestEncodeFormats(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}

	decoders := map[string]func(*bytes.Reader) (image.Image, error){
		"png":  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		"tga":  func(r *bytes.Reader) (image.Image, error) { return tga.Decode(r) },
		"webp": func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) },
	}
	for format, decode := range decoders {
		var buf bytes.Buffer
		if err := Encode(&buf, img, strings.ToUpper(format)); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		got, err := decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("%s decode: %v", format, err)
		}
		if b := got.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
			t.Errorf("%s: size %v", format, b)
		}
	}
}

func TestNormalizeFormat(t *testing.T) {
	tests := map[string]string{"": "webp", ".PNG": "png", "tga": "tga", "WebP": "webp"}
	for in, want := range tests {
		got, err := NormalizeFormat(in)
		if err != nil || got != want {
			t.Errorf("NormalizeFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := NormalizeFormat("gif"); err == nil {
		t.Error("expected error for gif")
	}
}

func TestWriteManifest(t *testing.T) {
	vp := camera.DefaultViewpoint()
	results := []Result{
		{Index: 0, File: "frame_00000.png", Viewpoint: vp, Stats: render.Stats{Edges: 20, Drawn: 18, Culled: 2}, Success: true},
		{Index: 1, File: "frame_00001.png", Viewpoint: vp, Error: "boom"},
	}
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := WriteManifest(path, results); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].Image != "frame_00000.png" || entries[0].Drawn != 18 || entries[0].Yaw != camera.DefaultYaw {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].Image != "" || entries[1].Error != "boom" {
		t.Errorf("entry 1 = %+v", entries[1])
	}
}
