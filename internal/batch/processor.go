// Package batch renders a sequence of viewpoints to image files with a worker
// pool.
package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/image/draw"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/postprocess"
	"wireframe-renderer/internal/raster"
	"wireframe-renderer/internal/render"
	"wireframe-renderer/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Format      string
	Renderer    *render.Renderer
	Edges       []scene.Edge
	Style       render.Style
	Supersample int
	Filter      draw.Interpolator
	Workers     int
	// Progress receives a status line every couple of seconds. Nil is silent.
	Progress io.Writer
}

// Job is one frame to render.
type Job struct {
	Index     int
	Viewpoint camera.Viewpoint
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index     int
	File      string
	Viewpoint camera.Viewpoint
	Stats     render.Stats
	Success   bool
	Error     string
}

// Jobs numbers a viewpoint sequence from zero.
func Jobs(vps []camera.Viewpoint) []Job {
	jobs := make([]Job, len(vps))
	for i, vp := range vps {
		jobs[i] = Job{Index: i, Viewpoint: vp}
	}
	return jobs
}

// FileName returns the output name of frame i, relative to the output dir.
func FileName(i int, format string) string {
	return fmt.Sprintf("frame_%05d.%s", i, format)
}

// Run renders all jobs using a worker pool. Results are in job order.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processFrame(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

// RenderImage renders one viewpoint to an image of the projector's size.
func RenderImage(cfg Config, vp camera.Viewpoint) (*image.NRGBA, render.Frame, error) {
	f, err := cfg.Renderer.Render(cfg.Edges, vp)
	if err != nil {
		return nil, render.Frame{}, err
	}

	p := cfg.Renderer.Projector().Params()
	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}

	style := cfg.Style
	style.Scale = float64(ss)
	fb := raster.NewFrameBuffer(p.Width*ss, p.Height*ss)
	render.Draw(fb, f, style)

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, p.Width, p.Height, cfg.Filter)
	}
	return img, f, nil
}

func processFrame(cfg Config, job Job) Result {
	res := Result{Index: job.Index, Viewpoint: job.Viewpoint}

	format, err := NormalizeFormat(cfg.Format)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	img, f, err := RenderImage(cfg, job.Viewpoint)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Stats = f.Stats

	res.File = FileName(job.Index, format)
	outPath := filepath.Join(cfg.OutputDir, res.File)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	out, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer out.Close()

	if err := Encode(out, img, format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
