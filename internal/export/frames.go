package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/atomviz/internal/anim"
)

// FrameOptions controls frame-sequence export.
type FrameOptions struct {
	FPS    float64
	Width  int
	Height int
}

// WriteSVGFrames samples the animation at a fixed frame rate and writes one
// SVG file per frame into dir. Sampling is read-only on the animator, so
// frames are rendered in parallel.
func WriteSVGFrames(ctx context.Context, a *anim.Animator, dir string, opts FrameOptions) (int, error) {
	if opts.FPS <= 0 {
		return 0, fmt.Errorf("fps must be positive, got %f", opts.FPS)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}

	frames := int(a.Duration()*opts.FPS) + 1
	renderer := NewSVGRenderer(a.Config(), a.Background(), opts.Width, opts.Height)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < frames; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			st := a.State(float64(i) / opts.FPS)
			path := filepath.Join(dir, fmt.Sprintf("frame_%05d.svg", i))
			return os.WriteFile(path, []byte(renderer.Frame(st)), 0o644)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return frames, nil
}
