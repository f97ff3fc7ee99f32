package terrain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgravesa/go-parallel/parallel"

	"github.com/Aleod-m/PGE/core"
)

func logger() *slog.Logger {
	return core.Named("terrain")
}

// Sample evaluates the fractal stack described by p over a width x height grid.
// Rows are spread across goroutines; each row is a disjoint slice of the
// result. Cancelling ctx stops workers before their next row and the context
// error is returned.
func Sample(ctx context.Context, src Source, p Params2, width, height int) (*HeightMap, error) {
	fr, err := NewFractal2(src, p)
	if err != nil {
		return nil, err
	}
	return sampleGrid(ctx, width, height, fr.At)
}

// SampleSlice samples the plane z of the 3D stack described by p.
func SampleSlice(ctx context.Context, src Source, p Params3, width, height int, z float64) (*HeightMap, error) {
	fr, err := NewFractal3(src, p)
	if err != nil {
		return nil, err
	}
	return sampleGrid(ctx, width, height, func(x, y float64) float64 {
		return fr.At(x, y, z)
	})
}

func sampleGrid(ctx context.Context, width, height int, at func(x, y float64) float64) (*HeightMap, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d is empty", ErrInvalidParams, width, height)
	}

	start := time.Now()
	hm := NewHeightMap(width, height)
	parallel.For(height, func(y, _ int) {
		if ctx.Err() != nil {
			return
		}
		row := hm.Data[y*width : (y+1)*width]
		for x := range row {
			row[x] = at(float64(x), float64(y))
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("terrain: sampling %dx%d: %w", width, height, err)
	}

	logger().Info("sampled height map",
		"width", width,
		"height", height,
		"elapsed", time.Since(start))
	return hm, nil
}
