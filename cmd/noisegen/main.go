// Command noisegen samples a fractal noise height field and writes it out as a
// grayscale image and, optionally, a triangle mesh.
//
//	noisegen -seed 42 -size 512x512 -octaves 6 -frequency 0.005 -out height.png -mesh terrain.glb
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Aleod-m/PGE/core"
	"github.com/Aleod-m/PGE/io"
	"github.com/Aleod-m/PGE/math"
	"github.com/Aleod-m/PGE/terrain"
)

type config struct {
	seed        int64
	source      string
	width       int
	height      int
	octaves     int
	persistence float64
	lacunarity  float64
	frequency   float64
	centerX     float64
	centerY     float64
	angle       float64
	slice       float64
	useSlice    bool
	curve       string
	out         string
	imageWidth  int
	imageHeight int
	mesh        string
	obj         string
	cell        float64
	heightScale float64
}

func main() {
	var cfg config
	size := flag.String("size", "256x256", "grid size as WxH")
	imageSize := flag.String("image-size", "", "resample the image to WxH (default: grid size)")
	slice := flag.String("slice", "", "sample the 3D field at this z instead of the 2D field")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Int64Var(&cfg.seed, "seed", 0, "noise seed (time based when omitted)")
	flag.StringVar(&cfg.source, "source", terrain.SourceOpenSimplex,
		"noise source ("+strings.Join(terrain.SourceKinds(), ", ")+")")
	flag.IntVar(&cfg.octaves, "octaves", 4, "number of octaves")
	flag.Float64Var(&cfg.persistence, "persistence", 0.5, "amplitude ratio between octaves")
	flag.Float64Var(&cfg.lacunarity, "lacunarity", 2, "frequency ratio between octaves")
	flag.Float64Var(&cfg.frequency, "frequency", 0.01, "base frequency")
	flag.Float64Var(&cfg.centerX, "cx", 0, "domain center x")
	flag.Float64Var(&cfg.centerY, "cy", 0, "domain center y")
	flag.Float64Var(&cfg.angle, "angle", 0, "domain rotation in radians")
	flag.StringVar(&cfg.curve, "curve", "linear",
		"height curve ("+strings.Join(terrain.CurveNames(), ", ")+")")
	flag.StringVar(&cfg.out, "out", "height.png", "height image (.png, .tif, .tiff)")
	flag.StringVar(&cfg.mesh, "mesh", "", "optional glTF binary mesh output (.glb)")
	flag.StringVar(&cfg.obj, "obj", "", "optional Wavefront mesh output (.obj)")
	flag.Float64Var(&cfg.cell, "cell", 1, "mesh cell size")
	flag.Float64Var(&cfg.heightScale, "height", 32, "mesh height scale")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var err error
	if cfg.width, cfg.height, err = parseSize(*size); err != nil {
		fail(err)
	}
	if *imageSize != "" {
		if cfg.imageWidth, cfg.imageHeight, err = parseSize(*imageSize); err != nil {
			fail(err)
		}
	}
	if *slice != "" {
		if cfg.slice, err = strconv.ParseFloat(*slice, 64); err != nil {
			fail(fmt.Errorf("invalid -slice %q: %w", *slice, err))
		}
		cfg.useSlice = true
	}
	if !isSet(flag.CommandLine, "seed") {
		cfg.seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func run(ctx context.Context, cfg config) error {
	log := core.Named("noisegen")

	curve, err := terrain.LookupCurve(cfg.curve)
	if err != nil {
		return err
	}

	log.Info("generating height field",
		"source", cfg.source,
		"seed", cfg.seed,
		"width", cfg.width,
		"height", cfg.height,
		"octaves", cfg.octaves)

	var (
		src terrain.Source
		hm  *terrain.HeightMap
	)
	if cfg.useSlice {
		p := terrain.NewParams3(math.NewVec3(cfg.centerX, cfg.centerY, 0), math.NewVec3(0, 0, cfg.angle))
		p.Seed = cfg.seed
		p.Octaves = cfg.octaves
		p.Persistence = cfg.persistence
		p.Lacunarity = cfg.lacunarity
		p.Frequency = cfg.frequency
		src, err = p.Source(cfg.source)
		if err != nil {
			return err
		}
		hm, err = terrain.SampleSlice(ctx, src, p, cfg.width, cfg.height, cfg.slice)
	} else {
		p := terrain.NewParams2(math.NewVec2(cfg.centerX, cfg.centerY), cfg.angle)
		p.Seed = cfg.seed
		p.Octaves = cfg.octaves
		p.Persistence = cfg.persistence
		p.Lacunarity = cfg.lacunarity
		p.Frequency = cfg.frequency
		src, err = p.Source(cfg.source)
		if err != nil {
			return err
		}
		hm, err = terrain.Sample(ctx, src, p, cfg.width, cfg.height)
	}
	if err != nil {
		return err
	}

	lo, hi := hm.Range()
	log.Debug("raw range", "min", lo, "max", hi)
	hm.Reshape(curve)

	var mesh *core.MeshData
	if cfg.mesh != "" || cfg.obj != "" {
		if mesh, err = terrain.BuildMesh(hm, cfg.cell, cfg.heightScale); err != nil {
			return err
		}
	}

	// Outputs are independent files.
	var g errgroup.Group
	if cfg.out != "" {
		g.Go(func() error {
			if cfg.imageWidth > 0 {
				return io.SaveHeightImageScaled(cfg.out, hm, cfg.imageWidth, cfg.imageHeight)
			}
			return io.SaveHeightImage(cfg.out, hm)
		})
	}
	if cfg.mesh != "" {
		g.Go(func() error {
			return io.SaveGLB(cfg.mesh, "terrain", mesh)
		})
	}
	if cfg.obj != "" {
		g.Go(func() error {
			return io.ExportOBJ(cfg.obj, "terrain", mesh)
		})
	}
	return g.Wait()
}

// isSet reports whether the named flag was given on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return w, h, nil
}
