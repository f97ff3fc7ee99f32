package io

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/Aleod-m/PGE/math"
	"github.com/Aleod-m/PGE/terrain"
)

var ErrUnsupportedFormat = errors.New("io: unsupported image format")

type imageFormat int

const (
	formatPNG imageFormat = iota
	formatTIFF
)

func formatOf(path string) (imageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return formatPNG, nil
	case ".tif", ".tiff":
		return formatTIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// HeightImage renders hm as a 16-bit grayscale image. Samples are clamped to
// [0, 1]; normalize the map first to use the full range.
func HeightImage(hm *terrain.HeightMap) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, hm.Width, hm.Height))
	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			v := math.Clamp(hm.At(x, y), 0, 1)
			img.SetGray16(x, y, color.Gray16{Y: uint16(v*0xffff + 0.5)})
		}
	}
	return img
}

// SaveHeightImage writes hm as a 16-bit grayscale PNG or Deflate-compressed TIFF,
// picked from the file extension.
func SaveHeightImage(path string, hm *terrain.HeightMap) error {
	return saveImage(path, HeightImage(hm))
}

// SaveHeightImageScaled is SaveHeightImage resampled to width x height with a
// Catmull-Rom filter.
func SaveHeightImageScaled(path string, hm *terrain.HeightMap, width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("save %q: invalid image size %dx%d", path, width, height)
	}
	src := HeightImage(hm)
	dst := image.NewGray16(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return saveImage(path, dst)
}

func saveImage(path string, img image.Image) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	switch format {
	case formatTIFF:
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}

	b := img.Bounds()
	logger().Info("wrote height image", "path", path, "width", b.Dx(), "height", b.Dy())
	return nil
}

// LoadHeightImage reads a PNG or TIFF back into a height map with samples in
// [0, 1]. Color images are converted to luminance.
func LoadHeightImage(path string) (*terrain.HeightMap, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch format {
	case formatTIFF:
		img, err = tiff.Decode(f)
	default:
		img, err = png.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}

	b := img.Bounds()
	hm := terrain.NewHeightMap(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			hm.Set(x-b.Min.X, y-b.Min.Y, float64(g.Y)/0xffff)
		}
	}
	return hm, nil
}
