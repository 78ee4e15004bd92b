// Package debug provides debug visualization utilities.
package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// ErrVolumeSize is returned when the voxel data does not hold size³ bytes.
var ErrVolumeSize = errors.New("volume data size mismatch")

// SliceMontage lays the Z slices of a size³ volume out on a grid with cols
// columns. Each voxel becomes a scale×scale block.
// Voxels are packed X fastest, then Y, then Z.
func SliceMontage(data []uint8, size, cols, scale int) (*image.Gray, error) {
	if size < 1 || len(data) != size*size*size {
		return nil, fmt.Errorf("%w: %d bytes for size %d", ErrVolumeSize, len(data), size)
	}
	if cols < 1 {
		cols = 1
	}
	if cols > size {
		cols = size
	}
	if scale < 1 {
		scale = 1
	}
	rows := (size + cols - 1) / cols

	out := image.NewGray(image.Rect(0, 0, cols*size*scale, rows*size*scale))
	slab := size * size
	for k := 0; k < size; k++ {
		slice := &image.Gray{
			Pix:    data[k*slab : (k+1)*slab],
			Stride: size,
			Rect:   image.Rect(0, 0, size, size),
		}
		x0 := (k % cols) * size * scale
		y0 := (k / cols) * size * scale
		dst := image.Rect(x0, y0, x0+size*scale, y0+size*scale)
		draw.NearestNeighbor.Scale(out, dst, slice, slice.Bounds(), draw.Src, nil)
	}
	return out, nil
}

// WritePNG encodes img to path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}
