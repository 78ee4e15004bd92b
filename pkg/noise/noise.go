// Package noise generates 3D gradient noise and quantized density volumes.
package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

var (
	// ErrInvalidSample is returned for NaN or infinite coordinates.
	ErrInvalidSample = errors.New("non-finite sample coordinate")

	// ErrInvalidPermutation is returned when an injected table is not a
	// permutation of 0..255.
	ErrInvalidPermutation = errors.New("invalid permutation table")
)

// tableSize is the number of distinct lattice hashes.
const tableSize = 256

// gradients are the edge midpoints of a cube.
var gradients = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Sampler produces a scalar value for a point in space.
type Sampler interface {
	Sample(x, y, z float64) (float64, error)
}

// Field is a gradient noise generator. The permutation table is fixed at
// construction, so a Field always returns the same value for the same point.
type Field struct {
	// perm holds the shuffled table twice so corner lookups never wrap.
	perm [2 * tableSize]int
}

var _ Sampler = (*Field)(nil)

// New creates a field whose permutation is shuffled with src.
// A nil src falls back to a clock-seeded source.
func New(src rand.Source) *Field {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	rng := rand.New(src)

	var p [tableSize]int
	for i := range p {
		p[i] = i
	}
	// Fisher-Yates
	for i := tableSize - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return fromTable(p)
}

// NewSeeded creates a field from a deterministic seed.
func NewSeeded(seed int64) *Field {
	return New(rand.NewSource(seed))
}

// FromPermutation creates a field from a fixed table, which must contain
// each of 0..255 exactly once.
func FromPermutation(table []int) (*Field, error) {
	if len(table) != tableSize {
		return nil, fmt.Errorf("%w: got %d entries, want %d", ErrInvalidPermutation, len(table), tableSize)
	}

	var p [tableSize]int
	var seen [tableSize]bool
	for i, v := range table {
		if v < 0 || v >= tableSize {
			return nil, fmt.Errorf("%w: entry %d out of range: %d", ErrInvalidPermutation, i, v)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: duplicate value %d", ErrInvalidPermutation, v)
		}
		seen[v] = true
		p[i] = v
	}

	return fromTable(p), nil
}

func fromTable(p [tableSize]int) *Field {
	f := &Field{}
	copy(f.perm[:tableSize], p[:])
	copy(f.perm[tableSize:], p[:])
	return f
}

// Permutation returns a copy of the 256-entry table.
func (f *Field) Permutation() []int {
	out := make([]int, tableSize)
	copy(out, f.perm[:tableSize])
	return out
}

// Sample returns the noise value at (x, y, z), roughly in [-1, 1].
func (f *Field) Sample(x, y, z float64) (float64, error) {
	if !finite(x) || !finite(y) || !finite(z) {
		return 0, fmt.Errorf("%w: (%v, %v, %v)", ErrInvalidSample, x, y, z)
	}

	// Unit cube containing the point
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	X := int(fx) & 255
	Y := int(fy) & 255
	Z := int(fz) & 255

	// Position inside the cube
	x -= fx
	y -= fy
	z -= fz

	u := Fade(x)
	v := Fade(y)
	w := Fade(z)

	p := &f.perm

	// Corner hashes
	a := p[X] + Y
	aa := p[a] + Z
	ab := p[a+1] + Z
	b := p[X+1] + Y
	ba := p[b] + Z
	bb := p[b+1] + Z

	x1 := Lerp(u, grad(p[aa], x, y, z), grad(p[ba], x-1, y, z))
	x2 := Lerp(u, grad(p[ab], x, y-1, z), grad(p[bb], x-1, y-1, z))
	y1 := Lerp(v, x1, x2)

	x3 := Lerp(u, grad(p[aa+1], x, y, z-1), grad(p[ba+1], x-1, y, z-1))
	x4 := Lerp(u, grad(p[ab+1], x, y-1, z-1), grad(p[bb+1], x-1, y-1, z-1))
	y2 := Lerp(v, x3, x4)

	return Lerp(w, y1, y2), nil
}

// Fade is the quintic easing curve 6t^5 - 15t^4 + 10t^3.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Lerp interpolates linearly from a (t=0) to b (t=1).
func Lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad dots the gradient selected by hash with the offset (x, y, z).
func grad(hash int, x, y, z float64) float64 {
	g := gradients[hash%len(gradients)]
	return g[0]*x + g[1]*y + g[2]*z
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
