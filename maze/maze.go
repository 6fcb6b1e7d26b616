/*
Package maze generates random wall maps for a rectangular grid of cells.

A map is a set of unit wall segments lying on cell edges. The outer boundary of
the grid is always walled and the remaining walls are drawn uniformly at random,
without replacement, until the map holds the requested number of walls.

Maps render to an ASCII grid where each row of cells takes two lines: one with
the horizontal walls (" --") above the row and one with the vertical walls ("|")
to the west of each cell.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrConfiguration is matched by every error caused by a bad width, height
	// or wall count.
	ErrConfiguration = errors.New("invalid map configuration")

	ErrInvalidDimensions        = fmt.Errorf("%w: width and height must not be negative", ErrConfiguration)
	ErrWallCountBelowBoundary   = fmt.Errorf("%w: wall count is below the boundary wall count", ErrConfiguration)
	ErrWallCountExceedsUniverse = fmt.Errorf("%w: wall count exceeds the number of possible walls", ErrConfiguration)

	ErrBoundaryNotInUniverse = errors.New("boundary wall is not part of the wall universe")
)

// ConfigurationError reports a wall count that cannot be satisfied for the
// given grid.
type ConfigurationError struct {
	Width     int
	Height    int
	WallCount int
	Boundary  int // walls forced by the outer rectangle
	Available int // non-boundary walls that can be sampled
	Err       error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v (width=%d height=%d wall_count=%d boundary=%d available=%d)",
		e.Err, e.Width, e.Height, e.WallCount, e.Boundary, e.Available)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Map is a generated wall map.
type Map struct {
	Width  int      // Number of cell columns
	Height int      // Number of cell rows
	Walls  *WallSet // Boundary walls plus the random fill
}

// UniverseCount returns how many wall segments a width x height grid has.
func UniverseCount(width, height int) int {
	return width*(height+1) + (width+1)*height
}

// BoundaryCount returns how many wall segments lie on the outer rectangle.
func BoundaryCount(width, height int) int {
	if width == 0 || height == 0 {
		// The degenerate rectangle still has the segments of its non-zero side.
		return len(Boundary(width, height))
	}
	return 2*width + 2*height
}

// Universe lists every wall segment of a width x height grid: all horizontal
// segments ordered by x then z, followed by all vertical ones in the same order.
func Universe(width, height int) []Wall {
	if width < 0 || height < 0 {
		return nil
	}

	walls := make([]Wall, 0, UniverseCount(width, height))
	for x := 0; x < width; x++ {
		for z := 0; z <= height; z++ {
			walls = append(walls, Wall{Orientation: Horizontal, X: x, Z: z})
		}
	}
	for x := 0; x <= width; x++ {
		for z := 0; z < height; z++ {
			walls = append(walls, Wall{Orientation: Vertical, X: x, Z: z})
		}
	}
	return walls
}

// Boundary lists the segments of the universe lying on the outer rectangle,
// keeping the universe order.
func Boundary(width, height int) []Wall {
	var walls []Wall
	for _, w := range Universe(width, height) {
		if isBoundary(w, width, height) {
			walls = append(walls, w)
		}
	}
	return walls
}

func isBoundary(w Wall, width, height int) bool {
	switch w.Orientation {
	case Horizontal:
		return w.Z == 0 || w.Z == height
	case Vertical:
		return w.X == 0 || w.X == width
	default:
		return false
	}
}

// NewMap builds a map with the full boundary and wallCount walls in total.
// A nil rng is replaced by a time-seeded source.
func NewMap(width, height, wallCount int, rng *rand.Rand) (*Map, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w (width=%d height=%d)", ErrInvalidDimensions, width, height)
	}

	universe := Universe(width, height)
	boundary := Boundary(width, height)
	if !NewWallSet(universe...).ContainsAll(boundary) {
		return nil, ErrBoundaryNotInUniverse
	}

	walls, err := Sample(universe, boundary, wallCount, rng)
	if err != nil {
		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) {
			cfgErr.Width, cfgErr.Height = width, height
		}
		return nil, err
	}

	return &Map{
		Width:  width,
		Height: height,
		Walls:  walls,
	}, nil
}

// Lines renders the map, see Render.
func (m *Map) Lines() []string {
	return Render(m.Walls, m.Width, m.Height)
}

// String renders the map as newline separated text without a trailing newline.
func (m *Map) String() string {
	return Format(m.Lines())
}

// Generate builds a random map and returns its rendered lines. Nothing is
// rendered when the configuration is rejected.
func Generate(width, height, wallCount int, rng *rand.Rand) ([]string, error) {
	m, err := NewMap(width, height, wallCount, rng)
	if err != nil {
		return nil, err
	}
	return m.Lines(), nil
}

// NewRand returns a random source seeded with seed, or with the current time
// when seed is nil. The seed actually used is returned so runs can be replayed.
func NewRand(seed *int64) (*rand.Rand, int64) {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewSource(s)), s
}

// Generator adapts Generate to an interface value.
type Generator struct{}

func (Generator) Generate(width, height, wallCount int, rng *rand.Rand) ([]string, error) {
	return Generate(width, height, wallCount, rng)
}
