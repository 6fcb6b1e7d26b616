package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Orientation tells which axis a wall segment lies along.
type Orientation int

const (
	// Horizontal walls lie along the x axis on a row boundary (north/south faces).
	Horizontal Orientation = iota + 1
	// Vertical walls lie along the z axis on a column boundary (east/west faces).
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Wall identifies one unit wall segment of the grid by its start corner.
type Wall struct {
	Orientation Orientation // Axis the segment lies along
	X           int         // Column boundary (Vertical) or column span (Horizontal)
	Z           int         // Row boundary (Horizontal) or row span (Vertical)
}

func (w Wall) String() string {
	return fmt.Sprintf("(%s, %d, %d)", w.Orientation, w.X, w.Z)
}

// WallSet is a set of wall segments. The zero value is not usable; build one
// with NewWallSet.
type WallSet struct {
	set mapset.Set[Wall]
}

// NewWallSet returns a set holding the given walls. Duplicates collapse.
func NewWallSet(walls ...Wall) *WallSet {
	s := &WallSet{set: mapset.New[Wall]()}
	for _, w := range walls {
		s.set.Put(w)
	}
	return s
}

// Has reports whether w is in the set.
func (s *WallSet) Has(w Wall) bool {
	return s.set.Has(w)
}

// Size returns the number of distinct walls in the set.
func (s *WallSet) Size() int {
	return s.set.Size()
}

// Walls returns the members of the set in no particular order.
func (s *WallSet) Walls() []Wall {
	walls := make([]Wall, 0, s.set.Size())
	s.set.Each(func(w Wall) {
		walls = append(walls, w)
	})
	return walls
}

// ContainsAll reports whether every wall in walls is a member of the set.
func (s *WallSet) ContainsAll(walls []Wall) bool {
	for _, w := range walls {
		if !s.set.Has(w) {
			return false
		}
	}
	return true
}

func (s *WallSet) add(w Wall) {
	s.set.Put(w)
}
