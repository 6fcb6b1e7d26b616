package maze

import (
	"math/rand"
	"time"
)

// Sample returns boundary plus (target - len(boundary)) walls drawn uniformly at
// random and without replacement from universe minus boundary. Every subset of
// that size is equally likely. A nil rng is replaced by a time-seeded source.
//
// Sampling walks the candidates in universe order, so a seeded rng always yields
// the same set.
func Sample(universe, boundary []Wall, target int, rng *rand.Rand) (*WallSet, error) {
	walls := NewWallSet(boundary...)

	var candidates []Wall
	for _, w := range universe {
		if !walls.Has(w) {
			candidates = append(candidates, w)
		}
	}

	missing := target - walls.Size()
	switch {
	case missing < 0:
		return nil, &ConfigurationError{
			WallCount: target,
			Boundary:  walls.Size(),
			Available: len(candidates),
			Err:       ErrWallCountBelowBoundary,
		}
	case missing > len(candidates):
		return nil, &ConfigurationError{
			WallCount: target,
			Boundary:  walls.Size(),
			Available: len(candidates),
			Err:       ErrWallCountExceedsUniverse,
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Partial Fisher-Yates: after step i the prefix candidates[:i+1] is a
	// uniform sample of size i+1.
	for i := 0; i < missing; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		walls.add(candidates[i])
	}

	return walls, nil
}
