package i

import "math/rand"

// MapGenerator builds a random wall map and returns its rendered lines.
type MapGenerator interface {
	// Generate returns the lines of a width x height map holding wallCount
	// walls, drawing randomness from rng.
	Generate(width, height, wallCount int, rng *rand.Rand) ([]string, error)
}
