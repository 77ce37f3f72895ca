package model

import (
	"errors"
	"fmt"
)

// Unreachable marks a pair of factories with no link between them. It is
// also the value of a factory's distance to itself.
const Unreachable = -1

var (
	ErrUnknownFactory = errors.New("unknown factory")
	ErrInvalidLink    = errors.New("invalid link")
)

// DistanceMatrix is the static travel-time table between factories, built
// once at startup. Entries are row-major: Grid[from*Size + to].
type DistanceMatrix struct {
	Size int
	Grid []int
}

// NewDistanceMatrix returns a size x size matrix with every pair unreachable.
func NewDistanceMatrix(size int) DistanceMatrix {
	grid := make([]int, size*size)
	for i := range grid {
		grid[i] = Unreachable
	}
	return DistanceMatrix{Size: size, Grid: grid}
}

// Link records a symmetric travel time between a and b.
func (m *DistanceMatrix) Link(a, b, distance int) error {
	if !m.valid(a) {
		return fmt.Errorf("link %d-%d: %w: %d", a, b, ErrUnknownFactory, a)
	}
	if !m.valid(b) {
		return fmt.Errorf("link %d-%d: %w: %d", a, b, ErrUnknownFactory, b)
	}
	if a == b || distance <= 0 {
		return fmt.Errorf("link %d-%d distance %d: %w", a, b, distance, ErrInvalidLink)
	}
	m.Grid[a*m.Size+b] = distance
	m.Grid[b*m.Size+a] = distance
	return nil
}

// At returns the travel time from a to b. ok is false when the pair is
// unreachable, out of range, or a == b.
func (m *DistanceMatrix) At(a, b int) (int, bool) {
	if !m.valid(a) || !m.valid(b) {
		return 0, false
	}
	d := m.Grid[a*m.Size+b]
	if d == Unreachable {
		return 0, false
	}
	return d, true
}

// Nearest returns the smallest reachable distance from a to any other
// factory. ok is false for an isolated factory.
func (m *DistanceMatrix) Nearest(a int) (int, bool) {
	best, found := 0, false
	for b := 0; b < m.Size; b++ {
		d, ok := m.At(a, b)
		if !ok {
			continue
		}
		if !found || d < best {
			best, found = d, true
		}
	}
	return best, found
}

func (m *DistanceMatrix) valid(id int) bool {
	return id >= 0 && id < m.Size
}
