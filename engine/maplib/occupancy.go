package maplib

import (
	"fmt"
	"sort"
)

// Locator resolves the position of an occupant handle.
// The index never stores positions itself.
type Locator[T comparable] interface {
	PositionOf(occ T) (Position, bool)
}

// Occupancy maps a grid cell to the handles standing on it.
// An occupant is stored under the cell of its Position.Coordinates.
type Occupancy[T comparable] struct {
	buckets map[Cell][]T
	count   int
}

// NewOccupancy creates an empty index
func NewOccupancy[T comparable]() *Occupancy[T] {
	return &Occupancy[T]{buckets: make(map[Cell][]T)}
}

// Insert adds occ to the bucket at c. Inserting a handle twice is a no-op.
func (o *Occupancy[T]) Insert(c Coordinates, occ T) {
	key := c.Cell()
	for _, existing := range o.buckets[key] {
		if existing == occ {
			return
		}
	}
	o.buckets[key] = append(o.buckets[key], occ)
	o.count++
}

// Remove drops occ from the bucket at c and reports whether it was there
func (o *Occupancy[T]) Remove(c Coordinates, occ T) bool {
	key := c.Cell()
	bucket := o.buckets[key]
	for i, existing := range bucket {
		if existing != occ {
			continue
		}
		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(o.buckets, key)
		} else {
			o.buckets[key] = bucket
		}
		o.count--
		return true
	}
	return false
}

// Move re-files occ from one cell to another
func (o *Occupancy[T]) Move(from, to Coordinates, occ T) {
	o.Remove(from, occ)
	o.Insert(to, occ)
}

// OccupantsAt returns a copy of the handles at c
func (o *Occupancy[T]) OccupantsAt(c Coordinates) []T {
	bucket := o.buckets[c.Cell()]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]T, len(bucket))
	copy(out, bucket)
	return out
}

// Contains reports whether occ is filed under c
func (o *Occupancy[T]) Contains(c Coordinates, occ T) bool {
	for _, existing := range o.buckets[c.Cell()] {
		if existing == occ {
			return true
		}
	}
	return false
}

// TopmostAt returns the occupant at c with the greatest floor.
// Among equal floors the later-inserted occupant wins.
func (o *Occupancy[T]) TopmostAt(c Coordinates, loc Locator[T]) (T, Position, bool) {
	var (
		best    T
		bestPos Position
		found   bool
	)
	for _, occ := range o.buckets[c.Cell()] {
		pos, ok := loc.PositionOf(occ)
		if !ok {
			inconsistent(fmt.Sprintf("occupant %v at %v has no position", occ, c))
			continue
		}
		if !found || pos.Floor >= bestPos.Floor {
			best, bestPos, found = occ, pos, true
		}
	}
	return best, bestPos, found
}

// Len returns the number of filed handles
func (o *Occupancy[T]) Len() int { return o.count }

// Cells returns every non-empty cell in row-major order
func (o *Occupancy[T]) Cells() []Cell {
	cells := make([]Cell, 0, len(o.buckets))
	for c := range o.buckets {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Column < cells[j].Column
	})
	return cells
}
