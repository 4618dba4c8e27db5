package maplib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMap_ScalesTiles(t *testing.T) {
	m := DefaultMap()

	assert.Equal(t, Vec2{X: 64, Y: 68}, m.TileSize)
	assert.Equal(t, Vec2{X: 32, Y: 34}, m.HalfTileSize())
	assert.Equal(t, 121, m.TileCount())
}

func TestIndexToCoordinates_RowMajor(t *testing.T) {
	m := DefaultMap()

	assert.Equal(t, At(0, 0), m.IndexToCoordinates(0))
	assert.Equal(t, At(10, 0), m.IndexToCoordinates(10))
	assert.Equal(t, At(0, 1), m.IndexToCoordinates(11))
	assert.Equal(t, At(10, 10), m.IndexToCoordinates(120))
}

func TestCoordinatesToPoint(t *testing.T) {
	m := DefaultMap()

	// 5.5 rows of half-tile height lift the origin
	assert.Equal(t, Vec2{X: 0, Y: 187}, m.CoordinatesToPoint(At(0, 0)))
	assert.Equal(t, Vec2{X: 32, Y: 170}, m.CoordinatesToPoint(At(1, 0)))
	assert.Equal(t, Vec2{X: -32, Y: 170}, m.CoordinatesToPoint(At(0, 1)))
	assert.Equal(t, Vec2{X: 0, Y: -153}, m.CoordinatesToPoint(At(10, 10)))
}

func TestPointToCoordinates_RoundTripAnchors(t *testing.T) {
	m := DefaultMap()

	for i := 0; i < m.TileCount(); i++ {
		c := m.IndexToCoordinates(i)
		p, _ := m.PositionToTranslation(Position{Coordinates: c})

		got := m.PointToCoordinates(p)
		assert.True(t, got.Equal(c), "anchor of %v resolved to %v", c, got)
		// An exact anchor has no remainder, which is the Right branch
		assert.Equal(t, SideRight, got.Side, "side of %v", c)
	}
}

func TestPointToCoordinates_SideBoundary(t *testing.T) {
	m := DefaultMap()

	tests := []struct {
		name   string
		x      float64
		column int
		side   Side
	}{
		{name: "integer", x: 3, column: 3, side: SideRight},
		{name: "quarter remainder", x: 2.75, column: 3, side: SideRight},
		{name: "exact half stays right", x: 2.5, column: 3, side: SideRight},
		{name: "past half goes left", x: 2.25, column: 3, side: SideLeft},
		{name: "just above previous cell", x: 2.0625, column: 3, side: SideLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.PointToCoordinates(m.GridToPoint(tt.x, 4))
			assert.Equal(t, tt.column, got.Column)
			assert.Equal(t, 4, got.Row)
			assert.Equal(t, tt.side, got.Side)
		})
	}
}

func TestPointToCoordinates_RoundsUp(t *testing.T) {
	m := DefaultMap()

	// Anything in (k-1, k] lands on k, never on the nearest integer
	got := m.PointToCoordinates(m.GridToPoint(1.125, 1.125))
	assert.Equal(t, Cell{Column: 2, Row: 2}, got.Cell())

	got = m.PointToCoordinates(m.GridToPoint(0.875, 0.875))
	assert.Equal(t, Cell{Column: 1, Row: 1}, got.Cell())
}

func TestPointToCoordinates_CanLeaveBounds(t *testing.T) {
	m := DefaultMap()

	got := m.PointToCoordinates(Vec2{X: 0, Y: 1000})
	assert.False(t, m.InBounds(got))

	got = m.PointToCoordinates(Vec2{X: 0, Y: -1000})
	assert.False(t, m.InBounds(got))
}

func TestPositionToTranslation_Depth(t *testing.T) {
	m := DefaultMap()

	tests := []struct {
		name  string
		pos   Position
		point Vec2
		depth float64
	}{
		{
			name:  "origin ground",
			pos:   Position{Coordinates: At(0, 0)},
			point: Vec2{X: 0, Y: 187},
			depth: 0,
		},
		{
			name:  "order lifts by a fifth",
			pos:   Position{Coordinates: At(0, 0), Order: 1},
			point: Vec2{X: 0, Y: 187},
			depth: 0.2,
		},
		{
			name:  "near tiles draw later",
			pos:   Position{Coordinates: At(4, 6)},
			point: m.CoordinatesToPoint(At(4, 6)),
			depth: 0.5,
		},
		{
			name:  "stack top uses shifted anchor",
			pos:   Position{Coordinates: At(10, 10), Floor: 2},
			point: Vec2{X: 0, Y: -85},
			depth: 16.0/20 + 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, depth := m.PositionToTranslation(tt.pos)
			assert.Equal(t, tt.point, point)
			assert.InDelta(t, tt.depth, depth, 1e-9)
		})
	}
}

func TestPositionToTranslation_FloorsStackUpward(t *testing.T) {
	m := DefaultMap()

	ground, gz := m.PositionToTranslation(Position{Coordinates: At(10, 10)})
	first, fz := m.PositionToTranslation(Position{Coordinates: At(10, 10), Floor: 1})

	assert.Equal(t, ground.X, first.X)
	assert.Greater(t, first.Y, ground.Y)
	assert.Greater(t, fz, gz)
}

func TestInBounds(t *testing.T) {
	m := DefaultMap()

	assert.True(t, m.InBounds(At(0, 0)))
	assert.True(t, m.InBounds(At(10, 10)))
	assert.False(t, m.InBounds(At(11, 0)))
	assert.False(t, m.InBounds(At(0, 11)))
	assert.False(t, m.InBounds(At(-1, 5)))
}

func TestVec2_Lerp(t *testing.T) {
	a := Vec2{X: 0, Y: 10}
	b := Vec2{X: 10, Y: 0}

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec2{X: 5, Y: 5}, a.Lerp(b, 0.5))
}
