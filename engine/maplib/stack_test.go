package maplib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ExactMatch(t *testing.T) {
	m := DefaultMap()
	b := newBoard()
	b.place(5, 5, 0)

	hit, ok := Resolve(m, b.idx, b.locs, At(5, 5))
	require.True(t, ok)
	assert.Equal(t, Hit{Coordinates: At(5, 5), Floor: 0, Top: 0}, hit)
}

func TestResolve_OverhangCorrection(t *testing.T) {
	m := DefaultMap()
	b := newBoard()
	b.place(10, 10, 2)

	tests := []struct {
		name string
		side Side
		want Coordinates
	}{
		{name: "left shifts row", side: SideLeft, want: Coordinates{Column: 10, Row: 12, Side: SideLeft}},
		{name: "right shifts column", side: SideRight, want: Coordinates{Column: 12, Row: 10, Side: SideRight}},
		{name: "center stays", side: SideCenter, want: At(10, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := Resolve(m, b.idx, b.locs, Coordinates{Column: 10, Row: 10, Side: tt.side})
			require.True(t, ok)
			assert.Equal(t, tt.want, hit.Coordinates)
			assert.Equal(t, tt.want.Side, hit.Coordinates.Side)
			assert.Equal(t, Floor(0), hit.Floor)
			assert.Equal(t, Floor(2), hit.Top)
		})
	}
}

func TestResolve_StackTopFromAbove(t *testing.T) {
	m := DefaultMap()
	b := newBoard()
	b.ground(DefaultMapSize)
	b.stack(10, 10, 1, 2)

	// The floor-2 tile of the tower is drawn over ground cell (8, 8)
	hit, ok := Resolve(m, b.idx, b.locs, Coordinates{Column: 8, Row: 8, Side: SideRight})
	require.True(t, ok)
	assert.True(t, hit.Coordinates.Equal(At(10, 10)))
	assert.Equal(t, Floor(2), hit.Floor)
	assert.Equal(t, Floor(2), hit.Top)
}

func TestResolve_OvershootFallsThrough(t *testing.T) {
	m := DefaultMap()
	b := newBoard()
	b.ground(DefaultMapSize)

	hit, ok := Resolve(m, b.idx, b.locs, At(3, 3))
	require.True(t, ok)
	assert.Equal(t, At(3, 3), hit.Coordinates)
	assert.Equal(t, Floor(0), hit.Floor)
}

func TestResolve_SideFaceOfTallerStack(t *testing.T) {
	m := NewMap(Vec2{X: 16, Y: 16}, Vec2{X: DefaultTileWidth, Y: DefaultTileHeight}, 1)
	b := newBoard()
	b.stack(5, 5, 0, 2)

	hit, ok := Resolve(m, b.idx, b.locs, Coordinates{Column: 5, Row: 5, Side: SideRight})
	require.True(t, ok)
	assert.True(t, hit.Coordinates.Equal(At(7, 5)))
	assert.Equal(t, Floor(0), hit.Floor)
	assert.Equal(t, Floor(2), hit.Top)
	assert.True(t, m.InBounds(hit.Coordinates))
}

func TestResolve_MiddleProbe(t *testing.T) {
	m := DefaultMap()
	b := newBoard()
	b.ground(DefaultMapSize)
	b.stack(9, 10, 1, 1)

	// Looking up one floor from (8, 9) reaches the step at (9, 10)
	hit, ok := Resolve(m, b.idx, b.locs, Coordinates{Column: 8, Row: 9, Side: SideLeft})
	require.True(t, ok)
	assert.True(t, hit.Coordinates.Equal(At(9, 10)))
	assert.Equal(t, Floor(1), hit.Floor)
}

func TestResolve_NoOccupant(t *testing.T) {
	m := DefaultMap()
	b := newBoard()

	_, ok := Resolve(m, b.idx, b.locs, At(4, 4))
	assert.False(t, ok)
}

func TestResolve_OutOfBoundsNeverIndexed(t *testing.T) {
	m := DefaultMap()
	b := newBoard()
	b.ground(DefaultMapSize)
	// Filed outside the map; must never be reached
	b.place(-1, -1, 0)

	_, ok := Resolve(m, b.idx, b.locs, At(-1, -1))
	assert.False(t, ok)

	_, ok = Resolve(m, b.idx, b.locs, At(40, 40))
	assert.False(t, ok)
}

func TestHit_Position(t *testing.T) {
	h := Hit{Coordinates: At(1, 2), Floor: 1, Top: 1}
	assert.Equal(t, Position{Coordinates: At(1, 2), Floor: 1, Order: 1}, h.Position(1))
}
