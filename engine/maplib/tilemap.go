package maplib

import "math"

// Default map constants of the prototype board
const (
	DefaultMapSize     = 11
	DefaultTileWidth   = 16
	DefaultTileHeight  = 17
	DefaultScaleFactor = 4
)

// Isometric basis vectors, in half-tile units
var (
	IsoI = Vec2{X: 1, Y: -0.5}
	IsoJ = Vec2{X: -1, Y: -0.5}
)

// Vec2 is a point in world space (y grows upward)
type Vec2 struct {
	X, Y float64
}

// Lerp interpolates between v and to by t
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (to.X-v.X)*t, Y: v.Y + (to.Y-v.Y)*t}
}

// Map converts between world points and grid coordinates
type Map struct {
	Size     Vec2 // columns, rows
	TileSize Vec2 // scaled pixel size of one tile sprite

	halfSize     Vec2
	halfTileSize Vec2
}

// NewMap creates a map of size tiles whose sprites are tileSize pixels, scaled by scale
func NewMap(size, tileSize Vec2, scale float64) *Map {
	ts := Vec2{X: tileSize.X * scale, Y: tileSize.Y * scale}
	return &Map{
		Size:         size,
		TileSize:     ts,
		halfSize:     Vec2{X: size.X / 2, Y: size.Y / 2},
		halfTileSize: Vec2{X: ts.X / 2, Y: ts.Y / 2},
	}
}

// DefaultMap returns the 11x11 prototype board
func DefaultMap() *Map {
	return NewMap(
		Vec2{X: DefaultMapSize, Y: DefaultMapSize},
		Vec2{X: DefaultTileWidth, Y: DefaultTileHeight},
		DefaultScaleFactor,
	)
}

// HalfTileSize returns half the scaled tile size
func (m *Map) HalfTileSize() Vec2 { return m.halfTileSize }

// Columns returns the width of the map in tiles
func (m *Map) Columns() int { return int(m.Size.X) }

// Rows returns the height of the map in tiles
func (m *Map) Rows() int { return int(m.Size.Y) }

// TileCount returns the number of ground cells
func (m *Map) TileCount() int { return m.Columns() * m.Rows() }

// IndexToCoordinates maps a row-major index to coordinates
func (m *Map) IndexToCoordinates(index int) Coordinates {
	cols := m.Columns()
	return At(index%cols, index/cols)
}

// PointToCoordinates converts a world point to grid coordinates.
// Each axis is rounded up, so a cell k covers the open-closed range (k-1, k].
// The column remainder picks the diamond half: [0, 0.5] is Right, otherwise Left.
func (m *Map) PointToCoordinates(p Vec2) Coordinates {
	a := IsoI.X * m.halfTileSize.X
	b := IsoJ.X * m.halfTileSize.X
	c := IsoI.Y * m.halfTileSize.Y
	d := IsoJ.Y * m.halfTileSize.Y
	det := a*d - b*c

	// Divide instead of multiplying by 1/det so tile anchors invert exactly
	x := (d*p.X-b*p.Y)/det + m.halfSize.X
	y := (a*p.Y-c*p.X)/det + m.halfSize.Y

	cx := math.Ceil(x)
	cy := math.Ceil(y)

	side := SideLeft
	if diff := cx - x; diff >= 0 && diff <= 0.5 {
		side = SideRight
	}
	return Coordinates{Column: int(cx), Row: int(cy), Side: side}
}

// GridToPoint projects fractional grid coordinates to a world point
func (m *Map) GridToPoint(x, y float64) Vec2 {
	px := IsoI.X*x*m.halfTileSize.X + IsoJ.X*y*m.halfTileSize.X
	py := IsoI.Y*x*m.halfTileSize.Y + IsoJ.Y*y*m.halfTileSize.Y
	return Vec2{X: px, Y: py + m.halfSize.Y*m.halfTileSize.Y}
}

// CoordinatesToPoint returns the render anchor of a ground-floor cell
func (m *Map) CoordinatesToPoint(c Coordinates) Vec2 {
	return m.GridToPoint(float64(c.Column), float64(c.Row))
}

// PositionToTranslation returns the render point and painter's depth of a position.
// Depth is order/5 + (row+column)/20 + floor/2 over the floor-shifted coordinates.
func (m *Map) PositionToTranslation(p Position) (Vec2, float64) {
	c := p.Anchor()
	z := float64(p.Order)/5 +
		float64(c.Row+c.Column)/20 +
		float64(p.Floor)/2
	return m.CoordinatesToPoint(c), z
}

// InBounds checks if coordinates are within map bounds
func (m *Map) InBounds(c Coordinates) bool {
	return c.Column >= 0 && c.Row >= 0 && c.Column < m.Columns() && c.Row < m.Rows()
}
