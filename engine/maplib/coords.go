package maplib

import "fmt"

// Side disambiguates which half of an isometric diamond a point fell on
type Side uint8

const (
	SideCenter Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "center"
	}
}

// Cell is the identity of a grid location (column, row)
type Cell struct {
	Column, Row int
}

// Coordinates locates a tile on the grid. Side is sub-tile metadata and
// never takes part in equality.
type Coordinates struct {
	Column int  `json:"column"`
	Row    int  `json:"row"`
	Side   Side `json:"-"`
}

// At returns center coordinates for (column, row)
func At(column, row int) Coordinates {
	return Coordinates{Column: column, Row: row}
}

// Cell returns the identity key of c
func (c Coordinates) Cell() Cell {
	return Cell{Column: c.Column, Row: c.Row}
}

// Equal compares column and row only
func (c Coordinates) Equal(other Coordinates) bool {
	return c.Column == other.Column && c.Row == other.Row
}

// Add shifts both axes up by the floor level
func (c Coordinates) Add(f Floor) Coordinates {
	return Coordinates{Column: c.Column + int(f), Row: c.Row + int(f), Side: c.Side}
}

// Sub shifts both axes down by the floor level
func (c Coordinates) Sub(f Floor) Coordinates {
	return Coordinates{Column: c.Column - int(f), Row: c.Row - int(f), Side: c.Side}
}

// Delta returns the per-axis difference c - other
func (c Coordinates) Delta(other Coordinates) (dc, dr int) {
	return c.Column - other.Column, c.Row - other.Row
}

func (c Coordinates) String() string {
	if c.Side == SideCenter {
		return fmt.Sprintf("(%d, %d)", c.Column, c.Row)
	}
	return fmt.Sprintf("(%d, %d, %s)", c.Column, c.Row, c.Side)
}

// Floor is a vertical stacking level on a single grid cell
type Floor int

// Order is a manual draw priority. Only the depth key reads it.
type Order float64

// Position is the full placement of an occupant
type Position struct {
	Coordinates Coordinates `json:"coordinates"`
	Floor       Floor       `json:"floor"`
	Order       Order       `json:"order"`
}

// Anchor returns the coordinates the position is drawn at (coordinates - floor)
func (p Position) Anchor() Coordinates {
	return p.Coordinates.Sub(p.Floor)
}

// SamePlace reports whether two positions share cell and floor
func (p Position) SamePlace(other Position) bool {
	return p.Coordinates.Equal(other.Coordinates) && p.Floor == other.Floor
}
