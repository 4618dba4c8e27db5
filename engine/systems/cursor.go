package systems

import (
	"image"

	"github.com/1siamBot/iso-tactics/engine/maplib"
)

// CursorKind tags the two indicator sprites drawn over the map
type CursorKind uint8

const (
	CursorHover CursorKind = iota
	CursorSelected
)

func (k CursorKind) String() string {
	if k == CursorSelected {
		return "selected"
	}
	return "hover"
}

// CursorOrder is the draw order of indicators; above tiles of the same floor
const CursorOrder maplib.Order = 1

// CursorData is the static sprite data of a cursor kind
type CursorData struct {
	Index int             // atlas slot
	Rect  image.Rectangle // source rect in the indicator sheet
	Nudge float64         // downward offset in world units, unscaled
}

var cursorData = [...]CursorData{
	CursorHover:    {Index: 0, Rect: image.Rect(0, 16, 16, 25), Nudge: 5.5},
	CursorSelected: {Index: 1, Rect: image.Rect(16, 16, 32, 25), Nudge: 1.5},
}

// Data returns the sprite data for k
func (k CursorKind) Data() CursorData {
	return cursorData[k]
}

// Cursor is the per-frame state of one indicator
type Cursor struct {
	Kind    CursorKind
	Visible bool
	Cell    maplib.Coordinates
	Floor   maplib.Floor
	Point   maplib.Vec2 // render anchor, bottom center
	Depth   float64
}

// Cursors holds the hover and selection indicators
type Cursors struct {
	Hover    Cursor
	Selected Cursor
}

// NewCursors creates both indicators, hidden
func NewCursors() *Cursors {
	return &Cursors{
		Hover:    Cursor{Kind: CursorHover},
		Selected: Cursor{Kind: CursorSelected},
	}
}

// Update places the hover cursor on the tile under the pointer and the
// selection cursor under the selected unit. A pointer outside the window
// leaves the hover cursor where it was.
func (c *Cursors) Update(b *Board, turn *Turn, point maplib.Vec2, ok bool) {
	if ok {
		c.hover(b, point)
	}
	c.selected(b, turn)
}

func (c *Cursors) hover(b *Board, point maplib.Vec2) {
	c.Hover.Visible = false
	hit, ok := b.Resolve(b.Map.PointToCoordinates(point))
	if !ok || !b.Map.InBounds(hit.Coordinates) {
		return
	}
	p, z := b.Map.PositionToTranslation(hit.Position(CursorOrder))
	p.Y -= CursorHover.Data().Nudge
	c.Hover = Cursor{
		Kind:    CursorHover,
		Visible: true,
		Cell:    hit.Coordinates,
		Floor:   hit.Floor,
		Point:   p,
		Depth:   z,
	}
}

func (c *Cursors) selected(b *Board, turn *Turn) {
	c.Selected.Visible = false
	if turn.Selected == nil || turn.Moving(b) {
		return
	}
	id := turn.Selected.Unit
	pos, ok := b.World.PositionOf(id)
	if !ok {
		return
	}
	p, z, _ := b.Translation(id)
	p.Y -= CursorSelected.Data().Nudge
	c.Selected = Cursor{
		Kind:    CursorSelected,
		Visible: true,
		Cell:    pos.Coordinates,
		Floor:   pos.Floor,
		Point:   p,
		Depth:   z,
	}
}
