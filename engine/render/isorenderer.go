package render

import (
	"sort"

	"github.com/1siamBot/iso-tactics/engine/core"
	"github.com/1siamBot/iso-tactics/engine/maplib"
	"github.com/1siamBot/iso-tactics/engine/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawKind tells the painter which image and anchor to use
type DrawKind uint8

const (
	DrawTile DrawKind = iota
	DrawUnit
	DrawCursor
)

// Drawable is one sprite placed for this frame
type Drawable struct {
	Kind   DrawKind
	Entity core.EntityID
	Sprite int // tileset slot, or cursor kind
	Point  maplib.Vec2
	Depth  float64
}

// Drawables collects the board's sprites in painter's order. Equal depths
// keep tiles below units and units below cursors.
func Drawables(b *systems.Board, cur *systems.Cursors) []Drawable {
	var out []Drawable
	for _, id := range b.World.Query(core.CompTile, core.CompPlacement) {
		p, z, _ := b.Translation(id)
		tile := b.World.Get(id, core.CompTile).(*core.Tile)
		out = append(out, Drawable{Kind: DrawTile, Entity: id, Sprite: tile.Sprite, Point: p, Depth: z})
	}
	for _, id := range b.World.Query(core.CompUnit, core.CompPlacement) {
		p, z, _ := b.Translation(id)
		unit := b.World.Get(id, core.CompUnit).(*core.Unit)
		out = append(out, Drawable{Kind: DrawUnit, Entity: id, Sprite: unit.Sprite, Point: p, Depth: z})
	}
	if cur != nil {
		for _, c := range []systems.Cursor{cur.Selected, cur.Hover} {
			if c.Visible {
				out = append(out, Drawable{Kind: DrawCursor, Sprite: int(c.Kind), Point: c.Point, Depth: c.Depth})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// IsoRenderer handles isometric board rendering
type IsoRenderer struct {
	Camera  *Camera
	Sprites *SpriteManager
}

// NewIsoRenderer creates a new isometric renderer
func NewIsoRenderer(screenW, screenH int, m *maplib.Map, scale int) *IsoRenderer {
	return &IsoRenderer{
		Camera:  NewCamera(screenW, screenH),
		Sprites: NewSpriteManager(m, scale),
	}
}

// DrawBoard paints tiles, units and cursors back to front
func (r *IsoRenderer) DrawBoard(screen *ebiten.Image, b *systems.Board, cur *systems.Cursors) {
	for _, d := range Drawables(b, cur) {
		var img *ebiten.Image
		bottom := true
		switch d.Kind {
		case DrawTile:
			img = r.Sprites.Tile(d.Sprite)
			bottom = false
		case DrawUnit:
			img = r.Sprites.Unit(d.Sprite)
		case DrawCursor:
			img = r.Sprites.Cursor(systems.CursorKind(d.Sprite))
		}
		r.drawAnchored(screen, img, d.Point, bottom)
	}
}

// drawAnchored draws img centered on p, or standing on p when bottom is set
func (r *IsoRenderer) drawAnchored(screen, img *ebiten.Image, p maplib.Vec2, bottom bool) {
	sx, sy := r.Camera.WorldToScreen(p)
	z := r.Camera.Zoom
	w := float64(img.Bounds().Dx()) * z
	h := float64(img.Bounds().Dy()) * z

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(z, z)
	if bottom {
		op.GeoM.Translate(sx-w/2, sy-h)
	} else {
		op.GeoM.Translate(sx-w/2, sy-h/2)
	}
	screen.DrawImage(img, op)
}
