package render

import (
	"image"
	"image/color"

	"github.com/1siamBot/iso-tactics/engine/maplib"
	"github.com/1siamBot/iso-tactics/engine/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	xdraw "golang.org/x/image/draw"
)

// TileColors maps tileset sprites to placeholder face colors: top, left, right
var TileColors = map[int][3]color.RGBA{
	maplib.SpriteGround: {{106, 168, 79, 255}, {84, 120, 60, 255}, {66, 98, 48, 255}},
	maplib.SpriteBlock:  {{170, 160, 140, 255}, {128, 118, 102, 255}, {100, 92, 80, 255}},
}

var missingColor = color.RGBA{255, 0, 255, 255}

// Source sizes of the generated pixel art, matching the original sheets
const (
	unitW, unitH = 10, 13
)

var cursorColors = [...]color.RGBA{
	systems.CursorHover:    {255, 240, 150, 255},
	systems.CursorSelected: {90, 220, 255, 255},
}

// SpriteManager caches the generated placeholder images
type SpriteManager struct {
	Tiles   map[int]*ebiten.Image
	Units   map[int]*ebiten.Image
	Cursors map[systems.CursorKind]*ebiten.Image

	tileW, tileH int
	sideH        int
	scale        int
	white        *ebiten.Image
}

// NewSpriteManager sizes every sprite from the map's scaled tile size
func NewSpriteManager(m *maplib.Map, scale int) *SpriteManager {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &SpriteManager{
		Tiles:   make(map[int]*ebiten.Image),
		Units:   make(map[int]*ebiten.Image),
		Cursors: make(map[systems.CursorKind]*ebiten.Image),
		tileW:   int(m.TileSize.X),
		tileH:   int(m.TileSize.Y),
		sideH:   int(m.HalfTileSize().Y),
		scale:   scale,
		white:   white,
	}
}

// Tile returns (or creates) the block image of a tileset sprite
func (sm *SpriteManager) Tile(sprite int) *ebiten.Image {
	if img, ok := sm.Tiles[sprite]; ok {
		return img
	}
	faces, ok := TileColors[sprite]
	if !ok {
		faces = [3]color.RGBA{missingColor, missingColor, missingColor}
	}

	tw, th := float32(sm.tileW), float32(sm.tileH)
	hw := tw / 2
	top := th - float32(sm.sideH) // height of the top diamond
	hh := top / 2

	img := ebiten.NewImage(sm.tileW, sm.tileH)
	sm.fill(img, faces[1], [][2]float32{{0, hh}, {hw, top}, {hw, th}, {0, th - hh}})
	sm.fill(img, faces[2], [][2]float32{{tw, hh}, {hw, top}, {hw, th}, {tw, th - hh}})
	sm.fill(img, faces[0], [][2]float32{{hw, 0}, {tw, hh}, {hw, top}, {0, hh}})

	edge := color.RGBA{0, 0, 0, 80}
	vector.StrokeLine(img, hw, 0, tw, hh, 1, edge, false)
	vector.StrokeLine(img, tw, hh, hw, top, 1, edge, false)
	vector.StrokeLine(img, hw, top, 0, hh, 1, edge, false)
	vector.StrokeLine(img, 0, hh, hw, 0, 1, edge, false)

	sm.Tiles[sprite] = img
	return img
}

// Unit returns the upscaled figure of a unit sprite
func (sm *SpriteManager) Unit(sprite int) *ebiten.Image {
	if img, ok := sm.Units[sprite]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(Upscale(UnitPixels(), sm.scale))
	sm.Units[sprite] = img
	return img
}

// Cursor returns the upscaled indicator of a cursor kind
func (sm *SpriteManager) Cursor(k systems.CursorKind) *ebiten.Image {
	if img, ok := sm.Cursors[k]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(Upscale(CursorPixels(k), sm.scale))
	sm.Cursors[k] = img
	return img
}

func (sm *SpriteManager) fill(img *ebiten.Image, clr color.RGBA, pts [][2]float32) {
	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	img.DrawTriangles(vs, is, sm.white, nil)
}

// CursorPixels draws the diamond outline of an indicator at sheet resolution
func CursorPixels(k systems.CursorKind) *image.RGBA {
	r := k.Data().Rect
	w, h := r.Dx(), r.Dy()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	clr := cursorColors[k]

	mid := h / 2
	for y := 0; y < h; y++ {
		d := y - mid
		if d < 0 {
			d = -d
		}
		half := w/2 - 2*d
		if half < 1 {
			half = 1
		}
		img.SetRGBA(w/2-half, y, clr)
		img.SetRGBA(w/2+half-1, y, clr)
	}
	return img
}

// UnitPixels draws the placeholder figure at sheet resolution
func UnitPixels() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, unitW, unitH))
	skin := color.RGBA{240, 200, 160, 255}
	coat := color.RGBA{60, 90, 180, 255}
	boots := color.RGBA{50, 40, 30, 255}

	rect := func(x0, y0, x1, y1 int, c color.RGBA) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
	rect(3, 0, 7, 4, skin)
	rect(2, 4, 8, 10, coat)
	rect(2, 10, 4, 13, boots)
	rect(6, 10, 8, 13, boots)
	return img
}

// Upscale enlarges src by an integer factor with nearest-neighbour sampling
func Upscale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
