package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/1siamBot/iso-tactics/engine/core"
	"github.com/1siamBot/iso-tactics/engine/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// HUD draws the status lines in the top-left corner
type HUD struct {
	face *text.GoTextFace
}

// NewHUD loads the monospace face used for the status lines
func NewHUD(size float64) (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	return &HUD{face: &text.GoTextFace{Source: src, Size: size}}, nil
}

// HUDLines describes the hovered tile and the selection
func HUDLines(b *systems.Board, turn *systems.Turn, cur *systems.Cursors) []string {
	lines := []string{fmt.Sprintf("tick %d", b.World.TickCount)}

	if cur != nil && cur.Hover.Visible {
		lines = append(lines, fmt.Sprintf("hover %s floor %d", cur.Hover.Cell, cur.Hover.Floor))
	} else {
		lines = append(lines, "hover -")
	}

	if turn == nil || turn.Selected == nil {
		return append(lines, "selected -")
	}
	id := turn.Selected.Unit
	name := "?"
	if u, ok := b.World.Get(id, core.CompUnit).(*core.Unit); ok {
		name = u.Name
	}
	line := fmt.Sprintf("selected %s", name)
	if m, ok := turn.Movement(b); ok {
		line += fmt.Sprintf(" moving to %s %.0f%%", m.Target.Coordinates, m.Progress()*100)
	} else if pos, ok := b.World.PositionOf(id); ok {
		line += fmt.Sprintf(" at %s floor %d", pos.Coordinates, pos.Floor)
	}
	return append(lines, line)
}

// Draw renders lines at the top-left corner
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = h.face.Size * 1.4
	text.Draw(screen, strings.Join(lines, "\n"), h.face, op)
}
