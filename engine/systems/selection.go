package systems

import (
	"errors"
	"fmt"

	"github.com/1siamBot/iso-tactics/engine/core"
	"github.com/1siamBot/iso-tactics/engine/maplib"
)

var (
	// ErrNoSelection is returned when a move is requested with nothing selected
	ErrNoSelection = errors.New("no unit selected")
	// ErrAlreadyMoving is returned while the selected unit is still moving
	ErrAlreadyMoving = errors.New("selected unit is already moving")
	// ErrDegenerateMove is returned for a move onto the unit's own place
	ErrDegenerateMove = errors.New("unit is already there")
	// ErrCellTaken is returned for a move onto a cell another unit holds or
	// is moving onto
	ErrCellTaken = errors.New("cell is taken by another unit")
)

// SelectedUnit is the unit the player is commanding
type SelectedUnit struct {
	Unit core.EntityID
}

// Turn holds the single selection of the player
type Turn struct {
	Selected *SelectedUnit
	Speed    float64
}

// NewTurn creates a turn with nothing selected
func NewTurn(speed float64) *Turn {
	return &Turn{Speed: speed}
}

// IsSelected reports whether id is the current selection
func (t *Turn) IsSelected(id core.EntityID) bool {
	return t.Selected != nil && t.Selected.Unit == id
}

// Select replaces the current selection. A movement the previous unit
// has in flight keeps running.
func (t *Turn) Select(b *Board, id core.EntityID) {
	if t.Selected != nil && t.Selected.Unit != id {
		b.emit(core.EvtUnitDeselected, t.Selected.Unit, nil)
	}
	t.Selected = &SelectedUnit{Unit: id}
	b.emit(core.EvtUnitSelected, id, nil)
}

// Deselect clears the selection
func (t *Turn) Deselect(b *Board) {
	if t.Selected == nil {
		return
	}
	b.emit(core.EvtUnitDeselected, t.Selected.Unit, nil)
	t.Selected = nil
}

// Toggle deselects id if it is selected and selects it otherwise
func (t *Turn) Toggle(b *Board, id core.EntityID) {
	if t.IsSelected(id) {
		t.Deselect(b)
		return
	}
	t.Select(b, id)
}

// Movement returns the in-flight movement of the selected unit
func (t *Turn) Movement(b *Board) (*Movement, bool) {
	if t.Selected == nil {
		return nil, false
	}
	m, ok := b.World.Get(t.Selected.Unit, core.CompMovement).(*Movement)
	return m, ok
}

// Moving reports whether the selected unit has a movement in flight
func (t *Turn) Moving(b *Board) bool {
	_, ok := t.Movement(b)
	return ok
}

// RequestMove plans and starts a movement of the selected unit to target
func (t *Turn) RequestMove(b *Board, target maplib.Position) (*Movement, error) {
	if t.Selected == nil {
		return nil, ErrNoSelection
	}
	if t.Moving(b) {
		return nil, ErrAlreadyMoving
	}
	id := t.Selected.Unit
	from, ok := b.World.PositionOf(id)
	if !ok {
		return nil, fmt.Errorf("move %d: %w", id, ErrUnknownEntity)
	}
	if from.SamePlace(target) {
		return nil, ErrDegenerateMove
	}
	if b.Claimed(target.Coordinates, id) {
		return nil, fmt.Errorf("move %d to %s: %w", id, target.Coordinates, ErrCellTaken)
	}

	m := Plan(from, target, t.Speed)
	b.World.Attach(id, &m)
	b.emit(core.EvtMoveOrdered, id, m)
	return &m, nil
}

// ClickOutcome is what a primary click did
type ClickOutcome uint8

const (
	ClickIgnored ClickOutcome = iota
	ClickSelected
	ClickDeselected
	ClickMoved
)

func (o ClickOutcome) String() string {
	switch o {
	case ClickSelected:
		return "selected"
	case ClickDeselected:
		return "deselected"
	case ClickMoved:
		return "moved"
	default:
		return "ignored"
	}
}

// ClickResult reports the outcome of a click and the tile it landed on
type ClickResult struct {
	Outcome ClickOutcome
	Unit    core.EntityID
	Hit     maplib.Hit
}

// Click handles one primary press at a world point: clicking a unit toggles
// its selection, clicking a tile moves the selected unit onto it.
// Clicks are ignored while the selected unit is moving.
func (t *Turn) Click(b *Board, point maplib.Vec2) ClickResult {
	if t.Moving(b) {
		return ClickResult{}
	}

	hit, ok := b.Resolve(b.Map.PointToCoordinates(point))
	if !ok || !b.Map.InBounds(hit.Coordinates) {
		return ClickResult{}
	}
	res := ClickResult{Hit: hit}

	if id, ok := b.UnitAt(hit.Coordinates); ok {
		t.Toggle(b, id)
		res.Unit = id
		res.Outcome = ClickSelected
		if t.Selected == nil {
			res.Outcome = ClickDeselected
		}
		return res
	}

	if t.Selected == nil {
		return res
	}
	surface, ok := b.SurfaceAt(hit.Coordinates)
	if !ok {
		return res
	}
	target := maplib.Position{
		Coordinates: maplib.At(hit.Coordinates.Column, hit.Coordinates.Row),
		Floor:       surface,
		Order:       UnitOrder,
	}
	if _, err := t.RequestMove(b, target); err != nil {
		return res
	}
	res.Unit = t.Selected.Unit
	res.Outcome = ClickMoved
	return res
}
