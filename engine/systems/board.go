package systems

import (
	"errors"
	"fmt"

	"github.com/1siamBot/iso-tactics/engine/core"
	"github.com/1siamBot/iso-tactics/engine/maplib"
)

// UnitOrder draws units above the tile they stand on
const UnitOrder maplib.Order = 1

// ErrUnknownEntity is returned for entities without a placement
var ErrUnknownEntity = errors.New("unknown entity")

// Board is the per-game state handed to every system: the map geometry,
// the entity world that owns positions, and the occupancy indexes.
type Board struct {
	Map    *maplib.Map
	World  *core.World
	Tiles  *maplib.Occupancy[core.EntityID]
	Units  *maplib.Occupancy[core.EntityID]
	Events *core.EventBus
}

// NewBoard creates an empty board
func NewBoard(m *maplib.Map, w *core.World, events *core.EventBus) *Board {
	return &Board{
		Map:    m,
		World:  w,
		Tiles:  maplib.NewOccupancy[core.EntityID](),
		Units:  maplib.NewOccupancy[core.EntityID](),
		Events: events,
	}
}

func (b *Board) emit(t core.EventType, id core.EntityID, payload interface{}) {
	if b.Events == nil {
		return
	}
	b.Events.Emit(core.Event{Type: t, Tick: b.World.TickCount, Entity: id, Payload: payload})
}

// SpawnTile creates a terrain tile and files it in the tile index
func (b *Board) SpawnTile(pos maplib.Position, sprite int) core.EntityID {
	id := b.World.Spawn()
	b.World.Attach(id, &core.Placement{Position: pos})
	b.World.Attach(id, &core.Tile{Sprite: sprite})
	b.Tiles.Insert(pos.Coordinates, id)
	b.emit(core.EvtTileSpawned, id, pos)
	return id
}

// SpawnUnit creates a unit and files it in the unit index
func (b *Board) SpawnUnit(pos maplib.Position, sprite int, name string) core.EntityID {
	id := b.World.Spawn()
	b.World.Attach(id, &core.Placement{Position: pos})
	b.World.Attach(id, &core.Unit{Name: name, Sprite: sprite})
	b.Units.Insert(pos.Coordinates, id)
	b.emit(core.EvtUnitSpawned, id, pos)
	return id
}

// index returns the occupancy index an entity is filed in
func (b *Board) index(id core.EntityID) *maplib.Occupancy[core.EntityID] {
	if b.World.Has(id, core.CompUnit) {
		return b.Units
	}
	return b.Tiles
}

// Relocate places an entity at pos and re-files it in its index
func (b *Board) Relocate(id core.EntityID, pos maplib.Position) error {
	p, ok := b.World.Get(id, core.CompPlacement).(*core.Placement)
	if !ok {
		return fmt.Errorf("relocate %d: %w", id, ErrUnknownEntity)
	}
	b.index(id).Move(p.Coordinates, pos.Coordinates, id)
	p.Position = pos
	return nil
}

// Populate spawns the ground, the stacks and the units of a layout
func (b *Board) Populate(l *maplib.Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.Size != b.Map.Columns() || l.Size != b.Map.Rows() {
		return fmt.Errorf("%w: layout size %d on a %dx%d map",
			maplib.ErrInvalidLayout, l.Size, b.Map.Columns(), b.Map.Rows())
	}

	for i := 0; i < b.Map.TileCount(); i++ {
		b.SpawnTile(maplib.Position{Coordinates: b.Map.IndexToCoordinates(i)}, l.GroundSprite)
	}
	for _, s := range l.Stacks {
		for f := s.From; f <= s.To; f++ {
			b.SpawnTile(maplib.Position{Coordinates: maplib.At(s.Column, s.Row), Floor: f}, s.Sprite)
		}
	}
	for _, u := range l.Units {
		pos := maplib.Position{Coordinates: maplib.At(u.Column, u.Row), Floor: u.Floor, Order: UnitOrder}
		b.SpawnUnit(pos, u.Sprite, u.Name)
	}
	return nil
}

// Resolve maps a raw pointer coordinate onto the tile stacks
func (b *Board) Resolve(raw maplib.Coordinates) (maplib.Hit, bool) {
	return maplib.Resolve(b.Map, b.Tiles, b.World, raw)
}

// UnitAt returns the unit standing on cell c, if any
func (b *Board) UnitAt(c maplib.Coordinates) (core.EntityID, bool) {
	units := b.Units.OccupantsAt(c)
	if len(units) == 0 {
		return 0, false
	}
	return units[0], true
}

// Claimed reports whether a unit other than id stands on cell c or is
// moving onto it. Movers stay filed at their origin until they land, so
// in-flight targets are checked separately.
func (b *Board) Claimed(c maplib.Coordinates, id core.EntityID) bool {
	for _, other := range b.Units.OccupantsAt(c) {
		if other != id {
			return true
		}
	}
	for _, other := range b.World.Query(core.CompMovement) {
		if other == id {
			continue
		}
		if m, ok := b.World.Get(other, core.CompMovement).(*Movement); ok && m.Target.Coordinates.Equal(c) {
			return true
		}
	}
	return false
}

// SurfaceAt returns the floor of the highest tile on cell c
func (b *Board) SurfaceAt(c maplib.Coordinates) (maplib.Floor, bool) {
	_, pos, ok := b.Tiles.TopmostAt(c, b.World)
	return pos.Floor, ok
}

// Translation returns where an entity is drawn this frame, following its
// movement if one is in flight
func (b *Board) Translation(id core.EntityID) (maplib.Vec2, float64, bool) {
	if m, ok := b.World.Get(id, core.CompMovement).(*Movement); ok {
		p, z := m.Translation(b.Map)
		return p, z, true
	}
	pos, ok := b.World.PositionOf(id)
	if !ok {
		return maplib.Vec2{}, 0, false
	}
	p, z := b.Map.PositionToTranslation(pos)
	return p, z, true
}
