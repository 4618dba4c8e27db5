package core

import (
	"sort"

	"github.com/1siamBot/iso-tactics/engine/maplib"
)

// EntityID is a unique identifier for game entities
type EntityID uint64

// Component is a marker interface for all components
type Component interface {
	Type() ComponentType
}

// ComponentType identifies the type of component
type ComponentType uint32

const (
	CompPlacement ComponentType = iota
	CompTile
	CompUnit
	CompMovement
	CompMax
)

// World holds all entities and their components. Entities live as long as
// the world: the board they are indexed on has no despawn.
type World struct {
	entities  map[EntityID]map[ComponentType]Component
	systems   []System
	lastID    EntityID
	TickCount uint64
	TickRate  float64 // ticks per second
}

// System processes entities each tick
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

// NewWorld creates a new ECS world
func NewWorld(tickRate float64) *World {
	return &World{
		entities: make(map[EntityID]map[ComponentType]Component),
		TickRate: tickRate,
	}
}

// Spawn creates a new entity and returns its ID.
// IDs are handed out per world, starting at 1.
func (w *World) Spawn() EntityID {
	w.lastID++
	id := w.lastID
	w.entities[id] = make(map[ComponentType]Component)
	return id
}

// Alive reports whether the entity exists
func (w *World) Alive(id EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

// Attach adds a component to an entity
func (w *World) Attach(id EntityID, c Component) {
	if comps, ok := w.entities[id]; ok {
		comps[c.Type()] = c
	}
}

// Detach removes a component from an entity
func (w *World) Detach(id EntityID, ct ComponentType) {
	if comps, ok := w.entities[id]; ok {
		delete(comps, ct)
	}
}

// Get returns a component for an entity, or nil
func (w *World) Get(id EntityID, ct ComponentType) Component {
	if comps, ok := w.entities[id]; ok {
		return comps[ct]
	}
	return nil
}

// Has checks if an entity has a component
func (w *World) Has(id EntityID, ct ComponentType) bool {
	if comps, ok := w.entities[id]; ok {
		_, exists := comps[ct]
		return exists
	}
	return false
}

// Query returns the entities carrying every one of types, in ascending ID
// order so systems visit them deterministically
func (w *World) Query(types ...ComponentType) []EntityID {
	var ids []EntityID
next:
	for id, comps := range w.entities {
		for _, ct := range types {
			if comps[ct] == nil {
				continue next
			}
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// PositionOf returns the map position of an entity
func (w *World) PositionOf(id EntityID) (maplib.Position, bool) {
	if p, ok := w.Get(id, CompPlacement).(*Placement); ok {
		return p.Position, true
	}
	return maplib.Position{}, false
}

// AddSystem registers a system. Lower priorities run first, systems of
// equal priority run in registration order.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Tick runs every system once with a fixed step of dt seconds
func (w *World) Tick(dt float64) {
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	w.TickCount++
}

// EntityCount returns the number of alive entities
func (w *World) EntityCount() int {
	return len(w.entities)
}
