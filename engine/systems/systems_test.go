package systems

import (
	"testing"

	"github.com/1siamBot/iso-tactics/engine/core"
	"github.com/1siamBot/iso-tactics/engine/maplib"
	"github.com/stretchr/testify/require"
)

// newTestBoard returns the prototype board with its movement system wired
func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard(maplib.DefaultMap(), core.NewWorld(60), core.NewEventBus())
	require.NoError(t, b.Populate(maplib.DefaultLayout()))
	b.World.AddSystem(&MovementSystem{Board: b})
	return b
}

func scout(t *testing.T, b *Board) core.EntityID {
	t.Helper()
	id, ok := b.UnitAt(maplib.At(2, 2))
	require.True(t, ok)
	return id
}

// anchor returns the world point drawn for the top of a tile
func anchor(b *Board, col, row int, floor maplib.Floor) maplib.Vec2 {
	p, _ := b.Map.PositionToTranslation(maplib.Position{Coordinates: maplib.At(col, row), Floor: floor})
	return p
}

// drain dispatches pending events and returns their types in order
func drain(b *Board) []core.EventType {
	var got []core.EventType
	for t := core.EvtTileSpawned; t <= core.EvtMoveCompleted; t++ {
		b.Events.On(t, func(e core.Event) { got = append(got, e.Type) })
	}
	b.Events.Dispatch()
	return got
}
