package systems

import (
	"math"

	"github.com/1siamBot/iso-tactics/engine/core"
	"github.com/1siamBot/iso-tactics/engine/maplib"
)

// DefaultSpeed is the time cost of one tile step, in milliseconds
const DefaultSpeed = 200.0

// timeScale converts speed units to seconds
const timeScale = 1000.0

// Movement is an in-flight move of one unit. Each unit owns its own.
type Movement struct {
	Origin     maplib.Position
	Target     maplib.Position
	TotalTime  float64 // seconds
	TimePassed float64 // seconds
}

func (m *Movement) Type() core.ComponentType { return core.CompMovement }

// Plan computes a movement whose duration is the Manhattan distance
// between the two cells times speed
func Plan(from, to maplib.Position, speed float64) Movement {
	dc, dr := to.Coordinates.Delta(from.Coordinates)
	steps := math.Abs(float64(dc)) + math.Abs(float64(dr))
	return Movement{
		Origin:    from,
		Target:    to,
		TotalTime: steps * speed / timeScale,
	}
}

// Degenerate reports a zero-length movement, which completes at once
func (m *Movement) Degenerate() bool {
	return m.TotalTime <= 0
}

// Done reports whether the movement has reached its target
func (m *Movement) Done() bool {
	return m.Degenerate() || m.TimePassed >= m.TotalTime
}

// Progress returns the completed fraction in [0, 1]
func (m *Movement) Progress() float64 {
	if m.Degenerate() {
		return 1
	}
	return math.Min(1, math.Max(0, m.TimePassed/m.TotalTime))
}

// Advance accumulates dt seconds and returns the progress and whether the
// movement completed
func (m *Movement) Advance(dt float64) (float64, bool) {
	if dt > 0 {
		m.TimePassed += dt
	}
	return m.Progress(), m.Done()
}

// Translation interpolates the render point and depth between origin and target
func (m *Movement) Translation(mp *maplib.Map) (maplib.Vec2, float64) {
	t := m.Progress()
	from, fz := mp.PositionToTranslation(m.Origin)
	to, tz := mp.PositionToTranslation(m.Target)
	return from.Lerp(to, t), fz + (tz-fz)*t
}

// MovementSystem advances every in-flight movement and lands finished ones
type MovementSystem struct {
	Board *Board
}

func (s *MovementSystem) Priority() int { return 10 }

func (s *MovementSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompMovement, core.CompPlacement) {
		mov := w.Get(id, core.CompMovement).(*Movement)
		if _, done := mov.Advance(dt); !done {
			continue
		}
		// Keep the movement until the unit can be filed at its target
		if err := s.Board.Relocate(id, mov.Target); err != nil {
			continue
		}
		w.Detach(id, core.CompMovement)
		s.Board.emit(core.EvtMoveCompleted, id, mov.Target)
	}
}
