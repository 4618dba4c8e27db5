package core

import "time"

// GameState represents the overall game state
type GameState uint8

// A new loop starts paused until Play
const (
	StatePaused GameState = iota
	StatePlaying
)

// maxFrameTime caps a single frame to avoid a spiral of death
const maxFrameTime = 0.25

// GameLoop manages the fixed-timestep game loop for deterministic simulation
type GameLoop struct {
	World       *World
	State       GameState
	TickRate    float64 // fixed ticks per second
	accumulator float64
	lastTime    time.Time
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(tickRate float64) *GameLoop {
	return &GameLoop{
		World:    NewWorld(tickRate),
		TickRate: tickRate,
		lastTime: time.Now(),
	}
}

// Update should be called every render frame. It measures the wall clock
// and steps the simulation. Returns the interpolation alpha.
func (gl *GameLoop) Update() float64 {
	now := time.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return gl.Step(frameTime)
}

// Step advances the simulation by frameTime seconds in fixed ticks and
// returns the leftover fraction of a tick
func (gl *GameLoop) Step(frameTime float64) float64 {
	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}
	if frameTime < 0 {
		frameTime = 0
	}

	dt := 1.0 / gl.TickRate
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		if gl.State == StatePlaying {
			gl.World.Tick(dt)
		}
		gl.accumulator -= dt
	}

	return gl.accumulator / dt
}

// Play starts or resumes the game
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = time.Now()
}

// Pause pauses the game
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}

// CurrentTick returns the current simulation tick
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.World.TickCount
}
