package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/1siamBot/iso-tactics/engine/config"
	"github.com/1siamBot/iso-tactics/engine/core"
	"github.com/1siamBot/iso-tactics/engine/input"
	"github.com/1siamBot/iso-tactics/engine/logger"
	"github.com/1siamBot/iso-tactics/engine/maplib"
	"github.com/1siamBot/iso-tactics/engine/render"
	"github.com/1siamBot/iso-tactics/engine/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Game implements ebiten.Game interface
type Game struct {
	cfg      config.Config
	renderer *render.IsoRenderer
	hud      *render.HUD
	gameLoop *core.GameLoop
	input    *input.InputState
	board    *systems.Board
	turn     *systems.Turn
	cursors  *systems.Cursors

	showDebug bool
}

func NewGame(cfg config.Config) (*Game, error) {
	layout, err := cfg.BoardLayout()
	if err != nil {
		return nil, err
	}
	if layout.Size != cfg.Map.Size {
		logger.Log.WithFields(logrus.Fields{
			"layout": layout.Size,
			"config": cfg.Map.Size,
		}).Warn("map size follows the layout file")
	}

	size := float64(layout.Size)
	m := maplib.NewMap(
		maplib.Vec2{X: size, Y: size},
		maplib.Vec2{X: float64(cfg.Map.TileWidth), Y: float64(cfg.Map.TileHeight)},
		float64(cfg.Map.Scale),
	)

	gl := core.NewGameLoop(cfg.Loop.TickRate)
	board := systems.NewBoard(m, gl.World, core.NewEventBus())
	gl.World.AddSystem(&systems.MovementSystem{Board: board})

	hud, err := render.NewHUD(14)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		renderer: render.NewIsoRenderer(cfg.Window.Width, cfg.Window.Height, m, cfg.Map.Scale),
		hud:      hud,
		gameLoop: gl,
		input:    input.NewInputState(cfg.Window.Width, cfg.Window.Height),
		board:    board,
		turn:     systems.NewTurn(cfg.Unit.Speed),
		cursors:  systems.NewCursors(),
	}
	g.subscribe()

	mid := layout.Size / 2
	center, _ := m.PositionToTranslation(maplib.Position{Coordinates: maplib.At(mid, mid)})
	g.renderer.Camera.CenterOn(center)

	if err := board.Populate(layout); err != nil {
		return nil, fmt.Errorf("populate %q: %w", layout.Name, err)
	}
	logger.Log.WithFields(logrus.Fields{
		"layout": layout.Name,
		"tiles":  board.Tiles.Len(),
		"units":  board.Units.Len(),
	}).Info("board populated")

	g.gameLoop.Play()
	return g, nil
}

// subscribe logs the gameplay events
func (g *Game) subscribe() {
	bus := g.board.Events
	log := func(e core.Event) {
		entry := logger.Log.WithFields(logrus.Fields{
			"event":  e.Type.String(),
			"tick":   e.Tick,
			"entity": e.Entity,
		})
		switch p := e.Payload.(type) {
		case maplib.Position:
			entry = entry.WithFields(logrus.Fields{"cell": p.Coordinates.String(), "floor": p.Floor})
		case systems.Movement:
			entry = entry.WithFields(logrus.Fields{
				"from":     p.Origin.Coordinates.String(),
				"to":       p.Target.Coordinates.String(),
				"duration": p.TotalTime,
			})
		}
		entry.Info("event")
	}
	for _, t := range []core.EventType{
		core.EvtUnitSpawned,
		core.EvtUnitSelected,
		core.EvtUnitDeselected,
		core.EvtMoveOrdered,
		core.EvtMoveCompleted,
	} {
		bus.On(t, log)
	}
	bus.On(core.EvtTileSpawned, func(e core.Event) {
		logger.Log.WithField("entity", e.Entity).Trace("tile spawned")
	})
}

func (g *Game) Update() error {
	g.input.Update()
	g.handleCamera()

	if g.input.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}
	if g.input.IsKeyJustPressed(ebiten.KeyEscape) {
		g.turn.Deselect(g.board)
	}
	if g.input.IsKeyJustPressed(ebiten.KeySpace) {
		if g.gameLoop.State == core.StatePlaying {
			g.gameLoop.Pause()
		} else {
			g.gameLoop.Play()
		}
	}

	sx, sy, ok := g.input.Pointer()
	point := g.renderer.Camera.ScreenToWorld(sx, sy)

	if g.input.Clicked() {
		res := g.turn.Click(g.board, point)
		logger.Log.WithFields(logrus.Fields{
			"outcome": res.Outcome.String(),
			"cell":    res.Hit.Coordinates.String(),
			"floor":   res.Hit.Floor,
			"top":     res.Hit.Top,
		}).Debug("click")
	}

	g.gameLoop.Update()
	g.cursors.Update(g.board, g.turn, point, ok)
	g.board.Events.Dispatch()
	return nil
}

func (g *Game) handleCamera() {
	cam := g.renderer.Camera
	speed := cam.Speed / 60.0 // per frame at 60fps

	keys := g.input.KeysPressed
	if keys[ebiten.KeyW] || keys[ebiten.KeyUp] {
		cam.Pan(0, -speed)
	}
	if keys[ebiten.KeyS] || keys[ebiten.KeyDown] {
		cam.Pan(0, speed)
	}
	if keys[ebiten.KeyA] || keys[ebiten.KeyLeft] {
		cam.Pan(-speed, 0)
	}
	if keys[ebiten.KeyD] || keys[ebiten.KeyRight] {
		cam.Pan(speed, 0)
	}

	if g.input.ScrollY != 0 {
		cam.ZoomAt(g.input.ScrollY*0.1, g.input.MouseX, g.input.MouseY)
	}

	// Right drag to pan
	if g.input.RightPressed {
		cam.Pan(float64(-g.input.MouseDX), float64(-g.input.MouseDY))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	g.renderer.DrawBoard(screen, g.board, g.cursors)
	g.hud.Draw(screen, render.HUDLines(g.board, g.turn, g.cursors))

	if g.showDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"FPS: %.0f | TPS: %.0f | Entities: %d | Zoom: %.1fx\n"+
				"[LClick] Select/Move [Esc] Deselect [Space] Pause [RDrag/WASD] Pan [Scroll] Zoom",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.gameLoop.World.EntityCount(), g.renderer.Camera.Zoom,
		), 8, g.cfg.Window.Height-40)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a config file (json, yaml or toml)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("load config")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	logger.Log.WithFields(logrus.Fields{
		"map":      cfg.Map.Size,
		"scale":    cfg.Map.Scale,
		"tickRate": cfg.Loop.TickRate,
		"speed":    cfg.Unit.Speed,
	}).Info("config loaded")

	game, err := NewGame(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("start game")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Error("game exited")
		os.Exit(1)
	}
}
