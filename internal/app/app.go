//go:build ebiten

package app

import (
	"image/color"
	"time"

	"isles/internal/core"
	"isles/internal/render"
	"isles/internal/ui"
	"isles/internal/world"
	prng "isles/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const flowPeriod = 4

// Game shows a generated world in an ebiten window.
type Game struct {
	cfg    world.Config
	scale  int
	margin int

	world *world.World
	grid  *core.ByteGrid
	ports []world.Port
	ship  core.Coordinate

	painter *render.Painter
	shader  *render.Shader
	overlay *ui.Overlay
	step    *core.FixedStep

	flowColor color.Color
	phase     int
	paused    bool
}

// New generates the world described by cfg and wraps it in a Game.
func New(cfg world.Config, scale, margin, tps int) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		scale:     scale,
		margin:    margin,
		overlay:   ui.NewOverlay(),
		step:      core.NewFixedStep(tps),
		flowColor: color.RGBA{R: 200, G: 230, B: 255, A: 200},
	}
	if err := g.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset regenerates the world with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.cfg.Seed = seed
	w, err := world.Generate(g.cfg)
	if err != nil {
		return err
	}
	g.world = w
	g.ports, _ = w.DefaultPorts()
	g.placeShip(prng.NewRNG(seed).Child())
	g.grid = w.Rasterize(g.margin, g.ports)
	if g.painter == nil {
		g.painter = render.NewPainter(g.grid.W, g.grid.H)
	} else if pw, ph := g.painter.Size(); pw != g.grid.W || ph != g.grid.H {
		g.painter = render.NewPainter(g.grid.W, g.grid.H)
	}
	g.shader = render.NewShader(seed)
	g.painter.Upload(g.grid, g.shader)
	g.overlay.SetWorld(w)
	g.phase = 0
	return nil
}

func (g *Game) placeShip(rng *prng.RNG) {
	g.ship = core.Coordinate{}
	if port, ok := prng.Pick(rng, g.ports); ok {
		if c, err := g.world.PlaceShip(rng, port); err == nil {
			g.ship = c
		}
	}
}

// Update handles input and advances the river animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.cfg.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.Reset(g.cfg.Seed + 1); err != nil {
			return err
		}
	}
	g.overlay.Update()

	ticks := g.step.Due(4)
	if g.paused {
		ticks = 0
	}
	g.phase += ticks
	mask := render.FlowMask(g.world, g.grid, g.phase, flowPeriod)
	if g.grid.InBounds(g.ship) && len(g.ports) > 0 {
		mask[g.grid.Index(g.ship.X-g.grid.Origin.X, g.ship.Y-g.grid.Origin.Y)] = 1
	}
	g.painter.UploadMask(mask, g.flowColor)
	return nil
}

// Draw renders the world and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.W * g.scale, g.grid.H * g.scale
}

// Size returns the raster dimensions of the current world.
func (g *Game) Size() core.Size { return g.grid.Size() }
