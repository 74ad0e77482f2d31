package main

import (
	"fmt"
	"log"
	"math"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blockjump/prefabs"
	"github.com/milk9111/blockjump/sim"
	"github.com/milk9111/blockjump/system"
)

const (
	baseWidth  = 1280
	baseHeight = 640
)

type Options struct {
	Debug     bool
	Autopilot bool
	Watch     bool
}

type Game struct {
	frames int

	world     *sim.World
	clock     *sim.Clock
	stepper   *sim.FixedStep
	autopilot *system.Autopilot
	palette   Palette
	tileSize  float64

	paused    bool
	pauseUI   *ebitenui.UI
	watcher   *prefabs.Watcher
	stamps    prefabs.Stamps
	clipboard *Clipboard
	lastEvent string
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadAvatarSpec()
	if err != nil {
		return nil, err
	}
	tuning, err := spec.Tuning(sim.DefaultTuning())
	if err != nil {
		return nil, err
	}

	tileSize := math.Min(baseWidth/float64(tuning.GridWidth), baseHeight/float64(tuning.GridHeight))
	world, err := sim.NewWorld(tuning, tileSize)
	if err != nil {
		return nil, err
	}
	world.Debug = opts.Debug

	g := &Game{
		world:     world,
		clock:     sim.NewClock(nil),
		stepper:   sim.NewFixedStep(tuning.PhysicsRate, tuning.MaxFrameTime),
		palette:   newPalette(spec.Palette),
		tileSize:  tileSize,
		stamps:    prefabs.Stamps{},
		clipboard: NewClipboard(),
	}

	if opts.Autopilot {
		ap, err := loadAutopilot(spec.Autopilot)
		if err != nil {
			return nil, err
		}
		g.autopilot = ap
	}
	g.installSystems()

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func loadAutopilot(name string) (*system.Autopilot, error) {
	if name == "" {
		return nil, fmt.Errorf("autopilot: prefab names no script")
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("autopilot: load %s: %w", name, err)
	}
	return system.NewAutopilot(name, src)
}

func (g *Game) installSystems() {
	if g.autopilot != nil {
		g.world.SetScheduler(system.NewPhysicsScheduler(g.autopilot))
		return
	}
	g.world.SetScheduler(system.NewPhysicsScheduler())
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if quitPressed() {
		return ebiten.Termination
	}
	g.applyChanges()

	// Tick even while paused so resuming does not replay the pause.
	elapsed := g.clock.Tick()

	if pausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if copyPressed() {
		if g.clipboard.Copy(g.debugLines()) {
			log.Printf("copied debug snapshot")
		}
	}
	if respawnPressed() {
		g.world.Respawn()
	}
	if x, y, ok := clickPosition(); ok {
		system.CycleTileAt(g.world, x, y, g.tileSize)
	}
	pollControls(g.world.Input, g.autopilot == nil)

	for n := g.stepper.Advance(elapsed); n > 0; n-- {
		g.world.Step(g.stepper.Step)
	}
	g.drainEvents()
	return nil
}

func (g *Game) drainEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Kind {
		case sim.EventWallHit, sim.EventJumpPhase:
			continue
		}
		g.lastEvent = fmt.Sprintf("%s (%d, %d)", evt.Kind, evt.X, evt.Y)
		if g.world.Debug {
			log.Printf("event: %s tick=%d", g.lastEvent, evt.Tick)
		}
	}
}

// applyChanges picks up files reported by the watcher. It never blocks.
func (g *Game) applyChanges() {
	for g.watcher != nil {
		select {
		case c, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.reload(c); err != nil {
				log.Printf("reload %s: %v", c.Path, err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(c prefabs.Change) error {
	name := filepath.Base(c.Path)
	key := name
	if c.Script {
		key = "scripts/" + name
	}
	// Editors often write twice per save.
	if !g.stamps.Changed(key) {
		return nil
	}
	if c.Script {
		if g.autopilot == nil {
			return nil
		}
		ap, err := loadAutopilot(name)
		if err != nil {
			return err
		}
		g.autopilot = ap
		g.installSystems()
		log.Printf("reloaded %s", name)
		return nil
	}

	if name != prefabs.AvatarFile {
		return nil
	}
	spec, err := prefabs.LoadAvatarSpec()
	if err != nil {
		return err
	}
	tuning, err := spec.Tuning(sim.DefaultTuning())
	if err != nil {
		return err
	}
	if err := g.world.SetTuning(tuning); err != nil {
		return err
	}
	g.stepper = sim.NewFixedStep(tuning.PhysicsRate, tuning.MaxFrameTime)
	g.palette = newPalette(spec.Palette)
	log.Printf("reloaded %s", name)
	return nil
}

func (g *Game) debugLines() []string {
	lines := g.world.DebugLines()
	lines = append(lines,
		fmt.Sprintf("Tile size: %.1f", g.tileSize),
		fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS()),
	)
	if g.lastEvent != "" {
		lines = append(lines, "Last event: "+g.lastEvent)
	}
	return lines
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	if g.world.Debug {
		drawDebugText(screen, g.debugLines())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// LayoutF sizes tiles so the whole grid fits the window.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	grid := g.world.Grid
	ts := math.Min(outsideWidth/float64(grid.Width), outsideHeight/float64(grid.Height))
	if ts > 0 && ts != g.tileSize {
		g.tileSize = ts
		g.world.Body.Resize(ts)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
