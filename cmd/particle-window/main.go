package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/config"
	"github.com/lixenwraith/particle-field/constants"
	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/loader"
	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/render/window"
	"github.com/lixenwraith/particle-field/vmath"
	"github.com/ncruces/zenity"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML config file")
	soundFlag    = flag.Bool("sound", false, "Enable audio ambience")
	hudFlag      = flag.Bool("hud", false, "Show status line")
	seedFlag     = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	noLoaderFlag = flag.Bool("no-loader", false, "Skip the intro loader")
)

// Game adapts the frame loop to ebiten's update/draw cycle
// Draw is the repaint that pumps queued frames
type Game struct {
	hub       *engine.SignalHub
	scheduler *engine.PumpScheduler
	surface   *window.Surface
	particles *field.Field
	loop      *engine.Loop
	ambience  *audio.Ambience
	hud       bool

	width, height  int
	pointerX       int
	pointerY       int
	pointerTracked bool
}

func newGame(cfg config.Config, ambience *audio.Ambience) (*Game, error) {
	fieldCfg, err := cfg.FieldConfig()
	if err != nil {
		return nil, err
	}

	seed := cfg.Field.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		hub:       engine.NewSignalHub(constants.WindowWidth, constants.WindowHeight),
		scheduler: engine.NewPumpScheduler(),
		surface:   window.NewSurface(cfg.Background()),
		particles: field.New(fieldCfg, vmath.NewFastRand(seed)),
		ambience:  ambience,
		hud:       cfg.Display.HUD,
		width:     constants.WindowWidth,
		height:    constants.WindowHeight,
	}

	var scene engine.Scene = g.particles
	if hold := cfg.LoaderDuration(); hold > 0 {
		clock := engine.NewTimeProvider()
		stage := engine.NewStage(loader.New(clock), g.particles, clock, hold)
		stage.OnReveal(ambience.PlayChime)
		scene = stage
	}

	g.loop = engine.NewLoop(scene, g.surface, g.scheduler)
	g.loop.Mount(g.hub)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if !g.pointerTracked || x != g.pointerX || y != g.pointerY {
		g.pointerX, g.pointerY, g.pointerTracked = x, y, true
		g.hub.EmitPointer(float64(x), float64(y))
	}

	stats := g.particles.Stats()
	g.ambience.SetLevel(audio.LinkLevel(stats.PointerLinks, stats.Particles))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.scheduler.Pump()
	g.surface.Unbind()

	if g.hud {
		stats := g.particles.Stats()
		ebitenutil.DebugPrint(screen, render.HUD{
			Particles:    stats.Particles,
			Links:        stats.Links,
			PointerLinks: stats.PointerLinks,
			FPS:          ebiten.ActualFPS(),
		}.String())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.hub.EmitResize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if *soundFlag {
		cfg.Audio.Enabled = true
	}
	if *hudFlag {
		cfg.Display.HUD = true
	}
	if *seedFlag != 0 {
		cfg.Field.Seed = *seedFlag
	}
	if *noLoaderFlag {
		cfg.Loader.Enabled = false
	}
	return cfg, cfg.Validate()
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ambience := audio.NewAmbience(cfg.AudioConfig())
	if err := ambience.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
	}
	defer ambience.Cleanup()

	g, err := newGame(cfg, ambience)
	if err != nil {
		return err
	}
	defer g.loop.Unmount()

	ebiten.SetWindowSize(constants.WindowWidth, constants.WindowHeight)
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	log.SetPrefix("particle-window: ")

	if err := run(); err != nil {
		log.Printf("fatal: %v", err)
		if dlgErr := zenity.Error(err.Error(), zenity.Title(constants.WindowTitle), zenity.ErrorIcon); dlgErr != nil {
			log.Printf("error dialog: %v", dlgErr)
		}
		os.Exit(1)
	}
}
