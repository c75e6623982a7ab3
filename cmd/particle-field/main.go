package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/config"
	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/loader"
	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/vmath"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML config file")
	colorFlag    = flag.String("color", "", "Color mode: auto, truecolor, 256")
	fpsFlag      = flag.Int("fps", 0, "Repaint rate (overrides config)")
	cellFlag     = flag.String("cell", "", "Virtual pixels per cell as WxH, e.g. 10x20")
	soundFlag    = flag.Bool("sound", false, "Enable audio ambience")
	hudFlag      = flag.Bool("hud", false, "Show status line")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/particle-field.log")
	seedFlag     = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	noLoaderFlag = flag.Bool("no-loader", false, "Skip the intro loader")
)

func main() {
	// Restore the terminal before reporting a crash on the main goroutine
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "particle-field: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "particle-field: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges the optional file with command-line overrides
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if *colorFlag != "" {
		cfg.Display.ColorMode = *colorFlag
	}
	if *fpsFlag != 0 {
		cfg.Display.FPS = *fpsFlag
	}
	if *cellFlag != "" {
		w, h, err := parseCell(*cellFlag)
		if err != nil {
			return cfg, err
		}
		cfg.Display.CellWidth, cfg.Display.CellHeight = w, h
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

// parseCell reads "WxH" into virtual pixel dimensions
func parseCell(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid -cell %q: want WxH", s)
	}
	if w, err = strconv.ParseFloat(ws, 64); err != nil {
		return 0, 0, fmt.Errorf("invalid -cell width %q: %w", ws, err)
	}
	if h, err = strconv.ParseFloat(hs, 64); err != nil {
		return 0, 0, fmt.Errorf("invalid -cell height %q: %w", hs, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid -cell %q: sides must be positive", s)
	}
	return w, h, nil
}

func resolveColorMode(s string) render.ColorMode {
	mode, err := render.ParseColorMode(s)
	if err != nil {
		return render.DetectColorMode()
	}
	return mode
}

func run(cfg config.Config) error {
	fieldCfg, err := cfg.FieldConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetResetHook(screen.Fini)
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	mode := resolveColorMode(cfg.Display.ColorMode)
	bg := cfg.Background()
	log.Printf("color mode %s, %d fps, cell %vx%v", mode, cfg.Display.FPS, cfg.Display.CellWidth, cfg.Display.CellHeight)

	cols, rows := screen.Size()
	canvas := render.NewCanvas(cols, rows, cfg.Display.CellWidth, cfg.Display.CellHeight, bg)
	hub := engine.NewSignalHub(canvas.PixelSize())
	scheduler := engine.NewPumpScheduler()

	seed := cfg.Field.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	particles := field.New(fieldCfg, vmath.NewFastRand(seed))

	ambience := audio.NewAmbience(cfg.AudioConfig())
	if err := ambience.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
	}
	defer ambience.Cleanup()

	clock := engine.NewPausableClock(engine.NewTimeProvider())

	var scene engine.Scene = particles
	if hold := cfg.LoaderDuration(); hold > 0 {
		stage := engine.NewStage(loader.New(clock), particles, clock, hold)
		stage.OnReveal(ambience.PlayChime)
		scene = stage
	}

	loop := engine.NewLoop(scene, canvas, scheduler)
	loop.Mount(hub)
	defer loop.Unmount()

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	var (
		fps        float64
		fpsFrames  uint64
		fpsStarted = time.Now()
	)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == ' ') {
					togglePause(loop, clock, ambience)
				}

			case *tcell.EventMouse:
				x, y := canvas.CellCenter(ev.Position())
				hub.EmitPointer(x, y)

			case *tcell.EventResize:
				cols, rows := ev.Size()
				canvas.Resize(cols, rows)
				screen.Sync()
				hub.EmitResize(canvas.PixelSize())
				log.Printf("resize %dx%d cells", cols, rows)
			}

		case <-ticker.C:
			scheduler.Pump()

			stats := particles.Stats()
			ambience.SetLevel(audio.LinkLevel(stats.PointerLinks, stats.Particles))

			if elapsed := time.Since(fpsStarted); elapsed >= time.Second {
				frames := loop.Frames()
				fps = float64(frames-fpsFrames) / elapsed.Seconds()
				fpsFrames = frames
				fpsStarted = time.Now()
			}

			canvas.Flush(screen, mode)
			if cfg.Display.HUD {
				render.DrawHUD(screen, render.HUD{
					Particles:    stats.Particles,
					Links:        stats.Links,
					PointerLinks: stats.PointerLinks,
					FPS:          fps,
					Paused:       !loop.Running(),
				}, core.RGBCyan, bg, mode)
			}
			screen.Show()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func togglePause(loop *engine.Loop, clock *engine.PausableClock, ambience *audio.Ambience) {
	if loop.Running() {
		loop.Stop()
		clock.Pause()
		ambience.SetPaused(true)
		log.Printf("paused after %d frames", loop.Frames())
		return
	}
	clock.Resume()
	ambience.SetPaused(false)
	loop.Start()
	log.Printf("resumed")
}
