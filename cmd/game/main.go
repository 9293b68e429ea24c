package main

import (
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/platformer/internal/application/game"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// newLoader returns a loader for dir, or for the embedded configs when dir
// is empty.
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func newLogger(trace bool) *slog.Logger {
	level := slog.LevelInfo
	if trace {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json or replay.msgpack)")
	replayFlag := flag.String("replay", "", "Play a recording back without a window and verify its checkpoints")
	sceneFlag := flag.String("scene", "showcase", "Scene to load from configs/scenes")
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	traceFlag := flag.Bool("trace", false, "Log every tick phase")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *traceFlag {
		cfg.Physics.Debug.Trace = true
	}
	logger := newLogger(cfg.Physics.Debug.Trace)

	if *replayFlag != "" {
		summary, err := runReplay(loader, cfg, *replayFlag, logger)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("Replay ok: %s", summary)
		return
	}

	sceneCfg, err := loader.LoadScene(*sceneFlag)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	scene, err := playing.New(cfg, sceneCfg, playing.Options{
		RecordPath: *recordFlag,
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	g.SetClock(game.NewClock(cfg.Physics.Physics.MaxDelta))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Platformer")
	ebiten.SetTPS(display.Framerate)

	// Run game; Escape ends it with ebiten.Termination, which RunGame reports as nil
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
