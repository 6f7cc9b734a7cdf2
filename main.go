package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"sidescroller/game"
	"sidescroller/highscore"
	"sidescroller/logging"
	"sidescroller/sim"
	"sidescroller/telemetry"
)

type options struct {
	configPath  string
	assets      string
	backend     string
	scorePath   string
	metricsAddr string
	logLevel    string
	logDir      string
	seed        int64
	slowTick    time.Duration
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML gameplay config (or set "+sim.ConfigEnv+")")
	flag.StringVar(&opts.assets, "assets", "assets", "directory searched for sprite PNGs")
	flag.StringVar(&opts.backend, "highscore-backend", "file", "high score store: memory, file or badger")
	flag.StringVar(&opts.scorePath, "highscore", "highscore.json", "high score file, or directory for badger")
	flag.StringVar(&opts.metricsAddr, "metrics", "", "serve Prometheus metrics on this address (e.g. :9100)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.StringVar(&opts.logDir, "log-dir", "", "also write logs to a timestamped file in this directory")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed (0 uses the clock)")
	flag.DurationVar(&opts.slowTick, "slow-tick", 0, "capture a CPU profile when a tick takes longer than this")
	flag.Parse()

	// run returns only after its deferred cleanup, so the store and log
	// file are flushed before exiting
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	a, err := setup(opts)
	if err != nil {
		return err
	}
	defer a.close()

	config := game.DefaultConfig()
	config.AssetsDir = opts.assets
	config.SlowTick = opts.slowTick
	g := game.NewGame(config, a.sim, a.input, a.collector, a.logger)

	w, h := g.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizable(true)

	a.logger.Infof("starting %s (seed %d)", config.Title, a.seed)
	if err := ebiten.RunGame(g); err != nil {
		a.logger.Errorf("game loop: %v", err)
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// app is everything the game window needs that must be released on exit
type app struct {
	logger    *logging.Logger
	logFile   *os.File
	store     highscore.Store
	collector *telemetry.Collector
	input     *game.KeyboardInput
	sim       *sim.Simulation
	seed      int64
	cancel    context.CancelFunc
}

// setup builds the simulation and its collaborators. On error everything
// opened so far is released.
func setup(opts options) (a *app, err error) {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, err
	}

	a = &app{logger: logging.New(os.Stderr, level), cancel: func() {}}
	defer func() {
		if err != nil {
			a.close()
			a = nil
		}
	}()

	if opts.logDir != "" {
		fileLogger, file, err := logging.OpenFile(opts.logDir, "sidescroller", level)
		if err != nil {
			return a, fmt.Errorf("open log file: %w", err)
		}
		a.logger, a.logFile = fileLogger, file
	}

	cfg, err := sim.LoadConfig(opts.configPath)
	if err != nil {
		return a, fmt.Errorf("load config: %w", err)
	}

	store, err := highscore.Open(opts.backend, opts.scorePath, a.logger)
	if err != nil {
		return a, fmt.Errorf("open high score store: %w", err)
	}
	a.store = store

	a.collector = telemetry.NewCollector()
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	if opts.metricsAddr != "" {
		go func() {
			if err := a.collector.Serve(ctx, opts.metricsAddr, a.logger); err != nil {
				a.logger.Errorf("metrics server: %v", err)
			}
		}()
	}

	a.seed = opts.seed
	if a.seed == 0 {
		a.seed = time.Now().UnixNano()
	}
	a.input = game.NewKeyboardInput()
	a.sim = sim.New(cfg,
		sim.WithRand(sim.NewRand(a.seed)),
		sim.WithInput(a.input),
		sim.WithStore(a.store),
		sim.WithObserver(a.collector),
		sim.WithLogger(a.logger),
	)
	return a, nil
}

func (a *app) close() {
	a.cancel()
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warnf("close high score store: %v", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
