package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"sidescroller/highscore"
	"sidescroller/logging"
	"sidescroller/sim"
	"sidescroller/telemetry"
)

// summary is printed when the run ends
type summary struct {
	Sessions int
	Ticks    int
	Best     int
	Last     int
	Elapsed  time.Duration
}

func (s summary) String() string {
	return fmt.Sprintf("sessions=%d ticks=%d best=%d last=%d simulated=%v",
		s.Sessions, s.Ticks, s.Best, s.Last, s.Elapsed.Round(time.Millisecond))
}

func main() {
	seed := flag.Int64("seed", 1, "random seed")
	duration := flag.Duration("duration", time.Minute, "simulated time to run")
	tick := flag.Duration("tick", time.Second/60, "simulated time per tick")
	configPath := flag.String("config", "", "YAML gameplay config (or set "+sim.ConfigEnv+")")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address (e.g. :9100)")
	backend := flag.String("highscore-backend", "memory", "high score store: memory, file or badger")
	scorePath := flag.String("highscore", "", "high score file, or directory for badger")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	realtime := flag.Bool("realtime", false, "sleep between ticks so metrics can be watched live")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(os.Stderr, level)

	cfg, err := sim.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := highscore.Open(*backend, *scorePath, logger)
	if err != nil {
		log.Fatalf("Failed to open high score store: %v", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	collector := telemetry.NewCollector()
	if *metricsAddr != "" {
		go func() {
			if err := collector.Serve(ctx, *metricsAddr, logger); err != nil {
				logger.Errorf("metrics server: %v", err)
			}
		}()
	}

	var s *sim.Simulation
	pilot := NewAutopilot(cfg.Field, func() *sim.State { return s.State() })
	s = sim.New(cfg,
		sim.WithRand(sim.NewRand(*seed)),
		sim.WithInput(pilot),
		sim.WithStore(store),
		sim.WithObserver(collector),
		sim.WithLogger(logger),
	)

	logger.Infof("headless run: seed=%d duration=%v tick=%v", *seed, *duration, *tick)
	sum := run(ctx, s, collector, *duration, *tick, *realtime)
	logger.Infof("done: %s", sum)
	fmt.Println(sum)
}

// run advances s in fixed ticks until duration of simulated time has passed,
// restarting after every game over
func run(ctx context.Context, s *sim.Simulation, collector *telemetry.Collector, duration, tick time.Duration, realtime bool) summary {
	var sum summary
	dt := float64(tick) / float64(time.Millisecond)

	s.Start()
	sum.Sessions = 1
	for sum.Elapsed < duration {
		if ctx.Err() != nil {
			break
		}
		if s.GameOver() {
			sum.Last = s.Score()
			s.Start()
			sum.Sessions++
		}

		start := time.Now()
		s.Advance(dt)
		if collector != nil {
			collector.ObserveTick(time.Since(start), s.State())
		}
		sum.Ticks++
		sum.Elapsed += tick
		sum.Best = max(sum.Best, s.Score())

		if realtime {
			time.Sleep(tick)
		}
	}
	sum.Last = s.Score()
	return sum
}
