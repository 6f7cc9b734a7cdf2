// Package telemetry exports simulation events as Prometheus metrics.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sidescroller/logging"
	"sidescroller/sim"
)

const namespace = "sidescroller"

// Collector turns simulation events into counters. It implements sim.Observer.
type Collector struct {
	registry *prometheus.Registry

	spawned  *prometheus.CounterVec
	killed   *prometheus.CounterVec
	equipped *prometheus.CounterVec
	culled   *prometheus.CounterVec
	sessions prometheus.Counter
	score    prometheus.Histogram
	survival prometheus.Histogram
	tick     prometheus.Histogram
	live     *prometheus.GaugeVec
}

// NewCollector registers every metric on a private registry
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		spawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_spawned_total",
			Help:      "Entities created, by kind.",
		}, []string{"kind"}),
		killed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kills_total",
			Help:      "Hostiles destroyed, by victim kind.",
		}, []string{"kind"}),
		equipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attachments_equipped_total",
			Help:      "Pickups turned into attachments, by attachment kind.",
		}, []string{"kind"}),
		culled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_culled_total",
			Help:      "Entities removed by the per-tick filter, by kind.",
		}, []string{"kind"}),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_ended_total",
			Help:      "Sessions that reached game over.",
		}),
		score: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at game over.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		survival: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "survival_seconds",
			Help:      "Survival time at game over.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		tick: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent in one simulation tick.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		live: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_entities",
			Help:      "Live entities per collection after the last tick.",
		}, []string{"kind"}),
	}

	c.registry.MustRegister(c.spawned, c.killed, c.equipped, c.culled,
		c.sessions, c.score, c.survival, c.tick, c.live)
	return c
}

// Registry exposes the private registry, mainly for tests
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) Spawned(kind sim.Kind) { c.spawned.WithLabelValues(kind.String()).Inc() }

func (c *Collector) Killed(kind sim.Kind) { c.killed.WithLabelValues(kind.String()).Inc() }

func (c *Collector) Equipped(kind sim.Kind) { c.equipped.WithLabelValues(kind.String()).Inc() }

func (c *Collector) Culled(kind sim.Kind, n int) {
	c.culled.WithLabelValues(kind.String()).Add(float64(n))
}

func (c *Collector) Ended(score int, elapsedMs float64) {
	c.sessions.Inc()
	c.score.Observe(float64(score))
	c.survival.Observe(elapsedMs / 1000)
}

// ObserveTick records how long one Advance call took and the collection sizes after it
func (c *Collector) ObserveTick(d time.Duration, st *sim.State) {
	c.tick.Observe(d.Seconds())
	if st == nil {
		return
	}
	c.live.WithLabelValues(sim.KindHostile.String()).Set(float64(len(st.Hostiles)))
	c.live.WithLabelValues(sim.KindProjectile.String()).Set(float64(len(st.Projectiles)))
	c.live.WithLabelValues(sim.KindObstacle.String()).Set(float64(len(st.Obstacles)))
	c.live.WithLabelValues(sim.KindPickup.String()).Set(float64(len(st.Pickups)))
}

// Handler serves the collector's metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled
func (c *Collector) Serve(ctx context.Context, addr string, log *logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warnf("metrics server shutdown: %v", err)
		}
	}()

	log.Infof("metrics available at http://%s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
