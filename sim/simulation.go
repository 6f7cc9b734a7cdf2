package sim

import (
	"math"
	"time"

	"github.com/google/uuid"

	"sidescroller/logging"
)

// Option configures a Simulation
type Option func(*Simulation)

// WithRand injects the random source behind every randomized choice
func WithRand(r RandSource) Option {
	return func(s *Simulation) { s.rand = r }
}

// WithInput sets the held-keys provider
func WithInput(in InputSource) Option {
	return func(s *Simulation) { s.input = in }
}

// WithStore sets the persisted high-score store
func WithStore(store HighScoreStore) Option {
	return func(s *Simulation) { s.store = store }
}

// WithObserver receives lifecycle events
func WithObserver(obs Observer) Option {
	return func(s *Simulation) { s.observer = obs }
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(s *Simulation) { s.log = l }
}

// Simulation runs the per-tick cycle over a State. Advance must not be called
// concurrently; the host drives it from a single goroutine.
type Simulation struct {
	cfg      Config
	rand     RandSource
	input    InputSource
	store    HighScoreStore
	observer Observer
	log      *logging.Logger

	session string
	state   *State
	ticks   int
}

// New creates a simulation. Call Start before the first Advance.
func New(cfg Config, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:      cfg,
		input:    &StaticInput{},
		observer: NopObserver{},
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = NewRand(time.Now().UnixNano())
	}
	return s
}

// Start begins a fresh session, reading the persisted high score
func (s *Simulation) Start() {
	best, ok := 0, false
	if s.store != nil {
		best, ok = s.store.Get()
	}

	s.session = uuid.NewString()
	s.state = NewState(&s.cfg, s.rand, best, ok)
	s.ticks = 0
	s.logger().Infof("session started (high score %d, present %t)", best, ok)
}

// Advance runs one tick covering dtMs of real time. It does nothing before
// Start or after game over.
func (s *Simulation) Advance(dtMs float64) {
	st := s.state
	if st == nil || st.Status == GameOver {
		return
	}
	if dtMs < 0 || math.IsNaN(dtMs) || math.IsInf(dtMs, 0) {
		dtMs = 0
	}
	s.ticks++

	f := &Frame{
		State:    st,
		Config:   &s.cfg,
		Rand:     s.rand,
		Dt:       dtMs,
		Input:    s.input.Held(),
		observer: s.observer,
	}

	for _, sp := range st.Spawners {
		if e := sp.Advance(f); e != nil {
			st.Add(e)
			s.observer.Spawned(e.Kind())
		}
	}

	st.Player.Update(f)

	for _, h := range st.Hostiles {
		h.Update(f)
	}
	for _, o := range st.Obstacles {
		o.Update(f)
	}
	for _, p := range st.Pickups {
		p.Update(f)
	}
	for _, p := range st.Projectiles {
		p.Update(f)
	}

	st.Equipment.Update(f)

	st.filter(s.observer)
	st.flush()

	st.Score.Advance(dtMs)
	s.persistHighScore()

	if st.terminal {
		st.Status = GameOver
		s.observer.Ended(st.Score.Score(), st.Score.Elapsed())
		s.logger().Infof("game over: score %d after %.0fms (%d ticks)",
			st.Score.Score(), st.Score.Elapsed(), s.ticks)
	}
}

func (s *Simulation) persistHighScore() {
	sb := s.state.Score
	if !sb.Exceeded() {
		return
	}
	if s.store != nil {
		if err := s.store.Set(sb.Score()); err != nil {
			s.logger().Warnf("persist high score %d: %v", sb.Score(), err)
		}
	}
	sb.markPersisted()
}

func (s *Simulation) logger() *logging.Logger {
	return s.log.With("session", s.session)
}

// Draw hands every live entity to c, back to front
func (s *Simulation) Draw(c Canvas) {
	if s.state == nil {
		return
	}
	for _, e := range s.state.Entities() {
		e.Draw(c)
	}
}

func (s *Simulation) Score() int {
	if s.state == nil {
		return 0
	}
	return s.state.Score.Score()
}

// HighScore is the best score so far, absent when none was ever recorded
func (s *Simulation) HighScore() (int, bool) {
	if s.state == nil {
		return 0, false
	}
	return s.state.Score.HighScore()
}

func (s *Simulation) Power() int {
	if s.state == nil {
		return 0
	}
	return s.state.Score.Power()
}

// Elapsed is the survival time in milliseconds
func (s *Simulation) Elapsed() float64 {
	if s.state == nil {
		return 0
	}
	return s.state.Score.Elapsed()
}

func (s *Simulation) GameOver() bool {
	return s.state != nil && s.state.Status == GameOver
}

// State exposes the live state for hosts and tests. Only mutate it between ticks.
func (s *Simulation) State() *State { return s.state }

// Session is the id of the current session
func (s *Simulation) Session() string { return s.session }

func (s *Simulation) Config() Config { return s.cfg }

// Ticks is the number of ticks run this session
func (s *Simulation) Ticks() int { return s.ticks }
