package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed sequence of draws, cycling when exhausted
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type memStore struct {
	best    int
	has     bool
	sets    []int
	failSet bool
}

func (m *memStore) Get() (int, bool) { return m.best, m.has }

func (m *memStore) Set(score int) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.sets = append(m.sets, score)
	m.best, m.has = score, true
	return nil
}

type recordingObserver struct {
	spawned  map[Kind]int
	killed   int
	equipped []Kind
	culled   map[Kind]int
	ended    int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{spawned: map[Kind]int{}, culled: map[Kind]int{}}
}

func (o *recordingObserver) Spawned(k Kind)       { o.spawned[k]++ }
func (o *recordingObserver) Killed(Kind)          { o.killed++ }
func (o *recordingObserver) Equipped(k Kind)      { o.equipped = append(o.equipped, k) }
func (o *recordingObserver) Culled(k Kind, n int) { o.culled[k] += n }
func (o *recordingObserver) Ended(int, float64)   { o.ended++ }

type spriteCall struct {
	kind    Kind
	variant int
}

type recordingCanvas struct {
	calls []spriteCall
}

func (c *recordingCanvas) Sprite(kind Kind, variant int, _ int, _ Rect) {
	c.calls = append(c.calls, spriteCall{kind, variant})
}

// quietSim starts a simulation with no spawners so tests place entities by hand
func quietSim(t *testing.T, opts ...Option) (*Simulation, *StaticInput) {
	t.Helper()
	in := &StaticInput{}
	opts = append([]Option{WithInput(in), WithRand(&scriptedRand{vals: []float64{0.5}})}, opts...)
	s := New(DefaultConfig(), opts...)
	s.Start()
	require.NotNil(t, s.State())
	s.State().Spawners = nil
	return s, in
}

// testFrame builds a frame over st for driving single entities
func testFrame(st *State, cfg *Config, dt float64) *Frame {
	return &Frame{
		State:    st,
		Config:   cfg,
		Rand:     &scriptedRand{vals: []float64{0.5}},
		Dt:       dt,
		observer: NopObserver{},
	}
}
