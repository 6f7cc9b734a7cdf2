package sim

import (
	"math"
	"time"
)

// Scoreboard holds the session counters: score, survival time, power meter
// and the best score read from the store.
type Scoreboard struct {
	score     int
	scoreAcc  time.Duration
	elapsed   time.Duration
	power     int
	powerAcc  time.Duration
	best      int
	hasBest   bool
	persisted int

	scoreInterval time.Duration
	chargeEvery   time.Duration
	maxPower      int
}

// NewScoreboard starts a session at zero with the configured starting charge.
// best and hasBest come from the high-score store.
func NewScoreboard(cfg *Config, best int, hasBest bool) *Scoreboard {
	return &Scoreboard{
		power:         cfg.Power.Start,
		best:          best,
		hasBest:       hasBest,
		persisted:     best,
		scoreInterval: millis(cfg.Score.TickInterval),
		chargeEvery:   millis(cfg.Power.ChargeInterval),
		maxPower:      cfg.Power.Max,
	}
}

func (s *Scoreboard) Score() int { return s.score }

// Elapsed is the survival time in milliseconds
func (s *Scoreboard) Elapsed() float64 { return float64(s.elapsed) / float64(time.Millisecond) }

func (s *Scoreboard) Power() int { return s.power }

// HighScore reports the best score, counting the current session. It is
// absent until a score has been stored or earned.
func (s *Scoreboard) HighScore() (int, bool) {
	if s.score > s.best {
		return s.score, true
	}
	return s.best, s.hasBest || s.score > 0
}

// AddPoints adds to the score
func (s *Scoreboard) AddPoints(n int) { s.score += n }

// Advance accumulates dt into the score and power timers. Each full
// interval is worth exactly one point or one charge whatever the tick size.
// Time is kept in whole nanoseconds so fractional frame times add up exactly.
func (s *Scoreboard) Advance(dtMs float64) {
	dt := millis(dtMs)
	s.elapsed += dt

	if s.scoreInterval > 0 {
		s.scoreAcc += dt
		for s.scoreAcc >= s.scoreInterval {
			s.scoreAcc -= s.scoreInterval
			s.score++
		}
	}

	if s.chargeEvery > 0 {
		s.powerAcc += dt
		for s.powerAcc >= s.chargeEvery {
			s.powerAcc -= s.chargeEvery
			if s.power < s.maxPower {
				s.power++
			}
		}
	}
}

// SpendCharge consumes one charge, reporting false when the meter is empty
func (s *Scoreboard) SpendCharge() bool {
	if s.power < 1 {
		return false
	}
	s.power--
	return true
}

// Exceeded reports whether the score beats the last persisted best
func (s *Scoreboard) Exceeded() bool { return s.score > s.persisted }

// markPersisted records that the current score was written to the store
func (s *Scoreboard) markPersisted() {
	s.persisted = s.score
	s.best = s.score
	s.hasBest = true
}

// millis converts a millisecond count to a Duration rounded to the nanosecond
func millis(ms float64) time.Duration {
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}
