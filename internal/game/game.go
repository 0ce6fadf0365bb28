// Package game implements the reflex mini-game: a target jumps around the
// board and every hit within the countdown scores points.
package game

import (
	"math/rand/v2" // Target placement
	"sync"         // Hits and ticks arrive on different goroutines
	"time"         // Tick interval

	"github.com/sirupsen/logrus" // Structured logging
)

// Phase is the game's state machine position
type Phase string

const (
	Idle     Phase = "idle"     // Never started
	Playing  Phase = "playing"  // Countdown running, hits count
	Finished Phase = "finished" // Countdown reached zero; idle again until restarted
)

const (
	Duration     = 15          // Countdown budget in ticks
	HitPoints    = 10          // Score per successful hit
	TickInterval = time.Second // One countdown step
)

// Position is a target location in percent of the board, within [10, 90)
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snapshot is a read-only view of a session
type Snapshot struct {
	Phase    Phase    `json:"phase"`
	Score    int      `json:"score"`
	TimeLeft int      `json:"time_left"`
	Target   Position `json:"target"`
	Ticking  bool     `json:"ticking"` // A countdown ticker is running
}

// Ticker delivers countdown ticks
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory starts a ticker firing every d
type TickerFactory func(d time.Duration) Ticker

type wallTicker struct{ t *time.Ticker }

func (w wallTicker) C() <-chan time.Time { return w.t.C }
func (w wallTicker) Stop()               { w.t.Stop() }

// NewWallTicker is the TickerFactory backed by time.Ticker
func NewWallTicker(d time.Duration) Ticker {
	return wallTicker{t: time.NewTicker(d)}
}

// Session is one player's game
type Session struct {
	mu        sync.Mutex
	phase     Phase
	score     int
	timeLeft  int
	target    Position
	stop      chan struct{} // Closed to end the running tick loop; nil when none runs
	rand      func() float64
	newTicker TickerFactory // nil means ticks are driven by calling Tick
}

// Option customises a Session
type Option func(*Session)

// WithRand uses r for target placement
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rand = r.Float64 }
}

// WithTicker replaces the wall-clock ticker
func WithTicker(f TickerFactory) Option {
	return func(s *Session) { s.newTicker = f }
}

// WithManualTicks disables the internal ticker; the caller drives the countdown with Tick
func WithManualTicks() Option {
	return func(s *Session) { s.newTicker = nil }
}

// NewSession returns an idle session
func NewSession(opts ...Option) *Session {
	s := &Session{
		phase:     Idle,
		timeLeft:  Duration,
		target:    Position{X: 50, Y: 50},
		rand:      rand.Float64,
		newTicker: NewWallTicker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start resets the score and countdown, places the target and starts ticking.
// Starting while a game runs restarts it.
func (s *Session) Start() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.phase = Playing
	s.score = 0
	s.timeLeft = Duration
	s.moveLocked()
	if s.newTicker != nil {
		s.stop = make(chan struct{})
		go s.run(s.newTicker(TickInterval), s.stop)
	}
	logrus.Debug("Game started")
	return s.snapshotLocked()
}

// Tick advances the countdown by one step. It reports whether the game is still running.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickLocked()
}

// Hit scores a target hit and moves the target. Hits outside a running game are ignored.
func (s *Session) Hit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Playing {
		return false
	}
	s.score += HitPoints
	s.moveLocked()
	return true
}

// Snapshot returns the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close stops the ticker. A running game ends where it stands.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	if s.phase == Playing {
		s.phase = Finished
	}
}

// run forwards ticks until the game ends or stop is closed
func (s *Session) run(t Ticker, stop chan struct{}) {
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			s.mu.Lock()
			if s.stop != stop {
				s.mu.Unlock()
				return // A newer game owns the countdown
			}
			running := s.tickLocked()
			s.mu.Unlock()
			if !running {
				return
			}
		}
	}
}

func (s *Session) tickLocked() bool {
	if s.phase != Playing {
		return false
	}
	s.timeLeft--
	if s.timeLeft > 0 {
		return true
	}
	s.timeLeft = 0
	s.phase = Finished
	s.stopLocked()
	logrus.WithField("score", s.score).Info("Game finished")
	return false
}

func (s *Session) stopLocked() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

func (s *Session) moveLocked() {
	s.target = Position{X: s.rand()*80 + 10, Y: s.rand()*80 + 10}
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:    s.phase,
		Score:    s.score,
		TimeLeft: s.timeLeft,
		Target:   s.target,
		Ticking:  s.stop != nil,
	}
}
