package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/tatianab/rps-game/internal/models"
	"github.com/tatianab/rps-game/internal/strategy"
)

// Session holds the active computer strategy and the running counters.
// Callers may use it from several goroutines; each round is atomic.
type Session struct {
	mu       sync.Mutex
	rng      *rand.Rand
	strategy strategy.Strategy
	stats    models.Statistics
}

// NewSession starts a session with the Random strategy. A nil rng gets a
// time-seeded source.
func NewSession(rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		rng:      rng,
		strategy: strategy.NewRandom(rng),
	}
}

// PlayRound asks the strategy for a move, scores the round, bumps exactly
// one counter and then lets the strategy learn the player's move. The
// returned statistics include this round and no other.
func (s *Session) PlayRound(player models.Move) (models.Round, models.Statistics) {
	s.mu.Lock()
	defer s.mu.Unlock()

	computer := s.strategy.ProposeMove()
	outcome := Evaluate(player, computer)
	switch outcome {
	case models.PlayerWin:
		s.stats.PlayerWins++
	case models.ComputerWin:
		s.stats.ComputerWins++
	default:
		s.stats.Ties++
	}
	s.strategy.ObservePlayerMove(player)

	round := models.Round{
		PlayerMove:   player,
		ComputerMove: computer,
		Outcome:      outcome,
		StrategyName: s.strategy.Name(),
	}
	return round, s.stats
}

// SetStrategy installs a fresh instance of the named strategy. Whatever the
// previous instance learned is dropped; the counters are kept.
func (s *Session) SetStrategy(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strategy = strategy.New(name, s.rng)
}

// StrategyName returns the display name of the active strategy.
func (s *Session) StrategyName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strategy.Name()
}

// Statistics returns a snapshot of the counters.
func (s *Session) Statistics() models.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
