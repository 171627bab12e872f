package engine

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/tatianab/rps-game/internal/config"
	"github.com/tatianab/rps-game/internal/game"
	"github.com/tatianab/rps-game/internal/models"
)

// recentRounds is how much history the commentator gets to see.
const recentRounds = 5

// Commentator produces a line of flavor text for a finished round.
type Commentator interface {
	Comment(ctx context.Context, c RoundContext) (string, error)
	Close()
}

// RoundContext is what a commentator knows about the game.
type RoundContext struct {
	Round    models.Round
	Recent   []models.Round
	Stats    models.Statistics
	Strategy string
}

// Turn is everything the presentation layer needs after a round.
type Turn struct {
	Round      models.Round
	Stats      models.Statistics
	Commentary string
}

type Engine struct {
	session     *game.Session
	commentator Commentator

	mu      sync.Mutex // guards history
	history []models.Round
}

// NewEngine builds a session from cfg. When an API key is configured, rounds
// also get Gemini commentary.
func NewEngine(ctx context.Context, cfg *config.Config) (*Engine, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := game.NewSession(rand.New(rand.NewSource(seed)))
	session.SetStrategy(cfg.Strategy)

	var commentator Commentator
	if cfg.GeminiAPIKey != "" {
		gc, err := NewGeminiCommentator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		commentator = gc
	}
	return New(session, commentator), nil
}

// New wraps an existing session. commentator may be nil.
func New(session *game.Session, commentator Commentator) *Engine {
	return &Engine{
		session:     session,
		commentator: commentator,
	}
}

func (e *Engine) Close() {
	if e.commentator != nil {
		e.commentator.Close()
	}
}

// PlayRound plays one round. Commentary failures are logged and leave
// Commentary empty; the round itself always counts.
func (e *Engine) PlayRound(ctx context.Context, move models.Move) Turn {
	round, stats := e.session.PlayRound(move)
	log.Printf("round %d: %s", stats.Rounds(), round)

	turn := Turn{Round: round, Stats: stats}
	if e.commentator != nil {
		text, err := e.commentator.Comment(ctx, RoundContext{
			Round:    round,
			Recent:   e.Recent(),
			Stats:    stats,
			Strategy: round.StrategyName,
		})
		if err != nil {
			log.Printf("Warning: commentary failed: %v", err)
		} else {
			turn.Commentary = text
		}
	}

	e.mu.Lock()
	e.history = append(e.history, round)
	if len(e.history) > recentRounds {
		e.history = e.history[len(e.history)-recentRounds:]
	}
	e.mu.Unlock()
	return turn
}

// Recent returns up to the last few rounds, oldest first, not counting the
// one currently being played.
func (e *Engine) Recent() []models.Round {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Round, len(e.history))
	copy(out, e.history)
	return out
}

func (e *Engine) SetStrategy(name string) {
	e.session.SetStrategy(name)
	log.Printf("strategy set to %s", e.session.StrategyName())
}

func (e *Engine) StrategyName() string {
	return e.session.StrategyName()
}

func (e *Engine) Statistics() models.Statistics {
	return e.session.Statistics()
}

// HasCommentary reports whether rounds get commentary.
func (e *Engine) HasCommentary() bool {
	return e.commentator != nil
}
