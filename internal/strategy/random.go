package strategy

import (
	"math/rand"

	"github.com/tatianab/rps-game/internal/models"
)

// Random plays a uniformly random move every round.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (s *Random) ProposeMove() models.Move { return randomMove(s.rng) }

func (s *Random) ObservePlayerMove(models.Move) {}

func (s *Random) Name() string { return RandomName }
