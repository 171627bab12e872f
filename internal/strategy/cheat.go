package strategy

import (
	"math/rand"

	"github.com/tatianab/rps-game/internal/models"
)

// CheatProbability is the chance that Cheat peeks on a given round.
const CheatProbability = 0.10

// Cheat mostly plays at random, but now and then "peeks" and plays the move
// that beats its guess of the player's move. The guess is itself a random
// draw and not the player's real move, so a peek does not guarantee a win.
type Cheat struct {
	rng   *rand.Rand
	peeks int
}

func NewCheat(rng *rand.Rand) *Cheat {
	return &Cheat{rng: rng}
}

func (s *Cheat) ProposeMove() models.Move {
	if s.rng.Float64() < CheatProbability {
		s.peeks++
		guess := randomMove(s.rng)
		return models.WinningMove(guess)
	}
	return randomMove(s.rng)
}

func (s *Cheat) ObservePlayerMove(models.Move) {}

// Peeks returns how many proposals took the cheating branch.
func (s *Cheat) Peeks() int { return s.peeks }

func (s *Cheat) Name() string { return CheatName }
