package strategy

import (
	"math/rand"

	"github.com/tatianab/rps-game/internal/models"
)

// Display names of the strategy variants.
const (
	RandomName    = "Random"
	LastUsedName  = "Last Used"
	MostUsedName  = "Most Used"
	LeastUsedName = "Least Used"
	CheatName     = "Cheat"
)

// Strategy is how the computer picks its move each round.
type Strategy interface {
	// ProposeMove is called once per round, before the player's move is known.
	ProposeMove() models.Move
	// ObservePlayerMove is called after the round with the player's actual move.
	ObservePlayerMove(models.Move)
	Name() string
}

// Names returns the variant names in picker order.
func Names() []string {
	return []string{RandomName, LastUsedName, MostUsedName, LeastUsedName, CheatName}
}

// New builds a fresh instance of the named variant. Unknown names get Random.
func New(name string, rng *rand.Rand) Strategy {
	switch name {
	case LastUsedName:
		return NewLastUsed()
	case MostUsedName:
		return NewMostUsed()
	case LeastUsedName:
		return NewLeastUsed()
	case CheatName:
		return NewCheat(rng)
	default:
		return NewRandom(rng)
	}
}

func randomMove(rng *rand.Rand) models.Move {
	return models.Moves[rng.Intn(len(models.Moves))]
}
