package strategy

import "github.com/tatianab/rps-game/internal/models"

// Frequency counts the player's moves and counters either the most or the
// least used one. Ties go to the move that comes first in models.Moves.
type Frequency struct {
	name   string
	most   bool
	counts map[models.Move]int
}

// NewMostUsed counters the player's favourite move.
func NewMostUsed() *Frequency {
	return newFrequency(MostUsedName, true)
}

// NewLeastUsed counters the move the player throws least.
func NewLeastUsed() *Frequency {
	return newFrequency(LeastUsedName, false)
}

func newFrequency(name string, most bool) *Frequency {
	counts := make(map[models.Move]int, len(models.Moves))
	for _, m := range models.Moves {
		counts[m] = 0
	}
	return &Frequency{name: name, most: most, counts: counts}
}

func (s *Frequency) ProposeMove() models.Move {
	return models.WinningMove(s.target())
}

// target scans left to right and only replaces the pick on a strictly
// better count.
func (s *Frequency) target() models.Move {
	pick := models.Moves[0]
	best := s.counts[pick]
	for _, m := range models.Moves[1:] {
		c := s.counts[m]
		if (s.most && c > best) || (!s.most && c < best) {
			pick, best = m, c
		}
	}
	return pick
}

func (s *Frequency) ObservePlayerMove(m models.Move) {
	if _, ok := s.counts[m]; ok {
		s.counts[m]++
	}
}

// Counts returns a copy of the observed move counts.
func (s *Frequency) Counts() map[models.Move]int {
	out := make(map[models.Move]int, len(s.counts))
	for m, c := range s.counts {
		out[m] = c
	}
	return out
}

func (s *Frequency) Name() string { return s.name }
