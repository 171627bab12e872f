package strategy

import "github.com/tatianab/rps-game/internal/models"

// LastUsed replays whatever the player threw last round.
type LastUsed struct {
	last *models.Move
}

func NewLastUsed() *LastUsed {
	return &LastUsed{}
}

// ProposeMove opens with Rock before any player move has been seen.
func (s *LastUsed) ProposeMove() models.Move {
	if s.last == nil {
		return models.Rock
	}
	return *s.last
}

func (s *LastUsed) ObservePlayerMove(m models.Move) {
	s.last = &m
}

func (s *LastUsed) Name() string { return LastUsedName }
