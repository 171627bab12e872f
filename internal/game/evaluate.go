package game

import "github.com/tatianab/rps-game/internal/models"

// Evaluate scores a round from the player's side.
func Evaluate(player, computer models.Move) models.Outcome {
	switch {
	case player == computer:
		return models.Tie
	case player.Beats(computer):
		return models.PlayerWin
	default:
		return models.ComputerWin
	}
}
