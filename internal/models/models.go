package models

import (
	"fmt"
	"strings"
)

// Move is one of the three hand shapes.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Moves lists every move in enumeration order. Frequency scans and
// tie-breaking rely on this order.
var Moves = [...]Move{Rock, Paper, Scissors}

func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Beats reports whether m wins against other.
func (m Move) Beats(other Move) bool {
	switch m {
	case Rock:
		return other == Scissors
	case Scissors:
		return other == Paper
	case Paper:
		return other == Rock
	}
	return false
}

// WinningMove returns the move that beats m. Anything outside the
// enumeration maps to Rock.
func WinningMove(m Move) Move {
	switch m {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	case Scissors:
		return Rock
	}
	return Rock
}

// ParseMove accepts a full move name or its initial, case-insensitively.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r":
		return Rock, nil
	case "paper", "p":
		return Paper, nil
	case "scissors", "s":
		return Scissors, nil
	}
	return Rock, fmt.Errorf("unknown move %q", s)
}

func (m Move) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// Outcome is the result of a single round, seen from the player's side.
type Outcome int

const (
	PlayerWin Outcome = iota
	ComputerWin
	Tie
)

func (o Outcome) String() string {
	switch o {
	case PlayerWin:
		return "Player wins"
	case ComputerWin:
		return "Computer wins"
	case Tie:
		return "Tie"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// Statistics holds the running counters of a session.
type Statistics struct {
	PlayerWins   int `yaml:"player_wins"`
	ComputerWins int `yaml:"computer_wins"`
	Ties         int `yaml:"ties"`
}

// Rounds returns the number of rounds the counters account for.
func (s Statistics) Rounds() int {
	return s.PlayerWins + s.ComputerWins + s.Ties
}

// Round is what a completed round reports back to the caller.
type Round struct {
	PlayerMove   Move    `yaml:"player_move"`
	ComputerMove Move    `yaml:"computer_move"`
	Outcome      Outcome `yaml:"outcome"`
	StrategyName string  `yaml:"strategy"`
}

func (r Round) String() string {
	return fmt.Sprintf("%s vs. %s (%s) (%s)", r.PlayerMove, r.ComputerMove, r.Outcome, r.StrategyName)
}
