package strategy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tatianab/rps-game/internal/models"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNewByName(t *testing.T) {
	rng := newRNG()
	for _, name := range Names() {
		s := New(name, rng)
		if s.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, s.Name())
		}
	}
	if got := New("Telepathy", rng).Name(); got != RandomName {
		t.Errorf("Expected unknown name to fall back to %q, got %q", RandomName, got)
	}
}

func TestNamesOrder(t *testing.T) {
	want := []string{"Random", "Last Used", "Most Used", "Least Used", "Cheat"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRandomIsUniform(t *testing.T) {
	s := NewRandom(newRNG())
	const draws = 30000
	counts := map[models.Move]int{}
	for i := 0; i < draws; i++ {
		counts[s.ProposeMove()]++
	}
	for _, m := range models.Moves {
		frac := float64(counts[m]) / draws
		if math.Abs(frac-1.0/3) > 0.02 {
			t.Errorf("Random picked %s with frequency %.3f, want about 0.333", m, frac)
		}
	}
}

func TestLastUsed(t *testing.T) {
	s := NewLastUsed()
	if got := s.ProposeMove(); got != models.Rock {
		t.Fatalf("Expected Rock before any observation, got %s", got)
	}
	s.ObservePlayerMove(models.Scissors)
	if got := s.ProposeMove(); got != models.Scissors {
		t.Errorf("Expected Scissors after observing Scissors, got %s", got)
	}
	s.ObservePlayerMove(models.Paper)
	if got := s.ProposeMove(); got != models.Paper {
		t.Errorf("Expected Paper after observing Paper, got %s", got)
	}
}

func TestFrequencyStrategies(t *testing.T) {
	tests := []struct {
		name     string
		newFn    func() *Frequency
		observed []models.Move
		want     models.Move
	}{
		{"most used, no history", NewMostUsed, nil, models.Paper},
		{"least used, no history", NewLeastUsed, nil, models.Paper},
		{"most used", NewMostUsed, []models.Move{models.Rock, models.Rock, models.Paper}, models.Paper},
		{"least used", NewLeastUsed, []models.Move{models.Rock, models.Rock, models.Paper}, models.Rock},
		{"most used tie goes to first", NewMostUsed, []models.Move{models.Scissors, models.Paper}, models.Scissors},
		{"least used tie goes to first", NewLeastUsed, []models.Move{models.Rock}, models.Scissors},
		{"most used scissors", NewMostUsed, []models.Move{models.Scissors, models.Scissors, models.Rock}, models.Rock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.newFn()
			for _, m := range tt.observed {
				s.ObservePlayerMove(m)
			}
			if got := s.ProposeMove(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestFrequencyCountsSumToObservations(t *testing.T) {
	s := NewMostUsed()
	rng := newRNG()
	const n = 57
	for i := 0; i < n; i++ {
		s.ObservePlayerMove(models.Moves[rng.Intn(3)])
	}
	counts := s.Counts()
	if len(counts) != 3 {
		t.Fatalf("Expected all three moves tracked, got %d", len(counts))
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != n {
		t.Errorf("Expected counts to sum to %d, got %d", n, total)
	}
}

func TestCheatRate(t *testing.T) {
	s := NewCheat(newRNG())
	const draws = 100000
	counts := map[models.Move]int{}
	for i := 0; i < draws; i++ {
		counts[s.ProposeMove()]++
	}

	rate := float64(s.Peeks()) / draws
	if math.Abs(rate-CheatProbability) > 0.01 {
		t.Errorf("Cheat peeked at rate %.4f, want %.2f +/- 0.01", rate, CheatProbability)
	}

	// The peek guesses at random, so the overall output stays uniform.
	for _, m := range models.Moves {
		frac := float64(counts[m]) / draws
		if math.Abs(frac-1.0/3) > 0.01 {
			t.Errorf("Cheat picked %s with frequency %.3f, want about 0.333", m, frac)
		}
	}
}

func TestCheatIgnoresObservations(t *testing.T) {
	a := NewCheat(rand.New(rand.NewSource(7)))
	b := NewCheat(rand.New(rand.NewSource(7)))
	for i := 0; i < 200; i++ {
		b.ObservePlayerMove(models.Rock)
		if x, y := a.ProposeMove(), b.ProposeMove(); x != y {
			t.Fatalf("Round %d: observation changed the proposal (%s vs %s)", i, x, y)
		}
	}
}

func TestCheatPeekBeatsItsGuess(t *testing.T) {
	const seed = 2024
	s := NewCheat(rand.New(rand.NewSource(seed)))
	replay := rand.New(rand.NewSource(seed))

	peeks := 0
	for i := 0; i < 5000; i++ {
		got := s.ProposeMove()
		var want models.Move
		if replay.Float64() < CheatProbability {
			peeks++
			guess := models.Moves[replay.Intn(3)]
			want = models.WinningMove(guess)
		} else {
			want = models.Moves[replay.Intn(3)]
		}
		if got != want {
			t.Fatalf("Proposal %d: got %s, want %s", i, got, want)
		}
	}
	if peeks == 0 {
		t.Fatal("Expected at least one peeking proposal")
	}
	if peeks != s.Peeks() {
		t.Errorf("Expected %d peeks, strategy counted %d", peeks, s.Peeks())
	}
}
