package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/rps-game/internal/config"
	"github.com/tatianab/rps-game/internal/engine"
	"github.com/tatianab/rps-game/internal/game"
	"github.com/tatianab/rps-game/internal/models"
	"github.com/tatianab/rps-game/internal/strategy"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"
)

const (
	scriptedRounds = 1000
	llmRounds      = 10
)

// player picks the human side's move given what happened so far.
type player func(ctx context.Context, history []models.Round) models.Move

type report struct {
	Player  string           `yaml:"player"`
	Seed    int64            `yaml:"seed"`
	Rounds  int              `yaml:"rounds_per_strategy"`
	Results map[string]stats `yaml:"results"`
}

type stats struct {
	Statistics    models.Statistics `yaml:",inline"`
	PlayerWinRate string            `yaml:"player_win_rate"`
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	name, play, rounds := "scripted (biased toward Rock)", scriptedPlayer(rng), scriptedRounds
	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			log.Fatalf("Failed to create player client: %v", err)
		}
		defer client.Close()
		name, play, rounds = "gemini", llmPlayer(client.GenerativeModel(cfg.GeminiModel)), llmRounds
	}

	rep := report{Player: name, Seed: seed, Rounds: rounds, Results: map[string]stats{}}
	for _, strat := range strategy.Names() {
		session := game.NewSession(rand.New(rand.NewSource(seed)))
		session.SetStrategy(strat)
		eng := engine.New(session, nil)

		var history []models.Round
		for i := 0; i < rounds; i++ {
			turn := eng.PlayRound(ctx, play(ctx, history))
			history = append(history, turn.Round)
		}

		st := eng.Statistics()
		rep.Results[strat] = stats{
			Statistics:    st,
			PlayerWinRate: fmt.Sprintf("%.1f%%", 100*float64(st.PlayerWins)/float64(st.Rounds())),
		}
		log.Printf("%s: %+v", strat, st)
	}

	out, err := yaml.Marshal(rep)
	if err != nil {
		log.Fatalf("Failed to marshal report: %v", err)
	}
	os.Stdout.Write(out)
}

// scriptedPlayer throws Rock half the time and splits the rest evenly.
func scriptedPlayer(rng *rand.Rand) player {
	return func(_ context.Context, _ []models.Round) models.Move {
		if rng.Float64() < 0.5 {
			return models.Rock
		}
		return models.Moves[1+rng.Intn(2)]
	}
}

func llmPlayer(model *genai.GenerativeModel) player {
	return func(ctx context.Context, history []models.Round) models.Move {
		historyText := ""
		for _, r := range history {
			historyText += r.String() + "\n"
		}

		prompt := fmt.Sprintf(`You are playing Rock-Paper-Scissors against a computer.

Rounds so far:
%s
What do you throw next? Answer with exactly one word: Rock, Paper or Scissors.`, historyText)

		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			log.Printf("Warning: player model failed: %v", err)
			return models.Rock
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return models.Rock
		}
		move, err := models.ParseMove(strings.Trim(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), " \n.!"))
		if err != nil {
			log.Printf("Warning: %v", err)
			return models.Rock
		}
		return move
	}
}
