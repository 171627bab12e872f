package engine

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

//go:embed prompts/commentary.txt
var commentaryPrompt string

var commentaryTmpl = template.Must(template.New("commentary").Parse(commentaryPrompt))

// GeminiCommentator asks a Gemini model for one line per round.
type GeminiCommentator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiCommentator(ctx context.Context, apiKey, modelName string) (*GeminiCommentator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.9)
	return &GeminiCommentator{client: client, model: model}, nil
}

func (g *GeminiCommentator) Close() {
	g.client.Close()
}

func (g *GeminiCommentator) Comment(ctx context.Context, rc RoundContext) (string, error) {
	prompt, err := renderCommentaryPrompt(rc)
	if err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return strings.TrimSpace(string(text)), nil
}

func renderCommentaryPrompt(rc RoundContext) (string, error) {
	var buf bytes.Buffer
	if err := commentaryTmpl.Execute(&buf, rc); err != nil {
		return "", fmt.Errorf("render commentary prompt: %w", err)
	}
	return buf.String(), nil
}
