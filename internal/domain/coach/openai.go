package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator regenerates posts through a chat-completion endpoint and
// illustrates them through an image endpoint. Any failure here is the
// caller's cue to fall back to the local templates.
type OpenAIGenerator struct {
	api        *openai.Client
	textModel  string
	imageModel string
}

func NewOpenAIGenerator(apiKey, textModel, imageModel string) *OpenAIGenerator {
	return &OpenAIGenerator{
		api:        openai.NewClient(apiKey),
		textModel:  textModel,
		imageModel: imageModel,
	}
}

const systemPrompt = `Eres el community manager de un gimnasio. Escribes posts breves ` +
	`para redes sociales en español rioplatense. Respondes SOLO con un JSON: ` +
	`{"title": "...", "body": "...", "hashtags": ["#...", "#..."]}. ` +
	`El body tiene como máximo 280 caracteres.`

func (g *OpenAIGenerator) GeneratePost(ctx context.Context, req PostRequest) (*PostDraft, error) {
	resp, err := g.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.textModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(req)},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	var draft PostDraft
	raw := stripCodeFence(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("unparseable completion: %w", err)
	}
	if draft.Title == "" || draft.Body == "" {
		return nil, fmt.Errorf("incomplete completion")
	}
	return &draft, nil
}

func (g *OpenAIGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := g.api.CreateImage(ctx, openai.ImageRequest{
		Model:  g.imageModel,
		Prompt: prompt,
		N:      1,
		Size:   openai.CreateImageSize1024x1024,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("empty image response")
	}
	return resp.Data[0].URL, nil
}

func userPrompt(req PostRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tono: %s.\n", req.Personality)
	if req.Kind == KindAchievement {
		fmt.Fprintf(&sb, "Post de felicitación (%s) para %s.\n", req.Achievement, req.ClientName)
	} else {
		fmt.Fprintf(&sb, "Post para motivar el regreso (%s) de %s.\n", req.Problem, req.ClientName)
	}
	fmt.Fprintf(&sb, "Dato numérico a mencionar: %d.\n", req.Number)
	sb.WriteString("Incluye 4 o 5 hashtags en español.")
	return sb.String()
}

// stripCodeFence tolerates models that wrap the JSON in ```json fences.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
