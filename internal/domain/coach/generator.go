package coach

import (
	"context"
	"strconv"
	"strings"
)

// PostRequest is the structured prompt handed to a Generator.
type PostRequest struct {
	ClientName  string
	Kind        Kind
	Problem     ProblemCategory
	Achievement AchievementCategory
	Personality Personality
	// Number is the signal behind the post: days absent, streak length,
	// weekly/monthly visits or the milestone total, depending on category.
	Number int
}

// PostDraft is a finished post body.
type PostDraft struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Hashtags []string `json:"hashtags"`
}

// Generator turns a structured prompt into a post. Two implementations
// exist: the local deterministic templates and the remote AI endpoint. The
// local one never fails; remote failures fall through to it silently.
type Generator interface {
	GeneratePost(ctx context.Context, req PostRequest) (*PostDraft, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// LocalGenerator fills the built-in templates. It is the unconditional
// fallback when no API key is configured or the remote call fails.
type LocalGenerator struct{}

func NewLocalGenerator() *LocalGenerator { return &LocalGenerator{} }

func (g *LocalGenerator) GeneratePost(_ context.Context, req PostRequest) (*PostDraft, error) {
	var tpl template
	if req.Kind == KindAchievement {
		tpl = achievementTemplates[req.Achievement]
	} else {
		tpl = problemTemplates[req.Problem][req.Personality]
	}

	return &PostDraft{
		Title:    fillTemplate(tpl.title, req),
		Body:     fillTemplate(tpl.body, req),
		Hashtags: hashtagsFor(req.Kind, req.Problem, req.Achievement),
	}, nil
}

// GenerateImage returns no URL: local content ships without an illustration.
func (g *LocalGenerator) GenerateImage(context.Context, string) (string, error) {
	return "", nil
}

func fillTemplate(s string, req PostRequest) string {
	s = strings.ReplaceAll(s, "{name}", req.ClientName)
	return strings.ReplaceAll(s, "{n}", strconv.Itoa(req.Number))
}
