package coach

import (
	"context"
	"log"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"gymdesk/internal/pkg/clock"
)

// Service turns detected signals into postable content. Each run is
// stateless apart from the per-(client, day, kind) idempotency rows.
type Service struct {
	detector *Detector
	contents ContentRepository
	local    Generator
	remote   Generator // nil when no API key is configured
	clk      clock.Clock
	rng      *rand.Rand
}

func NewService(detector *Detector, contents ContentRepository, local, remote Generator, clk clock.Clock, rng *rand.Rand) *Service {
	return &Service{
		detector: detector,
		contents: contents,
		local:    local,
		remote:   remote,
		clk:      clk,
		rng:      rng,
	}
}

func (s *Service) Detector() *Detector { return s.detector }

// GenerateProblems drafts one post per flagged client. A failure for one
// client is logged and skipped; the rest of the batch continues.
func (s *Service) GenerateProblems(ctx context.Context, gymID int64) ([]*GeneratedContent, error) {
	reports, err := s.detector.DetectProblems(ctx, gymID)
	if err != nil {
		return nil, err
	}

	out := make([]*GeneratedContent, 0, len(reports))
	for _, r := range reports {
		req := PostRequest{
			ClientName:  r.ClientName,
			Kind:        KindProblem,
			Problem:     r.Category,
			Personality: pickPersonality(KindProblem, r.Category, s.rng),
			Number:      r.DaysSinceLastVisit,
		}
		content, err := s.generateOne(ctx, gymID, r.ClientID, string(r.Category), req)
		if err != nil {
			log.Printf("coach: generate problem content failed client_id=%d: %v", r.ClientID, err)
			continue
		}
		out = append(out, content)
	}
	return out, nil
}

// GenerateAchievements drafts one congratulation post per flagged client.
func (s *Service) GenerateAchievements(ctx context.Context, gymID int64) ([]*GeneratedContent, error) {
	achievements, err := s.detector.DetectAchievements(ctx, gymID)
	if err != nil {
		return nil, err
	}

	out := make([]*GeneratedContent, 0, len(achievements))
	for _, a := range achievements {
		req := PostRequest{
			ClientName:  a.ClientName,
			Kind:        KindAchievement,
			Achievement: a.Category,
			Personality: pickPersonality(KindAchievement, "", s.rng),
			Number:      achievementNumber(a),
		}
		content, err := s.generateOne(ctx, gymID, a.ClientID, string(a.Category), req)
		if err != nil {
			log.Printf("coach: generate achievement content failed client_id=%d: %v", a.ClientID, err)
			continue
		}
		out = append(out, content)
	}
	return out, nil
}

// ListContent returns the content saved for one civil date.
func (s *Service) ListContent(ctx context.Context, gymID int64, date string) ([]*GeneratedContent, error) {
	if date == "" {
		date = clock.Today(s.clk).Format("2006-01-02")
	}
	return s.contents.ListByGymDate(ctx, gymID, date)
}

// generateOne builds and persists a single post, honoring the once-per-day
// rule: an existing row for (client, today, kind) is returned as is.
func (s *Service) generateOne(ctx context.Context, gymID, clientID int64, category string, req PostRequest) (*GeneratedContent, error) {
	today := clock.Today(s.clk).Format("2006-01-02")

	existing, err := s.contents.FindByClientDateKind(ctx, clientID, today, req.Kind)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	draft, remoteUsed := s.draft(ctx, req)
	imgPrompt := imagePrompt(req.Personality, req.Kind)

	imageURL := ""
	if remoteUsed {
		url, err := s.remote.GenerateImage(ctx, imgPrompt)
		if err != nil {
			// text already regenerated remotely; the post just ships without
			// an illustration
			log.Printf("coach: image generation failed client_id=%d: %v", clientID, err)
		} else {
			imageURL = url
		}
	}

	content := &GeneratedContent{
		ID:          uuid.New().String(),
		GymID:       gymID,
		ClientID:    clientID,
		Date:        today,
		Kind:        req.Kind,
		Category:    category,
		Personality: string(req.Personality),
		Title:       draft.Title,
		Body:        draft.Body,
		Hashtags:    strings.Join(draft.Hashtags, " "),
		ImagePrompt: imgPrompt,
		ImageURL:    imageURL,
		Remote:      remoteUsed,
	}

	if err := s.contents.Create(ctx, content); err != nil {
		if err == ErrContentExists {
			// concurrent run won the insert; serve its row
			return s.contents.FindByClientDateKind(ctx, clientID, today, req.Kind)
		}
		return nil, err
	}
	return content, nil
}

// draft asks the remote generator when configured and falls back to the
// local templates on any failure. The fallback is silent by design: an AI
// outage must never block the front desk.
func (s *Service) draft(ctx context.Context, req PostRequest) (*PostDraft, bool) {
	if s.remote != nil {
		draft, err := s.remote.GeneratePost(ctx, req)
		if err == nil {
			return draft, true
		}
		log.Printf("coach: remote generation failed, using local template: %v", err)
	}
	draft, _ := s.local.GeneratePost(ctx, req)
	return draft, false
}

// achievementNumber picks the figure the post should quote.
func achievementNumber(a Achievement) int {
	switch a.Category {
	case AchievementConstancy:
		return a.ConsecutiveDays
	case AchievementStreak:
		return a.WeekCount
	case AchievementComeback, AchievementNewcomer:
		return a.MonthCount
	case AchievementMilestone:
		return a.LifetimeTotal
	}
	return 0
}
