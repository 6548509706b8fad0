// Package recommendation builds career suggestions from the generation
// provider and keeps a per-account history of results.
package recommendation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"career-assistant/internal/domain/user"
)

var (
	ErrUpstreamFormat      = errors.New("unparseable generation response")
	ErrEmptyResponse       = fmt.Errorf("%w: empty response", ErrUpstreamFormat)
	ErrUpstreamUnavailable = errors.New("generation provider unavailable")
	ErrInternal            = errors.New("internal error")
)

// Generator is the port to the text-generation provider: one synchronous
// call, no streaming, no retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, email, skills, interests string) ([]user.Recommendation, error)
	History(ctx context.Context, email string) ([]user.HistoryEntry, error)
}

type Service struct {
	users  user.Repository
	gen    Generator
	logger *zap.Logger
	now    func() time.Time
}

func NewService(users user.Repository, gen Generator, logger *zap.Logger) *Service {
	return &Service{users: users, gen: gen, logger: logger, now: time.Now}
}

// Recommend asks the model for exactly three careers and returns the parsed
// array. When the email belongs to a known account the result is appended to
// that account's history; an unknown email still gets the result back, the
// missed append is only logged. Callers cannot tell the two cases apart.
func (s *Service) Recommend(ctx context.Context, email, skills, interests string) ([]user.Recommendation, error) {
	text, err := s.gen.Generate(ctx, buildPrompt(skills, interests))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	cleaned := stripCodeFences(text)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var recs []user.Recommendation
	if err := json.Unmarshal([]byte(cleaned), &recs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFormat, err)
	}

	entry := user.HistoryEntry{RecommendedAt: s.now().UTC(), Result: recs}
	if err := s.users.AppendHistory(ctx, email, entry); err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			s.logger.Error("history append failed", zap.String("email", email), zap.Error(err))
		}
	}

	return recs, nil
}

// History returns stored entries in insertion order. An unknown account and
// an account with no history both come back as an empty slice.
func (s *Service) History(ctx context.Context, email string) ([]user.HistoryEntry, error) {
	entries, err := s.users.GetHistory(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return []user.HistoryEntry{}, nil
		}
		return nil, ErrInternal
	}
	if entries == nil {
		entries = []user.HistoryEntry{}
	}
	return entries, nil
}

func buildPrompt(skills, interests string) string {
	return fmt.Sprintf(`
I have the following skills: %s.
My interests are: %s.
Recommend 3 suitable career paths, each with a short description and a learning path.
Return the result as a valid JSON array in this format:

[
  {
    "career": "Career Name",
    "description": "Short description",
    "learningPath": [
      "Step 1",
      "Step 2",
      "Step 3"
    ]
  }
]
`, skills, interests)
}

// stripCodeFences removes the markdown fences models tend to wrap JSON in.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
