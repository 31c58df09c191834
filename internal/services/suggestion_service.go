package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"giftmuse/internal/models/response_models"
	"giftmuse/pkg/analytics"
	"giftmuse/pkg/llm"
	"giftmuse/pkg/utils"
)

const suggestionSystemPrompt = `You are a Valentine's Day gift expert helping people in the UK find the perfect gift for their partner.

When given a search query, suggest 5-8 specific, purchasable gift ideas. For each gift:
- Be specific (brand names, product types) not generic
- Consider UK availability
- Mix price ranges unless budget is specified
- Include both physical products and experience vouchers

For priceEstimate, use ONLY one of these exact tiers (no specific amounts):
- "Under £25"
- "£25-50"
- "£50-100"
- "£100+"

IMPORTANT tag rules:
- "experience" = ONLY for experience vouchers/gift cards (spa days, driving experiences, cooking classes you BOOK). NOT for physical products.
- "personalised" = custom/engraved items, made-to-order gifts
- "practical" = useful everyday items
- "romantic" = sentimental, relationship-focused
- "tech" = electronics, gadgets
- "luxury" = high-end, premium items
- "handmade" = artisan, crafted items
- "budget-friendly" = affordable options

Respond in JSON format only, no other text:
{
  "gifts": [
    {
      "name": "Specific product name (can include brand)",
      "searchQuery": "Generic search term WITHOUT brand names (e.g. 'instant film camera' not 'Fujifilm Instax')",
      "description": "One sentence description",
      "priceEstimate": "Under £25" or "£25-50" or "£50-100" or "£100+",
      "whyItWorks": "Why this matches the query",
      "whereToBuy": ["Amazon UK", "John Lewis", etc],
      "tags": ["romantic", "practical", "experience", "luxury", "budget-friendly", "personalised", "tech", "handmade"]
    }
  ]
}`

// accentRules mirror the storefront card styling: the first tag of a
// suggestion picks its accent colour.
var accentRules = []utils.MatchRule[string]{
	{Values: []string{"romantic"}, Result: "burgundy"},
	{Values: []string{"practical"}, Result: "gold"},
	{Values: []string{"experience"}, Result: "burgundy-light"},
	{Values: []string{"luxury"}, Result: "gold-muted"},
	{Values: []string{"budget-friendly"}, Result: "charcoal"},
}

const defaultAccent = "burgundy"

type SuggestionServiceInterface interface {
	Search(ctx context.Context, query string) ([]response_models.GiftSuggestion, error)
}

type SuggestionService struct {
	client  llm.Client
	metrics *analytics.Recorder
	logger  *zap.Logger
}

// NewSuggestionService accepts a nil client: the service then degrades to
// empty results instead of failing, keeping the rest of the site usable.
func NewSuggestionService(client llm.Client, metrics *analytics.Recorder, logger *zap.Logger) SuggestionServiceInterface {
	return &SuggestionService{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *SuggestionService) Search(ctx context.Context, query string) ([]response_models.GiftSuggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.ErrEmptyQuery
	}

	s.metrics.Search()

	if s.client == nil {
		s.logger.Warn("suggestion provider not configured, returning empty results")
		return []response_models.GiftSuggestion{}, nil
	}

	content, err := s.client.Complete(ctx, suggestionSystemPrompt, "Find Valentine's gift ideas for: "+query)
	if err != nil {
		s.logger.Error("suggestion provider call failed", zap.Error(err))
		return nil, utils.ErrSuggestionUpstream
	}

	return s.parseSuggestions(content), nil
}

type providerGift struct {
	Name          string   `json:"name"`
	SearchQuery   string   `json:"searchQuery"`
	Description   string   `json:"description"`
	PriceEstimate string   `json:"priceEstimate"`
	WhyItWorks    string   `json:"whyItWorks"`
	WhereToBuy    []string `json:"whereToBuy"`
	Tags          []string `json:"tags"`
}

// parseSuggestions never fails: a reply we cannot make sense of yields an
// empty list, matching the fail-soft policy for the whole suggestion path.
func (s *SuggestionService) parseSuggestions(content string) []response_models.GiftSuggestion {
	raw, ok := extractJSONObject(content)
	if !ok {
		s.logger.Warn("no JSON object found in provider reply", zap.Int("reply_len", len(content)))
		return []response_models.GiftSuggestion{}
	}

	var parsed struct {
		Gifts []providerGift `json:"gifts"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logger.Warn("failed to decode provider reply", zap.Error(err))
		return []response_models.GiftSuggestion{}
	}

	suggestions := make([]response_models.GiftSuggestion, 0, len(parsed.Gifts))
	for _, g := range parsed.Gifts {
		accent := defaultAccent
		if len(g.Tags) > 0 {
			accent = utils.FirstMatch([]string{g.Tags[0]}, accentRules, defaultAccent)
		}
		suggestions = append(suggestions, response_models.GiftSuggestion{
			ID:            "ai-" + uuid.NewString(),
			Name:          g.Name,
			SearchQuery:   g.SearchQuery,
			Description:   g.Description,
			PriceEstimate: g.PriceEstimate,
			WhyItWorks:    g.WhyItWorks,
			WhereToBuy:    g.WhereToBuy,
			Tags:          g.Tags,
			Accent:        accent,
		})
	}
	return suggestions
}

// extractJSONObject returns the first balanced top-level JSON object in s.
// Providers often wrap the JSON in prose or markdown fences, so a plain
// unmarshal of the whole reply is not enough.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
