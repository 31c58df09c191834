package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"giftmuse/pkg/analytics"
	"giftmuse/pkg/llm"
	"giftmuse/pkg/utils"
)

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) Complete(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

const providerReply = `Here are some ideas you might like:
{
  "gifts": [
    {
      "name": "Fujifilm Instax Mini 12",
      "searchQuery": "instant film camera",
      "description": "A pastel instant camera for capturing date nights.",
      "priceEstimate": "£50-100",
      "whyItWorks": "Turns moments together into keepsakes.",
      "whereToBuy": ["Amazon UK", "John Lewis"],
      "tags": ["romantic", "tech"]
    },
    {
      "name": "Spa Day Voucher",
      "searchQuery": "spa day for two voucher",
      "description": "A relaxing day out for both of you.",
      "priceEstimate": "£100+",
      "whyItWorks": "An experience rather than more stuff.",
      "whereToBuy": ["Virgin Experience Days"],
      "tags": ["experience", "luxury"]
    }
  ]
}
Hope that helps!`

func newSuggestionService(client llm.Client) SuggestionServiceInterface {
	return NewSuggestionService(client, analytics.NewRecorder(), zap.NewNop())
}

func TestSearchParsesProviderReply(t *testing.T) {
	svc := newSuggestionService(&stubClient{reply: providerReply})

	suggestions, err := svc.Search(context.Background(), "gifts for my girlfriend")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	first := suggestions[0]
	assert.Equal(t, "Fujifilm Instax Mini 12", first.Name)
	assert.Equal(t, "instant film camera", first.SearchQuery)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "burgundy", first.Accent)

	assert.Equal(t, "burgundy-light", suggestions[1].Accent)
	assert.NotEqual(t, first.ID, suggestions[1].ID)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newSuggestionService(&stubClient{reply: providerReply})

	_, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, utils.ErrEmptyQuery)
}

func TestSearchWithoutProviderFailsSoft(t *testing.T) {
	svc := newSuggestionService(nil)

	suggestions, err := svc.Search(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSearchProviderErrorIsUpstreamError(t *testing.T) {
	svc := newSuggestionService(&stubClient{err: errors.New("connection refused")})

	_, err := svc.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, utils.ErrSuggestionUpstream)
}

func TestSearchUnparseableReplyYieldsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"no JSON at all", "Sorry, I can't help with that."},
		{"unbalanced braces", `{"gifts": [`},
		{"invalid JSON inside braces", `{gifts: oops}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSuggestionService(&stubClient{reply: tt.reply})
			suggestions, err := svc.Search(context.Background(), "anything")
			require.NoError(t, err)
			assert.Empty(t, suggestions)
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("skips braces inside strings", func(t *testing.T) {
		raw, ok := extractJSONObject(`text {"a": "close } brace", "b": 1} trailing`)
		require.True(t, ok)
		assert.Equal(t, `{"a": "close } brace", "b": 1}`, raw)
	})

	t.Run("handles escaped quotes", func(t *testing.T) {
		raw, ok := extractJSONObject(`{"a": "say \"hi\" {now}"}`)
		require.True(t, ok)
		assert.Equal(t, `{"a": "say \"hi\" {now}"}`, raw)
	})

	t.Run("nested objects", func(t *testing.T) {
		raw, ok := extractJSONObject(`prefix {"a": {"b": {}}} suffix {}`)
		require.True(t, ok)
		assert.Equal(t, `{"a": {"b": {}}}`, raw)
	})
}
