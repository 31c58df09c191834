package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"giftmuse/internal/models/request_models"
	"giftmuse/pkg/analytics"
	"giftmuse/pkg/utils"
)

func TestSubscribeSendsTaggedSignup(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		gotBody map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	svc := NewSubscriberService("secret-key", "12345", server.URL, analytics.NewRecorder(), zap.NewNop())

	err := svc.Subscribe(context.Background(), request_models.SubscribeRequest{
		Email:       "love@example.com",
		Recipient:   "girlfriend",
		Budget:      "25to50",
		Personality: "romantic",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v4/forms/12345/subscribers", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "love@example.com", gotBody["email_address"])
	assert.ElementsMatch(t, []any{
		"valentine-quiz", "recipient-girlfriend", "budget-25to50", "personality-romantic",
	}, gotBody["tags"])
}

func TestSubscribeOmitsEmptyContextTags(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewSubscriberService("secret-key", "12345", server.URL, analytics.NewRecorder(), zap.NewNop())

	err := svc.Subscribe(context.Background(), request_models.SubscribeRequest{Email: "a@b.co"})
	require.NoError(t, err)
	assert.Equal(t, []any{"valentine-quiz"}, gotBody["tags"])
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	svc := NewSubscriberService("key", "form", "http://unused", analytics.NewRecorder(), zap.NewNop())

	err := svc.Subscribe(context.Background(), request_models.SubscribeRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, utils.ErrInvalidEmail)
}

func TestSubscribeWithoutCredentials(t *testing.T) {
	svc := NewSubscriberService("", "", "http://unused", analytics.NewRecorder(), zap.NewNop())

	err := svc.Subscribe(context.Background(), request_models.SubscribeRequest{Email: "a@b.co"})
	assert.ErrorIs(t, err, utils.ErrNotConfigured)
}

func TestSubscribeProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"already subscribed"}`, http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	svc := NewSubscriberService("key", "form", server.URL, analytics.NewRecorder(), zap.NewNop())

	err := svc.Subscribe(context.Background(), request_models.SubscribeRequest{Email: "a@b.co"})
	assert.ErrorIs(t, err, utils.ErrSubscribeUpstream)
}

func TestSubscribeProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	svc := NewSubscriberService("key", "form", server.URL, analytics.NewRecorder(), zap.NewNop())

	err := svc.Subscribe(context.Background(), request_models.SubscribeRequest{Email: "a@b.co"})
	assert.ErrorIs(t, err, utils.ErrSubscribeUpstream)
}
