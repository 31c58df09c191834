package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"giftmuse/internal/models/request_models"
	"giftmuse/pkg/analytics"
	"giftmuse/pkg/utils"
)

type SubscriberServiceInterface interface {
	Subscribe(ctx context.Context, req request_models.SubscribeRequest) error
}

// SubscriberService relays signups to the Kit (ConvertKit) v4 API, tagging
// each subscriber with their quiz context for list segmentation.
type SubscriberService struct {
	apiKey     string
	formID     string
	baseURL    string
	httpClient *http.Client
	metrics    *analytics.Recorder
	logger     *zap.Logger
}

func NewSubscriberService(apiKey, formID, baseURL string, metrics *analytics.Recorder, logger *zap.Logger) SubscriberServiceInterface {
	return &SubscriberService{
		apiKey:  apiKey,
		formID:  formID,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		metrics: metrics,
		logger:  logger,
	}
}

func (s *SubscriberService) Subscribe(ctx context.Context, req request_models.SubscribeRequest) error {
	if !strings.Contains(req.Email, "@") {
		return utils.ErrInvalidEmail
	}
	if s.apiKey == "" || s.formID == "" {
		s.logger.Error("mail list provider not configured")
		return utils.ErrNotConfigured
	}

	tags := []string{"valentine-quiz"}
	if req.Recipient != "" {
		tags = append(tags, "recipient-"+req.Recipient)
	}
	if req.Budget != "" {
		tags = append(tags, "budget-"+req.Budget)
	}
	if req.Personality != "" {
		tags = append(tags, "personality-"+req.Personality)
	}

	payload, err := json.Marshal(map[string]any{
		"email_address": req.Email,
		"tags":          tags,
	})
	if err != nil {
		return fmt.Errorf("encode subscribe payload: %w", err)
	}

	url := fmt.Sprintf("%s/v4/forms/%s/subscribers", s.baseURL, s.formID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build subscribe request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		s.logger.Error("mail list provider unreachable", zap.Error(err))
		return utils.ErrSubscribeUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		s.logger.Error("mail list provider rejected signup",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return utils.ErrSubscribeUpstream
	}

	s.metrics.Subscribed()
	return nil
}
