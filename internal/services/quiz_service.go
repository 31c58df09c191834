package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"giftmuse/internal/models/response_models"
	"giftmuse/pkg/analytics"
	"giftmuse/pkg/memcache"
	"giftmuse/pkg/utils"
)

const (
	quizStateLoading = "loading"
	quizStateResults = "results"

	stepInterests = "interests"

	quizSessionTTL = 30 * time.Minute
)

type quizStep struct {
	key      string
	title    string
	subtitle string
	multiple bool
	options  []response_models.QuizOption
}

func quizSteps(includeAge bool) []quizStep {
	steps := []quizStep{
		{
			key:      "recipient",
			title:    "Who are you shopping for?",
			subtitle: "Select who'll receive this gift",
			options: []response_models.QuizOption{
				{Value: "boyfriend", Label: "Boyfriend", Emoji: "👨"},
				{Value: "girlfriend", Label: "Girlfriend", Emoji: "👩"},
				{Value: "husband", Label: "Husband", Emoji: "💑"},
				{Value: "wife", Label: "Wife", Emoji: "💑"},
				{Value: "partner", Label: "Partner", Emoji: "💕"},
			},
		},
		{
			key:      "relationship",
			title:    "How long have you been together?",
			subtitle: "This helps us suggest appropriate gifts",
			options: []response_models.QuizOption{
				{Value: "new", Label: "Less than 6 months", Emoji: "🌱"},
				{Value: "established", Label: "6 months - 2 years", Emoji: "🌿"},
				{Value: "longterm", Label: "2+ years", Emoji: "🌳"},
			},
		},
	}

	if includeAge {
		steps = append(steps, quizStep{
			key:      "age",
			title:    "How old are they?",
			subtitle: "A rough bracket is enough",
			options: []response_models.QuizOption{
				{Value: "under25", Label: "Under 25", Emoji: "🎓"},
				{Value: "25to34", Label: "25 - 34", Emoji: "🌟"},
				{Value: "35to44", Label: "35 - 44", Emoji: "🏡"},
				{Value: "45plus", Label: "45+", Emoji: "🍷"},
			},
		})
	}

	steps = append(steps,
		quizStep{
			key:      stepInterests,
			title:    "What are they into?",
			subtitle: "Select all that apply",
			multiple: true,
			options: []response_models.QuizOption{
				{Value: "cooking", Label: "Cooking & Food", Emoji: "🍳"},
				{Value: "fitness", Label: "Fitness & Sports", Emoji: "💪"},
				{Value: "tech", Label: "Tech & Gaming", Emoji: "🎮"},
				{Value: "reading", Label: "Books & Reading", Emoji: "📚"},
				{Value: "music", Label: "Music", Emoji: "🎵"},
				{Value: "travel", Label: "Travel & Adventures", Emoji: "✈️"},
				{Value: "fashion", Label: "Fashion & Beauty", Emoji: "👗"},
				{Value: "art", Label: "Art & Creative", Emoji: "🎨"},
				{Value: "home", Label: "Home & Cosy", Emoji: "🏠"},
				{Value: "outdoors", Label: "Outdoors & Nature", Emoji: "🌲"},
			},
		},
		quizStep{
			key:      "budget",
			title:    "What's your budget?",
			subtitle: "We'll find options in your range",
			options: []response_models.QuizOption{
				{Value: "under25", Label: "Under £25", Emoji: "💰"},
				{Value: "25to50", Label: "£25 - £50", Emoji: "💵"},
				{Value: "50to100", Label: "£50 - £100", Emoji: "💎"},
				{Value: "over100", Label: "£100+", Emoji: "✨"},
				{Value: "any", Label: "No budget limit", Emoji: "🎁"},
			},
		},
		quizStep{
			key:      "personality",
			title:    "What vibe fits them best?",
			subtitle: "Pick the one that feels most right",
			options: []response_models.QuizOption{
				{Value: "romantic", Label: "Romantic & Sentimental", Emoji: "💕"},
				{Value: "practical", Label: "Practical & Useful", Emoji: "🎁"},
				{Value: "adventurous", Label: "Adventurous & Experiential", Emoji: "🎭"},
				{Value: "funny", Label: "Fun & Playful", Emoji: "😄"},
				{Value: "luxury", Label: "Luxurious & Indulgent", Emoji: "👑"},
			},
		},
	)

	return steps
}

type quizSession struct {
	mu          sync.Mutex
	id          string
	stepIndex   int
	state       string
	answers     map[string]string
	interests   []string
	suggestions []response_models.GiftSuggestion
	// generation invalidates in-flight suggestion fetches after a restart:
	// a fetch only applies its result if the generation it captured still
	// matches.
	generation int
}

type QuizServiceInterface interface {
	StartQuiz() response_models.QuizStateResponse
	GetQuiz(sessionID string) (response_models.QuizStateResponse, error)
	SelectOption(ctx context.Context, sessionID, value string) (response_models.QuizStateResponse, error)
	ContinueQuiz(ctx context.Context, sessionID string) (response_models.QuizStateResponse, error)
	RestartQuiz(sessionID string) (response_models.QuizStateResponse, error)
}

type QuizService struct {
	steps     []quizStep
	sessions  *memcache.SessionStore[*quizSession]
	suggester SuggestionServiceInterface
	metrics   *analytics.Recorder
	logger    *zap.Logger
}

func NewQuizService(includeAgeStep bool, suggester SuggestionServiceInterface, metrics *analytics.Recorder, logger *zap.Logger) QuizServiceInterface {
	return &QuizService{
		steps:     quizSteps(includeAgeStep),
		sessions:  memcache.NewSessionStore[*quizSession](quizSessionTTL),
		suggester: suggester,
		metrics:   metrics,
		logger:    logger,
	}
}

func (q *QuizService) StartQuiz() response_models.QuizStateResponse {
	sess := &quizSession{
		id:        uuid.NewString(),
		state:     q.steps[0].key,
		answers:   make(map[string]string),
		interests: []string{},
	}
	q.sessions.Put(sess.id, sess)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return q.buildState(sess)
}

func (q *QuizService) GetQuiz(sessionID string) (response_models.QuizStateResponse, error) {
	sess, ok := q.sessions.Get(sessionID)
	if !ok {
		return response_models.QuizStateResponse{}, utils.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return q.buildState(sess), nil
}

// SelectOption records an answer. On single-select steps it advances the
// quiz; on the interests step it toggles the value in place.
func (q *QuizService) SelectOption(ctx context.Context, sessionID, value string) (response_models.QuizStateResponse, error) {
	sess, ok := q.sessions.Get(sessionID)
	if !ok {
		return response_models.QuizStateResponse{}, utils.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state == quizStateLoading || sess.state == quizStateResults {
		return response_models.QuizStateResponse{}, utils.ErrQuizNotInProgress
	}

	step := q.steps[sess.stepIndex]
	if !hasOption(step.options, value) {
		return response_models.QuizStateResponse{}, utils.ErrUnknownOption
	}

	if step.multiple {
		sess.interests = toggle(sess.interests, value)
		return q.buildState(sess), nil
	}

	sess.answers[step.key] = value
	q.advance(sess)
	return q.buildState(sess), nil
}

// ContinueQuiz advances past the interests step once at least one interest
// is selected. It is only valid on a multi-select step.
func (q *QuizService) ContinueQuiz(ctx context.Context, sessionID string) (response_models.QuizStateResponse, error) {
	sess, ok := q.sessions.Get(sessionID)
	if !ok {
		return response_models.QuizStateResponse{}, utils.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state == quizStateLoading || sess.state == quizStateResults {
		return response_models.QuizStateResponse{}, utils.ErrQuizNotInProgress
	}

	if !q.steps[sess.stepIndex].multiple {
		return response_models.QuizStateResponse{}, utils.ErrStepNotMultiSelect
	}
	if len(sess.interests) == 0 {
		return response_models.QuizStateResponse{}, utils.ErrNoInterestsSelected
	}

	q.advance(sess)
	return q.buildState(sess), nil
}

func (q *QuizService) RestartQuiz(sessionID string) (response_models.QuizStateResponse, error) {
	sess, ok := q.sessions.Get(sessionID)
	if !ok {
		return response_models.QuizStateResponse{}, utils.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.generation++
	sess.stepIndex = 0
	sess.state = q.steps[0].key
	sess.answers = make(map[string]string)
	sess.interests = []string{}
	sess.suggestions = nil

	return q.buildState(sess), nil
}

// advance moves to the next step, or into loading after the final one.
// Caller holds sess.mu.
func (q *QuizService) advance(sess *quizSession) {
	if sess.stepIndex+1 < len(q.steps) {
		sess.stepIndex++
		sess.state = q.steps[sess.stepIndex].key
		return
	}

	sess.state = quizStateLoading
	query := CompileQuery(q.collectAnswers(sess))
	go q.fetchSuggestions(sess, sess.generation, query)
}

func (q *QuizService) collectAnswers(sess *quizSession) QuizAnswers {
	return QuizAnswers{
		Recipient:    sess.answers["recipient"],
		Relationship: sess.answers["relationship"],
		AgeBand:      sess.answers["age"],
		Interests:    sess.interests,
		Budget:       sess.answers["budget"],
		Personality:  sess.answers["personality"],
	}
}

// fetchSuggestions runs outside the request that triggered it, so it uses a
// fresh context with its own deadline. A fetch error still lands the session
// in results with an empty list.
func (q *QuizService) fetchSuggestions(sess *quizSession, generation int, query string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	suggestions, err := q.suggester.Search(ctx, query)
	if err != nil {
		q.logger.Warn("quiz suggestion fetch failed", zap.String("session_id", sess.id), zap.Error(err))
		suggestions = []response_models.GiftSuggestion{}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.generation != generation {
		// Restarted while we were waiting; the result belongs to a quiz
		// run that no longer exists.
		return
	}

	sess.suggestions = suggestions
	sess.state = quizStateResults
	q.metrics.QuizCompleted()
}

// buildState renders the session for the API. Caller holds sess.mu.
func (q *QuizService) buildState(sess *quizSession) response_models.QuizStateResponse {
	resp := response_models.QuizStateResponse{
		SessionID:  sess.id,
		State:      sess.state,
		StepIndex:  sess.stepIndex,
		TotalSteps: len(q.steps),
		Answers:    copyAnswers(sess.answers),
		Interests:  append([]string{}, sess.interests...),
	}

	switch sess.state {
	case quizStateLoading:
	case quizStateResults:
		resp.Suggestions = sess.suggestions
	default:
		step := q.steps[sess.stepIndex]
		resp.Question = &response_models.QuizQuestion{
			ID:       step.key,
			Title:    step.title,
			Subtitle: step.subtitle,
			Multiple: step.multiple,
			Options:  step.options,
		}
	}

	return resp
}

func hasOption(options []response_models.QuizOption, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func toggle(values []string, value string) []string {
	for i, v := range values {
		if v == value {
			return append(values[:i], values[i+1:]...)
		}
	}
	return append(values, value)
}

func copyAnswers(answers map[string]string) map[string]string {
	out := make(map[string]string, len(answers))
	for k, v := range answers {
		out[k] = v
	}
	return out
}
