package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"giftmuse/internal/models/response_models"
	"giftmuse/pkg/analytics"
	"giftmuse/pkg/utils"
)

type stubSuggester struct {
	suggestions []response_models.GiftSuggestion
	err         error
	// release, when set, blocks Search until closed. Lets tests hold a
	// fetch in flight while they restart the quiz.
	release chan struct{}
}

func (s *stubSuggester) Search(ctx context.Context, query string) ([]response_models.GiftSuggestion, error) {
	if s.release != nil {
		<-s.release
	}
	return s.suggestions, s.err
}

func newQuizService(suggester SuggestionServiceInterface) QuizServiceInterface {
	return NewQuizService(false, suggester, analytics.NewRecorder(), zap.NewNop())
}

// completeQuiz drives a session through every step to the loading state.
func completeQuiz(t *testing.T, svc QuizServiceInterface, sessionID string) {
	t.Helper()
	ctx := context.Background()

	for _, answer := range []string{"girlfriend", "longterm"} {
		_, err := svc.SelectOption(ctx, sessionID, answer)
		require.NoError(t, err)
	}
	_, err := svc.SelectOption(ctx, sessionID, "music")
	require.NoError(t, err)
	_, err = svc.ContinueQuiz(ctx, sessionID)
	require.NoError(t, err)
	_, err = svc.SelectOption(ctx, sessionID, "25to50")
	require.NoError(t, err)
	state, err := svc.SelectOption(ctx, sessionID, "romantic")
	require.NoError(t, err)
	require.Equal(t, "loading", state.State)
}

func TestQuizStartAndStepOrder(t *testing.T) {
	svc := newQuizService(&stubSuggester{})

	state := svc.StartQuiz()
	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, "recipient", state.State)
	assert.Equal(t, 5, state.TotalSteps)
	require.NotNil(t, state.Question)
	assert.Len(t, state.Question.Options, 5)
}

func TestQuizAgeStepIsConfigurable(t *testing.T) {
	svc := NewQuizService(true, &stubSuggester{}, analytics.NewRecorder(), zap.NewNop())

	state := svc.StartQuiz()
	assert.Equal(t, 6, state.TotalSteps)

	ctx := context.Background()
	state, err := svc.SelectOption(ctx, state.SessionID, "wife")
	require.NoError(t, err)
	state, err = svc.SelectOption(ctx, state.SessionID, "established")
	require.NoError(t, err)
	assert.Equal(t, "age", state.State)
}

func TestQuizSingleSelectAdvances(t *testing.T) {
	svc := newQuizService(&stubSuggester{})
	start := svc.StartQuiz()

	state, err := svc.SelectOption(context.Background(), start.SessionID, "boyfriend")
	require.NoError(t, err)
	assert.Equal(t, "relationship", state.State)
	assert.Equal(t, 1, state.StepIndex)
	assert.Equal(t, "boyfriend", state.Answers["recipient"])
}

func TestQuizRejectsUnknownOption(t *testing.T) {
	svc := newQuizService(&stubSuggester{})
	start := svc.StartQuiz()

	_, err := svc.SelectOption(context.Background(), start.SessionID, "colleague")
	assert.ErrorIs(t, err, utils.ErrUnknownOption)
}

func TestQuizUnknownSession(t *testing.T) {
	svc := newQuizService(&stubSuggester{})

	_, err := svc.GetQuiz("nope")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestQuizInterestsToggleAndContinue(t *testing.T) {
	svc := newQuizService(&stubSuggester{})
	ctx := context.Background()
	start := svc.StartQuiz()

	_, err := svc.SelectOption(ctx, start.SessionID, "girlfriend")
	require.NoError(t, err)
	state, err := svc.SelectOption(ctx, start.SessionID, "new")
	require.NoError(t, err)
	require.Equal(t, "interests", state.State)

	// Continue without any selection is refused.
	_, err = svc.ContinueQuiz(ctx, start.SessionID)
	assert.ErrorIs(t, err, utils.ErrNoInterestsSelected)

	// Selecting toggles without advancing.
	state, err = svc.SelectOption(ctx, start.SessionID, "cooking")
	require.NoError(t, err)
	assert.Equal(t, "interests", state.State)
	assert.Equal(t, []string{"cooking"}, state.Interests)

	state, err = svc.SelectOption(ctx, start.SessionID, "tech")
	require.NoError(t, err)
	assert.Equal(t, []string{"cooking", "tech"}, state.Interests)

	// Selecting again removes.
	state, err = svc.SelectOption(ctx, start.SessionID, "cooking")
	require.NoError(t, err)
	assert.Equal(t, []string{"tech"}, state.Interests)

	state, err = svc.ContinueQuiz(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "budget", state.State)
}

func TestQuizContinueOnSingleSelectStep(t *testing.T) {
	svc := newQuizService(&stubSuggester{})
	start := svc.StartQuiz()

	_, err := svc.ContinueQuiz(context.Background(), start.SessionID)
	assert.ErrorIs(t, err, utils.ErrStepNotMultiSelect)
}

func TestQuizCompletionReachesResults(t *testing.T) {
	suggester := &stubSuggester{
		suggestions: []response_models.GiftSuggestion{{ID: "ai-1", Name: "Instant Camera"}},
	}
	svc := newQuizService(suggester)
	start := svc.StartQuiz()

	completeQuiz(t, svc, start.SessionID)

	require.Eventually(t, func() bool {
		state, err := svc.GetQuiz(start.SessionID)
		return err == nil && state.State == "results"
	}, 2*time.Second, 10*time.Millisecond)

	state, err := svc.GetQuiz(start.SessionID)
	require.NoError(t, err)
	require.Len(t, state.Suggestions, 1)
	assert.Equal(t, "Instant Camera", state.Suggestions[0].Name)
}

func TestQuizFetchFailureFailsSoft(t *testing.T) {
	svc := newQuizService(&stubSuggester{err: errors.New("provider down")})
	start := svc.StartQuiz()

	completeQuiz(t, svc, start.SessionID)

	require.Eventually(t, func() bool {
		state, err := svc.GetQuiz(start.SessionID)
		return err == nil && state.State == "results"
	}, 2*time.Second, 10*time.Millisecond)

	state, err := svc.GetQuiz(start.SessionID)
	require.NoError(t, err)
	assert.Empty(t, state.Suggestions)
}

func TestQuizSelectWhileLoading(t *testing.T) {
	suggester := &stubSuggester{release: make(chan struct{})}
	defer close(suggester.release)

	svc := newQuizService(suggester)
	start := svc.StartQuiz()
	completeQuiz(t, svc, start.SessionID)

	_, err := svc.SelectOption(context.Background(), start.SessionID, "wife")
	assert.ErrorIs(t, err, utils.ErrQuizNotInProgress)
}

func TestQuizRestartDropsStaleFetch(t *testing.T) {
	suggester := &stubSuggester{
		suggestions: []response_models.GiftSuggestion{{ID: "ai-stale", Name: "Stale Result"}},
		release:     make(chan struct{}),
	}
	svc := newQuizService(suggester)
	start := svc.StartQuiz()

	completeQuiz(t, svc, start.SessionID)

	// Restart while the fetch is still in flight, then let it finish.
	state, err := svc.RestartQuiz(start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "recipient", state.State)
	assert.Empty(t, state.Answers)
	assert.Empty(t, state.Interests)

	close(suggester.release)

	// The stale result must never surface: the session stays on the
	// first step instead of jumping to results.
	assert.Never(t, func() bool {
		s, err := svc.GetQuiz(start.SessionID)
		return err != nil || s.State != "recipient" || len(s.Suggestions) > 0
	}, 200*time.Millisecond, 10*time.Millisecond)
}

func TestQuizRestartFromResults(t *testing.T) {
	svc := newQuizService(&stubSuggester{
		suggestions: []response_models.GiftSuggestion{{ID: "ai-1", Name: "Camera"}},
	})
	start := svc.StartQuiz()
	completeQuiz(t, svc, start.SessionID)

	require.Eventually(t, func() bool {
		state, err := svc.GetQuiz(start.SessionID)
		return err == nil && state.State == "results"
	}, 2*time.Second, 10*time.Millisecond)

	state, err := svc.RestartQuiz(start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "recipient", state.State)
	assert.Empty(t, state.Suggestions)
}
