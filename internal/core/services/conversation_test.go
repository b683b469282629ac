package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driven"
)

// --- Test doubles ---

// fakeScheduler queues callbacks for deterministic, single-threaded
// execution instead of arming real timers.
type fakeScheduler struct {
	mu    sync.Mutex
	queue []func()
}

func (f *fakeScheduler) After(_ time.Duration, fn func()) {
	f.mu.Lock()
	f.queue = append(f.queue, fn)
	f.mu.Unlock()
}

// RunNext pops and runs the oldest pending callback.
// Returns false when nothing is pending.
func (f *fakeScheduler) RunNext() bool {
	f.mu.Lock()
	if len(f.queue) == 0 {
		f.mu.Unlock()
		return false
	}
	fn := f.queue[0]
	f.queue = f.queue[1:]
	f.mu.Unlock()
	fn()
	return true
}

// RunAll drains the queue, including callbacks scheduled while draining.
func (f *fakeScheduler) RunAll() {
	for f.RunNext() {
	}
}

func (f *fakeScheduler) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// fakeCatalog implements driven.CatalogStore with tiny fixed buckets.
type fakeCatalog struct{}

var _ driven.CatalogStore = (*fakeCatalog)(nil)

func (f *fakeCatalog) Bucket(intent domain.StyleIntent) []domain.Product {
	switch intent {
	case domain.IntentFormal:
		return []domain.Product{
			{ID: "d1", Name: "Silk Midi Dress", Price: 395, Category: "Dresses", Brand: "MAISON",
				Colors: []string{"Navy", "Black"}, Sizes: []string{"XS", "S", "M", "L"}},
			{ID: "d2", Name: "Tailored Evening Gown", Price: 650, Category: "Dresses", Brand: "ATELIER",
				Colors: []string{"Black"}, Sizes: []string{"S", "M", "L", "XL"}},
		}
	case domain.IntentCasual:
		return []domain.Product{
			{ID: "c1", Name: "Organic Cotton Tee", Price: 68, Category: "Tops", Brand: "ESSENTIALS",
				Colors: []string{"White"}, Sizes: []string{"S", "M"}},
		}
	case domain.IntentWork:
		return []domain.Product{
			{ID: "w1", Name: "Structured Blazer", Price: 485, Category: "Outerwear", Brand: "POWER",
				Colors: []string{"Navy"}, Sizes: []string{"S", "M"}},
		}
	default:
		return f.All()
	}
}

func (f *fakeCatalog) All() []domain.Product {
	all := f.Bucket(domain.IntentFormal)
	all = append(all, f.Bucket(domain.IntentCasual)...)
	all = append(all, f.Bucket(domain.IntentWork)...)
	return all
}

func (f *fakeCatalog) Get(id string) (*domain.Product, error) {
	for _, p := range f.All() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func newTestSession() (*Session, *fakeScheduler) {
	sched := &fakeScheduler{}
	sess := NewSession(&fakeCatalog{}, sched, domain.ModeFull, domain.DefaultDelays())
	return sess, sched
}

// --- Tests ---

func TestConversation_StartsWithGreeting(t *testing.T) {
	sess, _ := newTestSession()

	msgs := sess.Stylist.Messages()

	require.Len(t, msgs, 1)
	assert.Equal(t, domain.RoleAssistant, msgs[0].Role)
	assert.Equal(t, domain.Greeting, msgs[0].Content)
	assert.Nil(t, sess.Stylist.ActivePrompt())
}

func TestConversation_EmptyUtteranceRejected(t *testing.T) {
	sess, sched := newTestSession()

	assert.ErrorIs(t, sess.Stylist.SubmitUtterance(""), domain.ErrEmptyUtterance)
	assert.ErrorIs(t, sess.Stylist.SubmitUtterance("   \t\n"), domain.ErrEmptyUtterance)

	// No turn, no state change.
	assert.Len(t, sess.Stylist.Messages(), 1)
	assert.False(t, sess.Stylist.Turning())
	assert.Zero(t, sched.Pending())
}

func TestConversation_UserMessageAppendedImmediately(t *testing.T) {
	sess, _ := newTestSession()

	require.NoError(t, sess.Stylist.SubmitUtterance("Show me elegant dresses for a wedding"))

	msgs := sess.Stylist.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleUser, msgs[1].Role)
	assert.Equal(t, "Show me elegant dresses for a wedding", msgs[1].Content)
	assert.True(t, sess.Stylist.Turning())
}

func TestConversation_SecondTurnWhileInFlightRejected(t *testing.T) {
	sess, _ := newTestSession()

	require.NoError(t, sess.Stylist.SubmitUtterance("casual looks"))
	assert.ErrorIs(t, sess.Stylist.SubmitUtterance("another"), domain.ErrTurnInFlight)
}

func TestConversation_StepsRevealSequentially(t *testing.T) {
	sess, sched := newTestSession()
	require.NoError(t, sess.Stylist.SubmitUtterance("Show me elegant dresses for a wedding"))

	captions := domain.IntentFormal.ThinkingCaptions()

	// Each fired delay reveals one more step; the new step is thinking,
	// all earlier steps flip to complete.
	for i := 0; i < len(captions); i++ {
		require.True(t, sched.RunNext())
		steps := sess.Stylist.ThinkingSteps()
		require.Len(t, steps, i+1)
		for j := 0; j < i; j++ {
			assert.Equal(t, domain.StepComplete, steps[j].Status)
			assert.Equal(t, captions[j], steps[j].Step)
		}
		assert.Equal(t, domain.StepThinking, steps[i].Status)
		assert.Equal(t, captions[i], steps[i].Step)
	}

	// Settle: all steps complete, turn still in flight.
	require.True(t, sched.RunNext())
	for _, step := range sess.Stylist.ThinkingSteps() {
		assert.Equal(t, domain.StepComplete, step.Status)
	}
	assert.True(t, sess.Stylist.Turning())

	// Emit: final message lands, steps cleared.
	require.True(t, sched.RunNext())
	assert.False(t, sess.Stylist.Turning())
	assert.Nil(t, sess.Stylist.ThinkingSteps())

	msgs := sess.Stylist.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, domain.RoleAssistant, msgs[2].Role)
	assert.Contains(t, msgs[2].Content, "elegant dresses")
}

func TestConversation_FormalScenario(t *testing.T) {
	sess, sched := newTestSession()

	require.NoError(t, sess.Stylist.SubmitUtterance("Show me elegant dresses for a wedding"))
	sched.RunAll()

	assert.Equal(t, domain.IntentFormal, sess.Stylist.Intent())

	// The bucket replaced the visible set and filters are defaults.
	visible := sess.Filters.Visible()
	require.NotEmpty(t, visible)
	assert.Equal(t, "d1", visible[0].ID)
	assert.Equal(t, domain.DefaultFilters(), sess.Filters.Filters())

	// First prompt of the fixed sequence is attached.
	prompt := sess.Stylist.ActivePrompt()
	require.NotNil(t, prompt)
	assert.Equal(t, domain.PromptPrice, prompt.Kind)
}

func TestConversation_PromptSequenceDeterminism(t *testing.T) {
	// Across successive advances the prompts are exactly
	// price, color, size, then none - for any bucket.
	for _, utterance := range []string{"formal dress", "casual fit", "office wear", "surprise me"} {
		sess, sched := newTestSession()
		require.NoError(t, sess.Stylist.SubmitUtterance(utterance))
		sched.RunAll()

		var kinds []domain.PromptKind
		for p := sess.Stylist.ActivePrompt(); p != nil; p = sess.Stylist.ActivePrompt() {
			kinds = append(kinds, p.Kind)
			sess.Filters.AdvancePrompt()
		}

		assert.Equal(t,
			[]domain.PromptKind{domain.PromptPrice, domain.PromptColor, domain.PromptSize},
			kinds, "utterance %q", utterance)
		assert.Nil(t, sess.Stylist.ActivePrompt())
	}
}

func TestConversation_AdvanceIsNoOpDuringTurn(t *testing.T) {
	sess, _ := newTestSession()
	require.NoError(t, sess.Stylist.SubmitUtterance("casual"))

	// Latest message is the user's: advancing must do nothing.
	sess.Filters.AdvancePrompt()
	assert.Nil(t, sess.Stylist.ActivePrompt())
}

func TestConversation_NewTurnClearsResponsesAndResetsFilters(t *testing.T) {
	sess, sched := newTestSession()

	require.NoError(t, sess.Stylist.SubmitUtterance("formal dress"))
	sched.RunAll()

	sess.Filters.SelectPriceRange(0, 100)
	sess.Filters.ToggleColor("Black")
	require.NotEmpty(t, sess.Stylist.FilterResponses())
	sched.RunAll()

	require.NoError(t, sess.Stylist.SubmitUtterance("casual outfits"))
	assert.Empty(t, sess.Stylist.FilterResponses())
	sched.RunAll()

	assert.Equal(t, domain.DefaultFilters(), sess.Filters.Filters())
	visible := sess.Filters.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "c1", visible[0].ID)
}

func TestConversation_StaleAdvanceTimerIsHarmless(t *testing.T) {
	sess, sched := newTestSession()

	require.NoError(t, sess.Stylist.SubmitUtterance("formal dress"))
	sched.RunAll()

	// Schedule an advance, then supersede it with a new turn before
	// the timer fires.
	sess.Filters.SelectPriceRange(0, 100)
	require.Equal(t, 1, sched.Pending())
	require.NoError(t, sess.Stylist.SubmitUtterance("office wear"))
	sched.RunAll()

	// The stale timer fired during RunAll but belonged to the old
	// generation: the fresh turn still shows the first prompt.
	prompt := sess.Stylist.ActivePrompt()
	require.NotNil(t, prompt)
	assert.Equal(t, domain.PromptPrice, prompt.Kind)
}

func TestConversation_DefaultBucketForUnmatchedUtterance(t *testing.T) {
	sess, sched := newTestSession()

	require.NoError(t, sess.Stylist.SubmitUtterance("Find me statement accessories"))
	sched.RunAll()

	assert.Equal(t, domain.IntentDefault, sess.Stylist.Intent())
	assert.Len(t, sess.Filters.Visible(), len((&fakeCatalog{}).All()))
}

func TestConversation_SubscribeSignalsChanges(t *testing.T) {
	sess, sched := newTestSession()
	ch := sess.Stylist.Subscribe()

	require.NoError(t, sess.Stylist.SubmitUtterance("casual"))
	select {
	case <-ch:
	default:
		t.Fatal("expected a change signal after submitting an utterance")
	}

	sched.RunAll()
	select {
	case <-ch:
	default:
		t.Fatal("expected a change signal after the turn completed")
	}
}
