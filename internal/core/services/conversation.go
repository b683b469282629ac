package services

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driven"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driving"
	"github.com/atelier-labs/stylist-cli/internal/logger"
)

// Ensure Conversation implements the interface.
var _ driving.StylistService = (*Conversation)(nil)

// Conversation is the conversational turn engine. It owns the message
// history, the transient thinking steps, the per-turn filter-response
// list and the active filter-prompt cursor.
//
// The prompt cursor is stored alongside the history, never inside a
// message: ActivePrompt joins the cursor with the latest assistant
// message at read time, so advancing the cursor can never target the
// wrong message.
type Conversation struct {
	catalog driven.CatalogStore
	sched   driven.Scheduler
	delays  domain.Delays
	filters *FilterPipeline
	notify  *notifier

	mu         sync.Mutex
	messages   []domain.Message
	steps      []domain.ThinkingStep
	responses  []string
	intent     domain.StyleIntent
	turning    bool
	promptSeq  []domain.FilterPrompt
	promptIdx  int
	hasPrompt  bool
	generation uint64
}

// NewConversation creates the turn engine. The pipeline is bound
// afterwards with SetFilterPipeline because the two reference each
// other.
func NewConversation(catalog driven.CatalogStore, sched driven.Scheduler, delays domain.Delays) *Conversation {
	return &Conversation{
		catalog:   catalog,
		sched:     sched,
		delays:    delays,
		notify:    newNotifier(),
		intent:    domain.IntentDefault,
		promptSeq: domain.PromptSequence(),
		messages: []domain.Message{
			{
				ID:      uuid.NewString(),
				Role:    domain.RoleAssistant,
				Content: domain.Greeting,
			},
		},
	}
}

// SetFilterPipeline binds the filter pipeline the engine resets and
// rebuckets on every turn.
func (c *Conversation) SetFilterPipeline(p *FilterPipeline) {
	c.filters = p
}

// SubmitUtterance starts a new turn. The user message is appended
// immediately; everything else lands over the delay chain.
func (c *Conversation) SubmitUtterance(utterance string) error {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return domain.ErrEmptyUtterance
	}

	c.mu.Lock()
	if c.turning {
		c.mu.Unlock()
		return domain.ErrTurnInFlight
	}

	c.generation++
	gen := c.generation
	c.turning = true
	c.steps = nil
	c.responses = nil
	c.promptIdx = 0
	c.hasPrompt = false
	c.intent = domain.ClassifyUtterance(utterance)
	c.messages = append(c.messages, domain.Message{
		ID:      uuid.NewString(),
		Role:    domain.RoleUser,
		Content: utterance,
	})
	captions := c.intent.ThinkingCaptions()
	c.mu.Unlock()

	logger.Section("Turn")
	logger.Debug("Utterance: %q", utterance)
	logger.Info("Classified intent: %s", c.intent.Description())

	c.notify.Notify()
	c.scheduleStep(gen, captions, 0)
	return nil
}

// scheduleStep arms the reveal of caption i. Step i+1 is only armed
// once step i's delay has elapsed, keeping the chain strictly
// sequential under real wall-clock waits.
func (c *Conversation) scheduleStep(gen uint64, captions []string, i int) {
	c.sched.After(c.delays.Step, func() {
		c.mu.Lock()
		if gen != c.generation {
			// A newer turn superseded this one.
			c.mu.Unlock()
			return
		}

		for j := range c.steps {
			c.steps[j].Status = domain.StepComplete
		}
		c.steps = append(c.steps, domain.ThinkingStep{
			ID:     uuid.NewString(),
			Step:   captions[i],
			Status: domain.StepThinking,
		})
		c.mu.Unlock()
		c.notify.Notify()

		if i+1 < len(captions) {
			c.scheduleStep(gen, captions, i+1)
		} else {
			c.scheduleSettle(gen)
		}
	})
}

// scheduleSettle flips every revealed step to complete after the
// settle delay, then arms the final message emit.
func (c *Conversation) scheduleSettle(gen uint64) {
	c.sched.After(c.delays.Settle, func() {
		c.mu.Lock()
		if gen != c.generation {
			c.mu.Unlock()
			return
		}
		for j := range c.steps {
			c.steps[j].Status = domain.StepComplete
		}
		c.mu.Unlock()
		c.notify.Notify()

		c.sched.After(c.delays.Emit, func() {
			c.finishTurn(gen)
		})
	})
}

// finishTurn emits the assistant message, swaps the product bucket,
// resets the filters and attaches the first prompt of the sequence.
func (c *Conversation) finishTurn(gen uint64) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}

	c.messages = append(c.messages, domain.Message{
		ID:      uuid.NewString(),
		Role:    domain.RoleAssistant,
		Content: c.intent.Response(),
	})
	c.steps = nil
	c.turning = false
	c.promptIdx = 0
	c.hasPrompt = true
	intent := c.intent
	c.mu.Unlock()

	bucket := c.catalog.Bucket(intent)
	logger.Info("Bucket: %s (%d products)", intent, len(bucket))
	if c.filters != nil {
		c.filters.SetBucket(bucket)
		c.filters.Reset()
	}
	c.notify.Notify()
}

// AppendFilterResponse records a filter confirmation for the current
// turn. The list is append-only and cleared when the next turn starts.
func (c *Conversation) AppendFilterResponse(response string) {
	c.mu.Lock()
	c.responses = append(c.responses, response)
	c.mu.Unlock()
	c.notify.Notify()
}

// ScheduleAdvance arms a prompt-cursor advance after the advance
// delay. The callback captures the current generation: a newer turn
// renders it a harmless no-op.
func (c *Conversation) ScheduleAdvance() {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	c.sched.After(c.delays.Advance, func() {
		c.mu.Lock()
		if gen != c.generation {
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
		c.AdvancePrompt()
	})
}

// AdvancePrompt moves the prompt cursor forward one step, clearing
// the active prompt once the sequence is exhausted. No-op when the
// latest message is not an assistant message. Each call advances by
// exactly one step regardless of how many timers are pending.
func (c *Conversation) AdvancePrompt() {
	c.mu.Lock()
	if len(c.messages) == 0 || c.messages[len(c.messages)-1].Role != domain.RoleAssistant {
		c.mu.Unlock()
		return
	}
	if !c.hasPrompt {
		c.mu.Unlock()
		return
	}

	c.promptIdx++
	if c.promptIdx >= len(c.promptSeq) {
		c.hasPrompt = false
	}
	c.mu.Unlock()
	c.notify.Notify()
}

// Messages returns the conversation history, oldest first.
func (c *Conversation) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// ThinkingSteps returns the steps revealed so far in the in-flight turn.
func (c *Conversation) ThinkingSteps() []domain.ThinkingStep {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.steps == nil {
		return nil
	}
	out := make([]domain.ThinkingStep, len(c.steps))
	copy(out, c.steps)
	return out
}

// FilterResponses returns the confirmations accumulated this turn.
func (c *Conversation) FilterResponses() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.responses))
	copy(out, c.responses)
	return out
}

// ActivePrompt returns the prompt attached to the latest assistant
// message, or nil.
func (c *Conversation) ActivePrompt() *domain.FilterPrompt {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasPrompt || c.promptIdx >= len(c.promptSeq) {
		return nil
	}
	if len(c.messages) == 0 || c.messages[len(c.messages)-1].Role != domain.RoleAssistant {
		return nil
	}
	prompt := c.promptSeq[c.promptIdx]
	return &prompt
}

// Turning reports whether a turn is in flight.
func (c *Conversation) Turning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.turning
}

// Intent returns the classification of the most recent turn.
func (c *Conversation) Intent() domain.StyleIntent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.intent
}

// Subscribe returns the coalesced change-signal channel.
func (c *Conversation) Subscribe() <-chan struct{} {
	return c.notify.C()
}
