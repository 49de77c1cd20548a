// Package feed produces the synthetic agent activity stream.
package feed

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mfreeman451/wardwatch/pkg/models"
)

const (
	// BufferSize bounds the retained event stream.
	BufferSize = 50

	// DefaultInterval is the tick cadence between generated events.
	DefaultInterval = 2 * time.Second

	// elevatedImportanceRate is the baseline probability of an important
	// event under any non-normal scenario.
	elevatedImportanceRate = 0.3
)

// Rand is the random source used for agent and message selection.
// Injectable so tests can force deterministic sequences. Satisfied by
// *math/rand.Rand.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Generator synthesizes one log event per tick while running and not
// paused. It owns the event buffer; no other component mutates it.
type Generator struct {
	interval time.Duration
	buf      *eventBuffer
	done     chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	scenario models.Scenario
	paused   bool
	rng      Rand
}

// NewGenerator creates a generator ticking at interval. A nil rng gets a
// time-seeded source.
func NewGenerator(interval time.Duration, rng Rand) *Generator {
	if interval <= 0 {
		interval = DefaultInterval
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // synthetic feed, not crypto
	}

	return &Generator{
		interval: interval,
		buf:      newEventBuffer(BufferSize),
		done:     make(chan struct{}),
		scenario: models.ScenarioNormal,
		rng:      rng,
	}
}

// Start runs the tick loop until ctx is canceled or Stop is called.
func (g *Generator) Start(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	log.Printf("Starting event feed with interval %v", g.interval)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.done:
			return nil
		case <-ticker.C:
			g.tick(time.Now())
		}
	}
}

// Stop cancels the tick loop. No event is generated after Stop returns.
// Safe to call more than once.
func (g *Generator) Stop() {
	g.stopOnce.Do(func() {
		close(g.done)
	})
}

// Pause suspends event generation without clearing the buffer.
func (g *Generator) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.paused = true
}

// Resume restarts generation. Ticks missed while paused are not replayed.
func (g *Generator) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.paused = false
}

// SetScenario switches the message-content table. Cadence is unchanged.
func (g *Generator) SetScenario(s models.Scenario) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.scenario = s
}

// Events returns a copy of the buffered events, oldest first.
func (g *Generator) Events() []models.LogEvent {
	return g.buf.Events()
}

// Len reports the number of buffered events.
func (g *Generator) Len() int {
	return g.buf.Len()
}

// tick is one scheduler fire. Split out so tests can drive the clock.
func (g *Generator) tick(now time.Time) {
	g.mu.Lock()

	if g.paused {
		g.mu.Unlock()
		return
	}

	scenario := g.scenario
	agent := models.Agents[g.rng.Intn(len(models.Agents))]
	message, important := g.compose(scenario, agent)
	g.mu.Unlock()

	g.buf.Add(models.LogEvent{
		ID:        uuid.NewString(),
		Agent:     agent,
		Message:   message,
		Timestamp: now,
		Important: important,
	})
}

// compose picks the message text and importance for one event. Caller
// holds g.mu (for the rng).
func (g *Generator) compose(scenario models.Scenario, agent models.Agent) (string, bool) {
	if scenario == models.ScenarioNormal {
		variants := routineMessages[agent]
		return variants[g.rng.Intn(len(variants))], false
	}

	if forced, ok := forcedMessages[scenario][agent]; ok {
		return forced, true
	}

	variants := coordinationMessages[scenario]
	if len(variants) == 0 {
		variants = routineMessages[agent]
	}

	return variants[g.rng.Intn(len(variants))], g.rng.Float64() < elevatedImportanceRate
}
