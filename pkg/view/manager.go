// Package view merges the push channel, REST polling, the scenario store
// and the event feed into one view model for the renderer.
package view

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/mfreeman451/wardwatch/pkg/derive"
	"github.com/mfreeman451/wardwatch/pkg/feed"
	"github.com/mfreeman451/wardwatch/pkg/fetch"
	"github.com/mfreeman451/wardwatch/pkg/models"
	"github.com/mfreeman451/wardwatch/pkg/scenario"
	"github.com/mfreeman451/wardwatch/pkg/workflow"
)

// Manager drives the dashboard core. It reacts to scenario selection,
// realtime messages, poll completions and operator actions; the renderer
// only ever reads the snapshots it publishes.
type Manager struct {
	store    *scenario.Store
	gen      *feed.Generator
	wf       *workflow.Workflow
	client   fetch.Client
	channel  PushChannel
	interval time.Duration

	mu          sync.RWMutex
	alerts      []models.Alert
	beds        models.BedAvailability
	staff       *models.StaffSnapshot
	inventory   []models.InventoryItem
	prediction  *models.SurgePrediction
	costSavings *models.CostSavings
	aqi         *models.AQIReading
	lastRefresh time.Time

	subMu   sync.Mutex
	subs    []subscriberEntry
	nextSub int

	unsubStore   func()
	unsubChannel func()
	done         chan struct{}
	stopOnce     sync.Once
}

type subscriberEntry struct {
	id int
	fn func(Snapshot)
}

// NewManager wires the core components together. The scenario store, feed
// generator and workflow are owned by the manager after this call.
func NewManager(store *scenario.Store, gen *feed.Generator, wf *workflow.Workflow,
	client fetch.Client, channel PushChannel, pollInterval time.Duration) *Manager {
	m := &Manager{
		store:    store,
		gen:      gen,
		wf:       wf,
		client:   client,
		channel:  channel,
		interval: pollInterval,
		done:     make(chan struct{}),
	}

	m.unsubStore = store.Subscribe(m.onScenarioChange)

	// Seed derived state for the initial scenario.
	m.applyScenario(store.Get())

	return m
}

// Workflow exposes the approve/reject surface to the operator layer.
func (m *Manager) Workflow() *workflow.Workflow {
	return m.wf
}

// Store exposes scenario selection to the operator layer.
func (m *Manager) Store() *scenario.Store {
	return m.store
}

// Feed exposes pause/resume to the operator layer.
func (m *Manager) Feed() *feed.Generator {
	return m.gen
}

// Start runs the manager until ctx is canceled or Stop is called. The
// realtime connection is attempted once; a failure is reflected in the
// connection state, not treated as fatal.
func (m *Manager) Start(ctx context.Context) error {
	if m.channel != nil {
		if err := m.channel.Connect(ctx); err != nil {
			log.Printf("Realtime connection unavailable, continuing with polling only: %v", err)
		}

		m.unsubChannel = m.channel.Subscribe(m.onRealtimeMessage)
	}

	go func() {
		if err := m.gen.Start(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Event feed stopped: %v", err)
		}
	}()

	if err := m.Refresh(ctx); err != nil {
		log.Printf("Initial refresh incomplete: %v", err)
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.done:
			return nil
		case <-ticker.C:
			if err := m.Refresh(ctx); err != nil {
				log.Printf("Refresh incomplete: %v", err)
			}
		}
	}
}

// Stop tears the manager down: the poll loop exits, the feed timer stops
// and the channel subscription is released so no delivery leaks.
func (m *Manager) Stop(_ context.Context) error {
	m.stopOnce.Do(func() {
		close(m.done)

		if m.unsubChannel != nil {
			m.unsubChannel()
		}

		m.unsubStore()
		m.gen.Stop()

		if m.channel != nil {
			m.channel.Disconnect()
		}
	})

	return nil
}

// Refresh polls every read endpoint once and merges the results. A failed
// endpoint keeps its previous value; the first error is returned so the
// caller can surface degraded data.
func (m *Manager) Refresh(ctx context.Context) error {
	var firstErr error

	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	beds, err := m.client.Beds(ctx, "")
	record(err)

	staff, err := m.client.Staff(ctx, "")
	record(err)

	inventory, err := m.client.Inventory(ctx, false)
	record(err)

	prediction, err := m.client.LatestPrediction(ctx)
	record(err)

	savings, err := m.client.CostSavings(ctx)
	record(err)

	aqi, err := m.client.AQI(ctx)
	record(err)

	m.mu.Lock()
	if beds != nil {
		m.beds = beds
	}

	if staff != nil {
		m.staff = staff
	}

	if inventory != nil {
		m.inventory = inventory
	}

	if prediction != nil {
		m.prediction = prediction
	}

	if savings != nil {
		m.costSavings = savings
	}

	if aqi != nil {
		m.aqi = aqi
	}

	m.lastRefresh = time.Now()
	m.mu.Unlock()

	m.notify()

	return firstErr
}

// Snapshot assembles the current view model.
func (m *Manager) Snapshot() Snapshot {
	active := m.store.Get()

	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		Scenario:        active,
		Stats:           scenario.StatsFor(active),
		Alerts:          append([]models.Alert(nil), m.alerts...),
		Recommendations: m.wf.All(),
		Events:          m.gen.Events(),
		Beds:            m.beds,
		Staff:           m.staff,
		Inventory:       append([]models.InventoryItem(nil), m.inventory...),
		Prediction:      m.prediction,
		CostSavings:     m.costSavings,
		AQI:             m.aqi,
		LastRefresh:     m.lastRefresh,
	}

	if m.channel != nil {
		snap.Connection = m.channel.State()
	}

	return snap
}

// Subscribe registers a renderer callback invoked with a fresh snapshot
// after every merge. Returns the unsubscribe function.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs = append(m.subs, subscriberEntry{id: id, fn: fn})
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()

		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				break
			}
		}
	}
}

func (m *Manager) notify() {
	m.subMu.Lock()
	subs := make([]subscriberEntry, len(m.subs))
	copy(subs, m.subs)
	m.subMu.Unlock()

	if len(subs) == 0 {
		return
	}

	snap := m.Snapshot()
	for _, s := range subs {
		s.fn(snap)
	}
}

// onScenarioChange reacts to operator scenario selection: alerts and
// recommendations are replaced from the derivation table and the feed
// switches its message content.
func (m *Manager) onScenarioChange(s models.Scenario) {
	m.applyScenario(s)
	m.notify()
}

func (m *Manager) applyScenario(s models.Scenario) {
	alerts, recs := derive.Derive(s, time.Now())

	m.mu.Lock()
	m.alerts = alerts
	m.mu.Unlock()

	m.wf.Replace(recs)
	m.gen.SetScenario(s)
}

// onRealtimeMessage merges one push message. Only known message types are
// interpreted; everything else is fanned out untouched (the contract is
// arbitrary JSON).
func (m *Manager) onRealtimeMessage(msg json.RawMessage) {
	var envelope struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}

	if err := json.Unmarshal(msg, &envelope); err != nil {
		log.Printf("Ignoring malformed realtime message: %v", err)
		return
	}

	switch envelope.Type {
	case "scenario_update":
		var payload struct {
			Scenario models.Scenario `json:"scenario"`
		}

		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			log.Printf("Ignoring malformed scenario update: %v", err)
			return
		}

		m.store.Select(payload.Scenario)

	case "aqi_update":
		var reading models.AQIReading
		if err := json.Unmarshal(envelope.Payload, &reading); err != nil {
			log.Printf("Ignoring malformed AQI update: %v", err)
			return
		}

		m.mu.Lock()
		m.aqi = &reading
		m.mu.Unlock()

		m.notify()

	case "recommendation_update":
		var rec models.Recommendation
		if err := json.Unmarshal(envelope.Payload, &rec); err != nil {
			log.Printf("Ignoring malformed recommendation update: %v", err)
			return
		}

		if m.wf.ApplyRemote(rec) {
			m.notify()
		}

	default:
		// Arbitrary payloads are allowed; nothing to merge.
	}
}
