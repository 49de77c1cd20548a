package view

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfreeman451/wardwatch/pkg/feed"
	"github.com/mfreeman451/wardwatch/pkg/fetch"
	"github.com/mfreeman451/wardwatch/pkg/models"
	"github.com/mfreeman451/wardwatch/pkg/realtime"
	"github.com/mfreeman451/wardwatch/pkg/scenario"
	"github.com/mfreeman451/wardwatch/pkg/workflow"
)

// fakeChannel satisfies PushChannel without a network.
type fakeChannel struct {
	connected  bool
	handlers   []realtime.Handler
	unsubCount int
}

func (f *fakeChannel) Connect(context.Context) error {
	f.connected = true
	return nil
}

func (f *fakeChannel) Disconnect() {
	f.connected = false
}

func (f *fakeChannel) Subscribe(h realtime.Handler) func() {
	f.handlers = append(f.handlers, h)
	return func() { f.unsubCount++ }
}

func (f *fakeChannel) State() models.ConnectionState {
	return models.ConnectionState{Connected: f.connected}
}

func newTestManager(t *testing.T) (*Manager, *fetch.MockClient, *fakeChannel) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := fetch.NewMockClient(ctrl)
	channel := &fakeChannel{}

	store := scenario.NewStore()
	gen := feed.NewGenerator(time.Hour, nil)
	wf := workflow.New(client)

	m := NewManager(store, gen, wf, client, channel, time.Hour)

	return m, client, channel
}

func expectRefresh(client *fetch.MockClient) {
	client.EXPECT().Beds(gomock.Any(), "").Return(models.BedAvailability{
		"icu": {Total: 36, Available: 6, Occupied: 30},
	}, nil)
	client.EXPECT().Staff(gomock.Any(), "").Return(&models.StaffSnapshot{Total: 160, OnDuty: 132}, nil)
	client.EXPECT().Inventory(gomock.Any(), false).Return([]models.InventoryItem{
		{Item: "ppe_kits", Current: 4200, Threshold: 2000, Status: "ok"},
	}, nil)
	client.EXPECT().LatestPrediction(gomock.Any()).Return(&models.SurgePrediction{ExpectedAdmissions: 24}, nil)
	client.EXPECT().CostSavings(gomock.Any()).Return(&models.CostSavings{Currency: "INR"}, nil)
	client.EXPECT().AQI(gomock.Any()).Return(&models.AQIReading{AQI: 82}, nil)
}

func TestManagerInitialState(t *testing.T) {
	m, _, _ := newTestManager(t)

	snap := m.Snapshot()

	assert.Equal(t, models.ScenarioNormal, snap.Scenario)
	assert.Equal(t, scenario.StatsFor(models.ScenarioNormal), snap.Stats)
	assert.Empty(t, snap.Alerts)
	require.Len(t, snap.Recommendations, 1)
	assert.Equal(t, models.StatusPending, snap.Recommendations[0].Status)
}

func TestManagerRefreshMergesPayloads(t *testing.T) {
	m, client, _ := newTestManager(t)

	expectRefresh(client)

	require.NoError(t, m.Refresh(context.Background()))

	snap := m.Snapshot()

	assert.Equal(t, 6, snap.Beds["icu"].Available)
	assert.Equal(t, 160, snap.Staff.Total)
	require.Len(t, snap.Inventory, 1)
	assert.Equal(t, 24, snap.Prediction.ExpectedAdmissions)
	assert.Equal(t, "INR", snap.CostSavings.Currency)
	assert.Equal(t, 82, snap.AQI.AQI)
	assert.False(t, snap.LastRefresh.IsZero())
}

func TestManagerRefreshKeepsPreviousOnFailure(t *testing.T) {
	m, client, _ := newTestManager(t)
	ctx := context.Background()

	expectRefresh(client)
	require.NoError(t, m.Refresh(ctx))

	// Second poll: beds fails, everything else succeeds.
	client.EXPECT().Beds(gomock.Any(), "").Return(nil, assert.AnError)
	client.EXPECT().Staff(gomock.Any(), "").Return(&models.StaffSnapshot{Total: 161}, nil)
	client.EXPECT().Inventory(gomock.Any(), false).Return([]models.InventoryItem{}, nil)
	client.EXPECT().LatestPrediction(gomock.Any()).Return(&models.SurgePrediction{ExpectedAdmissions: 30}, nil)
	client.EXPECT().CostSavings(gomock.Any()).Return(&models.CostSavings{}, nil)
	client.EXPECT().AQI(gomock.Any()).Return(&models.AQIReading{AQI: 90}, nil)

	err := m.Refresh(ctx)
	require.ErrorIs(t, err, assert.AnError)

	snap := m.Snapshot()

	// The failed endpoint keeps its previous value.
	assert.Equal(t, 6, snap.Beds["icu"].Available)
	assert.Equal(t, 161, snap.Staff.Total)
}

func TestManagerScenarioTransitionReplacesDerivedState(t *testing.T) {
	m, _, _ := newTestManager(t)

	m.Store().Select(models.ScenarioOutbreak)

	snap := m.Snapshot()

	require.Len(t, snap.Alerts, 1)
	assert.Equal(t, models.SeverityCritical, snap.Alerts[0].Severity)
	assert.Contains(t, snap.Alerts[0].Description, "biohazard")

	require.Len(t, snap.Recommendations, 2)
	for _, rec := range snap.Recommendations {
		assert.Equal(t, models.StatusPending, rec.Status)
	}

	assert.Equal(t, scenario.StatsFor(models.ScenarioOutbreak), snap.Stats)
}

func TestManagerScenarioTransitionNotifiesSubscribers(t *testing.T) {
	m, _, _ := newTestManager(t)

	var got []Snapshot

	unsub := m.Subscribe(func(s Snapshot) { got = append(got, s) })
	defer unsub()

	m.Store().Select(models.ScenarioPollution)

	require.Len(t, got, 1)
	assert.Equal(t, models.ScenarioPollution, got[0].Scenario)
}

func TestManagerRealtimeScenarioUpdate(t *testing.T) {
	m, _, _ := newTestManager(t)

	msg, err := json.Marshal(map[string]interface{}{
		"type":    "scenario_update",
		"payload": map[string]string{"scenario": "pollution"},
	})
	require.NoError(t, err)

	m.onRealtimeMessage(msg)

	assert.Equal(t, models.ScenarioPollution, m.Store().Get())
	assert.Len(t, m.Snapshot().Alerts, 1)
}

func TestManagerRealtimeAQIUpdate(t *testing.T) {
	m, _, _ := newTestManager(t)

	msg, err := json.Marshal(map[string]interface{}{
		"type":    "aqi_update",
		"payload": models.AQIReading{AQI: 388, Category: "severe"},
	})
	require.NoError(t, err)

	m.onRealtimeMessage(msg)

	require.NotNil(t, m.Snapshot().AQI)
	assert.Equal(t, 388, m.Snapshot().AQI.AQI)
}

func TestManagerRealtimeRecommendationUpdate(t *testing.T) {
	m, _, _ := newTestManager(t)

	m.Store().Select(models.ScenarioOutbreak)

	pending := m.Workflow().Pending()
	require.Len(t, pending, 2)

	var got []Snapshot

	unsub := m.Subscribe(func(s Snapshot) { got = append(got, s) })
	defer unsub()

	update := pending[0]
	update.Status = models.StatusApproved

	msg, err := json.Marshal(models.RealtimeMessage{
		Type:    "recommendation_update",
		Payload: update,
	})
	require.NoError(t, err)

	m.onRealtimeMessage(msg)

	// The pushed resolution lands in the snapshot and notifies renderers.
	snap := m.Snapshot()
	assert.Equal(t, models.StatusApproved, snap.Recommendations[0].Status)
	assert.Len(t, m.Workflow().Pending(), 1)
	require.Len(t, got, 1)
}

func TestManagerRealtimeRecommendationUpdateKeepsInvariants(t *testing.T) {
	m, _, _ := newTestManager(t)

	m.Store().Select(models.ScenarioOutbreak)

	pending := m.Workflow().Pending()
	require.Len(t, pending, 2)

	var notifications int

	unsub := m.Subscribe(func(Snapshot) { notifications++ })
	defer unsub()

	push := func(rec models.Recommendation) {
		msg, err := json.Marshal(models.RealtimeMessage{
			Type:    "recommendation_update",
			Payload: rec,
		})
		require.NoError(t, err)

		m.onRealtimeMessage(msg)
	}

	// Unknown ID and non-terminal status are dropped without fan-out.
	unknown := pending[0]
	unknown.ID = "no-such-id"
	unknown.Status = models.StatusApproved
	push(unknown)

	still := pending[1]
	still.Status = models.StatusPending
	push(still)

	for _, rec := range m.Snapshot().Recommendations {
		assert.Equal(t, models.StatusPending, rec.Status)
	}

	assert.Zero(t, notifications)
}

func TestManagerRealtimeIgnoresUnknownAndMalformed(t *testing.T) {
	m, _, _ := newTestManager(t)

	before := m.Snapshot()

	m.onRealtimeMessage(json.RawMessage(`{"type":"heartbeat","payload":{"n":1}}`))
	m.onRealtimeMessage(json.RawMessage(`not json at all`))
	m.onRealtimeMessage(json.RawMessage(`{"type":"scenario_update","payload":"oops"}`))

	after := m.Snapshot()

	assert.Equal(t, before.Scenario, after.Scenario)
	assert.Equal(t, before.Alerts, after.Alerts)
}

func TestManagerWorkflowIntegration(t *testing.T) {
	m, client, _ := newTestManager(t)
	ctx := context.Background()

	m.Store().Select(models.ScenarioOutbreak)

	pending := m.Workflow().Pending()
	require.Len(t, pending, 2)

	client.EXPECT().ApproveRecommendation(gomock.Any(), pending[0].ID).Return(nil)
	require.NoError(t, m.Workflow().Approve(ctx, pending[0].ID))

	snap := m.Snapshot()
	assert.Equal(t, models.StatusApproved, snap.Recommendations[0].Status)
}

func TestManagerStopTearsDown(t *testing.T) {
	m, client, channel := newTestManager(t)

	expectRefresh(client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)

	go func() {
		errCh <- m.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		return !m.Snapshot().LastRefresh.IsZero()
	}, time.Second, time.Millisecond)

	require.NoError(t, m.Stop(context.Background()))

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("manager did not stop")
	}

	// Teardown released the channel subscription and disconnected.
	assert.Equal(t, 1, channel.unsubCount)
	assert.False(t, channel.connected)

	// Stop is idempotent.
	require.NoError(t, m.Stop(context.Background()))
}
