package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreeman451/wardwatch/pkg/models"
)

func TestDeriveDeterministic(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	for _, sc := range []models.Scenario{
		models.ScenarioNormal,
		models.ScenarioPollution,
		models.ScenarioFestival,
		models.ScenarioOutbreak,
	} {
		t.Run(string(sc), func(t *testing.T) {
			alerts1, recs1 := Derive(sc, now)
			alerts2, recs2 := Derive(sc, now)

			assert.Equal(t, alerts1, alerts2)
			assert.Equal(t, recs1, recs2)
		})
	}
}

func TestDeriveTable(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		scenario      models.Scenario
		wantAlerts    int
		wantSeverity  models.AlertSeverity
		wantRecs      int
		wantRecAgents []models.Agent
	}{
		{
			name:          "normal has no alerts and one staffing recommendation",
			scenario:      models.ScenarioNormal,
			wantAlerts:    0,
			wantRecs:      1,
			wantRecAgents: []models.Agent{models.AgentOrchestrator},
		},
		{
			name:          "pollution has one critical alert and two recommendations",
			scenario:      models.ScenarioPollution,
			wantAlerts:    1,
			wantSeverity:  models.SeverityCritical,
			wantRecs:      2,
			wantRecAgents: []models.Agent{models.AgentOrchestrator, models.AgentLogistics},
		},
		{
			name:          "festival has one warning alert and one recommendation",
			scenario:      models.ScenarioFestival,
			wantAlerts:    1,
			wantSeverity:  models.SeverityWarning,
			wantRecs:      1,
			wantRecAgents: []models.Agent{models.AgentAction},
		},
		{
			name:          "outbreak has one critical alert and two recommendations",
			scenario:      models.ScenarioOutbreak,
			wantAlerts:    1,
			wantSeverity:  models.SeverityCritical,
			wantRecs:      2,
			wantRecAgents: []models.Agent{models.AgentAction, models.AgentSentinel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts, recs := Derive(tt.scenario, now)

			require.Len(t, alerts, tt.wantAlerts)
			require.Len(t, recs, tt.wantRecs)

			if tt.wantAlerts > 0 {
				assert.Equal(t, tt.wantSeverity, alerts[0].Severity)
				assert.Equal(t, now, alerts[0].Timestamp)
				assert.NotEmpty(t, alerts[0].ID)
			}

			for i, rec := range recs {
				assert.Equal(t, models.StatusPending, rec.Status)
				assert.Equal(t, tt.wantRecAgents[i], rec.Agent)
				assert.NotEmpty(t, rec.ID)
				assert.NotEmpty(t, rec.Action)
			}
		})
	}
}

func TestDeriveOutbreakBiohazard(t *testing.T) {
	alerts, _ := Derive(models.ScenarioOutbreak, time.Now())

	require.Len(t, alerts, 1)
	assert.Equal(t, models.SeverityCritical, alerts[0].Severity)
	assert.Contains(t, alerts[0].Description, "biohazard")
}

func TestDeriveIDsStableAcrossScenarios(t *testing.T) {
	now := time.Now()

	_, pollution := Derive(models.ScenarioPollution, now)
	_, outbreak := Derive(models.ScenarioOutbreak, now)

	seen := make(map[string]bool)

	for _, rec := range append(pollution, outbreak...) {
		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
}
