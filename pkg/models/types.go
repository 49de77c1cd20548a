// Package models holds the shared domain types for the wardwatch core.
package models

import "time"

// Scenario is the discrete operating mode driving all derived state.
type Scenario string

const (
	ScenarioNormal    Scenario = "normal"
	ScenarioPollution Scenario = "pollution"
	ScenarioFestival  Scenario = "festival"
	ScenarioOutbreak  Scenario = "outbreak"
)

// Valid reports whether s is one of the four known scenarios.
func (s Scenario) Valid() bool {
	switch s {
	case ScenarioNormal, ScenarioPollution, ScenarioFestival, ScenarioOutbreak:
		return true
	}

	return false
}

// Agent identifies a synthetic source of log events.
type Agent string

const (
	AgentSentinel     Agent = "sentinel"
	AgentOrchestrator Agent = "orchestrator"
	AgentLogistics    Agent = "logistics"
	AgentAction       Agent = "action"
)

// Agents lists every agent in a fixed order, used for uniform selection.
var Agents = []Agent{AgentSentinel, AgentOrchestrator, AgentLogistics, AgentAction}

// StatsSnapshot is the static capacity picture for a scenario. Looked up,
// never mutated.
type StatsSnapshot struct {
	AQI         int    `json:"aqi"`
	RiskLevel   string `json:"risk_level"`
	Weather     string `json:"weather"`
	BedsFree    int    `json:"beds_free"`
	BedsTotal   int    `json:"beds_total"`
	OxygenPct   int    `json:"oxygen_pct"`
	StaffActive int    `json:"staff_active"`
	StaffIdle   int    `json:"staff_idle"`
	PPEUnits    int    `json:"ppe_units"`
}

// LogEvent is one synthetic agent activity line. Immutable after creation.
type LogEvent struct {
	ID        string    `json:"id"`
	Agent     Agent     `json:"agent"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Important bool      `json:"important"`
}

// AlertSeverity represents the severity of a derived alert.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is a derived, scenario-scoped alert. The full set is replaced on
// every scenario change.
type Alert struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Severity    AlertSeverity `json:"severity"`
	Timestamp   time.Time     `json:"timestamp"`
}

// RecommendationStatus is the resolution state of a recommendation.
type RecommendationStatus string

const (
	StatusPending  RecommendationStatus = "pending"
	StatusApproved RecommendationStatus = "approved"
	StatusRejected RecommendationStatus = "rejected"
)

// Recommendation is a proposed operator action awaiting approval or
// rejection. Status only ever moves pending -> approved or pending -> rejected.
type Recommendation struct {
	ID      string               `json:"id"`
	Agent   Agent                `json:"agent"`
	Action  string               `json:"action"`
	Reason  string               `json:"reason"`
	Impact  string               `json:"expected_impact"`
	Status  RecommendationStatus `json:"status"`
	Outcome string               `json:"outcome,omitempty"`
}

// ConnectionState describes the realtime channel for the view.
type ConnectionState struct {
	Connected     bool      `json:"connected"`
	LastMessageAt time.Time `json:"last_message_at"`
}
