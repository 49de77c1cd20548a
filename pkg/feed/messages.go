package feed

import "github.com/mfreeman451/wardwatch/pkg/models"

// routineMessages are the normal-operations status lines per agent.
var routineMessages = map[models.Agent][]string{
	models.AgentSentinel: {
		"Ward telemetry nominal across all departments",
		"Admission rate tracking the 7-day baseline",
		"Environmental sensors report no anomalies",
	},
	models.AgentOrchestrator: {
		"Shift roster balanced; no coverage gaps",
		"Bed turnover cycle holding at 42 minutes",
		"No escalations pending in the coordination queue",
	},
	models.AgentLogistics: {
		"Oxygen manifold pressure steady at 94%",
		"PPE stock above reorder threshold in all stores",
		"Supply convoy ETA on schedule",
	},
	models.AgentAction: {
		"No outstanding reallocation orders",
		"Discharge pipeline clearing as planned",
		"Standing orders verified, nothing to execute",
	},
}

// coordinationMessages are the Orchestrator's off-normal status lines.
// The other three agents carry hard-forced critical text under every
// off-normal scenario, so the Orchestrator is the only agent drawing
// from a probabilistic pool here.
var coordinationMessages = map[models.Scenario][]string{
	models.ScenarioPollution: {
		"Drafting respiratory surge roster for next shift",
		"Prioritizing nebulizer-equipped bays for incoming cases",
	},
	models.ScenarioFestival: {
		"Holding trauma-certified staff past shift boundary",
		"Sequencing a minor-injury fast track to protect trauma bays",
	},
	models.ScenarioOutbreak: {
		"Cohorting suspected cases away from general admissions",
		"Requesting infection-control nurse augmentation",
	},
}

// forcedMessages hard-force importance for specific scenario/agent pairs
// with scenario-appropriate critical text.
var forcedMessages = map[models.Scenario]map[models.Agent]string{
	models.ScenarioPollution: {
		models.AgentSentinel:  "CRITICAL: ward anomaly - respiratory distress cluster forming in east wing",
		models.AgentLogistics: "CRITICAL: oxygen manifold pressure falling below surge floor",
		models.AgentAction:    "CRITICAL: reallocation order issued - converting day surgery to respiratory beds",
	},
	models.ScenarioFestival: {
		models.AgentSentinel:  "CRITICAL: ward anomaly - trauma bay saturation imminent",
		models.AgentLogistics: "CRITICAL: oxygen pressure draw exceeding festival contingency",
		models.AgentAction:    "CRITICAL: reallocation order issued - trauma capacity shifted from elective wing",
	},
	models.ScenarioOutbreak: {
		models.AgentSentinel:  "CRITICAL: ward anomaly - febrile cluster breaching isolation boundary",
		models.AgentLogistics: "CRITICAL: oxygen pressure reserve compromised in isolation ward",
		models.AgentAction:    "CRITICAL: reallocation order issued - standing up quarantine overflow unit",
	},
}
