package scenario

import "github.com/mfreeman451/wardwatch/pkg/models"

// statsTable is the static configuration of capacity metrics per scenario.
// Entries are looked up, never mutated.
var statsTable = map[models.Scenario]models.StatsSnapshot{
	models.ScenarioNormal: {
		AQI:         82,
		RiskLevel:   "low",
		Weather:     "clear, 31C",
		BedsFree:    86,
		BedsTotal:   240,
		OxygenPct:   94,
		StaffActive: 132,
		StaffIdle:   28,
		PPEUnits:    4200,
	},
	models.ScenarioPollution: {
		AQI:         412,
		RiskLevel:   "severe",
		Weather:     "dense smog, 29C",
		BedsFree:    31,
		BedsTotal:   240,
		OxygenPct:   71,
		StaffActive: 171,
		StaffIdle:   9,
		PPEUnits:    2600,
	},
	models.ScenarioFestival: {
		AQI:         118,
		RiskLevel:   "elevated",
		Weather:     "humid, 33C",
		BedsFree:    54,
		BedsTotal:   240,
		OxygenPct:   88,
		StaffActive: 158,
		StaffIdle:   14,
		PPEUnits:    3400,
	},
	models.ScenarioOutbreak: {
		AQI:         95,
		RiskLevel:   "critical",
		Weather:     "overcast, 27C",
		BedsFree:    12,
		BedsTotal:   240,
		OxygenPct:   64,
		StaffActive: 183,
		StaffIdle:   4,
		PPEUnits:    1500,
	},
}

// StatsFor returns the static capacity snapshot for a scenario. Unknown
// scenarios fall back to the normal snapshot.
func StatsFor(s models.Scenario) models.StatsSnapshot {
	if snap, ok := statsTable[s]; ok {
		return snap
	}

	return statsTable[models.ScenarioNormal]
}
