package models

import "time"

// DepartmentBeds aggregates bed counts for a single department.
type DepartmentBeds struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
}

// BedAvailability maps department name to its bed counts, as returned by
// GET /api/v1/beds.
type BedAvailability map[string]DepartmentBeds

// StaffSnapshot is the staffing picture returned by GET /api/v1/staff.
type StaffSnapshot struct {
	Total      int     `json:"total"`
	Available  int     `json:"available"`
	OnDuty     int     `json:"on_duty"`
	AvgFatigue float64 `json:"avg_fatigue"`
}

// InventoryItem is one supply line from GET /api/v1/inventory.
type InventoryItem struct {
	Item      string `json:"item"`
	Current   int    `json:"current"`
	Threshold int    `json:"threshold"`
	Status    string `json:"status"` // "ok" or "critical"
}

// SurgePrediction is a patient-surge forecast.
type SurgePrediction struct {
	ID                 string    `json:"id"`
	PredictionTime     time.Time `json:"prediction_time"`
	HorizonHours       int       `json:"horizon_hours"`
	ExpectedAdmissions int       `json:"expected_admissions"`
	Confidence         float64   `json:"confidence"`
}

// CostSavings is the analytics summary from approved recommendations.
type CostSavings struct {
	TotalSavings  float64 `json:"total_savings"`
	ApprovedCount int     `json:"approved_count"`
	Currency      string  `json:"currency"`
}

// AQIReading is one air-quality measurement.
type AQIReading struct {
	AQI        int       `json:"aqi"`
	Category   string    `json:"category"`
	Station    string    `json:"station"`
	MeasuredAt time.Time `json:"measured_at"`
}

// CrisisAck acknowledges a simulation trigger.
type CrisisAck struct {
	Message  string   `json:"message"`
	Scenario Scenario `json:"scenario"`
}

// RealtimeMessage is the envelope for push messages. Payload is arbitrary
// JSON; only the type field is interpreted by the view.
type RealtimeMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}
