package view

import (
	"context"
	"time"

	"github.com/mfreeman451/wardwatch/pkg/models"
	"github.com/mfreeman451/wardwatch/pkg/realtime"
)

// Snapshot is the coherent view model handed to the renderer. It is a
// value: every field is a copy, safe to read without coordination.
type Snapshot struct {
	Scenario        models.Scenario         `json:"scenario"`
	Stats           models.StatsSnapshot    `json:"stats"`
	Alerts          []models.Alert          `json:"alerts"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Events          []models.LogEvent       `json:"events"`
	Connection      models.ConnectionState  `json:"connection"`

	Beds        models.BedAvailability  `json:"beds,omitempty"`
	Staff       *models.StaffSnapshot   `json:"staff,omitempty"`
	Inventory   []models.InventoryItem  `json:"inventory,omitempty"`
	Prediction  *models.SurgePrediction `json:"prediction,omitempty"`
	CostSavings *models.CostSavings     `json:"cost_savings,omitempty"`
	AQI         *models.AQIReading      `json:"aqi,omitempty"`

	LastRefresh time.Time `json:"last_refresh"`
}

// PushChannel is the realtime dependency of the manager. Satisfied by
// *realtime.Channel.
type PushChannel interface {
	Connect(ctx context.Context) error
	Disconnect()
	Subscribe(h realtime.Handler) func()
	State() models.ConnectionState
}
