package fetch

import (
	"context"

	"github.com/mfreeman451/wardwatch/pkg/models"
)

//go:generate mockgen -destination=mock_client.go -package=fetch github.com/mfreeman451/wardwatch/pkg/fetch Client

// Client is the read/write surface of the remote hospital service. All
// reads are idempotent; Approve/Reject/TriggerCrisis/RunAgentWorkflow are
// commands. No method retries internally.
type Client interface {
	Beds(ctx context.Context, department string) (models.BedAvailability, error)
	Staff(ctx context.Context, shift string) (*models.StaffSnapshot, error)
	Inventory(ctx context.Context, criticalOnly bool) ([]models.InventoryItem, error)
	LatestPrediction(ctx context.Context) (*models.SurgePrediction, error)
	PredictionHistory(ctx context.Context, limit int) ([]models.SurgePrediction, error)
	Recommendations(ctx context.Context, status string) ([]models.Recommendation, error)
	ApproveRecommendation(ctx context.Context, id string) error
	RejectRecommendation(ctx context.Context, id, reason string) error
	CostSavings(ctx context.Context) (*models.CostSavings, error)
	AQI(ctx context.Context) (*models.AQIReading, error)
	TriggerCrisis(ctx context.Context, crisisType string) (*models.CrisisAck, error)
	RunAgentWorkflow(ctx context.Context) error
}
