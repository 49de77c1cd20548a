// Package workflow applies operator approve/reject intents to the
// recommendation set and reconciles them with the hospital service.
package workflow

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mfreeman451/wardwatch/pkg/fetch"
	"github.com/mfreeman451/wardwatch/pkg/models"
)

// Workflow owns the recommendation set. The set is replaced wholesale on
// scenario change and individual entries resolve only pending->approved or
// pending->rejected. The server call happens before any local mutation, so
// a failed command leaves the entry visibly pending for retry.
type Workflow struct {
	client fetch.Client

	mu    sync.RWMutex
	recs  map[string]*models.Recommendation
	order []string
}

// New creates a workflow issuing commands through client.
func New(client fetch.Client) *Workflow {
	return &Workflow{
		client: client,
		recs:   make(map[string]*models.Recommendation),
	}
}

// Replace swaps in a new recommendation set, discarding the old one.
func (w *Workflow) Replace(recs []models.Recommendation) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.recs = make(map[string]*models.Recommendation, len(recs))
	w.order = make([]string, 0, len(recs))

	for i := range recs {
		rec := recs[i]
		w.recs[rec.ID] = &rec
		w.order = append(w.order, rec.ID)
	}
}

// Approve resolves a pending recommendation as approved. The local status
// changes only after the service acknowledges the command.
func (w *Workflow) Approve(ctx context.Context, id string) error {
	if err := w.checkPending(id); err != nil {
		return err
	}

	if err := w.client.ApproveRecommendation(ctx, id); err != nil {
		return fmt.Errorf("approve command failed for %s: %w", id, err)
	}

	w.transition(id, models.StatusApproved, "")

	return nil
}

// Reject resolves a pending recommendation as rejected. A non-empty reason
// is required and validated before any network call.
func (w *Workflow) Reject(ctx context.Context, id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}

	if err := w.checkPending(id); err != nil {
		return err
	}

	if err := w.client.RejectRecommendation(ctx, id, reason); err != nil {
		return fmt.Errorf("reject command failed for %s: %w", id, err)
	}

	w.transition(id, models.StatusRejected, "Rejected: "+reason)

	return nil
}

// ApplyRemote merges a status change that originated on the server, such
// as a resolution pushed over the realtime channel. Only pending entries
// move, and only to a resolved status; unknown IDs, already-resolved
// entries and non-terminal updates are ignored. Reports whether local
// state changed.
func (w *Workflow) ApplyRemote(update models.Recommendation) bool {
	if update.Status != models.StatusApproved && update.Status != models.StatusRejected {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	rec, ok := w.recs[update.ID]
	if !ok || rec.Status != models.StatusPending {
		return false
	}

	rec.Status = update.Status
	rec.Outcome = update.Outcome

	return true
}

// All returns a copy of the recommendation set in insertion order.
func (w *Workflow) All() []models.Recommendation {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]models.Recommendation, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, *w.recs[id])
	}

	return out
}

// Pending returns only the unresolved recommendations.
func (w *Workflow) Pending() []models.Recommendation {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]models.Recommendation, 0, len(w.order))

	for _, id := range w.order {
		if w.recs[id].Status == models.StatusPending {
			out = append(out, *w.recs[id])
		}
	}

	return out
}

func (w *Workflow) checkPending(id string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	rec, ok := w.recs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if rec.Status != models.StatusPending {
		return fmt.Errorf("%w: %s is %s", ErrInvalidState, id, rec.Status)
	}

	return nil
}

func (w *Workflow) transition(id string, status models.RecommendationStatus, outcome string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rec, ok := w.recs[id]
	if !ok {
		// The set was replaced while the command was in flight; the
		// replacement is the current truth, nothing to record.
		return
	}

	rec.Status = status
	rec.Outcome = outcome
}
