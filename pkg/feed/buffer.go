package feed

import (
	"sync"

	"github.com/mfreeman451/wardwatch/pkg/models"
)

// eventBuffer is a fixed-capacity FIFO ring of log events. When full, each
// append evicts the oldest entry.
type eventBuffer struct {
	mu     sync.RWMutex
	events []models.LogEvent
	pos    int64 // total events ever written
	size   int64
}

func newEventBuffer(size int) *eventBuffer {
	return &eventBuffer{
		events: make([]models.LogEvent, size),
		size:   int64(size),
	}
}

// Add appends an event, evicting the oldest when the ring is full.
func (b *eventBuffer) Add(e models.LogEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events[b.pos%b.size] = e
	b.pos++
}

// Events returns a copy of the buffered events, oldest first.
func (b *eventBuffer) Events() []models.LogEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := b.pos
	if count > b.size {
		count = b.size
	}

	out := make([]models.LogEvent, 0, count)

	for i := int64(0); i < count; i++ {
		idx := (b.pos - count + i) % b.size
		out = append(out, b.events[idx])
	}

	return out
}

// Len reports the number of buffered events.
func (b *eventBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.pos > b.size {
		return int(b.size)
	}

	return int(b.pos)
}
