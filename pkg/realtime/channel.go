// Package realtime manages the single push connection to the hospital
// service and fans inbound messages out to subscribers.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mfreeman451/wardwatch/pkg/models"
)

// Handler receives one inbound message. Handlers run synchronously in
// registration order; a slow handler delays the next message.
type Handler func(msg json.RawMessage)

type subscriber struct {
	id      int
	handler Handler
}

// Channel maintains at most one logical websocket connection. Reconnection
// is caller-driven: call Connect again after a drop. All reconnect logic
// lives in Connect, so adding automatic backoff later is a local change.
type Channel struct {
	url  string
	dial DialFunc

	mu            sync.RWMutex
	conn          Conn
	connected     bool
	generation    int // guards against stale read pumps touching state
	subs          []subscriber
	nextSubID     int
	lastMessageAt time.Time
}

// NewChannel creates a channel for the given websocket URL.
func NewChannel(url string) *Channel {
	return &Channel{url: url, dial: DefaultDial}
}

// NewChannelWithDialer is used by tests to inject a fake connection.
func NewChannelWithDialer(url string, dial DialFunc) *Channel {
	return &Channel{url: url, dial: dial}
}

// Connect establishes the connection and starts the read pump. Calling
// Connect while already connected is a no-op.
func (c *Channel) Connect(ctx context.Context) error {
	c.mu.Lock()

	if c.connected {
		c.mu.Unlock()
		return nil
	}

	c.mu.Unlock()

	conn, err := c.dial(ctx, c.url)
	if err != nil {
		return fmt.Errorf("failed to connect realtime channel: %w", err)
	}

	c.mu.Lock()

	if c.connected {
		// Lost a connect race with another caller; keep theirs.
		c.mu.Unlock()

		if cerr := conn.Close(); cerr != nil {
			log.Printf("Error closing redundant connection: %v", cerr)
		}

		return nil
	}

	c.conn = conn
	c.connected = true
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	go c.readPump(conn, gen)

	return nil
}

// Disconnect closes the connection. Send fails with ErrChannelClosed until
// the next Connect.
func (c *Channel) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.connected = false
	c.mu.Unlock()

	if conn != nil {
		if err := conn.Close(); err != nil {
			log.Printf("Error closing realtime connection: %v", err)
		}
	}
}

// Subscribe registers a handler for every inbound message and returns its
// unsubscribe function. Safe to call while disconnected.
func (c *Channel) Subscribe(h Handler) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs = append(c.subs, subscriber{id: id, handler: h})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				break
			}
		}
	}
}

// Send marshals v to JSON and forwards it on the channel.
func (c *Channel) Send(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal outbound message: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected || c.conn == nil {
		return fmt.Errorf("%w: send on disconnected channel", ErrChannelClosed)
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// State reports the current connection state for the view.
func (c *Channel) State() models.ConnectionState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return models.ConnectionState{
		Connected:     c.connected,
		LastMessageAt: c.lastMessageAt,
	}
}

func (c *Channel) readPump(conn Conn, gen int) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			// Only the pump for the live connection may flip state;
			// a pump left over from before a reconnect must not.
			if c.generation == gen {
				c.connected = false
				c.conn = nil
			}
			c.mu.Unlock()

			log.Printf("Realtime connection closed: %v", err)

			return
		}

		c.mu.Lock()
		c.lastMessageAt = time.Now()
		subs := make([]subscriber, len(c.subs))
		copy(subs, c.subs)
		c.mu.Unlock()

		for _, s := range subs {
			s.handler(json.RawMessage(data))
		}
	}
}
