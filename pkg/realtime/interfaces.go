package realtime

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
)

// Conn is the subset of a websocket connection the channel needs. Satisfied
// by *websocket.Conn.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// DialFunc establishes a websocket connection to the given URL.
type DialFunc func(ctx context.Context, url string) (Conn, error)

// DefaultDial dials with gorilla's default dialer.
func DefaultDial(ctx context.Context, url string) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial failed: %w", err)
	}

	return conn, nil
}
