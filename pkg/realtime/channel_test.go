package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConnClosed = errors.New("connection closed")

// fakeConn is an in-memory Conn for driving the channel in tests.
type fakeConn struct {
	in        chan []byte
	closeOnce sync.Once

	mu     sync.Mutex
	writes [][]byte
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan []byte, 16)}
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	data, ok := <-c.in
	if !ok {
		return 0, nil, errConnClosed
	}

	return websocket.TextMessage, data, nil
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writes = append(c.writes, data)

	return nil
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.in) })
	return nil
}

func (c *fakeConn) writeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.writes)
}

type fakeDialer struct {
	mu    sync.Mutex
	conns []*fakeConn
	fail  bool
}

func (d *fakeDialer) dial(_ context.Context, _ string) (Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fail {
		return nil, errConnClosed
	}

	conn := newFakeConn()
	d.conns = append(d.conns, conn)

	return conn, nil
}

func (d *fakeDialer) dialCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.conns)
}

func (d *fakeDialer) latest() *fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.conns[len(d.conns)-1]
}

func newTestChannel() (*Channel, *fakeDialer) {
	d := &fakeDialer{}
	return NewChannelWithDialer("ws://test/ws", d.dial), d
}

func TestSendBeforeConnect(t *testing.T) {
	c, _ := newTestChannel()

	err := c.Send(map[string]string{"type": "ping"})

	assert.ErrorIs(t, err, ErrChannelClosed)
}

func TestSendDisconnectReconnect(t *testing.T) {
	c, d := newTestChannel()
	ctx := context.Background()

	require.NoError(t, c.Connect(ctx))
	require.NoError(t, c.Send(map[string]string{"type": "ping"}))
	assert.Equal(t, 1, d.latest().writeCount())

	c.Disconnect()

	err := c.Send(map[string]string{"type": "ping"})
	require.ErrorIs(t, err, ErrChannelClosed)

	// Reconnecting restores send.
	require.NoError(t, c.Connect(ctx))
	require.NoError(t, c.Send(map[string]string{"type": "ping"}))

	assert.Equal(t, 2, d.dialCount())
	assert.Equal(t, 1, d.latest().writeCount())
}

func TestConnectIdempotent(t *testing.T) {
	c, d := newTestChannel()
	ctx := context.Background()

	require.NoError(t, c.Connect(ctx))
	require.NoError(t, c.Connect(ctx))

	assert.Equal(t, 1, d.dialCount())
}

func TestConnectFailurePropagates(t *testing.T) {
	d := &fakeDialer{fail: true}
	c := NewChannelWithDialer("ws://test/ws", d.dial)

	err := c.Connect(context.Background())

	require.Error(t, err)
	assert.False(t, c.State().Connected)
}

func TestSubscribersReceiveInArrivalOrder(t *testing.T) {
	c, d := newTestChannel()

	var (
		mu   sync.Mutex
		got1 []string
		got2 []string
	)

	c.Subscribe(func(msg json.RawMessage) {
		mu.Lock()
		got1 = append(got1, string(msg))
		mu.Unlock()
	})
	c.Subscribe(func(msg json.RawMessage) {
		mu.Lock()
		got2 = append(got2, string(msg))
		mu.Unlock()
	})

	require.NoError(t, c.Connect(context.Background()))

	conn := d.latest()
	conn.in <- []byte(`{"seq":1}`)
	conn.in <- []byte(`{"seq":2}`)
	conn.in <- []byte(`{"seq":3}`)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got1) == 3 && len(got2) == 3
	}, time.Second, time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	want := []string{`{"seq":1}`, `{"seq":2}`, `{"seq":3}`}
	assert.Equal(t, want, got1)
	assert.Equal(t, want, got2)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	c, d := newTestChannel()

	var (
		mu    sync.Mutex
		count int
	)

	unsub := c.Subscribe(func(json.RawMessage) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	require.NoError(t, c.Connect(context.Background()))

	conn := d.latest()
	conn.in <- []byte(`{}`)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count == 1
	}, time.Second, time.Millisecond)

	unsub()

	conn.in <- []byte(`{}`)
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count)
}

func TestConnectionStateTracksMessages(t *testing.T) {
	c, d := newTestChannel()

	assert.False(t, c.State().Connected)
	assert.True(t, c.State().LastMessageAt.IsZero())

	require.NoError(t, c.Connect(context.Background()))
	assert.True(t, c.State().Connected)

	d.latest().in <- []byte(`{}`)

	require.Eventually(t, func() bool {
		return !c.State().LastMessageAt.IsZero()
	}, time.Second, time.Millisecond)

	c.Disconnect()
	assert.False(t, c.State().Connected)
}

func TestRemoteCloseMarksDisconnected(t *testing.T) {
	c, d := newTestChannel()

	require.NoError(t, c.Connect(context.Background()))

	// Remote drop: the read pump observes the error and flips the state
	// for the view; no automatic reconnect happens.
	require.NoError(t, d.latest().Close())

	require.Eventually(t, func() bool {
		return !c.State().Connected
	}, time.Second, time.Millisecond)

	assert.ErrorIs(t, c.Send(map[string]string{}), ErrChannelClosed)
	assert.Equal(t, 1, d.dialCount())
}
