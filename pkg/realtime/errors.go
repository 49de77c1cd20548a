package realtime

import "errors"

var (
	// ErrChannelClosed is returned by Send while the channel is
	// disconnected. The message is not queued.
	ErrChannelClosed = errors.New("channel closed")
)
