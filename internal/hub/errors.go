package hub

import "errors"

var (
	// ErrConnectionClosed is returned by Send after the connection closed.
	ErrConnectionClosed = errors.New("connection closed")

	// ErrSendBufferFull is returned by Send when the peer is not draining
	// its outbound queue fast enough.
	ErrSendBufferFull = errors.New("send buffer full")
)
