package hub

// Connection is the narrow capability the hub needs from a push channel.
// The hub never sees the underlying transport; it only sends bytes, closes,
// and observes the close event. Implementations must make Send fail fast
// once the channel is dead so a stuck peer cannot stall a fan-out.
type Connection interface {
	// ID identifies the connection for logging and diagnostics.
	ID() string

	// Send delivers one payload. It must return an error, not block
	// indefinitely, when the connection can no longer accept writes.
	Send(payload []byte) error

	// Close tears down the underlying transport. Safe to call more than once.
	Close() error

	// OnClose registers fn to run when the connection closes, whatever the
	// cause. If the connection is already closed, fn runs immediately.
	OnClose(fn func())
}
