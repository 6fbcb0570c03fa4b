package hub

import (
	"context"
	"encoding/json"
	"sync"

	pkgLog "sitekit-api/pkg/log"
)

// Hub owns the set of live push connections for the process and fans
// notification payloads out to all of them. Membership is self-healing:
// both a connection's own close event and a failed send funnel into the
// same idempotent Unregister, so no reconciliation sweep is needed.
//
// The hub holds no external resources. It is constructed once at startup
// and handed to the handlers that need it; there is no package-level
// instance.
type Hub struct {
	l pkgLog.Logger

	mu    sync.RWMutex
	conns map[Connection]struct{}
}

// New creates an empty hub.
func New(l pkgLog.Logger) *Hub {
	return &Hub{
		l:     l,
		conns: make(map[Connection]struct{}),
	}
}

// Register adds conn to the live set. Registering an already-registered
// connection is a no-op. The hub attaches its own close observer so that
// unregistration does not depend on the broadcast path noticing failure
// first. Never fails.
func (h *Hub) Register(conn Connection) {
	h.mu.Lock()
	if _, ok := h.conns[conn]; ok {
		h.mu.Unlock()
		return
	}
	h.conns[conn] = struct{}{}
	total := len(h.conns)
	h.mu.Unlock()

	conn.OnClose(func() {
		h.Unregister(conn)
	})

	h.l.Debugf(context.Background(), "internal.hub.Register: connection %s registered, %d live", conn.ID(), total)
}

// Unregister removes conn from the live set if present. Removing an absent
// or already-removed connection is a silent no-op: a connection may be
// unregistered twice, once by its close event and once by a failed send.
// Never fails.
func (h *Hub) Unregister(conn Connection) {
	h.mu.Lock()
	if _, ok := h.conns[conn]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.conns, conn)
	total := len(h.conns)
	h.mu.Unlock()

	h.l.Debugf(context.Background(), "internal.hub.Unregister: connection %s removed, %d live", conn.ID(), total)
}

// Broadcast encodes payload exactly once and delivers the same bytes to
// every currently-registered connection. Pre-formed text ([]byte or string)
// is sent as-is; anything else is canonicalized to JSON. A recipient whose
// send fails is unregistered and closed, and delivery continues to the
// rest. Failures are logged, never surfaced: the worst outcome is zero
// deliveries, indistinguishable from an empty registry.
//
// Fan-out is synchronous over a membership snapshot. Connections added
// concurrently may or may not receive this broadcast. There is no queue,
// no retry, no batching.
func (h *Hub) Broadcast(ctx context.Context, payload any) {
	data, err := encodePayload(payload)
	if err != nil {
		h.l.Errorf(ctx, "internal.hub.Broadcast.encodePayload: %v", err)
		return
	}

	h.mu.RLock()
	snapshot := make([]Connection, 0, len(h.conns))
	for conn := range h.conns {
		snapshot = append(snapshot, conn)
	}
	h.mu.RUnlock()

	for _, conn := range snapshot {
		if err := conn.Send(data); err != nil {
			h.l.Warnf(ctx, "internal.hub.Broadcast: send to %s failed, pruning: %v", conn.ID(), err)
			h.Unregister(conn)
			_ = conn.Close()
		}
	}
}

// Size returns the current count of live connections. Diagnostics only.
func (h *Hub) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// encodePayload turns payload into the single wire encoding shared by all
// recipients of one broadcast call.
func encodePayload(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case []byte:
		return p, nil
	case string:
		return []byte(p), nil
	default:
		return json.Marshal(p)
	}
}
