package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	pkgLog "sitekit-api/pkg/log"
)

// fakeConn is an in-memory Connection for exercising the hub without a
// real transport.
type fakeConn struct {
	id string

	mu        sync.Mutex
	received  [][]byte
	sendErr   error
	closed    bool
	observers []func()
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	buf := make([]byte, len(payload))
	copy(buf, payload)
	c.received = append(c.received, buf)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	observers := c.observers
	c.observers = nil
	c.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
	return nil
}

func (c *fakeConn) OnClose(fn func()) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		fn()
		return
	}
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

func (c *fakeConn) failNextSends(err error) {
	c.mu.Lock()
	c.sendErr = err
	c.mu.Unlock()
}

func (c *fakeConn) messages() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.received))
	copy(out, c.received)
	return out
}

func newTestHub() *Hub {
	return New(pkgLog.NewNoop())
}

func TestRegisterIdempotent(t *testing.T) {
	h := newTestHub()
	conn := newFakeConn("a")

	h.Register(conn)
	if got := h.Size(); got != 1 {
		t.Fatalf("size after first register = %d, want 1", got)
	}

	h.Register(conn)
	if got := h.Size(); got != 1 {
		t.Fatalf("size after duplicate register = %d, want 1", got)
	}
}

func TestUnregisterIdempotent(t *testing.T) {
	h := newTestHub()
	conn := newFakeConn("a")

	// Unregistering a never-registered handle is a silent no-op.
	h.Unregister(conn)
	if got := h.Size(); got != 0 {
		t.Fatalf("size = %d, want 0", got)
	}

	h.Register(conn)
	h.Unregister(conn)
	if got := h.Size(); got != 0 {
		t.Fatalf("size after unregister = %d, want 0", got)
	}

	// Double removal must be safe and silent.
	h.Unregister(conn)
	if got := h.Size(); got != 0 {
		t.Fatalf("size after double unregister = %d, want 0", got)
	}
}

func TestBroadcastFanOutComplete(t *testing.T) {
	h := newTestHub()
	conns := make([]*fakeConn, 5)
	for i := range conns {
		conns[i] = newFakeConn(fmt.Sprintf("conn-%d", i))
		h.Register(conns[i])
	}

	payload := map[string]any{"id": 1, "message": "hello", "type": "info"}
	h.Broadcast(context.Background(), payload)

	want, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	for _, conn := range conns {
		msgs := conn.messages()
		if len(msgs) != 1 {
			t.Fatalf("%s received %d messages, want exactly 1", conn.ID(), len(msgs))
		}
		if string(msgs[0]) != string(want) {
			t.Fatalf("%s received %q, want %q", conn.ID(), msgs[0], want)
		}
	}
}

func TestBroadcastPartialFailureIsolation(t *testing.T) {
	h := newTestHub()
	conns := make([]*fakeConn, 4)
	for i := range conns {
		conns[i] = newFakeConn(fmt.Sprintf("conn-%d", i))
		h.Register(conns[i])
	}
	failing := conns[2]
	failing.failNextSends(errors.New("broken pipe"))

	h.Broadcast(context.Background(), "payload")

	if got := h.Size(); got != 3 {
		t.Fatalf("size after partial failure = %d, want 3", got)
	}
	for i, conn := range conns {
		msgs := conn.messages()
		if conn == failing {
			if len(msgs) != 0 {
				t.Fatalf("failing connection recorded %d messages, want 0", len(msgs))
			}
			continue
		}
		if len(msgs) != 1 || string(msgs[0]) != "payload" {
			t.Fatalf("conn-%d got %v, want exactly one %q", i, msgs, "payload")
		}
	}
}

func TestBroadcastPrunedConnectionNotRetried(t *testing.T) {
	h := newTestHub()
	good := newFakeConn("good")
	bad := newFakeConn("bad")
	h.Register(good)
	h.Register(bad)
	bad.failNextSends(errors.New("send failed"))

	h.Broadcast(context.Background(), "first")
	h.Broadcast(context.Background(), "second")

	if got := len(bad.messages()); got != 0 {
		t.Fatalf("pruned connection received %d messages, want 0", got)
	}
	if got := len(good.messages()); got != 2 {
		t.Fatalf("surviving connection received %d messages, want 2", got)
	}
}

func TestCloseEventSelfPrunes(t *testing.T) {
	h := newTestHub()
	conn := newFakeConn("a")
	h.Register(conn)

	if err := conn.Close(); err != nil {
		t.Fatal(err)
	}
	if got := h.Size(); got != 0 {
		t.Fatalf("size after close event = %d, want 0", got)
	}

	h.Broadcast(context.Background(), "after close")
	if got := len(conn.messages()); got != 0 {
		t.Fatalf("closed connection received %d messages, want 0", got)
	}
}

func TestBroadcastCanonicalEncoding(t *testing.T) {
	type record struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	}

	h := newTestHub()
	a := newFakeConn("a")
	b := newFakeConn("b")
	h.Register(a)
	h.Register(b)

	h.Broadcast(context.Background(), record{Message: "hi", Type: "info"})

	aMsgs, bMsgs := a.messages(), b.messages()
	if len(aMsgs) != 1 || len(bMsgs) != 1 {
		t.Fatalf("expected one message per recipient, got %d and %d", len(aMsgs), len(bMsgs))
	}
	if string(aMsgs[0]) != string(bMsgs[0]) {
		t.Fatalf("recipients diverged: %q vs %q", aMsgs[0], bMsgs[0])
	}

	var decoded record
	if err := json.Unmarshal(aMsgs[0], &decoded); err != nil {
		t.Fatalf("delivered payload is not valid JSON: %v", err)
	}
	if decoded.Message != "hi" || decoded.Type != "info" {
		t.Fatalf("decoded payload = %+v", decoded)
	}
}

func TestBroadcastPreformedTextPassedThrough(t *testing.T) {
	h := newTestHub()
	conn := newFakeConn("a")
	h.Register(conn)

	h.Broadcast(context.Background(), []byte(`{"already":"encoded"}`))

	msgs := conn.messages()
	if len(msgs) != 1 || string(msgs[0]) != `{"already":"encoded"}` {
		t.Fatalf("pre-formed payload mangled: %v", msgs)
	}
}

// Register A, B, C; broadcast with B failing; expect A and C to each
// receive the exact JSON once and B to be removed.
func TestBroadcastScenarioThreeConnectionsOneFailure(t *testing.T) {
	h := newTestHub()
	a := newFakeConn("A")
	b := newFakeConn("B")
	c := newFakeConn("C")
	h.Register(a)
	h.Register(b)
	h.Register(c)

	if got := h.Size(); got != 3 {
		t.Fatalf("size = %d, want 3", got)
	}

	b.failNextSends(errors.New("write: connection reset"))

	payload := `{"id":1,"message":"test","type":"success","created_at":"2024-01-01T00:00:00Z"}`
	h.Broadcast(context.Background(), payload)

	if got := h.Size(); got != 2 {
		t.Fatalf("size after broadcast = %d, want 2", got)
	}
	for _, conn := range []*fakeConn{a, c} {
		msgs := conn.messages()
		if len(msgs) != 1 || string(msgs[0]) != payload {
			t.Fatalf("connection %s: got %v, want exactly one %q", conn.ID(), msgs, payload)
		}
	}
	if got := len(b.messages()); got != 0 {
		t.Fatalf("connection B recorded %d messages, want 0", got)
	}

	// B must stay gone on subsequent broadcasts.
	h.Broadcast(context.Background(), "again")
	if got := h.Size(); got != 2 {
		t.Fatalf("size = %d, want 2", got)
	}
}

func TestBroadcastNoRecipients(t *testing.T) {
	h := newTestHub()
	// Must not panic or error with an empty registry.
	h.Broadcast(context.Background(), "nobody home")
	if got := h.Size(); got != 0 {
		t.Fatalf("size = %d, want 0", got)
	}
}

func TestConcurrentRegisterBroadcastUnregister(t *testing.T) {
	h := newTestHub()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		conn := newFakeConn(fmt.Sprintf("conn-%d", i))
		wg.Add(3)
		go func() {
			defer wg.Done()
			h.Register(conn)
		}()
		go func() {
			defer wg.Done()
			h.Broadcast(context.Background(), "concurrent")
		}()
		go func() {
			defer wg.Done()
			h.Unregister(conn)
		}()
	}
	wg.Wait()

	if got := h.Size(); got > 50 {
		t.Fatalf("size = %d, want at most 50", got)
	}
}
