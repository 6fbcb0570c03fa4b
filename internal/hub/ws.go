package hub

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	pkgLog "sitekit-api/pkg/log"
)

const defaultSendBuffer = 16

// WSConfig tunes the WebSocket transport behind a connection.
type WSConfig struct {
	// PingInterval is how often the server pings the peer. Must be
	// shorter than PongWait.
	PingInterval time.Duration

	// PongWait is how long to wait for any peer traffic before the read
	// side gives up.
	PongWait time.Duration

	// WriteWait bounds a single write to the peer.
	WriteWait time.Duration

	// MaxMessageSize caps inbound frames. Clients are not expected to
	// send anything meaningful; this guards against abuse.
	MaxMessageSize int64
}

// wsConnection adapts one gorilla/websocket connection to the Connection
// capability. Writes are funneled through a buffered channel into a single
// writer goroutine; Send never blocks on a slow peer, it fails with
// ErrSendBufferFull instead and the hub prunes the connection.
type wsConnection struct {
	l   pkgLog.Logger
	cfg WSConfig

	id   string
	conn *websocket.Conn

	send   chan []byte
	closed chan struct{}

	closeOnce sync.Once

	mu        sync.Mutex
	observers []func()
	done      bool
}

// NewWSConnection wraps an upgraded websocket connection. Serve must be
// called to start the read/write pumps.
func NewWSConnection(l pkgLog.Logger, conn *websocket.Conn, cfg WSConfig) Serveable {
	return &wsConnection{
		l:      l,
		cfg:    cfg,
		id:     uuid.NewString(),
		conn:   conn,
		send:   make(chan []byte, defaultSendBuffer),
		closed: make(chan struct{}),
	}
}

// Serveable is the extra surface the upgrade handler needs beyond what the
// hub sees: it runs the connection's pumps until the peer goes away.
type Serveable interface {
	Connection

	// Serve blocks until the connection closes or ctx is canceled.
	Serve(ctx context.Context)
}

func (c *wsConnection) ID() string {
	return c.id
}

// Send queues one payload for the writer goroutine. It fails fast when the
// connection is closed or the peer stopped draining its buffer.
func (c *wsConnection) Send(payload []byte) error {
	select {
	case <-c.closed:
		return ErrConnectionClosed
	default:
	}

	select {
	case c.send <- payload:
		return nil
	case <-c.closed:
		return ErrConnectionClosed
	default:
		return ErrSendBufferFull
	}
}

// Close tears down the transport and fires the close observers exactly once.
func (c *wsConnection) Close() error {
	c.closeOnce.Do(func() {
		close(c.closed)
		_ = c.conn.Close()

		c.mu.Lock()
		c.done = true
		observers := c.observers
		c.observers = nil
		c.mu.Unlock()

		for _, fn := range observers {
			fn()
		}
	})
	return nil
}

// OnClose registers fn to run on close. Runs fn immediately if the
// connection already closed, so a late observer is never lost.
func (c *wsConnection) OnClose(fn func()) {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		fn()
		return
	}
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

// Serve runs the write pump in the background and blocks on the read pump.
// Either pump exiting closes the connection, which in turn unregisters it
// from the hub through the close observer.
func (c *wsConnection) Serve(ctx context.Context) {
	go c.writePump()
	c.readPump(ctx)
}

// readPump consumes inbound frames. Clients do not send meaningful data;
// reading is required to process control frames and to notice the peer
// going away. Pongs extend the read deadline.
func (c *wsConnection) readPump(ctx context.Context) {
	defer func() {
		_ = c.Close()
	}()

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.l.Debugf(ctx, "internal.hub.wsConnection.readPump: %s: %v", c.id, err)
			}
			return
		}
	}
}

// writePump drains the send channel into the peer and keeps the
// connection alive with periodic pings.
func (c *wsConnection) writePump() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.closed:
			return
		}
	}
}
