// Package xconn implements the round-trip primitive over a display
// socket: sequence-numbered request issue, blocking reply collection, and
// per-error-code handler dispatch.
package xconn

import (
	"encoding/binary"
	"io"
	"net"
	"sync"

	"go.uber.org/zap"

	"github.com/duskwm/xutil"
	"github.com/duskwm/xutil/errors"
	"github.com/duskwm/xutil/wire"
	"github.com/duskwm/xutil/xerror"
)

// Conn is a connection to a display server. It implements xutil.Conn and
// xerror.HandlerTable.
//
// A Conn serializes its callers: requests are issued and replies
// collected under one lock, so from any caller's perspective operations
// are blocking and sequential. Collect has no timeout; hang policy
// belongs to whoever owns the socket deadline.
type Conn struct {
	mu       sync.Mutex
	sock     net.Conn
	setup    *Setup
	screen   int
	seq      uint16
	pending  map[uint16]bool
	buffered map[uint16][]byte
	failed   map[uint16]*errors.Error
	handlers [256]xerror.Handler
	onEvent  func(raw []byte)
	closed   bool
	log      *zap.Logger
}

// Dial connects to the display named by display (for example ":0" or
// "host:2.0") and performs the setup handshake.
func Dial(display string) (*Conn, error) {
	da, err := parseDisplay(display)
	if err != nil {
		return nil, err
	}
	sock, err := net.Dial(da.network, da.addr)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConnect, errors.KindAbsentReply, err, "dial "+da.addr)
	}
	c, err := New(sock)
	if err != nil {
		sock.Close()
		return nil, err
	}
	c.screen = da.screen
	return c, nil
}

// New wraps an already-open socket and performs the setup handshake on
// it. The Conn owns the socket from here on.
func New(sock net.Conn) (*Conn, error) {
	setup, err := handshake(sock)
	if err != nil {
		return nil, err
	}

	c := &Conn{
		sock:     sock,
		setup:    setup,
		pending:  make(map[uint16]bool),
		buffered: make(map[uint16][]byte),
		failed:   make(map[uint16]*errors.Error),
		log:      Logger(),
	}
	c.log.Debug("connected",
		zap.Uint16("protocol_major", setup.ProtocolMajor),
		zap.Uint16("protocol_minor", setup.ProtocolMinor),
		zap.Uint32("resource_id_base", setup.ResourceIDBase))
	return c, nil
}

// Setup returns the parsed setup reply.
func (c *Conn) Setup() *Setup {
	return c.setup
}

// Screen returns the screen number from the display string.
func (c *Conn) Screen() int {
	return c.screen
}

// Close shuts the socket down. Collect calls blocked on the socket fail.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.sock.Close()
}

// SetErrorHandler registers h for one error code, replacing any earlier
// registration for that code. Use xerror.InstallCatchAll first to cover
// all 256 codes, then override individual ones.
//
// Handlers run on the collecting goroutine while the connection is held;
// they must not call back into the Conn.
func (c *Conn) SetErrorHandler(code uint8, h xerror.Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[code] = h
}

// SetEventHandler registers h for events read while collecting replies.
// Without one, events are logged and dropped.
func (c *Conn) SetEventHandler(h func(raw []byte)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvent = h
}

// Issue sends an encoded request without waiting for its reply and
// returns the cookie to collect it with.
func (c *Conn) Issue(req []byte) (xutil.Cookie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return xutil.Cookie{}, errors.Closed(errors.PhaseRequest)
	}
	if _, err := c.sock.Write(req); err != nil {
		return xutil.Cookie{}, errors.Wrap(errors.PhaseRequest, errors.KindShortWrite, err, "send request")
	}

	c.seq++
	c.pending[c.seq] = true
	c.log.Debug("issued request",
		zap.Uint8("opcode", req[0]),
		zap.Uint16("seq", c.seq))
	return xutil.Cookie{Seq: c.seq}, nil
}

// Collect blocks until the reply for ck arrives and returns its raw
// bytes. It returns an error when the server answered with a protocol
// error, when the cookie was never issued or already redeemed, or when
// the socket fails.
//
// Errors and replies for other in-flight cookies encountered on the way
// are dispatched or buffered, never lost.
func (c *Conn) Collect(ck xutil.Cookie) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for {
		if raw, ok := c.buffered[ck.Seq]; ok {
			delete(c.buffered, ck.Seq)
			delete(c.pending, ck.Seq)
			return raw, nil
		}
		if e, ok := c.failed[ck.Seq]; ok {
			delete(c.failed, ck.Seq)
			delete(c.pending, ck.Seq)
			return nil, e
		}
		if !c.pending[ck.Seq] {
			return nil, errors.UnknownCookie(ck.Seq)
		}
		if c.closed {
			return nil, errors.Closed(errors.PhaseReply)
		}

		raw, err := c.readFrame()
		if err != nil {
			return nil, errors.AbsentReply(errors.PhaseReply, "request", err)
		}

		switch raw[0] {
		case wire.FrameError:
			c.dispatchError(raw)
		case wire.FrameReply:
			seq := binary.LittleEndian.Uint16(raw[2:4])
			if c.pending[seq] {
				c.buffered[seq] = raw
			} else {
				c.log.Debug("dropping reply with no pending request", zap.Uint16("seq", seq))
			}
		default:
			if c.onEvent != nil {
				c.onEvent(raw)
			} else {
				c.log.Debug("dropping event", zap.Uint8("code", raw[0]&0x7f))
			}
		}
	}
}

// readFrame reads one 32-byte frame plus any reply extension.
func (c *Conn) readFrame() ([]byte, error) {
	head := make([]byte, wire.FrameSize)
	if _, err := io.ReadFull(c.sock, head); err != nil {
		return nil, err
	}
	total, err := wire.FrameLen(head)
	if err != nil {
		return nil, err
	}
	if total == wire.FrameSize {
		return head, nil
	}
	raw := make([]byte, total)
	copy(raw, head)
	if _, err := io.ReadFull(c.sock, raw[wire.FrameSize:]); err != nil {
		return nil, err
	}
	return raw, nil
}

// dispatchError routes a raw error record to the handler registered for
// its code and marks the failing request so its Collect reports the
// error.
func (c *Conn) dispatchError(raw []byte) {
	rec, err := wire.ParseErrorRecord(raw)
	if err != nil {
		c.log.Debug("malformed error record", zap.Error(err))
		return
	}

	c.log.Debug("protocol error",
		zap.String("error", wire.ErrorLabel(rec.Code)),
		zap.String("request", wire.RequestLabel(rec.Major)),
		zap.Uint16("seq", rec.Sequence))

	if h := c.handlers[rec.Code]; h != nil {
		h(raw)
	}
	if c.pending[rec.Sequence] {
		c.failed[rec.Sequence] = errors.ErrorReply(rec.Code, rec.Major, rec.Sequence)
	}
}
