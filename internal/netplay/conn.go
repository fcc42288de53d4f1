// Package netplay carries a game between two peers over TCP. The protocol
// has no handshake and no framing beyond the move itself: every move is
// exactly four ASCII bytes such as "A1A3". The listening side plays red, the
// dialing side plays blue.
package netplay

import (
	"context"
	"io"
	"net"

	"github.com/pkg/errors"

	"krojanty/internal/krojanty"
)

const FrameSize = 4

var (
	ErrBadFrame   = errors.New("bad move frame")
	ErrPeerClosed = errors.New("peer closed the connection")
)

type Conn struct {
	conn net.Conn
}

func NewConn(c net.Conn) *Conn { return &Conn{conn: c} }

// Listen accepts exactly one peer on addr, then stops listening.
func Listen(ctx context.Context, addr string) (*Conn, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen %s", addr)
	}
	return Accept(ctx, ln)
}

// Accept waits for one peer on ln and closes ln afterwards. Cancelling ctx
// aborts the wait.
func Accept(ctx context.Context, ln net.Listener) (*Conn, error) {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			ln.Close()
		case <-stop:
		}
	}()

	c, err := ln.Accept()
	ln.Close()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(err, "accept")
	}
	return NewConn(c), nil
}

func Dial(ctx context.Context, addr string) (*Conn, error) {
	var d net.Dialer
	c, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", addr)
	}
	return NewConn(c), nil
}

func (c *Conn) SendMove(m krojanty.Move) error {
	if m.IsNone() {
		return errors.Wrap(ErrBadFrame, "cannot send an empty move")
	}
	frame := m.String()
	if len(frame) != FrameSize {
		return errors.Wrapf(ErrBadFrame, "move %+v", m)
	}
	if _, err := io.WriteString(c.conn, frame); err != nil {
		return errors.Wrap(err, "send move")
	}
	return nil
}

// RecvMove blocks for the next frame. A frame that does not parse returns
// ErrBadFrame; a closed stream returns ErrPeerClosed.
func (c *Conn) RecvMove() (krojanty.Move, error) {
	var buf [FrameSize]byte
	if _, err := io.ReadFull(c.conn, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return krojanty.NoMove, ErrPeerClosed
		}
		return krojanty.NoMove, errors.Wrap(err, "receive move")
	}
	m, err := krojanty.ParseMove(string(buf[:]))
	if err != nil {
		return krojanty.NoMove, errors.Wrapf(ErrBadFrame, "%q: %v", buf[:], err)
	}
	return m, nil
}

func (c *Conn) RemoteAddr() net.Addr { return c.conn.RemoteAddr() }

func (c *Conn) Close() error { return c.conn.Close() }
