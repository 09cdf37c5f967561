package network

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	ErrSendQueueFull = errors.New("send queue full")
	ErrClosed        = errors.New("connection closed")
)

const (
	sendQueueLen = 256
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 25 * time.Second
	maxFrameSize = 4096
)

// wsConn adapts a websocket to room.Conn. Send never blocks: frames are
// queued for the write pump and a full queue is reported as an error.
type wsConn struct {
	conn    *websocket.Conn
	msgType int
	send    chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func newWSConn(conn *websocket.Conn, binary bool) *wsConn {
	msgType := websocket.TextMessage
	if binary {
		msgType = websocket.BinaryMessage
	}
	return &wsConn{
		conn:    conn,
		msgType: msgType,
		send:    make(chan []byte, sendQueueLen),
		done:    make(chan struct{}),
	}
}

func (c *wsConn) Send(b []byte) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	select {
	case c.send <- b:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// Close stops the write pump, which then closes the socket and unblocks the
// read loop.
func (c *wsConn) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

func (c *wsConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case b := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(c.msgType, b); err != nil {
				log.Println("write:", err)
				c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}
