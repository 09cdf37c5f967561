package network

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"tagarena/protocol"
	"tagarena/room"
)

const replyTimeout = 5 * time.Second

// Server bridges websocket sessions to the room. It never touches game
// state itself; every inbound frame becomes a room command.
type Server struct {
	room     *room.Room
	codec    protocol.Codec
	upgrader websocket.Upgrader
}

// NewServer builds a transport for rm. An empty allowedOrigin accepts any
// Origin header.
func NewServer(rm *room.Room, allowedOrigin string) *Server {
	s := &Server{room: rm, codec: rm.Codec()}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin: func(r *http.Request) bool {
			return allowedOrigin == "" || r.Header.Get("Origin") == allowedOrigin
		},
	}
	return s
}

func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	// Upgrade HTTP -> WebSocket
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	c := newWSConn(conn, s.codec.Binary())
	go c.writePump()
	defer c.Close()

	reply := make(chan room.JoinResult, 1)
	if !s.room.Submit(room.Join{Conn: c, Reply: reply}) {
		return
	}
	var res room.JoinResult
	select {
	case res = <-reply:
	case <-time.After(replyTimeout):
		log.Println("join: room did not reply")
		return
	}
	if res.PlayerID == "" {
		return
	}
	defer s.room.Submit(room.Leave{PlayerID: res.PlayerID})

	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read %s: %v", res.PlayerID, err)
			}
			return
		}
		if cmd, ok := parseCommand(s.codec, res.PlayerID, msg); ok {
			s.room.Submit(cmd)
		}
	}
}

// parseCommand turns one client frame into a room command. Anything
// malformed or unknown is dropped.
func parseCommand(codec protocol.Codec, playerID string, frame []byte) (any, bool) {
	env, err := codec.DecodeEnvelope(frame)
	if err != nil {
		return nil, false
	}
	switch env.T {
	case protocol.MsgSetDirection:
		dir, err := protocol.DecodePayload[protocol.SetDirection](codec, env)
		if err != nil || dir.X == nil || dir.Y == nil {
			return nil, false
		}
		return room.SetDirection{PlayerID: playerID, X: *dir.X, Y: *dir.Y}, true
	case protocol.MsgAttemptTag:
		return room.AttemptTag{PlayerID: playerID}, true
	}
	return nil, false
}

func (s *Server) ServeDebugState(w http.ResponseWriter, r *http.Request) {
	reply := make(chan room.DebugState, 1)
	if !s.room.Submit(room.Inspect{Reply: reply}) {
		http.Error(w, "room stopped", http.StatusServiceUnavailable)
		return
	}
	select {
	case st := <-reply:
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(st)
	case <-time.After(replyTimeout):
		http.Error(w, "room busy", http.StatusServiceUnavailable)
	}
}

// NewMux wires the HTTP surface. /debug/state is only mounted when auth is
// configured.
func NewMux(s *Server, auth *Auth) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	if auth != nil {
		mux.Handle("/debug/state", auth.RequireAuth(http.HandlerFunc(s.ServeDebugState)))
	}
	return mux
}
