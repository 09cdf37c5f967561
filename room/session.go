package room

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

type session struct {
	id   string
	key  uint32
	conn Conn
}

// sessions is the registry of connected players. Owned by the room goroutine.
type sessions struct {
	byID map[string]*session
}

func newSessions() *sessions {
	return &sessions{byID: make(map[string]*session)}
}

func (s *sessions) open(c Conn) (*session, error) {
	key, err := newKey()
	if err != nil {
		return nil, fmt.Errorf("session key: %w", err)
	}
	sess := &session{id: uuid.NewString(), key: key, conn: c}
	s.byID[sess.id] = sess
	return sess, nil
}

func (s *sessions) get(id string) (*session, bool) {
	sess, ok := s.byID[id]
	return sess, ok
}

func (s *sessions) remove(id string) (*session, bool) {
	sess, ok := s.byID[id]
	if ok {
		delete(s.byID, id)
	}
	return sess, ok
}

func (s *sessions) len() int { return len(s.byID) }

// newKey draws a non-zero 32-bit obfuscation key.
func newKey() (uint32, error) {
	var b [4]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			return 0, err
		}
		if k := binary.BigEndian.Uint32(b[:]); k != 0 {
			return k, nil
		}
	}
}
