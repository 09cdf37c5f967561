package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrEmptyPayload = errors.New("empty payload")

// Codec is one wire encoding policy. A server picks exactly one and uses it
// for every frame in both directions.
type Codec interface {
	Name() string
	// Binary reports whether frames should travel as binary websocket messages.
	Binary() bool
	Encode(t string, payload any) ([]byte, error)
	DecodeEnvelope(b []byte) (Envelope, error)
	Unmarshal(data []byte, v any) error
}

var (
	JSON    Codec = jsonCodec{}
	Msgpack Codec = msgpackCodec{}
)

// CodecByName resolves a configured codec name.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSON, nil
	case "msgpack":
		return Msgpack, nil
	}
	return nil, fmt.Errorf("unknown codec %q", name)
}

// outEnvelope is what gets marshalled; a nil payload drops the "p" field.
type outEnvelope struct {
	T string `json:"t"`
	P any    `json:"p,omitempty"`
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }
func (jsonCodec) Binary() bool { return false }

func (jsonCodec) Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("trying to encode envelope with empty type")
	}
	return json.Marshal(outEnvelope{T: t, P: payload})
}

func (jsonCodec) DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decode envelope: %w", ErrEmptyPayload)
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return e, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// DecodePayload decodes env's payload as a T using the codec it arrived in.
func DecodePayload[T any](c Codec, env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("payload for type %q: %w", env.T, ErrEmptyPayload)
	}
	err := c.Unmarshal(env.P, &out)
	return out, err
}
