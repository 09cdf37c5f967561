package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// msgpackCodec is the compact binary policy. It reads the same json struct
// tags as the text codec so both share one set of message types.
type msgpackCodec struct{}

type msgpackEnvelope struct {
	T string             `json:"t"`
	P msgpack.RawMessage `json:"p,omitempty"`
}

func (msgpackCodec) Name() string { return "msgpack" }
func (msgpackCodec) Binary() bool { return true }

func (msgpackCodec) Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("trying to encode envelope with empty type")
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(outEnvelope{T: t, P: payload}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c msgpackCodec) DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decode envelope: %w", ErrEmptyPayload)
	}
	var e msgpackEnvelope
	if err := c.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return Envelope{T: e.T, P: json.RawMessage(e.P)}, nil
}

func (msgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}
