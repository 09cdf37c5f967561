package protocol

//input structs coming in from the client.

// SetDirection carries the heading the client wants. Fields are pointers so
// a payload with a missing axis can be told apart from a zero.
type SetDirection struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}
