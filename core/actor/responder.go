package actor

import "errors"

// ErrResponderDecode is returned when decoding a serialized responder.
// Responders are only meaningful inside the owning process and must never
// be reconstructed from serialized data.
var ErrResponderDecode = errors.New("responder cannot be reconstructed from serialized data")

// responderPlaceholder is the fixed opaque form a Responder serializes to
// when an application makes its message envelope serializable.
const responderPlaceholder = `"<responder>"`

// Done is the proof-of-response token returned by [Responder.Respond].
// Handler functions that are required to reply should return Done, so the
// compiler rejects any path that never responded. It carries no data and
// no runtime check.
type Done struct{}

// Responder delivers exactly one reply value to the caller blocked in the
// [Call] that created it. It is single-use: the first Respond is observed,
// any further Respond has no observer and returns immediately.
type Responder[R any] struct {
	slot chan R
}

// NewResponder creates an unconsumed responder. Call allocates one per
// invocation; constructing one directly is only useful in tests.
func NewResponder[R any]() *Responder[R] {
	return &Responder[R]{slot: make(chan R, 1)}
}

// Respond delivers v to the waiting caller and returns the proof token.
// Never blocks: the slot holds one value, and extra responses are dropped.
func (r *Responder[R]) Respond(v R) Done {
	select {
	case r.slot <- v:
	default:
	}
	return Done{}
}

// MarshalJSON renders the responder as a fixed opaque placeholder.
func (r *Responder[R]) MarshalJSON() ([]byte, error) {
	return []byte(responderPlaceholder), nil
}

// UnmarshalJSON always fails; see [ErrResponderDecode].
func (r *Responder[R]) UnmarshalJSON([]byte) error {
	return ErrResponderDecode
}
