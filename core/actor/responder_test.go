package actor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResponder_respondOnce(t *testing.T) {
	r := NewResponder[string]()

	r.Respond("first")
	require.Equal(t, "first", <-r.slot)
}

func TestResponder_doubleRespondDoesNotBlock(t *testing.T) {
	r := NewResponder[int]()

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Respond(1)
		r.Respond(2) // no observer; must return immediately
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second Respond blocked")
	}
	require.Equal(t, 1, <-r.slot, "first response wins")
}

func TestResponder_json(t *testing.T) {
	type envelope struct {
		Kind  string          `json:"kind"`
		Reply *Responder[int] `json:"reply"`
	}

	data, err := json.Marshal(envelope{Kind: "get", Reply: NewResponder[int]()})
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"get","reply":"<responder>"}`, string(data))

	var e envelope
	err = json.Unmarshal([]byte(`{"kind":"get","reply":"<responder>"}`), &e)
	require.ErrorIs(t, err, ErrResponderDecode)
}

func TestRespond_returnsProofToken(t *testing.T) {
	// a handler obliged to reply declares it in its signature
	handle := func(r *Responder[int]) Done {
		return r.Respond(7)
	}

	r := NewResponder[int]()
	_ = handle(r)
	require.Equal(t, 7, <-r.slot)
}
