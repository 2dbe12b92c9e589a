package utils

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/sha3"
)

// transcriptDomain separates transcript states from any other sha3 use.
var transcriptDomain = []byte("shorsim/transcript/v1")

// Transcript derives independent deterministic random streams from a
// single run seed. Every draw consumed during a factorization run
// (base selection, measurement sampling) comes from a source handed out
// by the transcript, so a run replays exactly under the same seed and
// the same sequence of Append calls.
type Transcript struct {
	state []byte
}

// NewTranscript creates a transcript bound to the given seed
func NewTranscript(seed uint64) *Transcript {
	buf := make([]byte, 0, len(transcriptDomain)+8)
	buf = append(buf, transcriptDomain...)
	buf = binary.BigEndian.AppendUint64(buf, seed)
	h := sha3.Sum256(buf)
	return &Transcript{state: h[:]}
}

// Append folds data into the transcript state. Streams handed out after
// an Append are independent of streams handed out before it.
func (t *Transcript) Append(data []byte) {
	h := sha3.Sum256(append(t.state, data...))
	t.state = h[:]
}

// AppendUint64 folds an integer into the transcript state
func (t *Transcript) AppendUint64(v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	t.Append(buf[:])
}

// Source derives a fresh random source from the current state and
// advances the state so the next Source is independent.
func (t *Transcript) Source() rand.Source {
	s1 := binary.BigEndian.Uint64(t.state[0:8])
	s2 := binary.BigEndian.Uint64(t.state[8:16])
	h := sha3.Sum256(t.state)
	t.state = h[:]
	return rand.NewPCG(s1, s2)
}

// State returns a copy of the current transcript state
func (t *Transcript) State() []byte {
	return append([]byte(nil), t.state...)
}
