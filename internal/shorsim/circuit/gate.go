// Package circuit builds quantum phase-estimation circuit descriptors
// for modular exponentiation. A descriptor is pure data: an immutable
// gate sequence over a counting register and a work register, consumed
// by a simulator but never executed here.
package circuit

import (
	"fmt"
	"math/big"
)

// GateOp identifies a gate kind in a phase-estimation circuit
type GateOp uint8

const (
	// Hadamard puts a single counting qubit into uniform superposition
	Hadamard GateOp = iota

	// PauliX flips a work qubit; used once to prepare the work
	// register in |1⟩
	PauliX

	// CModMul multiplies the work register by a fixed constant mod N,
	// controlled on one counting qubit
	CModMul

	// InvQFT applies the inverse quantum Fourier transform to the
	// whole counting register
	InvQFT

	// Measure reads out a single counting qubit
	Measure
)

// String returns the gate-op mnemonic
func (op GateOp) String() string {
	switch op {
	case Hadamard:
		return "H"
	case PauliX:
		return "X"
	case CModMul:
		return "CMODMUL"
	case InvQFT:
		return "IQFT"
	case Measure:
		return "M"
	default:
		return fmt.Sprintf("GateOp(%d)", uint8(op))
	}
}

// Gate is a single operation in a circuit descriptor.
//
// Target is a qubit index: counting qubits occupy [0, t) and work
// qubits [t, t+w). Control is the controlling counting qubit for
// CModMul and -1 for every other op. Multiplier is the constant
// a^(2^Control) mod N applied by a CModMul gate and nil otherwise.
type Gate struct {
	Op         GateOp
	Target     int
	Control    int
	Multiplier *big.Int
}

// String renders the gate in a compact circuit-listing form
func (g Gate) String() string {
	switch g.Op {
	case CModMul:
		return fmt.Sprintf("CMODMUL(ctrl=q%d, ×%s)", g.Control, g.Multiplier)
	case InvQFT:
		return "IQFT(counting)"
	default:
		return fmt.Sprintf("%s(q%d)", g.Op, g.Target)
	}
}
