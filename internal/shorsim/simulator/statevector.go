package simulator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/qryptic/shorsim/internal/shorsim/circuit"
)

// normalizationTolerance bounds the drift allowed in the total
// probability mass of a simulated distribution.
const normalizationTolerance = 1e-9

// StateVector simulates a phase-estimation descriptor exactly.
//
// The controlled modular multiplications are permutations of the work
// register's computational basis, and the work register starts in a
// basis state, so each counting-register branch carries exactly one
// work value. The simulator evolves every branch, groups branches by
// final work value, and applies the inverse Fourier transform stage as
// a complex FFT per group. The cost is governed by 2^(t+w), which is
// why the modulus must stay small.
type StateVector struct {
	maxQubits int
}

// New creates a state-vector simulator with the given total qubit
// budget
func New(maxQubits int) *StateVector {
	return &StateVector{maxQubits: maxQubits}
}

// MaxQubits returns the simulator's total qubit budget
func (s *StateVector) MaxQubits() int {
	return s.maxQubits
}

// Simulate executes the descriptor and returns the exact probability
// distribution over counting-register outcomes.
func (s *StateVector) Simulate(desc *circuit.Descriptor) (*Distribution, error) {
	if desc == nil {
		return nil, fmt.Errorf("nil circuit descriptor")
	}
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circuit descriptor: %w", err)
	}
	if total := desc.TotalQubits(); total > s.maxQubits {
		return nil, fmt.Errorf("circuit needs %d qubits, simulator budget is %d", total, s.maxQubits)
	}
	if !desc.Modulus.IsUint64() {
		return nil, fmt.Errorf("modulus %s too large to simulate", desc.Modulus)
	}

	t := desc.CountingQubits
	n := 1 << t
	modulus := desc.Modulus.Uint64()

	mults := make([]uint64, t)
	for k, m := range desc.Multipliers() {
		mults[k] = m.Uint64()
	}

	// Branch-wise execution: counting basis state x leaves the work
	// register in prod_k { a^(2^k) : bit k of x set } mod N, starting
	// from the |1⟩ prepared by the X gate.
	groups := make(map[uint64][]int)
	for x := 0; x < n; x++ {
		v := uint64(1)
		for k := 0; k < t; k++ {
			if x>>k&1 == 1 {
				v = v * mults[k] % modulus
			}
		}
		groups[v] = append(groups[v], x)
	}

	// Inverse transform stage. Within one work-value group the final
	// amplitude of outcome m is (1/2^t) Σ_x e^(-2πi·x·m/2^t); groups
	// never interfere because their work states are orthogonal.
	fft := fourier.NewCmplxFFT(n)
	src := make([]complex128, n)
	dst := make([]complex128, n)
	probs := make([]float64, n)
	amp := complex(1/float64(n), 0)

	for _, branches := range groups {
		for _, x := range branches {
			src[x] = amp
		}
		dst = fft.Coefficients(dst, src)
		for m, c := range dst {
			probs[m] += real(c)*real(c) + imag(c)*imag(c)
		}
		for _, x := range branches {
			src[x] = 0
		}
	}

	dist := &Distribution{CountingQubits: t, Probs: probs}
	if math.Abs(dist.Sum()-1) > normalizationTolerance {
		return nil, fmt.Errorf("simulated distribution sums to %g, expected 1", dist.Sum())
	}

	return dist, nil
}
