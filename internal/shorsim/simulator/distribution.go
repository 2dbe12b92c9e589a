// Package simulator executes phase-estimation circuit descriptors and
// returns the exact measurement distribution over the counting
// register. It is the reference implementation of the simulator
// contract consumed by the period finder; tests substitute their own.
package simulator

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/qryptic/shorsim/internal/shorsim/utils"
)

// Distribution is the probability distribution over counting-register
// outcomes produced by one circuit simulation. Outcome m occurs with
// probability Probs[m].
type Distribution struct {
	// CountingQubits is the register width t; len(Probs) == 2^t
	CountingQubits int

	// Probs holds one probability per outcome, summing to 1 within
	// floating tolerance
	Probs []float64
}

// Outcomes returns the number of measurement outcomes
func (d *Distribution) Outcomes() int {
	return len(d.Probs)
}

// Prob returns the probability of outcome m, or 0 when m is out of
// range
func (d *Distribution) Prob(m int) float64 {
	if m < 0 || m >= len(d.Probs) {
		return 0
	}
	return d.Probs[m]
}

// Validate checks that the distribution is a full counting-register
// readout: 2^CountingQubits outcomes. Consumers apply it to guard
// against backends that return a truncated or mislabeled distribution.
func (d *Distribution) Validate() error {
	if !utils.IsPowerOfTwo(len(d.Probs)) {
		return fmt.Errorf("distribution over %d outcomes is not a full register readout", len(d.Probs))
	}
	if utils.Log2(len(d.Probs)) != d.CountingQubits {
		return fmt.Errorf("distribution over %d outcomes does not match %d counting qubits",
			len(d.Probs), d.CountingQubits)
	}
	return nil
}

// Sum returns the total probability mass
func (d *Distribution) Sum() float64 {
	return floats.Sum(d.Probs)
}

// Peaks returns the outcomes whose probability is at least threshold,
// in ascending outcome order.
func (d *Distribution) Peaks(threshold float64) []int {
	var peaks []int
	for m, p := range d.Probs {
		if p >= threshold {
			peaks = append(peaks, m)
		}
	}
	return peaks
}

func (d *Distribution) String() string {
	return fmt.Sprintf("distribution over %d outcomes (%d counting qubits)", len(d.Probs), d.CountingQubits)
}
