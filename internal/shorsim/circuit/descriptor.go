package circuit

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/qryptic/shorsim/internal/shorsim/core"
	"github.com/qryptic/shorsim/internal/shorsim/utils"
)

// Descriptor is an immutable description of one phase-estimation
// circuit for a given base and modulus. It is built once per attempt
// and handed to a simulator; nothing here executes.
type Descriptor struct {
	// CountingQubits is the width t of the precision register
	CountingQubits int

	// WorkQubits is the width w = ceil(log2 N) of the work register
	WorkQubits int

	// Base is the modular-multiplication base a
	Base *big.Int

	// Modulus is the number N being factored
	Modulus *big.Int

	// Gates is the full gate sequence in application order
	Gates []Gate
}

// Widths returns the register widths the builder would choose for the
// given modulus: w = ceil(log2 N) and t = 2w + 1 unless overridden.
func Widths(modulus *big.Int, countingOverride int) (counting, work int) {
	work = utils.CeilLog2(modulus)
	counting = 2*work + 1
	if countingOverride > 0 {
		counting = countingOverride
	}
	return counting, work
}

// Build constructs the phase-estimation circuit descriptor for base a
// and modulus n: Hadamards across the counting register, the work
// register prepared in |1⟩, one controlled modular multiplication by
// a^(2^k) per counting qubit k, the inverse Fourier transform on the
// counting register, and a final readout of every counting qubit.
func Build(a, n *big.Int, countingOverride int) (*Descriptor, error) {
	if n == nil || n.Cmp(big.NewInt(3)) < 0 {
		return nil, fmt.Errorf("modulus must be at least 3, got %v", n)
	}
	if a == nil || a.Cmp(big.NewInt(2)) < 0 || a.Cmp(n) >= 0 {
		return nil, fmt.Errorf("base must lie in [2, N-1], got %v", a)
	}

	t, w := Widths(n, countingOverride)

	gates := make([]Gate, 0, 2*t+2+t)
	for i := 0; i < t; i++ {
		gates = append(gates, Gate{Op: Hadamard, Target: i, Control: -1})
	}
	gates = append(gates, Gate{Op: PauliX, Target: t, Control: -1})

	// Repeated-squaring ladder: the gate controlled on counting qubit
	// k multiplies the work register by a^(2^k) mod N.
	multiplier := new(big.Int).Mod(a, n)
	for k := 0; k < t; k++ {
		gates = append(gates, Gate{
			Op:         CModMul,
			Target:     t,
			Control:    k,
			Multiplier: new(big.Int).Set(multiplier),
		})
		multiplier.Mul(multiplier, multiplier).Mod(multiplier, n)
	}

	gates = append(gates, Gate{Op: InvQFT, Target: 0, Control: -1})
	for i := 0; i < t; i++ {
		gates = append(gates, Gate{Op: Measure, Target: i, Control: -1})
	}

	return &Descriptor{
		CountingQubits: t,
		WorkQubits:     w,
		Base:           new(big.Int).Set(a),
		Modulus:        new(big.Int).Set(n),
		Gates:          gates,
	}, nil
}

// TotalQubits returns the combined register width t + w
func (d *Descriptor) TotalQubits() int {
	return d.CountingQubits + d.WorkQubits
}

// Outcomes returns the number of counting-register outcomes 2^t
func (d *Descriptor) Outcomes() int {
	return 1 << d.CountingQubits
}

// Multipliers returns the controlled multiplier for each counting
// qubit, indexed by controlling qubit.
func (d *Descriptor) Multipliers() []*big.Int {
	mults := make([]*big.Int, d.CountingQubits)
	for _, g := range d.Gates {
		if g.Op == CModMul && g.Control >= 0 && g.Control < len(mults) {
			mults[g.Control] = g.Multiplier
		}
	}
	return mults
}

// Validate checks the structural invariants of the descriptor
func (d *Descriptor) Validate() error {
	if d.CountingQubits <= 0 || d.WorkQubits <= 0 {
		return fmt.Errorf("register widths must be positive, got t=%d w=%d", d.CountingQubits, d.WorkQubits)
	}
	if len(d.Gates) == 0 {
		return fmt.Errorf("descriptor has no gates")
	}

	sawInvQFT := false
	for _, g := range d.Gates {
		switch g.Op {
		case CModMul:
			if g.Multiplier == nil || g.Multiplier.Sign() <= 0 {
				return fmt.Errorf("controlled multiplication on qubit %d has no multiplier", g.Control)
			}
			if g.Control < 0 || g.Control >= d.CountingQubits {
				return fmt.Errorf("controlled multiplication control %d outside counting register", g.Control)
			}
		case InvQFT:
			sawInvQFT = true
		}
	}
	if !sawInvQFT {
		return fmt.Errorf("descriptor missing the inverse transform stage")
	}

	for _, m := range d.Multipliers() {
		if m == nil {
			return fmt.Errorf("counting qubit without a controlled multiplication")
		}
	}

	return nil
}

// String renders a compact human-readable circuit listing
func (d *Descriptor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "QPE circuit: N=%s a=%s counting=%d work=%d\n", d.Modulus, d.Base, d.CountingQubits, d.WorkQubits)
	for _, g := range d.Gates {
		fmt.Fprintf(&b, "  %s\n", g)
	}
	return b.String()
}

// Coprime reports whether gcd(a, n) = 1. Callers take the classical
// gcd shortcut instead of building a circuit when it is false.
func Coprime(a, n *big.Int) bool {
	return core.GCD(a, n).Cmp(big.NewInt(1)) == 0
}
