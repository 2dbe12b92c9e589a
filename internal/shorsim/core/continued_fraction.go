package core

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNoPeriodSignal is returned when a measurement of zero is handed to
// the extractor. A zero outcome estimates the phase 0/r and carries no
// information about the period; the caller must resample rather than
// treat it as a valid period of 1.
var ErrNoPeriodSignal = errors.New("zero measurement carries no phase information")

// Convergent is a single convergent p/q of a continued-fraction
// expansion.
type Convergent struct {
	Num *big.Int
	Den *big.Int
}

func (c Convergent) String() string {
	return fmt.Sprintf("%s/%s", c.Num, c.Den)
}

// Convergents computes the continued-fraction convergents of m / 2^t in
// order of increasing precision. The expansion terminates naturally for
// rational input, so the final convergent equals m / 2^t exactly.
func Convergents(m *big.Int, t int) []Convergent {
	den := new(big.Int).Lsh(one, uint(t))

	// Quotient sequence of the Euclidean expansion of m / 2^t.
	var quotients []*big.Int
	x := new(big.Int).Set(m)
	y := den
	for y.Sign() != 0 {
		q, r := new(big.Int).QuoRem(x, y, new(big.Int))
		quotients = append(quotients, q)
		x, y = y, r
	}

	// Convergent recurrence: h_k = a_k*h_{k-1} + h_{k-2}, same for k.
	convergents := make([]Convergent, 0, len(quotients))
	hPrev2, hPrev1 := big.NewInt(0), big.NewInt(1)
	kPrev2, kPrev1 := big.NewInt(1), big.NewInt(0)
	for _, a := range quotients {
		h := new(big.Int).Mul(a, hPrev1)
		h.Add(h, hPrev2)
		k := new(big.Int).Mul(a, kPrev1)
		k.Add(k, kPrev2)

		convergents = append(convergents, Convergent{Num: h, Den: k})

		hPrev2, hPrev1 = hPrev1, h
		kPrev2, kPrev1 = kPrev1, k
	}

	return convergents
}

// CandidatePeriods converts a measured phase estimate m / 2^t into an
// ordered list of candidate periods: the convergent denominators not
// exceeding the modulus, most precise first. The caller walks the list
// and accepts the first candidate r satisfying a^r ≡ 1 (mod N); no
// floating-point comparison ever decides acceptance.
func CandidatePeriods(m *big.Int, t int, modulus *big.Int) ([]*big.Int, error) {
	if m == nil || m.Sign() < 0 {
		return nil, fmt.Errorf("measurement must be non-negative, got %v", m)
	}
	if t <= 0 {
		return nil, fmt.Errorf("register width must be positive, got %d", t)
	}
	if m.Sign() == 0 {
		return nil, ErrNoPeriodSignal
	}

	convergents := Convergents(m, t)

	seen := make(map[string]struct{}, len(convergents))
	candidates := make([]*big.Int, 0, len(convergents))
	for i := len(convergents) - 1; i >= 0; i-- {
		den := convergents[i].Den
		if den.Sign() <= 0 || den.Cmp(modulus) > 0 {
			continue
		}
		key := den.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, new(big.Int).Set(den))
	}

	return candidates, nil
}
