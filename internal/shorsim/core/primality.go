package core

import "math/big"

// millerRabinRounds is the number of Miller-Rabin rounds used by the
// probable-prime pre-check. Values this size are far below the range
// where the test has known pseudoprimes at 20 rounds.
const millerRabinRounds = 20

// IsEven reports whether n is even.
func IsEven(n *big.Int) bool {
	return n.Bit(0) == 0
}

// IsProbablePrime reports whether n is prime with overwhelming
// probability. Composite moduli are never misreported for the small
// inputs this engine is designed around.
func IsProbablePrime(n *big.Int) bool {
	return n.ProbablyPrime(millerRabinRounds)
}

// Root computes the integer k-th root of n, i.e. the largest r with
// r^k <= n. It requires n >= 0 and k >= 1.
func Root(n *big.Int, k int) *big.Int {
	if n.Sign() <= 0 || k <= 1 {
		return new(big.Int).Set(n)
	}
	if k == 2 {
		return new(big.Int).Sqrt(n)
	}

	// Binary search over the bit length of the root.
	bigK := big.NewInt(int64(k))
	hi := new(big.Int).Lsh(one, uint(n.BitLen()/k+1))
	lo := big.NewInt(1)
	for lo.Cmp(hi) < 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Add(mid, one).Rsh(mid, 1)
		if new(big.Int).Exp(mid, bigK, nil).Cmp(n) <= 0 {
			lo.Set(mid)
		} else {
			hi.Sub(mid, one)
		}
	}
	return lo
}

// PerfectPower reports whether n = b^k for integers b > 1, k > 1 and
// returns such a base b. The standard period-finding formulation is
// undefined for perfect powers, so callers must factor them directly.
func PerfectPower(n *big.Int) (*big.Int, bool) {
	if n.Cmp(two) <= 0 {
		return nil, false
	}
	for k := 2; k <= n.BitLen(); k++ {
		r := Root(n, k)
		if r.Cmp(one) <= 0 {
			break
		}
		if new(big.Int).Exp(r, big.NewInt(int64(k)), nil).Cmp(n) == 0 {
			return r, true
		}
	}
	return nil, false
}
