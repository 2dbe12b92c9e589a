// Package core provides the exact integer arithmetic underlying the
// period-finding factorization engine: modular exponentiation, gcd and
// inverse computations, continued-fraction expansion, and the number
// theoretic pre-checks that route a modulus around the quantum path.
//
// All arithmetic is performed on math/big integers. No function in this
// package keeps state; every result is a fresh big.Int.
package core

import (
	"fmt"
	"math/big"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// ModPow computes base^exp mod modulus with the result in [0, modulus).
// The modulus must be positive and the exponent non-negative.
func ModPow(base, exp, modulus *big.Int) (*big.Int, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("modulus must be positive, got %v", modulus)
	}
	if exp == nil || exp.Sign() < 0 {
		return nil, fmt.Errorf("exponent must be non-negative, got %v", exp)
	}
	b := new(big.Int).Mod(base, modulus)
	return new(big.Int).Exp(b, exp, modulus), nil
}

// GCD computes the greatest common divisor of x and y.
// The result is always non-negative and GCD(0, 0) is defined as 0.
func GCD(x, y *big.Int) *big.Int {
	a := new(big.Int).Abs(x)
	b := new(big.Int).Abs(y)
	for b.Sign() != 0 {
		a, b = b, a.Mod(a, b)
	}
	return a
}

// ExtendedGCD computes g = gcd(a, b) together with Bézout coefficients
// x, y such that a*x + b*y = g.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Div(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	return oldR, oldS, oldT
}

// ModInverse computes the multiplicative inverse of a modulo m.
// The second return value is false when the inverse does not exist,
// i.e. when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, false
	}
	return inv, true
}

// TrivialFactor returns gcd(a, n) when it is a non-trivial factor of n,
// meaning strictly between 1 and n. This is the classical shortcut taken
// before any quantum period finding: a base that shares a factor with
// the modulus has already factored it.
func TrivialFactor(a, n *big.Int) (*big.Int, bool) {
	g := GCD(a, n)
	if g.Cmp(one) > 0 && g.Cmp(n) < 0 {
		return g, true
	}
	return nil, false
}
