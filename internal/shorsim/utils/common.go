// Package utils provides shared configuration, bit-width helpers, and
// the deterministic entropy transcript used for reproducible sampling.
package utils

import "math/big"

// IsPowerOfTwo checks if a number is a power of 2
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// Log2 computes the base-2 logarithm of a power of 2
func Log2(n int) int {
	if !IsPowerOfTwo(n) {
		return -1
	}

	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// CeilLog2 returns the number of bits needed to represent values in
// [0, n), i.e. ceil(log2 n). This is the work-register width for a
// modulus n. CeilLog2 returns 0 for n <= 1.
func CeilLog2(n *big.Int) int {
	if n == nil || n.Cmp(big.NewInt(1)) <= 0 {
		return 0
	}
	bits := n.BitLen()
	// Exact powers of two need one bit fewer than BitLen reports.
	if n.Bit(0) == 0 && new(big.Int).And(n, new(big.Int).Sub(n, big.NewInt(1))).Sign() == 0 {
		return bits - 1
	}
	return bits
}
