package integration_test

import (
	"math/big"
	"testing"

	"github.com/qryptic/shorsim/pkg/shorsim"
)

// Test01_FactorSemiprimes tests the complete flow:
// 1. Configure a factorizer through the public API
// 2. Run the full control loop on small odd semiprimes
// 3. Check that the recovered factor pairs multiply back to N
//
// Related example: examples/01_factor_15/main.go (user-facing demonstration)
func Test01_FactorSemiprimes(t *testing.T) {
	t.Log("=== Test 01: Factoring Odd Semiprimes End to End ===")

	cases := []struct {
		n       int64
		factors map[int64]bool
	}{
		{15, map[int64]bool{3: true, 5: true}},
		{21, map[int64]bool{3: true, 7: true}},
		{35, map[int64]bool{5: true, 7: true}},
	}

	for _, tc := range cases {
		n := big.NewInt(tc.n)
		t.Logf("Step: factoring %s...", n)

		config := shorsim.DefaultConfig().WithSeed(1).WithMaxAttempts(30)
		factorizer, err := shorsim.NewFactorizer(config)
		if err != nil {
			t.Fatalf("Failed to create factorizer: %v", err)
		}

		result, err := factorizer.Factorize(n)
		if err != nil {
			t.Fatalf("Factorization of %s failed: %v", n, err)
		}

		if result.Status != shorsim.StatusSuccess {
			t.Fatalf("No factors for %s after %d attempts: %s", n, result.AttemptsUsed, result.Reason)
		}

		p, q := result.P.Int64(), result.Q.Int64()
		if p*q != tc.n {
			t.Fatalf("%s: factor pair %d * %d does not multiply back", n, p, q)
		}
		if !tc.factors[p] || !tc.factors[q] {
			t.Errorf("%s: unexpected factor pair {%d, %d}", n, p, q)
		}

		t.Logf("  %s = %d * %d in %d attempts", n, p, q, result.AttemptsUsed)
	}

	t.Log("All semiprimes factored")
}

// Test01_AttemptHistoryConsistency tests that the per-attempt history
// a factorization reports is internally consistent with its outcome
func Test01_AttemptHistoryConsistency(t *testing.T) {
	t.Log("=== Test 01b: Attempt History Consistency ===")

	config := shorsim.DefaultConfig().WithSeed(9).WithMaxAttempts(30)
	factorizer, err := shorsim.NewFactorizer(config)
	if err != nil {
		t.Fatalf("Failed to create factorizer: %v", err)
	}

	n := big.NewInt(35)
	result, err := factorizer.Factorize(n)
	if err != nil {
		t.Fatalf("Factorization failed: %v", err)
	}

	if len(result.Attempts) != result.AttemptsUsed {
		t.Fatalf("history has %d records, AttemptsUsed = %d", len(result.Attempts), result.AttemptsUsed)
	}

	for i, rec := range result.Attempts {
		if rec.Attempt != i+1 {
			t.Errorf("record %d carries attempt number %d", i, rec.Attempt)
		}
		if rec.Base == nil {
			t.Errorf("record %d has no base", i)
			continue
		}
		if rec.Base.Cmp(big.NewInt(2)) < 0 || rec.Base.Cmp(n) >= 0 {
			t.Errorf("record %d base %s outside [2, N)", i, rec.Base)
		}
		if rec.Phase == shorsim.PhaseValidated && rec.Period == nil && !rec.GCDShortcut {
			t.Errorf("record %d validated without a period", i)
		}
	}

	if result.Status == shorsim.StatusSuccess {
		last := result.Attempts[len(result.Attempts)-1]
		if last.P == nil || last.Q == nil {
			t.Error("winning attempt record carries no factor pair")
		}
	}

	t.Logf("History of %d attempts is consistent", result.AttemptsUsed)
}
