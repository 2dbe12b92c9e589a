// Package shorsim provides a deterministic simulation of Shor's
// integer-factorization algorithm.
//
// Shorsim builds the quantum phase-estimation circuit for a modulus,
// simulates it on a classical state-vector backend, extracts period
// candidates from the measured phase with continued fractions, and
// assembles non-trivial factors from a validated period.
//
// # Features
//
// - Full factorization control loop with bounded, seeded retries
// - Classical pre-checks: even moduli, perfect powers, probable primes
// - Phase-estimation circuit builder with a modular-multiplication ladder
// - Exact state-vector simulation of the counting register
// - Continued-fraction period extraction with convergent validation
// - Per-attempt history for inspecting how a factorization unfolded
//
// # Quick Start
//
// Factoring a modulus:
//
//	config := shorsim.DefaultConfig()
//	factorizer, err := shorsim.NewFactorizer(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := factorizer.Factorize(big.NewInt(15))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if result.Status == shorsim.StatusSuccess {
//		fmt.Printf("%s = %s * %s\n", big.NewInt(15), result.P, result.Q)
//	}
//
// Inspecting the circuit for a chosen base:
//
//	desc, err := shorsim.BuildCircuit(big.NewInt(7), big.NewInt(15), 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(desc)
//
//	sim := shorsim.NewStateVectorSimulator(shorsim.DefaultConfig().MaxQubits)
//	dist, err := sim.Simulate(desc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(dist.Peaks(0.01))
//
// # Determinism
//
// Every random choice (base selection and measurement sampling) is
// drawn from a transcript keyed by Config.Seed and the modulus, so the
// same seed replays the identical attempt sequence. See
// Config.WithSeed.
//
// # Architecture
//
// Shorsim uses a hybrid public/private architecture:
//
// - pkg/shorsim/: Public API (this package)
// - internal/shorsim/: Private implementation (not importable)
//
// The public API provides stable interfaces for:
// - Factorization with the full control loop
// - Circuit construction and state-vector simulation
// - Common types and errors
//
// Implementation details in internal/ can be refactored without breaking the public API.
//
// # References
//
// - Shor, "Polynomial-Time Algorithms for Prime Factorization and
//   Discrete Logarithms on a Quantum Computer": https://arxiv.org/abs/quant-ph/9508027
// - Nielsen & Chuang, "Quantum Computation and Quantum Information", ch. 5
//
// # License
//
// See LICENSE file in the repository root.
package shorsim
