package shor

import (
	"errors"
	"math/big"
	"testing"

	"github.com/rs/zerolog"

	"github.com/qryptic/shorsim/internal/shorsim/circuit"
	"github.com/qryptic/shorsim/internal/shorsim/simulator"
	"github.com/qryptic/shorsim/internal/shorsim/utils"
)

// stubSimulator returns a fixed distribution regardless of the circuit,
// so state-machine transitions can be exercised deterministically.
type stubSimulator struct {
	probs func(outcomes int) []float64
}

func (s *stubSimulator) Simulate(desc *circuit.Descriptor) (*simulator.Distribution, error) {
	return &simulator.Distribution{
		CountingQubits: desc.CountingQubits,
		Probs:          s.probs(desc.Outcomes()),
	}, nil
}

func massAt(outcome int) func(int) []float64 {
	return func(outcomes int) []float64 {
		probs := make([]float64, outcomes)
		probs[outcome] = 1
		return probs
	}
}

// failingSimulator models a backend outage
type failingSimulator struct{}

func (failingSimulator) Simulate(*circuit.Descriptor) (*simulator.Distribution, error) {
	return nil, errors.New("backend unavailable")
}

func testConfig() *utils.Config {
	return utils.DefaultConfig().WithCountingQubits(8).WithSeed(11)
}

// TestFindPeriodValidated tests the full Built -> Simulated ->
// Extracted -> Validated walk: outcome 192 of 256 estimates phase 3/4,
// whose convergents yield the true period 4 of 7 mod 15
func TestFindPeriodValidated(t *testing.T) {
	cfg := testConfig()
	sim := &stubSimulator{probs: massAt(192)}
	pf := NewPeriodFinder(big.NewInt(15), sim, cfg, zerolog.Nop())

	res, err := pf.FindPeriod(big.NewInt(7), utils.NewTranscript(cfg.Seed).Source())
	if err != nil {
		t.Fatalf("FindPeriod returned error: %v", err)
	}

	if res.Phase != PhaseValidated {
		t.Fatalf("phase = %s, expected validated (reason: %s)", res.Phase, res.Reason)
	}
	if res.Measurement != 192 {
		t.Errorf("measurement = %d, expected 192", res.Measurement)
	}
	if res.Period == nil || res.Period.Int64() != 4 {
		t.Errorf("period = %v, expected 4", res.Period)
	}
}

// TestFindPeriodRejected tests a sample whose convergents all fail:
// outcome 128 estimates phase 1/2, but 7^2 mod 15 != 1
func TestFindPeriodRejected(t *testing.T) {
	cfg := testConfig()
	sim := &stubSimulator{probs: massAt(128)}
	pf := NewPeriodFinder(big.NewInt(15), sim, cfg, zerolog.Nop())

	res, err := pf.FindPeriod(big.NewInt(7), utils.NewTranscript(cfg.Seed).Source())
	if err != nil {
		t.Fatalf("FindPeriod returned error: %v", err)
	}

	if res.Phase != PhaseRejected {
		t.Fatalf("phase = %s, expected rejected", res.Phase)
	}
	if res.Period != nil {
		t.Errorf("rejected attempt carries period %s", res.Period)
	}
	if res.CandidatesTried == 0 {
		t.Error("rejection should have tried at least one candidate")
	}
}

// TestFindPeriodRejectedPhaseHalf tests that phase 1/2 validates for a
// base of true period 2: 4^2 mod 15 == 1
func TestFindPeriodRejectedPhaseHalf(t *testing.T) {
	cfg := testConfig()
	sim := &stubSimulator{probs: massAt(128)}
	pf := NewPeriodFinder(big.NewInt(15), sim, cfg, zerolog.Nop())

	res, err := pf.FindPeriod(big.NewInt(4), utils.NewTranscript(cfg.Seed).Source())
	if err != nil {
		t.Fatalf("FindPeriod returned error: %v", err)
	}

	if res.Phase != PhaseValidated || res.Period.Int64() != 2 {
		t.Errorf("phase = %s period = %v, expected validated with period 2", res.Phase, res.Period)
	}
}

// TestFindPeriodZeroMeasurementResampled tests NoPeriodSignal recovery:
// all mass on outcome 0 forces a resample, and with nothing left to
// draw the attempt is rejected rather than reporting a bogus period
func TestFindPeriodZeroMeasurementResampled(t *testing.T) {
	cfg := testConfig()
	sim := &stubSimulator{probs: massAt(0)}
	pf := NewPeriodFinder(big.NewInt(15), sim, cfg, zerolog.Nop())

	res, err := pf.FindPeriod(big.NewInt(7), utils.NewTranscript(cfg.Seed).Source())
	if err != nil {
		t.Fatalf("FindPeriod returned error: %v", err)
	}

	if res.Phase != PhaseRejected {
		t.Fatalf("phase = %s, expected rejected", res.Phase)
	}
	if res.Period != nil {
		t.Error("zero measurement must never validate a period")
	}
}

// TestFindPeriodSimulatorFailure tests that backend errors surface
// through the simulation sentinel instead of a rejection result
func TestFindPeriodSimulatorFailure(t *testing.T) {
	cfg := testConfig()
	pf := NewPeriodFinder(big.NewInt(15), failingSimulator{}, cfg, zerolog.Nop())

	_, err := pf.FindPeriod(big.NewInt(7), utils.NewTranscript(cfg.Seed).Source())
	if err == nil {
		t.Fatal("backend failure produced no error")
	}
	if !errors.Is(err, ErrSimulationFailed) {
		t.Errorf("error = %q, expected the simulation sentinel", err)
	}
}

// TestFindPeriodMalformedDistribution tests that a backend returning a
// truncated distribution is treated as a simulation failure
func TestFindPeriodMalformedDistribution(t *testing.T) {
	cfg := testConfig()
	sim := &stubSimulator{probs: func(outcomes int) []float64 {
		probs := make([]float64, outcomes-1)
		probs[0] = 1
		return probs
	}}
	pf := NewPeriodFinder(big.NewInt(15), sim, cfg, zerolog.Nop())

	_, err := pf.FindPeriod(big.NewInt(7), utils.NewTranscript(cfg.Seed).Source())
	if err == nil {
		t.Fatal("truncated distribution produced no error")
	}
	if !errors.Is(err, ErrSimulationFailed) {
		t.Errorf("error = %q, expected the simulation sentinel", err)
	}
}

// TestFindPeriodAgainstStateVector runs the real simulator: every
// validated period must satisfy a^r ≡ 1 (mod N), and across seeds the
// true period of 7 mod 15 must show up
func TestFindPeriodAgainstStateVector(t *testing.T) {
	cfg := utils.DefaultConfig()
	sim := simulator.New(cfg.MaxQubits)
	pf := NewPeriodFinder(big.NewInt(15), sim, cfg, zerolog.Nop())
	a := big.NewInt(7)

	validated := 0
	for seed := uint64(1); seed <= 10; seed++ {
		res, err := pf.FindPeriod(a, utils.NewTranscript(seed).Source())
		if err != nil {
			t.Fatalf("seed %d: FindPeriod returned error: %v", seed, err)
		}
		if res.Phase != PhaseValidated {
			continue
		}
		validated++

		pow := new(big.Int).Exp(a, res.Period, big.NewInt(15))
		if pow.Int64() != 1 {
			t.Errorf("seed %d: validated period %s fails a^r ≡ 1", seed, res.Period)
		}
		if res.Period.Int64() != 4 && res.Period.Int64() != 2 {
			t.Errorf("seed %d: period = %s, expected a divisor-of-order result", seed, res.Period)
		}
	}

	if validated == 0 {
		t.Error("no seed out of 10 validated a period for a base of order 4")
	}
}

// TestFindPeriodDeterministic tests replay under a fixed seed
func TestFindPeriodDeterministic(t *testing.T) {
	cfg := utils.DefaultConfig()
	sim := simulator.New(cfg.MaxQubits)
	pf := NewPeriodFinder(big.NewInt(21), sim, cfg, zerolog.Nop())

	first, err := pf.FindPeriod(big.NewInt(2), utils.NewTranscript(5).Source())
	if err != nil {
		t.Fatalf("first run returned error: %v", err)
	}
	second, err := pf.FindPeriod(big.NewInt(2), utils.NewTranscript(5).Source())
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}

	if first.Phase != second.Phase || first.Measurement != second.Measurement {
		t.Errorf("replay diverged: (%s, %d) vs (%s, %d)",
			first.Phase, first.Measurement, second.Phase, second.Measurement)
	}
	if (first.Period == nil) != (second.Period == nil) {
		t.Fatal("replay diverged on period presence")
	}
	if first.Period != nil && first.Period.Cmp(second.Period) != 0 {
		t.Errorf("replay diverged on period: %s vs %s", first.Period, second.Period)
	}
}
