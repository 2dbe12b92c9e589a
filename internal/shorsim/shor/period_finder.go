// Package shor implements the period-finding attempt state machine and
// the factorization control loop around it.
package shor

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/qryptic/shorsim/internal/shorsim/circuit"
	"github.com/qryptic/shorsim/internal/shorsim/core"
	"github.com/qryptic/shorsim/internal/shorsim/simulator"
	"github.com/qryptic/shorsim/internal/shorsim/utils"
)

// ErrSimulationFailed wraps any error the simulation backend returns,
// so callers can tell backend failures from circuit-construction ones.
var ErrSimulationFailed = errors.New("simulation failed")

// Simulator executes a phase-estimation circuit descriptor and returns
// the measurement distribution over the counting register. The period
// finder never inspects how the distribution was produced.
type Simulator interface {
	Simulate(desc *circuit.Descriptor) (*simulator.Distribution, error)
}

// Phase is the state a period-finding attempt has reached
type Phase int

const (
	// PhaseBuilt means the circuit descriptor was constructed
	PhaseBuilt Phase = iota

	// PhaseSimulated means the simulator returned a distribution and
	// an outcome was sampled
	PhaseSimulated

	// PhaseExtracted means candidate periods were extracted from the
	// sampled measurement
	PhaseExtracted

	// PhaseValidated is the terminal success state: a candidate r
	// satisfies a^r ≡ 1 (mod N)
	PhaseValidated

	// PhaseRejected is the terminal failure state for this sample;
	// the caller retries with the same or a new base
	PhaseRejected
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseBuilt:
		return "built"
	case PhaseSimulated:
		return "simulated"
	case PhaseExtracted:
		return "extracted"
	case PhaseValidated:
		return "validated"
	case PhaseRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// PeriodResult records the outcome of one period-finding attempt
type PeriodResult struct {
	// Base is the modular-multiplication base the attempt used
	Base *big.Int

	// Phase is the terminal state the attempt reached
	Phase Phase

	// Measurement is the sampled counting-register outcome, -1 when
	// nothing was sampled
	Measurement int

	// Resamples counts extra draws taken after degenerate zero
	// measurements
	Resamples int

	// CandidatesTried counts the convergent denominators validated
	CandidatesTried int

	// Period is the validated period, nil unless Phase is
	// PhaseValidated
	Period *big.Int

	// Reason explains a rejection
	Reason string
}

// PeriodFinder drives single period-finding attempts for one modulus
type PeriodFinder struct {
	modulus *big.Int
	sim     Simulator
	cfg     *utils.Config
	log     zerolog.Logger
}

// NewPeriodFinder creates a period finder for the given modulus
func NewPeriodFinder(modulus *big.Int, sim Simulator, cfg *utils.Config, log zerolog.Logger) *PeriodFinder {
	return &PeriodFinder{
		modulus: new(big.Int).Set(modulus),
		sim:     sim,
		cfg:     cfg,
		log:     log.With().Str("component", "period-finder").Logger(),
	}
}

// FindPeriod runs one attempt for base a: build the circuit, simulate,
// sample a measurement from src, extract candidate periods, and accept
// the first candidate r with a^r ≡ 1 (mod N). A zero measurement is
// resampled up to the configured bound; a sample whose candidates all
// fail rejects the attempt.
func (pf *PeriodFinder) FindPeriod(a *big.Int, src rand.Source) (*PeriodResult, error) {
	res := &PeriodResult{Base: new(big.Int).Set(a), Phase: PhaseBuilt, Measurement: -1}

	desc, err := circuit.Build(a, pf.modulus, pf.cfg.CountingQubits)
	if err != nil {
		return nil, fmt.Errorf("circuit construction failed: %w", err)
	}

	dist, err := pf.sim.Simulate(desc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSimulationFailed, err)
	}
	if err := dist.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSimulationFailed, err)
	}
	res.Phase = PhaseSimulated

	weighted := sampleuv.NewWeighted(dist.Probs, src)
	for sample := 0; sample <= pf.cfg.MaxResamples; sample++ {
		m, ok := weighted.Take()
		if !ok {
			res.Phase = PhaseRejected
			res.Reason = "measurement distribution exhausted"
			return res, nil
		}
		res.Measurement = m
		res.Resamples = sample

		candidates, err := core.CandidatePeriods(big.NewInt(int64(m)), desc.CountingQubits, pf.modulus)
		if errors.Is(err, core.ErrNoPeriodSignal) {
			pf.log.Debug().
				Str("base", a.String()).
				Int("sample", sample).
				Msg("degenerate zero measurement, resampling")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("continued-fraction extraction failed: %w", err)
		}
		res.Phase = PhaseExtracted

		for _, r := range candidates {
			res.CandidatesTried++
			pow, err := core.ModPow(a, r, pf.modulus)
			if err != nil {
				return nil, err
			}
			if pow.Cmp(big.NewInt(1)) == 0 {
				res.Phase = PhaseValidated
				res.Period = r
				pf.log.Debug().
					Str("base", a.String()).
					Int("measurement", m).
					Str("period", r.String()).
					Msg("period validated")
				return res, nil
			}
		}

		res.Phase = PhaseRejected
		res.Reason = fmt.Sprintf("no convergent of %d/2^%d validated as a period", m, desc.CountingQubits)
		return res, nil
	}

	res.Phase = PhaseRejected
	res.Reason = "every sampled measurement was degenerate"
	return res, nil
}
