package shor

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/qryptic/shorsim/internal/shorsim/circuit"
	"github.com/qryptic/shorsim/internal/shorsim/core"
	"github.com/qryptic/shorsim/internal/shorsim/simulator"
	"github.com/qryptic/shorsim/internal/shorsim/utils"
)

// ErrQubitBudget is returned when the circuit for a modulus would need
// more qubits than the configured budget allows.
var ErrQubitBudget = errors.New("qubit budget exceeded")

// Status is the terminal outcome of a factorization run
type Status int

const (
	// StatusSuccess means a verified non-trivial factor pair was found
	StatusSuccess Status = iota

	// StatusFailed means the attempt budget was exhausted or the
	// modulus has no non-trivial factors
	StatusFailed
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// AttemptRecord is the evidence retained for one attempt, successful or
// not. The full history is returned with every result.
type AttemptRecord struct {
	// Attempt is the 1-based attempt index
	Attempt int

	// Base is the randomly chosen base
	Base *big.Int

	// GCDShortcut marks attempts resolved classically because the
	// base shared a factor with the modulus
	GCDShortcut bool

	// Phase is the state the period finder reached; PhaseBuilt for
	// gcd-shortcut attempts that never built a circuit
	Phase Phase

	// Measurement is the sampled outcome, -1 when nothing was sampled
	Measurement int

	// Period is the validated period, nil if none
	Period *big.Int

	// P and Q are the factors recovered by this attempt, nil if none
	P, Q *big.Int

	// Reason explains why the attempt was discarded
	Reason string

	// Elapsed is the wall-clock duration of the attempt
	Elapsed time.Duration
}

// Result is the terminal outcome of Factorize with its evidence
type Result struct {
	// Status distinguishes success from exhaustion
	Status Status

	// P and Q satisfy P*Q = N on success
	P, Q *big.Int

	// Base and Period are the winning attempt's evidence; nil when the
	// factors came from a classical shortcut
	Base   *big.Int
	Period *big.Int

	// AttemptsUsed counts period-finding attempts consumed
	AttemptsUsed int

	// Reason explains a failure or names the shortcut taken
	Reason string

	// Attempts is the full attempt history in order
	Attempts []AttemptRecord
}

// Factorizer runs the top-level control loop of the factorization
// algorithm: pre-checks, base selection, period finding, and factor
// assembly with bounded retries.
type Factorizer struct {
	cfg *utils.Config
	sim Simulator
	log zerolog.Logger
}

// NewFactorizer creates a factorizer. A nil simulator selects the
// built-in state-vector simulator sized to the configured qubit budget.
func NewFactorizer(cfg *utils.Config, sim Simulator, log zerolog.Logger) (*Factorizer, error) {
	if cfg == nil {
		cfg = utils.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if sim == nil {
		sim = simulator.New(cfg.MaxQubits)
	}
	return &Factorizer{
		cfg: cfg.Clone(),
		sim: sim,
		log: log.With().Str("component", "factorizer").Logger(),
	}, nil
}

// Factorize factors n, retrying period finding up to the configured
// attempt bound. Even moduli, perfect powers, and probable primes are
// resolved classically before any circuit is built.
func (f *Factorizer) Factorize(n *big.Int) (*Result, error) {
	if n == nil || n.Cmp(big.NewInt(3)) < 0 {
		return nil, fmt.Errorf("modulus must be an integer >= 3, got %v", n)
	}

	if core.IsEven(n) {
		half := new(big.Int).Rsh(n, 1)
		f.log.Info().Str("n", n.String()).Msg("even modulus, factored classically")
		return f.shortcutResult(n, big.NewInt(2), half, "even modulus shortcut"), nil
	}

	if base, ok := core.PerfectPower(n); ok {
		other := new(big.Int).Div(n, base)
		f.log.Info().Str("n", n.String()).Str("root", base.String()).Msg("perfect power, factored classically")
		return f.shortcutResult(n, base, other, "perfect power shortcut"), nil
	}

	if core.IsProbablePrime(n) {
		f.log.Info().Str("n", n.String()).Msg("modulus is probably prime")
		return &Result{
			Status: StatusFailed,
			Reason: "modulus is probably prime; no non-trivial factors exist",
		}, nil
	}

	if t, w := circuit.Widths(n, f.cfg.CountingQubits); t+w > f.cfg.MaxQubits {
		return nil, fmt.Errorf("modulus %s needs %d qubits, budget is %d: %w", n, t+w, f.cfg.MaxQubits, ErrQubitBudget)
	}

	// Base selection draws from [2, N-2] as an int64 range, so a
	// modulus past that range is rejected even under a generous qubit
	// budget.
	if !n.IsInt64() {
		return nil, fmt.Errorf("modulus %s too large for base selection: %w", n, ErrQubitBudget)
	}

	transcript := utils.NewTranscript(f.cfg.Seed)
	transcript.Append(n.Bytes())
	baseRng := rand.New(transcript.Source())
	finder := NewPeriodFinder(n, f.sim, f.cfg, f.log)

	nInt := n.Int64()
	history := make([]AttemptRecord, 0, f.cfg.MaxAttempts)

	for attempt := 1; attempt <= f.cfg.MaxAttempts; attempt++ {
		start := time.Now()
		base := big.NewInt(2 + baseRng.Int64N(nInt-3))
		rec := AttemptRecord{Attempt: attempt, Base: base, Measurement: -1, Phase: PhaseBuilt}

		if g, ok := core.TrivialFactor(base, n); ok {
			other := new(big.Int).Div(n, g)
			rec.GCDShortcut = true
			rec.P, rec.Q = g, other
			rec.Elapsed = time.Since(start)
			history = append(history, rec)

			f.log.Info().
				Int("attempt", attempt).
				Str("base", base.String()).
				Str("gcd", g.String()).
				Msg("base shares a factor with the modulus")

			res := f.verifiedSuccess(n, g, other, base, nil, attempt, history, "gcd shortcut on base selection")
			if res != nil {
				return res, nil
			}
			continue
		}

		transcript.AppendUint64(uint64(attempt))
		found, err := finder.FindPeriod(base, transcript.Source())
		if err != nil {
			return nil, err
		}

		rec.Phase = found.Phase
		rec.Measurement = found.Measurement
		rec.Period = found.Period
		rec.Reason = found.Reason

		if found.Phase == PhaseValidated {
			p, q, reason := assembleFactors(base, found.Period, n)
			rec.P, rec.Q = p, q
			rec.Reason = reason
			rec.Elapsed = time.Since(start)
			history = append(history, rec)

			if p != nil {
				f.log.Info().
					Int("attempt", attempt).
					Str("base", base.String()).
					Str("period", found.Period.String()).
					Str("p", p.String()).
					Str("q", q.String()).
					Msg("factors recovered")

				res := f.verifiedSuccess(n, p, q, base, found.Period, attempt, history, "")
				if res != nil {
					return res, nil
				}
				continue
			}

			f.log.Info().
				Int("attempt", attempt).
				Str("base", base.String()).
				Str("period", found.Period.String()).
				Str("reason", reason).
				Msg("valid period yielded no factors")
			continue
		}

		rec.Elapsed = time.Since(start)
		history = append(history, rec)
		f.log.Info().
			Int("attempt", attempt).
			Str("base", base.String()).
			Str("phase", found.Phase.String()).
			Str("reason", found.Reason).
			Msg("attempt rejected")
	}

	f.log.Warn().Str("n", n.String()).Int("attempts", f.cfg.MaxAttempts).Msg("attempt budget exhausted")
	return &Result{
		Status:       StatusFailed,
		AttemptsUsed: f.cfg.MaxAttempts,
		Reason:       fmt.Sprintf("no attempt out of %d produced a non-trivial factor pair", f.cfg.MaxAttempts),
		Attempts:     history,
	}, nil
}

// assembleFactors turns a validated period into a factor pair, or
// explains why it cannot: an odd period or a^(r/2) ≡ -1 (mod N) are the
// algorithm's inherent failure modes, not errors.
func assembleFactors(a, r, n *big.Int) (p, q *big.Int, reason string) {
	if r.Bit(0) == 1 {
		return nil, nil, "period is odd"
	}

	half := new(big.Int).Rsh(r, 1)
	x, err := core.ModPow(a, half, n)
	if err != nil {
		return nil, nil, err.Error()
	}

	nMinusOne := new(big.Int).Sub(n, big.NewInt(1))
	if x.Cmp(nMinusOne) == 0 {
		return nil, nil, "a^(r/2) ≡ -1 (mod N)"
	}

	if g, ok := core.TrivialFactor(new(big.Int).Sub(x, big.NewInt(1)), n); ok {
		return g, new(big.Int).Div(n, g), ""
	}
	if g, ok := core.TrivialFactor(new(big.Int).Add(x, big.NewInt(1)), n); ok {
		return g, new(big.Int).Div(n, g), ""
	}

	return nil, nil, "gcd checks produced only trivial factors"
}

// verifiedSuccess builds a success result after re-verifying p*q = n by
// direct multiplication. It returns nil when verification fails, which
// sends the control loop into the next attempt.
func (f *Factorizer) verifiedSuccess(n, p, q, base, period *big.Int, attempts int, history []AttemptRecord, reason string) *Result {
	if new(big.Int).Mul(p, q).Cmp(n) != 0 {
		f.log.Error().
			Str("p", p.String()).
			Str("q", q.String()).
			Str("n", n.String()).
			Msg("factor pair failed verification, discarding attempt")
		return nil
	}
	return &Result{
		Status:       StatusSuccess,
		P:            p,
		Q:            q,
		Base:         base,
		Period:       period,
		AttemptsUsed: attempts,
		Reason:       reason,
		Attempts:     history,
	}
}

// shortcutResult reports factors found by a classical pre-check; the
// quantum path was never entered, so the history is empty.
func (f *Factorizer) shortcutResult(n, p, q *big.Int, reason string) *Result {
	if new(big.Int).Mul(p, q).Cmp(n) != 0 {
		// Pre-check factors are exact by construction.
		panic(fmt.Sprintf("shortcut factors %s * %s != %s", p, q, n))
	}
	return &Result{
		Status: StatusSuccess,
		P:      p,
		Q:      q,
		Reason: reason,
	}
}
