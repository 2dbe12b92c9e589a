package shorsim

import (
	"github.com/rs/zerolog"

	"github.com/qryptic/shorsim/internal/shorsim/circuit"
	"github.com/qryptic/shorsim/internal/shorsim/core"
	"github.com/qryptic/shorsim/internal/shorsim/shor"
	"github.com/qryptic/shorsim/internal/shorsim/simulator"
)

// Descriptor represents a phase-estimation circuit for one (base, modulus) pair
type Descriptor = circuit.Descriptor

// Gate represents a single gate in a circuit descriptor
type Gate = circuit.Gate

// GateOp identifies the operation a gate performs
type GateOp = circuit.GateOp

// Gate operations appearing in phase-estimation circuits
const (
	Hadamard = circuit.Hadamard
	PauliX   = circuit.PauliX
	CModMul  = circuit.CModMul
	InvQFT   = circuit.InvQFT
	Measure  = circuit.Measure
)

// Distribution represents the measurement distribution over the counting register
type Distribution = simulator.Distribution

// Convergent represents one continued-fraction convergent of a measured phase
type Convergent = core.Convergent

// Phase represents the lifecycle stage a period-finding attempt reached
type Phase = shor.Phase

// Period-finding attempt phases, in lifecycle order
const (
	PhaseBuilt     = shor.PhaseBuilt
	PhaseSimulated = shor.PhaseSimulated
	PhaseExtracted = shor.PhaseExtracted
	PhaseValidated = shor.PhaseValidated
	PhaseRejected  = shor.PhaseRejected
)

// Status represents the outcome of a factorization run
type Status = shor.Status

// Factorization outcomes
const (
	StatusSuccess = shor.StatusSuccess
	StatusFailed  = shor.StatusFailed
)

// AttemptRecord represents one attempt in a factorization's history
type AttemptRecord = shor.AttemptRecord

// FactorizationResult represents the outcome of a factorization run,
// including the per-attempt history
type FactorizationResult = shor.Result

// Config represents configuration for the factorizer
type Config struct {
	// Maximum number of period-finding attempts before giving up
	MaxAttempts int

	// Seed for the deterministic transcript driving all random choices
	Seed uint64

	// Counting-register width override; 0 selects 2*ceil(log2 N)+1
	CountingQubits int

	// Maximum measurement redraws per simulation when a degenerate
	// outcome carries no period information
	MaxResamples int

	// Total qubit budget the simulator will accept
	MaxQubits int

	// Logger for attempt-level progress; defaults to a no-op logger
	Logger zerolog.Logger
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return fromInternal(nil)
}

// WithMaxAttempts sets the attempt bound and returns the config
func (c *Config) WithMaxAttempts(n int) *Config {
	c.MaxAttempts = n
	return c
}

// WithSeed sets the transcript seed and returns the config
func (c *Config) WithSeed(seed uint64) *Config {
	c.Seed = seed
	return c
}

// WithCountingQubits sets the counting-register override and returns the config
func (c *Config) WithCountingQubits(t int) *Config {
	c.CountingQubits = t
	return c
}

// WithMaxQubits sets the qubit budget and returns the config
func (c *Config) WithMaxQubits(n int) *Config {
	c.MaxQubits = n
	return c
}

// WithLogger sets the progress logger and returns the config
func (c *Config) WithLogger(log zerolog.Logger) *Config {
	c.Logger = log
	return c
}
