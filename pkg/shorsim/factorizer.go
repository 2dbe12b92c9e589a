package shorsim

import (
	"errors"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/qryptic/shorsim/internal/shorsim/circuit"
	"github.com/qryptic/shorsim/internal/shorsim/shor"
	"github.com/qryptic/shorsim/internal/shorsim/simulator"
	"github.com/qryptic/shorsim/internal/shorsim/utils"
)

// Factorizer is the public interface for running Shor's algorithm
type Factorizer interface {
	// Factorize attempts to split n into a non-trivial factor pair,
	// retrying period finding up to the configured attempt bound
	Factorize(n *big.Int) (*FactorizationResult, error)
}

// Simulator is the public interface for circuit simulation backends.
// The built-in state-vector backend satisfies it; callers may supply
// their own to swap the execution strategy.
type Simulator = shor.Simulator

// factorizerImpl is the internal implementation of Factorizer
type factorizerImpl struct {
	inner *shor.Factorizer
}

// NewFactorizer creates a new factorizer with the given configuration.
// A nil config selects DefaultConfig.
func NewFactorizer(config *Config) (Factorizer, error) {
	return NewFactorizerWithSimulator(config, nil)
}

// NewFactorizerWithSimulator creates a factorizer backed by a custom
// simulation backend. A nil simulator selects the built-in
// state-vector backend sized to the configured qubit budget.
func NewFactorizerWithSimulator(config *Config, sim Simulator) (Factorizer, error) {
	internal, log := toInternal(config)
	if err := internal.Validate(); err != nil {
		return nil, &FactorError{
			Code:    ErrInvalidConfig,
			Message: "invalid configuration",
			Cause:   err,
		}
	}

	inner, err := shor.NewFactorizer(internal, sim, log)
	if err != nil {
		return nil, &FactorError{
			Code:    ErrInvalidConfig,
			Message: "failed to create factorizer",
			Cause:   err,
		}
	}

	return &factorizerImpl{inner: inner}, nil
}

// Factorize attempts to split n into a non-trivial factor pair
func (f *factorizerImpl) Factorize(n *big.Int) (*FactorizationResult, error) {
	if n == nil || n.Cmp(big.NewInt(3)) < 0 {
		return nil, &FactorError{
			Code:    ErrInvalidModulus,
			Message: "modulus must be an integer >= 3",
		}
	}

	res, err := f.inner.Factorize(n)
	if err != nil {
		if errors.Is(err, shor.ErrQubitBudget) {
			return nil, &FactorError{
				Code:    ErrModulusTooLarge,
				Message: "circuit for modulus exceeds the qubit budget",
				Cause:   err,
			}
		}
		if errors.Is(err, shor.ErrSimulationFailed) {
			return nil, &FactorError{
				Code:    ErrSimulation,
				Message: "simulation backend failed",
				Cause:   err,
			}
		}
		return nil, &FactorError{
			Code:    ErrUnknown,
			Message: "factorization failed",
			Cause:   err,
		}
	}
	return res, nil
}

// BuildCircuit constructs the phase-estimation circuit descriptor for
// base a and modulus n. A countingQubits of 0 selects the default
// width 2*ceil(log2 n)+1.
func BuildCircuit(a, n *big.Int, countingQubits int) (*Descriptor, error) {
	desc, err := circuit.Build(a, n, countingQubits)
	if err != nil {
		return nil, &FactorError{
			Code:    ErrCircuitBuild,
			Message: "failed to build circuit",
			Cause:   err,
		}
	}
	return desc, nil
}

// NewStateVectorSimulator creates the built-in exact simulation
// backend with the given total qubit budget
func NewStateVectorSimulator(maxQubits int) Simulator {
	return simulator.New(maxQubits)
}

// toInternal converts a public config to the internal representation
func toInternal(c *Config) (*utils.Config, zerolog.Logger) {
	if c == nil {
		return utils.DefaultConfig(), zerolog.Nop()
	}
	internal := utils.DefaultConfig()
	if c.MaxAttempts != 0 {
		internal.MaxAttempts = c.MaxAttempts
	}
	internal.Seed = c.Seed
	internal.CountingQubits = c.CountingQubits
	if c.MaxResamples != 0 {
		internal.MaxResamples = c.MaxResamples
	}
	if c.MaxQubits != 0 {
		internal.MaxQubits = c.MaxQubits
	}
	return internal, c.Logger
}

// fromInternal converts an internal config to the public representation
func fromInternal(c *utils.Config) *Config {
	if c == nil {
		c = utils.DefaultConfig()
	}
	return &Config{
		MaxAttempts:    c.MaxAttempts,
		Seed:           c.Seed,
		CountingQubits: c.CountingQubits,
		MaxResamples:   c.MaxResamples,
		MaxQubits:      c.MaxQubits,
		Logger:         zerolog.Nop(),
	}
}
