package utils

import "fmt"

// Config represents the tunable parameters of a factorization run
type Config struct {
	// Maximum number of period-finding attempts before giving up
	MaxAttempts int

	// Seed for all random draws (base selection, measurement sampling).
	// Runs with equal seeds replay identically.
	Seed uint64

	// Counting-register width override. Zero selects the default rule
	// t = 2w + 1 for a w-bit modulus.
	CountingQubits int

	// Maximum resamples of a single simulated distribution after a
	// degenerate zero measurement
	MaxResamples int

	// Total qubit budget (counting + work registers). The simulated
	// state space grows as 2^(t+w), so this caps the modulus size.
	MaxQubits int
}

// DefaultConfig returns the default factorization parameters
func DefaultConfig() *Config {
	return &Config{
		MaxAttempts:    10,
		Seed:           1,
		CountingQubits: 0,
		MaxResamples:   8,
		MaxQubits:      26,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive, got %d", c.MaxAttempts)
	}

	if c.CountingQubits < 0 {
		return fmt.Errorf("counting qubits must be non-negative, got %d", c.CountingQubits)
	}

	if c.MaxResamples < 0 {
		return fmt.Errorf("max resamples must be non-negative, got %d", c.MaxResamples)
	}

	if c.MaxQubits <= 0 {
		return fmt.Errorf("qubit budget must be positive, got %d", c.MaxQubits)
	}

	if c.CountingQubits > 0 && c.CountingQubits >= c.MaxQubits {
		return fmt.Errorf("counting qubits (%d) must leave room for the work register within the qubit budget (%d)",
			c.CountingQubits, c.MaxQubits)
	}

	return nil
}

// WithMaxAttempts sets the attempt bound
func (c *Config) WithMaxAttempts(attempts int) *Config {
	c.MaxAttempts = attempts
	return c
}

// WithSeed sets the run seed
func (c *Config) WithSeed(seed uint64) *Config {
	c.Seed = seed
	return c
}

// WithCountingQubits overrides the counting-register width
func (c *Config) WithCountingQubits(qubits int) *Config {
	c.CountingQubits = qubits
	return c
}

// WithMaxResamples sets the zero-measurement resample bound
func (c *Config) WithMaxResamples(resamples int) *Config {
	c.MaxResamples = resamples
	return c
}

// WithMaxQubits sets the total qubit budget
func (c *Config) WithMaxQubits(qubits int) *Config {
	c.MaxQubits = qubits
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
