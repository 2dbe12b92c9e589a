package utils

import "testing"

// TestDefaultConfig tests that the default configuration is valid
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if config.MaxAttempts <= 0 {
		t.Error("MaxAttempts should be positive")
	}

	if config.MaxQubits <= 0 {
		t.Error("MaxQubits should be positive")
	}

	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

// TestConfigValidate tests the Validate method
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{"valid default", func(c *Config) {}, false},
		{"zero attempts", func(c *Config) { c.MaxAttempts = 0 }, true},
		{"negative attempts", func(c *Config) { c.MaxAttempts = -1 }, true},
		{"negative counting qubits", func(c *Config) { c.CountingQubits = -3 }, true},
		{"negative resamples", func(c *Config) { c.MaxResamples = -1 }, true},
		{"zero qubit budget", func(c *Config) { c.MaxQubits = 0 }, true},
		{"counting qubits exhaust budget", func(c *Config) { c.CountingQubits = 26 }, true},
		{"explicit counting qubits", func(c *Config) { c.CountingQubits = 9 }, false},
		{"zero resamples allowed", func(c *Config) { c.MaxResamples = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if (err != nil) != tt.expectErr {
				t.Errorf("Validate() error = %v, expectErr = %v", err, tt.expectErr)
			}
		})
	}
}

// TestConfigClone tests that Clone produces an independent copy
func TestConfigClone(t *testing.T) {
	original := DefaultConfig().WithSeed(42).WithMaxAttempts(25)
	clone := original.Clone()

	if clone.Seed != 42 || clone.MaxAttempts != 25 {
		t.Errorf("clone = %+v, expected copy of %+v", clone, original)
	}

	clone.Seed = 7
	if original.Seed != 42 {
		t.Error("mutating the clone changed the original")
	}
}

// TestConfigBuilders tests the With* builder chain
func TestConfigBuilders(t *testing.T) {
	config := DefaultConfig().
		WithMaxAttempts(30).
		WithSeed(99).
		WithCountingQubits(11).
		WithMaxResamples(4).
		WithMaxQubits(24)

	if config.MaxAttempts != 30 || config.Seed != 99 || config.CountingQubits != 11 ||
		config.MaxResamples != 4 || config.MaxQubits != 24 {
		t.Errorf("builder chain produced %+v", config)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("built config should be valid: %v", err)
	}
}
