package shorsim

import "fmt"

// ErrorCode represents a shorsim error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig

	// ErrInvalidModulus represents a modulus the algorithm cannot accept
	ErrInvalidModulus

	// ErrModulusTooLarge represents a modulus whose circuit exceeds the qubit budget
	ErrModulusTooLarge

	// ErrCircuitBuild represents a circuit construction error
	ErrCircuitBuild

	// ErrSimulation represents a state-vector simulation error
	ErrSimulation
)

// FactorError represents a shorsim error
type FactorError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *FactorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("shorsim error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("shorsim error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *FactorError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *FactorError) Is(target error) bool {
	t, ok := target.(*FactorError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
