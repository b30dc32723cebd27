package vertical

import "fmt"

// InvalidInputError rejects physical inputs before any integration
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s = %g: %s", e.Field, e.Value, e.Reason)
}

// DomainError is a negative mass coordinate or temperature met during the interior integration
type DomainError struct {
	Z0    float64 // Half thickness of the trial, cm
	T     float64 // Normalized coordinate where the violation was found
	State StateVector
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("S or T < 0 at t = %g for z0 = %g cm: %s", e.T, e.Z0, e.State)
}

// BracketingFailure means no sign change of the residual was found within the step budget
type BracketingFailure struct {
	Steps        int
	InitialZ0r   float64
	LastZ0r      float64
	LastResidual float64
	Err          error // Last evaluation failure, if any
}

func (e *BracketingFailure) Error() string {
	msg := fmt.Sprintf("unable to bracket z0/r after %d steps from %g, last z0/r = %g, residual = %g",
		e.Steps, e.InitialZ0r, e.LastZ0r, e.LastResidual)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *BracketingFailure) Unwrap() error { return e.Err }

// RootRefinementFailure means the root finder failed inside a valid bracket
type RootRefinementFailure struct {
	Lo, Hi       float64 // Bracket in z0/r
	FLo, FHi     float64
	LastZ0r      float64
	LastResidual float64
	Iterations   int
	Err          error
}

func (e *RootRefinementFailure) Error() string {
	return fmt.Sprintf("root refinement failed in [%g, %g] (residuals %g, %g) after %d iterations, last z0/r = %g, residual = %g: %v",
		e.Lo, e.Hi, e.FLo, e.FHi, e.Iterations, e.LastZ0r, e.LastResidual, e.Err)
}

func (e *RootRefinementFailure) Unwrap() error { return e.Err }
