package power

import "errors"

// Sentinel errors for option validation and inputs.
var (
	// ErrNilTransition is returned when Solve or Step gets a nil matrix.
	ErrNilTransition = errors.New("power: nil transition")

	// ErrBadTeleport is returned when τ is not in the open interval (0,1).
	ErrBadTeleport = errors.New("power: teleport probability must be in (0,1)")

	// ErrBadIterations is returned when Iterations < 1.
	ErrBadIterations = errors.New("power: iterations must be >= 1")

	// ErrBadTolerance is returned when Tolerance is negative or NaN.
	ErrBadTolerance = errors.New("power: tolerance must be >= 0")
)

// Defaults of the classic experiment (τ = 0.2, 40 steps).
const (
	DefaultTeleport   = 0.2
	DefaultIterations = 40
)

// Options configures Solve.
type Options struct {
	// Teleport is τ, the probability of jumping to a uniform random node.
	Teleport float64

	// Iterations is the fixed step budget I.
	Iterations int

	// Tolerance enables early stopping on the L1 step change when > 0.
	// Zero keeps the pure iteration-count behavior.
	Tolerance float64
}

// DefaultOptions returns τ=0.2, I=40 and no residual criterion.
func DefaultOptions() Options {
	return Options{
		Teleport:   DefaultTeleport,
		Iterations: DefaultIterations,
		Tolerance:  0,
	}
}

// Result holds the outcome of Solve.
type Result struct {
	// Rank is the final vector, indexed by 0-based node.
	Rank []float64

	// Iterations is the number of steps actually performed.
	Iterations int

	// Residual is ‖R_last − R_prev‖₁ of the final step.
	Residual float64

	// Converged is true when the Tolerance criterion stopped the loop.
	Converged bool
}
