package mdplan

import "errors"

// Error taxonomy shared by the vanilla and DPW solvers. Concrete failures
// are reported via fmt.Errorf("...: %w", ErrX) so callers can inspect the
// kind with errors.Is while still getting a specific message.
var (
	// ErrInvalidConfig covers non-positive iteration/depth counts, negative
	// exploration constants, widening parameters outside their domain, and
	// missing mandatory seams. Reported at solver construction or first plan.
	ErrInvalidConfig = errors.New("mdplan: invalid configuration")

	// ErrModelContractViolation covers an MDP that returns an empty action
	// set at a non-terminal state, a non-finite reward, or a discount
	// outside [0, 1]. Reported by the planning call it breaks.
	ErrModelContractViolation = errors.New("mdplan: model contract violation")

	// ErrUnsupportedCombination covers configuration combinations that are
	// individually valid but jointly unsupported, e.g. DPW action
	// progressive widening enabled with no next_action seam. Reported at
	// solver construction.
	ErrUnsupportedCombination = errors.New("mdplan: unsupported configuration combination")

	// ErrSeamMisuse covers a function-form seam with a nil function or an
	// object-form seam with a nil object, so there is no operation for the
	// engine to dispatch to. Reported on first dispatch.
	ErrSeamMisuse = errors.New("mdplan: seam misuse")
)
