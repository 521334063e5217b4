package generate

import "errors"

var (
	// ErrGenerationExhausted means the iteration budget ran out before the
	// room target was met. The floor is still usable.
	ErrGenerationExhausted = errors.New("room budget exhausted before target")

	// ErrPlacementFailed means a spawn found no free cell and was skipped.
	ErrPlacementFailed = errors.New("no free cell for spawn")
)
