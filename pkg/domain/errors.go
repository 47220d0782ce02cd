package domain

import "errors"

// ErrDuplicatePhase is returned when a phase index is registered twice.
var ErrDuplicatePhase = errors.New("duplicate phase index")

// ErrInvalidPhaseIndex is returned when a phase index falls outside 1..PhaseCount.
var ErrInvalidPhaseIndex = errors.New("invalid phase index")

// ErrIncompleteRegistry is returned when a registry is built without every phase.
var ErrIncompleteRegistry = errors.New("incomplete phase registry")

// ErrPhaseNotFound is returned when a lookup names an unregistered phase.
var ErrPhaseNotFound = errors.New("phase not found")

// ErrGuideNotFound is returned when a phase guide document does not exist.
var ErrGuideNotFound = errors.New("guide not found")

// ErrInputExhausted signals that the input source has no more tokens.
// It is a normal termination signal, not a failure.
var ErrInputExhausted = errors.New("input exhausted")
