package domain

import "errors"

// Error kinds surfaced by the generation pipeline. Callers match them with
// errors.Is; the transport layer maps them to HTTP status codes.
var (
	// ErrValidation marks a request rejected before any I/O.
	ErrValidation = errors.New("validation failed")

	// ErrRetrieval marks a document store failure while fetching candidates.
	ErrRetrieval = errors.New("document retrieval failed")

	// ErrGenerationFailed marks a provider failure: unreachable endpoint,
	// provider-reported error, or a malformed/empty completion.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrPersistence marks a history insert failure after successful generation.
	ErrPersistence = errors.New("history persistence failed")
)
