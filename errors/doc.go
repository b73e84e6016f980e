// Package errors provides standardized error handling patterns for the
// example-network data pipeline.
//
// # Overview
//
// The pipeline distinguishes two error classes: Invalid (bad input, bad
// token, rule violations - report and stop) and Fatal (unrecoverable states
// such as a broken rule source - stop immediately). Classification enables
// callers to decide between precise single-cause reporting and aggregate
// reporting without string matching.
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Two wrapper functions provide classification-aware wrapping:
//
//	errors.WrapInvalid(err, "Component", "Method", "action")  // For validation errors
//	errors.WrapFatal(err, "Component", "Method", "action")    // For unrecoverable errors
//
// The generic Wrap() function adds context without setting a class.
//
// # Standard Error Variables
//
// Sentinel variables cover the pipeline's error taxonomy:
//
//   - Token resolution: ErrResolution (unsupported resolver, missing
//     interface context, or a failed lookup behind a token)
//   - Lookup services: ErrLookupNotFound
//   - Rule engine: ErrRegistration (non-invocable rule entry),
//     ErrRuleViolation (aggregate finalize failure), ErrSessionFinalized
//     (protocol misuse), ErrRuleSourceLoad (broken rule source)
//   - Configuration: ErrInvalidConfig, ErrMissingConfig
//
// All sentinels compose with errors.Is/errors.As through wrapping chains:
//
//	if errors.Is(err, errors.ErrRuleViolation) {
//	    // every device was evaluated; err lists all recorded issues
//	}
package errors
