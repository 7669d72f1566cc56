// Package kernel provides the shared value objects of the order domain:
// UUID identities, decimal-backed Money amounts, and the human-readable
// OrderNumber.
//
// All types follow the same conventions:
//   - Private fields; construction only through factory functions
//   - A Validate method that rejects zero values created outside constructors
//   - Immutability: mutating operations return new values
//
// The kernel has no dependencies on other domain packages and may be used
// from any layer.
package kernel
