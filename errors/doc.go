// Package errors provides unified error handling for turbokit.
// It implements structured error types with machine-readable error codes
// covering container, discovery, and configuration failures.
package errors
