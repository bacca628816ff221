package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Container errors
const (
	// ErrCodeComponentNotFound indicates a resolve of a name that was never registered.
	ErrCodeComponentNotFound ErrorCode = "COMPONENT_NOT_FOUND"
	// ErrCodeDuplicateComponent indicates a second registration under an existing name.
	ErrCodeDuplicateComponent ErrorCode = "DUPLICATE_COMPONENT"
	// ErrCodeTypeMismatch indicates a resolved instance failed the expected-type check.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeConstructionFailed indicates a component factory returned an error.
	ErrCodeConstructionFailed ErrorCode = "CONSTRUCTION_FAILED"
)

// Discovery errors
const (
	// ErrCodeModuleNotFound indicates an installed app identifier with no registered module.
	ErrCodeModuleNotFound ErrorCode = "MODULE_NOT_FOUND"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates the project configuration could not be loaded or is malformed.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidInput indicates a value failed struct validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// General errors
const (
	// ErrCodeInternal indicates an unexpected failure with no more specific code.
	ErrCodeInternal ErrorCode = "INTERNAL"
)
