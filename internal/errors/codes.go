// Package errors provides centralized error code definitions for tlcore.
// All error codes follow a consistent taxonomy for structured, machine
// readable error reporting, adapted from the teacher's internal/errors
// package.
package errors

// Error code constants organized by phase. Each constant represents a
// specific error condition with structured reporting.
const (
	// ============================================================================
	// Desugaring Errors (DSG###)
	// ============================================================================

	// DSG001 indicates a name-parameter identifier was referenced outside
	// any function declaration that introduced it.
	DSG001 = "DSG001"

	// DSG002 indicates a where-dim binding list could not be lowered:
	// either a duplicate dimension at the same nesting depth, or a
	// quantifier binding referencing an identifier with no assigned
	// dimension. The desugarer also returns it for a surface node it
	// does not recognise.
	DSG002 = "DSG002"

	// DSG003 indicates a multi-flavour function declaration whose
	// base/value/name parameter lists could not be reconciled with its
	// call sites.
	DSG003 = "DSG003"

	// ============================================================================
	// Evaluator Errors (EVL###)
	// ============================================================================
	// These are the only errors eval can raise; every other outcome is a
	// Left(Value) or a Right(Domain) asking the driver to close more
	// dimensions and retry.

	// EVL001 indicates the identifier has no binding in the environment.
	EVL001 = "EVL001" // UndefinedIdentifier

	// EVL002 indicates an operand had the wrong Value kind for the
	// operation being performed on it.
	EVL002 = "EVL002" // TypeError

	// EVL003 indicates a base/value application supplied the wrong
	// number of arguments for the abstraction's parameter list.
	EVL003 = "EVL003" // ArityMismatch

	// EVL004 indicates an App named an operator absent from the
	// primitive table.
	EVL004 = "EVL004" // UnknownPrimitive

	// EVL005 indicates an App's operator position evaluated to something
	// other than an Ident (an Ident naming no known primitive is EVL004).
	EVL005 = "EVL005" // NotAnOperator

	// EVL006 indicates a Right(Domain) reached the driver's top level
	// (ExpectValue), which requires a fully-resolved Value.
	EVL006 = "EVL006" // ExpectedValue
)

// ErrorInfo provides structured information about an error code.
type ErrorInfo struct {
	Code        string
	Phase       string
	Category    string
	Description string
}

// ErrorRegistry maps error codes to their information.
var ErrorRegistry = map[string]ErrorInfo{
	DSG001: {DSG001, "desugar", "scope", "Name parameter referenced outside its function"},
	DSG002: {DSG002, "desugar", "scope", "Invalid where-dim binding list"},
	DSG003: {DSG003, "desugar", "declaration", "Inconsistent multi-flavour function declaration"},

	EVL001: {EVL001, "eval", "scope", "Undefined identifier"},
	EVL002: {EVL002, "eval", "type", "Type error"},
	EVL003: {EVL003, "eval", "arity", "Arity mismatch"},
	EVL004: {EVL004, "eval", "primitive", "Unknown primitive operator"},
	EVL005: {EVL005, "eval", "primitive", "Operator position is not an operator"},
	EVL006: {EVL006, "eval", "domain", "Expected a value, got an unresolved domain"},
}

// GetErrorInfo returns information about an error code.
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, exists := ErrorRegistry[code]
	return info, exists
}

// IsDesugarError checks if the error code belongs to the desugaring phase.
func IsDesugarError(code string) bool {
	info, exists := GetErrorInfo(code)
	return exists && info.Phase == "desugar"
}

// IsEvalError checks if the error code belongs to the evaluator.
func IsEvalError(code string) bool {
	info, exists := GetErrorInfo(code)
	return exists && info.Phase == "eval"
}
