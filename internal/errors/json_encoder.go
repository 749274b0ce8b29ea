// Package errors provides structured error encoding for tlcore.
package errors

import (
	"fmt"

	"github.com/translucid-lang/tlcore/internal/schema"
)

const schemaVersion = schema.ErrorV1

// Fix represents a suggested fix with confidence score.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// Encoded represents a structured error in JSON format, used for errors
// raised before a Report has been fully assembled (e.g. a driver-level
// recover, or SafeEncodeError).
type Encoded struct {
	Schema     string      `json:"schema"`
	Phase      string      `json:"phase"`
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Fix        Fix         `json:"fix"`
	Context    interface{} `json:"context,omitempty"`
	SourceSpan string      `json:"source_span,omitempty"`
	Meta       interface{} `json:"meta,omitempty"`
}

// NewDesugar creates a desugaring-phase error (DSG###).
func NewDesugar(code, msg string, ctx interface{}) Encoded {
	return Encoded{
		Schema:  schemaVersion,
		Phase:   "desugar",
		Code:    code,
		Message: msg,
		Fix:     Fix{Suggestion: "", Confidence: 0.0},
		Context: ctx,
	}
}

// NewEval creates an evaluator-phase error (EVL###).
func NewEval(code, msg string, ctx interface{}) Encoded {
	return Encoded{
		Schema:  schemaVersion,
		Phase:   "eval",
		Code:    code,
		Message: msg,
		Fix:     Fix{Suggestion: "", Confidence: 0.0},
		Context: ctx,
	}
}

// WithFix adds a fix suggestion to the error.
func (e Encoded) WithFix(suggestion string, confidence float64) Encoded {
	e.Fix = Fix{
		Suggestion: suggestion,
		Confidence: confidence,
	}
	return e
}

// WithSourceSpan adds source location to the error.
func (e Encoded) WithSourceSpan(span string) Encoded {
	e.SourceSpan = span
	return e
}

// WithMeta adds metadata to the error.
func (e Encoded) WithMeta(meta interface{}) Encoded {
	e.Meta = meta
	return e
}

// ToJSON converts the error to deterministic JSON.
func (e Encoded) ToJSON() ([]byte, error) {
	data, err := schema.MarshalDeterministic(e)
	if err != nil {
		fallback := Encoded{
			Schema:  schemaVersion,
			Message: "encoding failed",
			Meta:    map[string]string{"original_error": err.Error()},
		}
		return schema.MarshalDeterministic(fallback)
	}
	return schema.FormatJSON(data)
}

// SafeEncodeError safely encodes any error, never panics.
func SafeEncodeError(err error, phase string) []byte {
	if err == nil {
		return nil
	}

	encoded := Encoded{
		Schema:  schemaVersion,
		Phase:   phase,
		Code:    "ERR000",
		Message: err.Error(),
		Fix:     Fix{Suggestion: "", Confidence: 0.0},
	}

	data, _ := encoded.ToJSON()
	return data
}

// FormatSourceSpan formats a source span as "file:line:col-line:col".
func FormatSourceSpan(file string, startLine, startCol, endLine, endCol int) string {
	return fmt.Sprintf("%s:%d:%d-%d:%d", file, startLine, startCol, endLine, endCol)
}
