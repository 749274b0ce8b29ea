package errors

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/translucid-lang/tlcore/internal/schema"
)

func TestNewDesugar(t *testing.T) {
	err := NewDesugar(DSG001, "name parameter referenced outside its function", nil)

	if err.Schema != schema.ErrorV1 {
		t.Errorf("Expected schema %s, got %s", schema.ErrorV1, err.Schema)
	}
	if err.Phase != "desugar" {
		t.Errorf("Expected phase desugar, got %s", err.Phase)
	}
	if err.Code != DSG001 {
		t.Errorf("Expected code %s, got %s", DSG001, err.Code)
	}
}

func TestNewEval(t *testing.T) {
	err := NewEval(EVL001, "undefined identifier", nil)
	if err.Phase != "eval" {
		t.Errorf("Expected phase eval, got %s", err.Phase)
	}
	if err.Code != EVL001 {
		t.Errorf("Expected code %s, got %s", EVL001, err.Code)
	}
}

func TestWithFix(t *testing.T) {
	err := NewEval(EVL001, "undefined identifier", nil)
	err = err.WithFix("check spelling of the identifier", 0.6)

	if err.Fix.Suggestion != "check spelling of the identifier" {
		t.Errorf("Expected fix suggestion, got %s", err.Fix.Suggestion)
	}
	if err.Fix.Confidence != 0.6 {
		t.Errorf("Expected confidence 0.6, got %f", err.Fix.Confidence)
	}
}

func TestWithSourceSpan(t *testing.T) {
	err := NewDesugar(DSG002, "invalid where-dim binding list", nil)
	err = err.WithSourceSpan("main.tl:10:5-10:12")

	if err.SourceSpan != "main.tl:10:5-10:12" {
		t.Errorf("Expected source span main.tl:10:5-10:12, got %s", err.SourceSpan)
	}
}

func TestWithMeta(t *testing.T) {
	meta := map[string]string{
		"identifier": "fib",
		"severity":   "error",
	}

	err := NewEval(EVL004, "unknown primitive operator", nil)
	err = err.WithMeta(meta)

	if err.Meta == nil {
		t.Error("Expected meta to be set")
	}
}

func TestToJSON(t *testing.T) {
	ctx := map[string]any{"identifier": "t"}

	err := NewEval(EVL001, "undefined identifier", ctx).
		WithFix("bind the identifier before referencing it", 0.5).
		WithSourceSpan("test.tl:5:10-5:11")

	jsonData, jsonErr := err.ToJSON()
	if jsonErr != nil {
		t.Fatalf("ToJSON failed: %v", jsonErr)
	}

	var result map[string]interface{}
	if parseErr := json.Unmarshal(jsonData, &result); parseErr != nil {
		t.Fatalf("Failed to parse JSON: %v", parseErr)
	}

	if result["schema"] != schema.ErrorV1 {
		t.Errorf("Expected schema %s, got %v", schema.ErrorV1, result["schema"])
	}
	if result["phase"] != "eval" {
		t.Errorf("Expected phase eval, got %v", result["phase"])
	}
	if result["code"] != EVL001 {
		t.Errorf("Expected code %s, got %v", EVL001, result["code"])
	}
	if _, ok := result["fix"]; !ok {
		t.Error("Fix field should always be present")
	}
}

func TestSafeEncodeError(t *testing.T) {
	result := SafeEncodeError(nil, "eval")
	if result != nil {
		t.Error("Expected nil for nil error")
	}

	testErr := &testError{msg: "test error"}
	result = SafeEncodeError(testErr, "eval")

	var parsed map[string]interface{}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("Failed to parse result: %v", err)
	}

	if parsed["phase"] != "eval" {
		t.Errorf("Expected phase eval, got %v", parsed["phase"])
	}
	if !strings.Contains(parsed["message"].(string), "test error") {
		t.Errorf("Expected message to contain 'test error', got %v", parsed["message"])
	}
}

func TestFormatSourceSpan(t *testing.T) {
	tests := []struct {
		file                         string
		startLine, startCol          int
		endLine, endCol              int
		expected                     string
	}{
		{"main.tl", 10, 5, 10, 9, "main.tl:10:5-10:9"},
		{"test.tl", 1, 1, 1, 1, "test.tl:1:1-1:1"},
	}

	for _, tt := range tests {
		result := FormatSourceSpan(tt.file, tt.startLine, tt.startCol, tt.endLine, tt.endCol)
		if result != tt.expected {
			t.Errorf("FormatSourceSpan(...) = %s, want %s", result, tt.expected)
		}
	}
}

func TestErrorCodes(t *testing.T) {
	desugarCodes := []string{DSG001, DSG002, DSG003}
	for _, code := range desugarCodes {
		if !strings.HasPrefix(code, "DSG") {
			t.Errorf("Desugar code %s should start with DSG", code)
		}
	}

	evalCodes := []string{EVL001, EVL002, EVL003, EVL004, EVL005, EVL006}
	for _, code := range evalCodes {
		if !strings.HasPrefix(code, "EVL") {
			t.Errorf("Eval code %s should start with EVL", code)
		}
	}
}

// Helper type for testing.
type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
