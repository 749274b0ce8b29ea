package errors

import "testing"

func TestErrorCodeTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		phase    string
		category string
	}{
		{"DSG001", DSG001, "desugar", "scope"},
		{"DSG002", DSG002, "desugar", "scope"},
		{"DSG003", DSG003, "desugar", "declaration"},

		{"EVL001", EVL001, "eval", "scope"},
		{"EVL002", EVL002, "eval", "type"},
		{"EVL003", EVL003, "eval", "arity"},
		{"EVL004", EVL004, "eval", "primitive"},
		{"EVL005", EVL005, "eval", "primitive"},
		{"EVL006", EVL006, "eval", "domain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, exists := GetErrorInfo(tt.code)
			if !exists {
				t.Errorf("Error code %s not found in registry", tt.code)
				return
			}
			if info.Code != tt.code {
				t.Errorf("Code mismatch: got %s, want %s", info.Code, tt.code)
			}
			if info.Phase != tt.phase {
				t.Errorf("Phase mismatch for %s: got %s, want %s", tt.code, info.Phase, tt.phase)
			}
			if info.Category != tt.category {
				t.Errorf("Category mismatch for %s: got %s, want %s", tt.code, info.Category, tt.category)
			}
		})
	}
}

func TestErrorTypeCheckers(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		isDesugar  bool
		isEvalCode bool
	}{
		{"Desugar error", DSG001, true, false},
		{"Eval error", EVL001, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDesugarError(tt.code); got != tt.isDesugar {
				t.Errorf("IsDesugarError(%s) = %v, want %v", tt.code, got, tt.isDesugar)
			}
			if got := IsEvalError(tt.code); got != tt.isEvalCode {
				t.Errorf("IsEvalError(%s) = %v, want %v", tt.code, got, tt.isEvalCode)
			}
		})
	}
}

func TestAllErrorCodesInRegistry(t *testing.T) {
	allCodes := []string{
		DSG001, DSG002, DSG003,
		EVL001, EVL002, EVL003, EVL004, EVL005, EVL006,
	}

	for _, code := range allCodes {
		t.Run(code, func(t *testing.T) {
			_, exists := GetErrorInfo(code)
			if !exists {
				t.Errorf("Error code %s is defined but not in registry", code)
			}
		})
	}

	if len(ErrorRegistry) < len(allCodes) {
		t.Errorf("Registry has %d codes, expected at least %d", len(ErrorRegistry), len(allCodes))
	}
}

func TestErrorInfoConsistency(t *testing.T) {
	for code, info := range ErrorRegistry {
		if info.Code != code {
			t.Errorf("Code mismatch in registry: key=%s, info.Code=%s", code, info.Code)
		}
		if len(code) < 4 || len(code) > 6 {
			t.Errorf("Invalid code format: %s", code)
		}

		validPhases := map[string]bool{"desugar": true, "eval": true}
		if !validPhases[info.Phase] {
			t.Errorf("Invalid phase for %s: %s", code, info.Phase)
		}
		if info.Description == "" {
			t.Errorf("Empty description for %s", code)
		}
	}
}
