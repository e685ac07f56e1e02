package api

import "testing"

func TestValidateVerifyParams(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		expectedDoc string
		wantValid   bool
	}{
		{"valid word only", "Бабич", "", true},
		{"valid word and doc index", "Бабич", "12", true},
		{"doc index zero", "слово", "0", true},
		{"empty word", "", "", false},
		{"whitespace word", "   ", "", false},
		{"non-numeric doc index", "слово", "abc", false},
		{"negative doc index", "слово", "-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateVerifyParams(tt.word, tt.expectedDoc)
			if result.Valid != tt.wantValid {
				t.Errorf("ValidateVerifyParams(%q, %q).Valid = %v, want %v (errors: %v)",
					tt.word, tt.expectedDoc, result.Valid, tt.wantValid, result.Errors)
			}
			if !tt.wantValid && !result.HasErrors() {
				t.Error("invalid result should carry at least one error")
			}
		})
	}
}

func TestValidateSearchQuery(t *testing.T) {
	if result := ValidateSearchQuery("протокол засідання"); result.HasErrors() {
		t.Errorf("valid query rejected: %v", result.Errors)
	}
	if result := ValidateSearchQuery("  "); !result.HasErrors() {
		t.Error("blank query should be rejected")
	}
}
