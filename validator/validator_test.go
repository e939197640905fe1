/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"reflect"
	"strings"
	"testing"

	"bennypowers.dev/tavnit/testutil"
	"bennypowers.dev/tavnit/token"
	"bennypowers.dev/tavnit/validator"
)

func TestValidateTokens_Valid(t *testing.T) {
	snap := testutil.Snapshot()

	templates := []string{
		"Project: {{field:project_name}}",
		"{{section:overview}}\n\n{{notes:overview}}",
		"{{fields_json}} {{notes_json}}",
		"bare keys resolve as fields: {{project_name}}",
		"no tokens at all",
		"",
	}

	for _, tmpl := range templates {
		result := validator.ValidateTokens(tmpl, snap)
		if !result.Valid {
			t.Errorf("ValidateTokens(%q).Valid = false, errors: %v",
				tmpl, result.Errors)
		}
		if len(result.Errors) != 0 {
			t.Errorf("ValidateTokens(%q) produced %d errors, want 0",
				tmpl, len(result.Errors))
		}
	}
}

func TestValidateTokens_UnknownField(t *testing.T) {
	snap := testutil.Snapshot()

	result := validator.ValidateTokens("Hi {{field:projct_name}}", snap)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(result.Errors))
	}

	d := result.Errors[0]
	if d.Token != "{{field:projct_name}}" {
		t.Errorf("d.Token = %q", d.Token)
	}
	if d.Type != token.Field {
		t.Errorf("d.Type = %q, want %q", d.Type, token.Field)
	}
	if d.Message != "Field not found: projct_name" {
		t.Errorf("d.Message = %q", d.Message)
	}

	expected := []string{
		"{{field:project_name}}",
		"{{field:persona}}",
		"{{field:summary}}",
	}
	if !reflect.DeepEqual(d.Suggestions, expected) {
		t.Errorf("d.Suggestions = %v, want %v", d.Suggestions, expected)
	}
}

func TestValidateTokens_UnknownSection(t *testing.T) {
	snap := testutil.Snapshot()

	tests := []struct {
		name     string
		template string
		typ      token.Type
	}{
		{"section token", "{{section:overveiw}}", token.Section},
		{"notes token", "{{notes:overveiw}}", token.Notes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.ValidateTokens(tt.template, snap)
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			d := result.Errors[0]
			if d.Type != tt.typ {
				t.Errorf("d.Type = %q, want %q", d.Type, tt.typ)
			}
			if d.Message != "Section not found: overveiw" {
				t.Errorf("d.Message = %q", d.Message)
			}
			if len(d.Suggestions) == 0 || d.Suggestions[0] != token.Format(tt.typ, "overview") {
				t.Errorf("d.Suggestions = %v, want %q first",
					d.Suggestions, token.Format(tt.typ, "overview"))
			}
		})
	}
}

func TestValidateTokens_SectionLookupUsesID(t *testing.T) {
	snap := testutil.Snapshot()

	// The display slug is not a valid lookup key.
	result := validator.ValidateTokens("{{section:project-overview}}", snap)
	if result.Valid {
		t.Fatal("expected slug-keyed lookup to fail")
	}
	if result.Errors[0].Message != "Section not found: project-overview" {
		t.Errorf("message = %q", result.Errors[0].Message)
	}
}

func TestValidateTokens_SyntaxDiagnostics(t *testing.T) {
	snap := testutil.Snapshot()

	t.Run("mismatched braces", func(t *testing.T) {
		result := validator.ValidateTokens("{{field:project_name}", snap)
		if result.Valid {
			t.Fatal("expected invalid result")
		}
		if !strings.Contains(result.Errors[0].Message, "mismatched braces") {
			t.Errorf("message = %q", result.Errors[0].Message)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		result := validator.ValidateTokens("{{field:}}", snap)
		if result.Valid {
			t.Fatal("expected invalid result")
		}
		if !strings.Contains(result.Errors[0].Message, "empty token") {
			t.Errorf("message = %q", result.Errors[0].Message)
		}
	})
}

func TestValidateTokens_EscapedBracesIgnored(t *testing.T) {
	snap := testutil.Snapshot()

	// Escaped braces are literal text: no token, no diagnostic, and the
	// lone unbalanced-looking pair does not trip the brace counter.
	result := validator.ValidateTokens(`use \{{field:whatever\}} to reference a field`, snap)
	if !result.Valid {
		t.Errorf("expected valid result, got errors: %v", result.Errors)
	}
}

func TestValidateTokens_MultipleDiagnostics(t *testing.T) {
	snap := testutil.Snapshot()

	result := validator.ValidateTokens("{{field:nope}} {{section:nah}}", snap)
	if len(result.Errors) != 2 {
		t.Fatalf("got %d errors, want 2", len(result.Errors))
	}
	if result.Errors[0].Token != "{{field:nope}}" {
		t.Errorf("first diagnostic token = %q", result.Errors[0].Token)
	}
	if result.Errors[1].Token != "{{section:nah}}" {
		t.Errorf("second diagnostic token = %q", result.Errors[1].Token)
	}
}

func TestDiagnostic_Error(t *testing.T) {
	tests := []struct {
		name     string
		d        validator.Diagnostic
		expected string
	}{
		{
			"message only",
			validator.Diagnostic{Message: "mismatched braces: 1 opening {{ but 0 closing }}"},
			"mismatched braces: 1 opening {{ but 0 closing }}",
		},
		{
			"token and message",
			validator.Diagnostic{Token: "{{field:x}}", Message: "Field not found: x"},
			"{{field:x}}: Field not found: x",
		},
		{
			"with suggestions",
			validator.Diagnostic{
				Token:       "{{field:projct}}",
				Message:     "Field not found: projct",
				Suggestions: []string{"{{field:project}}", "{{field:product}}"},
			},
			"{{field:projct}}: Field not found: projct (did you mean {{field:project}}, {{field:product}}?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}
