/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter_test

import (
	"testing"

	"bennypowers.dev/tavnit/formatter"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected formatter.Format
		wantErr  bool
	}{
		{"plain", formatter.FormatPlain, false},
		{"markdown", formatter.FormatMarkdown, false},
		{"json", formatter.FormatJSON, false},
		{"yaml", "", true},
		{"", "", true},
		{"Markdown", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := formatter.ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
