/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"fmt"
	"strings"
)

// Format selects an output shape for section field rendering.
type Format string

const (
	// FormatPlain outputs one "Label: value" line per field (default).
	FormatPlain Format = "plain"

	// FormatMarkdown outputs one "- **Label**: value" bullet per field.
	FormatMarkdown Format = "markdown"

	// FormatJSON outputs a JSON object keyed by field key.
	FormatJSON Format = "json"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatPlain),
		string(FormatMarkdown),
		string(FormatJSON),
	}
}

// ParseFormat converts a string to a Format, returning an error for
// unrecognized values.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPlain, FormatMarkdown, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid format %q (valid: %s)",
			s, strings.Join(ValidFormats(), ", "))
	}
}
