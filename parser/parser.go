/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser extracts typed token occurrences from template text.
package parser

import (
	"bennypowers.dev/tavnit/token"
)

// ParseTokens scans template text and returns every token occurrence in
// ascending position order. Parsing is total: text that matches no token
// form is left alone and never reported as an error. Occurrence spans
// never overlap; precedence between the explicit, legacy, and bare forms
// is resolved by the grammar pattern itself.
func ParseTokens(template string) []token.Occurrence {
	matches := token.Pattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return nil
	}

	occurrences := make([]token.Occurrence, 0, len(matches))
	for _, m := range matches {
		occ := token.Occurrence{
			Raw:   template[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
		}

		switch {
		case m[2] >= 0:
			// Explicit prefixed form: {{field:KEY}} etc.
			occ.Type = token.Type(template[m[2]:m[3]])
			occ.Key = template[m[4]:m[5]]
		case m[6] >= 0:
			// Legacy whole-snapshot dump.
			occ.Key = template[m[6]:m[7]]
			if occ.Key == token.FieldsJSONKey {
				occ.Type = token.LegacyFieldsJSON
			} else {
				occ.Type = token.LegacyNotesJSON
			}
		default:
			// Bare form, kept for templates authored before the
			// explicit prefixes existed. Always a field reference.
			occ.Type = token.Field
			occ.Key = template[m[8]:m[9]]
		}

		occurrences = append(occurrences, occ)
	}

	return occurrences
}

// HasTokens reports whether the template contains at least one token.
func HasTokens(template string) bool {
	return token.Pattern.MatchString(template)
}

// ExtractTokenKeys returns the unique keys referenced by the template,
// grouped by token type. Keys keep their first-seen order within a type.
func ExtractTokenKeys(template string) map[token.Type][]string {
	keys := make(map[token.Type][]string)
	seen := make(map[token.Type]map[string]bool)

	for _, occ := range ParseTokens(template) {
		if seen[occ.Type] == nil {
			seen[occ.Type] = make(map[string]bool)
		}
		if seen[occ.Type][occ.Key] {
			continue
		}
		seen[occ.Type][occ.Key] = true
		keys[occ.Type] = append(keys[occ.Type], occ.Key)
	}

	return keys
}
