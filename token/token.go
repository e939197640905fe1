/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token defines the prompt template token grammar.
//
// Tokens are double-curly-brace placeholders that reference blueprint
// session data: form fields, whole sections, and per-section notes.
// The surface syntax is a compatibility contract with every previously
// authored template, so delimiter characters and precedence order must
// not change.
package token

// Type identifies the kind of data a token references.
type Type string

const (
	// Field references a single form field by key: {{field:KEY}}
	Field Type = "field"

	// Section references all fields of a section: {{section:KEY}}
	Section Type = "section"

	// Notes references a section's markdown notes: {{notes:KEY}}
	Notes Type = "notes"

	// LegacyFieldsJSON is the whole-snapshot field dump: {{fields_json}}
	LegacyFieldsJSON Type = "legacy-fields-json"

	// LegacyNotesJSON is the whole-snapshot notes dump: {{notes_json}}
	LegacyNotesJSON Type = "legacy-notes-json"
)

// Fixed keys carried by the legacy whole-snapshot tokens.
const (
	FieldsJSONKey = "fields_json"
	NotesJSONKey  = "notes_json"
)

// Occurrence is one recognized placeholder found in template text.
type Occurrence struct {
	// Type is the kind of data this token references.
	Type Type

	// Key is the identifier inside the token: a field key, a section
	// identifier, or a fixed sentinel for the legacy types.
	Key string

	// Raw is the exact substring matched, including delimiters.
	Raw string

	// Start is the byte offset of the first delimiter character.
	Start int

	// End is the byte offset one past the closing delimiter.
	End int
}

// Format renders a token of the given type and key in canonical syntax.
// Legacy types ignore the key since they carry a fixed one.
func Format(t Type, key string) string {
	switch t {
	case Field:
		return "{{field:" + key + "}}"
	case Section:
		return "{{section:" + key + "}}"
	case Notes:
		return "{{notes:" + key + "}}"
	case LegacyFieldsJSON:
		return "{{" + FieldsJSONKey + "}}"
	case LegacyNotesJSON:
		return "{{" + NotesJSONKey + "}}"
	}
	return ""
}
