/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver substitutes template tokens with live session data,
// producing the prompt text handed to generation.
package resolver

import (
	"strings"

	"bennypowers.dev/tavnit/formatter"
	"bennypowers.dev/tavnit/parser"
	"bennypowers.dev/tavnit/snapshot"
	"bennypowers.dev/tavnit/token"
)

// NoNotesPlaceholder is emitted for notes tokens whose section has no
// note content.
const NoNotesPlaceholder = "(No notes)"

// Result carries the resolved template plus classification metadata for
// preview highlighting.
type Result struct {
	// Resolved is the fully substituted template text.
	Resolved string `json:"resolved"`

	// EmptyTokens lists raw tokens that resolved to nothing: unfilled
	// fields and absent notes.
	EmptyTokens []string `json:"emptyTokens"`

	// MissingTokens lists raw tokens that resolved to a bracketed
	// placeholder because their reference does not exist.
	MissingTokens []string `json:"missingTokens"`
}

// ResolveTokens substitutes every token in the template with its resolved
// value. Resolution never fails: unknown references degrade to bracketed
// inline text, since the output is consumed as a natural-language prompt
// where a thrown error has no sensible rendering. Callers on user-facing
// paths are expected to validate first.
func ResolveTokens(template string, snap *snapshot.Snapshot) string {
	return ResolveTokensWithMetadata(template, snap).Resolved
}

// ResolveTokensWithMetadata resolves the template and additionally
// classifies each occurrence as empty or missing for UI preview. A token
// is never in both lists.
func ResolveTokensWithMetadata(template string, snap *snapshot.Snapshot) Result {
	result := Result{
		EmptyTokens:   []string{},
		MissingTokens: []string{},
	}

	text := parser.EscapeLiteralBraces(template)
	occurrences := parser.ParseTokens(text)

	// Classification inspects resolved values, not positions, so it can
	// run in occurrence order before the splice reshuffles offsets.
	values := make([]string, len(occurrences))
	for i, occ := range occurrences {
		values[i] = resolve(occ, snap)
		switch {
		case isBracketed(values[i]):
			result.MissingTokens = append(result.MissingTokens, occ.Raw)
		case values[i] == "" || values[i] == NoNotesPlaceholder:
			result.EmptyTokens = append(result.EmptyTokens, occ.Raw)
		}
	}

	// Splice in reverse position order so earlier replacements never
	// invalidate the offsets of the ones still pending.
	for i := len(occurrences) - 1; i >= 0; i-- {
		occ := occurrences[i]
		text = text[:occ.Start] + values[i] + text[occ.End:]
	}

	result.Resolved = parser.RestoreEscapedBraces(text)
	return result
}

// resolve produces the substitution value for one occurrence.
func resolve(occ token.Occurrence, snap *snapshot.Snapshot) string {
	switch occ.Type {
	case token.Field:
		return resolveField(occ.Key, snap)
	case token.Section:
		return resolveSection(occ.Key, snap)
	case token.Notes:
		return resolveNotes(occ.Key, snap)
	case token.LegacyFieldsJSON:
		return fieldsJSON(snap)
	case token.LegacyNotesJSON:
		return notesJSON(snap)
	}
	// Unreachable: the parser only emits the five types above.
	return occ.Raw
}

func resolveField(key string, snap *snapshot.Snapshot) string {
	f, found := snap.FieldByKey(key)
	if !found {
		return "[Field not found: " + key + "]"
	}
	if f.Type == snapshot.Toggle {
		switch f.Value {
		case "true":
			return "Yes"
		case "false":
			return "No"
		default:
			return ""
		}
	}
	// Unfilled fields render as nothing, distinguishing "no value"
	// from "no such field".
	return f.Value
}

func resolveSection(key string, snap *snapshot.Snapshot) string {
	sec, found := snap.SectionByID(key)
	if !found {
		return "[Section not found: " + key + "]"
	}
	fields := snap.SectionFields(sec.ID)
	if len(fields) == 0 {
		return "[No fields in section: " + sec.Title + "]"
	}
	return formatter.FormatSectionFields(fields)
}

func resolveNotes(key string, snap *snapshot.Snapshot) string {
	sec, found := snap.SectionByID(key)
	if !found {
		return "[Section not found: " + key + "]"
	}
	note, found := snap.NoteBySection(sec.ID)
	if !found || strings.TrimSpace(note.Markdown) == "" {
		return NoNotesPlaceholder
	}
	return note.Markdown
}

func isBracketed(value string) bool {
	return strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]")
}
