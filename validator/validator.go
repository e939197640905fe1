/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks template tokens against a session snapshot and
// produces actionable diagnostics.
package validator

import (
	"strings"

	"bennypowers.dev/tavnit/parser"
	"bennypowers.dev/tavnit/snapshot"
	"bennypowers.dev/tavnit/token"
)

// Diagnostic represents one validation problem.
type Diagnostic struct {
	// Token is the raw token text the problem refers to. Empty for
	// syntax-level problems not tied to one occurrence.
	Token string `json:"token,omitempty"`

	// Type is the token type the problem was found on.
	Type token.Type `json:"type"`

	// Message describes what's wrong.
	Message string `json:"message"`

	// Suggestions are nearby existing tokens, formatted in the offending
	// token's own syntax so they can be inserted directly.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	var sb strings.Builder
	if d.Token != "" {
		sb.WriteString(d.Token)
		sb.WriteString(": ")
	}
	sb.WriteString(d.Message)
	if len(d.Suggestions) > 0 {
		sb.WriteString(" (did you mean ")
		sb.WriteString(strings.Join(d.Suggestions, ", "))
		sb.WriteString("?)")
	}
	return sb.String()
}

// Result is the outcome of validating one template.
type Result struct {
	// Valid is true when no diagnostics were produced.
	Valid bool `json:"valid"`

	// Errors lists every problem found.
	Errors []Diagnostic `json:"errors"`
}

// ValidateTokens checks that every token in the template resolves to
// something in the snapshot. It never fails: syntax problems and unknown
// references all come back as diagnostics. Escaped brace pairs are
// excluded before tokenizing, so the validator and resolver always agree
// on which spans are tokens.
func ValidateTokens(template string, snap *snapshot.Snapshot) Result {
	var errors []Diagnostic

	escaped := parser.EscapeLiteralBraces(template)

	for _, msg := range parser.ValidateTokenSyntax(escaped) {
		errors = append(errors, Diagnostic{
			Type:    token.Field,
			Message: msg,
		})
	}

	for _, occ := range parser.ParseTokens(escaped) {
		if d, ok := check(occ, snap); !ok {
			errors = append(errors, d)
		}
	}

	return Result{Valid: len(errors) == 0, Errors: errors}
}

// check validates a single occurrence. ok is true when the token resolves.
func check(occ token.Occurrence, snap *snapshot.Snapshot) (Diagnostic, bool) {
	switch occ.Type {
	case token.Field:
		if _, found := snap.FieldByKey(occ.Key); found {
			return Diagnostic{}, true
		}
		return Diagnostic{
			Token:       occ.Raw,
			Type:        occ.Type,
			Message:     "Field not found: " + occ.Key,
			Suggestions: Suggest(occ.Key, snap.FieldKeys(), occ.Type),
		}, false

	case token.Section, token.Notes:
		// Section and notes tokens share the section identifier space.
		if _, found := snap.SectionByID(occ.Key); found {
			return Diagnostic{}, true
		}
		return Diagnostic{
			Token:       occ.Raw,
			Type:        occ.Type,
			Message:     "Section not found: " + occ.Key,
			Suggestions: Suggest(occ.Key, snap.SectionIDs(), occ.Type),
		}, false

	default:
		// Legacy whole-snapshot dumps carry no key to check.
		return Diagnostic{}, true
	}
}
