/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package snapshot defines the read-only session data a template is
// validated and resolved against. A Snapshot is assembled by the caller
// for one parse/validate/resolve cycle and never mutated by this module.
package snapshot

import (
	"strings"
	"unicode"
)

// FieldType is the kind of value a blueprint field stores.
type FieldType string

const (
	// ShortText is a single-line free text field.
	ShortText FieldType = "short-text"

	// LongText is a multi-line free text field.
	LongText FieldType = "long-text"

	// Toggle stores the string "true" or "false".
	Toggle FieldType = "toggle"
)

// Field is one blueprint form field with its current session value.
type Field struct {
	// Key uniquely identifies the field within a snapshot.
	Key string `json:"key" yaml:"key"`

	// Label is the human-readable field name.
	Label string `json:"label" yaml:"label"`

	// Type is the field's value kind.
	Type FieldType `json:"type" yaml:"type"`

	// Value is the stored value. Empty means the field was not filled;
	// the core renders absent and empty values identically.
	Value string `json:"value" yaml:"value"`

	// SectionID references the owning section.
	SectionID string `json:"sectionId" yaml:"sectionId"`

	// SectionTitle is the owning section's title, denormalized for
	// display.
	SectionTitle string `json:"sectionTitle" yaml:"sectionTitle"`

	// OrderIndex orders fields within their section.
	OrderIndex int `json:"orderIndex" yaml:"orderIndex"`
}

// Section is one blueprint section.
type Section struct {
	// ID is the stable section identifier. Section and notes tokens are
	// looked up by ID everywhere.
	ID string `json:"id" yaml:"id"`

	// Title is the human-readable section name.
	Title string `json:"title" yaml:"title"`

	// Key is the display slug derived from Title. It is never used for
	// lookup, only for UI.
	Key string `json:"key" yaml:"key"`
}

// Note is a section's freeform markdown notes. At most one per section.
type Note struct {
	// SectionID references the owning section.
	SectionID string `json:"sectionId" yaml:"sectionId"`

	// Markdown is the raw note text.
	Markdown string `json:"markdown" yaml:"markdown"`
}

// Snapshot is the immutable bundle of fields, sections, and notes for one
// session. Referential integrity (every SectionID present in Sections) is
// the caller's responsibility; a broken reference surfaces as a "not
// found" diagnostic, never a crash.
type Snapshot struct {
	Fields   []Field   `json:"fields" yaml:"fields"`
	Sections []Section `json:"sections" yaml:"sections"`
	Notes    []Note    `json:"notes" yaml:"notes"`
}

// FieldByKey returns the field with the given key.
func (s *Snapshot) FieldByKey(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// FieldKeys returns every field key in snapshot order.
func (s *Snapshot) FieldKeys() []string {
	keys := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// SectionByID returns the section with the given identifier.
func (s *Snapshot) SectionByID(id string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// SectionIDs returns every section identifier in snapshot order.
func (s *Snapshot) SectionIDs() []string {
	ids := make([]string, 0, len(s.Sections))
	for _, sec := range s.Sections {
		ids = append(ids, sec.ID)
	}
	return ids
}

// SectionFields returns the fields owned by the given section, in snapshot
// order.
func (s *Snapshot) SectionFields(sectionID string) []Field {
	var fields []Field
	for _, f := range s.Fields {
		if f.SectionID == sectionID {
			fields = append(fields, f)
		}
	}
	return fields
}

// NoteBySection returns the note attached to the given section.
func (s *Snapshot) NoteBySection(sectionID string) (Note, bool) {
	for _, n := range s.Notes {
		if n.SectionID == sectionID {
			return n, true
		}
	}
	return Note{}, false
}

// Slug derives a URL-safe section key from a title.
// e.g., "Project Overview" -> "project-overview"
func Slug(title string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	// Remove consecutive dashes
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}
