/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter renders section fields as human-readable text for
// section-level and legacy tokens.
package formatter

import (
	"encoding/json"
	"sort"
	"strings"

	"bennypowers.dev/tavnit/snapshot"
)

// EmptyPlaceholder is rendered for unfilled fields in the line formats.
const EmptyPlaceholder = "(empty)"

// FormatSectionFields renders fields as one "Label: value" line per field,
// sorted by order index. Ties keep snapshot order.
func FormatSectionFields(fields []snapshot.Field) string {
	lines := make([]string, 0, len(fields))
	for _, f := range sorted(fields) {
		lines = append(lines, f.Label+": "+DisplayValue(f))
	}
	return strings.Join(lines, "\n")
}

// FormatSectionFieldsAsMarkdown renders fields as a markdown bullet list.
func FormatSectionFieldsAsMarkdown(fields []snapshot.Field) string {
	lines := make([]string, 0, len(fields))
	for _, f := range sorted(fields) {
		lines = append(lines, "- **"+f.Label+"**: "+DisplayValue(f))
	}
	return strings.Join(lines, "\n")
}

// FormatSectionFieldsAsJSON renders fields as a 2-space-indented JSON
// object keyed by field key, with typed values: toggles become booleans,
// unfilled fields become null.
func FormatSectionFieldsAsJSON(fields []snapshot.Field) string {
	obj := make(map[string]any, len(fields))
	for _, f := range fields {
		obj[f.Key] = JSONValue(f)
	}
	// Marshaling a map of strings, bools, and nils cannot fail.
	data, _ := json.MarshalIndent(obj, "", "  ")
	return string(data)
}

// FormatSection renders fields in the requested format.
func FormatSection(fields []snapshot.Field, format Format) string {
	switch format {
	case FormatMarkdown:
		return FormatSectionFieldsAsMarkdown(fields)
	case FormatJSON:
		return FormatSectionFieldsAsJSON(fields)
	default:
		return FormatSectionFields(fields)
	}
}

// DisplayValue renders a field value for the line formats. Unfilled fields
// render as the (empty) placeholder, toggles as Yes/No, and multi-line
// values keep continuation lines indented under their label.
func DisplayValue(f snapshot.Field) string {
	if f.Type == snapshot.Toggle {
		switch f.Value {
		case "true":
			return "Yes"
		case "false":
			return "No"
		default:
			return EmptyPlaceholder
		}
	}
	if f.Value == "" {
		return EmptyPlaceholder
	}
	return strings.ReplaceAll(f.Value, "\n", "\n  ")
}

// JSONValue converts a field value to its typed JSON representation:
// toggles map to true/false (nil when the stored string is neither),
// unfilled fields map to nil, and everything else passes through as the
// stored string.
func JSONValue(f snapshot.Field) any {
	if f.Type == snapshot.Toggle {
		switch f.Value {
		case "true":
			return true
		case "false":
			return false
		default:
			return nil
		}
	}
	if f.Value == "" {
		return nil
	}
	return f.Value
}

func sorted(fields []snapshot.Field) []snapshot.Field {
	out := make([]snapshot.Field, len(fields))
	copy(out, fields)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}
