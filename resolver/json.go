/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"encoding/json"

	"bennypowers.dev/tavnit/formatter"
	"bennypowers.dev/tavnit/snapshot"
)

// fieldsJSON dumps every field in the snapshot, not scoped to any section,
// as a 2-space-indented JSON object keyed by field key. Toggle values
// convert to JSON booleans (null when unparseable); everything else passes
// through as the stored string or null.
func fieldsJSON(snap *snapshot.Snapshot) string {
	obj := make(map[string]any, len(snap.Fields))
	for _, f := range snap.Fields {
		obj[f.Key] = formatter.JSONValue(f)
	}
	data, _ := json.MarshalIndent(obj, "", "  ")
	return string(data)
}

// notesJSON dumps every section's notes as a 2-space-indented JSON object
// keyed by section identifier, empty string for sections with no note.
func notesJSON(snap *snapshot.Snapshot) string {
	obj := make(map[string]string, len(snap.Sections))
	for _, sec := range snap.Sections {
		note, _ := snap.NoteBySection(sec.ID)
		obj[sec.ID] = note.Markdown
	}
	data, _ := json.MarshalIndent(obj, "", "  ")
	return string(data)
}
