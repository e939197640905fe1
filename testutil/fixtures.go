/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for tavnit.
package testutil

import (
	"bennypowers.dev/tavnit/snapshot"
)

// Snapshot returns a session snapshot shared by validator, formatter, and
// resolver tests: two sections, a mix of field types, one empty section,
// and notes on the first section only.
func Snapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Sections: []snapshot.Section{
			{ID: "overview", Title: "Project Overview", Key: "project-overview"},
			{ID: "audience", Title: "Audience", Key: "audience"},
			{ID: "risks", Title: "Risks", Key: "risks"},
		},
		Fields: []snapshot.Field{
			{
				Key:          "project_name",
				Label:        "Project Name",
				Type:         snapshot.ShortText,
				Value:        "Beta Launch",
				SectionID:    "overview",
				SectionTitle: "Project Overview",
				OrderIndex:   0,
			},
			{
				Key:          "summary",
				Label:        "Summary",
				Type:         snapshot.LongText,
				Value:        "First line\nsecond line",
				SectionID:    "overview",
				SectionTitle: "Project Overview",
				OrderIndex:   1,
			},
			{
				Key:          "is_public",
				Label:        "Public",
				Type:         snapshot.Toggle,
				Value:        "true",
				SectionID:    "overview",
				SectionTitle: "Project Overview",
				OrderIndex:   2,
			},
			{
				Key:          "persona",
				Label:        "Persona",
				Type:         snapshot.ShortText,
				Value:        "",
				SectionID:    "audience",
				SectionTitle: "Audience",
				OrderIndex:   0,
			},
		},
		Notes: []snapshot.Note{
			{SectionID: "overview", Markdown: "Launch slipped **two weeks**."},
		},
	}
}
