/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snapshot_test

import (
	"testing"

	"bennypowers.dev/tavnit/snapshot"
	"bennypowers.dev/tavnit/testutil"
)

func TestSnapshot_FieldByKey(t *testing.T) {
	snap := testutil.Snapshot()

	t.Run("existing field", func(t *testing.T) {
		f, ok := snap.FieldByKey("project_name")
		if !ok {
			t.Fatal("expected to find field")
		}
		if f.Value != "Beta Launch" {
			t.Errorf("f.Value = %q, want %q", f.Value, "Beta Launch")
		}
	})

	t.Run("missing field", func(t *testing.T) {
		if _, ok := snap.FieldByKey("nope"); ok {
			t.Error("expected lookup to fail")
		}
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		if _, ok := snap.FieldByKey("Project_Name"); ok {
			t.Error("expected case-mismatched lookup to fail")
		}
	})
}

func TestSnapshot_SectionLookups(t *testing.T) {
	snap := testutil.Snapshot()

	sec, ok := snap.SectionByID("overview")
	if !ok {
		t.Fatal("expected to find section")
	}
	if sec.Title != "Project Overview" {
		t.Errorf("sec.Title = %q, want %q", sec.Title, "Project Overview")
	}

	fields := snap.SectionFields("overview")
	if len(fields) != 3 {
		t.Errorf("len(SectionFields) = %d, want 3", len(fields))
	}

	if fields := snap.SectionFields("risks"); len(fields) != 0 {
		t.Errorf("expected no fields in empty section, got %d", len(fields))
	}
}

func TestSnapshot_NoteBySection(t *testing.T) {
	snap := testutil.Snapshot()

	if _, ok := snap.NoteBySection("overview"); !ok {
		t.Error("expected note on overview")
	}
	if _, ok := snap.NoteBySection("audience"); ok {
		t.Error("expected no note on audience")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Project Overview", "project-overview"},
		{"Audience", "audience"},
		{"Risks & Assumptions", "risks-assumptions"},
		{"  Spaced  Out  ", "spaced-out"},
		{"snake_case.title", "snake-case-title"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := snapshot.Slug(tt.title); got != tt.expected {
			t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.expected)
		}
	}
}
