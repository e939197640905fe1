/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snapshot_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"bennypowers.dev/tavnit/internal/logger"
	"bennypowers.dev/tavnit/internal/mapfs"
	"bennypowers.dev/tavnit/snapshot"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	m.Run()
}

func TestLoad_YAML(t *testing.T) {
	fsys := mapfs.New()
	fsys.AddFile("snapshot.yaml", `
sections:
  - id: overview
    title: Project Overview
fields:
  - key: project_name
    label: Project Name
    type: short-text
    value: Beta Launch
    sectionId: overview
notes:
  - sectionId: overview
    markdown: Launch slipped.
`, 0644)

	snap, err := snapshot.Load(fsys, "snapshot.yaml")
	require.NoError(t, err)

	require.Len(t, snap.Fields, 1)
	require.Len(t, snap.Sections, 1)
	require.Len(t, snap.Notes, 1)

	f, ok := snap.FieldByKey("project_name")
	require.True(t, ok)
	require.Equal(t, "Beta Launch", f.Value)
	require.Equal(t, snapshot.ShortText, f.Type)
}

func TestLoad_JSONWithComments(t *testing.T) {
	fsys := mapfs.New()
	fsys.AddFile("snapshot.json", `{
  // session export
  "sections": [
    {"id": "overview", "title": "Project Overview"},
  ],
  "fields": [
    {
      "key": "is_public",
      "label": "Public?",
      "type": "toggle",
      "value": "true",
      "sectionId": "overview",
    },
  ],
  "notes": []
}`, 0644)

	snap, err := snapshot.Load(fsys, "snapshot.json")
	require.NoError(t, err)

	f, ok := snap.FieldByKey("is_public")
	require.True(t, ok)
	require.Equal(t, snapshot.Toggle, f.Type)
}

func TestLoad_Normalization(t *testing.T) {
	fsys := mapfs.New()
	fsys.AddFile("snapshot.yaml", `
sections:
  - id: overview
    title: Project Overview
fields:
  - key: mystery
    label: Mystery
    type: multi-select
    value: whatever
    sectionId: overview
`, 0644)

	snap, err := snapshot.Load(fsys, "snapshot.yaml")
	require.NoError(t, err)

	sec, ok := snap.SectionByID("overview")
	require.True(t, ok)
	require.Equal(t, "project-overview", sec.Key,
		"missing section key should be derived from the title")

	f, ok := snap.FieldByKey("mystery")
	require.True(t, ok)
	require.Equal(t, snapshot.ShortText, f.Type,
		"unknown field types coerce to short-text")
	require.Equal(t, "Project Overview", f.SectionTitle,
		"missing section titles are denormalized onto fields")
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	fsys := mapfs.New()
	fsys.AddFile("snapshot.toml", "fields = []", 0644)

	_, err := snapshot.Load(fsys, "snapshot.toml")
	require.Error(t, err)
	require.True(t, errors.Is(err, snapshot.ErrUnsupportedFormat))
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := mapfs.New()

	_, err := snapshot.Load(fsys, "nope.yaml")
	require.Error(t, err)
}
