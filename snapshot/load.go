/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tavnit/fs"
	"bennypowers.dev/tavnit/internal/logger"
)

// ErrUnsupportedFormat indicates a snapshot file extension the loader does
// not recognize.
var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

// Load reads a snapshot from a YAML or JSON file. JSON files may contain
// comments and trailing commas. The loaded snapshot is normalized: missing
// section keys are derived from titles, missing field section titles are
// denormalized from sections, and unrecognized field types are coerced to
// short-text with a warning.
func Load(filesystem fs.FileSystem, path string) (*Snapshot, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, snap); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), snap); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	normalize(snap)
	return snap, nil
}

func normalize(snap *Snapshot) {
	titles := make(map[string]string, len(snap.Sections))
	for i := range snap.Sections {
		sec := &snap.Sections[i]
		if sec.Key == "" {
			sec.Key = Slug(sec.Title)
		}
		titles[sec.ID] = sec.Title
	}

	for i := range snap.Fields {
		f := &snap.Fields[i]
		switch f.Type {
		case ShortText, LongText, Toggle:
		default:
			logger.Warn("field %q has unknown type %q, treating as %s",
				f.Key, f.Type, ShortText)
			f.Type = ShortText
		}
		if f.SectionTitle == "" {
			f.SectionTitle = titles[f.SectionID]
		}
	}
}
