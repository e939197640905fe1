/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides the render command for tavnit.
package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tavnit/config"
	"bennypowers.dev/tavnit/formatter"
	"bennypowers.dev/tavnit/fs"
	"bennypowers.dev/tavnit/snapshot"
)

// Cmd is the render cobra command.
var Cmd = &cobra.Command{
	Use:   "render",
	Short: "Render a session snapshot for review",
	Long: `Render the session snapshot itself as a readable document: every
section's fields plus its notes. Useful for reviewing collected data before
resolving templates against it.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "markdown", "Output format: "+strings.Join(formatter.ValidFormats(), ", "))
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")

	format, err := formatter.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	snapshotPath := viper.GetString("snapshot")
	if snapshotPath == "" {
		snapshotPath = cfg.Snapshot
	}
	if snapshotPath == "" {
		return fmt.Errorf("no snapshot specified (use --snapshot or config)")
	}

	snap, err := snapshot.Load(filesystem, snapshotPath)
	if err != nil {
		return fmt.Errorf("error loading snapshot: %w", err)
	}

	if format == formatter.FormatJSON {
		return renderJSON(snap)
	}

	caser := cases.Title(language.English)
	first := true
	for _, sec := range snap.Sections {
		if !first {
			fmt.Println()
		}
		first = false

		title := caser.String(sec.Title)
		if format == formatter.FormatMarkdown {
			fmt.Printf("## %s\n\n", title)
		} else {
			fmt.Printf("%s\n\n", title)
		}

		fields := snap.SectionFields(sec.ID)
		if len(fields) > 0 {
			fmt.Println(formatter.FormatSection(fields, format))
		}

		if note, ok := snap.NoteBySection(sec.ID); ok && strings.TrimSpace(note.Markdown) != "" {
			fmt.Println()
			fmt.Println(note.Markdown)
		}
	}

	return nil
}

func renderJSON(snap *snapshot.Snapshot) error {
	out := make(map[string]json.RawMessage, len(snap.Sections))
	for _, sec := range snap.Sections {
		fields := snap.SectionFields(sec.ID)
		out[sec.ID] = json.RawMessage(formatter.FormatSectionFieldsAsJSON(fields))
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
