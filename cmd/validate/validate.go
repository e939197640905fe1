/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tavnit.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tavnit/config"
	"bennypowers.dev/tavnit/fs"
	"bennypowers.dev/tavnit/parser"
	"bennypowers.dev/tavnit/snapshot"
	"bennypowers.dev/tavnit/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [templates...]",
	Short: "Validate prompt templates against a session snapshot",
	Long: `Validate prompt templates for token syntax problems and references
that do not exist in the session snapshot.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail templates that contain no tokens")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()

	// Load config from .config/tavnit.{yaml,yml,json}
	cfg := config.LoadOrDefault(filesystem, ".")
	if cfg.Strict {
		strict = true
	}

	// Use config templates if no args provided
	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandTemplates(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config templates: %w", err)
		}
		files = expanded
	}

	if len(files) == 0 {
		return fmt.Errorf("no templates specified and none found in config")
	}

	flagSnapshot := viper.GetString("snapshot")
	snapshots := make(map[string]*snapshot.Snapshot)

	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Printf("Validating %s...\n", file)
		}

		// The --snapshot flag wins; otherwise per-template config
		// overrides fall back to the global config snapshot.
		snapshotPath := flagSnapshot
		if snapshotPath == "" {
			snapshotPath = cfg.SnapshotForTemplate(file)
		}
		if snapshotPath == "" {
			return fmt.Errorf("no snapshot specified (use --snapshot or config)")
		}

		snap, ok := snapshots[snapshotPath]
		if !ok {
			loaded, err := snapshot.Load(filesystem, snapshotPath)
			if err != nil {
				return fmt.Errorf("error loading snapshot: %w", err)
			}
			snap = loaded
			snapshots[snapshotPath] = snap
		}

		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		template := string(data)
		result := validator.ValidateTokens(template, snap)
		for i := range result.Errors {
			fmt.Fprintf(os.Stderr, "%s: %s\n", file, result.Errors[i].Error())
		}
		if !result.Valid {
			hasErrors = true
			continue
		}

		if strict && !parser.HasTokens(parser.EscapeLiteralBraces(template)) {
			fmt.Fprintf(os.Stderr, "%s: template contains no tokens\n", file)
			hasErrors = true
			continue
		}

		if !quiet {
			keys := parser.ExtractTokenKeys(parser.EscapeLiteralBraces(template))
			total := 0
			for _, ks := range keys {
				total += len(ks)
			}
			fmt.Printf("  %d unique token keys\n", total)
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Println("All templates valid.")
	}
	return nil
}
