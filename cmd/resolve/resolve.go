/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for tavnit.
package resolve

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tavnit/config"
	"bennypowers.dev/tavnit/fs"
	"bennypowers.dev/tavnit/resolver"
	"bennypowers.dev/tavnit/snapshot"
	"bennypowers.dev/tavnit/validator"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <template>",
	Short: "Resolve a prompt template against a session snapshot",
	Long: `Resolve every token in a prompt template with live session data and
print the resulting prompt to stdout.

The template is validated first; use --force to resolve anyway. Unresolvable
tokens then degrade to bracketed inline text like [Field not found: x].`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("metadata", false, "Output JSON with resolved text plus empty/missing token lists")
	Cmd.Flags().Bool("force", false, "Resolve even when validation fails")
}

func run(cmd *cobra.Command, args []string) error {
	metadata, _ := cmd.Flags().GetBool("metadata")
	force, _ := cmd.Flags().GetBool("force")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	snapshotPath := viper.GetString("snapshot")
	if snapshotPath == "" {
		snapshotPath = cfg.SnapshotForTemplate(args[0])
	}
	if snapshotPath == "" {
		return fmt.Errorf("no snapshot specified (use --snapshot or config)")
	}

	snap, err := snapshot.Load(filesystem, snapshotPath)
	if err != nil {
		return fmt.Errorf("error loading snapshot: %w", err)
	}

	data, err := filesystem.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading template: %w", err)
	}
	template := string(data)

	if !force {
		result := validator.ValidateTokens(template, snap)
		if !result.Valid {
			for i := range result.Errors {
				fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], result.Errors[i].Error())
			}
			return fmt.Errorf("template is not valid (use --force to resolve anyway)")
		}
	}

	if metadata {
		result := resolver.ResolveTokensWithMetadata(template, snap)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Print(resolver.ResolveTokens(template, snap))
	return nil
}
