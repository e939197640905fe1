/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokens provides the tokens command for tavnit.
package tokens

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tavnit/fs"
	"bennypowers.dev/tavnit/parser"
	"bennypowers.dev/tavnit/token"
)

// Cmd is the tokens cobra command.
var Cmd = &cobra.Command{
	Use:   "tokens [templates...]",
	Short: "List tokens found in prompt templates",
	Long:  `List every token occurrence in the given templates, with type, key, and position.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().Bool("keys", false, "Summarize unique keys per token type instead of listing occurrences")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	keysOnly, _ := cmd.Flags().GetBool("keys")

	filesystem := fs.NewOSFileSystem()

	type occurrence struct {
		File  string     `json:"file"`
		Type  token.Type `json:"type"`
		Key   string     `json:"key"`
		Raw   string     `json:"raw"`
		Start int        `json:"start"`
		End   int        `json:"end"`
	}

	var all []occurrence
	keys := make(map[token.Type][]string)
	seen := make(map[token.Type]map[string]bool)

	for _, file := range args {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			continue
		}

		template := parser.EscapeLiteralBraces(string(data))

		if keysOnly {
			for typ, ks := range parser.ExtractTokenKeys(template) {
				if seen[typ] == nil {
					seen[typ] = make(map[string]bool)
				}
				for _, k := range ks {
					if seen[typ][k] {
						continue
					}
					seen[typ][k] = true
					keys[typ] = append(keys[typ], k)
				}
			}
			continue
		}

		for _, occ := range parser.ParseTokens(template) {
			all = append(all, occurrence{
				File: file,
				Type: occ.Type,
				Key:  occ.Key,
				Raw:  occ.Raw,
				// Report positions in the file's own bytes, not the
				// escape-transformed text.
				Start: parser.OriginalOffset(template, occ.Start),
				End:   parser.OriginalOffset(template, occ.End),
			})
		}
	}

	switch {
	case keysOnly && format == "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(keys)
	case keysOnly:
		for typ, ks := range keys {
			fmt.Printf("%s:\n", typ)
			for _, k := range ks {
				fmt.Printf("  %s\n", k)
			}
		}
		return nil
	case format == "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	default:
		for _, occ := range all {
			fmt.Printf("%-30s %-20s %-20s %d:%d\n", occ.File, occ.Type, occ.Key, occ.Start, occ.End)
		}
		return nil
	}
}
