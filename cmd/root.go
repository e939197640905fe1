/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tavnit.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tavnit/cmd/render"
	"bennypowers.dev/tavnit/cmd/resolve"
	"bennypowers.dev/tavnit/cmd/tokens"
	"bennypowers.dev/tavnit/cmd/validate"
	"bennypowers.dev/tavnit/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "tavnit",
	Short: "Validate and resolve blueprint prompt templates",
	Long: `tavnit parses, validates, and resolves prompt templates containing
{{...}} tokens that reference blueprint session fields, sections, and notes.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("snapshot", "s", "", "Session snapshot file (yaml or json)")
	_ = viper.BindPFlag("snapshot", rootCmd.PersistentFlags().Lookup("snapshot"))
	viper.SetEnvPrefix("TAVNIT")
	viper.AutomaticEnv()

	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(tokens.Cmd)
	rootCmd.AddCommand(render.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
