/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command enumctl inspects the enum types linked into the binary and serves
// their state as Prometheus metrics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dirpx.dev/enum"
	"dirpx.dev/enum/config"

	// Reference enum types.
	_ "dirpx.dev/enum/examples/operation"
	_ "dirpx.dev/enum/examples/planet"
	_ "dirpx.dev/enum/examples/weekday"
)

const (
	Version = "0.1.0"
	appName = "enumctl"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		output     string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Inspect registered enum types",
		Long: `enumctl lists the enum types linked into this binary, their
constants in declaration order and their initialization state.

Output is a table on a terminal and YAML otherwise; use --output to
choose json, yaml or table explicitly.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return err
			}
			if configPath == "" {
				return nil
			}
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			enum.SetConfig(cfg)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format (table, yaml, json)")

	format := func() string { return output }
	cmd.AddCommand(
		typesCmd(format),
		listCmd(format),
		getCmd(format),
		serveCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}
