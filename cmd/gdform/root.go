package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errInvalid is returned when input data fails validation, so process exits with non zero code.
var errInvalid = errors.New("input is not valid")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gdform",
		Short: "gdform validates structured data against declarative schemas",
		Long: `gdform cleans and validates JSON, YAML, XML or URL encoded input against schemas
defined in YAML or JSON files and exports those schemas as JSON schema.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "config file (YAML, JSON or TOML)")
	root.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", "console", "log format: console or json")

	root.AddCommand(newCheckCmd(), newJSONSchemaCmd())

	return root
}

// Execute runs root command and exits with code 1 on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
