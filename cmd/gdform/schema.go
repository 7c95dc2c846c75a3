package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pawelWritesCode/gdform"
	"github.com/pawelWritesCode/gdform/pkg/spec"
)

func addSchemaFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("schema", "s", "", "schema definition file (YAML or JSON)")
	cmd.Flags().StringP("name", "n", "", "schema to use, defaults to the last one defined in file")
	_ = cmd.MarkFlagRequired("schema")
}

// loadSchema registers every definition from --schema file and returns one selected by --name.
func loadSchema(cmd *cobra.Command, log *zap.Logger) (*gdform.Schema, error) {
	path, _ := cmd.Flags().GetString("schema")
	name, _ := cmd.Flags().GetString("name")

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	registry := spec.NewRegistry()
	if _, err = registry.Load(b); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	names := registry.Names()
	log.Debug("schemas loaded", zap.String("file", path), zap.Strings("schemas", names))

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s defines no schemas", spec.ErrDefinition, path)
	}
	if name == "" {
		name = names[len(names)-1]
	}

	s, ok := registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s not found in %s", spec.ErrUnknownSchema, name, path)
	}

	return s, nil
}

// readInput reads file named by args, or standard input when it is missing or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(args[0])
}
