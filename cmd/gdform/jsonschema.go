package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pawelWritesCode/gdform/pkg/jsonschema"
)

func newJSONSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsonschema",
		Short: "Print JSON schema of cleaned data",
		Long: `Prints draft-07 JSON schema describing data produced by schema. With --document the JSON document
is validated against it instead.`,
		Args: cobra.NoArgs,
		RunE: runJSONSchema,
	}

	addSchemaFlags(cmd)
	cmd.Flags().StringP("document", "d", "", "JSON document to validate against exported schema")
	cmd.Flags().String("engine", "xeipuuv", "JSON schema validator: xeipuuv or qri")

	return cmd
}

func runJSONSchema(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := loadSchema(cmd, log)
	if err != nil {
		return err
	}

	exported, err := jsonschema.Export(s)
	if err != nil {
		return err
	}

	documentPath, _ := cmd.Flags().GetString("document")
	if documentPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(exported))
		return nil
	}

	document, err := os.ReadFile(documentPath)
	if err != nil {
		return err
	}

	v, err := engine(cfg.Engine)
	if err != nil {
		return err
	}

	log.Debug("validating document", zap.String("document", documentPath), zap.String("engine", cfg.Engine))
	if err = v.Validate(document, exported); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s matches schema %s\n", documentPath, s.Name())

	return nil
}

func engine(name string) (jsonschema.Validator, error) {
	switch name {
	case "xeipuuv":
		return jsonschema.NewXGValidator(), nil
	case "qri":
		return jsonschema.NewQIValidator(), nil
	default:
		return nil, fmt.Errorf("unknown JSON schema engine %q", name)
	}
}
