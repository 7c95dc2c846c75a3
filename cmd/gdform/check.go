package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pawelWritesCode/gdform"
	"github.com/pawelWritesCode/gdform/pkg/source"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [input]",
		Short: "Clean and validate input data",
		Long: `Reads input file, or standard input when it is omitted or "-", validates it against schema
and prints cleaned data or field errors as JSON or YAML. Exits with code 1 when input is not valid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	addSchemaFlags(cmd)
	cmd.Flags().StringP("format", "f", "auto", "input format: auto, json, yaml, xml or form")
	cmd.Flags().StringP("output", "o", "json", "output format: json or yaml")

	return cmd
}

type checkResult struct {
	Schema string                     `json:"schema" yaml:"schema"`
	Valid  bool                       `json:"valid" yaml:"valid"`
	Data   *gdform.OrderedMap[any]    `json:"data,omitempty" yaml:"data,omitempty"`
	Errors *gdform.OrderedMap[string] `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := loadSchema(cmd, log)
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	src, err := parseInput(format, input)
	if err != nil {
		return err
	}

	form := s.NewFromSource(src, gdform.WithLogger(log))
	result := checkResult{Schema: s.Name(), Valid: form.IsValid()}
	if result.Valid {
		if result.Data, err = form.CleanedData(); err != nil {
			return err
		}
	} else {
		result.Errors = form.Errors()
	}

	out, err := render(output, result)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))

	if !result.Valid {
		log.Info("input is not valid", zap.String("schema", s.Name()), zap.Int("errors", result.Errors.Len()))
		return errInvalid
	}

	return nil
}

func parseInput(format string, b []byte) (source.Source, error) {
	switch strings.ToLower(format) {
	case "", "auto":
		return source.Detect(b)
	case "json":
		return source.NewJSON(b)
	case "yaml", "yml":
		return source.NewYAML(b)
	case "xml":
		return source.NewXML(b)
	case "form":
		values, err := url.ParseQuery(strings.TrimSpace(string(b)))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", source.ErrFormat, err)
		}

		return source.NewForm(values), nil
	default:
		return nil, fmt.Errorf("%w: unknown input format %s", source.ErrFormat, format)
	}
}

func render(output string, v any) ([]byte, error) {
	switch strings.ToLower(output) {
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(b, '\n'), nil
	case "yaml", "yml":
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("unknown output format %s", output)
	}
}
