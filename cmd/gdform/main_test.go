package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/pawelWritesCode/gdform/pkg/jsonschema"
	"github.com/pawelWritesCode/gdform/pkg/source"
	"github.com/pawelWritesCode/gdform/pkg/spec"
)

const definitions = `
schemas:
  - name: Contact
    fields:
      - {name: name, kind: text, min_length: 2, max_length: 20, strip: true}
      - {name: phone, kind: phone}
      - {name: age, kind: integer, min_value: 18, required: false}
  - name: Order
    fields:
      - {name: id, kind: uuid}
      - {name: amount, kind: decimal, max_digits: 5, decimal_places: 2}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCheck(t *testing.T) {
	schemaPath := writeFile(t, "schemas.yaml", definitions)

	tests := []struct {
		name      string
		stdin     string
		args      []string
		wantErr   error
		wantValid bool
		assertOut func(t *testing.T, out gjson.Result)
	}{
		{
			name:      "valid json from stdin, last schema by default",
			stdin:     `{"id": "998a281c-e257-11e8-b428-8c85904e5604", "amount": "125.50"}`,
			args:      []string{"check", "-s", schemaPath},
			wantValid: true,
			assertOut: func(t *testing.T, out gjson.Result) {
				assert.Equal(t, "Order", out.Get("schema").String())
				assert.Equal(t, "125.5", out.Get("data.amount").String())
				assert.False(t, out.Get("errors").Exists())
			},
		},
		{
			name:      "valid yaml by name",
			stdin:     "name: '  Ann  '\nphone: '13912345678'\n",
			args:      []string{"check", "-s", schemaPath, "-n", "Contact", "-f", "yaml"},
			wantValid: true,
			assertOut: func(t *testing.T, out gjson.Result) {
				assert.Equal(t, "Ann", out.Get("data.name").String())
				assert.Equal(t, gjson.Null, out.Get("data.age").Type)
				assert.Equal(t, []string{"name", "phone", "age"}, keys(out.Get("data")))
			},
		},
		{
			name:      "url encoded form",
			stdin:     "name=Bob&phone=13912345678&age=30\n",
			args:      []string{"check", "-s", schemaPath, "-n", "Contact", "-f", "form"},
			wantValid: true,
			assertOut: func(t *testing.T, out gjson.Result) {
				assert.Equal(t, int64(30), out.Get("data.age").Int())
			},
		},
		{
			name:    "invalid xml",
			stdin:   "<contact><name>B</name><phone>123</phone><age>17</age></contact>",
			args:    []string{"check", "-s", schemaPath, "-n", "Contact"},
			wantErr: errInvalid,
			assertOut: func(t *testing.T, out gjson.Result) {
				assert.False(t, out.Get("data").Exists())
				assert.Equal(t, "min_length -> 2", out.Get("errors.name").String())
				assert.Equal(t, "invalid phone", out.Get("errors.phone").String())
				assert.Equal(t, "min_value -> 18", out.Get("errors.age").String())
			},
		},
		{
			name:    "unknown schema name",
			stdin:   `{}`,
			args:    []string{"check", "-s", schemaPath, "-n", "Missing"},
			wantErr: spec.ErrUnknownSchema,
		},
		{
			name:    "unrecognized input",
			stdin:   "just text",
			args:    []string{"check", "-s", schemaPath},
			wantErr: source.ErrFormat,
		},
		{
			name:    "unknown input format",
			stdin:   `{}`,
			args:    []string{"check", "-s", schemaPath, "-f", "csv"},
			wantErr: source.ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.stdin, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tt.assertOut == nil {
				return
			}

			require.True(t, gjson.Valid(stdout), stdout)
			out := gjson.Parse(stdout)
			assert.Equal(t, tt.wantValid, out.Get("valid").Bool())
			tt.assertOut(t, out)
		})
	}
}

func TestCheck_inputFile(t *testing.T) {
	schemaPath := writeFile(t, "schemas.yaml", definitions)
	inputPath := writeFile(t, "order.json", `{"id": "not uuid", "amount": 1}`)

	stdout, _, err := execute(t, "", "check", "--schema", schemaPath, inputPath)
	assert.ErrorIs(t, err, errInvalid)
	assert.Equal(t, "invalid uuid value", gjson.Get(stdout, "errors.id").String())
	assert.False(t, gjson.Get(stdout, "errors.amount").Exists())
}

func TestCheck_yamlOutput(t *testing.T) {
	schemaPath := writeFile(t, "schemas.yaml", definitions)

	stdout, _, err := execute(t, `{"phone": "13912345678", "name": "Ann"}`, "check", "-s", schemaPath, "-n", "Contact", "-o", "yaml")
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "Contact", out["schema"])
	assert.Equal(t, true, out["valid"])
	assert.Equal(t, map[string]any{"name": "Ann", "phone": "13912345678", "age": nil}, out["data"])
	assert.Less(t, strings.Index(stdout, "name:"), strings.Index(stdout, "phone:"))

	_, _, err = execute(t, `{"phone": "13912345678", "name": "Ann"}`, "check", "-s", schemaPath, "-n", "Contact", "-o", "toml")
	assert.Error(t, err)
}

func TestCheck_missingSchemaFlag(t *testing.T) {
	_, _, err := execute(t, `{}`, "check")
	assert.Error(t, err)
}

func TestCheck_debugLogging(t *testing.T) {
	schemaPath := writeFile(t, "schemas.yaml", definitions)

	_, stderr, err := execute(t, `{"name": "Ann", "phone": "13912345678"}`,
		"check", "-s", schemaPath, "-n", "Contact", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)

	var messages []string
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		messages = append(messages, gjson.Get(line, "msg").String())
	}
	assert.Contains(t, messages, "schemas loaded")
	assert.Contains(t, messages, "form validated")
}

func TestCheck_configFromEnvironment(t *testing.T) {
	schemaPath := writeFile(t, "schemas.yaml", definitions)
	t.Setenv("GDFORM_LOG_LEVEL", "debug")

	_, stderr, err := execute(t, `{"name": "Ann", "phone": "13912345678"}`, "check", "-s", schemaPath, "-n", "Contact")
	require.NoError(t, err)
	assert.Contains(t, stderr, "form validated")
}

func TestJSONSchema(t *testing.T) {
	schemaPath := writeFile(t, "schemas.yaml", definitions)

	stdout, _, err := execute(t, "", "jsonschema", "-s", schemaPath, "-n", "Contact")
	require.NoError(t, err)
	require.True(t, gjson.Valid(stdout))
	assert.Equal(t, "Contact", gjson.Get(stdout, "title").String())
	assert.Equal(t, int64(18), gjson.Get(stdout, "properties.age.minimum").Int())
}

func TestJSONSchema_document(t *testing.T) {
	schemaPath := writeFile(t, "schemas.yaml", definitions)
	valid := writeFile(t, "valid.json", `{"name": "Ann", "phone": "13912345678", "age": null}`)
	invalid := writeFile(t, "invalid.json", `{"name": "Ann", "phone": "13912345678"}`)

	for _, engine := range []string{"xeipuuv", "qri"} {
		t.Run(engine, func(t *testing.T) {
			stdout, _, err := execute(t, "", "jsonschema", "-s", schemaPath, "-n", "Contact", "-d", valid, "--engine", engine)
			require.NoError(t, err)
			assert.Contains(t, stdout, "matches schema Contact")

			_, _, err = execute(t, "", "jsonschema", "-s", schemaPath, "-n", "Contact", "-d", invalid, "--engine", engine)
			assert.ErrorIs(t, err, jsonschema.ErrMismatch)
		})
	}

	_, _, err := execute(t, "", "jsonschema", "-s", schemaPath, "-d", valid, "--engine", "other")
	assert.Error(t, err)
}

func TestLoadConfig_file(t *testing.T) {
	configPath := writeFile(t, "gdform.yaml", "log:\n  level: error\n  format: json\nengine: qri\n")

	root := newRootCmd()
	cmd, _, err := root.Find([]string{"jsonschema"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags([]string{"--config", configPath, "--log-level", "debug"}))

	cfg, err := LoadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "qri", cfg.Engine)
}

func keys(r gjson.Result) []string {
	var out []string
	r.ForEach(func(key, _ gjson.Result) bool {
		out = append(out, key.String())
		return true
	})

	return out
}
