package verifier

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/locationtag/spec-tools/pkg/scanner"
)

func sourceFromJSON(t *testing.T, label, text string) scanner.SchemaSource {
	t.Helper()
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return scanner.SchemaSource{Path: label, Label: label, Err: &scanner.ParseError{Msg: err.Error(), Text: text}}
	}
	return scanner.SchemaSource{Path: label, Label: label, Value: value}
}

func TestCheckDialect(t *testing.T) {
	tests := []struct {
		name        string
		schema      string
		wantFail    bool
		errContains string
	}{
		{
			name:   "http with fragment",
			schema: `{"$schema": "http://json-schema.org/draft-07/schema#"}`,
		},
		{
			name:   "https with fragment",
			schema: `{"$schema": "https://json-schema.org/draft-07/schema#"}`,
		},
		{
			name:   "http without fragment",
			schema: `{"$schema": "http://json-schema.org/draft-07/schema"}`,
		},
		{
			name:   "https without fragment",
			schema: `{"$schema": "https://json-schema.org/draft-07/schema"}`,
		},
		{
			name:        "draft-06 rejected",
			schema:      `{"$schema": "http://json-schema.org/draft-06/schema#"}`,
			wantFail:    true,
			errContains: `got "http://json-schema.org/draft-06/schema#"`,
		},
		{
			name:        "draft 2019-09 rejected",
			schema:      `{"$schema": "https://json-schema.org/draft/2019-09/schema"}`,
			wantFail:    true,
			errContains: "$schema must be Draft 07",
		},
		{
			name:        "missing $schema",
			schema:      `{"type": "object"}`,
			wantFail:    true,
			errContains: "(missing)",
		},
		{
			name:        "non-string $schema",
			schema:      `{"$schema": 7}`,
			wantFail:    true,
			errContains: "$schema must be Draft 07",
		},
		{
			name:        "array is not a schema object",
			schema:      `[1, 2, 3]`,
			wantFail:    true,
			errContains: "schema must be a JSON object",
		},
		{
			name:        "scalar is not a schema object",
			schema:      `"just a string"`,
			wantFail:    true,
			errContains: "schema must be a JSON object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures := checkDialect(sourceFromJSON(t, "src", tt.schema))
			if tt.wantFail {
				if len(failures) != 1 {
					t.Fatalf("got %d failures, want 1: %v", len(failures), failures)
				}
				if !strings.Contains(failures[0], tt.errContains) {
					t.Errorf("failure %q does not contain %q", failures[0], tt.errContains)
				}
				return
			}
			if len(failures) != 0 {
				t.Fatalf("unexpected failures: %v", failures)
			}
		})
	}
}

func TestCheckDialectNonObjectSkipsSchemaCheck(t *testing.T) {
	failures := checkDialect(sourceFromJSON(t, "src", `[1]`))
	if len(failures) != 1 {
		t.Fatalf("got %d failures, want exactly 1", len(failures))
	}
	if strings.Contains(failures[0], "$schema") {
		t.Errorf("the $schema check must not run for non-objects, got %q", failures[0])
	}
}
