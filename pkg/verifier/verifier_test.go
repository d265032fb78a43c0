package verifier

import (
	"reflect"
	"strings"
	"testing"

	"github.com/locationtag/spec-tools/pkg/scanner"
)

func TestVerifyEmptyObjectSchema(t *testing.T) {
	// {} is structurally a valid, if trivial, Draft-07 schema; only the
	// dialect check fails on it.
	result := Verify([]scanner.SchemaSource{sourceFromJSON(t, "a.json", `{}`)}, Options{})
	if result.Verified != 1 {
		t.Fatalf("Verified = %d, want 1", result.Verified)
	}
	if len(result.Failures) != 1 {
		t.Fatalf("got %d failures, want 1: %v", len(result.Failures), result.Failures)
	}
	if !strings.Contains(result.Failures[0], "$schema must be Draft 07") {
		t.Errorf("failure = %q, want a dialect failure", result.Failures[0])
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {"location": {"type": "array", "items": {"type": "number"}}}
	}`
	result := Verify([]scanner.SchemaSource{sourceFromJSON(t, "tag.json", schema)}, Options{})
	if !result.OK() {
		t.Fatalf("expected a clean pass, got failures: %v", result.Failures)
	}
}

func TestVerifyDraft06Dialect(t *testing.T) {
	schema := `{"$schema": "http://json-schema.org/draft-06/schema#", "type": "object"}`
	result := Verify([]scanner.SchemaSource{sourceFromJSON(t, "old.json", schema)}, Options{})
	if len(result.Failures) != 1 {
		t.Fatalf("got %d failures, want exactly 1 dialect failure: %v", len(result.Failures), result.Failures)
	}
	if !strings.Contains(result.Failures[0], "$schema must be Draft 07") {
		t.Errorf("failure = %q", result.Failures[0])
	}
}

func TestVerifyBothChecksRunPerSource(t *testing.T) {
	// Two blocks from one markdown file: {} then malformed JSON. The first
	// yields one dialect failure; the second yields the not-an-object
	// dialect line plus the structural parse-error line.
	sources := []scanner.SchemaSource{
		sourceFromJSON(t, "doc.md:2 (block 1)", `{}`),
		{
			Path:  "doc.md",
			Label: "doc.md:6 (block 2)",
			Err:   &scanner.ParseError{Msg: "unexpected end of JSON input", Text: "{not valid json"},
		},
	}

	result := Verify(sources, Options{})
	if result.Verified != 2 {
		t.Fatalf("Verified = %d, want 2", result.Verified)
	}
	if len(result.Failures) != 3 {
		t.Fatalf("got %d failures, want 3: %v", len(result.Failures), result.Failures)
	}
	if !strings.Contains(result.Failures[0], "doc.md:2 (block 1)") {
		t.Errorf("failures must follow discovery order, got %q first", result.Failures[0])
	}
	if !strings.Contains(result.Failures[1], "schema must be a JSON object") {
		t.Errorf("dialect failure must precede the structural one, got %q", result.Failures[1])
	}
	if !strings.Contains(result.Failures[2], "invalid JSON (unexpected end of JSON input)") {
		t.Errorf("failure = %q", result.Failures[2])
	}
}

func TestVerifyAllowMissingSchema(t *testing.T) {
	sources := []scanner.SchemaSource{
		sourceFromJSON(t, "a.json", `{}`),
		sourceFromJSON(t, "b.json", `{"type": "object"}`),
	}

	result := Verify(sources, Options{AllowMissingSchema: true})
	if !result.OK() {
		t.Fatalf("with the dialect requirement suppressed both sources pass, got: %v", result.Failures)
	}

	// Structural validation still runs.
	bad := []scanner.SchemaSource{sourceFromJSON(t, "c.json", `{"required": "oops"}`)}
	result = Verify(bad, Options{AllowMissingSchema: true})
	if len(result.Failures) != 1 {
		t.Fatalf("structural validation must still run: %v", result.Failures)
	}
}

func TestVerifyNonObjectDuplicateFailures(t *testing.T) {
	// Both checkers report not-an-object independently; the duplication is
	// intentional and pinned here.
	result := Verify([]scanner.SchemaSource{sourceFromJSON(t, "arr.json", `[1]`)}, Options{})
	if len(result.Failures) != 2 {
		t.Fatalf("got %d failures, want 2: %v", len(result.Failures), result.Failures)
	}
	for _, f := range result.Failures {
		if !strings.Contains(f, "schema must be a JSON object") {
			t.Errorf("unexpected failure %q", f)
		}
	}
}

func TestVerifyZeroSources(t *testing.T) {
	result := Verify(nil, Options{})
	if result.OK() {
		t.Error("zero sources must not count as a pass")
	}
	if result.Verified != 0 || len(result.Failures) != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestVerifyDeterministicOrdering(t *testing.T) {
	sources := []scanner.SchemaSource{
		sourceFromJSON(t, "1.json", `{}`),
		sourceFromJSON(t, "2.json", `[false]`),
		sourceFromJSON(t, "3.json", `{"type": 42}`),
		sourceFromJSON(t, "4.json", `{}`),
	}

	first := Verify(sources, Options{})
	for i := 0; i < 10; i++ {
		if got := Verify(sources, Options{}); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced a different report:\n%v\nwant:\n%v", i, got.Failures, first.Failures)
		}
	}
}
