package verifier

import (
	"fmt"

	"github.com/locationtag/spec-tools/pkg/scanner"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaResourceURL is a placeholder location for the document under
// validation; the compiler needs a URL but never fetches it.
const schemaResourceURL = "http://spec-tools.local/schema.json"

// checkStructure validates a source against the Draft-07 meta-schema. A
// captured parse error becomes the single failure for the source; no
// meta-schema validation is attempted on unparseable input. A non-object
// value fails with the object message independently of the dialect check.
// Otherwise the document is compiled under Draft-07 and the compiler's
// error, if any, is the structural failure.
func checkStructure(src scanner.SchemaSource) []string {
	if src.Err != nil {
		return []string{fmt.Sprintf("%s: invalid JSON (%s)", src.Label, src.Err.Msg)}
	}

	if _, ok := src.Value.(map[string]any); !ok {
		return []string{fmt.Sprintf("%s: schema must be a JSON object", src.Label)}
	}

	if err := compileAsDraft07(src.Value); err != nil {
		return []string{fmt.Sprintf("%s: %v", src.Label, err)}
	}
	return nil
}

// compileAsDraft07 runs the document through the jsonschema compiler with
// Draft-07 as the default dialect. Compilation performs full meta-schema
// validation, so a compile error means the document is not a well-formed
// Draft-07 schema.
func compileAsDraft07(doc any) error {
	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft7)

	if err := compiler.AddResource(schemaResourceURL, doc); err != nil {
		return err
	}
	if _, err := compiler.Compile(schemaResourceURL); err != nil {
		return err
	}
	return nil
}
