package verifier

import (
	"fmt"

	"github.com/locationtag/spec-tools/pkg/scanner"
)

// draft07URIs are the accepted spellings of the Draft-07 dialect
// identifier: http and https schemes, with and without the trailing
// fragment marker.
var draft07URIs = map[string]struct{}{
	"http://json-schema.org/draft-07/schema#":  {},
	"https://json-schema.org/draft-07/schema#": {},
	"http://json-schema.org/draft-07/schema":   {},
	"https://json-schema.org/draft-07/schema":  {},
}

// checkDialect verifies that a source declares Draft-07 via its $schema
// field. Anything that is not a JSON object, including a source carrying a
// parse error, yields the object failure alone; the $schema field is not
// inspected in that case.
func checkDialect(src scanner.SchemaSource) []string {
	if src.Err != nil {
		return []string{fmt.Sprintf("%s: schema must be a JSON object", src.Label)}
	}

	obj, ok := src.Value.(map[string]any)
	if !ok {
		return []string{fmt.Sprintf("%s: schema must be a JSON object", src.Label)}
	}

	uri, present := obj["$schema"]
	if !present {
		return []string{fmt.Sprintf("%s: $schema must be Draft 07 (missing)", src.Label)}
	}

	if s, ok := uri.(string); ok {
		if _, recognized := draft07URIs[s]; recognized {
			return nil
		}
		return []string{fmt.Sprintf("%s: $schema must be Draft 07 (got %q)", src.Label, s)}
	}

	return []string{fmt.Sprintf("%s: $schema must be Draft 07 (got %v)", src.Label, uri)}
}
