package scanner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/locationtag/spec-tools/pkg/constants"
)

// snippetDirectiveRe matches a block that consists of a single snippet
// include directive, e.g. --8<-- "location-tag.json". Single or double
// quotes are accepted; nothing else may appear on the line.
var snippetDirectiveRe = regexp.MustCompile(`^--8<--\s+["']([^"']+)["']\s*$`)

// matchSnippetDirective reports whether the trimmed block text is an
// include directive, and if so returns the quoted target.
func matchSnippetDirective(text string) (string, bool) {
	m := snippetDirectiveRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// snippetCandidates returns the ordered search path for an include target:
// the enclosing markdown file's directory, the tree root, then the tree
// root's json-schema subdirectory.
func snippetCandidates(mdPath, target, root string) []string {
	return []string{
		filepath.Join(filepath.Dir(mdPath), target),
		filepath.Join(root, target),
		filepath.Join(root, constants.SchemaDirName, target),
	}
}

// resolveSnippet loads the file referenced by an include directive. The
// first existing candidate wins. A target that exists nowhere produces a
// source carrying a synthetic parse error naming the target, so the miss
// flows through the same reporting path as a genuine JSON error while
// staying distinguishable from one.
func resolveSnippet(mdPath string, startLine, blockIndex int, target, root, directive string) SchemaSource {
	label := blockLabel(mdPath, startLine, blockIndex)

	var includePath string
	for _, candidate := range snippetCandidates(mdPath, target, root) {
		if _, err := os.Stat(candidate); err == nil {
			includePath = candidate
			break
		}
	}

	if includePath == "" {
		return newErrorSource(mdPath, label, &ParseError{
			Msg:  fmt.Sprintf("snippet include not found: %s", target),
			Text: directive,
		})
	}

	content, err := os.ReadFile(includePath)
	if err != nil {
		return newErrorSource(mdPath, label, &ParseError{Msg: err.Error(), Text: directive})
	}

	var value any
	if err := json.Unmarshal(content, &value); err != nil {
		return newErrorSource(mdPath, label, &ParseError{Msg: err.Error(), Text: string(content)})
	}

	label = fmt.Sprintf("%s:%d (block %d, include %s)", mdPath, startLine, blockIndex, includePath)
	return newValueSource(mdPath, label, value)
}
