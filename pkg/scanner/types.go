package scanner

import "fmt"

// ParseError captures a JSON parse failure as data so it can flow through
// the pipeline and be reported with its source label instead of aborting
// the scan.
type ParseError struct {
	Msg  string // decoder message, or a synthetic message for a missing include
	Text string // the text that failed to parse
}

func (e *ParseError) Error() string {
	return e.Msg
}

// SchemaSource is one schema occurrence discovered during extraction.
// Exactly one of Value and Err is set: Value holds the parsed JSON document,
// Err holds a captured parse failure. Sources are immutable once built.
type SchemaSource struct {
	Path  string // file the source was discovered in
	Label string // unique-enough label for failure reporting
	Value any
	Err   *ParseError
}

// block is the content between a ```json fence and its closing fence.
// startLine is the 1-based line number of the first content line.
type block struct {
	startLine int
	text      string
}

// newValueSource builds a source carrying a parsed document.
func newValueSource(path, label string, value any) SchemaSource {
	return SchemaSource{Path: path, Label: label, Value: value}
}

// newErrorSource builds a source carrying a captured parse failure.
func newErrorSource(path, label string, err *ParseError) SchemaSource {
	return SchemaSource{Path: path, Label: label, Err: err}
}

// blockLabel formats the label for a markdown-derived source.
func blockLabel(path string, startLine, blockIndex int) string {
	return fmt.Sprintf("%s:%d (block %d)", path, startLine, blockIndex)
}
