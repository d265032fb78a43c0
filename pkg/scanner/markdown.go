package scanner

import (
	"encoding/json"
	"strings"
)

// fenceState drives the block scanner. Keeping it an explicit two-state
// machine makes the unterminated-block behavior easy to audit.
type fenceState int

const (
	outsideBlock fenceState = iota
	insideBlock
)

const (
	jsonFenceMarker = "```json"
	bareFenceMarker = "```"
)

// extractBlocks scans markdown content for ```json fenced blocks.
// A block opens on a line whose trimmed, case-folded content starts with
// ```json and closes on the next line whose trimmed content starts with a
// bare ``` fence. The recorded start line is the first content line after
// the opening fence (1-based). An unterminated block at end of file yields
// no block; its partial content is discarded.
func extractBlocks(content string) []block {
	lines := strings.Split(content, "\n")

	var blocks []block
	state := outsideBlock
	startLine := 0
	var buffer []string

	for idx, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch state {
		case outsideBlock:
			if strings.HasPrefix(strings.ToLower(trimmed), jsonFenceMarker) {
				state = insideBlock
				startLine = idx + 2 // content begins on the line after the fence
				buffer = nil
			}
		case insideBlock:
			if strings.HasPrefix(trimmed, bareFenceMarker) {
				state = outsideBlock
				blocks = append(blocks, block{startLine: startLine, text: strings.Join(buffer, "\n")})
				buffer = nil
				continue
			}
			buffer = append(buffer, line)
		}
	}

	return blocks
}

// sourcesFromMarkdown turns the ```json blocks of one markdown file into
// schema sources. Whitespace-only blocks are dropped: they are non-schema
// uses of a json fence, not errors. Blocks whose entire content is a
// snippet include directive are resolved against the search path; all
// other blocks are parsed inline.
func sourcesFromMarkdown(path, content, root string) []SchemaSource {
	blocks := extractBlocks(content)

	var sources []SchemaSource
	for i, b := range blocks {
		blockIndex := i + 1
		stripped := strings.TrimSpace(b.text)
		if stripped == "" {
			continue
		}

		if target, ok := matchSnippetDirective(stripped); ok {
			sources = append(sources, resolveSnippet(path, b.startLine, blockIndex, target, root, stripped))
			continue
		}

		label := blockLabel(path, b.startLine, blockIndex)
		var value any
		if err := json.Unmarshal([]byte(b.text), &value); err != nil {
			sources = append(sources, newErrorSource(path, label, &ParseError{Msg: err.Error(), Text: b.text}))
			continue
		}
		sources = append(sources, newValueSource(path, label, value))
	}

	return sources
}
