// Package scanner discovers JSON Schema documents across a documentation
// tree: standalone .json files, ```json fenced blocks in markdown files,
// and snippet include directives inside such blocks.
package scanner

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CollectSources walks the given paths and returns every schema occurrence
// found, in discovery order. Directories are searched recursively for .json
// files first and .md files second, each group in lexical path order so the
// result is deterministic. Plain files are routed by extension; files with
// any other extension are ignored. root is the tree root used to resolve
// snippet include directives.
//
// An explicitly given path that does not exist or cannot be read propagates
// its error; a path that simply yields no sources does not.
func CollectSources(paths []string, root string) ([]SchemaSource, error) {
	var sources []SchemaSource

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			jsonFiles, mdFiles, err := listSchemaFiles(path)
			if err != nil {
				return nil, err
			}
			for _, file := range jsonFiles {
				src, err := sourceFromJSONFile(file)
				if err != nil {
					return nil, err
				}
				sources = append(sources, src)
			}
			for _, file := range mdFiles {
				mdSources, err := collectFromMarkdownFile(file, root)
				if err != nil {
					return nil, err
				}
				sources = append(sources, mdSources...)
			}
			continue
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			src, err := sourceFromJSONFile(path)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
		case ".md":
			mdSources, err := collectFromMarkdownFile(path, root)
			if err != nil {
				return nil, err
			}
			sources = append(sources, mdSources...)
		}
	}

	return sources, nil
}

// listSchemaFiles enumerates the .json and .md files under dir. WalkDir
// visits entries in lexical order, which keeps discovery order stable
// across runs.
func listSchemaFiles(dir string) (jsonFiles, mdFiles []string, err error) {
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			jsonFiles = append(jsonFiles, path)
		case ".md":
			mdFiles = append(mdFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return jsonFiles, mdFiles, nil
}

// sourceFromJSONFile parses a whole .json file into a single source. A
// parse failure is captured in the source rather than returned: only the
// read itself is fatal.
func sourceFromJSONFile(path string) (SchemaSource, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return SchemaSource{}, err
	}
	var value any
	if err := json.Unmarshal(content, &value); err != nil {
		return newErrorSource(path, path, &ParseError{Msg: err.Error(), Text: string(content)}), nil
	}
	return newValueSource(path, path, value), nil
}

func collectFromMarkdownFile(path, root string) ([]SchemaSource, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return sourcesFromMarkdown(path, string(content), root), nil
}
