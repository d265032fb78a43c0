// Package cli implements the spec-tools commands: schema verification over
// a documentation tree, a watch mode that re-runs it on changes, and the
// CBOR documentation-example generator.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/locationtag/spec-tools/pkg/console"
	"github.com/locationtag/spec-tools/pkg/constants"
	"github.com/locationtag/spec-tools/pkg/scanner"
	"github.com/locationtag/spec-tools/pkg/verifier"
)

// ErrVerificationFailed marks a run that completed but found problems (or
// found no schemas at all), as opposed to a run that could not start.
var ErrVerificationFailed = errors.New("schema verification failed")

// VerifySchemas scans the given paths for JSON schemas and validates each
// one against the Draft-07 meta-schema, requiring a Draft-07 $schema
// declaration unless allowMissingSchema is set. With no paths it falls
// back to the config file, then the default schema document, then the tree
// root. Returns ErrVerificationFailed when sources were missing or any
// check failed.
func VerifySchemas(paths []string, allowMissingSchema, verbose bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	root := treeRoot(cwd)

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		paths = cfg.Paths
	}
	if len(paths) == 0 {
		paths = defaultPaths(root)
	}

	result, err := runVerification(paths, root, verifier.Options{
		AllowMissingSchema: allowMissingSchema || cfg.AllowMissingSchema,
	}, verbose)
	if err != nil {
		return err
	}

	printResult(result)
	if !result.OK() {
		return ErrVerificationFailed
	}
	return nil
}

// defaultPaths picks the scan targets when neither the command line nor
// the config file names any: the well-known schema document if present,
// otherwise the whole tree.
func defaultPaths(root string) []string {
	defaultDoc := filepath.Join(root, constants.DefaultSchemaDoc)
	if _, err := os.Stat(defaultDoc); err == nil {
		return []string{defaultDoc}
	}
	return []string{root}
}

// runVerification performs one scan-and-validate pass over paths.
func runVerification(paths []string, root string, opts verifier.Options, verbose bool) (verifier.Result, error) {
	if verbose {
		for _, p := range paths {
			fmt.Println(console.FormatVerboseMessage(fmt.Sprintf("scanning %s", console.ToRelativePath(p))))
		}
	}

	spin := console.NewSpinner("Scanning for JSON schemas...")
	spin.Start()
	sources, err := scanner.CollectSources(paths, root)
	if err != nil {
		spin.Stop()
		return verifier.Result{}, err
	}
	spin.UpdateMessage("Validating schemas...")
	result := verifier.Verify(sources, opts)
	spin.Stop()

	if verbose {
		for _, src := range sources {
			fmt.Println(console.FormatVerboseMessage(fmt.Sprintf("found schema at %s", src.Label)))
		}
	}

	return result, nil
}

// printResult renders the report: a failure list, a no-sources notice, or
// the verified count.
func printResult(result verifier.Result) {
	if result.Verified == 0 {
		fmt.Println(console.FormatWarningMessage("No JSON schemas found."))
		return
	}

	if len(result.Failures) > 0 {
		fmt.Println(console.FormatListHeader("Schema verification failed:"))
		fmt.Println()
		for _, failure := range result.Failures {
			fmt.Println(console.FormatListItem(failure))
		}
		return
	}

	fmt.Println(console.FormatSuccessMessage(fmt.Sprintf("OK: %d schema(s) verified as Draft 07", result.Verified)))
}
