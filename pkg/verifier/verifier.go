// Package verifier checks extracted schema sources against the Draft-07
// dialect requirement and the Draft-07 meta-schema, and aggregates every
// failure into a single ordered report.
package verifier

import (
	"github.com/locationtag/spec-tools/pkg/scanner"
	"github.com/sourcegraph/conc/iter"
)

// Options controls which checks run.
type Options struct {
	// AllowMissingSchema disables the Draft-07 $schema requirement.
	// Structural validation still runs.
	AllowMissingSchema bool
}

// Result is the outcome of verifying a set of sources.
type Result struct {
	// Failures holds one "label: message" line per diagnostic, in source
	// discovery order; within a source, dialect failures come before
	// structural failures.
	Failures []string
	// Verified is the number of sources checked.
	Verified int
}

// OK reports whether verification passed: at least one source was found
// and none produced a failure.
func (r Result) OK() bool {
	return r.Verified > 0 && len(r.Failures) == 0
}

// Verify runs both checks over every source. Sources are independent of
// each other, so they are validated concurrently; iter.Map returns results
// in input order, which keeps the report order equal to discovery order.
// Every source gets both checks regardless of earlier failures: one bad
// schema never hides problems in the rest.
func Verify(sources []scanner.SchemaSource, opts Options) Result {
	perSource := iter.Map(sources, func(src *scanner.SchemaSource) []string {
		var failures []string
		if !opts.AllowMissingSchema {
			failures = append(failures, checkDialect(*src)...)
		}
		failures = append(failures, checkStructure(*src)...)
		return failures
	})

	var failures []string
	for _, fs := range perSource {
		failures = append(failures, fs...)
	}

	return Result{Failures: failures, Verified: len(sources)}
}
