package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/locationtag/spec-tools/pkg/cli"
	"github.com/locationtag/spec-tools/pkg/console"
	"github.com/locationtag/spec-tools/pkg/constants"
	"github.com/spf13/cobra"
)

// Build-time variables set by GoReleaser
var (
	version = "dev"
)

// Global flags
var verbose bool

var rootCmd = &cobra.Command{
	Use:   constants.CLIBinaryName,
	Short: "Tooling for the location-tag specification repository",
	Long: `Tooling for the location-tag specification repository.

Verifies that every JSON Schema in the documentation tree - standalone
.json files, fenced JSON blocks in markdown, and snippet includes - is a
valid JSON Schema Draft 07 document, and generates the CBOR encoding
example embedded in the docs.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [paths...]",
	Short: "Verify JSON Schema Draft 07 definitions in the docs tree",
	Long: `Verify JSON Schema Draft 07 definitions.

Scans the given files or directories for JSON schemas and validates each
one against the Draft 07 meta-schema. With no paths, scans the paths from
.spec-tools.yml, or the default schema documentation file, or the whole
tree.

Examples:
  ` + constants.CLIBinaryName + ` verify
  ` + constants.CLIBinaryName + ` verify docs/ json-schema/
  ` + constants.CLIBinaryName + ` verify --allow-missing-schema
  ` + constants.CLIBinaryName + ` verify --watch docs/`,
	Run: func(cmd *cobra.Command, args []string) {
		allowMissingSchema, _ := cmd.Flags().GetBool("allow-missing-schema")
		watch, _ := cmd.Flags().GetBool("watch")

		if watch {
			if err := cli.WatchAndVerify(args, allowMissingSchema, verbose); err != nil {
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
				os.Exit(1)
			}
			return
		}

		if err := cli.VerifySchemas(args, allowMissingSchema, verbose); err != nil {
			if !errors.Is(err, cli.ErrVerificationFailed) {
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			}
			os.Exit(1)
		}
	},
}

var encodeExampleCmd = &cobra.Command{
	Use:   "encode-example",
	Short: "Generate the canonical CBOR encoding example for the docs",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.EncodeExample(verbose); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(console.FormatInfoMessage(fmt.Sprintf("%s version %s", constants.CLIBinaryName, version)))
	},
}

func init() {
	// Add global verbose flag to root command
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output showing detailed information")

	verifyCmd.Flags().Bool("allow-missing-schema", false, "Do not require $schema to be Draft 07")
	verifyCmd.Flags().BoolP("watch", "w", false, "Watch for changes and re-run verification automatically")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(encodeExampleCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
