package constants

// CLIBinaryName is the name used in user-facing output to refer to the CLI
const CLIBinaryName = "spec-tools"

// DefaultSchemaDoc is the documentation file scanned when no paths are given,
// relative to the tree root
const DefaultSchemaDoc = "docs/spec-page/specification/schemas.md"

// SchemaDirName is the tree-root subdirectory searched last when resolving
// snippet include targets
const SchemaDirName = "json-schema"

// ConfigFileName is the optional project configuration file at the tree root
const ConfigFileName = ".spec-tools.yml"
