// Package cli defines the Cobra command tree for the vocabgen CLI. Each file
// in this package registers one top-level command (generate, check, watch,
// etc.) with the root command. Command implementations delegate to internal
// packages for business logic and only handle flag parsing, settings
// resolution and output formatting.
package cli
