// Package vocabulary loads and validates the vocabulary configuration file
// (vocabulary.toml) that defines every user-facing name in the application:
// its identity, executable names, MCP tool metadata and action verbs.
//
// Loading is strict. The file must exist, parse as TOML and satisfy the
// embedded JSON Schema, which requires every field. There are no defaults.
package vocabulary
