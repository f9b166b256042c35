// Package manifest cross-checks the executable names declared in
// vocabulary.toml against the project's build manifest (Cargo.toml by
// default). The check is advisory: it produces warnings, never errors that
// stop a build.
//
// The default check is textual. It looks for the literal declaration
// name = "<value>" anywhere in the manifest, so a name that appears in a
// different table also satisfies it. Strict mode parses the manifest as TOML
// and only accepts names declared in [[bin]] tables.
package manifest
