// Package codegen renders a vocabulary configuration into source files of
// string constants and writes them to a build output directory.
//
// Rendering is a pure function of the configuration and Options. Templates
// are embedded; Go output is passed through go/format so that a value which
// would break the generated syntax surfaces as an error instead of a file.
package codegen
