// Package config manages project-level generator settings. Values come from
// an optional vocabgen.yaml in the working directory, VOCABGEN_* environment
// variables and command-line flags, in increasing order of precedence.
package config
