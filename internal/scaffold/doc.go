// Package scaffold writes starter files for a project that adopts vocabgen:
// a vocabulary.toml with every required key filled in, and a vocabgen.yaml
// with the default settings. It powers the "vocabgen init" command.
package scaffold
