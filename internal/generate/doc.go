// Package generate runs the vocabulary pipeline end to end: load the
// configuration, check executable names against the build manifest, render
// every requested target and write the results. A stamp file in the output
// directory records the inputs of the last successful run so unchanged
// inputs are not regenerated.
package generate
