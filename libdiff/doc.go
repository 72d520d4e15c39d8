// Package libdiff computes and prints line diffs between two texts, using
// the line mode of github.com/sergi/go-diff.
package libdiff
