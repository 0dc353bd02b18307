// Package counter handles the run counter file. The file holds a single
// non-negative integer that is incremented once per auto-commit and names
// the output artifact of that run.
package counter
