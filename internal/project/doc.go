// Package project resolves the repository root, build target and
// destination directory handed over by the build system, loads the
// configuration, and derives every path the pipeline touches.
package project
