// Package pipeline implements the post-build auto-commit run: check that
// git is available, bootstrap the repository, gate on changes to the
// watched sources, run the built executable into a numbered output
// artifact, commit, and push to the configured remote.
//
// Phases run sequentially. Each one returns a PhaseResult instead of an
// error; the aggregated Report never turns into a failing exit status, so a
// broken auto-commit step cannot break the build that invoked it.
package pipeline
