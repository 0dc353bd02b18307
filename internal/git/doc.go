// Package git wraps the git CLI commands used by autocommit: repository
// bootstrap, scoped status queries, staging, committing and pushing. Every
// call runs in the client's repository directory through a proc.Runner; the
// package never changes the process working directory.
package git
