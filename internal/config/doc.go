// Package config handles parsing and writing of .autocommit.yaml, which
// selects the watched sources, artifact naming, ignore patterns, commit
// identity, push target and how the built executable is invoked. A missing
// file yields Default().
package config
