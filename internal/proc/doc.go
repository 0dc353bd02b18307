// Package proc runs external processes in an explicit working directory and
// reports their outcome as a structured Result instead of relying on an
// ambient exit status.
package proc
