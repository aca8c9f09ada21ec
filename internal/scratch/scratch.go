// Package scratch provides the introductory scratch document shown when the
// editor starts without an explicit source.
package scratch

import _ "embed"

//go:embed intro.adoc
var intro string

// Path is the well-known resource path the scratch document is served at.
const Path = "/scratch"

// Intro returns the introductory scratch text.
func Intro() string {
	return intro
}
