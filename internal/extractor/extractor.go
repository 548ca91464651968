// Package extractor scans VHDL and PSL source text for design units.
//
// For every file it answers two questions: which design units does this
// file define, and which design units does it use? Units are identified by
// dotted, lower-cased names (library.name, library.name.sub,
// library.entity.arch.vunit). A `*` segment stands for an unknown library
// or architecture and is bound to concrete units later, when the whole
// project has been scanned.
package extractor

import "strings"

// Extract returns the design units defined and used by one file's source
// text, given the library the file belongs to. All matches in the file are
// unioned; a file with no matches yields two empty sets.
func Extract(src []byte, library string) (defines, uses map[string]bool) {
	text := string(src)
	defines = make(map[string]bool)
	uses = make(map[string]bool)

	// defining a package or entity?
	for _, m := range packageDefPattern.FindAllStringSubmatch(text, -1) {
		defines[unitID(library, m[1])] = true
	}
	for _, m := range entityDefPattern.FindAllStringSubmatch(text, -1) {
		defines[unitID(library, m[1])] = true
	}

	// defining a package body? The body depends on its own specification.
	for _, m := range packageBodyDefPattern.FindAllStringSubmatch(text, -1) {
		defines[unitID(library, m[1], "body")] = true
		uses[unitID(library, m[1])] = true
	}

	// defining an architecture? It depends on its entity.
	for _, m := range archDefPattern.FindAllStringSubmatch(text, -1) {
		defines[unitID(library, m[2], m[1])] = true
		uses[unitID(library, m[2])] = true
	}

	// using a library package?
	for _, m := range packageUsePattern.FindAllStringSubmatch(text, -1) {
		uses[unitID(m[1], m[2])] = true
	}

	// instantiating an entity, with or without a bound architecture?
	for _, m := range entityArchUsePattern.FindAllStringSubmatch(text, -1) {
		uses[unitID(m[1], m[2], m[3])] = true
	}
	for _, m := range entityUsePattern.FindAllStringSubmatch(text, -1) {
		uses[unitID(m[1], m[2])] = true
	}

	// instantiating a component? Neither library nor architecture is known.
	for _, m := range componentUsePattern.FindAllStringSubmatch(text, -1) {
		uses[unitID("*", m[1])] = true
	}

	// PSL vunits are definition and use in one line: the vunit is defined
	// in this library but binds to the named entity wherever it lives.
	for _, m := range vunitArchPattern.FindAllStringSubmatch(text, -1) {
		defines[unitID(library, m[2], m[3], m[1])] = true
		uses[unitID("*", m[2], m[3])] = true
	}
	for _, m := range vunitPattern.FindAllStringSubmatch(text, -1) {
		defines[unitID(library, m[2], "*", m[1])] = true
		uses[unitID("*", m[2], "*")] = true
	}

	return defines, uses
}

// unitID joins identifier segments and normalizes to lower case. Two ids
// differing only in case name the same design unit.
func unitID(segments ...string) string {
	return strings.ToLower(strings.Join(segments, "."))
}
