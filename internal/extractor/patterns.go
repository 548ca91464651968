package extractor

import "regexp"

// The structural patterns recognized in VHDL and PSL sources. Whitespace in
// a pattern spans line breaks, so declarations folded over several lines
// still match. All matching is case-insensitive.
var (
	// Pattern: package <name> is
	packageDefPattern = regexp.MustCompile(`(?i)package\s+(\w+)\s+is`)

	// Pattern: package body <name> is
	packageBodyDefPattern = regexp.MustCompile(`(?i)package\s+body\s+(\w+)\s+is`)

	// Pattern: entity <name> is
	entityDefPattern = regexp.MustCompile(`(?i)entity\s+(\w+)\s+is`)

	// Pattern: architecture <name> of <entity> is
	archDefPattern = regexp.MustCompile(`(?i)architecture\s+(\w+)\s+of\s+(\w+)\s+is`)

	// Pattern: use <library>.<package>.<suffix>
	packageUsePattern = regexp.MustCompile(`(?i)use\s+(\w+)\.(\w+)\.`)

	// Pattern: entity <library>.<entity>(<architecture>)
	entityArchUsePattern = regexp.MustCompile(`(?i)entity\s+(\w+)\.(\w+)\((\w+)\)\s`)

	// Pattern: entity <library>.<entity>, architecture left open
	entityUsePattern = regexp.MustCompile(`(?i)entity\s+(\w+)\.(\w+)\s`)

	// Pattern: component <entity> is, neither library nor architecture known
	componentUsePattern = regexp.MustCompile(`(?i)component\s+(\w+)\s+is`)

	// Pattern: vunit <name>(<entity>(<architecture>))
	vunitArchPattern = regexp.MustCompile(`(?i)vunit\s+(\w+)\((\w+)\((\w+)\)\)\s`)

	// Pattern: vunit <name>(<entity>), architecture left open
	vunitPattern = regexp.MustCompile(`(?i)vunit\s+(\w+)\((\w+)\)\s`)
)
