// Package validator enforces the configuration contract.
//
// The CUE schema is the gatekeeper between a hand-edited vhdl_deps.json
// and the scanning pipeline: a misspelled key or a wrongly-typed value
// fails here with a field-level error instead of silently degrading to a
// default later. When validation fails, fix the config file or the
// schema, never the symptom downstream.
package validator

import (
	"embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaFS embed.FS

// Validator validates raw configuration bytes against the embedded CUE
// schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// New creates a Validator with the embedded schema
func New() (*Validator, error) {
	ctx := cuecontext.New()

	schemaBytes, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("loading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// ValidateConfig checks raw vhdl_deps.json content against the schema.
// Returns nil if valid, or a detailed error naming the offending fields.
func (v *Validator) ValidateConfig(data []byte) error {
	value := v.ctx.CompileBytes(data)
	if value.Err() != nil {
		return fmt.Errorf("compiling config as CUE: %w", value.Err())
	}

	configDef := v.schema.LookupPath(cue.ParsePath("#Config"))
	if configDef.Err() != nil {
		return fmt.Errorf("looking up #Config definition: %w", configDef.Err())
	}

	unified := configDef.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed:\n%s", errors.Details(err, nil))
	}

	return nil
}
