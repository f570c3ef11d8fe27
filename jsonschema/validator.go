// Package jsonschema validates *.api.json manifests against the bundled
// api-json-schema.json schema using santhosh-tekuri/jsonschema.
package jsonschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/apiref"
	jsv6 "github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaName is the file name of the bundled schema, used in diagnostics.
const SchemaName = "api-json-schema.json"

// DefaultToolName prefixes validation diagnostics.
const DefaultToolName = "apiref"

//go:embed api-json-schema.json
var schemaJSON []byte

// Schema returns a copy of the bundled schema document.
func Schema() []byte {
	return bytes.Clone(schemaJSON)
}

// Ensure Validator implements apiref.ManifestValidator at compile time.
var _ apiref.ManifestValidator = (*Validator)(nil)

// Validator checks manifests against the compiled bundled schema.
type Validator struct {
	toolName string
	schema   *jsv6.Schema
}

// NewValidator compiles the bundled schema. toolName prefixes diagnostics;
// an empty name uses DefaultToolName.
func NewValidator(toolName string) (*Validator, error) {
	if toolName == "" {
		toolName = DefaultToolName
	}

	doc, err := jsv6.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SchemaName, err)
	}

	c := jsv6.NewCompiler()
	if err := c.AddResource(SchemaName, doc); err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", SchemaName, err)
	}
	sch, err := c.Compile(SchemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", SchemaName, err)
	}

	return &Validator{toolName: toolName, schema: sch}, nil
}

// Decode parses a JSON document into the generic form ValidateManifest
// expects. Numbers are kept as json.Number.
func Decode(r io.Reader) (any, error) {
	return jsv6.UnmarshalJSON(r)
}

// ValidateManifest returns EINVALID with a diagnostic naming the tool and
// every violation if doc does not conform to the schema.
func (v *Validator) ValidateManifest(doc any) error {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}
	return apiref.Errorf(apiref.EINVALID, "%s: The API JSON file does not conform to %s:\n%s",
		v.toolName, SchemaName, violationDetail(err))
}

// violationDetail renders the basic output format of a validation error.
func violationDetail(err error) string {
	var ve *jsv6.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	detail, merr := json.MarshalIndent(ve.BasicOutput(), "", "  ")
	if merr != nil {
		return ve.Error()
	}
	return string(detail)
}
