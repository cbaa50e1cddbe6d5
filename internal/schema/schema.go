// Package schema decodes raw tool arguments into typed input structs.
//
// MCP clients send tool arguments as loosely typed JSON objects. Every
// tool in this server declares a typed input struct, decodes into it
// through Decode, and gets back either a populated struct or a
// *FieldError naming the first argument that failed. Handlers never
// poke at map[string]any themselves.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// FieldError reports a tool argument that failed decoding or validation.
type FieldError struct {
	// Field is the wire name of the offending argument. Empty when the
	// failure is not tied to a single field.
	Field string
	// Reason is phrased to read after the field name, e.g. "is required".
	Reason string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("'%s' %s", e.Field, e.Reason)
}

// Required builds the canonical error for a missing argument.
func Required(field string) *FieldError {
	return &FieldError{Field: field, Reason: "is required"}
}

// Invalid builds a validation error for a present but unusable argument.
func Invalid(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

// Validator is implemented by tool input structs. Validate runs after
// decoding succeeds and checks everything the wire types cannot express:
// required fields, ranges, enum membership. Implementations may also
// normalize defaults in place so handlers always see usable values.
type Validator interface {
	Validate() error
}

// Decode fills dst from the raw argument map and validates it. JSON
// numbers arrive as float64 and are converted to the struct's integer
// fields; any genuinely mismatched type surfaces as a *FieldError.
func Decode(args map[string]any, dst Validator) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: dst,
	})
	if err != nil {
		return fmt.Errorf("building argument decoder: %w", err)
	}
	if err := dec.Decode(args); err != nil {
		return asFieldError(err)
	}
	return dst.Validate()
}

// asFieldError converts mapstructure's aggregate error into a single
// FieldError for the first offending argument.
func asFieldError(err error) error {
	var merr *mapstructure.Error
	if !errors.As(err, &merr) || len(merr.Errors) == 0 {
		return &FieldError{Reason: err.Error()}
	}
	msg := merr.Errors[0]
	field := quotedName(msg)
	if field == "" {
		return &FieldError{Reason: msg}
	}
	reason := strings.TrimSpace(strings.TrimPrefix(msg, "'"+field+"'"))
	reason = strings.TrimSpace(strings.TrimPrefix(reason, ":"))
	return &FieldError{Field: field, Reason: reason}
}

// quotedName extracts the field name mapstructure quotes at the start of
// its messages, e.g. "'step_number' expected type 'int', ...".
func quotedName(msg string) string {
	if !strings.HasPrefix(msg, "'") {
		return ""
	}
	rest := msg[1:]
	end := strings.Index(rest, "'")
	if end <= 0 {
		return ""
	}
	return rest[:end]
}
