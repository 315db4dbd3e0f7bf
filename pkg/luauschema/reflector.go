package luauschema

import (
	"fmt"
	"io"
	"reflect"

	invopopjsonschema "github.com/invopop/jsonschema"
)

// Reflector builds JSON Schemas from Go types, for callers that want Luau
// declarations for types they already have in Go.
type Reflector struct {
	Reflector *invopopjsonschema.Reflector
}

// NewReflector creates a new [Reflector]. Referenced struct types are kept
// as `$defs` entries, so they come out as separate named Luau exports.
func NewReflector() *Reflector {
	return &Reflector{
		Reflector: &invopopjsonschema.Reflector{
			ExpandedStruct: true,
		},
	}
}

// AddGoComments reads Go doc comments from the given package so they become
// `description` keywords, and ultimately Luau comments.
func (r *Reflector) AddGoComments(pkg, path string) error {
	err := r.Reflector.AddGoComments(pkg, path, invopopjsonschema.WithFullComment())
	if err != nil {
		return fmt.Errorf("failed to add go comments from '%s': %w", pkg, err)
	}

	return nil
}

// Reflect generates a JSON Schema for the given Go type.
func (r *Reflector) Reflect(t reflect.Type) *invopopjsonschema.Schema {
	return r.Reflector.ReflectFromType(t)
}

// ReflectedSchemaToLuau converts a reflected JSON Schema into Luau type
// declarations and writes them to w.
func ReflectedSchemaToLuau(s *invopopjsonschema.Schema, w io.Writer, opts ...Option) error {
	jsBytes, err := s.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal json schema: %w", err)
	}

	out, err := Convert(jsBytes, opts...)
	if err != nil {
		return fmt.Errorf("failed to generate luau types: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write luau types: %w", err)
	}

	return nil
}
