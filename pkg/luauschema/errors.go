package luauschema

import "errors"

// Error types for the luauschema package.
var (
	// ErrMalformedInput indicates the input could not be parsed into a
	// document at all.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidSchemaType indicates a schema node is neither an object nor a
	// boolean schema.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrUnresolvedReference indicates a $ref points at an undeclared
	// definition or uses an unsupported pointer form.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrNameCollision indicates the definition registry was asked to fill
	// the same name twice. This is an internal invariant violation, not a
	// user error.
	ErrNameCollision = errors.New("name collision")
)
