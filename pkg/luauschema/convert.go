package luauschema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Option configures a single [Convert] call.
type Option func(*options)

type options struct {
	typeName string
}

// WithTypeName overrides the root export's type name. The name is converted
// to PascalCase. Defaults to [DefaultTypeName].
func WithTypeName(name string) Option {
	return func(o *options) {
		o.typeName = name
	}
}

// Convert converts a JSON Schema document into Luau type declarations: one
// named export for the root schema plus one per named definition, each
// preceded by constraint comments, closed by the module return statement.
//
// A conversion is a pure function of its input. Each call allocates a fresh
// context and mutates nothing outside it, so independent conversions may run
// in parallel.
func Convert(data []byte, opts ...Option) ([]byte, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedInput)
	}

	root := newSchemaNode(doc.Content[0])
	if _, isBool := root.Bool(); !isBool && !root.IsMapping() {
		return nil, fmt.Errorf("%w: root must be an object or a boolean schema", ErrInvalidSchemaType)
	}

	ctx := newConversionContext()

	// The root claims its name before the definition pre-scan, so a
	// caller-provided name is never suffixed away by a colliding definition.
	rootName := ctx.registry.RegisterRoot(o.typeName)
	ctx.prescan(root)

	expr, err := ctx.synthesize(root)
	if err != nil {
		return nil, err
	}

	if err := ctx.registry.Fill(rootName, expr, Annotate(root)); err != nil {
		return nil, err
	}

	// Definitions nobody referenced are still exported; fill whatever the
	// root traversal did not reach, in allocation order.
	for _, name := range ctx.registry.Names() {
		def, _ := ctx.registry.Lookup(name)
		if def.filled {
			continue
		}

		node, ok := ctx.defNodes[ctx.nameKeys[name]]
		if !ok {
			return nil, fmt.Errorf("%w: no definition for %q", ErrUnresolvedReference, name)
		}

		if err := ctx.fillDefinition(name, node); err != nil {
			return nil, err
		}
	}

	return render(ctx.registry), nil
}
