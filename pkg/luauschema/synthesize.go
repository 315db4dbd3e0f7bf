package luauschema

import (
	"fmt"
)

// synthesize is the central recursive conversion: given a schema node it
// produces a structural TypeExpr, filling registry entries it discovers
// through $ref along the way. Dispatch order: $ref, const, enum, composition
// keywords, explicit type keyword, fallback.
func (c *ConversionContext) synthesize(node SchemaNode) (*TypeExpr, error) {
	if b, ok := node.Bool(); ok {
		if b {
			return Primitive("any"), nil
		}

		return Primitive("never"), nil
	}

	if !node.IsMapping() {
		return nil, fmt.Errorf("%w: schema node must be an object or a boolean", ErrInvalidSchemaType)
	}

	if ref, ok := node.Str("$ref"); ok {
		return c.synthesizeRef(ref)
	}

	if constNode, ok := node.Get("const"); ok {
		return synthesizeConst(constNode), nil
	}

	if values, ok := node.Sequence("enum"); ok {
		return synthesizeEnum(values), nil
	}

	if branches, ok := node.Sequence("allOf"); ok {
		return c.mergeAllOf(node, branches)
	}

	if branches, ok := node.Sequence("anyOf"); ok {
		return c.unionOf(branches)
	}

	if branches, ok := node.Sequence("oneOf"); ok {
		return c.unionOf(branches)
	}

	return c.synthesizeByType(node)
}

// synthesizeRef resolves a $ref and returns a NamedRef to its target. If the
// target placeholder is unfilled, the referenced schema is synthesized now,
// with the target name pushed on the resolution stack. A request for a name
// already on the stack returns the NamedRef immediately, which is what keeps
// directly and mutually self-referential definitions from recursing forever.
func (c *ConversionContext) synthesizeRef(ref string) (*TypeExpr, error) {
	name, err := c.resolveRef(ref)
	if err != nil {
		return nil, err
	}

	def, _ := c.registry.Lookup(name)
	if def.filled || c.onStack(name) {
		return NamedRef(name), nil
	}

	node, ok := c.defNodes[c.nameKeys[name]]
	if !ok {
		return nil, fmt.Errorf("%w: no definition for $ref %q", ErrUnresolvedReference, ref)
	}

	if err := c.fillDefinition(name, node); err != nil {
		return nil, err
	}

	return NamedRef(name), nil
}

func (c *ConversionContext) fillDefinition(name string, node SchemaNode) error {
	c.push(name)
	expr, err := c.synthesize(node)
	c.pop()

	if err != nil {
		return err
	}

	return c.registry.Fill(name, expr, Annotate(node))
}

// synthesizeConst converts a const keyword. Luau singleton types exist only
// for strings and booleans; numeric consts widen to number with the literal
// kept as a comment, null becomes nil.
func synthesizeConst(node SchemaNode) *TypeExpr {
	lit := literalOf(node)

	switch lit.Kind {
	case LiteralString, LiteralBool:
		return LiteralUnion(lit)
	case LiteralNumber:
		return Primitive("number")
	case LiteralNull:
		return Primitive("nil")
	default:
		return Primitive("any")
	}
}

// synthesizeEnum converts an enum keyword. All-string-or-boolean enums
// become a literal union; numeric enums collapse to number; mixed enums
// collapse to the union of the base primitives. Collapsed literal sets are
// preserved as a comment by the annotator.
func synthesizeEnum(values []SchemaNode) *TypeExpr {
	literals := make([]Literal, 0, len(values))
	allScalar, allNumbers := true, len(values) > 0

	for _, v := range values {
		lit := literalOf(v)
		literals = append(literals, lit)

		if lit.Kind != LiteralNumber {
			allNumbers = false
		}

		if lit.Kind != LiteralString && lit.Kind != LiteralBool {
			allScalar = false
		}
	}

	if allScalar && len(literals) > 0 {
		return LiteralUnion(literals...)
	}

	if allNumbers {
		return Primitive("number")
	}

	return Union(Primitive("string"), Primitive("number"), Primitive("boolean"), Primitive("nil"))
}

func (c *ConversionContext) unionOf(branches []SchemaNode) (*TypeExpr, error) {
	exprs := make([]*TypeExpr, 0, len(branches))

	for _, b := range branches {
		expr, err := c.synthesize(b)
		if err != nil {
			return nil, err
		}

		exprs = append(exprs, expr)
	}

	if len(exprs) == 1 {
		return exprs[0], nil
	}

	return Union(exprs...), nil
}

func (c *ConversionContext) synthesizeByType(node SchemaNode) (*TypeExpr, error) {
	if typeList, ok := node.StringList("type"); ok {
		return typeListExpr(typeList)
	}

	typeName, ok := node.Str("type")
	if !ok {
		if node.Has("properties") || node.Has("additionalProperties") || node.Has("required") {
			return c.objectExpr(node)
		}

		// No recognizable keyword at all.
		return Object(nil, Primitive("any")), nil
	}

	switch typeName {
	case "string":
		return Primitive("string"), nil
	case "number", "integer":
		return Primitive("number"), nil
	case "boolean":
		return Primitive("boolean"), nil
	case "null":
		return Primitive("nil"), nil
	case "array":
		return c.arrayExpr(node)
	case "object":
		return c.objectExpr(node)
	default:
		return nil, fmt.Errorf("%w: unknown type keyword %q", ErrInvalidSchemaType, typeName)
	}
}

// typeListExpr handles the array form of the type keyword, producing a union
// of the mapped primitives. Array and object entries widen to their most
// general shapes.
func typeListExpr(typeList []string) (*TypeExpr, error) {
	exprs := make([]*TypeExpr, 0, len(typeList))

	for _, t := range typeList {
		switch t {
		case "string":
			exprs = append(exprs, Primitive("string"))
		case "number", "integer":
			exprs = append(exprs, Primitive("number"))
		case "boolean":
			exprs = append(exprs, Primitive("boolean"))
		case "null":
			exprs = append(exprs, Primitive("nil"))
		case "array":
			exprs = append(exprs, ArrayOf(Primitive("any")))
		case "object":
			exprs = append(exprs, Object(nil, Primitive("any")))
		default:
			return nil, fmt.Errorf("%w: unknown type keyword %q", ErrInvalidSchemaType, t)
		}
	}

	if len(exprs) == 1 {
		return exprs[0], nil
	}

	return Union(exprs...), nil
}

// arrayExpr converts an array schema. Only the singular-schema form of
// items is supported; the tuple form degrades to an array of any, with the
// annotator leaving a comment about the degradation.
func (c *ConversionContext) arrayExpr(node SchemaNode) (*TypeExpr, error) {
	items, ok := node.Get("items")
	if !ok || items.IsSequence() {
		return ArrayOf(Primitive("any")), nil
	}

	elem, err := c.synthesize(items)
	if err != nil {
		return nil, err
	}

	return ArrayOf(elem), nil
}

// objectExpr converts an object schema: named fields from properties and
// required, and a string index signature when additionalProperties is
// absent-with-no-properties, true, or a schema. additionalProperties: false
// closes the table.
func (c *ConversionContext) objectExpr(node SchemaNode) (*TypeExpr, error) {
	fields, index, err := c.objectParts(node)
	if err != nil {
		return nil, err
	}

	if index == nil && len(fields) == 0 && !explicitlyClosed(node) {
		index = Primitive("any")
	}

	return Object(fields, index), nil
}

// objectParts extracts the fields and the explicit index signature of an
// object schema, without applying the open-table default. The allOf merge
// path uses this directly so an absent additionalProperties on the parent
// does not inject a spurious index signature into the merged object.
func (c *ConversionContext) objectParts(node SchemaNode) ([]Field, *TypeExpr, error) {
	var fields []Field

	required := node.StringSet("required")

	props, _ := node.Pairs("properties")
	for _, p := range props {
		fexpr, err := c.synthesize(p.Node)
		if err != nil {
			return nil, nil, err
		}

		fields = append(fields, Field{
			Name:        p.Key,
			Type:        fexpr,
			Optional:    !required[p.Key],
			Constraints: Annotate(p.Node),
		})
	}

	ap, ok := node.Get("additionalProperties")
	if !ok {
		return fields, nil, nil
	}

	if b, ok := ap.Bool(); ok {
		if b {
			return fields, Primitive("any"), nil
		}

		return fields, nil, nil
	}

	if ap.IsMapping() {
		index, err := c.synthesize(ap)
		if err != nil {
			return nil, nil, err
		}

		return fields, index, nil
	}

	return fields, Primitive("any"), nil
}

func explicitlyClosed(node SchemaNode) bool {
	ap, ok := node.Get("additionalProperties")
	if !ok {
		return false
	}

	b, ok := ap.Bool()

	return ok && !b
}
