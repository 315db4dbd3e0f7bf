package luauschema

// mergeAllOf applies the allOf policy: a parent that declares an object
// shape merges its branches' fields; anything else becomes an intersection
// of the branches in declaration order.
func (c *ConversionContext) mergeAllOf(node SchemaNode, branches []SchemaNode) (*TypeExpr, error) {
	if parentIsObject(node) {
		return c.mergeObjectAllOf(node, branches)
	}

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

	return Intersection(exprs...), nil
}

func parentIsObject(node SchemaNode) bool {
	if node.Has("properties") || node.Has("additionalProperties") || node.Has("required") {
		return true
	}

	t, _ := node.Str("type")

	return t == "object"
}

// mergeObjectAllOf merges allOf branches into the parent's object type.
// Precedence: the parent's own fields win over every branch, later branches
// win over earlier ones, and the required sets are unioned. A $ref branch is
// resolved through the registry and contributes the referenced definition's
// fields; a reference whose target is still being synthesized cannot be
// expanded and becomes an intersection operand instead. Branches that
// resolve to a non-object type are dropped from the merge.
func (c *ConversionContext) mergeObjectAllOf(node SchemaNode, branches []SchemaNode) (*TypeExpr, error) {
	fields, index, err := c.objectParts(node)
	if err != nil {
		return nil, err
	}

	parentIndex := index != nil

	pos := make(map[string]int, len(fields))
	parentOwned := make(map[string]bool, len(fields))

	for i, f := range fields {
		pos[f.Name] = i
		parentOwned[f.Name] = true
	}

	var refs []*TypeExpr

	for _, b := range branches {
		bexpr, err := c.synthesize(b)
		if err != nil {
			return nil, err
		}

		if bexpr.Kind == KindNamedRef {
			def, ok := c.registry.Lookup(bexpr.Name)
			if !ok || !def.filled {
				refs = append(refs, bexpr)

				continue
			}

			bexpr = def.Expr
		}

		if bexpr.Kind != KindObject {
			continue
		}

		for _, f := range bexpr.Fields {
			i, exists := pos[f.Name]
			if !exists {
				pos[f.Name] = len(fields)
				fields = append(fields, f)

				continue
			}

			// Union of the required sets: required from either side wins.
			required := !fields[i].Optional || !f.Optional
			if !parentOwned[f.Name] {
				fields[i] = f
			}

			fields[i].Optional = !required
		}

		// Later branches win among themselves; an explicit parent index
		// signature wins over all of them.
		if bexpr.Index != nil && !parentIndex {
			index = bexpr.Index
		}
	}

	// The parent's required set may name fields contributed by branches.
	for required := range node.StringSet("required") {
		if i, ok := pos[required]; ok {
			fields[i].Optional = false
		}
	}

	merged := Object(fields, index)
	if len(refs) > 0 {
		return Intersection(append([]*TypeExpr{merged}, refs...)...), nil
	}

	return merged, nil
}
