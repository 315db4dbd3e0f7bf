package luauschema

import (
	"strings"
)

// Constraint is a single validation keyword and its literal value, rendered
// as a `---` comment line.
type Constraint struct {
	Keyword string
	Value   string
}

// ConstraintSet is an ordered list of constraints attached to a single
// TypeExpr occurrence. Emission order is fixed (numeric, string, array,
// object bounds, degradation notes, then description) regardless of source
// key order, so output is reproducible.
type ConstraintSet []Constraint

// scalarKeywords lists the directly copied constraint keywords in emission
// order.
var scalarKeywords = []string{
	"minimum",
	"maximum",
	"exclusiveMinimum",
	"exclusiveMaximum",
	"multipleOf",
	"minLength",
	"maxLength",
	"pattern",
	"format",
	"minItems",
	"maxItems",
	"uniqueItems",
	"minProperties",
	"maxProperties",
}

// Annotate extracts the node's validation keywords into an ordered
// [ConstraintSet]. Keys absent from the node are omitted, not defaulted.
// Degradation notes for constructs the synthesizer widens (collapsed enums,
// numeric consts, tuple-form items) are derived here as well, so the
// structural synthesis stays comment-free.
func Annotate(node SchemaNode) ConstraintSet {
	if !node.IsMapping() {
		return nil
	}

	var cs ConstraintSet

	for _, kw := range scalarKeywords {
		v, ok := node.Get(kw)
		if !ok {
			continue
		}

		value, tag, ok := v.Scalar()
		if !ok || tag == "!!null" {
			continue
		}

		if kw == "uniqueItems" && value != "true" {
			continue
		}

		cs = append(cs, Constraint{Keyword: kw, Value: value})
	}

	cs = append(cs, degradationNotes(node)...)

	if desc, ok := node.Str("description"); ok && desc != "" {
		cs = append(cs, Constraint{Keyword: "description", Value: desc})
	}

	return cs
}

func degradationNotes(node SchemaNode) ConstraintSet {
	var cs ConstraintSet

	if values, ok := node.Sequence("enum"); ok && enumCollapses(values) {
		raws := make([]string, 0, len(values))
		for _, v := range values {
			raws = append(raws, literalOf(v).String())
		}

		cs = append(cs, Constraint{Keyword: "enum", Value: strings.Join(raws, ", ")})
	}

	if c, ok := node.Get("const"); ok {
		if lit := literalOf(c); lit.Kind == LiteralNumber {
			cs = append(cs, Constraint{Keyword: "const", Value: lit.Raw})
		}
	}

	if items, ok := node.Get("items"); ok && items.IsSequence() {
		cs = append(cs, Constraint{Keyword: "items", Value: "tuple form is not supported, elements typed as any"})
	}

	return cs
}

// enumCollapses reports whether the enum's literal set cannot be expressed
// as a Luau singleton union and will be widened to primitives, in which case
// the literal set is preserved only in a comment.
func enumCollapses(values []SchemaNode) bool {
	for _, v := range values {
		switch literalOf(v).Kind {
		case LiteralString, LiteralBool:
		default:
			return true
		}
	}

	return false
}

func literalOf(node SchemaNode) Literal {
	value, tag, ok := node.Scalar()
	if !ok {
		return Literal{Kind: LiteralOther}
	}

	switch tag {
	case "!!str":
		return Literal{Kind: LiteralString, Raw: value}
	case "!!int", "!!float":
		return Literal{Kind: LiteralNumber, Raw: value}
	case "!!bool":
		return Literal{Kind: LiteralBool, Raw: value}
	case "!!null":
		return Literal{Kind: LiteralNull, Raw: "nil"}
	default:
		return Literal{Kind: LiteralOther, Raw: value}
	}
}

// String renders the literal the way it appears in Luau source: strings are
// quoted with embedded quotes escaped, everything else is raw.
func (l Literal) String() string {
	if l.Kind == LiteralString {
		return `"` + strings.ReplaceAll(l.Raw, `"`, `\"`) + `"`
	}

	return l.Raw
}
