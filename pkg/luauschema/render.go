package luauschema

import (
	"regexp"
	"strings"
)

const indentUnit = "    "

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// render serializes every registry entry in first-allocation order (the root
// is always allocated first). Each entry renders as a named export preceded
// by its constraint comments, and a trailing `return nil` closes the module,
// since a Luau ModuleScript must return a value.
func render(reg *DefinitionRegistry) []byte {
	blocks := make([]string, 0, len(reg.Names()))

	for _, name := range reg.Names() {
		def, ok := reg.Lookup(name)
		if !ok || !def.filled {
			continue
		}

		blocks = append(blocks, renderDefinition(def))
	}

	return []byte(strings.Join(blocks, "\n\n") + "\n\nreturn nil\n")
}

func renderDefinition(def *Definition) string {
	var b strings.Builder

	writeComments(&b, def.Constraints, "")
	b.WriteString("export type " + def.Name + " = ")

	if def.Expr.Kind == KindObject && (len(def.Expr.Fields) > 0 || def.Expr.Index != nil) {
		writeObjectBlock(&b, def.Expr)
	} else {
		b.WriteString(exprString(def.Expr, false))
	}

	return b.String()
}

func writeComments(b *strings.Builder, cs ConstraintSet, indent string) {
	for _, c := range cs {
		if c.Keyword == "description" {
			b.WriteString(indent + "--- " + c.Value + "\n")

			continue
		}

		b.WriteString(indent + "--- @" + c.Keyword + " " + c.Value + "\n")
	}
}

// writeObjectBlock renders a top-level object type across multiple lines,
// one field per line, each preceded by its own constraint comments. Nested
// objects render inline without comments.
func writeObjectBlock(b *strings.Builder, e *TypeExpr) {
	b.WriteString("{\n")

	for _, f := range e.Fields {
		writeComments(b, f.Constraints, indentUnit)
		b.WriteString(indentUnit + fieldName(f.Name) + ": " + exprString(f.Type, true))

		if f.Optional {
			b.WriteString("?")
		}

		b.WriteString(",\n")
	}

	if e.Index != nil {
		b.WriteString(indentUnit + "[string]: " + exprString(e.Index, true) + ",\n")
	}

	b.WriteString("}")
}

func exprString(e *TypeExpr, nested bool) string {
	switch e.Kind {
	case KindPrimitive:
		return e.Prim

	case KindNamedRef:
		return e.Name

	case KindLiteralUnion:
		parts := make([]string, 0, len(e.Literals))
		for _, lit := range e.Literals {
			parts = append(parts, lit.String())
		}

		return joined(parts, " | ", nested)

	case KindArrayOf:
		return "{ " + exprString(e.Elem, true) + " }"

	case KindUnion, KindIntersection:
		sep := " | "
		if e.Kind == KindIntersection {
			sep = " & "
		}

		parts := make([]string, 0, len(e.Variants))
		for _, v := range e.Variants {
			parts = append(parts, exprString(v, true))
		}

		return joined(parts, sep, nested)

	case KindObject:
		return inlineObject(e)
	}

	return "any"
}

func inlineObject(e *TypeExpr) string {
	if len(e.Fields) == 0 && e.Index == nil {
		return "{ }"
	}

	parts := make([]string, 0, len(e.Fields)+1)

	for _, f := range e.Fields {
		part := fieldName(f.Name) + ": " + exprString(f.Type, true)
		if f.Optional {
			part += "?"
		}

		parts = append(parts, part)
	}

	if e.Index != nil {
		parts = append(parts, "[string]: "+exprString(e.Index, true))
	}

	return "{ " + strings.Join(parts, ", ") + " }"
}

func joined(parts []string, sep string, nested bool) string {
	s := strings.Join(parts, sep)
	if nested && len(parts) > 1 {
		return "(" + s + ")"
	}

	return s
}

// fieldName renders a property name, bracket-quoting names that are not
// valid Luau identifiers.
func fieldName(name string) string {
	if identRegex.MatchString(name) {
		return name
	}

	return `["` + strings.ReplaceAll(name, `"`, `\"`) + `"]`
}
