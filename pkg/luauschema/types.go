package luauschema

// TypeExprKind discriminates the variants of a [TypeExpr].
type TypeExprKind int

const (
	// KindPrimitive is a Luau primitive type (string, number, boolean, nil,
	// any, never).
	KindPrimitive TypeExprKind = iota

	// KindLiteralUnion is a union of singleton literal types.
	KindLiteralUnion

	// KindArrayOf is an array type `{ T }`.
	KindArrayOf

	// KindObject is a table type with named fields and an optional string
	// index signature.
	KindObject

	// KindUnion is a union `A | B`.
	KindUnion

	// KindIntersection is an intersection `A & B`.
	KindIntersection

	// KindNamedRef is a reference to a named definition.
	KindNamedRef
)

// TypeExpr is a structural Luau type expression. It never carries constraint
// data; validation keywords travel separately as a [ConstraintSet].
type TypeExpr struct {
	Kind TypeExprKind

	// Prim is set for KindPrimitive.
	Prim string

	// Literals is set for KindLiteralUnion.
	Literals []Literal

	// Elem is set for KindArrayOf.
	Elem *TypeExpr

	// Fields and Index are set for KindObject. Fields preserve the source
	// `properties` declaration order. A nil Index means the table is closed.
	Fields []Field
	Index  *TypeExpr

	// Variants is set for KindUnion and KindIntersection, in declaration
	// order.
	Variants []*TypeExpr

	// Name is set for KindNamedRef.
	Name string
}

// Field is a single named object field.
type Field struct {
	Name        string
	Type        *TypeExpr
	Optional    bool
	Constraints ConstraintSet
}

// LiteralKind discriminates the JSON value kinds a [Literal] can hold.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBool
	LiteralNull
	LiteralOther
)

// Literal is a single literal value from an `enum` or `const` keyword,
// carried as its raw scalar text.
type Literal struct {
	Kind LiteralKind
	Raw  string
}

// Primitive returns a primitive type expression.
func Primitive(name string) *TypeExpr {
	return &TypeExpr{Kind: KindPrimitive, Prim: name}
}

// LiteralUnion returns a union of singleton literal types.
func LiteralUnion(literals ...Literal) *TypeExpr {
	return &TypeExpr{Kind: KindLiteralUnion, Literals: literals}
}

// ArrayOf returns an array type over the given element type.
func ArrayOf(elem *TypeExpr) *TypeExpr {
	return &TypeExpr{Kind: KindArrayOf, Elem: elem}
}

// Object returns a table type with the given fields and index signature.
func Object(fields []Field, index *TypeExpr) *TypeExpr {
	return &TypeExpr{Kind: KindObject, Fields: fields, Index: index}
}

// Union returns a union of the given types, in order.
func Union(variants ...*TypeExpr) *TypeExpr {
	return &TypeExpr{Kind: KindUnion, Variants: variants}
}

// Intersection returns an intersection of the given types, in order.
func Intersection(variants ...*TypeExpr) *TypeExpr {
	return &TypeExpr{Kind: KindIntersection, Variants: variants}
}

// NamedRef returns a reference to a named definition.
func NamedRef(name string) *TypeExpr {
	return &TypeExpr{Kind: KindNamedRef, Name: name}
}
