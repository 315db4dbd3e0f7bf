package luauschema

import (
	"gopkg.in/yaml.v3"
)

// SchemaNode is a read-only view over a parsed document node, restricted to
// the JSON Schema vocabulary this package understands. The underlying
// [yaml.Node] tree is owned by the caller for the duration of a conversion.
//
// YAML is a superset of JSON, and yaml.v3 mapping nodes preserve key order,
// which is what keeps object fields in source declaration order.
type SchemaNode struct {
	n *yaml.Node
}

func newSchemaNode(n *yaml.Node) SchemaNode {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return SchemaNode{n: n}
}

// IsMapping reports whether the node is an object-shaped schema.
func (s SchemaNode) IsMapping() bool {
	return s.n != nil && s.n.Kind == yaml.MappingNode
}

// IsSequence reports whether the node is an array value.
func (s SchemaNode) IsSequence() bool {
	return s.n != nil && s.n.Kind == yaml.SequenceNode
}

// Bool returns the node's boolean value, for boolean schemas (`true`/`false`).
func (s SchemaNode) Bool() (bool, bool) {
	if s.n == nil || s.n.Kind != yaml.ScalarNode || s.n.Tag != "!!bool" {
		return false, false
	}

	return s.n.Value == "true", true
}

// Get returns the schema node stored under the given keyword.
func (s SchemaNode) Get(key string) (SchemaNode, bool) {
	if !s.IsMapping() {
		return SchemaNode{}, false
	}

	for i := 0; i+1 < len(s.n.Content); i += 2 {
		if s.n.Content[i].Value == key {
			return newSchemaNode(s.n.Content[i+1]), true
		}
	}

	return SchemaNode{}, false
}

// Has reports whether the given keyword is present, regardless of its value.
func (s SchemaNode) Has(key string) bool {
	_, ok := s.Get(key)

	return ok
}

// Scalar returns the node's raw scalar text and its resolved YAML tag
// (e.g. `!!str`, `!!int`, `!!float`, `!!bool`, `!!null`).
func (s SchemaNode) Scalar() (value, tag string, ok bool) {
	if s.n == nil || s.n.Kind != yaml.ScalarNode {
		return "", "", false
	}

	return s.n.Value, s.n.Tag, true
}

// Str returns the string value stored under the given keyword.
func (s SchemaNode) Str(key string) (string, bool) {
	v, ok := s.Get(key)
	if !ok {
		return "", false
	}

	value, tag, ok := v.Scalar()
	if !ok || tag != "!!str" {
		return "", false
	}

	return value, true
}

// Sequence returns the elements stored under the given keyword, in order.
// The second result is false when the keyword is absent or not a sequence.
func (s SchemaNode) Sequence(key string) ([]SchemaNode, bool) {
	v, ok := s.Get(key)
	if !ok || v.n == nil || v.n.Kind != yaml.SequenceNode {
		return nil, false
	}

	elems := make([]SchemaNode, 0, len(v.n.Content))
	for _, c := range v.n.Content {
		elems = append(elems, newSchemaNode(c))
	}

	return elems, true
}

// StringSet returns the string elements stored under the given keyword as a
// membership set (used for `required`). Non-string elements are ignored.
func (s SchemaNode) StringSet(key string) map[string]bool {
	elems, ok := s.Sequence(key)
	if !ok {
		return nil
	}

	set := make(map[string]bool, len(elems))

	for _, e := range elems {
		if value, tag, ok := e.Scalar(); ok && tag == "!!str" {
			set[value] = true
		}
	}

	return set
}

// StringList returns the string elements stored under the given keyword, in
// order (used for array-form `type`).
func (s SchemaNode) StringList(key string) ([]string, bool) {
	elems, ok := s.Sequence(key)
	if !ok {
		return nil, false
	}

	list := make([]string, 0, len(elems))

	for _, e := range elems {
		if value, tag, ok := e.Scalar(); ok && tag == "!!str" {
			list = append(list, value)
		}
	}

	return list, true
}

// SchemaPair is a single key/schema entry from an ordered mapping keyword
// such as `properties`, `definitions`, or `$defs`.
type SchemaPair struct {
	Key  string
	Node SchemaNode
}

// Pairs returns the entries of the mapping stored under the given keyword,
// preserving source declaration order.
func (s SchemaNode) Pairs(key string) ([]SchemaPair, bool) {
	v, ok := s.Get(key)
	if !ok || !v.IsMapping() {
		return nil, false
	}

	pairs := make([]SchemaPair, 0, len(v.n.Content)/2)
	for i := 0; i+1 < len(v.n.Content); i += 2 {
		pairs = append(pairs, SchemaPair{
			Key:  v.n.Content[i].Value,
			Node: newSchemaNode(v.n.Content[i+1]),
		})
	}

	return pairs, true
}
