package luauschema

import (
	"fmt"
	"strconv"

	"github.com/iancoleman/strcase"
)

// DefaultTypeName is the root export name used when the caller does not
// provide one.
const DefaultTypeName = "Root"

// Definition is one named export: the root type or a named definition
// reachable through a local reference.
type Definition struct {
	Name        string
	Expr        *TypeExpr
	Constraints ConstraintSet

	filled bool
}

// DefinitionRegistry collects named definitions and allocates stable, unique
// PascalCase names for them. Entries are created as empty placeholders and
// filled exactly once, on first demand, which is what lets forward and
// self-references resolve.
type DefinitionRegistry struct {
	byName   map[string]*Definition
	bySource map[string]string
	names    []string
}

// NewDefinitionRegistry returns an empty registry.
func NewDefinitionRegistry() *DefinitionRegistry {
	return &DefinitionRegistry{
		byName:   map[string]*Definition{},
		bySource: map[string]string{},
	}
}

// RegisterPlaceholder allocates a unique PascalCase name for a source
// definition key and inserts an empty entry if absent. Registering the same
// source key twice returns the same name. Name collisions between distinct
// source keys are resolved by a deterministic numeric suffix.
func (r *DefinitionRegistry) RegisterPlaceholder(sourceKey string) string {
	if name, ok := r.bySource[sourceKey]; ok {
		return name
	}

	name := r.allocate(pascalName(sourceKey))
	r.bySource[sourceKey] = name

	return name
}

// RegisterRoot allocates the root entry's name. The root is registered
// before any definition placeholder, so a caller-provided name is never
// suffixed away.
func (r *DefinitionRegistry) RegisterRoot(typeName string) string {
	if typeName == "" {
		typeName = DefaultTypeName
	}

	return r.allocate(pascalName(typeName))
}

func (r *DefinitionRegistry) allocate(name string) string {
	unique := name
	for i := 2; ; i++ {
		if _, taken := r.byName[unique]; !taken {
			break
		}

		unique = name + strconv.Itoa(i)
	}

	r.byName[unique] = &Definition{Name: unique}
	r.names = append(r.names, unique)

	return unique
}

// Fill sets the body of an already-placeholdered entry. Filling the same
// name twice is an internal invariant violation.
func (r *DefinitionRegistry) Fill(name string, expr *TypeExpr, constraints ConstraintSet) error {
	def, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%w: no placeholder for %q", ErrNameCollision, name)
	}

	if def.filled {
		return fmt.Errorf("%w: %q filled twice", ErrNameCollision, name)
	}

	def.Expr = expr
	def.Constraints = constraints
	def.filled = true

	return nil
}

// Lookup returns the definition registered under the given name.
func (r *DefinitionRegistry) Lookup(name string) (*Definition, bool) {
	def, ok := r.byName[name]

	return def, ok
}

// Names returns every registered name in first-allocation order.
func (r *DefinitionRegistry) Names() []string {
	return r.names
}

func pascalName(key string) string {
	name := strcase.ToCamel(key)
	if name == "" {
		name = "Def"
	}

	return name
}

// ConversionContext is the mutable state threaded through a single convert
// call: the registry, the source nodes of the root's definition containers,
// and the resolution stack used for cycle detection. No state survives
// across calls.
type ConversionContext struct {
	registry *DefinitionRegistry
	defNodes map[string]SchemaNode
	nameKeys map[string]string
	stack    []string
}

func newConversionContext() *ConversionContext {
	return &ConversionContext{
		registry: NewDefinitionRegistry(),
		defNodes: map[string]SchemaNode{},
		nameKeys: map[string]string{},
	}
}

// prescan registers a placeholder for every entry of the root's definition
// containers, in source order, so forward references resolve. `definitions`
// is scanned before `$defs`; when both declare the same key, the later
// container's body wins while the name keeps its first-seen position.
func (c *ConversionContext) prescan(root SchemaNode) {
	for _, container := range []string{"definitions", "$defs"} {
		pairs, ok := root.Pairs(container)
		if !ok {
			continue
		}

		for _, p := range pairs {
			if _, seen := c.defNodes[p.Key]; seen {
				c.defNodes[p.Key] = p.Node

				continue
			}

			name := c.registry.RegisterPlaceholder(p.Key)
			c.defNodes[p.Key] = p.Node
			c.nameKeys[name] = p.Key
		}
	}
}

func (c *ConversionContext) onStack(name string) bool {
	for _, n := range c.stack {
		if n == name {
			return true
		}
	}

	return false
}

func (c *ConversionContext) push(name string) {
	c.stack = append(c.stack, name)
}

func (c *ConversionContext) pop() {
	c.stack = c.stack[:len(c.stack)-1]
}
