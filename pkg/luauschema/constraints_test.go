package luauschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func schemaNodeOf(t *testing.T, src string) SchemaNode {
	t.Helper()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.NotEmpty(t, doc.Content)

	return newSchemaNode(doc.Content[0])
}

func TestAnnotateOrder(t *testing.T) {
	t.Parallel()

	// Source key order is scrambled on purpose; emission order is fixed.
	node := schemaNodeOf(t, `{
		"description": "doc",
		"pattern": "^a+$",
		"maximum": 10,
		"minLength": 1,
		"minimum": 1,
		"uniqueItems": true,
		"maxProperties": 4
	}`)

	cs := Annotate(node)

	keywords := make([]string, 0, len(cs))
	for _, c := range cs {
		keywords = append(keywords, c.Keyword)
	}

	assert.Equal(t, []string{
		"minimum",
		"maximum",
		"minLength",
		"pattern",
		"uniqueItems",
		"maxProperties",
		"description",
	}, keywords)
}

func TestAnnotateOmitsAbsentKeys(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Annotate(schemaNodeOf(t, `{"type": "string"}`)))
	assert.Empty(t, Annotate(schemaNodeOf(t, `true`)))
}

func TestAnnotateUniqueItemsFalseIsOmitted(t *testing.T) {
	t.Parallel()

	cs := Annotate(schemaNodeOf(t, `{"uniqueItems": false}`))
	assert.Empty(t, cs)
}

func TestAnnotateDegradationNotes(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		expected []Constraint
	}{
		"collapsed enum keeps literal set": {
			input:    `{"enum": [1, "a", null]}`,
			expected: []Constraint{{Keyword: "enum", Value: `1, "a", nil`}},
		},
		"singleton enum has no note": {
			input:    `{"enum": ["a", true]}`,
			expected: nil,
		},
		"numeric const": {
			input:    `{"const": 5}`,
			expected: []Constraint{{Keyword: "const", Value: "5"}},
		},
		"string const has no note": {
			input:    `{"const": "x"}`,
			expected: nil,
		},
		"tuple items": {
			input: `{"items": [{"type": "string"}]}`,
			expected: []Constraint{
				{Keyword: "items", Value: "tuple form is not supported, elements typed as any"},
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, ConstraintSet(tc.expected), Annotate(schemaNodeOf(t, tc.input)))
		})
	}
}

func TestSchemaNodePairsPreserveOrder(t *testing.T) {
	t.Parallel()

	node := schemaNodeOf(t, `{"properties": {"z": {}, "a": {}, "m": {}}}`)

	pairs, ok := node.Pairs("properties")
	require.True(t, ok)

	keys := make([]string, 0, len(pairs))
	for _, p := range pairs {
		keys = append(keys, p.Key)
	}

	assert.Equal(t, []string{"z", "a", "m"}, keys)
}
