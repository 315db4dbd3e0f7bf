package luauschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luaugen/luaugen/pkg/luauschema"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		expectedErr error
		input       string
		opts        []luauschema.Option
		expected    string
	}{
		"simple object preserves field order and optionality": {
			input: `{
				"type": "object",
				"properties": {
					"name": {"type": "string"},
					"age": {"type": "number", "minimum": 0},
					"email": {"type": "string"}
				},
				"required": ["name", "email"]
			}`,
			expected: "export type Root = {\n" +
				"    name: string,\n" +
				"    --- @minimum 0\n" +
				"    age: number?,\n" +
				"    email: string,\n" +
				"}\n\nreturn nil\n",
		},
		"allOf with parent properties merges fields": {
			input: `{
				"type": "object",
				"properties": {"id": {"type": "number"}},
				"allOf": [
					{"type": "object", "properties": {"name": {"type": "string"}}}
				]
			}`,
			expected: "export type Root = {\n" +
				"    id: number?,\n" +
				"    name: string?,\n" +
				"}\n\nreturn nil\n",
		},
		"standalone allOf is an intersection": {
			input:    `{"allOf": [{"type": "string"}, {"type": "number"}]}`,
			expected: "export type Root = string & number\n\nreturn nil\n",
		},
		"allOf drops non-object branch": {
			input: `{
				"type": "object",
				"properties": {"id": {"type": "number"}},
				"allOf": [{"type": "string"}]
			}`,
			expected: "export type Root = {\n" +
				"    id: number?,\n" +
				"}\n\nreturn nil\n",
		},
		"allOf ref branch merges referenced fields": {
			input: `{
				"type": "object",
				"properties": {"id": {"type": "number"}},
				"allOf": [{"$ref": "#/definitions/base"}],
				"definitions": {
					"base": {
						"type": "object",
						"properties": {"created": {"type": "string"}},
						"required": ["created"]
					}
				}
			}`,
			expected: "export type Root = {\n" +
				"    id: number?,\n" +
				"    created: string,\n" +
				"}\n\n" +
				"export type Base = {\n" +
				"    created: string,\n" +
				"}\n\nreturn nil\n",
		},
		"allOf ref branch to an in-progress definition intersects": {
			input: `{
				"$ref": "#/definitions/node",
				"definitions": {
					"node": {
						"type": "object",
						"properties": {"value": {"type": "number"}},
						"allOf": [{"$ref": "#/definitions/node"}]
					}
				}
			}`,
			expected: "export type Root = Node\n\n" +
				"export type Node = { value: number? } & Node\n\nreturn nil\n",
		},
		"allOf branch required wins over parent optional": {
			input: `{
				"type": "object",
				"properties": {"id": {"type": "number"}},
				"allOf": [
					{"type": "object", "properties": {"id": {"type": "string"}}, "required": ["id"]}
				]
			}`,
			expected: "export type Root = {\n" +
				"    id: number,\n" +
				"}\n\nreturn nil\n",
		},
		"anyOf is a union": {
			input:    `{"anyOf": [{"type": "string"}, {"type": "number"}]}`,
			expected: "export type Root = string | number\n\nreturn nil\n",
		},
		"oneOf is a union": {
			input:    `{"oneOf": [{"type": "boolean"}, {"type": "null"}]}`,
			expected: "export type Root = boolean | nil\n\nreturn nil\n",
		},
		"union nested in a field is parenthesized": {
			input: `{
				"type": "object",
				"properties": {
					"value": {"anyOf": [{"type": "string"}, {"type": "number"}]}
				}
			}`,
			expected: "export type Root = {\n" +
				"    value: (string | number)?,\n" +
				"}\n\nreturn nil\n",
		},
		"string enum is a literal union": {
			input:    `{"type": "string", "enum": ["red", "green", "blue"]}`,
			expected: "export type Root = \"red\" | \"green\" | \"blue\"\n\nreturn nil\n",
		},
		"numeric enum collapses to number with comment": {
			input: `{"enum": [1, 2, 3]}`,
			expected: "--- @enum 1, 2, 3\n" +
				"export type Root = number\n\nreturn nil\n",
		},
		"mixed enum collapses to base primitives with comment": {
			input: `{"enum": [1, "a"]}`,
			expected: "--- @enum 1, \"a\"\n" +
				"export type Root = string | number | boolean | nil\n\nreturn nil\n",
		},
		"string const is a singleton": {
			input:    `{"const": "fixed"}`,
			expected: "export type Root = \"fixed\"\n\nreturn nil\n",
		},
		"numeric const widens to number with comment": {
			input: `{"const": 5}`,
			expected: "--- @const 5\n" +
				"export type Root = number\n\nreturn nil\n",
		},
		"array bounds become ordered comments": {
			input: `{"type": "array", "items": {"type": "string"}, "minItems": 1, "maxItems": 10}`,
			expected: "--- @minItems 1\n" +
				"--- @maxItems 10\n" +
				"export type Root = { string }\n\nreturn nil\n",
		},
		"tuple items degrade to any with comment": {
			input: `{"type": "array", "items": [{"type": "string"}, {"type": "number"}]}`,
			expected: "--- @items tuple form is not supported, elements typed as any\n" +
				"export type Root = { any }\n\nreturn nil\n",
		},
		"array without items": {
			input:    `{"type": "array"}`,
			expected: "export type Root = { any }\n\nreturn nil\n",
		},
		"object without properties is an open table": {
			input: `{"type": "object"}`,
			expected: "export type Root = {\n" +
				"    [string]: any,\n" +
				"}\n\nreturn nil\n",
		},
		"additionalProperties schema becomes an index signature": {
			input: `{"type": "object", "additionalProperties": {"type": "number"}}`,
			expected: "export type Root = {\n" +
				"    [string]: number,\n" +
				"}\n\nreturn nil\n",
		},
		"additionalProperties false closes the table": {
			input:    `{"type": "object", "additionalProperties": false}`,
			expected: "export type Root = { }\n\nreturn nil\n",
		},
		"type list becomes a union": {
			input:    `{"type": ["string", "null"]}`,
			expected: "export type Root = string | nil\n\nreturn nil\n",
		},
		"boolean schema true": {
			input:    `true`,
			expected: "export type Root = any\n\nreturn nil\n",
		},
		"boolean schema false": {
			input:    `false`,
			expected: "export type Root = never\n\nreturn nil\n",
		},
		"no recognizable keywords fall back to an open table": {
			input: `{"title": "anything"}`,
			expected: "export type Root = {\n" +
				"    [string]: any,\n" +
				"}\n\nreturn nil\n",
		},
		"description renders after bounds": {
			input: `{"type": "string", "minLength": 1, "description": "A name"}`,
			expected: "--- @minLength 1\n" +
				"--- A name\n" +
				"export type Root = string\n\nreturn nil\n",
		},
		"field descriptions render above the field": {
			input: `{
				"type": "object",
				"properties": {
					"name": {"type": "string", "description": "Display name"}
				}
			}`,
			expected: "export type Root = {\n" +
				"    --- Display name\n" +
				"    name: string?,\n" +
				"}\n\nreturn nil\n",
		},
		"custom type name is pascal cased": {
			input:    `{"type": "string"}`,
			opts:     []luauschema.Option{luauschema.WithTypeName("custom name")},
			expected: "export type CustomName = string\n\nreturn nil\n",
		},
		"root ref to a definition": {
			input: `{
				"$ref": "#/definitions/node",
				"definitions": {
					"node": {
						"type": "object",
						"properties": {"next": {"$ref": "#/definitions/node"}}
					}
				}
			}`,
			expected: "export type Root = Node\n\n" +
				"export type Node = {\n" +
				"    next: Node?,\n" +
				"}\n\nreturn nil\n",
		},
		"mutually recursive definitions terminate": {
			input: `{
				"type": "object",
				"properties": {"a": {"$ref": "#/definitions/a"}},
				"definitions": {
					"a": {
						"type": "object",
						"properties": {"b": {"$ref": "#/definitions/b"}}
					},
					"b": {
						"type": "object",
						"properties": {"a": {"$ref": "#/definitions/a"}}
					}
				}
			}`,
			expected: "export type Root = {\n" +
				"    a: A?,\n" +
				"}\n\n" +
				"export type A = {\n" +
				"    b: B?,\n" +
				"}\n\n" +
				"export type B = {\n" +
				"    a: A?,\n" +
				"}\n\nreturn nil\n",
		},
		"defs body wins over definitions on a duplicate key": {
			input: `{
				"$ref": "#/definitions/item",
				"definitions": {"item": {"type": "string"}},
				"$defs": {"item": {"type": "number"}}
			}`,
			expected: "export type Root = Item\n\n" +
				"export type Item = number\n\nreturn nil\n",
		},
		"string literal quotes are escaped": {
			input:    `{"enum": ["say \"hi\"", "bye"]}`,
			expected: "export type Root = \"say \\\"hi\\\"\" | \"bye\"\n\nreturn nil\n",
		},
		"unreferenced definitions are still exported": {
			input: `{
				"type": "string",
				"$defs": {
					"color": {"enum": ["r", "g"]}
				}
			}`,
			expected: "export type Root = string\n\n" +
				"export type Color = \"r\" | \"g\"\n\nreturn nil\n",
		},
		"non-identifier field names are bracket quoted": {
			input: `{
				"type": "object",
				"properties": {"x-rate-limit": {"type": "number"}}
			}`,
			expected: "export type Root = {\n" +
				"    [\"x-rate-limit\"]: number?,\n" +
				"}\n\nreturn nil\n",
		},
		"nested objects render inline": {
			input: `{
				"type": "object",
				"properties": {
					"point": {
						"type": "object",
						"properties": {"x": {"type": "number"}, "y": {"type": "number"}},
						"required": ["x", "y"]
					}
				}
			}`,
			expected: "export type Root = {\n" +
				"    point: { x: number, y: number }?,\n" +
				"}\n\nreturn nil\n",
		},
		"yaml input is accepted": {
			input: "type: object\nproperties:\n  name:\n    type: string\n",
			expected: "export type Root = {\n" +
				"    name: string?,\n" +
				"}\n\nreturn nil\n",
		},
		"ref to undeclared definition fails": {
			input:       `{"type": "object", "properties": {"x": {"$ref": "#/definitions/missing"}}}`,
			expectedErr: luauschema.ErrUnresolvedReference,
		},
		"remote ref fails": {
			input:       `{"$ref": "https://example.com/schema.json#/definitions/x"}`,
			expectedErr: luauschema.ErrUnresolvedReference,
		},
		"deep pointer ref fails": {
			input:       `{"$ref": "#/definitions/a/properties/b"}`,
			expectedErr: luauschema.ErrUnresolvedReference,
		},
		"scalar root fails": {
			input:       `"just a string"`,
			expectedErr: luauschema.ErrInvalidSchemaType,
		},
		"unknown type keyword fails": {
			input:       `{"type": "tuple"}`,
			expectedErr: luauschema.ErrInvalidSchemaType,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result, err := luauschema.Convert([]byte(tc.input), tc.opts...)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(result))
		})
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	t.Parallel()

	input := []byte(`{
		"type": "object",
		"properties": {
			"user": {"$ref": "#/definitions/user"},
			"tags": {"type": "array", "items": {"type": "string"}}
		},
		"definitions": {
			"user": {
				"type": "object",
				"properties": {
					"id": {"type": "integer"},
					"group": {"$ref": "#/definitions/group"}
				}
			},
			"group": {
				"type": "object",
				"properties": {"name": {"type": "string"}}
			}
		}
	}`)

	first, err := luauschema.Convert(input)
	require.NoError(t, err)

	second, err := luauschema.Convert(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConvertMalformedInput(t *testing.T) {
	t.Parallel()

	_, err := luauschema.Convert([]byte("{\n  \"type\": \"object\",\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, luauschema.ErrMalformedInput)
}
