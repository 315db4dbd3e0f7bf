// Package luauschema converts JSON Schema documents into Luau type
// declarations.
//
// The conversion preserves as much of the schema's shape as Luau's type
// system allows. Validation keywords that have no structural counterpart
// (numeric bounds, string patterns, and so on) are emitted as `---`
// documentation comments rather than dropped, and recognized-but-unsupported
// constructs degrade to wider types instead of failing.
package luauschema
