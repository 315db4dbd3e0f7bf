// Package luauerrors provides error definitions shared by the CLI layer.
//
// This package defines standardized error types to ensure consistent error
// reporting and wrapping throughout the codebase.
package luauerrors
