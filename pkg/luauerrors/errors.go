package luauerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrGenerateLuau indicates an error occurred during Luau generation.
	ErrGenerateLuau = errors.New("generate luau")

	// ErrReadInput indicates an input document could not be read.
	ErrReadInput = errors.New("read input")

	// ErrParseArgs indicates an error occurred while parsing arguments.
	ErrParseArgs = errors.New("parse arguments")

	// ErrInvalidArguments indicates invalid arguments were provided.
	ErrInvalidArguments = errors.New("invalid arguments")
)
