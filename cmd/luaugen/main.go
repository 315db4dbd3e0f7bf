package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/luaugen/luaugen/internal/cli"
	"github.com/luaugen/luaugen/pkg/log"
)

func init() {
	log.SetLogFormat("text")
	log.SetLogLevel("warn")
}

const (
	cmdName = "luaugen"

	shortDesc = "Convert JSON Schema documents to Luau type declarations."
	longDesc  = `Luaugen converts JSON Schema documents into Luau type declarations.

The converter preserves as much of the schema's shape as Luau's type system
allows. Validation keywords without a structural counterpart are kept as
documentation comments, and recognized-but-unsupported constructs degrade to
wider types instead of failing.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
