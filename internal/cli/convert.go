package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/luaugen/luaugen/pkg/luauerrors"
	"github.com/luaugen/luaugen/pkg/luauschema"
	"github.com/luaugen/luaugen/pkg/schemaread"
)

const (
	convertDesc = `This command converts a JSON Schema document into Luau type declarations
`
	convertExample = `  luaugen convert <input>... [flags]
  # Convert a schema file, writing to stdout
  luaugen convert schema.json

  # Convert from stdin into a file
  cat schema.json | luaugen convert - -o types.luau

  # Convert a subdocument, with a custom root type name
  luaugen convert api.json#/definitions/config -t Config

  # Try several locations, using the first one that reads
  luaugen convert ./schema.json https://example.com/schema.json
`
)

// NewConvertCmd returns the convert command.
func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "convert",
		Short:        "Convert a JSON Schema to Luau type declarations",
		Long:         convertDesc,
		Example:      convertExample,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cc *cobra.Command, args []string) error {
			var merr error

			flags := cc.Flags()

			output, err := flags.GetString("output")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			typeName, err := flags.GetString("type_name")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", luauerrors.ErrParseArgs, merr)
			}

			return runConvert(cc.OutOrStdout(), args, output, typeName)
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().StringP("type_name", "t", "", "Type name for the root schema")

	return cmd
}

func runConvert(stdout io.Writer, inputs []string, output, typeName string) error {
	data, err := schemaread.Default.FromPaths(inputs...)
	if err != nil {
		return fmt.Errorf("%w: %w", luauerrors.ErrReadInput, err)
	}

	var opts []luauschema.Option
	if typeName != "" {
		opts = append(opts, luauschema.WithTypeName(typeName))
	}

	out, err := luauschema.Convert(data, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", luauerrors.ErrGenerateLuau, err)
	}

	if output == "" {
		if _, err := stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %w", luauerrors.ErrWrite, err)
		}

		return nil
	}

	if err := os.WriteFile(output, out, 0o600); err != nil {
		return fmt.Errorf("%w: %w", luauerrors.ErrWriteFile, err)
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		slog.Info("wrote luau type declarations", "path", output, "bytes", len(out))
	}

	return nil
}
