package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/toon"
)

func newConvertCommand() *cobra.Command {
	var (
		from      string
		to        string
		indent    int
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "convert [flags] <file|->",
		Short: "Convert between JSON, YAML, and TOON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			arg := "-"
			if len(args) == 1 {
				arg = args[0]
			}

			data, err := readInput(arg)
			if err != nil {
				return err
			}

			decoded, err := decodeAs(from, data, indent)
			if err != nil {
				return err
			}

			out, err := encodeAs(to, decoded, indent, delimiter)
			if err != nil {
				return err
			}

			return writeOutput("-", out)
		},
	}

	cmd.Flags().StringVar(&from, "from", "json", "source format, one of: json, yaml, toon")
	cmd.Flags().StringVar(&to, "to", "toon", "destination format, one of: json, yaml, toon")
	cmd.Flags().IntVar(&indent, "indent", toon.DefaultEncodeOptions().Indent, "TOON indentation width")
	cmd.Flags().StringVar(&delimiter, "delimiter", "comma", "TOON inline array delimiter, one of: comma, tab, pipe")

	return cmd
}

func decodeAs(format string, data []byte, indent int) (any, error) {
	switch format {
	case "json":
		var v any

		err := json.Unmarshal(data, &v)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding json: %w", ErrReadInput, err)
		}

		return v, nil
	case "yaml":
		var v any

		err := yaml.Unmarshal(data, &v)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding yaml: %w", ErrReadInput, err)
		}

		return v, nil
	case "toon":
		v, err := toon.Unmarshal(string(data), toon.WithDecodeIndent(indent))
		if err != nil {
			return nil, fmt.Errorf("%w: decoding toon: %w", ErrReadInput, err)
		}

		return v, nil
	default:
		return nil, fmt.Errorf("%w: --from %q", ErrUnknownFormat, format)
	}
}

func encodeAs(format string, v any, indent int, delimiterName string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%w: encoding json: %w", ErrWriteOutput, err)
		}

		return out, nil
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding yaml: %w", ErrWriteOutput, err)
		}

		return out, nil
	case "toon":
		delim, err := parseDelimiter(delimiterName)
		if err != nil {
			return nil, err
		}

		out, err := toon.Marshal(v, toon.WithIndent(indent), toon.WithDelimiter(delim))
		if err != nil {
			return nil, fmt.Errorf("%w: encoding toon: %w", ErrWriteOutput, err)
		}

		return []byte(out), nil
	default:
		return nil, fmt.Errorf("%w: --to %q", ErrUnknownFormat, format)
	}
}
