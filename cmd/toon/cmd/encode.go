package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/toon"
)

func newEncodeCommand() *cobra.Command {
	var (
		indent       int
		delimiter    string
		lengthMarker bool
		output       string
		stats        bool
	)

	cmd := &cobra.Command{
		Use:   "encode [flags] <file|->",
		Short: "Encode a JSON document as TOON",
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

			var decoded any

			err = json.Unmarshal(data, &decoded)
			if err != nil {
				return fmt.Errorf("%w: decoding json: %w", ErrReadInput, err)
			}

			delim, err := parseDelimiter(delimiter)
			if err != nil {
				return err
			}

			out, err := toon.Marshal(decoded,
				toon.WithIndent(indent),
				toon.WithDelimiter(delim),
				toon.WithLengthMarker(lengthMarker),
			)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			if stats {
				v, verr := toon.Normalize(decoded)
				if verr != nil {
					return fmt.Errorf("%w: %w", ErrWriteOutput, verr)
				}

				cmp, cerr := toon.CompareFormats(v)
				if cerr != nil {
					return fmt.Errorf("%w: %w", ErrWriteOutput, cerr)
				}

				fmt.Fprintf(os.Stderr, "tokens: json=%d toon(,)=%d toon(tab)=%d toon(|)=%d\n",
					cmp.JSON, cmp.TOONComma, cmp.TOONTab, cmp.TOONPipe)
			}

			return writeOutput(output, []byte(out))
		},
	}

	cmd.Flags().IntVar(&indent, "indent", toon.DefaultEncodeOptions().Indent, "number of spaces per indentation level")
	cmd.Flags().StringVar(&delimiter, "delimiter", "comma", "inline array delimiter, one of: comma, tab, pipe")
	cmd.Flags().BoolVar(&lengthMarker, "length-marker", false, "emit a length marker on every array header")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, or - for stdout")
	cmd.Flags().BoolVar(&stats, "stats", false, "print estimated token counts for json and each toon delimiter to stderr")

	return cmd
}

func parseDelimiter(name string) (toon.Delimiter, error) {
	switch name {
	case "comma", "":
		return toon.DelimiterComma, nil
	case "tab":
		return toon.DelimiterTab, nil
	case "pipe":
		return toon.DelimiterPipe, nil
	default:
		return 0, fmt.Errorf("%w: delimiter %q", ErrUnknownFormat, name)
	}
}
