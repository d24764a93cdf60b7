package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/toon"
)

func newDecodeCommand() *cobra.Command {
	var (
		indent   int
		noStrict bool
		output   string
		toIndent int
	)

	cmd := &cobra.Command{
		Use:   "decode [flags] <file|->",
		Short: "Decode a TOON document to JSON",
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

			decoded, err := toon.Unmarshal(string(data),
				toon.WithDecodeIndent(indent),
				toon.WithStrict(!noStrict),
			)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrReadInput, err)
			}

			prefix := ""
			pad := ""

			for range toIndent {
				pad += " "
			}

			out, err := json.MarshalIndent(decoded, prefix, pad)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return writeOutput(output, out)
		},
	}

	cmd.Flags().IntVar(&indent, "indent", toon.DefaultDecodeOptions().Indent, "number of spaces per indentation level")
	cmd.Flags().BoolVar(&noStrict, "no-strict", false, "disable strict whitespace, blank-line, and extra-row validation")
	cmd.Flags().IntVar(&toIndent, "json-indent", 2, "number of spaces per JSON indentation level")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, or - for stdout")

	return cmd
}
