package cmd

import "errors"

var (
	// ErrReadInput indicates an error reading or decoding input.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates an error encoding or writing output.
	ErrWriteOutput = errors.New("write output")
	// ErrUnknownFormat indicates an unrecognized --from/--to format name
	// or --delimiter name.
	ErrUnknownFormat = errors.New("unknown format")
)
