package toon

import "fmt"

// Delimiter is the active separator used between inline array values,
// tabular row fields, and header field lists.
type Delimiter rune

const (
	// DelimiterComma is the default delimiter and has no header suffix.
	DelimiterComma Delimiter = ','
	// DelimiterTab selects the "\t" delimiter override.
	DelimiterTab Delimiter = '\t'
	// DelimiterPipe selects the "|" delimiter override.
	DelimiterPipe Delimiter = '|'
)

func (d Delimiter) valid() bool {
	switch d {
	case DelimiterComma, DelimiterTab, DelimiterPipe:
		return true
	default:
		return false
	}
}

// EncodeOptions controls [Encoder] behavior.
type EncodeOptions struct {
	// Indent is the number of spaces per depth level. Must be positive.
	Indent int
	// Delimiter is the default active delimiter for arrays that don't
	// declare their own override.
	Delimiter Delimiter
	// LengthMarker, when true, emits the "#" length marker on every
	// array header.
	LengthMarker bool
}

// DefaultEncodeOptions returns the default options: indent 2, comma
// delimiter, no length marker.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Indent:    2,
		Delimiter: DelimiterComma,
	}
}

// EncodeOption configures an [Encoder] or a one-shot [Encode] call.
type EncodeOption func(*EncodeOptions)

// WithIndent sets the number of spaces per indentation depth.
func WithIndent(n int) EncodeOption {
	return func(o *EncodeOptions) { o.Indent = n }
}

// WithDelimiter sets the default active delimiter.
func WithDelimiter(d Delimiter) EncodeOption {
	return func(o *EncodeOptions) { o.Delimiter = d }
}

// WithLengthMarker enables or disables the "#" length marker.
func WithLengthMarker(enabled bool) EncodeOption {
	return func(o *EncodeOptions) { o.LengthMarker = enabled }
}

func resolveEncodeOptions(opts []EncodeOption) (EncodeOptions, error) {
	cfg := DefaultEncodeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Indent <= 0 {
		return cfg, fmt.Errorf("%w: indent must be positive, got %d", ErrInvalidOption, cfg.Indent)
	}

	if !cfg.Delimiter.valid() {
		return cfg, fmt.Errorf("%w: unsupported delimiter %q", ErrInvalidOption, rune(cfg.Delimiter))
	}

	return cfg, nil
}

// DecodeOptions controls [Decoder] behavior.
type DecodeOptions struct {
	// Indent is the number of spaces per depth level the producer used.
	// Must be positive and must match the encoder's indent to decode
	// unambiguously.
	Indent int
	// Strict enables whitespace-tightness and length-tightness
	// validation. Defaults to true.
	Strict bool
}

// DefaultDecodeOptions returns the default options: indent 2, strict
// mode enabled.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		Indent: 2,
		Strict: true,
	}
}

// DecodeOption configures a [Decoder] or a one-shot [Decode] call.
type DecodeOption func(*DecodeOptions)

// WithDecodeIndent sets the number of spaces per indentation depth.
func WithDecodeIndent(n int) DecodeOption {
	return func(o *DecodeOptions) { o.Indent = n }
}

// WithStrict enables or disables strict-mode validation.
func WithStrict(strict bool) DecodeOption {
	return func(o *DecodeOptions) { o.Strict = strict }
}

func resolveDecodeOptions(opts []DecodeOption) (DecodeOptions, error) {
	cfg := DefaultDecodeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Indent <= 0 {
		return cfg, fmt.Errorf("%w: indent must be positive, got %d", ErrInvalidOption, cfg.Indent)
	}

	return cfg, nil
}
