package toon

import "strings"

// Decoder parses TOON documents into Values. The zero
// value is not usable; construct with [NewDecoder].
type Decoder struct {
	opts DecodeOptions
}

// NewDecoder constructs a Decoder. Options absent from opts fall back
// to [DefaultDecodeOptions].
func NewDecoder(opts ...DecodeOption) (*Decoder, error) {
	cfg, err := resolveDecodeOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Decoder{opts: cfg}, nil
}

// Decode parses source into a Value.
func (d *Decoder) Decode(source string) (Value, error) {
	lines, blanks, err := scanLines(source, d.opts.Indent, d.opts.Strict)
	if err != nil {
		return Value{}, err
	}

	if len(lines) == 0 {
		return Value{}, newDecodeError(ErrEmptyInput, 0, "")
	}

	p := &parser{cursor: newLineCursor(lines), blanks: blanks, opts: d.opts}
	first := lines[0]

	switch {
	case strings.HasPrefix(first.content, "["):
		return p.parseRootArray()
	case len(lines) == 1 && !looksLikeKeyValue(first.content):
		v, perr := decodePrimitiveToken(strings.TrimSpace(first.content))
		if perr != nil {
			return Value{}, newDecodeError(perr, first.lineNumber, "")
		}

		return v, nil
	default:
		m, merr := p.parseMappingBody(0)
		if merr != nil {
			return Value{}, merr
		}

		return MappingValue(m), nil
	}
}

// Decode is a convenience wrapper that builds a temporary [Decoder].
func Decode(source string, opts ...DecodeOption) (Value, error) {
	dec, err := NewDecoder(opts...)
	if err != nil {
		return Value{}, err
	}

	return dec.Decode(source)
}

// Unmarshal decodes source and converts the result to a plain Go value
// via [ToAny].
func Unmarshal(source string, opts ...DecodeOption) (any, error) {
	v, err := Decode(source, opts...)
	if err != nil {
		return nil, err
	}

	return ToAny(v), nil
}

// parser walks the scanned lines, dispatching key-value lines, array
// headers, and list items. It holds no state beyond the cursor position
// and the blank-line index needed for strict-mode interior-blank-line
// checks.
type parser struct {
	cursor *lineCursor
	blanks []blankLineInfo
	opts   DecodeOptions
}

func (p *parser) parseRootArray() (Value, error) {
	line := p.cursor.peek()

	hdr, inline, hasInline, ok, err := tryParseHeader(line.content)
	if err != nil {
		return Value{}, newDecodeError(err, line.lineNumber, "")
	}

	if !ok {
		return Value{}, newDecodeError(ErrInvalidHeader, line.lineNumber, "")
	}

	p.cursor.advance()

	items, ierr := p.decodeArrayBody(hdr, inline, hasInline, 0, line.lineNumber)
	if ierr != nil {
		return Value{}, ierr
	}

	return Sequence(items...), nil
}

// parseMappingBody consumes consecutive key-value lines at exactly
// depth, stopping at the first line whose depth differs or at end of
// input.
func (p *parser) parseMappingBody(depth int) (*Mapping, error) {
	m := NewMapping()

	for {
		line := p.cursor.peek()
		if line == nil || line.depth != depth {
			break
		}

		p.cursor.advance()

		key, value, err := p.decodeKeyValueLine(line.content, line.lineNumber, depth)
		if err != nil {
			return nil, err
		}

		m.Set(key, value)
	}

	return m, nil
}

// decodeKeyValueLine decodes one key-value line at the given depth: a
// header delegates to array decoding; otherwise the key is followed
// either by an inline primitive or, when empty, by a nested mapping
// found by peeking one depth deeper.
func (p *parser) decodeKeyValueLine(content string, lineNumber int, depth int) (string, Value, error) {
	hdr, inline, hasInline, ok, err := tryParseHeader(content)
	if err != nil {
		return "", Value{}, newDecodeError(err, lineNumber, "")
	}

	if ok && hdr.hasKey {
		items, ierr := p.decodeArrayBody(hdr, inline, hasInline, depth, lineNumber)
		if ierr != nil {
			return "", Value{}, ierr
		}

		return hdr.key, Sequence(items...), nil
	}

	key, rest, kerr := parseKeyToken(content)
	if kerr != nil {
		return "", Value{}, newDecodeError(kerr, lineNumber, "")
	}

	if !strings.HasPrefix(rest, ":") {
		return "", Value{}, newDecodeError(ErrMissingColon, lineNumber, "")
	}

	remainder := strings.TrimSpace(rest[1:])

	if remainder != "" {
		v, perr := decodePrimitiveToken(remainder)
		if perr != nil {
			return "", Value{}, newDecodeError(perr, lineNumber, "")
		}

		return key, v, nil
	}

	next := p.cursor.peek()
	if next != nil && next.depth > depth {
		m, merr := p.parseMappingBody(depth + 1)
		if merr != nil {
			return "", Value{}, merr
		}

		return key, MappingValue(m), nil
	}

	return key, MappingValue(NewMapping()), nil
}

// decodeArrayBody decodes the body of an array whose header sits at
// depth, given its already-parsed header and optional inline tail.
func (p *parser) decodeArrayBody(hdr arrayHeader, inline string, hasInline bool, depth int, headerLine int) ([]Value, error) {
	if hasInline {
		return p.decodeInlineArray(hdr, inline, headerLine)
	}

	if hdr.length == 0 {
		return []Value{}, nil
	}

	if hdr.hasFields {
		return p.decodeTabularRows(hdr, depth+1, headerLine)
	}

	return p.decodeListItems(hdr, depth+1, headerLine)
}

func (p *parser) decodeInlineArray(hdr arrayHeader, inline string, headerLine int) ([]Value, error) {
	if hdr.length == 0 {
		if inline != "" {
			return nil, newDecodeError(ErrLengthMismatch, headerLine, "declared length 0 but inline values present")
		}

		return []Value{}, nil
	}

	tokens := splitDelimited(inline, hdr.delimiter)
	if len(tokens) != hdr.length {
		return nil, newDecodeError(ErrLengthMismatch, headerLine, "declared length does not match value count")
	}

	items := make([]Value, len(tokens))

	for i, tok := range tokens {
		v, err := decodePrimitiveToken(tok)
		if err != nil {
			return nil, newDecodeError(err, headerLine, "")
		}

		items[i] = v
	}

	return items, nil
}

func (p *parser) decodeTabularRows(hdr arrayHeader, depth int, headerLine int) ([]Value, error) {
	rows := make([]Value, 0, hdr.length)
	lastLine := -1

	for len(rows) < hdr.length {
		line := p.cursor.peek()
		if line == nil || line.depth != depth {
			break
		}

		if p.opts.Strict && lastLine >= 0 && p.hasBlankBetween(lastLine, line.lineNumber) {
			return nil, newDecodeError(ErrBlankLineInsideArray, line.lineNumber, "")
		}

		tokens := splitDelimited(line.content, hdr.delimiter)
		if len(tokens) != len(hdr.fields) {
			return nil, newDecodeError(ErrRowWidthMismatch, line.lineNumber, "")
		}

		m := NewMapping()

		for i, field := range hdr.fields {
			v, err := decodePrimitiveToken(tokens[i])
			if err != nil {
				return nil, newDecodeError(err, line.lineNumber, "")
			}

			m.Set(field, v)
		}

		rows = append(rows, MappingValue(m))
		lastLine = line.lineNumber

		p.cursor.advance()
	}

	if len(rows) != hdr.length {
		lineNo := headerLine
		if lastLine >= 0 {
			lineNo = lastLine
		}

		return nil, newDecodeError(ErrLengthMismatch, lineNo, "")
	}

	if p.opts.Strict {
		if extra := p.cursor.peek(); extra != nil && extra.depth == depth {
			return nil, newDecodeError(ErrExtraRowsAfterDeclaredLength, extra.lineNumber, "")
		}
	}

	return rows, nil
}

func (p *parser) decodeListItems(hdr arrayHeader, depth int, headerLine int) ([]Value, error) {
	items := make([]Value, 0, hdr.length)
	lastLine := -1

	for len(items) < hdr.length {
		line := p.cursor.peek()
		if line == nil || line.depth != depth || !isListItemLine(line.content) {
			break
		}

		if p.opts.Strict && lastLine >= 0 && p.hasBlankBetween(lastLine, line.lineNumber) {
			return nil, newDecodeError(ErrBlankLineInsideArray, line.lineNumber, "")
		}

		body := listItemBody(line.content)
		lineNumber := line.lineNumber

		p.cursor.advance()

		v, err := p.decodeListItemBody(body, depth, lineNumber)
		if err != nil {
			return nil, err
		}

		items = append(items, v)
		lastLine = lineNumber
	}

	if len(items) != hdr.length {
		lineNo := headerLine
		if lastLine >= 0 {
			lineNo = lastLine
		}

		return nil, newDecodeError(ErrLengthMismatch, lineNo, "")
	}

	if p.opts.Strict {
		if extra := p.cursor.peek(); extra != nil && extra.depth == depth && isListItemLine(extra.content) {
			return nil, newDecodeError(ErrExtraItemsAfterDeclaredLength, extra.lineNumber, "")
		}
	}

	return items, nil
}

// decodeListItemBody decodes the content following "- " on an expanded
// list item line: a header means the item is a nested array; an
// unquoted colon means the item is a mapping whose first pair sits on
// the hyphen line and whose remaining pairs follow at itemDepth+1;
// otherwise the item is a primitive.
func (p *parser) decodeListItemBody(body string, itemDepth int, lineNumber int) (Value, error) {
	if body == "" {
		return MappingValue(NewMapping()), nil
	}

	hdr, inline, hasInline, ok, err := tryParseHeader(body)
	if err != nil {
		return Value{}, newDecodeError(err, lineNumber, "")
	}

	if ok && hdr.hasKey {
		return p.decodeMappingListItemArrayFirst(hdr, inline, hasInline, itemDepth, lineNumber)
	}

	if ok {
		items, ierr := p.decodeArrayBody(hdr, inline, hasInline, itemDepth, lineNumber)
		if ierr != nil {
			return Value{}, ierr
		}

		return Sequence(items...), nil
	}

	if looksLikeKeyValue(body) {
		return p.decodeMappingListItemBody(body, itemDepth, lineNumber)
	}

	v, perr := decodePrimitiveToken(body)
	if perr != nil {
		return Value{}, newDecodeError(perr, lineNumber, "")
	}

	return v, nil
}

// decodeMappingListItemArrayFirst handles a mapping list item whose
// first pair's value is itself an array, keyed directly on the hyphen
// line (e.g. "- tags[2]: a,b"). The array body occupies the same rows
// an unkeyed array header would, and any remaining sibling pairs follow
// at itemDepth+1, exactly as in [decodeMappingListItemBody].
func (p *parser) decodeMappingListItemArrayFirst(hdr arrayHeader, inline string, hasInline bool, itemDepth int, lineNumber int) (Value, error) {
	items, ierr := p.decodeArrayBody(hdr, inline, hasInline, itemDepth, lineNumber)
	if ierr != nil {
		return Value{}, ierr
	}

	m := NewMapping()
	m.Set(hdr.key, Sequence(items...))

	restPairs, rerr := p.parseMappingBody(itemDepth + 1)
	if rerr != nil {
		return Value{}, rerr
	}

	for _, pr := range restPairs.Pairs() {
		m.Set(pr.Key, pr.Value)
	}

	return MappingValue(m), nil
}

// decodeMappingListItemBody mirrors the encoder's asymmetric
// indentation for a mapping list item: the first pair's own nested
// mapping value (if any) sits at itemDepth+2, while the remaining
// top-level pairs of the item sit at itemDepth+1.
func (p *parser) decodeMappingListItemBody(body string, itemDepth int, lineNumber int) (Value, error) {
	key, rest, kerr := parseKeyToken(body)
	if kerr != nil {
		return Value{}, newDecodeError(kerr, lineNumber, "")
	}

	if !strings.HasPrefix(rest, ":") {
		return Value{}, newDecodeError(ErrMissingColon, lineNumber, "")
	}

	remainder := strings.TrimSpace(rest[1:])

	var firstValue Value

	switch {
	case remainder != "":
		v, perr := decodePrimitiveToken(remainder)
		if perr != nil {
			return Value{}, newDecodeError(perr, lineNumber, "")
		}

		firstValue = v
	default:
		next := p.cursor.peek()
		if next != nil && next.depth == itemDepth+2 {
			m, merr := p.parseMappingBody(itemDepth + 2)
			if merr != nil {
				return Value{}, merr
			}

			firstValue = MappingValue(m)
		} else {
			firstValue = MappingValue(NewMapping())
		}
	}

	m := NewMapping()
	m.Set(key, firstValue)

	restPairs, rerr := p.parseMappingBody(itemDepth + 1)
	if rerr != nil {
		return Value{}, rerr
	}

	for _, pr := range restPairs.Pairs() {
		m.Set(pr.Key, pr.Value)
	}

	return MappingValue(m), nil
}

func (p *parser) hasBlankBetween(afterLine, beforeLine int) bool {
	for _, b := range p.blanks {
		if b.lineNumber > afterLine && b.lineNumber < beforeLine {
			return true
		}
	}

	return false
}

func isListItemLine(content string) bool {
	return content == listItemMarker || strings.HasPrefix(content, listItemMarker+" ")
}

func listItemBody(content string) string {
	if content == listItemMarker {
		return ""
	}

	return content[len(listItemMarker)+1:]
}
