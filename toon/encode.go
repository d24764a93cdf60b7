package toon

// Encoder renders Values as TOON documents. The zero value
// is not usable; construct with [NewEncoder].
type Encoder struct {
	opts EncodeOptions
}

// NewEncoder constructs an Encoder. Options absent from opts fall back
// to [DefaultEncodeOptions].
func NewEncoder(opts ...EncodeOption) (*Encoder, error) {
	cfg, err := resolveEncodeOptions(opts)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}

	return &Encoder{opts: cfg}, nil
}

// Encode renders v as a TOON document string.
func (e *Encoder) Encode(v Value) (string, error) {
	if v.IsPrimitive() {
		return encodePrimitive(v, e.opts.Delimiter), nil
	}

	w := newLineWriter(e.opts.Indent)

	switch v.Kind() {
	case KindMapping:
		e.encodeMapping(v.Mapping(), w, 0)
	case KindSequence:
		e.encodeArray("", v.Sequence(), w, 0)
	}

	return w.String(), nil
}

// Encode is a convenience wrapper that builds a temporary [Encoder].
func Encode(v Value, opts ...EncodeOption) (string, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return "", err
	}

	return enc.Encode(v)
}

// Marshal normalizes goValue (see [Normalize]) and encodes the result.
func Marshal(goValue any, opts ...EncodeOption) (string, error) {
	v, err := Normalize(goValue)
	if err != nil {
		return "", err
	}

	return Encode(v, opts...)
}

func (e *Encoder) encodeMapping(m *Mapping, w *lineWriter, depth int) {
	for _, pair := range m.Pairs() {
		e.encodeKeyValue(pair.Key, pair.Value, w, depth)
	}
}

func (e *Encoder) encodeKeyValue(key string, value Value, w *lineWriter, depth int) {
	encodedKey := encodeKey(key)

	switch {
	case value.IsPrimitive():
		w.push(depth, encodedKey+": "+encodePrimitive(value, e.opts.Delimiter))
	case value.Kind() == KindSequence:
		e.encodeArray(key, value.Sequence(), w, depth)
	case value.Kind() == KindMapping:
		if value.Mapping().Len() == 0 {
			w.push(depth, encodedKey+":")
			return
		}

		w.push(depth, encodedKey+":")
		e.encodeMapping(value.Mapping(), w, depth+1)
	}
}

// encodeArray encodes a sequence at depth, with key possibly empty
// (root arrays have no key).
func (e *Encoder) encodeArray(key string, items []Value, w *lineWriter, depth int) {
	if len(items) == 0 {
		w.push(depth, formatHeader(0, key, nil, e.opts.Delimiter, e.opts.LengthMarker))
		return
	}

	shape, fields := classifyArray(items)

	switch shape {
	case shapeInline:
		w.push(depth, e.inlineArrayLine(key, items))
	case shapeTabular:
		w.push(depth, formatHeader(len(items), key, fields, e.opts.Delimiter, e.opts.LengthMarker))
		e.writeTabularRows(items, fields, w, depth+1)
	case shapeExpanded:
		w.push(depth, formatHeader(len(items), key, nil, e.opts.Delimiter, e.opts.LengthMarker))

		for _, item := range items {
			e.encodeListItem(item, w, depth+1)
		}
	}
}

func (e *Encoder) inlineArrayLine(key string, items []Value) string {
	header := formatHeader(len(items), key, nil, e.opts.Delimiter, e.opts.LengthMarker)
	if len(items) == 0 {
		return header
	}

	return header + " " + encodeAndJoinPrimitives(items, e.opts.Delimiter)
}

func (e *Encoder) writeTabularRows(rows []Value, fields []string, w *lineWriter, depth int) {
	for _, row := range rows {
		m := row.Mapping()
		values := make([]Value, len(fields))

		for i, f := range fields {
			values[i], _ = m.Get(f)
		}

		w.push(depth, encodeAndJoinPrimitives(values, e.opts.Delimiter))
	}
}

// encodeListItem encodes one element of an expanded-list array: a
// primitive follows the hyphen literally, a primitive sequence is
// rendered inline after the hyphen, and a mapping places its first
// pair after the hyphen with remaining pairs indented below.
func (e *Encoder) encodeListItem(item Value, w *lineWriter, depth int) {
	switch {
	case item.IsPrimitive():
		w.pushListItem(depth, encodePrimitive(item, e.opts.Delimiter))
	case item.Kind() == KindSequence:
		e.encodeNestedArrayListItem(item.Sequence(), w, depth)
	case item.Kind() == KindMapping:
		e.encodeMappingListItem(item.Mapping(), w, depth)
	}
}

func (e *Encoder) encodeNestedArrayListItem(items []Value, w *lineWriter, depth int) {
	if len(items) == 0 {
		w.pushListItem(depth, formatHeader(0, "", nil, e.opts.Delimiter, e.opts.LengthMarker))
		return
	}

	shape, fields := classifyArray(items)

	switch shape {
	case shapeInline:
		header := formatHeader(len(items), "", nil, e.opts.Delimiter, e.opts.LengthMarker)
		w.pushListItem(depth, header+" "+encodeAndJoinPrimitives(items, e.opts.Delimiter))
	case shapeTabular:
		header := formatHeader(len(items), "", fields, e.opts.Delimiter, e.opts.LengthMarker)
		w.pushListItem(depth, header)
		e.writeTabularRows(items, fields, w, depth+1)
	case shapeExpanded:
		header := formatHeader(len(items), "", nil, e.opts.Delimiter, e.opts.LengthMarker)
		w.pushListItem(depth, header)

		for _, item := range items {
			e.encodeListItem(item, w, depth+1)
		}
	}
}

func (e *Encoder) encodeMappingListItem(m *Mapping, w *lineWriter, depth int) {
	if m.Len() == 0 {
		w.pushListItem(depth, "")
		return
	}

	pairs := m.Pairs()
	first := pairs[0]
	encodedKey := encodeKey(first.Key)

	switch {
	case first.Value.IsPrimitive():
		w.pushListItem(depth, encodedKey+": "+encodePrimitive(first.Value, e.opts.Delimiter))
	case first.Value.Kind() == KindSequence:
		e.encodeKeyedArrayListItem(first.Key, first.Value.Sequence(), w, depth)
	case first.Value.Kind() == KindMapping:
		if first.Value.Mapping().Len() == 0 {
			w.pushListItem(depth, encodedKey+":")
		} else {
			w.pushListItem(depth, encodedKey+":")
			e.encodeMapping(first.Value.Mapping(), w, depth+2)
		}
	}

	rest := NewMapping()
	for _, p := range pairs[1:] {
		rest.Set(p.Key, p.Value)
	}

	e.encodeMapping(rest, w, depth+1)
}

// encodeKeyedArrayListItem handles the "first pair's value is an array"
// case of encodeMappingListItem, reusing the array-shape machinery but
// attaching the key to the hyphen line.
func (e *Encoder) encodeKeyedArrayListItem(key string, items []Value, w *lineWriter, depth int) {
	if len(items) == 0 {
		w.pushListItem(depth, formatHeader(0, key, nil, e.opts.Delimiter, e.opts.LengthMarker))
		return
	}

	shape, fields := classifyArray(items)

	switch shape {
	case shapeInline:
		header := formatHeader(len(items), key, nil, e.opts.Delimiter, e.opts.LengthMarker)
		w.pushListItem(depth, header+" "+encodeAndJoinPrimitives(items, e.opts.Delimiter))
	case shapeTabular:
		header := formatHeader(len(items), key, fields, e.opts.Delimiter, e.opts.LengthMarker)
		w.pushListItem(depth, header)
		e.writeTabularRows(items, fields, w, depth+1)
	case shapeExpanded:
		header := formatHeader(len(items), key, nil, e.opts.Delimiter, e.opts.LengthMarker)
		w.pushListItem(depth, header)

		for _, item := range items {
			e.encodeListItem(item, w, depth+1)
		}
	}
}
