package toon

import "math"

// Kind identifies which alternative of the TOON data model a [Value] holds.
type Kind uint8

const (
	// KindNull is the absence of a value.
	KindNull Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindInt is an integer, stored without loss up to int64 range.
	KindInt
	// KindFloat is a floating point number.
	KindFloat
	// KindString is a Unicode scalar sequence.
	KindString
	// KindSequence is an ordered list of Values.
	KindSequence
	// KindMapping is an ordered list of (key, value) pairs.
	KindMapping
)

// String returns a human-readable name for k, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a node in the TOON data model: one of null, bool, integer,
// float, string, sequence, or mapping. It is a small closed
// tagged struct rather than an interface, so callers switch on Kind
// instead of performing type assertions against arbitrary concrete types.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  []Value
	m    *Mapping
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps b as a Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps i as a Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps f as a Value. -0.0 collapses to 0 and non-finite floats
// collapse to null; callers that build Values directly (bypassing
// Normalize) get this same canonicalization.
func Float(f float64) Value {
	if !math.IsInf(f, 0) && !math.IsNaN(f) {
		if f == 0 {
			f = 0 // canonicalize -0.0
		}

		return Value{kind: KindFloat, f: f}
	}

	return Null()
}

// String wraps s as a Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Sequence wraps items as a Value holding an ordered list.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// MappingValue wraps m as a Value holding an ordered mapping.
func MappingValue(m *Mapping) Value {
	if m == nil {
		m = NewMapping()
	}

	return Value{kind: KindMapping, m: m}
}

// Kind reports which alternative v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsPrimitive reports whether v is null, bool, int, float, or string —
// i.e. not a sequence or mapping. This is the distinction the
// array-shape classifier and encoder driver switch on throughout.
func (v Value) IsPrimitive() bool {
	switch v.kind {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		return true
	default:
		return false
	}
}

// Bool returns the boolean payload. Only meaningful when Kind() == KindBool.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload. Only meaningful when Kind() == KindInt.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload. Only meaningful when Kind() == KindFloat.
func (v Value) Float() float64 { return v.f }

// String returns the string payload. Only meaningful when Kind() == KindString.
func (v Value) String() string { return v.s }

// Sequence returns the ordered element list. Only meaningful when
// Kind() == KindSequence. The returned slice is shared; do not mutate it.
func (v Value) Sequence() []Value { return v.seq }

// Mapping returns the ordered mapping. Only meaningful when Kind() ==
// KindMapping. The returned Mapping is shared; do not mutate it.
func (v Value) Mapping() *Mapping { return v.m }

// Equal reports whether v and other represent the same value:
// primitives compare by kind+value, except that KindInt and KindFloat
// compare equal across kinds when their magnitudes match (1 and 1.0 are
// equal). Sequences compare element-wise in order; mappings compare by
// ordered key-value pairs.
func (v Value) Equal(other Value) bool {
	if v.kind == KindInt && other.kind == KindFloat {
		return float64(v.i) == other.f
	}

	if v.kind == KindFloat && other.kind == KindInt {
		return v.f == float64(other.i)
	}

	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindSequence:
		return sequencesEqual(v.seq, other.seq)
	case KindMapping:
		return v.m.Equal(other.m)
	default:
		return false
	}
}

func sequencesEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// Pair is one (key, value) entry of a [Mapping].
type Pair struct {
	Key   string
	Value Value
}

// Mapping is an ordered string-keyed map: a slice of pairs plus an
// index for O(1) lookup, preserving insertion order deterministically.
type Mapping struct {
	pairs []Pair
	index map[string]int
}

// NewMapping returns an empty ordered mapping.
func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

// Set inserts or updates the value for key, preserving the original
// position on update and appending on insert.
func (m *Mapping) Set(key string, value Value) {
	if i, ok := m.index[key]; ok {
		m.pairs[i].Value = value
		return
	}

	m.index[key] = len(m.pairs)
	m.pairs = append(m.pairs, Pair{Key: key, Value: value})
}

// Get returns the value stored for key and whether it was present.
func (m *Mapping) Get(key string) (Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}

	return m.pairs[i].Value, true
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.pairs) }

// Pairs returns the ordered entries. The returned slice is shared; do
// not mutate it.
func (m *Mapping) Pairs() []Pair { return m.pairs }

// Keys returns the ordered keys.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.pairs))
	for i, p := range m.pairs {
		keys[i] = p.Key
	}

	return keys
}

// Equal reports whether m and other hold the same ordered key-value pairs.
func (m *Mapping) Equal(other *Mapping) bool {
	if m == nil || other == nil {
		return m == other
	}

	if len(m.pairs) != len(other.pairs) {
		return false
	}

	for i, p := range m.pairs {
		op := other.pairs[i]
		if p.Key != op.Key || !p.Value.Equal(op.Value) {
			return false
		}
	}

	return true
}
