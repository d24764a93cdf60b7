package toon

import (
	"strconv"
	"strings"
)

// encodeKey renders key as a TOON key token: unquoted when
// it matches the identifier grammar, otherwise quoted and escaped.
func encodeKey(key string) string {
	if isValidUnquotedKey(key) {
		return key
	}

	return quote(key)
}

// encodePrimitive renders v as a TOON primitive token under the given
// active delimiter. Strings are quoted unless safe to
// leave bare; true/false/null and numbers are literal.
func encodePrimitive(v Value, delim Delimiter) string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindBool:
		if v.Bool() {
			return "true"
		}

		return "false"
	case KindInt:
		return strconv.FormatInt(v.Int(), 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case KindString:
		s := v.String()
		if isSafeUnquotedString(s, delim) {
			return s
		}

		return quote(s)
	default:
		return ""
	}
}

func quote(s string) string {
	return `"` + escapeString(s) + `"`
}

// encodeAndJoinPrimitives renders values as delimiter-joined tokens,
// used for inline arrays and tabular rows.
func encodeAndJoinPrimitives(values []Value, delim Delimiter) string {
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = encodePrimitive(v, delim)
	}

	return strings.Join(tokens, string(rune(delim)))
}

// formatHeader renders an array header:
//
//	{key?}[{#?}{N}{delim if != ','}]{{fields}?}:
func formatHeader(length int, key string, fields []string, delim Delimiter, lengthMarker bool) string {
	var b strings.Builder

	if key != "" {
		b.WriteString(encodeKey(key))
	}

	b.WriteByte('[')

	if lengthMarker {
		b.WriteByte('#')
	}

	b.WriteString(strconv.Itoa(length))

	if delim != DelimiterComma {
		b.WriteRune(rune(delim))
	}

	b.WriteByte(']')

	if fields != nil {
		b.WriteByte('{')

		for i, f := range fields {
			if i > 0 {
				b.WriteRune(rune(delim))
			}

			b.WriteString(encodeKey(f))
		}

		b.WriteByte('}')
	}

	b.WriteByte(':')

	return b.String()
}
