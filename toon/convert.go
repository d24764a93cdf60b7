package toon

import "encoding/json"

// ToAny converts a Value into a plain Go value built from the usual
// encoding/json-shaped types: nil, bool, int64, float64, string,
// []any, and map[string]any. It is the inverse of [FromAny] modulo the
// int/float distinction, which ToAny preserves and encoding/json does
// not.
func ToAny(v Value) any {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool()
	case KindInt:
		return v.Int()
	case KindFloat:
		return v.Float()
	case KindString:
		return v.String()
	case KindSequence:
		items := v.Sequence()
		result := make([]any, len(items))

		for i, item := range items {
			result[i] = ToAny(item)
		}

		return result
	case KindMapping:
		pairs := v.Mapping().Pairs()
		result := make(map[string]any, len(pairs))

		for _, p := range pairs {
			result[p.Key] = ToAny(p.Value)
		}

		return result
	default:
		return nil
	}
}

// FromAny normalizes v into a Value (see [Normalize]), discarding the
// error the encoder never actually produces for built-in Go types.
func FromAny(v any) Value {
	val, _ := Normalize(v)
	return val
}

// MappingFromJSONObject converts a decoded encoding/json object
// (map[string]any, as produced by json.Unmarshal into an any) into an
// ordered [Mapping]. Go's map has no stable iteration order, so the
// resulting key order is the sorted order FromAny already applies —
// round-tripping arbitrary JSON through TOON does not preserve the
// original JSON object's source key order, only a deterministic one.
func MappingFromJSONObject(obj map[string]any) *Mapping {
	v := FromAny(obj)
	if v.Kind() != KindMapping {
		return NewMapping()
	}

	return v.Mapping()
}

// ToJSON renders v as compact JSON text, going through [ToAny] first.
func ToJSON(v Value) (string, error) {
	b, err := json.Marshal(ToAny(v))
	if err != nil {
		return "", &EncodeError{Err: err}
	}

	return string(b), nil
}

// estimateTokens gives a rough token-count estimate for s, using the
// common heuristic of four characters per token. It is a planning
// signal for comparing encodings, not a substitute for a real
// tokenizer.
func estimateTokens(s string) int {
	return len(s) / 4
}

// EstimateTokens estimates the token count of a TOON document string.
func EstimateTokens(toonText string) int {
	return estimateTokens(toonText)
}

// FormatComparison reports estimated token counts for the same value
// encoded as JSON and as TOON under each supported delimiter.
type FormatComparison struct {
	JSON      int
	TOONComma int
	TOONTab   int
	TOONPipe  int
}

// CompareFormats encodes v as JSON and as TOON under each delimiter and
// estimates the token count of each, so callers can judge how much a
// given payload shape benefits from TOON's compaction.
func CompareFormats(v Value) (FormatComparison, error) {
	jsonText, err := ToJSON(v)
	if err != nil {
		return FormatComparison{}, err
	}

	var cmp FormatComparison
	cmp.JSON = estimateTokens(jsonText)

	for _, pair := range []struct {
		delim Delimiter
		dst   *int
	}{
		{DelimiterComma, &cmp.TOONComma},
		{DelimiterTab, &cmp.TOONTab},
		{DelimiterPipe, &cmp.TOONPipe},
	} {
		text, eerr := Encode(v, WithDelimiter(pair.delim))
		if eerr != nil {
			return FormatComparison{}, eerr
		}

		*pair.dst = estimateTokens(text)
	}

	return cmp, nil
}
