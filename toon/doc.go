// Package toon implements TOON (Token-Optimized Object Notation), a
// compact, indentation-based text format that is value-equivalent to
// JSON but considerably cheaper to tokenize for LLM prompts.
//
// [Value] is the data model: a small tagged union over null, bool, int,
// float, string, sequence, and ordered mapping. Build one directly, or
// normalize an arbitrary Go value with [Normalize]:
//
//	v, err := toon.Normalize(map[string]any{
//	    "users": []any{
//	        map[string]any{"id": 1, "name": "Alice"},
//	    },
//	})
//
// [Encode] renders a Value as TOON text; [Marshal] normalizes and
// encodes in one step:
//
//	text, err := toon.Marshal(data)
//	// users[1]{id,name}:
//	//   1,Alice
//
// [Decode] parses TOON text back into a Value; [Unmarshal] additionally
// converts the result to plain Go types via [ToAny]:
//
//	v, err := toon.Decode(text)
//	out, err := toon.Unmarshal(text)
//
// Both directions accept functional options — [WithIndent],
// [WithDelimiter], and [WithLengthMarker] for encoding; [WithDecodeIndent]
// and [WithStrict] for decoding — matching [DefaultEncodeOptions] and
// [DefaultDecodeOptions] when omitted.
//
// Decode errors are reported as [*DecodeError], carrying a sentinel
// [error] (checkable with errors.Is), a 1-based line number, and an
// optional actionable hint.
package toon
