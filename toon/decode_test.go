package toon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/toon"
	"go.jacobcolvin.com/toon/stringtest"
)

func TestDecodeScenarios(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		in   string
		want any
	}{
		"inline primitive array with key": {
			in:   "data[4]: x,y,true,10",
			want: map[string]any{"data": []any{"x", "y", true, int64(10)}},
		},
		"tabular array of objects": {
			in: stringtest.JoinLF(
				"users[2]{id,name}:",
				"  1,Alice",
				"  2,Bob",
			),
			want: map[string]any{
				"users": []any{
					map[string]any{"id": int64(1), "name": "Alice"},
					map[string]any{"id": int64(2), "name": "Bob"},
				},
			},
		},
		"expanded list of sequences": {
			in: stringtest.JoinLF(
				"pairs[2]:",
				"  - [2]: a,b",
				"  - [2]: c,d",
			),
			want: map[string]any{
				"pairs": []any{
					[]any{"a", "b"},
					[]any{"c", "d"},
				},
			},
		},
		"root array header": {
			in: stringtest.JoinLF(
				"[3]: 1,2,3",
			),
			want: []any{int64(1), int64(2), int64(3)},
		},
		"single root primitive": {
			in:   "42",
			want: int64(42),
		},
		"root key-value mapping": {
			in: stringtest.JoinLF(
				"name: Alice",
				"age: 30",
			),
			want: map[string]any{"name": "Alice", "age": int64(30)},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := toon.Unmarshal(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeMappingListItemNestedFirstValue(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinLF(
		"shapes[1]:",
		"  - point:",
		"      x: 1",
		"      y: 2",
		"    label: origin",
	)

	got, err := toon.Unmarshal(in)
	require.NoError(t, err)

	want := map[string]any{
		"shapes": []any{
			map[string]any{
				"point": map[string]any{"x": int64(1), "y": int64(2)},
				"label": "origin",
			},
		},
	}
	assert.Equal(t, want, got)
}

func TestDecodeMappingListItemFirstValueArray(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinLF(
		"items[1]:",
		"  - tags[2]: a,b",
		"    id: 1",
	)

	got, err := toon.Unmarshal(in)
	require.NoError(t, err)

	want := map[string]any{
		"items": []any{
			map[string]any{
				"tags": []any{"a", "b"},
				"id":   int64(1),
			},
		},
	}
	assert.Equal(t, want, got)
}

func TestDecodeRowWidthMismatch(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinLF(
		"items[2]{id,name}:",
		"  1,Ada",
		"  2",
	)

	_, err := toon.Decode(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, toon.ErrRowWidthMismatch)
}

func TestDecodeLengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := toon.Decode("data[4]: x,y,true")
	require.Error(t, err)
	assert.ErrorIs(t, err, toon.ErrLengthMismatch)
}

func TestDecodeIndentationNotMultiple(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinLF(
		"a:",
		"   b: 1",
	)

	_, err := toon.Decode(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, toon.ErrIndentationNotMultiple)
}

func TestDecodeTabInIndentationStrict(t *testing.T) {
	t.Parallel()

	in := "a:\n\tb: 1"

	_, err := toon.Decode(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, toon.ErrTabInIndentation)
}

func TestDecodeTabInIndentationNonStrict(t *testing.T) {
	t.Parallel()

	in := "a:\n\tb: 1"

	_, err := toon.Decode(in, toon.WithStrict(false))
	require.NoError(t, err)
}

func TestDecodeEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := toon.Decode("")
	require.Error(t, err)
	assert.ErrorIs(t, err, toon.ErrEmptyInput)

	_, err = toon.Decode("   \n  \n")
	require.Error(t, err)
	assert.ErrorIs(t, err, toon.ErrEmptyInput)
}

func TestDecodeUnterminatedString(t *testing.T) {
	t.Parallel()

	_, err := toon.Decode(`"unterminated: 1`)
	require.Error(t, err)
	assert.ErrorIs(t, err, toon.ErrUnterminatedString)
}

func TestDecodeLeadingZeroIsString(t *testing.T) {
	t.Parallel()

	got, err := toon.Unmarshal("code: 007")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"code": "007"}, got)
}

func TestDecodeEscapeSequences(t *testing.T) {
	t.Parallel()

	got, err := toon.Unmarshal(`msg: "line1\nline2\ttabbed"`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"msg": "line1\nline2\ttabbed"}, got)
}

func TestDecodeDelimiterOverride(t *testing.T) {
	t.Parallel()

	got, err := toon.Unmarshal("data[3|]: 1|2|3")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"data": []any{int64(1), int64(2), int64(3)}}, got)
}

func TestDecodeStrictRejectsExtraRows(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinLF(
		"items[1]{id}:",
		"  1",
		"  2",
	)

	_, err := toon.Decode(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, toon.ErrExtraRowsAfterDeclaredLength)
}

func TestDecodeStrictRejectsBlankLineInsideArray(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinLF(
		"items[2]{id}:",
		"  1",
		"",
		"  2",
	)

	_, err := toon.Decode(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, toon.ErrBlankLineInsideArray)
}

func TestRoundTripEncodeDecode(t *testing.T) {
	t.Parallel()

	original := map[string]any{
		"name": "Alice",
		"age":  int64(30),
		"tags": []any{"admin", "user"},
		"address": map[string]any{
			"city": "Springfield",
		},
		"scores": []any{
			map[string]any{"subject": "math", "value": int64(95)},
			map[string]any{"subject": "art", "value": int64(88)},
		},
	}

	text, err := toon.Marshal(original)
	require.NoError(t, err)

	got, err := toon.Unmarshal(text)
	require.NoError(t, err)

	assert.Equal(t, original, got)
}
