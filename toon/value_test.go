package toon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/toon"
)

func TestFloatCanonicalization(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		in   float64
		want toon.Value
	}{
		"negative zero collapses to zero": {
			in:   math.Copysign(0, -1),
			want: toon.Float(0),
		},
		"NaN collapses to null": {
			in:   math.NaN(),
			want: toon.Null(),
		},
		"positive infinity collapses to null": {
			in:   math.Inf(1),
			want: toon.Null(),
		},
		"negative infinity collapses to null": {
			in:   math.Inf(-1),
			want: toon.Null(),
		},
		"ordinary value passes through": {
			in:   3.14,
			want: toon.Float(3.14),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := toon.Float(tc.in)
			assert.True(t, got.Equal(tc.want), "got %+v, want %+v", got, tc.want)
		})
	}
}

func TestValueEqualCrossesIntFloat(t *testing.T) {
	t.Parallel()

	assert.True(t, toon.Int(1).Equal(toon.Float(1.0)))
	assert.True(t, toon.Float(1.0).Equal(toon.Int(1)))
	assert.False(t, toon.Int(1).Equal(toon.Float(1.5)))
	assert.False(t, toon.Int(1).Equal(toon.String("1")))
}

func TestValueEqualSequencesAndMappings(t *testing.T) {
	t.Parallel()

	a := toon.Sequence(toon.Int(1), toon.String("x"))
	b := toon.Sequence(toon.Int(1), toon.String("x"))
	c := toon.Sequence(toon.Int(1), toon.String("y"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	m1 := toon.NewMapping()
	m1.Set("a", toon.Int(1))
	m1.Set("b", toon.Int(2))

	m2 := toon.NewMapping()
	m2.Set("a", toon.Int(1))
	m2.Set("b", toon.Int(2))

	assert.True(t, toon.MappingValue(m1).Equal(toon.MappingValue(m2)))
}

func TestMappingPreservesInsertionOrderAndUpdates(t *testing.T) {
	t.Parallel()

	m := toon.NewMapping()
	m.Set("z", toon.Int(1))
	m.Set("a", toon.Int(2))
	m.Set("z", toon.Int(3))

	assert.Equal(t, []string{"z", "a"}, m.Keys())

	v, ok := m.Get("z")
	assert.True(t, ok)
	assert.Equal(t, int64(3), v.Int())

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestIsPrimitive(t *testing.T) {
	t.Parallel()

	assert.True(t, toon.Null().IsPrimitive())
	assert.True(t, toon.Bool(true).IsPrimitive())
	assert.True(t, toon.Int(1).IsPrimitive())
	assert.True(t, toon.Float(1).IsPrimitive())
	assert.True(t, toon.String("s").IsPrimitive())
	assert.False(t, toon.Sequence().IsPrimitive())
	assert.False(t, toon.MappingValue(toon.NewMapping()).IsPrimitive())
}
