package toon

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// Normalizer lets a type supply its own TOON representation, the same
// shape as encoding/json's Marshaler. Normalize consults it before
// falling back to reflection.
type Normalizer interface {
	ToTOON() (Value, error)
}

// Normalize converts an arbitrary Go value into the TOON data model.
// nil and nil pointers/interfaces become Null; bool,
// string, and every integer/float kind map onto the matching Value
// constructor (Float canonicalizes -0.0 and non-finite values); a
// time.Time becomes an RFC 3339 String; slices and arrays become
// Sequence; a map with an empty-struct element type (the idiomatic Go
// set, map[K]struct{}) becomes a Sequence of its keys in map iteration
// order, which is non-deterministic; any other
// map becomes a Mapping with keys stringified and sorted for
// determinism, since plain map iteration order is not stable; a struct
// becomes a Mapping via reflection, honoring an optional
// `toon:"name,omitempty"` tag in the same spirit as encoding/json.
// Anything else — func, chan, unsafe pointer, complex — falls back to
// Null so the encoder stays total over every Go value.
func Normalize(v any) (Value, error) {
	return normalizeAny(reflect.ValueOf(v))
}

func normalizeAny(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}

	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case Value:
			return x, nil
		case *Mapping:
			return MappingValue(x), nil
		case time.Time:
			return String(x.UTC().Format(time.RFC3339Nano)), nil
		case Normalizer:
			return x.ToTOON()
		}
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}

		return normalizeAny(rv.Elem())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int(int64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		return normalizeSequence(rv)
	case reflect.Map:
		return normalizeMap(rv)
	case reflect.Struct:
		return normalizeStruct(rv)
	default:
		return Null(), nil
	}
}

func normalizeSequence(rv reflect.Value) (Value, error) {
	n := rv.Len()
	items := make([]Value, n)

	for i := 0; i < n; i++ {
		v, err := normalizeAny(rv.Index(i))
		if err != nil {
			return Value{}, err
		}

		items[i] = v
	}

	return Sequence(items...), nil
}

func normalizeMap(rv reflect.Value) (Value, error) {
	elem := rv.Type().Elem()
	if elem.Kind() == reflect.Struct && elem.NumField() == 0 {
		return normalizeSetMap(rv)
	}

	keys := rv.MapKeys()

	type entry struct {
		key string
		val reflect.Value
	}

	entries := make([]entry, len(keys))

	for i, k := range keys {
		entries[i] = entry{key: fmt.Sprint(k.Interface()), val: rv.MapIndex(k)}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	m := NewMapping()

	for _, e := range entries {
		v, err := normalizeAny(e.val)
		if err != nil {
			return Value{}, err
		}

		m.Set(e.key, v)
	}

	return MappingValue(m), nil
}

func normalizeSetMap(rv reflect.Value) (Value, error) {
	keys := rv.MapKeys()
	items := make([]Value, len(keys))

	for i, k := range keys {
		v, err := normalizeAny(k)
		if err != nil {
			return Value{}, err
		}

		items[i] = v
	}

	return Sequence(items...), nil
}

func normalizeStruct(rv reflect.Value) (Value, error) {
	t := rv.Type()
	m := NewMapping()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}

		name, omitEmpty, skip := parseToonTag(field)
		if skip {
			continue
		}

		fv := rv.Field(i)
		if omitEmpty && isEmptyValue(fv) {
			continue
		}

		v, err := normalizeAny(fv)
		if err != nil {
			return Value{}, err
		}

		m.Set(name, v)
	}

	return MappingValue(m), nil
}

func parseToonTag(field reflect.StructField) (name string, omitEmpty bool, skip bool) {
	name = field.Name

	tag, ok := field.Tag.Lookup("toon")
	if !ok {
		return name, false, false
	}

	parts := strings.Split(tag, ",")
	if parts[0] == "-" && len(parts) == 1 {
		return "", false, true
	}

	if parts[0] != "" {
		name = parts[0]
	}

	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}

	return name, omitEmpty, false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
