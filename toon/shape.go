package toon

// arrayShape is the result of classifying a non-empty sequence for
// encoding.
type arrayShape uint8

const (
	shapeInline arrayShape = iota
	shapeTabular
	shapeExpanded
)

// classifyArray decides how to encode a non-empty sequence. For
// shapeTabular it also returns the reference field list (the ordered
// keys of the first element).
func classifyArray(items []Value) (arrayShape, []string) {
	if allPrimitive(items) {
		return shapeInline, nil
	}

	if fields, ok := tabularFields(items); ok {
		return shapeTabular, fields
	}

	return shapeExpanded, nil
}

func allPrimitive(items []Value) bool {
	for _, v := range items {
		if !v.IsPrimitive() {
			return false
		}
	}

	return true
}

// tabularFields reports whether items is an array of mappings sharing an
// identical key set, every value a primitive. The ordered
// key list of the first element is the reference; later elements may
// list their keys in any order but must contain exactly that set.
func tabularFields(items []Value) ([]string, bool) {
	if len(items) == 0 {
		return nil, false
	}

	first := items[0]
	if first.Kind() != KindMapping || first.Mapping().Len() == 0 {
		return nil, false
	}

	fields := first.Mapping().Keys()
	if !mappingIsAllPrimitive(first.Mapping()) {
		return nil, false
	}

	for _, v := range items[1:] {
		if v.Kind() != KindMapping {
			return nil, false
		}

		m := v.Mapping()
		if m.Len() != len(fields) {
			return nil, false
		}

		for _, key := range fields {
			val, ok := m.Get(key)
			if !ok || !val.IsPrimitive() {
				return nil, false
			}
		}
	}

	return fields, true
}

func mappingIsAllPrimitive(m *Mapping) bool {
	for _, p := range m.Pairs() {
		if !p.Value.IsPrimitive() {
			return false
		}
	}

	return true
}
