package toon

import "strconv"

// Lexical predicates. These classify raw token strings and
// drive both quoting decisions during encode and token classification
// during decode.

// isBooleanOrNullLiteral reports whether s is exactly "true", "false",
// or "null".
func isBooleanOrNullLiteral(s string) bool {
	return s == "true" || s == "false" || s == "null"
}

// isNumericLike reports whether s looks like a number for *quoting*
// purposes during encode: it matches the standard numeric grammar, or a
// leading-zero multi-digit run (e.g. "05"), which must be quoted on
// encode even though it is not treated as numeric on decode.
func isNumericLike(s string) bool {
	if s == "" {
		return false
	}

	if matchesNumberGrammar(s) {
		return true
	}

	return matchesLeadingZeroRun(s)
}

// matchesLeadingZeroRun reports whether s is "0" followed by one or more
// additional digits (e.g. "05", "0001"), with no sign and no fraction.
func matchesLeadingZeroRun(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}

	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// matchesNumberGrammar reports whether s matches
// -?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)? exactly (the full string, no
// partial match), without judging leading zeros.
func matchesNumberGrammar(s string) bool {
	i := 0
	n := len(s)

	if i < n && s[i] == '-' {
		i++
	}

	start := i
	for i < n && isDigit(s[i]) {
		i++
	}

	if i == start {
		return false
	}

	if i < n && s[i] == '.' {
		i++

		fracStart := i
		for i < n && isDigit(s[i]) {
			i++
		}

		if i == fracStart {
			return false
		}
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}

		expStart := i
		for i < n && isDigit(s[i]) {
			i++
		}

		if i == expStart {
			return false
		}
	}

	return i == n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isNumericLiteral reports whether token is a strict numeric literal for
// *decoding* purposes: the same grammar as isNumericLike but rejecting
// any leading zero unless the token is exactly "0" or starts "0.". This
// is what makes the unquoted token "05" decode as the string "05"
// rather than the number 5.
func isNumericLiteral(token string) bool {
	if token == "" {
		return false
	}

	unsigned := token
	if unsigned[0] == '-' {
		unsigned = unsigned[1:]
	}

	if len(unsigned) > 1 && unsigned[0] == '0' && unsigned[1] != '.' {
		return false
	}

	if !matchesNumberGrammar(token) {
		return false
	}

	// Guard against parse overflow producing a spurious non-finite value;
	// the grammar above already guarantees a well-formed literal.
	if _, err := strconv.ParseFloat(token, 64); err != nil {
		return false
	}

	return true
}

// isValidUnquotedKey reports whether s matches [A-Za-z_][A-Za-z0-9_.]*.
func isValidUnquotedKey(s string) bool {
	if s == "" {
		return false
	}

	first := s[0]
	if !(first == '_' || (first >= 'A' && first <= 'Z') || (first >= 'a' && first <= 'z')) {
		return false
	}

	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == '_' || c == '.' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || isDigit(c) {
			continue
		}

		return false
	}

	return true
}

// isSafeUnquotedString reports whether s can be written without quotes
// as a primitive, given the active delimiter. It must be
// non-empty, have no leading/trailing whitespace, not be classified as
// a boolean/null/numeric-like literal, contain none of the structural
// characters (colon, brackets, braces, double-quote, backslash, the
// control whitespace escapes, the active delimiter), and not begin with
// a hyphen (which would be read as a list-item marker).
func isSafeUnquotedString(s string, delim Delimiter) bool {
	if s == "" {
		return false
	}

	if isWhitespace(s[0]) || isWhitespace(s[len(s)-1]) {
		return false
	}

	if isBooleanOrNullLiteral(s) || isNumericLike(s) {
		return false
	}

	if s[0] == '-' {
		return false
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ':', '[', ']', '{', '}', '"', '\\', '\n', '\r', '\t':
			return false
		case byte(delim):
			return false
		}
	}

	return true
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
