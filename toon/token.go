package toon

import (
	"strconv"
	"strings"
)

// parseKeyToken parses a key at the start of content: a quoted string,
// or an unquoted run up to (but not including) a structural character
// that can follow a key (':' or '['). It returns the decoded key and
// the remainder of content starting immediately after the key token.
func parseKeyToken(content string) (key string, rest string, err error) {
	if content == "" {
		return "", "", ErrMissingColon
	}

	if content[0] == '"' {
		closeIdx, ferr := findClosingQuote(content, 0)
		if ferr != nil {
			return "", "", ferr
		}

		key, err = unescapeString(content[1:closeIdx])
		if err != nil {
			return "", "", err
		}

		return key, content[closeIdx+1:], nil
	}

	i := 0
	for i < len(content) && content[i] != ':' && content[i] != '[' {
		i++
	}

	return strings.TrimRight(content[:i], " "), content[i:], nil
}

// findClosingQuote locates the index of the unescaped closing double
// quote in content, given content[start] == '"'. An escaped character
// (backslash followed by anything) is skipped without interpretation —
// unescaping is the token parser's job, not the scanner's.
func findClosingQuote(content string, start int) (int, error) {
	for i := start + 1; i < len(content); i++ {
		switch content[i] {
		case '\\':
			i++
		case '"':
			return i, nil
		}
	}

	return 0, ErrUnterminatedString
}

// decodePrimitiveToken parses a trimmed token as a primitive. A quoted
// token must be fully closed with nothing trailing the closing quote.
// isNumericLiteral governs whether an unquoted token is read as a
// number; anything else, including leading-zero runs like "05", is a
// string.
func decodePrimitiveToken(token string) (Value, error) {
	if token == "" {
		return String(""), nil
	}

	if token[0] == '"' {
		closeIdx, err := findClosingQuote(token, 0)
		if err != nil {
			return Value{}, err
		}

		if closeIdx != len(token)-1 {
			return Value{}, ErrUnexpectedCharactersAfterQuote
		}

		s, err := unescapeString(token[1:closeIdx])
		if err != nil {
			return Value{}, err
		}

		return String(s), nil
	}

	switch token {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "null":
		return Null(), nil
	}

	if isNumericLiteral(token) {
		if !strings.ContainsAny(token, ".eE") {
			if i, err := strconv.ParseInt(token, 10, 64); err == nil {
				return Int(i), nil
			}
		}

		f, _ := strconv.ParseFloat(token, 64)

		return Float(f), nil
	}

	return String(token), nil
}

// looksLikeKeyValue reports whether content contains an unquoted colon
// (or a quoted key immediately followed by a colon), the test the
// decoder driver uses to distinguish a single root primitive line from
// a root mapping. A line that parses as an array
// header also counts — the colon terminating the header still makes it
// a keyed line rather than a bare primitive.
func looksLikeKeyValue(content string) bool {
	if _, _, _, ok, err := tryParseHeader(content); ok && err == nil {
		return true
	}

	_, rest, err := parseKeyToken(content)
	if err != nil {
		return false
	}

	return strings.HasPrefix(rest, ":")
}
