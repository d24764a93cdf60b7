package toon

import "strings"

// parsedLine is one non-blank input line after leading-whitespace
// accounting.
type parsedLine struct {
	raw        string
	indent     int // count of leading spaces
	content    string
	depth      int
	lineNumber int // 1-based
}

// blankLineInfo records a whitespace-only line, tracked separately so
// array-interior blank-line validation can consult it.
type blankLineInfo struct {
	lineNumber int
	indent     int
	depth      int
}

// scanLines splits source into lines and computes each line's
// indentation depth, enforcing strict-mode whitespace discipline. It
// returns the parsed non-blank lines and the blank lines separately.
func scanLines(source string, indentSize int, strict bool) ([]parsedLine, []blankLineInfo, error) {
	if strings.TrimSpace(source) == "" {
		return nil, nil, newDecodeError(ErrEmptyInput, 0, "")
	}

	rawLines := strings.Split(source, "\n")

	var (
		lines  []parsedLine
		blanks []blankLineInfo
	)

	for i, raw := range rawLines {
		lineNumber := i + 1

		indent := 0
		for indent < len(raw) && raw[indent] == ' ' {
			indent++
		}

		content := raw[indent:]

		if strings.TrimSpace(content) == "" {
			depth := indent / indentSize
			blanks = append(blanks, blankLineInfo{lineNumber: lineNumber, indent: indent, depth: depth})

			continue
		}

		if strict {
			wsEnd := 0
			for wsEnd < len(raw) && (raw[wsEnd] == ' ' || raw[wsEnd] == '\t') {
				wsEnd++
			}

			if strings.ContainsRune(raw[:wsEnd], '\t') {
				return nil, nil, newDecodeError(ErrTabInIndentation, lineNumber, "use spaces, not tabs, for indentation")
			}

			if indent > 0 && indent%indentSize != 0 {
				return nil, nil, newDecodeError(
					ErrIndentationNotMultiple, lineNumber,
					"ensure consistent indentation throughout",
				)
			}
		}

		depth := indent / indentSize

		lines = append(lines, parsedLine{
			raw:        raw,
			indent:     indent,
			content:    content,
			depth:      depth,
			lineNumber: lineNumber,
		})
	}

	return lines, blanks, nil
}

// lineCursor walks the parsed, non-blank lines produced by scanLines.
type lineCursor struct {
	lines []parsedLine
	pos   int
}

func newLineCursor(lines []parsedLine) *lineCursor {
	return &lineCursor{lines: lines}
}

func (c *lineCursor) atEnd() bool { return c.pos >= len(c.lines) }

// peek returns the current line without advancing, or nil at end.
func (c *lineCursor) peek() *parsedLine {
	if c.atEnd() {
		return nil
	}

	return &c.lines[c.pos]
}

func (c *lineCursor) advance() { c.pos++ }

// lastLineNumber returns the line number of the most recently consumed
// line, used for error reporting once the cursor has run past the end.
func (c *lineCursor) lastLineNumber() int {
	if c.pos == 0 {
		return 0
	}

	if c.pos-1 < len(c.lines) {
		return c.lines[c.pos-1].lineNumber
	}

	return c.lines[len(c.lines)-1].lineNumber
}
