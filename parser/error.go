package parser

import "fmt"

// Position is a location in the source text. Offset is the byte offset the
// failure was detected at; Line and Column are derived from it for display.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error reports a failed expectation while parsing. There is a single error
// kind: the parser expected a construct and did not find it.
type Error struct {
	Expected string
	Pos      Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: expected %s", e.Pos, e.Expected)
}

// Expected fails expecting what at the state's current offset.
func Expected(what string, st State) error {
	return &Error{Expected: what, Pos: locate(st.Code, st.Index)}
}

func locate(code string, offset int) Position {
	if offset > len(code) {
		offset = len(code)
	}
	line, column := 1, 1
	for _, c := range []byte(code[:offset]) {
		if c == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return Position{Offset: offset, Line: line, Column: column}
}
