// Package parser provides the backtracking primitives the redex grammar is
// built from: an immutable cursor over the source text, soft and committing
// literal matchers, identifier scanning, speculative guards and ordered
// choice.
//
// Every combinator is a pure function from a State to a new State. A failed
// branch simply discards the State it derived, so backtracking never has to
// undo anything.
package parser

import (
	"strings"
	"unicode/utf8"
)

// State is a view of the full source text at a byte offset. It is passed and
// returned by value; combinators never mutate the text.
type State struct {
	Code  string
	Index int
}

// NewState returns a State at the start of code.
func NewState(code string) State {
	return State{Code: code}
}

type (
	// Pred speculatively checks whether a construct begins at the current
	// position. It must be cheap and must not error.
	Pred func(State) (State, bool)

	// Parser consumes input and produces a T, or fails with an Error.
	Parser[T any] func(State) (State, T, error)

	// Choice is a Parser that can also report its construct as absent
	// without consuming input or failing.
	Choice[T any] func(State) (State, T, bool, error)
)

// Skip advances past insignificant characters: whitespace and // line
// comments. All lookahead predicates operate on the next significant
// character.
func Skip(st State) State {
	code, i := st.Code, st.Index
	for i < len(code) {
		switch c := code[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '/' && i+1 < len(code) && code[i+1] == '/':
			for i < len(code) && code[i] != '\n' {
				i++
			}
		default:
			return State{Code: code, Index: i}
		}
	}
	return State{Code: code, Index: i}
}

// Head returns the rune at the current offset without advancing. It reports
// false at end of input.
func Head(st State) (rune, bool) {
	if st.Index >= len(st.Code) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(st.Code[st.Index:])
	return r, true
}

// Tail returns the state advanced past the rune at the current offset.
func Tail(st State) State {
	if st.Index >= len(st.Code) {
		return st
	}
	_, w := utf8.DecodeRuneInString(st.Code[st.Index:])
	return State{Code: st.Code, Index: st.Index + w}
}

// GetChar skips insignificant characters, then returns the next rune and the
// state advanced past it. At end of input the rune is 0.
func GetChar(st State) (State, rune) {
	st = Skip(st)
	r, ok := Head(st)
	if !ok {
		return st, 0
	}
	return Tail(st), r
}

// Text matches text after skipping insignificant characters. On a match the
// returned state sits past the text; otherwise the input state is returned
// untouched. It never partially consumes.
func Text(text string, st State) (State, bool) {
	nst := Skip(st)
	if !strings.HasPrefix(nst.Code[nst.Index:], text) {
		return st, false
	}
	nst.Index += len(text)
	return nst, true
}

// TextParser returns a Pred matching the literal text.
func TextParser(text string) Pred {
	return func(st State) (State, bool) {
		return Text(text, st)
	}
}

// Consume is the committing form of Text: failure is an error rather than a
// non-match.
func Consume(text string, st State) (State, error) {
	nst, ok := Text(text, st)
	if !ok {
		return st, Expected(text, Skip(st))
	}
	return nst, nil
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '.' || c == '$'
}

// Name reads the maximal run of identifier characters (letters, digits, '_',
// '.', '$') at the current position. The run may be empty.
func Name(st State) (State, string) {
	st = Skip(st)
	i := st.Index
	for i < len(st.Code) && isNameChar(st.Code[i]) {
		i++
	}
	return State{Code: st.Code, Index: i}, st.Code[st.Index:i]
}

// Name1 is the strict form of Name, requiring at least one character.
func Name1(st State) (State, string, error) {
	nst, name := Name(st)
	if name == "" {
		return st, "", Expected("name", Skip(st))
	}
	return nst, name, nil
}

// Guard attempts body only if pred accepts the (skipped) current position.
// When pred rejects, the construct is reported absent and no input is
// consumed. Once pred accepts, errors raised by body are final.
func Guard[T any](pred Pred, body Parser[T], st State) (State, T, bool, error) {
	st = Skip(st)
	if _, ok := pred(st); !ok {
		var zero T
		return st, zero, false, nil
	}
	nst, v, err := body(st)
	if err != nil {
		var zero T
		return nst, zero, false, err
	}
	return nst, v, true, nil
}

// Grammar tries each choice in order and returns the first present result.
// If every choice reports absence, it fails expecting name at the current
// position. The order of choices is part of the grammar.
func Grammar[T any](name string, choices []Choice[T], st State) (State, T, error) {
	for _, choice := range choices {
		nst, v, ok, err := choice(st)
		if err != nil {
			var zero T
			return nst, zero, err
		}
		if ok {
			return nst, v, nil
		}
	}
	var zero T
	return st, zero, Expected(name, st)
}

// Until applies elem repeatedly, checking terminator before each iteration
// and consuming it once it matches.
func Until[T any](terminator Pred, elem Parser[T], st State) (State, []T, error) {
	var elems []T
	for {
		if nst, done := terminator(st); done {
			return nst, elems, nil
		}
		nst, v, err := elem(st)
		if err != nil {
			return nst, nil, err
		}
		elems = append(elems, v)
		st = nst
	}
}

// List parses open, then elements separated by sep until end, and folds the
// elements into a single value.
func List[A, B any](open, sep, end Pred, elem Parser[A], fold func([]A) B, st State) (State, B, error) {
	var zero B
	nst, ok := open(st)
	if !ok {
		return st, zero, Expected("list", Skip(st))
	}
	st = nst
	var elems []A
	for {
		if nst, done := end(st); done {
			st = nst
			break
		}
		nst, v, err := elem(st)
		if err != nil {
			return nst, zero, err
		}
		nst, _ = sep(nst)
		elems = append(elems, v)
		st = nst
	}
	return st, fold(elems), nil
}

// Maybe attempts p, reporting absence and restoring the input state when p
// fails instead of surfacing its error.
func Maybe[T any](p Parser[T], st State) (State, T, bool) {
	nst, v, err := p(st)
	if err != nil {
		var zero T
		return st, zero, false
	}
	return nst, v, true
}

// Done skips insignificant characters and reports whether the end of input
// has been reached.
func Done(st State) (State, bool) {
	st = Skip(st)
	return st, st.Index >= len(st.Code)
}

// Read runs p over code and returns its value.
func Read[T any](p Parser[T], code string) (T, error) {
	_, v, err := p(NewState(code))
	return v, err
}
