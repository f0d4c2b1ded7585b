package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redex-lang/redex/parser"
)

func TestSkip(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		index int
	}{
		{"Empty", "", 0},
		{"Whitespace", " \t\r\n x", 5},
		{"LineComment", "// note\nx", 8},
		{"CommentAtEOF", "// note", 7},
		{"Significant", "x  ", 0},
		{"SlashAlone", "/x", 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			st := parser.Skip(parser.NewState(test.code))
			require.Equal(t, test.index, st.Index)
		})
	}
}

func TestHeadTail(t *testing.T) {
	st := parser.NewState("λx")
	r, ok := parser.Head(st)
	require.True(t, ok)
	require.Equal(t, 'λ', r)

	st = parser.Tail(st)
	r, ok = parser.Head(st)
	require.True(t, ok)
	require.Equal(t, 'x', r)

	st = parser.Tail(st)
	_, ok = parser.Head(st)
	require.False(t, ok)
	require.Equal(t, st, parser.Tail(st))
}

func TestGetChar(t *testing.T) {
	st, r := parser.GetChar(parser.NewState("  ab"))
	require.Equal(t, 'a', r)
	require.Equal(t, 3, st.Index)

	_, r = parser.GetChar(parser.NewState("  "))
	require.Equal(t, rune(0), r)
}

func TestText(t *testing.T) {
	st, ok := parser.Text("ab", parser.NewState("  abc"))
	require.True(t, ok)
	require.Equal(t, 4, st.Index)

	// A non-match must not consume anything, not even whitespace.
	st, ok = parser.Text("ab", parser.NewState("  axc"))
	require.False(t, ok)
	require.Equal(t, 0, st.Index)
}

func TestConsume(t *testing.T) {
	st, err := parser.Consume("=", parser.NewState(" = 1"))
	require.NoError(t, err)
	require.Equal(t, 2, st.Index)

	_, err = parser.Consume("=", parser.NewState(" x"))
	require.EqualError(t, err, "1:2: expected =")
	perr := err.(*parser.Error)
	require.Equal(t, "=", perr.Expected)
	require.Equal(t, 1, perr.Pos.Offset)
}

func TestName(t *testing.T) {
	st, name := parser.Name(parser.NewState("  Foo.bar_1$ x"))
	require.Equal(t, "Foo.bar_1$", name)
	require.Equal(t, 12, st.Index)

	_, name = parser.Name(parser.NewState("(x)"))
	require.Equal(t, "", name)

	_, name, err := parser.Name1(parser.NewState("ok"))
	require.NoError(t, err)
	require.Equal(t, "ok", name)

	_, _, err = parser.Name1(parser.NewState(" ("))
	require.EqualError(t, err, "1:2: expected name")
}

func word(st parser.State) (parser.State, string, error) {
	return parser.Name1(st)
}

func TestGuard(t *testing.T) {
	// Rejected predicate: absent, nothing significant consumed.
	st, _, ok, err := parser.Guard[string](parser.TextParser("no"), word, parser.NewState("yes"))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, st.Index)

	// Accepted predicate: the body runs from the same position.
	_, got, ok, err := parser.Guard[string](parser.TextParser("yes"), word, parser.NewState(" yes"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "yes", got)

	// An error after the predicate accepted is not suppressed.
	body := func(st parser.State) (parser.State, string, error) {
		st, err := parser.Consume("!", st)
		return st, "", err
	}
	_, _, _, err = parser.Guard[string](parser.TextParser("yes"), body, parser.NewState("yes"))
	require.EqualError(t, err, "1:1: expected !")
}

func choice(match, value string) parser.Choice[string] {
	return func(st parser.State) (parser.State, string, bool, error) {
		nst, ok := parser.Text(match, st)
		if !ok {
			return st, "", false, nil
		}
		return nst, value, true, nil
	}
}

func TestGrammar(t *testing.T) {
	choices := []parser.Choice[string]{
		choice("ab", "first"),
		choice("a", "second"),
	}

	// Ordered choice takes the first matching alternative.
	_, got, err := parser.Grammar("thing", choices, parser.NewState("ab"))
	require.NoError(t, err)
	require.Equal(t, "first", got)

	_, got, err = parser.Grammar("thing", choices, parser.NewState("ax"))
	require.NoError(t, err)
	require.Equal(t, "second", got)

	_, _, err = parser.Grammar("thing", choices, parser.NewState("zz"))
	require.EqualError(t, err, "1:1: expected thing")
}

func TestUntil(t *testing.T) {
	st, names, err := parser.Until[string](parser.TextParser("]"), word, parser.NewState("a b c ] rest"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, names)
	require.Equal(t, 7, st.Index)

	st, names, err = parser.Until[string](parser.TextParser("]"), word, parser.NewState("]"))
	require.NoError(t, err)
	require.Empty(t, names)
	require.Equal(t, 1, st.Index)

	// The element parser's error propagates.
	_, _, err = parser.Until[string](parser.TextParser("]"), word, parser.NewState("a ("))
	require.EqualError(t, err, "1:3: expected name")
}

func TestList(t *testing.T) {
	concat := func(elems []string) string {
		out := ""
		for _, e := range elems {
			out += e
		}
		return out
	}
	st, got, err := parser.List(
		parser.TextParser("("),
		parser.TextParser(","),
		parser.TextParser(")"),
		word,
		concat,
		parser.NewState("(a, b, c) rest"),
	)
	require.NoError(t, err)
	require.Equal(t, "abc", got)
	require.Equal(t, 9, st.Index)

	_, got, err = parser.List(
		parser.TextParser("("),
		parser.TextParser(""),
		parser.TextParser(")"),
		word,
		concat,
		parser.NewState("()"),
	)
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestMaybe(t *testing.T) {
	st, name, ok := parser.Maybe[string](word, parser.NewState(" abc,"))
	require.True(t, ok)
	require.Equal(t, "abc", name)
	require.Equal(t, 4, st.Index)

	// A failed attempt is absorbed and consumes nothing.
	st, _, ok = parser.Maybe[string](word, parser.NewState(" ("))
	require.False(t, ok)
	require.Equal(t, 0, st.Index)
}

func TestDone(t *testing.T) {
	_, done := parser.Done(parser.NewState("  // tail\n"))
	require.True(t, done)

	_, done = parser.Done(parser.NewState("  x"))
	require.False(t, done)
}

func TestErrorPosition(t *testing.T) {
	st := parser.NewState("ab\ncd")
	st.Index = 4
	err := parser.Expected("thing", st).(*parser.Error)
	require.Equal(t, 4, err.Pos.Offset)
	require.Equal(t, 2, err.Pos.Line)
	require.Equal(t, 2, err.Pos.Column)
	require.Equal(t, "2:2: expected thing", err.Error())
}
