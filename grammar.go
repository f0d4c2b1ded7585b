package redex

import (
	"strconv"

	"github.com/redex-lang/redex/parser"
)

// parseTerm dispatches over the surface forms in a fixed order. The order is
// load-bearing: let/dup/ctr/op2/app all overlap on their leading characters
// and are disambiguated by one-or-two character lookahead, with the more
// specific forms tried first.
func parseTerm(st parser.State) (parser.State, Term, error) {
	return parser.Grammar("Term", []parser.Choice[Term]{
		parseLet,
		parseDup,
		parseLam,
		parseCtr,
		parseOp2,
		parseApp,
		parseNum,
		parseChr,
		parseStr,
		parseLst,
		parseVar,
		func(st parser.State) (parser.State, Term, bool, error) {
			// Nothing matched here; leaves the input untouched so the
			// enclosing Grammar reports at the caller's position.
			return st, nil, false, nil
		},
	}, st)
}

func parseLet(st parser.State) (parser.State, Term, bool, error) {
	return parser.Guard(parser.TextParser("let "), func(st parser.State) (parser.State, Term, error) {
		st, err := parser.Consume("let ", st)
		if err != nil {
			return st, nil, err
		}
		st, name, err := parser.Name1(st)
		if err != nil {
			return st, nil, err
		}
		st, err = parser.Consume("=", st)
		if err != nil {
			return st, nil, err
		}
		st, expr, err := parseTerm(st)
		if err != nil {
			return st, nil, err
		}
		st, _ = parser.Text(";", st)
		st, body, err := parseTerm(st)
		if err != nil {
			return st, nil, err
		}
		return st, &Let{Name: name, Expr: expr, Body: body}, nil
	}, st)
}

func parseDup(st parser.State) (parser.State, Term, bool, error) {
	return parser.Guard(parser.TextParser("dup "), func(st parser.State) (parser.State, Term, error) {
		st, err := parser.Consume("dup ", st)
		if err != nil {
			return st, nil, err
		}
		st, nam0, err := parser.Name1(st)
		if err != nil {
			return st, nil, err
		}
		st, nam1, err := parser.Name1(st)
		if err != nil {
			return st, nil, err
		}
		st, err = parser.Consume("=", st)
		if err != nil {
			return st, nil, err
		}
		st, expr, err := parseTerm(st)
		if err != nil {
			return st, nil, err
		}
		st, _ = parser.Text(";", st)
		st, body, err := parseTerm(st)
		if err != nil {
			return st, nil, err
		}
		return st, &Dup{Nam0: nam0, Nam1: nam1, Expr: expr, Body: body}, nil
	}, st)
}

func parseLam(st parser.State) (parser.State, Term, bool, error) {
	symbol := func(st parser.State) (parser.State, bool) {
		if nst, ok := parser.Text("λ", st); ok {
			return nst, true
		}
		return parser.Text("@", st)
	}
	return parser.Guard(symbol, func(st parser.State) (parser.State, Term, error) {
		st, _ = symbol(st)
		st, name := parser.Name(st)
		st, body, err := parseTerm(st)
		if err != nil {
			return st, nil, err
		}
		return st, &Lam{Name: name, Body: body}, nil
	}, st)
}

// parseApp parses a parenthesized, space-separated application spine,
// left-folded into binary App nodes. An empty spine "()" parses as the
// literal zero; downstream code depends on this.
func parseApp(st parser.State) (parser.State, Term, bool, error) {
	return parser.Guard(parser.TextParser("("), func(st parser.State) (parser.State, Term, error) {
		return parser.List(
			parser.TextParser("("),
			parser.TextParser(""),
			parser.TextParser(")"),
			parseTerm,
			func(args []Term) Term {
				if len(args) == 0 {
					return &Num{Numb: 0}
				}
				app := args[0]
				for _, argm := range args[1:] {
					app = &App{Func: app, Argm: argm}
				}
				return app
			},
			st,
		)
	}, st)
}

// parseCtr parses "(Name args)", or a bare upper-case name as a
// zero-argument constructor: the opening paren is optional in the lookahead.
func parseCtr(st parser.State) (parser.State, Term, bool, error) {
	head := func(st parser.State) (parser.State, bool) {
		nst, _ := parser.Text("(", st)
		nst, c := parser.GetChar(nst)
		return nst, c >= 'A' && c <= 'Z'
	}
	return parser.Guard(head, func(st parser.State) (parser.State, Term, error) {
		st, open := parser.Text("(", st)
		st, name, err := parser.Name1(st)
		if err != nil {
			return st, nil, err
		}
		var args []Term
		if open {
			st, args, err = parser.Until(parser.TextParser(")"), parseTerm, st)
			if err != nil {
				return st, nil, err
			}
		}
		return st, &Ctr{Name: name, Args: args}, nil
	}, st)
}

func isOperChar(c rune) bool {
	switch c {
	case '+', '-', '*', '/', '%', '&', '|', '^', '<', '>', '=', '!':
		return true
	}
	return false
}

func operChoice(symbol string, oper Oper) parser.Choice[Oper] {
	return func(st parser.State) (parser.State, Oper, bool, error) {
		nst, ok := parser.Text(symbol, st)
		if !ok {
			return st, 0, false, nil
		}
		return nst, oper, true, nil
	}
}

// parseOper matches the longest operator first, so "<<" is not read as two
// "<" and "<=" is not read as "<" "=".
func parseOper(st parser.State) (parser.State, Oper, error) {
	return parser.Grammar("operator", []parser.Choice[Oper]{
		operChoice("+", Add),
		operChoice("-", Sub),
		operChoice("*", Mul),
		operChoice("/", Div),
		operChoice("%", Mod),
		operChoice("&", And),
		operChoice("|", Or),
		operChoice("^", Xor),
		operChoice("<<", Shl),
		operChoice(">>", Shr),
		operChoice("<=", Lte),
		operChoice("<", Ltn),
		operChoice("==", Eql),
		operChoice(">=", Gte),
		operChoice(">", Gtn),
		operChoice("!=", Neq),
	}, st)
}

func parseOp2(st parser.State) (parser.State, Term, bool, error) {
	head := func(st parser.State) (parser.State, bool) {
		nst, open := parser.Text("(", st)
		if !open {
			return st, false
		}
		nst, c := parser.GetChar(nst)
		return nst, isOperChar(c)
	}
	return parser.Guard(head, func(st parser.State) (parser.State, Term, error) {
		st, _ = parser.Text("(", st)
		st, oper, err := parseOper(st)
		if err != nil {
			return st, nil, err
		}
		st, val0, err := parseTerm(st)
		if err != nil {
			return st, nil, err
		}
		st, val1, err := parseTerm(st)
		if err != nil {
			return st, nil, err
		}
		st, _ = parser.Text(")", st)
		return st, &Op2{Oper: oper, Val0: val0, Val1: val1}, nil
	}, st)
}

func parseNum(st parser.State) (parser.State, Term, bool, error) {
	head := func(st parser.State) (parser.State, bool) {
		nst, c := parser.GetChar(st)
		return nst, c >= '0' && c <= '9'
	}
	return parser.Guard(head, func(st parser.State) (parser.State, Term, error) {
		start := st
		st, digits, err := parser.Name1(st)
		if err != nil {
			return st, nil, err
		}
		numb, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return st, nil, parser.Expected("numeral", parser.Skip(start))
		}
		return st, &Num{Numb: numb}, nil
	}, st)
}

func parseChr(st parser.State) (parser.State, Term, bool, error) {
	head := func(st parser.State) (parser.State, bool) {
		nst, c := parser.GetChar(st)
		return nst, c == '\''
	}
	return parser.Guard(head, func(st parser.State) (parser.State, Term, error) {
		st, _ = parser.Text("'", st)
		c, ok := parser.Head(st)
		if !ok {
			return st, nil, parser.Expected("character", st)
		}
		st = parser.Tail(st)
		st, err := parser.Consume("'", st)
		if err != nil {
			return st, nil, err
		}
		return st, &Num{Numb: uint64(c)}, nil
	}, st)
}

// parseStr reads characters up to the matching delimiter, or to end of
// input, and desugars into a StrCons/StrNil chain. There is no dedicated
// string node: consumers only ever see constructors.
func parseStr(st parser.State) (parser.State, Term, bool, error) {
	head := func(st parser.State) (parser.State, bool) {
		nst, c := parser.GetChar(st)
		return nst, c == '"' || c == '`'
	}
	return parser.Guard(head, func(st parser.State) (parser.State, Term, error) {
		delim, _ := parser.Head(st)
		st = parser.Tail(st)
		var chars []rune
		for {
			c, ok := parser.Head(st)
			if !ok {
				break
			}
			st = parser.Tail(st)
			if c == delim {
				break
			}
			chars = append(chars, c)
		}
		str := Term(&Ctr{Name: "StrNil"})
		for i := len(chars) - 1; i >= 0; i-- {
			str = &Ctr{Name: "StrCons", Args: []Term{&Num{Numb: uint64(chars[i])}, str}}
		}
		return st, str, nil
	}, st)
}

// parseLst desugars "[a, b, c]" into a Cons/Nil chain. Commas between
// elements are optional.
func parseLst(st parser.State) (parser.State, Term, bool, error) {
	head := func(st parser.State) (parser.State, bool) {
		nst, c := parser.GetChar(st)
		return nst, c == '['
	}
	comma := func(st parser.State) (parser.State, string, error) {
		st, err := parser.Consume(",", st)
		return st, ",", err
	}
	return parser.Guard(head, func(st parser.State) (parser.State, Term, error) {
		st, _ = parser.Text("[", st)
		st, elems, err := parser.Until(parser.TextParser("]"), func(st parser.State) (parser.State, Term, error) {
			st, elem, err := parseTerm(st)
			if err != nil {
				return st, nil, err
			}
			st, _, _ = parser.Maybe(comma, st)
			return st, elem, nil
		}, st)
		if err != nil {
			return st, nil, err
		}
		lst := Term(&Ctr{Name: "Nil"})
		for i := len(elems) - 1; i >= 0; i-- {
			lst = &Ctr{Name: "Cons", Args: []Term{elems[i], lst}}
		}
		return st, lst, nil
	}, st)
}

func parseVar(st parser.State) (parser.State, Term, bool, error) {
	head := func(st parser.State) (parser.State, bool) {
		nst, c := parser.GetChar(st)
		return nst, c >= 'a' && c <= 'z' || c == '_' || c == '$'
	}
	return parser.Guard(head, func(st parser.State) (parser.State, Term, error) {
		st, name := parser.Name(st)
		return st, &Var{Name: name}, nil
	}, st)
}

// parseRule parses one "lhs = rhs" definition. When the input at the cursor
// does not begin a rule (no term, or a term not followed by "="), the rule
// is reported absent with nothing consumed, so the file loop can diagnose at
// the definition boundary instead of deep inside a non-rule. A failure past
// that point means a term shape was committed to, and it propagates
// untouched.
func parseRule(st parser.State) (parser.State, *Rule, bool, error) {
	nst, lhs, err := parseTerm(st)
	if err != nil {
		if perr, ok := err.(*parser.Error); ok && perr.Expected == "Term" && perr.Pos.Offset == st.Index {
			return st, nil, false, nil
		}
		return nst, nil, false, err
	}
	if lhs == nil {
		return st, nil, false, nil
	}
	nst, ok := parser.Text("=", nst)
	if !ok {
		return st, nil, false, nil
	}
	nst, rhs, err := parseTerm(nst)
	if err != nil {
		return nst, nil, false, err
	}
	return nst, &Rule{LHS: lhs, RHS: rhs}, true, nil
}

// parseFile parses rules until end of input. A stretch of input that is not
// a rule fails expecting a definition, positioned before the whitespace that
// precedes it.
func parseFile(st parser.State) (parser.State, *File, error) {
	file := &File{}
	for {
		nst, done := parser.Done(st)
		if done {
			return nst, file, nil
		}
		nst, rule, ok, err := parseRule(nst)
		if err != nil {
			return nst, nil, err
		}
		if !ok {
			return st, nil, parser.Expected("a definition", st)
		}
		file.Rules = append(file.Rules, *rule)
		st = nst
	}
}
