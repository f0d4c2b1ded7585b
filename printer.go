package redex

import (
	"bytes"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// printer renders terms back to surface syntax into a single growable
// buffer, so building the output is linear in its length.
type printer struct {
	bytes.Buffer
}

func render(t Term) string {
	var p printer
	p.term(t)
	return p.String()
}

func (p *printer) term(t Term) {
	switch t := t.(type) {
	case *Var:
		p.WriteString(t.Name)

	case *Dup:
		p.WriteString("dup ")
		p.WriteString(t.Nam0)
		p.WriteByte(' ')
		p.WriteString(t.Nam1)
		p.WriteString(" = ")
		p.term(t.Expr)
		p.WriteString("; ")
		p.term(t.Body)

	case *Let:
		p.WriteString("let ")
		p.WriteString(t.Name)
		p.WriteString(" = ")
		p.term(t.Expr)
		p.WriteString("; ")
		p.term(t.Body)

	case *Lam:
		p.WriteString("λ")
		p.WriteString(t.Name)
		p.WriteByte(' ')
		p.term(t.Body)

	case *App:
		// Recover the flat spine from the left-nested App chain; nested
		// binary applications must not print as nested parens.
		var args []Term
		expr := Term(t)
		for {
			app, ok := expr.(*App)
			if !ok {
				break
			}
			args = append(args, app.Argm)
			expr = app.Func
		}
		p.WriteByte('(')
		p.term(expr)
		for i := len(args) - 1; i >= 0; i-- {
			p.WriteByte(' ')
			p.term(args[i])
		}
		p.WriteByte(')')

	case *Ctr:
		if p.strSugar(t) || p.lstSugar(t) {
			return
		}
		p.WriteByte('(')
		p.WriteString(t.Name)
		for _, argm := range t.Args {
			p.WriteByte(' ')
			p.term(argm)
		}
		p.WriteByte(')')

	case *Num:
		p.WriteString(strconv.FormatUint(t.Numb, 10))

	case *Op2:
		p.WriteByte('(')
		p.WriteString(t.Oper.String())
		p.WriteByte(' ')
		p.term(t.Val0)
		p.WriteByte(' ')
		p.term(t.Val1)
		p.WriteByte(')')
	}
}

// strSugar writes t as a string literal if it is exactly a chain of binary
// StrCons constructors over valid code points, terminated by a nullary
// StrNil. Any deviation at any depth leaves the buffer untouched so the
// whole subtree falls back to plain constructor printing.
func (p *printer) strSugar(t *Ctr) bool {
	var chars []rune
	node := Term(t)
	for {
		ctr, ok := node.(*Ctr)
		if !ok {
			return false
		}
		if ctr.Name == "StrCons" && len(ctr.Args) == 2 {
			numb, ok := ctr.Args[0].(*Num)
			if !ok || numb.Numb > unicode.MaxRune || !utf8.ValidRune(rune(numb.Numb)) {
				return false
			}
			chars = append(chars, rune(numb.Numb))
			node = ctr.Args[1]
			continue
		}
		if ctr.Name == "StrNil" && len(ctr.Args) == 0 {
			p.WriteByte('"')
			for _, c := range chars {
				p.WriteRune(c)
			}
			p.WriteByte('"')
			return true
		}
		return false
	}
}

// lstSugar writes t as a list literal if it is exactly a chain of binary
// Cons constructors terminated by a nullary Nil. The chain is validated in
// full before anything is written.
func (p *printer) lstSugar(t *Ctr) bool {
	var elems []Term
	node := Term(t)
	for {
		ctr, ok := node.(*Ctr)
		if !ok {
			return false
		}
		if ctr.Name == "Cons" && len(ctr.Args) == 2 {
			elems = append(elems, ctr.Args[0])
			node = ctr.Args[1]
			continue
		}
		if ctr.Name == "Nil" && len(ctr.Args) == 0 {
			p.WriteByte('[')
			for i, elem := range elems {
				if i > 0 {
					p.WriteString(", ")
				}
				p.term(elem)
			}
			p.WriteByte(']')
			return true
		}
		return false
	}
}

func (t *Var) String() string { return render(t) }
func (t *Dup) String() string { return render(t) }
func (t *Let) String() string { return render(t) }
func (t *Lam) String() string { return render(t) }
func (t *App) String() string { return render(t) }
func (t *Ctr) String() string { return render(t) }
func (t *Num) String() string { return render(t) }
func (t *Op2) String() string { return render(t) }
