package redex

import "strings"

// Term is a node in the parsed expression tree. Terms are built bottom-up by
// the parser and immutable afterwards; children are uniquely owned and never
// form cycles. No scope information is attached: names are raw strings and
// binding resolution is the consumer's concern.
type Term interface {
	// Stringer renders the term back to surface syntax, re-sugaring
	// list/string shaped constructor chains.
	String() string
	isTerm()
}

// Var references a name. It is not resolved to a binding site by this layer.
type Var struct {
	Name string
}

// Dup binds two fresh names from one expression, scoped over Body.
type Dup struct {
	Nam0 string
	Nam1 string
	Expr Term
	Body Term
}

// Let binds a single name, scoped over Body.
type Let struct {
	Name string
	Expr Term
	Body Term
}

// Lam is a single-parameter abstraction.
type Lam struct {
	Name string
	Body Term
}

// App is a binary application. N-ary applications in the surface syntax are
// represented as left-nested App spines.
type App struct {
	Func Term
	Argm Term
}

// Ctr applies a named constructor to an ordered argument sequence. Arity is
// whatever was written; it is not checked here.
type Ctr struct {
	Name string
	Args []Term
}

// Num is an unsigned 64-bit integer literal.
type Num struct {
	Numb uint64
}

// Op2 applies one of the sixteen primitive binary operators.
type Op2 struct {
	Oper Oper
	Val0 Term
	Val1 Term
}

func (*Var) isTerm() {}
func (*Dup) isTerm() {}
func (*Let) isTerm() {}
func (*Lam) isTerm() {}
func (*App) isTerm() {}
func (*Ctr) isTerm() {}
func (*Num) isTerm() {}
func (*Op2) isTerm() {}

// Oper is a primitive binary operator.
type Oper int

const (
	Add Oper = iota
	Sub
	Mul
	Div
	Mod
	And
	Or
	Xor
	Shl
	Shr
	Lte
	Ltn
	Eql
	Gte
	Gtn
	Neq
)

var operSymbols = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Mod: "%",
	And: "&",
	Or:  "|",
	Xor: "^",
	Shl: "<<",
	Shr: ">>",
	Lte: "<=",
	Ltn: "<",
	Eql: "==",
	Gte: ">=",
	Gtn: ">",
	Neq: "!=",
}

// String returns the operator's canonical symbol, as used by both the
// grammar and the printer.
func (o Oper) String() string {
	return operSymbols[o]
}

// Rule is a single rewrite definition "lhs = rhs".
type Rule struct {
	LHS Term
	RHS Term
}

// File is an ordered sequence of rules. Order is significant: it is the
// textual definition order, which downstream consumers rely on.
type File struct {
	Rules []Rule
}

func (r Rule) String() string {
	return r.LHS.String() + " = " + r.RHS.String()
}

func (f *File) String() string {
	rules := make([]string, len(f.Rules))
	for i, r := range f.Rules {
		rules[i] = r.String()
	}
	return strings.Join(rules, "\n")
}
