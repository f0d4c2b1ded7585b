package redex

import "github.com/redex-lang/redex/parser"

// ReadTerm parses a single term. The first failed expectation aborts the
// whole read; there is no partial result.
func ReadTerm(code string) (Term, error) {
	return parser.Read(parseTerm, code)
}

// ReadRule parses a single "lhs = rhs" definition. It returns nil without an
// error when code does not begin a rule.
func ReadRule(code string) (*Rule, error) {
	_, rule, ok, err := parseRule(parser.NewState(code))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return rule, nil
}

// ReadFile parses an ordered sequence of rules.
func ReadFile(code string) (*File, error) {
	return parser.Read(parseFile, code)
}
