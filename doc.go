// Package redex is the textual front end for a small term-rewriting
// language: variables, lambda abstraction, application, let and dup binders,
// unsigned integer literals, sixteen primitive binary operators, and
// user-defined constructor applications.
//
// The surface grammar, with whitespace and // comments elided:
//
//	term ::= "let" NAME "=" term ";" term
//	       | "dup" NAME NAME "=" term ";" term
//	       | ("λ"|"@") NAME term
//	       | "(" UPPER_NAME term* ")"
//	       | "(" OPER term term ")"
//	       | "(" term* ")"
//	       | DIGIT+
//	       | "'" CHAR "'"
//	       | ("\"" | "`") CHAR* ("\"" | "`")
//	       | "[" (term ","?)* "]"
//	       | LOWER_NAME
//	rule ::= term "=" term
//	file ::= rule*
//
// ReadTerm, ReadRule and ReadFile parse source text into the Term, Rule and
// File types; printing any of them reproduces the surface syntax, including
// list and string literals for constructor chains of the exact Cons/Nil and
// StrCons/StrNil shapes. The parser is purely syntactic: it performs no
// scope, arity or name resolution, and string and list literals desugar at
// parse time so consumers only ever see constructors.
package redex
