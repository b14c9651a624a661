package grammars

import (
	"strconv"

	"github.com/hcomb/gll"
)

// NumberValue is the Identifiable payload Arithmetic's Expr/Term/Factor
// productions compute: a bare float64, identified by its canonical
// decimal rendering so that e.g. two differently-derived ways of
// reaching the value 4 collapse to one memoised result.
type NumberValue float64

// Identity renders the float in its shortest round-tripping decimal form.
func (n NumberValue) Identity() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Arithmetic builds a left-recursive GLL grammar for the four basic
// arithmetic operators with parenthesised grouping and standard
// precedence:
//
//	Expr   := Expr '+' Term | Expr '-' Term | Term
//	Term   := Term '*' Factor | Term '/' Factor | Factor
//	Factor := Number | '(' Expr ')'
//
// Each level is its own non-terminal precisely so that the grammar is
// unambiguous despite the operators sharing no explicit precedence
// declaration — the "stratified non-terminals" spec's arithmetic
// scenario calls for. The direct left recursion in Expr and Term is
// resolved by the symbol layer's localised-GSS memoisation, not by
// rewriting the grammar to avoid it.
func Arithmetic() (*gll.SymbolCombinator, error) {
	digits, err := gll.Regex(`\d+`, errAt("unexpected end of input"), errAt("expected a number"))
	if err != nil {
		return nil, err
	}
	number := gll.ToSymbol(gll.Map(digits, func(s gll.ParseState) gll.Identifiable {
		v, _ := strconv.ParseFloat(s.Tokens[len(s.Tokens)-1], 64)
		return NumberValue(v)
	}, nil))

	lparen := gll.ToSymbol(gll.Str("(", errAt("unexpected end of input"), errAt("expected '('")))
	rparen := gll.ToSymbol(gll.Str(")", errAt("unexpected end of input"), errAt("expected ')'")))
	plus := gll.ToSymbol(gll.Str("+", errAt("unexpected end of input"), errAt("expected '+'")))
	minus := gll.ToSymbol(gll.Str("-", errAt("unexpected end of input"), errAt("expected '-'")))
	star := gll.ToSymbol(gll.Str("*", errAt("unexpected end of input"), errAt("expected '*'")))
	slash := gll.ToSymbol(gll.Str("/", errAt("unexpected end of input"), errAt("expected '/'")))

	var expr, term, factor *gll.SymbolCombinator

	factor = gll.Lazy(func() *gll.SymbolCombinator {
		group := gll.SymbolChain([]*gll.SymbolCombinator{lparen, expr, rparen}, func(data []gll.Identifiable) gll.Identifiable {
			return data[1]
		})
		return gll.Alternatives(number, group)
	})

	term = gll.Lazy(func() *gll.SymbolCombinator {
		mul := gll.SymbolChain([]*gll.SymbolCombinator{term, star, factor}, binaryOp(func(a, b float64) float64 { return a * b }))
		div := gll.SymbolChain([]*gll.SymbolCombinator{term, slash, factor}, binaryOp(func(a, b float64) float64 { return a / b }))
		return gll.Alternatives(mul, div, factor)
	})

	expr = gll.Lazy(func() *gll.SymbolCombinator {
		add := gll.SymbolChain([]*gll.SymbolCombinator{expr, plus, term}, binaryOp(func(a, b float64) float64 { return a + b }))
		sub := gll.SymbolChain([]*gll.SymbolCombinator{expr, minus, term}, binaryOp(func(a, b float64) float64 { return a - b }))
		return gll.Alternatives(add, sub, term)
	})

	return expr, nil
}

func binaryOp(op func(a, b float64) float64) gll.ChainAction {
	return func(data []gll.Identifiable) gll.Identifiable {
		left := float64(data[0].(NumberValue))
		right := float64(data[2].(NumberValue))
		return NumberValue(op(left, right))
	}
}
