// Package parser turns textual equations like "sin(t) + t^2 / τ" into
// evaluable expression trees.
//
// The grammar has three precedence levels: additive (+ -) and
// multiplicative (* /) are left associative, exponential (^) is right
// associative. On top of that come unary minus at the additive level,
// parenthesized subexpressions, single-letter variables, the constants π
// and τ, and a fixed set of named unary functions applied to a
// parenthesized argument.
package parser

import (
	"math"

	"github.com/pkg/errors"
)

// errParse is the single opaque parse failure: position information isn't
// useful for the short equations this package handles.
var errParse = errors.New("malformed equation")

type precedence int

const (
	precAdditive precedence = iota
	precMultiplicative
	precExponential
)

type parser struct {
	tokens []token
	pos    int
}

// Parse converts an equation string into an expression. Lexical failures
// name the offending symbol; syntactic failures are reported as a single
// opaque error with no partial result.
func Parse(input string) (Expr, error) {
	tokens, err := scan(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	expr, err := p.parseBinary(precAdditive)
	if err != nil {
		return nil, err
	}
	if !p.at(tokenEnd) {
		return nil, errParse
	}
	return expr, nil
}

func (p *parser) at(kind tokenKind) bool {
	return p.tokens[p.pos].kind == kind
}

// eat advances past the current token if it has the given kind.
func (p *parser) eat(kind tokenKind) bool {
	if !p.at(kind) {
		return false
	}
	p.pos++
	return true
}

// parseBinary parses a chain of operators at one precedence level, its
// operands parsed at the next level up.
func (p *parser) parseBinary(prec precedence) (Expr, error) {
	var lhs Expr
	var err error

	// Unary minus binds at the additive level only, and only before the
	// head operand: "-a - b" parses, "a - -b" does not.
	if prec == precAdditive && p.eat(tokenSub) {
		operand, err := p.parseOperand(prec)
		if err != nil {
			return nil, err
		}
		lhs = negate{operand: operand}
	} else {
		lhs, err = p.parseOperand(prec)
		if err != nil {
			return nil, err
		}
	}

	if prec == precExponential {
		// Right-associative: recurse at the same level.
		if p.eat(tokenExp) {
			rhs, err := p.parseBinary(prec)
			if err != nil {
				return nil, err
			}
			return binary{op: opExp, lhs: lhs, rhs: rhs}, nil
		}
		return lhs, nil
	}

	for {
		op, ok := p.binOp(prec)
		if !ok {
			return lhs, nil
		}
		rhs, err := p.parseOperand(prec)
		if err != nil {
			return nil, err
		}
		lhs = binary{op: op, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseOperand(prec precedence) (Expr, error) {
	if prec == precExponential {
		return p.parseTerm()
	}
	return p.parseBinary(prec + 1)
}

// binOp eats and returns an operator of the given precedence.
func (p *parser) binOp(prec precedence) (binOp, bool) {
	type entry struct {
		kind tokenKind
		op   binOp
	}
	var ops []entry
	switch prec {
	case precAdditive:
		ops = []entry{{tokenAdd, opAdd}, {tokenSub, opSub}}
	case precMultiplicative:
		ops = []entry{{tokenMul, opMul}, {tokenDiv, opDiv}}
	case precExponential:
		ops = []entry{{tokenExp, opExp}}
	}
	for _, e := range ops {
		if p.eat(e.kind) {
			return e.op, true
		}
	}
	return 0, false
}

// parseTerm disambiguates parenthesized expression, function call, variable,
// and literal by trial, restoring the cursor between alternatives.
func (p *parser) parseTerm() (Expr, error) {
	save := p.pos

	if p.eat(tokenOpenParen) {
		expr, err := p.parseBinary(precAdditive)
		if err == nil && p.eat(tokenCloseParen) {
			return expr, nil
		}
		return nil, errParse
	}

	if expr, err := p.parseCall(); err == nil {
		return expr, nil
	}
	p.pos = save

	if expr, err := p.parseVariable(); err == nil {
		return expr, nil
	}
	p.pos = save

	return p.parseValue()
}

// parseCall parses a named function applied to a parenthesized argument.
func (p *parser) parseCall() (Expr, error) {
	if !p.at(tokenName) {
		return nil, errParse
	}
	name := p.tokens[p.pos].text
	fn, ok := functions[name]
	if !ok {
		return nil, errParse
	}
	p.pos++
	if !p.eat(tokenOpenParen) {
		return nil, errParse
	}
	arg, err := p.parseBinary(precAdditive)
	if err != nil {
		return nil, err
	}
	if !p.eat(tokenCloseParen) {
		return nil, errParse
	}
	return call{name: name, fn: fn, arg: arg}, nil
}

// parseVariable parses a single-letter variable name.
func (p *parser) parseVariable() (Expr, error) {
	if !p.at(tokenName) {
		return nil, errParse
	}
	name := []rune(p.tokens[p.pos].text)
	if len(name) != 1 || name[0] < 'a' || name[0] > 'z' {
		return nil, errParse
	}
	p.pos++
	return variable(name[0]), nil
}

// parseValue parses a numeric literal or a reserved constant.
func (p *parser) parseValue() (Expr, error) {
	tok := p.tokens[p.pos]
	switch {
	case tok.kind == tokenNumber:
		p.pos++
		return number(tok.value), nil
	case tok.kind == tokenName && tok.text == "π":
		p.pos++
		return number(math.Pi), nil
	case tok.kind == tokenName && tok.text == "τ":
		p.pos++
		return number(2 * math.Pi), nil
	}
	return nil, errParse
}
