package parser

import (
	"strconv"
	"unicode"

	"github.com/pkg/errors"
)

type tokenKind int

const (
	tokenEnd tokenKind = iota
	tokenNumber
	tokenName
	tokenOpenParen
	tokenCloseParen
	tokenAdd
	tokenSub
	tokenMul
	tokenDiv
	tokenExp
)

// token is a lexical unit. text is kept for names; value for numbers.
type token struct {
	kind  tokenKind
	text  string
	value float64
}

// matchableKinds are the kinds a lexeme can resolve to. tokenEnd is special:
// the scanner appends it implicitly.
var matchableKinds = []tokenKind{
	tokenNumber,
	tokenName,
	tokenOpenParen,
	tokenCloseParen,
	tokenAdd,
	tokenSub,
	tokenMul,
	tokenDiv,
	tokenExp,
}

var literalTokens = map[tokenKind]string{
	tokenOpenParen:  "(",
	tokenCloseParen: ")",
	tokenAdd:        "+",
	tokenSub:        "-",
	tokenMul:        "*",
	tokenDiv:        "/",
	tokenExp:        "^",
}

// matches tests whether s is valid text for the kind. With prefix true it
// accepts strings that could still grow into a valid token, which is what
// drives the scanner's longest-match loop.
func matches(kind tokenKind, s []rune, prefix bool) bool {
	if len(s) == 0 {
		return prefix
	}

	if lit, ok := literalTokens[kind]; ok {
		return string(s) == lit
	}

	switch kind {
	case tokenNumber:
		// Digits with at most one decimal point. A trailing point is a
		// valid prefix but not a complete number.
		const (
			integer = iota
			dot
			fractional
		)
		state := integer
		for _, c := range s {
			switch state {
			case integer:
				if c == '.' {
					state = dot
					continue
				}
				if !unicode.IsDigit(c) {
					return false
				}
			case dot:
				if !unicode.IsDigit(c) {
					return false
				}
				state = fractional
			case fractional:
				if !unicode.IsDigit(c) {
					return false
				}
			}
		}
		return prefix || state != dot

	case tokenName:
		for _, c := range s {
			if !(c >= 'a' && c <= 'z' || c == 'π' || c == 'τ') {
				return false
			}
		}
		return true
	}

	return false
}

// scan converts input into tokens by longest-match: each lexeme is extended
// while at least one token kind still accepts it as a prefix, then resolved
// against the survivors. A lexeme matching no kind, or more than one, is a
// lex error.
func scan(input string) ([]token, error) {
	var tokens []token
	rs := []rune(input)

	for i := 0; i < len(rs); {
		if unicode.IsSpace(rs[i]) {
			i++
			continue
		}

		var lexeme []rune
		candidates := matchableKinds
		for i < len(rs) && !unicode.IsSpace(rs[i]) {
			next := append(lexeme[:len(lexeme):len(lexeme)], rs[i])
			var still []tokenKind
			for _, kind := range candidates {
				if matches(kind, next, true) {
					still = append(still, kind)
				}
			}
			if len(still) == 0 {
				if len(lexeme) == 0 {
					// Consume the offending rune so the error names it.
					lexeme = next
					i++
				}
				break
			}
			lexeme = next
			candidates = still
			i++
		}

		var resolved []tokenKind
		for _, kind := range candidates {
			if matches(kind, lexeme, false) {
				resolved = append(resolved, kind)
			}
		}
		switch len(resolved) {
		case 0:
			return nil, errors.Errorf("unrecognised symbol %q", string(lexeme))
		case 1:
		default:
			return nil, errors.Errorf("ambiguous symbol %q", string(lexeme))
		}

		tok := token{kind: resolved[0], text: string(lexeme)}
		if tok.kind == tokenNumber {
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "bad number %q", tok.text)
			}
			tok.value = v
		}
		tokens = append(tokens, tok)
	}

	return append(tokens, token{kind: tokenEnd}), nil
}
