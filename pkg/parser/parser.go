// Package parser implements a hand-written recursive-descent parser for
// the formula grammar of §6.
//
// Grounded on pkg/sexp/parser.go's Parser idiom (a rune slice, an int
// index, Next/Lookahead-style helpers, error()); adapted from that
// S-expression tokeniser to this grammar's infix operators and REL
// table. The grammar layers (equiv/impl/or/and/neg/quant/atom, then
// sum/prod/factor for terms) are each one recursive-descent level, the
// standard shape for a grammar given as a precedence cascade.
package parser

import (
	"unicode"

	"github.com/gokiburi-labs/folprover/pkg/ast"
	"github.com/gokiburi-labs/folprover/pkg/proverr"
)

// Parse parses a complete formula from s, requiring the entire input
// (modulo surrounding whitespace) to be consumed.
func Parse(s string) (ast.Formula, error) {
	p := NewParser(s)

	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if p.pos != len(p.text) {
		return nil, p.errorf("unexpected trailing input")
	}

	return f, nil
}

// Parser represents a parser in the process of parsing a given string
// into a Formula.
type Parser struct {
	text []rune
	pos  int
}

// NewParser constructs a new Parser over text.
func NewParser(text string) *Parser {
	return &Parser{text: []rune(text), pos: 0}
}

func (p *Parser) errorf(msg string) *proverr.InvalidFormulaError {
	return &proverr.InvalidFormulaError{Input: string(p.text), Pos: p.pos, Msg: msg}
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// startsWith reports whether, after skipping whitespace, the upcoming
// text literally begins with tok. For alphabetic tokens ("T", "F") it
// also requires a word boundary afterwards, so a variable named "True"
// does not get mistaken for the constant "T".
func (p *Parser) startsWith(tok string) bool {
	p.skipSpace()

	runes := []rune(tok)
	if p.pos+len(runes) > len(p.text) {
		return false
	}

	for i, r := range runes {
		if p.text[p.pos+i] != r {
			return false
		}
	}

	if unicode.IsLetter(runes[len(runes)-1]) {
		next := p.pos + len(runes)
		if next < len(p.text) && isIdentRune(p.text[next]) {
			return false
		}
	}

	return true
}

// match consumes tok if it is next, reporting whether it did.
func (p *Parser) match(tok string) bool {
	if !p.startsWith(tok) {
		return false
	}

	p.pos += len([]rune(tok))

	return true
}

func (p *Parser) expect(tok string) error {
	if !p.match(tok) {
		return p.errorf("expected " + tok)
	}

	return nil
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (p *Parser) parseIdent() (string, error) {
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.text) && isIdentRune(p.text[p.pos]) {
		p.pos++
	}

	if p.pos == start {
		return "", p.errorf("expected identifier")
	}

	return string(p.text[start:p.pos]), nil
}

// parseFormula parses the "formula" production (equiv, the top level).
func (p *Parser) parseFormula() (ast.Formula, error) {
	return p.parseEquiv()
}

func (p *Parser) parseEquiv() (ast.Formula, error) {
	left, err := p.parseImpl()
	if err != nil {
		return nil, err
	}

	for p.match("<=>") {
		right, err := p.parseImpl()
		if err != nil {
			return nil, err
		}

		left = &ast.Iff{L: left, R: right}
	}

	return left, nil
}

// parseImpl implements right-associative "=>" per §6's grammar note.
func (p *Parser) parseImpl() (ast.Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if p.match("=>") {
		right, err := p.parseImpl()
		if err != nil {
			return nil, err
		}

		return &ast.Imp{L: left, R: right}, nil
	}

	return left, nil
}

func (p *Parser) parseOr() (ast.Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.match("|") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}

		left = &ast.Or{L: left, R: right}
	}

	return left, nil
}

func (p *Parser) parseAnd() (ast.Formula, error) {
	left, err := p.parseNeg()
	if err != nil {
		return nil, err
	}

	for p.match("&") {
		right, err := p.parseNeg()
		if err != nil {
			return nil, err
		}

		left = &ast.And{L: left, R: right}
	}

	return left, nil
}

func (p *Parser) parseNeg() (ast.Formula, error) {
	if p.match("~") {
		inner, err := p.parseNeg()
		if err != nil {
			return nil, err
		}

		return &ast.Not{F: inner}, nil
	}

	return p.parseQuant()
}

func (p *Parser) parseQuant() (ast.Formula, error) {
	switch {
	case p.match("!"):
		v, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		if err := p.expect("."); err != nil {
			return nil, err
		}

		body, err := p.parseNeg()
		if err != nil {
			return nil, err
		}

		return &ast.Forall{Var: v, Body: body}, nil
	case p.match("?"):
		v, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		if err := p.expect("."); err != nil {
			return nil, err
		}

		body, err := p.parseNeg()
		if err != nil {
			return nil, err
		}

		return &ast.Exists{Var: v, Body: body}, nil
	default:
		return p.parseAtom()
	}
}

// parseAtom implements "T" | "F" | term REL term | "(" formula ")". The
// last two alternatives share a leading "(" with the term grammar's own
// "(" term ")" grouping, so a parenthesised formula is disambiguated by
// a bounded trial: attempt the formula reading first, and fall back to
// the relational reading if it does not consume a matching ")".
func (p *Parser) parseAtom() (ast.Formula, error) {
	if p.match("T") {
		return &ast.True{}, nil
	}

	if p.match("F") {
		return &ast.False{}, nil
	}

	if p.startsWith("(") {
		checkpoint := p.pos
		p.pos++ // consume '('

		if f, err := p.parseFormula(); err == nil && p.match(")") {
			return f, nil
		}

		p.pos = checkpoint
	}

	return p.parseRelationalAtom()
}

func (p *Parser) parseRelationalAtom() (ast.Formula, error) {
	left, err := p.parseSum()
	if err != nil {
		return nil, err
	}

	rel, err := p.parseRel()
	if err != nil {
		return nil, err
	}

	right, err := p.parseSum()
	if err != nil {
		return nil, err
	}

	return &ast.AtomF{Atom: ast.NewAtom(rel, left, right)}, nil
}

// parseRel matches the REL table, longest alternative first so "<=" is
// not mistaken for a truncated "<".
func (p *Parser) parseRel() (ast.Rel, error) {
	switch {
	case p.match("<="):
		return ast.Le, nil
	case p.match(">="):
		return ast.Ge, nil
	case p.match("!="):
		return ast.Ne, nil
	case p.match("="):
		return ast.Eq, nil
	case p.match("<"):
		return ast.Lt, nil
	case p.match(">"):
		return ast.Gt, nil
	default:
		return 0, p.errorf("expected a relational operator")
	}
}

func (p *Parser) parseSum() (ast.Term, error) {
	left, err := p.parseProd()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match("+"):
			right, err := p.parseProd()
			if err != nil {
				return nil, err
			}

			left = &ast.Add{L: left, R: right}
		case p.match("-"):
			right, err := p.parseProd()
			if err != nil {
				return nil, err
			}

			left = &ast.Sub{L: left, R: right}
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseProd() (ast.Term, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match("*"):
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}

			left, err = multiplyTerms(left, right)
			if err != nil {
				return nil, p.wrapTermError(err)
			}
		case p.match("/"):
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}

			left, err = divideTerms(left, right)
			if err != nil {
				return nil, p.wrapTermError(err)
			}
		default:
			return left, nil
		}
	}
}

func (p *Parser) wrapTermError(err error) error {
	if _, ok := err.(*proverr.DivisionByZeroError); ok {
		return err
	}

	return p.errorf(err.Error())
}

func (p *Parser) parseFactor() (ast.Term, error) {
	p.skipSpace()

	if p.match("(") {
		t, err := p.parseSum()
		if err != nil {
			return nil, err
		}

		if err := p.expect(")"); err != nil {
			return nil, err
		}

		return t, nil
	}

	if p.pos < len(p.text) && isDigit(p.text[p.pos]) {
		return p.parseNumber()
	}

	if p.pos < len(p.text) && isIdentRune(p.text[p.pos]) {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		return &ast.Var{Name: name}, nil
	}

	return nil, p.errorf("expected a number, identifier or '('")
}

func (p *Parser) parseNumber() (ast.Term, error) {
	start := p.pos
	for p.pos < len(p.text) && isDigit(p.text[p.pos]) {
		p.pos++
	}

	return constFromDigits(string(p.text[start:p.pos])), nil
}
