package tree

import (
	"strings"

	"github.com/sanjibnarzary/svgling/pkg/errors"
)

// Parse reads bracket notation into a lisp-style []any tree. Both round
// and square brackets delimit constituents, and the first item inside a
// constituent is its label:
//
//	(S (NP the dog) (VP barks))
//	[S [NP the dog] [VP barks]]
//
// Atoms are whitespace-delimited; a literal `\n` inside an atom becomes a
// newline, which produces multi-line leaf labels. A bare atom with no
// brackets parses as a single leaf.
func Parse(s string) (any, error) {
	p := &bracketParser{input: s}
	p.skipSpace()
	if p.eof() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty tree expression")
	}
	t, err := p.parseTree()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "trailing input at offset %d", p.pos)
	}
	return t, nil
}

type bracketParser struct {
	input string
	pos   int
}

func (p *bracketParser) eof() bool { return p.pos >= len(p.input) }

func (p *bracketParser) peek() byte { return p.input[p.pos] }

func (p *bracketParser) skipSpace() {
	for !p.eof() && isSpace(p.peek()) {
		p.pos++
	}
}

func (p *bracketParser) parseTree() (any, error) {
	switch p.peek() {
	case '(':
		return p.parseList(')')
	case '[':
		return p.parseList(']')
	case ')', ']':
		return nil, errors.New(errors.ErrCodeInvalidInput, "unexpected %q at offset %d", string(p.peek()), p.pos)
	default:
		return p.parseAtom(), nil
	}
}

func (p *bracketParser) parseList(close byte) (any, error) {
	open := p.pos
	p.pos++ // consume opening bracket
	var items []any
	for {
		p.skipSpace()
		if p.eof() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unclosed bracket at offset %d", open)
		}
		if p.peek() == close {
			p.pos++
			return items, nil
		}
		item, err := p.parseTree()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *bracketParser) parseAtom() string {
	start := p.pos
	for !p.eof() && !isSpace(p.peek()) && !isBracket(p.peek()) {
		p.pos++
	}
	atom := p.input[start:p.pos]
	return strings.ReplaceAll(atom, `\n`, "\n")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isBracket(c byte) bool {
	return c == '(' || c == ')' || c == '[' || c == ']'
}
