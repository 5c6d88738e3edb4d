package arith

import (
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Expr  = Term { ('+' | '-') Term }
// Term  = Unary { ('*' | '/') Unary }
// Unary = '-' Unary | '+' Unary | Primary
// Primary = num | '(' Expr ')'

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type eofopt struct {
	ws string
}

// parsectx holds general data for parsing.
type parsectx struct {
	// wseof is a string containing the whitespace characters that trigger
	// an End token from the lexer.
	wseof string
}

// StopOn tells the parser to treat a list of whitespace characters as
// ending the expression. Whitespace does not end an expression where a
// term is expected, e.g. at the beginning of an expression or following
// an operator or bracket.
//
// StopOn overrides the effect of any previous StopOn in the parsing
// options. With no arguments, StopOn produces the default termination
// behavior, which is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("arith: cannot stop on " + strconv.QuoteRune(r))
		}
		if have(r) {
			continue
		}
		v = append(v, r)
	}
	return &eofopt{ws: string(v)}
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.wseof = o.ws
	return p
}

// Parse parses an expression so it can be evaluated. The given options
// are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.Kind != End {
		return nil, &SyntaxError{Col: tok.Pos, Expected: "end of input", Found: describe(tok)}
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseterm parses a single term. If there is no error, then parseterm
// pushes the last token it scans, so the caller can check how the
// expression ended.
func parseterm(scan *lexer, p *parsectx, until operator) (*node, error) {
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case Plus, Minus, Star, Slash:
			prec := binop(tok.Kind)
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, pos: tok.Pos, left: n, right: rhs}
		case Number, LParen, RParen, End:
			// Not ours. The caller decides whether this token may legally
			// end the expression.
			scan.push(tok)
			return n, nil
		default:
			panic("arith: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are
// unary, any encountered token must be valid as the start of a
// subexpression, and whitespace normally lexed as End is ignored.
func parselhs(scan *lexer, p *parsectx, until operator) (*node, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case Number:
		return &node{kind: nodeNum, val: tok.Value, pos: tok.Pos}, nil
	case Plus, Minus:
		prec := unop(tok.Kind)
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		return &node{kind: prec.op, pos: tok.Pos, left: rhs}, nil
	case LParen:
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		if end := scan.must(); end.Kind != RParen {
			return nil, &SyntaxError{Col: end.Pos, Expected: `")"`, Found: describe(end)}
		}
		return rhs, nil
	default:
		// Star, Slash, RParen, End: no term begins with these.
		return nil, &SyntaxError{Col: tok.Pos, Expected: "expression", Found: describe(tok)}
	}
}

// describe renders a token for an error message.
func describe(tok Token) string {
	if tok.Kind == Number {
		return "number " + strconv.FormatFloat(tok.Value, 'g', -1, 64)
	}
	return tok.Kind.String()
}

// String creates a string representation of the parsed expression, with
// brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Lower is less binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token kind. If there is no such
// binary operator, then the result has an op of nodeNone.
func binop(kind TokenKind) operator {
	switch kind {
	case Plus:
		return operator{1, false, nodeAdd}
	case Minus:
		return operator{1, false, nodeSub}
	case Star:
		return operator{5, false, nodeMul}
	case Slash:
		return operator{5, false, nodeDiv}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token kind. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(kind TokenKind) operator {
	switch kind {
	case Plus:
		return operator{10, true, nodeNop}
	case Minus:
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
