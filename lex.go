package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical unit of an expression.
type Token struct {
	// Kind is the token's type.
	Kind TokenKind
	// Value is the numeric payload. It is meaningful only when Kind is
	// Number.
	Value float64
	// Pos is the 0-based byte offset of the token's first character in
	// the input.
	Pos int
}

func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatFloat(t.Value, 'g', -1, 64) + "@" + strconv.Itoa(t.Pos)
	}
	return t.Kind.String() + "@" + strconv.Itoa(t.Pos)
}

// TokenKind classifies tokens.
type TokenKind int

const (
	// None is the zero kind. The tokenizer never produces it.
	None TokenKind = iota
	// Number is a decimal number literal.
	Number
	// Plus, Minus, Star, and Slash are the operators.
	Plus
	Minus
	Star
	Slash
	// LParen and RParen are the round brackets.
	LParen
	RParen
	// End marks the end of the input. It is always the last token of a
	// sequence.
	End
)

func (k TokenKind) String() string {
	switch k {
	case None:
		return "none"
	case Number:
		return "number"
	case Plus:
		return `"+"`
	case Minus:
		return `"-"`
	case Star:
		return `"*"`
	case Slash:
		return `"/"`
	case LParen:
		return `"("`
	case RParen:
		return `")"`
	case End:
		return "end of input"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Tokenize converts an expression to its full token sequence. The last
// token of the sequence is always End. If the input contains a character
// outside the expression alphabet, the result is nil with a *LexError.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	scan := lex(src)
	var toks []Token
	for {
		tok, err := scan.next("")
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == End {
			return toks, nil
		}
	}
}

// TokenizeString is a shortcut to tokenize a string expression.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// off is the byte offset of the next rune to read.
	off int
	// lastw is the width of the most recently read rune.
	lastw int
	p     Token
	eof   bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token.
func (l *lexer) push(tok Token) {
	if l.p.Kind != None {
		panic("arith: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() Token {
	tok := l.p
	if tok.Kind == None {
		panic("arith: no pushed token")
	}
	l.p = Token{}
	return tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	l.off += sz
	l.lastw = sz
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.off -= l.lastw
	l.lastw = 0
}

// next scans the next token from the input. The first time EOF is
// encountered, the result is an End token with a nil error. Subsequent
// times, if the End token is not pushed, the result is an empty token with
// io.EOF. wseof is the set of whitespace characters that end the input
// early; see StopOn.
func (l *lexer) next(wseof string) (Token, error) {
	if l.p.Kind != None {
		tok := l.p
		l.p = Token{}
		return tok, nil
	}
	if l.eof {
		return Token{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		start := l.off
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				return Token{Kind: End, Pos: start}, nil
			}
			return Token{}, err
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(wseof, r) {
				l.eof = true
				return Token{Kind: End, Pos: start}, nil
			}
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			return l.scanNum()
		case r == '+':
			return Token{Kind: Plus, Pos: start}, nil
		case r == '-':
			return Token{Kind: Minus, Pos: start}, nil
		case r == '*':
			return Token{Kind: Star, Pos: start}, nil
		case r == '/':
			return Token{Kind: Slash, Pos: start}, nil
		case r == '(':
			return Token{Kind: LParen, Pos: start}, nil
		case r == ')':
			return Token{Kind: RParen, Pos: start}, nil
		default:
			return Token{}, &LexError{Char: r, Col: start}
		}
	}
}

// scanNum scans a number token: decimal digits with at most one decimal
// point and no exponent.
func (l *lexer) scanNum() (Token, error) {
	start := l.off
	dot := false
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if '0' <= r && r <= '9' {
			l.buf.WriteByte(byte(r))
			continue
		}
		if r == '.' && !dot {
			dot = true
			l.buf.WriteByte('.')
			continue
		}
		l.unreadRune()
		break
	}
	v, err := strconv.ParseFloat(l.buf.String(), 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			// The only token ParseFloat rejects is a bare decimal point.
			return Token{}, &LexError{Char: '.', Col: start}
		}
		// Out-of-range literals saturate to ±Inf, which is what float64
		// arithmetic would produce anyway.
	}
	return Token{Kind: Number, Value: v, Pos: start}, nil
}

// LexError indicates a character outside the expression alphabet. It
// implements InputError.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Col is the 0-based byte offset of the character in the input.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}
