package tachyon

import (
	"fmt"
	"io"
	"strings"
)

// DefaultMaxDepth is the call nesting a new Parser accepts.
const DefaultMaxDepth = 10000

// Parser builds expression trees from the token stream of a Scanner.
type Parser struct {
	sc       *Scanner
	maxDepth int
}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		sc:       NewScanner(r),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth limits how deeply calls may nest. Zero means no limit.
func (p *Parser) SetMaxDepth(n int) {
	p.maxDepth = n
}

func (p *Parser) NewError(kind error, expected string, got Token) error {
	return &ParseError{
		Kind:     kind,
		Expected: expected,
		Got:      got,
	}
}

// ParseExpression parses one form and leaves any following input unread.
func (p *Parser) ParseExpression() (*Node, error) {
	tok := p.sc.Next()
	switch tok.Type {
	case TokenNumber:
		return Number(tok.Num), nil
	case TokenLParen:
		return p.ParseCall(tok, 1)
	case TokenEOF:
		return nil, p.NewError(ErrUnexpectedEOF, "number or '('", tok)
	}
	return nil, p.NewError(ErrUnexpectedToken, "number or '('", tok)
}

// ParseCall parses the rest of a call whose '(' has been read. depth is
// the nesting level of the call being parsed.
func (p *Parser) ParseCall(open Token, depth int) (*Node, error) {
	if p.maxDepth > 0 && depth > p.maxDepth {
		return nil, p.NewError(ErrTooDeep, fmt.Sprintf("at most %d nested calls", p.maxDepth), open)
	}

	op := p.sc.Next()
	switch op.Type {
	case TokenIdent:
	case TokenEOF:
		return nil, p.NewError(ErrUnexpectedEOF, "operator", op)
	default:
		return nil, p.NewError(ErrUnexpectedToken, "operator", op)
	}

	var args []*Node
	for {
		tok := p.sc.Next()
		switch tok.Type {
		case TokenRParen:
			return Call(op.Text, args...), nil
		case TokenNumber:
			args = append(args, Number(tok.Num))
		case TokenLParen:
			child, err := p.ParseCall(tok, depth+1)
			if err != nil {
				return nil, err
			}
			args = append(args, child)
		case TokenEOF:
			return nil, p.NewError(ErrUnterminatedCall, "argument or ')'", tok)
		default:
			return nil, p.NewError(ErrUnexpectedToken, "argument or ')'", tok)
		}
	}
}

// Parse parses exactly one form followed by the end of input.
func (p *Parser) Parse() (*Node, error) {
	node, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if tok := p.sc.Next(); tok.Type != TokenEOF {
		return nil, p.NewError(ErrTrailingInput, "end of input", tok)
	}
	return node, nil
}

func ParseString(s string) (*Node, error) {
	return NewParser(strings.NewReader(s)).Parse()
}
