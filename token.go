package tachyon

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenIdent
	TokenLParen
	TokenRParen
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenNumber:
		return "number"
	case TokenIdent:
		return "identifier"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical unit. Num is set for TokenNumber, Text for
// TokenIdent. Pos is the byte offset of the first character.
type Token struct {
	Type TokenType
	Num  float64
	Text string
	Pos  int
}

func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return "number " + strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenIdent:
		return fmt.Sprintf("identifier %q", t.Text)
	}
	return t.Type.String()
}
