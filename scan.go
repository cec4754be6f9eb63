package tachyon

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"unicode"
)

// Scanner splits calculator source into tokens on demand.
type Scanner struct {
	buf  *bufio.Reader
	pos  int
	last int
	eof  bool
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		buf: bufio.NewReader(r),
	}
}

// Pos returns the byte offset of the next unread character.
func (s *Scanner) Pos() int {
	return s.pos
}

func (s *Scanner) readRune() (rune, error) {
	r, n, err := s.buf.ReadRune()
	s.pos += n
	s.last = n
	return r, err
}

func (s *Scanner) unreadRune() {
	if s.buf.UnreadRune() == nil {
		s.pos -= s.last
	}
}

func (s *Scanner) peekRune() (rune, bool) {
	r, err := s.readRune()
	if err != nil {
		return 0, false
	}
	s.unreadRune()
	return r, true
}

// peekDigitAfter reports whether the next unread byte is an ASCII digit.
// It leaves the reader unable to unread the previous rune.
func (s *Scanner) peekDigitAfter() bool {
	b, err := s.buf.Peek(1)
	if err != nil || len(b) == 0 {
		return false
	}
	return isDigit(rune(b[0]))
}

// negativeAhead reports whether the unread input starts with '-' and a
// digit.
func (s *Scanner) negativeAhead() bool {
	b, _ := s.buf.Peek(2)
	return len(b) == 2 && b[0] == '-' && isDigit(rune(b[1]))
}

func (s *Scanner) skipWhite() {
	for {
		r, err := s.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			s.unreadRune()
			return
		}
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isDelim(r rune) bool {
	return r == '(' || r == ')' || unicode.IsSpace(r)
}

// Next returns the next token. Once the input is exhausted it returns a
// TokenEOF token on every call.
func (s *Scanner) Next() Token {
	if s.eof {
		return Token{Type: TokenEOF, Pos: s.pos}
	}
	s.skipWhite()
	start := s.pos
	r, err := s.readRune()
	if err != nil {
		s.eof = true
		return Token{Type: TokenEOF, Pos: start}
	}

	switch {
	case r == '(':
		return Token{Type: TokenLParen, Pos: start}
	case r == ')':
		return Token{Type: TokenRParen, Pos: start}
	case isDigit(r):
		s.unreadRune()
		return s.scanNumber(start, false)
	case r == '-' && s.peekDigitAfter():
		return s.scanNumber(start, true)
	}
	return s.scanIdent(start, r)
}

func (s *Scanner) scanDigits(buf *bytes.Buffer) {
	for {
		r, ok := s.peekRune()
		if !ok || !isDigit(r) {
			return
		}
		s.readRune()
		buf.WriteRune(r)
	}
}

func (s *Scanner) scanNumber(start int, neg bool) Token {
	var buf bytes.Buffer
	if neg {
		buf.WriteByte('-')
	}
	s.scanDigits(&buf)
	if r, ok := s.peekRune(); ok && r == '.' {
		s.readRune()
		buf.WriteByte('.')
		s.scanDigits(&buf)
	}
	// The literal is a plain decimal, so the only error ParseFloat can
	// report is ErrRange, and then f is already ±Inf.
	f, _ := strconv.ParseFloat(buf.String(), 64)
	return Token{Type: TokenNumber, Num: f, Pos: start}
}

// scanIdent reads the rest of an identifier run starting with first. A
// run of symbol characters stops before a digit or a negative number, so
// "+1" and "+-1" are the identifier "+" followed by a number; once a
// letter has been read digits continue the name ("log10").
func (s *Scanner) scanIdent(start int, first rune) Token {
	var buf bytes.Buffer
	buf.WriteRune(first)
	letter := unicode.IsLetter(first)
	for {
		if !letter && s.negativeAhead() {
			break
		}
		r, err := s.readRune()
		if err != nil {
			break
		}
		if isDelim(r) || (isDigit(r) && !letter) {
			s.unreadRune()
			break
		}
		if unicode.IsLetter(r) {
			letter = true
		}
		buf.WriteRune(r)
	}
	return Token{Type: TokenIdent, Text: buf.String(), Pos: start}
}
