/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package lexer turns GraphQL source text into a flat slice of token.Token, materialized eagerly
// in a single pass. It never reports comments (they're consumed as whitespace) and never returns
// partial results: either the whole source lexes, or the first lexical error is returned.
package lexer

import (
	"bytes"
	"fmt"

	"github.com/arborql/graphql"
	lexerinternal "github.com/arborql/graphql/internal/lexer"
	"github.com/arborql/graphql/token"
)

// scanner walks a Source once, left to right, producing tokens.
type scanner struct {
	source *token.Source

	// bytePos is the current byte offset into source.Body; advanced only by consume and
	// consumeWhitespace.
	bytePos int

	// line and column track the position bytePos refers to; column resets and line increments on
	// every newline consumed, so both stay in sync with bytePos without ever rescanning the prefix.
	line   int
	column int

	bodySize int
}

// Lex tokenizes source in full and returns every non-comment, non-whitespace token in document
// order, terminated by a single token.EOF. Returns the first lexical error encountered, if any.
func Lex(source *token.Source) ([]*token.Token, error) {
	if source == nil {
		return nil, graphql.NewIncorrectSourceError("Must provide source.")
	}

	s := &scanner{
		source:   source,
		bodySize: len(source.Body),
		line:     0,
		column:   0,
	}

	var tokens []*token.Token
	for {
		tok, err := s.lexToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// position returns the current scanning position.
func (s *scanner) position() token.Position {
	return token.Position{Offset: s.bytePos, Line: s.line, Column: s.column}
}

// peek peeks the next byte at bytePos without consuming it. Returns 0 at or past EOF.
func (s *scanner) peek() byte {
	if s.bytePos >= s.bodySize {
		return 0
	}
	return s.source.Body[s.bytePos]
}

// consume reads a byte at current bytePos and advances past it, updating line/column.
func (s *scanner) consume() byte {
	b := s.peek()
	if s.bytePos < s.bodySize {
		s.bytePos++
		if b == '\n' {
			s.line++
			s.column = 0
		} else {
			s.column++
		}
	}
	return b
}

// consumeWhitespace consumes bytes starting at bytePos until a non-whitespace character, handling
// a leading byte-order-mark specially.
func (s *scanner) consumeWhitespace() {
	if s.bytePos == 0 && s.bodySize-s.bytePos >= 3 {
		body := s.source.Body
		if body[0] == '\xEF' && body[1] == '\xBB' && body[2] == '\xBF' {
			s.consume()
			s.consume()
			s.consume()
		}
	}

	for s.bytePos < s.bodySize {
		switch s.source.Body[s.bytePos] {
		case '\t', ' ', ',', '\n':
			s.consume()
		case '\r':
			s.consume()
			if s.peek() == '\n' {
				s.consume()
			}
		default:
			return
		}
	}
}

// consumeDigits consumes a run of ASCII digits and returns the first non-digit found.
func (s *scanner) consumeDigits() byte {
	for {
		char := s.peek()
		if char >= '0' && char <= '9' {
			s.consume()
		} else {
			return char
		}
	}
}

func (s *scanner) charAtPosToStr(bytePos int) string {
	if bytePos >= s.bodySize {
		return "<EOF>"
	}
	r := rune(s.source.Body[bytePos])
	if r >= 0x20 && r < 0x7F {
		return fmt.Sprintf("%q", string(r))
	}
	return fmt.Sprintf(`"\u%04X"`, r)
}

func (s *scanner) newUnexpectedCharacterError(bytePos int, pos token.Position) error {
	var message string

	char := s.source.Body[bytePos]
	switch {
	case char < 0x0020 && char != 0x0009 && char != 0x000a && char != 0x000d:
		message = fmt.Sprintf("Cannot contain the invalid character %s.", s.charAtPosToStr(bytePos))
	case char == '\'':
		message = "Unexpected single quote character ('), did you mean to use a double quote (\")?"
	default:
		message = fmt.Sprintf("Cannot parse the unexpected character %s.", s.charAtPosToStr(bytePos))
	}

	return graphql.NewSyntaxError(s.source, pos, "a valid token", message)
}

func (s *scanner) makeToken(kind token.Kind, start token.Position, length int) *token.Token {
	return &token.Token{Kind: kind, Start: start, Length: length}
}

// lexToken consumes whitespace then lexes exactly one token (which may be a punctuator, name,
// number or string) starting at the resulting position. Comments are skipped as if they were
// whitespace: this function never returns a comment token.
func (s *scanner) lexToken() (*token.Token, error) {
	for {
		s.consumeWhitespace()

		start := s.position()
		char := s.peek()

		if char == 0 && s.bytePos >= s.bodySize {
			return &token.Token{Kind: token.EOF, Start: start}, nil
		}

		switch char {
		case '#':
			s.lexComment()
			continue
		case '!':
			s.consume()
			return s.makeToken(token.EXCLAMATION, start, 1), nil
		case '$':
			s.consume()
			return s.makeToken(token.DOLLAR, start, 1), nil
		case '&':
			s.consume()
			return s.makeToken(token.AMP, start, 1), nil
		case '(':
			s.consume()
			return s.makeToken(token.PAREN_OPEN, start, 1), nil
		case ')':
			s.consume()
			return s.makeToken(token.PAREN_CLOSE, start, 1), nil
		case '.':
			s.consume()
			if s.peek() != '.' {
				return nil, s.newUnexpectedCharacterError(s.bytePos-1, start)
			}
			s.consume()
			if s.peek() != '.' {
				return nil, s.newUnexpectedCharacterError(s.bytePos-1, start)
			}
			s.consume()
			return s.makeToken(token.ELLIPSIS, start, 3), nil
		case ':':
			s.consume()
			return s.makeToken(token.COLON, start, 1), nil
		case '=':
			s.consume()
			return s.makeToken(token.EQUALS, start, 1), nil
		case '@':
			s.consume()
			return s.makeToken(token.AT, start, 1), nil
		case '[':
			s.consume()
			return s.makeToken(token.BRACKET_OPEN, start, 1), nil
		case ']':
			s.consume()
			return s.makeToken(token.BRACKET_CLOSE, start, 1), nil
		case '{':
			s.consume()
			return s.makeToken(token.CURLY_OPEN, start, 1), nil
		case '|':
			s.consume()
			return s.makeToken(token.PIPE, start, 1), nil
		case '}':
			s.consume()
			return s.makeToken(token.CURLY_CLOSE, start, 1), nil

		case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N',
			'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
			'_', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n',
			'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
			return s.lexName(start), nil

		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return s.lexNumber(start)

		case '"':
			s.consume()
			if s.peek() == '"' {
				s.consume()
				if s.peek() == '"' {
					s.consume()
					return s.lexBlockString(start)
				}
				return &token.Token{Kind: token.SCALAR, Scalar: token.StringScalar, StringValue: "", Start: start, Length: 2}, nil
			}
			return s.lexString(start)
		}

		return nil, s.newUnexpectedCharacterError(s.bytePos, start)
	}
}

// lexComment consumes a comment (# up to but not including the next line terminator) and discards
// it; comments are trivia this module does not preserve.
func (s *scanner) lexComment() {
	s.consume() // '#'
	for {
		char := s.peek()
		if char > 0x1F || char == '\t' {
			s.consume()
			continue
		}
		break
	}
}

func (s *scanner) lexNumber(start token.Position) (*token.Token, error) {
	startPos := s.bytePos
	char := s.consume()
	isFloat := false

	if char == '-' {
		char = s.peek()
		if char < '0' || char > '9' {
			return nil, graphql.NewSyntaxError(s.source, s.position(), "a digit",
				fmt.Sprintf("Invalid number, expected digit after '-' but got: %s.", s.charAtPosToStr(s.bytePos)))
		}
		char = s.consume()
	}

	if char == '0' {
		char = s.peek()
		if char >= '0' && char <= '9' {
			return nil, graphql.NewSyntaxError(s.source, s.position(), "a valid number",
				fmt.Sprintf("Invalid number, unexpected digit after 0: %s.", s.charAtPosToStr(s.bytePos)))
		}
	} else {
		char = s.consumeDigits()
	}

	if char == '.' {
		isFloat = true
		s.consume()
		char = s.peek()
		if char >= '0' && char <= '9' {
			s.consume()
			char = s.consumeDigits()
		} else {
			return nil, graphql.NewSyntaxError(s.source, s.position(), "a digit",
				fmt.Sprintf("Invalid number, expected digit after decimal point ('.') but got: %s.", s.charAtPosToStr(s.bytePos)))
		}
	}

	if char == 'E' || char == 'e' {
		s.consume()
		isFloat = true

		char = s.peek()
		if char == '+' || char == '-' {
			s.consume()
		}

		char = s.peek()
		if char >= '0' && char <= '9' {
			s.consume()
			s.consumeDigits()
		} else {
			return nil, graphql.NewSyntaxError(s.source, s.position(), "a digit",
				fmt.Sprintf("Invalid number, expected digit but got: %s.", s.charAtPosToStr(s.bytePos)))
		}
	}

	raw := s.source.Body[startPos:s.bytePos]
	length := s.bytePos - startPos

	if isFloat {
		var f float64
		if _, err := fmt.Sscanf(raw, "%g", &f); err != nil {
			return nil, graphql.NewSyntaxError(s.source, start, "a valid number", fmt.Sprintf("Invalid number %q.", raw))
		}
		return &token.Token{Kind: token.SCALAR, Scalar: token.FloatScalar, FloatValue: f, Start: start, Length: length}, nil
	}

	var i int64
	if _, err := fmt.Sscanf(raw, "%d", &i); err != nil {
		return nil, graphql.NewSyntaxError(s.source, start, "a valid number", fmt.Sprintf("Invalid number %q.", raw))
	}
	return &token.Token{Kind: token.SCALAR, Scalar: token.IntScalar, IntValue: i, Start: start, Length: length}, nil
}

func (s *scanner) lexString(start token.Position) (*token.Token, error) {
	// The opening quote was already consumed by lexToken.
	startPos := s.bytePos - 1

	var value bytes.Buffer
	for s.bytePos < s.bodySize {
		char := s.peek()

		if char == '\n' || char == '\r' {
			break
		}

		if char == '"' {
			s.consume()
			return &token.Token{
				Kind:        token.SCALAR,
				Scalar:      token.StringScalar,
				StringValue: value.String(),
				Start:       start,
				Length:      s.bytePos - startPos,
			}, nil
		}

		if char < 0x0020 && char != '\t' {
			return nil, graphql.NewSyntaxError(s.source, s.position(), "a valid character",
				fmt.Sprintf("Invalid character within String: %s.", s.charAtPosToStr(s.bytePos)))
		}

		s.consume()

		if char != '\\' {
			value.WriteByte(char)
			continue
		}

		escapePos := s.position()
		char = s.consume()
		switch char {
		case '"':
			value.WriteRune('"')
		case '\\':
			value.WriteRune('\\')
		case '/':
			value.WriteRune('/')
		case 'b':
			value.WriteRune('\b')
		case 'f':
			value.WriteRune('\f')
		case 'n':
			value.WriteRune('\n')
		case 'r':
			value.WriteRune('\r')
		case 't':
			value.WriteRune('\t')

		case 'u':
			escapeSeqPos := s.bytePos
			var escapeSeqEnd int
			if s.bodySize-s.bytePos < 4 {
				escapeSeqEnd = s.bodySize
			} else {
				escapeSeqEnd = s.bytePos + 4
				charCode := uniCharCode(s.consume(), s.consume(), s.consume(), s.consume())
				if charCode >= 0 {
					value.WriteRune(charCode)
					continue
				}
			}
			return nil, graphql.NewSyntaxError(s.source, escapePos, "a valid escape sequence",
				fmt.Sprintf("Invalid character escape sequence: \\u%s.", s.source.Body[escapeSeqPos:escapeSeqEnd]))

		default:
			return nil, graphql.NewSyntaxError(s.source, escapePos, "a valid escape sequence",
				fmt.Sprintf("Invalid character escape sequence: \\%c.", char))
		}
	}

	return nil, graphql.NewSyntaxError(s.source, s.position(), "a closing quote", "Unterminated string.")
}

// uniCharCode converts four hex digits into the rune they encode, or -1 if any is not a hex digit.
func uniCharCode(a, b, c, d byte) rune {
	return (char2hex(a) << 12) | (char2hex(b) << 8) | (char2hex(c) << 4) | char2hex(d)
}

func char2hex(a byte) rune {
	switch {
	case a >= '0' && a <= '9':
		return rune(a - '0')
	case a >= 'A' && a <= 'F':
		return rune(a - 55)
	case a >= 'a' && a <= 'f':
		return rune(a - 87)
	}
	return -1
}

func (s *scanner) lexBlockString(start token.Position) (*token.Token, error) {
	// The opening """ was already consumed by lexToken.
	startPos := s.bytePos - 3

	var value bytes.Buffer
	for s.bytePos < s.bodySize {
		char := s.peek()

		if char == '"' {
			s.consume()
			if s.peek() == '"' {
				s.consume()
				if s.peek() == '"' {
					s.consume()
					return &token.Token{
						Kind:        token.SCALAR,
						Scalar:      token.BlockStringScalar,
						StringValue: lexerinternal.BlockStringValue(value.String()),
						Start:       start,
						Length:      s.bytePos - startPos,
					}, nil
				}
				value.WriteRune('"')
			}
			value.WriteRune('"')
		} else if char == '\\' {
			s.consume()
			if s.peek() != '"' {
				value.WriteRune('\\')
			} else {
				s.consume()
				if s.peek() != '"' {
					value.WriteString("\\\"")
				} else {
					s.consume()
					if s.peek() != '"' {
						value.WriteString("\\\"\"")
					} else {
						s.consume()
						value.WriteString("\"\"\"")
					}
				}
			}
		} else {
			if char < 0x0020 && char != '\t' && char != '\r' && char != '\n' {
				return nil, graphql.NewSyntaxError(s.source, s.position(), "a valid character",
					fmt.Sprintf("Invalid character within String: %s.", s.charAtPosToStr(s.bytePos)))
			}
			s.consume()
			value.WriteByte(char)
		}
	}

	return nil, graphql.NewSyntaxError(s.source, s.position(), "a closing triple quote", "Unterminated string.")
}

// lexName lexes a /[_A-Za-z][_0-9A-Za-z]*/ token.
func (s *scanner) lexName(start token.Position) *token.Token {
	startPos := s.bytePos
	s.consume()

	for {
		char := s.peek()
		if char == '_' ||
			(char >= '0' && char <= '9') ||
			(char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') {
			s.consume()
			continue
		}
		break
	}

	return &token.Token{
		Kind:   token.NAME,
		Name:   s.source.Body[startPos:s.bytePos],
		Start:  start,
		Length: s.bytePos - startPos,
	}
}
