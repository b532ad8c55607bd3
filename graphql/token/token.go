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

// Package token holds the lexical vocabulary shared by the lexer and the parser: token kinds,
// source positions and the positioned Token itself.
package token

import "fmt"

// Kind enumerates the lexical kinds a Token may carry. Punctuators match by exact kind; NAME and
// SCALAR match by class (their payload varies) — this is the matching duality the Expectation
// Layer is built around.
type Kind int

// Enumeration of Kind. Reference: https://facebook.github.io/graphql/June2018/#sec-Appendix-Grammar-Summary.Lexical-Tokens
const (
	EOF Kind = iota + 1
	ELLIPSIS
	EXCLAMATION
	DOLLAR
	PAREN_OPEN
	PAREN_CLOSE
	CURLY_OPEN
	CURLY_CLOSE
	BRACKET_OPEN
	BRACKET_CLOSE
	COLON
	EQUALS
	AT
	PIPE
	AMP
	NAME
	SCALAR
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "<EOF>"
	case ELLIPSIS:
		return "..."
	case EXCLAMATION:
		return "!"
	case DOLLAR:
		return "$"
	case PAREN_OPEN:
		return "("
	case PAREN_CLOSE:
		return ")"
	case CURLY_OPEN:
		return "{"
	case CURLY_CLOSE:
		return "}"
	case BRACKET_OPEN:
		return "["
	case BRACKET_CLOSE:
		return "]"
	case COLON:
		return ":"
	case EQUALS:
		return "="
	case AT:
		return "@"
	case PIPE:
		return "|"
	case AMP:
		return "&"
	case NAME:
		return "Name"
	case SCALAR:
		return "Scalar"
	}
	panic(fmt.Sprintf("unsupported token kind %d", int(k)))
}

// ScalarKind distinguishes the runtime type of a SCALAR token's payload.
type ScalarKind int

// Enumeration of ScalarKind.
const (
	// NotScalar marks a Token that doesn't carry a SCALAR payload.
	NotScalar ScalarKind = iota
	IntScalar
	FloatScalar
	StringScalar
	// BlockStringScalar is a StringScalar written with triple-quote syntax; its StringValue has already
	// been dedented per the GraphQL BlockStringValue() algorithm, so the parser treats it exactly as
	// StringScalar.
	BlockStringScalar
)

// Position is a 0-based byte offset/line/column triple identifying a location in a Source.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Range covers [Start, End) of a Source.
type Range struct {
	Start Position
	End   Position
}

// Token is a single lexical token with its source position.
type Token struct {
	Kind Kind

	// Name is populated when Kind == NAME.
	Name string

	// Scalar classifies the payload when Kind == SCALAR.
	Scalar ScalarKind

	// IntValue, FloatValue and StringValue hold the interpreted SCALAR payload; exactly one is valid,
	// selected by Scalar.
	IntValue    int64
	FloatValue  float64
	StringValue string

	// Start is the position of the first byte of the token.
	Start Position

	// Length is the size of the token in bytes.
	Length int
}

// End returns the pass-the-end position of the token.
func (t *Token) End() Position {
	return Position{
		Offset: t.Start.Offset + t.Length,
		Line:   t.Start.Line,
		Column: t.Start.Column + t.Length,
	}
}

// Description describes a token for error messages, e.g. `Name "foo"` or `{`.
func (t *Token) Description() string {
	switch t.Kind {
	case NAME:
		return fmt.Sprintf("Name %q", t.Name)
	case SCALAR:
		switch t.Scalar {
		case IntScalar:
			return fmt.Sprintf("Int %d", t.IntValue)
		case FloatScalar:
			return fmt.Sprintf("Float %v", t.FloatValue)
		default:
			return fmt.Sprintf("String %q", t.StringValue)
		}
	default:
		return t.Kind.String()
	}
}
