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

package parser

import (
	"fmt"

	"github.com/arborql/graphql"
	"github.com/arborql/graphql/token"
)

// parser is the Cursor: a flat, eagerly-lexed token slice plus a read position. It never backs up;
// every production either consumes tokens moving forward or returns a syntax error.
type parser struct {
	source  *token.Source
	tokens  []*token.Token
	pos     int
	options ParseOptions
}

// peek returns the token under the cursor without consuming it. Once the cursor reaches the final
// token (always EOF), peek keeps returning it.
func (p *parser) peek() *token.Token {
	return p.tokens[p.pos]
}

// peekAt looks offset tokens ahead of the cursor without consuming anything, clamped to the last
// token so callers never index out of range.
func (p *parser) peekAt(offset int) *token.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	return p.tokens[i]
}

// advance consumes and returns the token under the cursor.
func (p *parser) advance() *token.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// lastConsumed returns the most recently advanced-past token, used to compute the end of a token
// range once a production has finished. The cursor never rewinds, so tokens[pos-1] is always it.
func (p *parser) lastConsumed() *token.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

// rangeFrom builds the token.Range spanning from the start of `from` to the end of `to`.
func rangeFrom(from, to *token.Token) token.Range {
	return token.Range{Start: from.Start, End: to.End()}
}

//===----------------------------------------------------------------------------------------====//
// Expectation Layer
//===----------------------------------------------------------------------------------------====//

// expectToken consumes the current token if it has kind, or raises a syntax error.
func (p *parser) expectToken(kind token.Kind) (*token.Token, error) {
	tok := p.peek()
	if tok.Kind == kind {
		return p.advance(), nil
	}
	return nil, graphql.NewSyntaxError(p.source, tok.Start, kind.String(), tok.Description())
}

// expectOptionalToken consumes the current token and returns true if it has kind, otherwise leaves
// the cursor untouched and returns false.
func (p *parser) expectOptionalToken(kind token.Kind) (*token.Token, bool) {
	tok := p.peek()
	if tok.Kind == kind {
		return p.advance(), true
	}
	return nil, false
}

// expectKeyword consumes the current token if it is a NAME matching keyword, or raises a syntax
// error.
func (p *parser) expectKeyword(keyword string) error {
	tok := p.peek()
	if tok.Kind == token.NAME && tok.Name == keyword {
		p.advance()
		return nil
	}
	return graphql.NewSyntaxError(p.source, tok.Start, fmt.Sprintf("%q", keyword), tok.Description())
}

// expectOptionalKeyword consumes the current token and returns true if it is a NAME matching
// keyword, otherwise leaves the cursor untouched and returns false.
func (p *parser) expectOptionalKeyword(keyword string) bool {
	tok := p.peek()
	if tok.Kind == token.NAME && tok.Name == keyword {
		p.advance()
		return true
	}
	return false
}

// unexpected raises the generic "no production matches the current token" error used by dispatch
// points that aren't a single Expectation Layer check.
func (p *parser) unexpected() error {
	tok := p.peek()
	return graphql.NewUnexpectedTokenError(p.source, tok.Start, tok.Description())
}

//===----------------------------------------------------------------------------------------====//
// List combinators
//
// The three shapes the grammar actually needs, named after spec usage rather than generalized into
// one reflective helper: an earlier, reflection-based attempt at a single parseList paid for its
// generality with a measurable per-call slowdown, so each shape gets its own small, monomorphic
// loop instead.
//===----------------------------------------------------------------------------------------====//

// many requires openKind, then parses one or more items (checking for closeKind after each), then
// requires closeKind. Used for productions where the delimiters are mandatory and at least one
// item must be present, e.g. Arguments, SelectionSet.
func many[T any](p *parser, openKind, closeKind token.Kind, parseItem func() (T, error)) ([]T, *token.Token, error) {
	if _, err := p.expectToken(openKind); err != nil {
		return nil, nil, err
	}
	return oneOrMore(p, closeKind, parseItem)
}

// optionalMany parses many only if openKind is present; if it isn't, it returns a nil slice and no
// error. Used for productions whose entire bracketed body is optional but, once the opening
// delimiter appears, require at least one item, e.g. FieldsDefinition, EnumValuesDefinition.
func optionalMany[T any](p *parser, openKind, closeKind token.Kind, parseItem func() (T, error)) ([]T, error) {
	if _, ok := p.expectOptionalToken(openKind); !ok {
		return nil, nil
	}
	items, _, err := oneOrMore(p, closeKind, parseItem)
	return items, err
}

// anyOf requires openKind, then parses zero or more items (checking for closeKind before each),
// then requires closeKind. Used for productions whose delimiters are mandatory but whose body may
// be empty, e.g. ListValue, ObjectValue.
func anyOf[T any](p *parser, openKind, closeKind token.Kind, parseItem func() (T, error)) ([]T, *token.Token, error) {
	if _, err := p.expectToken(openKind); err != nil {
		return nil, nil, err
	}
	return zeroOrMore(p, closeKind, parseItem)
}

func oneOrMore[T any](p *parser, closeKind token.Kind, parseItem func() (T, error)) ([]T, *token.Token, error) {
	var items []T
	for {
		item, err := parseItem()
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
		if closeTok, ok := p.expectOptionalToken(closeKind); ok {
			return items, closeTok, nil
		}
	}
}

func zeroOrMore[T any](p *parser, closeKind token.Kind, parseItem func() (T, error)) ([]T, *token.Token, error) {
	var items []T
	for {
		if closeTok, ok := p.expectOptionalToken(closeKind); ok {
			return items, closeTok, nil
		}
		item, err := parseItem()
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}
}
