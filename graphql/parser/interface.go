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

// Package parser implements the recursive-descent grammar engine that turns a lexed GraphQL
// Source into an ast.Document, an ast.Value or an ast.Type.
package parser

import (
	"fmt"

	"github.com/arborql/graphql"
	"github.com/arborql/graphql/ast"
	"github.com/arborql/graphql/lexer"
	"github.com/arborql/graphql/token"
)

// ParseOptions configures Parse, ParseValue and ParseType.
type ParseOptions struct {
	// ExperimentalFragmentVariables allows FragmentDefinition to declare VariableDefinitions, a
	// syntax not present in the June 2018 grammar.
	ExperimentalFragmentVariables bool

	// MaxTokens bounds the number of tokens a Source may lex to. Zero means unbounded. Exists so a
	// caller parsing untrusted input can reject a pathological document before the Grammar Engine
	// ever runs on it.
	MaxTokens int
}

// newParser lexes source eagerly and returns a parser cursor positioned at the first token.
func newParser(source *token.Source, options ParseOptions) (*parser, error) {
	if source == nil {
		return nil, graphql.NewIncorrectSourceError("Must provide source.")
	}

	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}

	if options.MaxTokens > 0 && len(tokens) > options.MaxTokens {
		return nil, graphql.NewIncorrectSourceError(
			fmt.Sprintf("Document exceeds the maximum of %d tokens.", options.MaxTokens))
	}

	return &parser{source: source, tokens: tokens, options: options}, nil
}

// Parse produces the AST representing source, or a syntax error describing the first place the
// token stream didn't match the grammar.
func Parse(source *token.Source, options ParseOptions) (ast.Document, error) {
	p, err := newParser(source, options)
	if err != nil {
		return ast.Document{}, err
	}
	return p.parseDocument()
}

// ParseValue parses source as a single non-constant Value, the grammar used inside field
// arguments, so a Variable is accepted. The entire source must be consumed; trailing tokens are a
// syntax error.
func ParseValue(source *token.Source) (ast.Value, error) {
	p, err := newParser(source, ParseOptions{})
	if err != nil {
		return nil, err
	}

	value, err := p.parseValue(false)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectToken(token.EOF); err != nil {
		return nil, err
	}

	return value, nil
}

// ParseType parses source as a single Type reference, e.g. `[String!]!`. The entire source must be
// consumed; trailing tokens are a syntax error.
func ParseType(source *token.Source) (ast.Type, error) {
	p, err := newParser(source, ParseOptions{})
	if err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectToken(token.EOF); err != nil {
		return nil, err
	}

	return t, nil
}
