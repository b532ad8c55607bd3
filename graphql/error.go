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

// Package graphql holds the error types shared by the lexer and parser. It is
// intentionally small: this module implements the parser core only, not a
// full GraphQL engine, so there is no schema, execution or validation error
// machinery here.
package graphql

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/arborql/graphql/token"
)

// ErrKind classifies a parser Error.
type ErrKind uint8

// Enumeration of ErrKind.
const (
	// ErrKindOther is an unclassified error. Not expected to be returned by this module, but kept so
	// the zero value of ErrKind is meaningful.
	ErrKindOther ErrKind = iota

	// ErrKindIncorrectSource is raised when the input handed to Parse/ParseValue/ParseType is not
	// usable as a Source (e.g. a nil Source).
	ErrKindIncorrectSource

	// ErrKindSyntax is raised by the Expectation Layer or the lexer when the token stream doesn't
	// match what the grammar requires.
	ErrKindSyntax

	// ErrKindUnexpectedToken is raised by the Grammar Engine when no specific expectation was active
	// (e.g. dispatch on an unrecognized leading token; see spec UnexpectedToken).
	ErrKindUnexpectedToken
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindIncorrectSource:
		return "incorrect source"
	case ErrKindSyntax:
		return "syntax error"
	case ErrKindUnexpectedToken:
		return "unexpected token"
	}
	return "other error"
}

// ErrorLocation is a 1-based line/column pair, suitable for display.
//
// Note that token.Position (carried on every AST node and token) is 0-based per the lexical
// contract; ErrorLocation is the +1/+1 rendering of it used only when surfacing an Error.
type ErrorLocation struct {
	Line   uint
	Column uint
}

// Error describes a syntax-level failure found while lexing or parsing a GraphQL document. It can
// be serialized to JSON for inclusion in a response or log line.
type Error struct {
	// Message describes the error for humans.
	Message string

	// Locations contains the offending position. Parser errors carry exactly one; the slice form
	// mirrors the shape callers expect from the GraphQL response Errors entry.
	Locations []ErrorLocation

	// Kind classifies the error.
	Kind ErrKind

	// Source is the Source the error was raised against, kept for diagnostics; nil for errors raised
	// before a Source exists (IncorrectSource).
	Source *token.Source

	// Expected and Got back the testable Render form below. Empty for IncorrectSource, which has
	// no offending token to report.
	Expected string
	Got      string
}

// sourceName returns e.Source.Name, or "" if there is no source.
func (e *Error) sourceName() string {
	if e.Source == nil {
		return ""
	}
	return e.Source.Name
}

var _ error = (*Error)(nil)

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Locations) == 0 {
		return e.Message
	}
	loc := e.Locations[0]
	if name := e.sourceName(); name != "" {
		return fmt.Sprintf("%s (%s:%d:%d)", e.Message, name, loc.Line, loc.Column)
	}
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, loc.Line, loc.Column)
}

// Render formats the error in the literal, testable form used by conformance checks:
// "Syntax error. Got token <got> instead of <expected> at position <line>:<col>". Error() above
// remains the human-facing message; Render is the wire-stable one callers can assert against
// verbatim.
func (e *Error) Render() string {
	var loc ErrorLocation
	if len(e.Locations) > 0 {
		loc = e.Locations[0]
	}
	return fmt.Sprintf("Syntax error. Got token %s instead of %s at position %d:%d",
		e.Got, e.Expected, loc.Line, loc.Column)
}

// locationOf renders a 0-based token.Position as a 1-based ErrorLocation.
func locationOf(pos token.Position) ErrorLocation {
	return ErrorLocation{
		Line:   uint(pos.Line + 1),
		Column: uint(pos.Column + 1),
	}
}

// MarshalJSON implements json.Marshaler via jsoniter, matching the teacher's choice of JSON
// encoder for error values.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(struct {
		Message   string          `json:"message"`
		Locations []ErrorLocation `json:"locations,omitempty"`
	}{
		Message:   e.Message,
		Locations: e.Locations,
	})
}

// NewIncorrectSourceError builds the error raised when a parse entry point is called without a
// usable Source.
func NewIncorrectSourceError(message string) error {
	return &Error{
		Message: message,
		Kind:    ErrKindIncorrectSource,
	}
}

// NewSyntaxError builds the error raised by the Expectation Layer when the token stream holds
// something other than what the grammar requires at pos. expected and got are rendered into the
// message the same way the teacher's parser formats "Expected X, found Y".
func NewSyntaxError(source *token.Source, pos token.Position, expected string, got string) error {
	message := fmt.Sprintf("Syntax Error: Expected %s, found %s.", expected, got)
	return &Error{
		Message:   message,
		Locations: []ErrorLocation{locationOf(pos)},
		Kind:      ErrKindSyntax,
		Source:    source,
		Expected:  expected,
		Got:       got,
	}
}

// NewUnexpectedTokenError builds the error raised by the Grammar Engine when dispatch finds a
// token that starts no known production and no single expectation was pending.
func NewUnexpectedTokenError(source *token.Source, pos token.Position, got string) error {
	message := fmt.Sprintf("Syntax Error: Unexpected %s.", got)
	return &Error{
		Message:   message,
		Locations: []ErrorLocation{locationOf(pos)},
		Kind:      ErrKindUnexpectedToken,
		Source:    source,
		Expected:  "a valid token",
		Got:       got,
	}
}
