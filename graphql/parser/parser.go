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

// Executable definitions: Document, OperationDefinition, FragmentDefinition, SelectionSet and
// everything reachable from them (Value, Type, Directives, Arguments). Type system definitions and
// extensions live in typesystem.go.
package parser

import (
	"github.com/arborql/graphql"
	"github.com/arborql/graphql/ast"
	"github.com/arborql/graphql/token"
)

//===----------------------------------------------------------------------------------------====//
// 2.2 Document
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseDocument() (ast.Document, error) {
	start := p.peek()

	var definitions []ast.Definition
	for {
		definition, err := p.parseDefinition()
		if err != nil {
			return ast.Document{}, err
		}
		definitions = append(definitions, definition)

		if eofTok, ok := p.expectOptionalToken(token.EOF); ok {
			return ast.Document{
				Loc:         token.Range{Start: start.Start, End: eofTok.End()},
				Definitions: definitions,
			}, nil
		}
	}
}

// parseDefinition dispatches on the leading token to one of the ExecutableDefinition or
// TypeSystemDefinition/TypeSystemExtension productions.
func (p *parser) parseDefinition() (ast.Definition, error) {
	tok := p.peek()

	if tok.Kind == token.NAME {
		switch tok.Name {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		case "schema":
			return p.parseSchemaDefinition()
		case "scalar":
			return p.parseScalarTypeDefinition()
		case "type":
			return p.parseObjectTypeDefinition()
		case "interface":
			return p.parseInterfaceTypeDefinition()
		case "union":
			return p.parseUnionTypeDefinition()
		case "enum":
			return p.parseEnumTypeDefinition()
		case "input":
			return p.parseInputObjectTypeDefinition()
		case "directive":
			return p.parseDirectiveDefinition()
		case "extend":
			return p.parseTypeSystemExtension()
		}
	}

	if tok.Kind == token.SCALAR && (tok.Scalar == token.StringScalar || tok.Scalar == token.BlockStringScalar) {
		// A leading string literal only ever introduces a Description, which is only legal in front
		// of a TypeSystemDefinition.
		return p.parseTypeSystemDefinitionAfterDescription()
	}

	if tok.Kind == token.CURLY_OPEN {
		return p.parseQueryShorthand()
	}

	return nil, p.unexpected()
}

func (p *parser) parseTypeSystemDefinitionAfterDescription() (ast.Definition, error) {
	next := p.peekAt(1)
	if next.Kind == token.NAME {
		switch next.Name {
		case "schema":
			return p.parseSchemaDefinition()
		case "scalar":
			return p.parseScalarTypeDefinition()
		case "type":
			return p.parseObjectTypeDefinition()
		case "interface":
			return p.parseInterfaceTypeDefinition()
		case "union":
			return p.parseUnionTypeDefinition()
		case "enum":
			return p.parseEnumTypeDefinition()
		case "input":
			return p.parseInputObjectTypeDefinition()
		case "directive":
			return p.parseDirectiveDefinition()
		}
	}
	return nil, p.unexpected()
}

//===----------------------------------------------------------------------------------------====//
// 2.3 Operations
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	start := p.peek()

	opTok, err := p.expectToken(token.NAME)
	if err != nil {
		return nil, err
	}
	operation := ast.OperationType(opTok.Name)

	var name *ast.Name
	if p.peek().Kind == token.NAME {
		n, err := p.parseName()
		if err != nil {
			return nil, err
		}
		name = &n
	}

	var variableDefinitions []*ast.VariableDefinition
	if p.peek().Kind == token.PAREN_OPEN {
		if variableDefinitions, err = p.parseVariableDefinitions(); err != nil {
			return nil, err
		}
	}

	directives, err := p.parseOptionalDirectives(false)
	if err != nil {
		return nil, err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		DefinitionBase:      ast.DefinitionBase{Directives: directives},
		Loc:                 rangeFrom(start, p.lastConsumed()),
		Operation:           operation,
		Name:                name,
		VariableDefinitions: variableDefinitions,
		SelectionSet:        selectionSet,
	}, nil
}

// parseQueryShorthand parses the shorthand form of a query operation, e.g. `{ field }`.
func (p *parser) parseQueryShorthand() (*ast.OperationDefinition, error) {
	start := p.peek()

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		Loc:          rangeFrom(start, p.lastConsumed()),
		Operation:    ast.OperationTypeQuery,
		SelectionSet: selectionSet,
	}, nil
}

func (p *parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	defs, _, err := many(p, token.PAREN_OPEN, token.PAREN_CLOSE, p.parseVariableDefinition)
	return defs, err
}

func (p *parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	start := p.peek()

	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectToken(token.COLON); err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	if p.peek().Kind == token.EQUALS {
		if defaultValue, err = p.parseDefaultValue(); err != nil {
			return nil, err
		}
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.VariableDefinition{
		Loc:          rangeFrom(start, p.lastConsumed()),
		Variable:     variable,
		Type:         t,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

func (p *parser) parseVariable() (*ast.Variable, error) {
	start := p.peek()

	if _, err := p.expectToken(token.DOLLAR); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	return &ast.Variable{Loc: rangeFrom(start, p.lastConsumed()), Name: name}, nil
}

//===----------------------------------------------------------------------------------------====//
// 2.4 Selection Sets
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseSelectionSet() (ast.SelectionSet, error) {
	start := p.peek()

	selections, _, err := many(p, token.CURLY_OPEN, token.CURLY_CLOSE, p.parseSelection)
	if err != nil {
		return ast.SelectionSet{}, err
	}

	return ast.SelectionSet{Loc: rangeFrom(start, p.lastConsumed()), Selections: selections}, nil
}

func (p *parser) parseSelection() (ast.Selection, error) {
	if spread, ok := p.expectOptionalToken(token.ELLIPSIS); ok {
		tok := p.peek()
		if tok.Kind != token.NAME || tok.Name == "on" {
			return p.parseInlineFragment(spread)
		}
		return p.parseFragmentSpread(spread)
	}
	return p.parseField()
}

func (p *parser) parseField() (*ast.Field, error) {
	start := p.peek()

	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var alias *ast.Name
	name := nameOrAlias
	if _, ok := p.expectOptionalToken(token.COLON); ok {
		alias = &nameOrAlias
		if name, err = p.parseName(); err != nil {
			return nil, err
		}
	}

	var arguments ast.Arguments
	if p.peek().Kind == token.PAREN_OPEN {
		if arguments, err = p.parseArguments(false); err != nil {
			return nil, err
		}
	}

	directives, err := p.parseOptionalDirectives(false)
	if err != nil {
		return nil, err
	}

	var selectionSet ast.SelectionSet
	if p.peek().Kind == token.CURLY_OPEN {
		if selectionSet, err = p.parseSelectionSet(); err != nil {
			return nil, err
		}
	}

	return &ast.Field{
		SelectionBase: ast.SelectionBase{Directives: directives},
		Loc:           rangeFrom(start, p.lastConsumed()),
		Alias:         alias,
		Name:          name,
		Arguments:     arguments,
		SelectionSet:  selectionSet,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// 2.5 Arguments
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseArguments(isConst bool) (ast.Arguments, error) {
	args, _, err := many(p, token.PAREN_OPEN, token.PAREN_CLOSE, func() (*ast.Argument, error) {
		return p.parseArgument(isConst)
	})
	if err != nil {
		return nil, err
	}
	return ast.Arguments(args), nil
}

func (p *parser) parseArgument(isConst bool) (*ast.Argument, error) {
	start := p.peek()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectToken(token.COLON); err != nil {
		return nil, err
	}

	value, err := p.parseValue(isConst)
	if err != nil {
		return nil, err
	}

	return &ast.Argument{Loc: rangeFrom(start, p.lastConsumed()), Name: name, Value: value}, nil
}

//===----------------------------------------------------------------------------------------====//
// 2.8 Fragments
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseFragmentSpread(start *token.Token) (*ast.FragmentSpread, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(false)
	if err != nil {
		return nil, err
	}

	return &ast.FragmentSpread{
		SelectionBase: ast.SelectionBase{Directives: directives},
		Loc:           rangeFrom(start, p.lastConsumed()),
		Name:          name,
	}, nil
}

func (p *parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	start := p.peek()

	if err := p.expectKeyword("fragment"); err != nil {
		return nil, err
	}

	name, err := p.parseFragmentName()
	if err != nil {
		return nil, err
	}

	var variableDefinitions []*ast.VariableDefinition
	if p.options.ExperimentalFragmentVariables && p.peek().Kind == token.PAREN_OPEN {
		if variableDefinitions, err = p.parseVariableDefinitions(); err != nil {
			return nil, err
		}
	}

	typeCondition, err := p.parseTypeCondition()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(false)
	if err != nil {
		return nil, err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.FragmentDefinition{
		DefinitionBase:      ast.DefinitionBase{Directives: directives},
		Loc:                 rangeFrom(start, p.lastConsumed()),
		Name:                name,
		VariableDefinitions: variableDefinitions,
		TypeCondition:       typeCondition,
		SelectionSet:        selectionSet,
	}, nil
}

// parseFragmentName parses a Name that isn't "on"; the keyword is reserved to introduce a
// TypeCondition so a fragment can never be named after it.
func (p *parser) parseFragmentName() (ast.Name, error) {
	if tok := p.peek(); tok.Kind == token.NAME && tok.Name == "on" {
		return ast.Name{}, p.unexpected()
	}
	return p.parseName()
}

func (p *parser) parseTypeCondition() (ast.NamedType, error) {
	if err := p.expectKeyword("on"); err != nil {
		return ast.NamedType{}, err
	}
	return p.parseNamedType()
}

func (p *parser) parseInlineFragment(start *token.Token) (*ast.InlineFragment, error) {
	var typeCondition *ast.NamedType
	if p.peek().Kind == token.NAME {
		tc, err := p.parseTypeCondition()
		if err != nil {
			return nil, err
		}
		typeCondition = &tc
	}

	directives, err := p.parseOptionalDirectives(false)
	if err != nil {
		return nil, err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.InlineFragment{
		SelectionBase: ast.SelectionBase{Directives: directives},
		Loc:           rangeFrom(start, p.lastConsumed()),
		TypeCondition: typeCondition,
		SelectionSet:  selectionSet,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// 2.9 Input Values
//===----------------------------------------------------------------------------------------====//

// parseValue dispatches on the leading token. isConst selects which grammar production is in play:
// Value[Const] forbids a Variable wherever Value[Const] is reachable (default values, and any
// value nested under one), so a `$name` token there is a syntax error rather than a silently
// dropped variable reference.
func (p *parser) parseValue(isConst bool) (ast.Value, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.DOLLAR:
		if isConst {
			return nil, graphql.NewSyntaxError(p.source, tok.Start, "a constant value", "a variable")
		}
		return p.parseVariable()

	case token.BRACKET_OPEN:
		return p.parseListValue(isConst)

	case token.CURLY_OPEN:
		return p.parseObjectValue(isConst)

	case token.SCALAR:
		p.advance()
		switch tok.Scalar {
		case token.IntScalar:
			return &ast.IntValue{Loc: rangeFrom(tok, tok), Value: tok.IntValue}, nil
		case token.FloatScalar:
			return &ast.FloatValue{Loc: rangeFrom(tok, tok), Value: tok.FloatValue}, nil
		default:
			return &ast.StringValue{
				Loc:   rangeFrom(tok, tok),
				Value: tok.StringValue,
				Block: tok.Scalar == token.BlockStringScalar,
			}, nil
		}

	case token.NAME:
		p.advance()
		switch tok.Name {
		case "true":
			return &ast.BooleanValue{Loc: rangeFrom(tok, tok), Value: true}, nil
		case "false":
			return &ast.BooleanValue{Loc: rangeFrom(tok, tok), Value: false}, nil
		case "null":
			return &ast.NullValue{Loc: rangeFrom(tok, tok)}, nil
		default:
			return &ast.EnumValue{Loc: rangeFrom(tok, tok), Value: tok.Name}, nil
		}
	}

	return nil, p.unexpected()
}

func (p *parser) parseListValue(isConst bool) (*ast.ListValue, error) {
	start := p.peek()

	values, _, err := anyOf(p, token.BRACKET_OPEN, token.BRACKET_CLOSE, func() (ast.Value, error) {
		return p.parseValue(isConst)
	})
	if err != nil {
		return nil, err
	}

	return &ast.ListValue{Loc: rangeFrom(start, p.lastConsumed()), Values: values}, nil
}

func (p *parser) parseObjectValue(isConst bool) (*ast.ObjectValue, error) {
	start := p.peek()

	fields, _, err := anyOf(p, token.CURLY_OPEN, token.CURLY_CLOSE, func() (*ast.ObjectField, error) {
		return p.parseObjectField(isConst)
	})
	if err != nil {
		return nil, err
	}

	return &ast.ObjectValue{Loc: rangeFrom(start, p.lastConsumed()), Fields: fields}, nil
}

func (p *parser) parseObjectField(isConst bool) (*ast.ObjectField, error) {
	start := p.peek()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectToken(token.COLON); err != nil {
		return nil, err
	}

	value, err := p.parseValue(isConst)
	if err != nil {
		return nil, err
	}

	return &ast.ObjectField{Loc: rangeFrom(start, p.lastConsumed()), Name: name, Value: value}, nil
}

// parseDefaultValue parses `= Value[Const]`.
func (p *parser) parseDefaultValue() (ast.Value, error) {
	if _, err := p.expectToken(token.EQUALS); err != nil {
		return nil, err
	}
	return p.parseValue(true)
}

//===----------------------------------------------------------------------------------------====//
// 2.10 Directives
//===----------------------------------------------------------------------------------------====//

// parseOptionalDirectives parses Directives[?Const] only if an `@` is present, which is how every
// call site in this grammar uses it; it's a thin wrapper so callers don't repeat the peek check.
func (p *parser) parseOptionalDirectives(isConst bool) (ast.Directives, error) {
	if p.peek().Kind != token.AT {
		return nil, nil
	}
	return p.parseDirectives(isConst)
}

func (p *parser) parseDirectives(isConst bool) (ast.Directives, error) {
	var directives ast.Directives
	for p.peek().Kind == token.AT {
		d, err := p.parseDirective(isConst)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	return directives, nil
}

func (p *parser) parseDirective(isConst bool) (*ast.Directive, error) {
	start := p.peek()

	if _, err := p.expectToken(token.AT); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments ast.Arguments
	if p.peek().Kind == token.PAREN_OPEN {
		if arguments, err = p.parseArguments(isConst); err != nil {
			return nil, err
		}
	}

	return &ast.Directive{Loc: rangeFrom(start, p.lastConsumed()), Name: name, Arguments: arguments}, nil
}

//===----------------------------------------------------------------------------------------====//
// 2.11 Type References
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseType() (ast.Type, error) {
	start := p.peek()

	var t ast.Type
	listLevel := 0
	for {
		if _, ok := p.expectOptionalToken(token.BRACKET_OPEN); ok {
			listLevel++
			continue
		}
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		t = named
		break
	}

	for listLevel > 0 {
		if _, ok := p.expectOptionalToken(token.EXCLAMATION); ok {
			t = &ast.NonNullType{Loc: rangeFrom(start, p.lastConsumed()), Type: t}
		}
		if _, err := p.expectToken(token.BRACKET_CLOSE); err != nil {
			return nil, err
		}
		t = &ast.ListType{Loc: rangeFrom(start, p.lastConsumed()), Type: t}
		listLevel--
	}

	if _, ok := p.expectOptionalToken(token.EXCLAMATION); ok {
		t = &ast.NonNullType{Loc: rangeFrom(start, p.lastConsumed()), Type: t}
	}

	return t, nil
}

func (p *parser) parseNamedType() (ast.NamedType, error) {
	name, err := p.parseName()
	if err != nil {
		return ast.NamedType{}, err
	}
	return ast.NamedType{Loc: name.Loc, Name: name}, nil
}

//===----------------------------------------------------------------------------------------====//
// Names
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseName() (ast.Name, error) {
	tok, err := p.expectToken(token.NAME)
	if err != nil {
		return ast.Name{}, err
	}
	return ast.Name{Loc: rangeFrom(tok, tok), Value: tok.Name}, nil
}
