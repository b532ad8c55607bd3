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

// Type system definitions and extensions: SchemaDefinition, ScalarTypeDefinition,
// ObjectTypeDefinition, InterfaceTypeDefinition, UnionTypeDefinition, EnumTypeDefinition,
// InputObjectTypeDefinition, DirectiveDefinition, and the `extend` form of each (minus directives,
// which cannot be extended).
package parser

import (
	"github.com/arborql/graphql"
	"github.com/arborql/graphql/ast"
	"github.com/arborql/graphql/token"
)

// parseDescription parses an optional leading StringValue. Every type system definition allows
// one; nothing else in the grammar does.
func (p *parser) parseDescription() *ast.StringValue {
	tok := p.peek()
	if tok.Kind != token.SCALAR || (tok.Scalar != token.StringScalar && tok.Scalar != token.BlockStringScalar) {
		return nil
	}
	p.advance()
	return &ast.StringValue{
		Loc:   rangeFrom(tok, tok),
		Value: tok.StringValue,
		Block: tok.Scalar == token.BlockStringScalar,
	}
}

//===----------------------------------------------------------------------------------------====//
// 3.1 Schema
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseSchemaDefinition() (*ast.SchemaDefinition, error) {
	start := p.peek()
	description := p.parseDescription()

	if err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	operationTypes, _, err := many(p, token.CURLY_OPEN, token.CURLY_CLOSE, p.parseOperationTypeDefinition)
	if err != nil {
		return nil, err
	}

	return &ast.SchemaDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Description:    description,
		OperationTypes: operationTypes,
	}, nil
}

func (p *parser) parseOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	start := p.peek()

	opTok, err := p.expectToken(token.NAME)
	if err != nil {
		return nil, err
	}
	switch opTok.Name {
	case "query", "mutation", "subscription":
	default:
		return nil, graphql.NewSyntaxError(p.source, opTok.Start, "query, mutation or subscription", opTok.Description())
	}

	if _, err := p.expectToken(token.COLON); err != nil {
		return nil, err
	}

	namedType, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	return &ast.OperationTypeDefinition{
		Loc:       rangeFrom(start, p.lastConsumed()),
		Operation: ast.OperationType(opTok.Name),
		Type:      namedType,
	}, nil
}

func (p *parser) parseSchemaExtension() (*ast.SchemaExtension, error) {
	start := p.peek()

	if err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	operationTypes, err := optionalMany(p, token.CURLY_OPEN, token.CURLY_CLOSE, p.parseOperationTypeDefinition)
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(operationTypes) == 0 {
		return nil, p.unexpected()
	}

	return &ast.SchemaExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		OperationTypes: operationTypes,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// 3.3 Scalars
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseScalarTypeDefinition() (*ast.ScalarTypeDefinition, error) {
	start := p.peek()
	description := p.parseDescription()

	if err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.ScalarTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Description:    description,
		Name:           name,
	}, nil
}

func (p *parser) parseScalarTypeExtension() (*ast.ScalarTypeExtension, error) {
	start := p.peek()

	if err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}
	// A scalar extension has no body; Directives is the only thing it can add, so at least one
	// must be present or there is nothing being extended.
	if len(directives) == 0 {
		return nil, p.unexpected()
	}

	return &ast.ScalarTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Name:           name,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// 3.4 Objects
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseObjectTypeDefinition() (*ast.ObjectTypeDefinition, error) {
	start := p.peek()
	description := p.parseDescription()

	if err := p.expectKeyword("type"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	fields, err := optionalMany(p, token.CURLY_OPEN, token.CURLY_CLOSE, p.parseFieldDefinition)
	if err != nil {
		return nil, err
	}

	return &ast.ObjectTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Description:    description,
		Name:           name,
		Interfaces:     interfaces,
		Fields:         fields,
	}, nil
}

// parseImplementsInterfaces parses the optional `implements A & B & C` clause. The leading `&` is
// permitted (but not required) so lists can be reformatted without moving the ampersands around.
func (p *parser) parseImplementsInterfaces() ([]ast.NamedType, error) {
	if !p.expectOptionalKeyword("implements") {
		return nil, nil
	}

	p.expectOptionalToken(token.AMP)

	var interfaces []ast.NamedType
	for {
		t, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, t)

		if _, ok := p.expectOptionalToken(token.AMP); !ok {
			break
		}
	}
	return interfaces, nil
}

func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	start := p.peek()
	description := p.parseDescription()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	if p.peek().Kind == token.PAREN_OPEN {
		if arguments, err = p.parseArgumentsDefinition(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expectToken(token.COLON); err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.FieldDefinition{
		Loc:         rangeFrom(start, p.lastConsumed()),
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        t,
		Directives:  directives,
	}, nil
}

func (p *parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	defs, _, err := many(p, token.PAREN_OPEN, token.PAREN_CLOSE, p.parseInputValueDefinition)
	return defs, err
}

func (p *parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	start := p.peek()
	description := p.parseDescription()

	name, err := p.parseName()
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

	return &ast.InputValueDefinition{
		Loc:          rangeFrom(start, p.lastConsumed()),
		Description:  description,
		Name:         name,
		Type:         t,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

func (p *parser) parseObjectTypeExtension() (*ast.ObjectTypeExtension, error) {
	start := p.peek()

	if err := p.expectKeyword("type"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	fields, err := optionalMany(p, token.CURLY_OPEN, token.CURLY_CLOSE, p.parseFieldDefinition)
	if err != nil {
		return nil, err
	}

	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	return &ast.ObjectTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Name:           name,
		Interfaces:     interfaces,
		Fields:         fields,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// 3.5 Interfaces
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseInterfaceTypeDefinition() (*ast.InterfaceTypeDefinition, error) {
	start := p.peek()
	description := p.parseDescription()

	if err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	fields, err := optionalMany(p, token.CURLY_OPEN, token.CURLY_CLOSE, p.parseFieldDefinition)
	if err != nil {
		return nil, err
	}

	return &ast.InterfaceTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Description:    description,
		Name:           name,
		Fields:         fields,
	}, nil
}

func (p *parser) parseInterfaceTypeExtension() (*ast.InterfaceTypeExtension, error) {
	start := p.peek()

	if err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	fields, err := optionalMany(p, token.CURLY_OPEN, token.CURLY_CLOSE, p.parseFieldDefinition)
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	return &ast.InterfaceTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Name:           name,
		Fields:         fields,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// 3.6 Unions
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseUnionTypeDefinition() (*ast.UnionTypeDefinition, error) {
	start := p.peek()
	description := p.parseDescription()

	if err := p.expectKeyword("union"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	return &ast.UnionTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Description:    description,
		Name:           name,
		Types:          types,
	}, nil
}

// parseUnionMemberTypes parses the optional `= A | B | C` clause. A leading `|` is permitted so a
// member list can be wrapped onto multiple lines with the pipe leading each one.
func (p *parser) parseUnionMemberTypes() ([]ast.NamedType, error) {
	if _, ok := p.expectOptionalToken(token.EQUALS); !ok {
		return nil, nil
	}

	p.expectOptionalToken(token.PIPE)

	var types []ast.NamedType
	for {
		t, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)

		if _, ok := p.expectOptionalToken(token.PIPE); !ok {
			break
		}
	}
	return types, nil
}

func (p *parser) parseUnionTypeExtension() (*ast.UnionTypeExtension, error) {
	start := p.peek()

	if err := p.expectKeyword("union"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(types) == 0 {
		return nil, p.unexpected()
	}

	return &ast.UnionTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Name:           name,
		Types:          types,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// 3.7 Enums
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseEnumTypeDefinition() (*ast.EnumTypeDefinition, error) {
	start := p.peek()
	description := p.parseDescription()

	if err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	values, err := optionalMany(p, token.CURLY_OPEN, token.CURLY_CLOSE, p.parseEnumValueDefinition)
	if err != nil {
		return nil, err
	}

	return &ast.EnumTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Description:    description,
		Name:           name,
		Values:         values,
	}, nil
}

func (p *parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	start := p.peek()
	description := p.parseDescription()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	return &ast.EnumValueDefinition{
		Loc:         rangeFrom(start, p.lastConsumed()),
		Description: description,
		Name:        name,
		Directives:  directives,
	}, nil
}

func (p *parser) parseEnumTypeExtension() (*ast.EnumTypeExtension, error) {
	start := p.peek()

	if err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	values, err := optionalMany(p, token.CURLY_OPEN, token.CURLY_CLOSE, p.parseEnumValueDefinition)
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(values) == 0 {
		return nil, p.unexpected()
	}

	return &ast.EnumTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Name:           name,
		Values:         values,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// 3.8 Input Objects
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseInputObjectTypeDefinition() (*ast.InputObjectTypeDefinition, error) {
	start := p.peek()
	description := p.parseDescription()

	if err := p.expectKeyword("input"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	fields, err := optionalMany(p, token.CURLY_OPEN, token.CURLY_CLOSE, p.parseInputValueDefinition)
	if err != nil {
		return nil, err
	}

	return &ast.InputObjectTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Description:    description,
		Name:           name,
		Fields:         fields,
	}, nil
}

func (p *parser) parseInputObjectTypeExtension() (*ast.InputObjectTypeExtension, error) {
	start := p.peek()

	if err := p.expectKeyword("input"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseOptionalDirectives(true)
	if err != nil {
		return nil, err
	}

	fields, err := optionalMany(p, token.CURLY_OPEN, token.CURLY_CLOSE, p.parseInputValueDefinition)
	if err != nil {
		return nil, err
	}

	if len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected()
	}

	return &ast.InputObjectTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Loc:            rangeFrom(start, p.lastConsumed()),
		Name:           name,
		Fields:         fields,
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// 3.13 Directives
//===----------------------------------------------------------------------------------------====//

// validDirectiveLocations is the full set of DirectiveLocation names from the June 2018 grammar. A
// `directive @foo on` clause naming anything outside this set is a source bug; rather than
// silently accepting an unknown location (which would let it through to every later consumer
// unflagged), parseDirectiveLocation raises a syntax error.
var validDirectiveLocations = map[string]bool{
	"QUERY":                  true,
	"MUTATION":               true,
	"SUBSCRIPTION":           true,
	"FIELD":                  true,
	"FRAGMENT_DEFINITION":    true,
	"FRAGMENT_SPREAD":        true,
	"INLINE_FRAGMENT":        true,
	"VARIABLE_DEFINITION":    true,
	"SCHEMA":                 true,
	"SCALAR":                 true,
	"OBJECT":                 true,
	"FIELD_DEFINITION":       true,
	"ARGUMENT_DEFINITION":    true,
	"INTERFACE":              true,
	"UNION":                  true,
	"ENUM":                   true,
	"ENUM_VALUE":             true,
	"INPUT_OBJECT":           true,
	"INPUT_FIELD_DEFINITION": true,
}

func (p *parser) parseDirectiveDefinition() (*ast.DirectiveDefinition, error) {
	start := p.peek()
	description := p.parseDescription()

	if err := p.expectKeyword("directive"); err != nil {
		return nil, err
	}

	if _, err := p.expectToken(token.AT); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	if p.peek().Kind == token.PAREN_OPEN {
		if arguments, err = p.parseArgumentsDefinition(); err != nil {
			return nil, err
		}
	}

	repeatable := p.expectOptionalKeyword("repeatable")

	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}

	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}

	return &ast.DirectiveDefinition{
		Loc:         rangeFrom(start, p.lastConsumed()),
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Repeatable:  repeatable,
		Locations:   locations,
	}, nil
}

func (p *parser) parseDirectiveLocations() ([]ast.Name, error) {
	p.expectOptionalToken(token.PIPE)

	var locations []ast.Name
	for {
		loc, err := p.parseDirectiveLocation()
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)

		if _, ok := p.expectOptionalToken(token.PIPE); !ok {
			break
		}
	}
	return locations, nil
}

func (p *parser) parseDirectiveLocation() (ast.Name, error) {
	tok := p.peek()
	if tok.Kind != token.NAME {
		return ast.Name{}, p.unexpected()
	}
	if !validDirectiveLocations[tok.Name] {
		return ast.Name{}, graphql.NewSyntaxError(p.source, tok.Start, "a valid directive location", tok.Description())
	}
	return p.parseName()
}

//===----------------------------------------------------------------------------------------====//
// Type System Extensions
//===----------------------------------------------------------------------------------------====//

// parseTypeSystemExtension dispatches `extend` to the matching extension production. The returned
// node's Loc is patched to start at `extend` rather than at the keyword that follows it, since
// every sub-parser below starts its own Loc at its own leading keyword.
func (p *parser) parseTypeSystemExtension() (ast.Definition, error) {
	extendTok := p.peek()

	if err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.Kind != token.NAME {
		return nil, p.unexpected()
	}

	var (
		definition ast.Definition
		err        error
	)
	switch tok.Name {
	case "schema":
		definition, err = p.parseSchemaExtension()
	case "scalar":
		definition, err = p.parseScalarTypeExtension()
	case "type":
		definition, err = p.parseObjectTypeExtension()
	case "interface":
		definition, err = p.parseInterfaceTypeExtension()
	case "union":
		definition, err = p.parseUnionTypeExtension()
	case "enum":
		definition, err = p.parseEnumTypeExtension()
	case "input":
		definition, err = p.parseInputObjectTypeExtension()
	default:
		return nil, p.unexpected()
	}
	if err != nil {
		return nil, err
	}

	switch d := definition.(type) {
	case *ast.SchemaExtension:
		d.Loc.Start = extendTok.Start
	case *ast.ScalarTypeExtension:
		d.Loc.Start = extendTok.Start
	case *ast.ObjectTypeExtension:
		d.Loc.Start = extendTok.Start
	case *ast.InterfaceTypeExtension:
		d.Loc.Start = extendTok.Start
	case *ast.UnionTypeExtension:
		d.Loc.Start = extendTok.Start
	case *ast.EnumTypeExtension:
		d.Loc.Start = extendTok.Start
	case *ast.InputObjectTypeExtension:
		d.Loc.Start = extendTok.Start
	}

	return definition, nil
}
