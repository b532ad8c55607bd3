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
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System
package ast

import "github.com/arborql/graphql/token"

//===----------------------------------------------------------------------------------------====//
// 3.1 Schema
//===----------------------------------------------------------------------------------------====//

// OperationTypeDefinition represents a single `query: RootQuery`-shaped entry of a
// SchemaDefinition.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationTypeDefinition
type OperationTypeDefinition struct {
	Loc token.Range

	Operation OperationType
	Type      NamedType
}

var _ Node = (*OperationTypeDefinition)(nil)

// TokenRange implements Node.
func (node *OperationTypeDefinition) TokenRange() token.Range { return node.Loc }

// SchemaDefinition represents a `schema { ... }` block.
//
// Reference: https://facebook.github.io/graphql/June2018/#SchemaDefinition
type SchemaDefinition struct {
	DefinitionBase
	Loc token.Range

	Description    *StringValue
	OperationTypes []*OperationTypeDefinition
}

var _ Node = (*SchemaDefinition)(nil)

// TokenRange implements Node.
func (node *SchemaDefinition) TokenRange() token.Range { return node.Loc }

// SchemaExtension represents `extend schema { ... }`.
//
// Reference: https://facebook.github.io/graphql/June2018/#SchemaExtension
type SchemaExtension struct {
	DefinitionBase
	Loc token.Range

	OperationTypes []*OperationTypeDefinition
}

var _ Node = (*SchemaExtension)(nil)

// TokenRange implements Node.
func (node *SchemaExtension) TokenRange() token.Range { return node.Loc }

//===----------------------------------------------------------------------------------------====//
// 3.3 Scalars
//===----------------------------------------------------------------------------------------====//

// ScalarTypeDefinition represents `scalar Name`.
//
// Reference: https://facebook.github.io/graphql/June2018/#ScalarTypeDefinition
type ScalarTypeDefinition struct {
	DefinitionBase
	Loc token.Range

	Description *StringValue
	Name        Name
}

var _ Node = (*ScalarTypeDefinition)(nil)

// TokenRange implements Node.
func (node *ScalarTypeDefinition) TokenRange() token.Range { return node.Loc }

// ScalarTypeExtension represents `extend scalar Name`.
//
// Reference: https://facebook.github.io/graphql/June2018/#ScalarTypeExtension
type ScalarTypeExtension struct {
	DefinitionBase
	Loc token.Range

	Name Name
}

var _ Node = (*ScalarTypeExtension)(nil)

// TokenRange implements Node.
func (node *ScalarTypeExtension) TokenRange() token.Range { return node.Loc }

//===----------------------------------------------------------------------------------------====//
// 3.4 Objects
//===----------------------------------------------------------------------------------------====//

// InputValueDefinition represents a single argument or input field definition.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputValueDefinition
type InputValueDefinition struct {
	Loc token.Range

	Description  *StringValue
	Name         Name
	Type         Type
	DefaultValue Value
	Directives   Directives
}

var _ Node = (*InputValueDefinition)(nil)

// TokenRange implements Node.
func (node *InputValueDefinition) TokenRange() token.Range { return node.Loc }

// FieldDefinition represents a single field of an ObjectTypeDefinition or InterfaceTypeDefinition.
//
// Reference: https://facebook.github.io/graphql/June2018/#FieldDefinition
type FieldDefinition struct {
	Loc token.Range

	Description *StringValue
	Name        Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  Directives
}

var _ Node = (*FieldDefinition)(nil)

// TokenRange implements Node.
func (node *FieldDefinition) TokenRange() token.Range { return node.Loc }

// ObjectTypeDefinition represents a `type Name implements I & J { ... }` block.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectTypeDefinition
type ObjectTypeDefinition struct {
	DefinitionBase
	Loc token.Range

	Description *StringValue
	Name        Name
	Interfaces  []NamedType
	Fields      []*FieldDefinition
}

var _ Node = (*ObjectTypeDefinition)(nil)

// TokenRange implements Node.
func (node *ObjectTypeDefinition) TokenRange() token.Range { return node.Loc }

// ObjectTypeExtension represents `extend type Name ...`.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectTypeExtension
type ObjectTypeExtension struct {
	DefinitionBase
	Loc token.Range

	Name       Name
	Interfaces []NamedType
	Fields     []*FieldDefinition
}

var _ Node = (*ObjectTypeExtension)(nil)

// TokenRange implements Node.
func (node *ObjectTypeExtension) TokenRange() token.Range { return node.Loc }

//===----------------------------------------------------------------------------------------====//
// 3.5 Interfaces
//===----------------------------------------------------------------------------------------====//

// InterfaceTypeDefinition represents an `interface Name { ... }` block.
//
// Reference: https://facebook.github.io/graphql/June2018/#InterfaceTypeDefinition
type InterfaceTypeDefinition struct {
	DefinitionBase
	Loc token.Range

	Description *StringValue
	Name        Name
	Fields      []*FieldDefinition
}

var _ Node = (*InterfaceTypeDefinition)(nil)

// TokenRange implements Node.
func (node *InterfaceTypeDefinition) TokenRange() token.Range { return node.Loc }

// InterfaceTypeExtension represents `extend interface Name ...`.
//
// Reference: https://facebook.github.io/graphql/June2018/#InterfaceTypeExtension
type InterfaceTypeExtension struct {
	DefinitionBase
	Loc token.Range

	Name   Name
	Fields []*FieldDefinition
}

var _ Node = (*InterfaceTypeExtension)(nil)

// TokenRange implements Node.
func (node *InterfaceTypeExtension) TokenRange() token.Range { return node.Loc }

//===----------------------------------------------------------------------------------------====//
// 3.6 Unions
//===----------------------------------------------------------------------------------------====//

// UnionTypeDefinition represents a `union Name = A | B` block.
//
// Reference: https://facebook.github.io/graphql/June2018/#UnionTypeDefinition
type UnionTypeDefinition struct {
	DefinitionBase
	Loc token.Range

	Description *StringValue
	Name        Name
	Types       []NamedType
}

var _ Node = (*UnionTypeDefinition)(nil)

// TokenRange implements Node.
func (node *UnionTypeDefinition) TokenRange() token.Range { return node.Loc }

// UnionTypeExtension represents `extend union Name ...`.
//
// Reference: https://facebook.github.io/graphql/June2018/#UnionTypeExtension
type UnionTypeExtension struct {
	DefinitionBase
	Loc token.Range

	Name  Name
	Types []NamedType
}

var _ Node = (*UnionTypeExtension)(nil)

// TokenRange implements Node.
func (node *UnionTypeExtension) TokenRange() token.Range { return node.Loc }

//===----------------------------------------------------------------------------------------====//
// 3.7 Enums
//===----------------------------------------------------------------------------------------====//

// EnumValueDefinition represents a single member of an EnumTypeDefinition.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValueDefinition
type EnumValueDefinition struct {
	Loc token.Range

	Description *StringValue
	Name        Name
	Directives  Directives
}

var _ Node = (*EnumValueDefinition)(nil)

// TokenRange implements Node.
func (node *EnumValueDefinition) TokenRange() token.Range { return node.Loc }

// EnumTypeDefinition represents an `enum Name { A B C }` block.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumTypeDefinition
type EnumTypeDefinition struct {
	DefinitionBase
	Loc token.Range

	Description *StringValue
	Name        Name
	Values      []*EnumValueDefinition
}

var _ Node = (*EnumTypeDefinition)(nil)

// TokenRange implements Node.
func (node *EnumTypeDefinition) TokenRange() token.Range { return node.Loc }

// EnumTypeExtension represents `extend enum Name ...`.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumTypeExtension
type EnumTypeExtension struct {
	DefinitionBase
	Loc token.Range

	Name   Name
	Values []*EnumValueDefinition
}

var _ Node = (*EnumTypeExtension)(nil)

// TokenRange implements Node.
func (node *EnumTypeExtension) TokenRange() token.Range { return node.Loc }

//===----------------------------------------------------------------------------------------====//
// 3.8 Input Objects
//===----------------------------------------------------------------------------------------====//

// InputObjectTypeDefinition represents an `input Name { ... }` block.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputObjectTypeDefinition
type InputObjectTypeDefinition struct {
	DefinitionBase
	Loc token.Range

	Description *StringValue
	Name        Name
	Fields      []*InputValueDefinition
}

var _ Node = (*InputObjectTypeDefinition)(nil)

// TokenRange implements Node.
func (node *InputObjectTypeDefinition) TokenRange() token.Range { return node.Loc }

// InputObjectTypeExtension represents `extend input Name ...`.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputObjectTypeExtension
type InputObjectTypeExtension struct {
	DefinitionBase
	Loc token.Range

	Name   Name
	Fields []*InputValueDefinition
}

var _ Node = (*InputObjectTypeExtension)(nil)

// TokenRange implements Node.
func (node *InputObjectTypeExtension) TokenRange() token.Range { return node.Loc }

//===----------------------------------------------------------------------------------------====//
// 3.13 Directives
//===----------------------------------------------------------------------------------------====//

// DirectiveLocation names one place in the grammar a directive is permitted to appear.
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveLocation
type DirectiveLocation string

// Enumeration of the executable DirectiveLocations.
const (
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"
)

// Enumeration of the type-system DirectiveLocations.
const (
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// DirectiveDefinition represents a `directive @name(args...) on LOCATION | LOCATION` block.
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveDefinition
type DirectiveDefinition struct {
	DefinitionBase
	Loc token.Range

	Description *StringValue
	Name        Name
	Arguments   []*InputValueDefinition

	// Repeatable is a post-June-2018 extension (`repeatable on ...`); parsed permissively and left
	// false when the keyword doesn't appear.
	Repeatable bool

	Locations []Name
}

var _ Node = (*DirectiveDefinition)(nil)

// TokenRange implements Node.
func (node *DirectiveDefinition) TokenRange() token.Range { return node.Loc }
