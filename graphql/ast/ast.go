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

// Package ast defines the tree the parser builds: one tagged-variant struct per grammar
// production, every one of them a Node with a TokenRange. Core (executable) nodes live here; type
// system definitions and extensions live in typesystem.go.
package ast

import (
	"github.com/arborql/graphql/token"
)

// Node represents a node in an AST tree from parsing GraphQL language.
type Node interface {
	// TokenRange indicates the region of the Node in the source.
	TokenRange() token.Range
}

// Name represents a name.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
type Name struct {
	Loc token.Range

	// Value is the name text.
	Value string
}

var _ Node = Name{}

// TokenRange implements Node.
func (node Name) TokenRange() token.Range { return node.Loc }

//===----------------------------------------------------------------------------------------====//
// 2.2 Document
//===----------------------------------------------------------------------------------------====//

// Document represents a GraphQL Document.
//
// Reference: https://facebook.github.io/graphql/June2018/#Document
type Document struct {
	Loc token.Range

	// Definitions defined in the document.
	Definitions []Definition
}

var _ Node = Document{}

// TokenRange implements Node.
func (node Document) TokenRange() token.Range { return node.Loc }

// Definition represents a GraphQL Definition.
//
// Reference: https://facebook.github.io/graphql/June2018/#Definition
type Definition interface {
	Node

	// GetDirectives returns the directives applied to the definition.
	GetDirectives() Directives

	// definitionNode constrains which node kinds may be assigned to Definition.
	definitionNode()
}

// DefinitionBase is embedded in every Definition implementation.
type DefinitionBase struct {
	Directives Directives
}

// GetDirectives implements Definition.
func (base DefinitionBase) GetDirectives() Directives { return base.Directives }

func (DefinitionBase) definitionNode() {}

// ExecutableDefinition represents an executable definition (an operation or a fragment).
//
// Reference: https://facebook.github.io/graphql/June2018/#ExecutableDefinition
type ExecutableDefinition interface {
	Definition

	// GetSelectionSet returns the set of fields to fetch.
	GetSelectionSet() SelectionSet
}

var (
	_ ExecutableDefinition = (*OperationDefinition)(nil)
	_ ExecutableDefinition = (*FragmentDefinition)(nil)
)

//===----------------------------------------------------------------------------------------====//
// 2.3 Operations
//===----------------------------------------------------------------------------------------====//

// OperationType specifies the type of operation model.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationType
type OperationType string

// Enumeration of OperationType.
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// OperationDefinition represents a GraphQL operation.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationDefinition
type OperationDefinition struct {
	DefinitionBase
	Loc token.Range

	// Operation is the operation type; defaults to OperationTypeQuery for the shorthand form.
	Operation OperationType

	// Name of the operation, if given.
	Name *Name

	// VariableDefinitions contains variables given to the operation.
	VariableDefinitions []*VariableDefinition

	// SelectionSet specifies the set of fields to fetch.
	SelectionSet SelectionSet
}

var _ Node = (*OperationDefinition)(nil)

// TokenRange implements Node.
func (definition *OperationDefinition) TokenRange() token.Range { return definition.Loc }

// GetSelectionSet implements ExecutableDefinition.
func (definition *OperationDefinition) GetSelectionSet() SelectionSet {
	return definition.SelectionSet
}

// IsShorthand reports whether the definition has the shape of the shorthand query form, e.g.
// `{ field }`: a query with no name and no variable definitions. Directives are not checked, and the
// AST does not record whether the `query` keyword was written, so `query { field }` also reports
// true.
func (definition *OperationDefinition) IsShorthand() bool {
	return definition.Name == nil && definition.Operation == OperationTypeQuery && len(definition.VariableDefinitions) == 0
}

// VariableDefinition represents a variable definition.
//
// Reference: https://facebook.github.io/graphql/June2018/#VariableDefinition
type VariableDefinition struct {
	Loc token.Range

	Variable     *Variable
	Type         Type
	DefaultValue Value
	Directives   Directives
}

var _ Node = (*VariableDefinition)(nil)

// TokenRange implements Node.
func (definition *VariableDefinition) TokenRange() token.Range { return definition.Loc }

//===----------------------------------------------------------------------------------------====//
// 2.4 Selection Sets
//===----------------------------------------------------------------------------------------====//

// SelectionSet represents a set of fields to fetch.
//
// Reference: https://facebook.github.io/graphql/June2018/#SelectionSet
type SelectionSet struct {
	Loc token.Range

	Selections []Selection
}

var _ Node = SelectionSet{}

// TokenRange implements Node.
func (node SelectionSet) TokenRange() token.Range { return node.Loc }

// Selection represents a single entry in a SelectionSet: a Field, a FragmentSpread or an
// InlineFragment.
//
// Reference: https://facebook.github.io/graphql/June2018/#Selection
type Selection interface {
	Node

	GetDirectives() Directives

	selectionNode()
}

// SelectionBase is embedded in every Selection implementation.
type SelectionBase struct {
	Directives Directives
}

// GetDirectives implements Selection.
func (base SelectionBase) GetDirectives() Directives { return base.Directives }

func (SelectionBase) selectionNode() {}

var (
	_ Selection = (*Field)(nil)
	_ Selection = (*FragmentSpread)(nil)
	_ Selection = (*InlineFragment)(nil)
)

// Field represents a field to fetch, optionally with an alias, arguments, directives and a nested
// SelectionSet.
//
// Reference: https://facebook.github.io/graphql/June2018/#Field
type Field struct {
	SelectionBase
	Loc token.Range

	Alias        *Name
	Name         Name
	Arguments    Arguments
	SelectionSet SelectionSet
}

var _ Node = (*Field)(nil)

// TokenRange implements Node.
func (node *Field) TokenRange() token.Range { return node.Loc }

// ResponseKey returns the key this field contributes to the response map: the Alias if given,
// otherwise Name.
func (node *Field) ResponseKey() string {
	if node.Alias != nil {
		return node.Alias.Value
	}
	return node.Name.Value
}

//===----------------------------------------------------------------------------------------====//
// 2.5 Arguments
//===----------------------------------------------------------------------------------------====//

// Argument represents an argument for a field or directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#Argument
type Argument struct {
	Loc token.Range

	Name  Name
	Value Value
}

var _ Node = (*Argument)(nil)

// TokenRange implements Node.
func (node *Argument) TokenRange() token.Range { return node.Loc }

// Arguments is an ordered list of Argument.
type Arguments []*Argument

//===----------------------------------------------------------------------------------------====//
// 2.8 Fragments
//===----------------------------------------------------------------------------------------====//

// FragmentSpread represents a reference to a fragment defined elsewhere in the document.
//
// Reference: https://facebook.github.io/graphql/June2018/#FragmentSpread
type FragmentSpread struct {
	SelectionBase
	Loc token.Range

	Name Name
}

var _ Node = (*FragmentSpread)(nil)

// TokenRange implements Node.
func (node *FragmentSpread) TokenRange() token.Range { return node.Loc }

// FragmentDefinition represents a named fragment.
//
// Reference: https://facebook.github.io/graphql/June2018/#FragmentDefinition
type FragmentDefinition struct {
	DefinitionBase
	Loc token.Range

	Name Name

	// VariableDefinitions is non-empty only when ParseOptions.ExperimentalFragmentVariables is set;
	// the June 2018 grammar doesn't allow fragments to declare variables.
	VariableDefinitions []*VariableDefinition

	TypeCondition NamedType
	SelectionSet  SelectionSet
}

var _ Node = (*FragmentDefinition)(nil)

// TokenRange implements Node.
func (definition *FragmentDefinition) TokenRange() token.Range { return definition.Loc }

// GetSelectionSet implements ExecutableDefinition.
func (definition *FragmentDefinition) GetSelectionSet() SelectionSet {
	return definition.SelectionSet
}

// InlineFragment represents an inline fragment.
//
// Reference: https://facebook.github.io/graphql/June2018/#InlineFragment
type InlineFragment struct {
	SelectionBase
	Loc token.Range

	// TypeCondition is nil when the inline fragment doesn't specify a type condition.
	TypeCondition *NamedType
	SelectionSet  SelectionSet
}

var _ Node = (*InlineFragment)(nil)

// TokenRange implements Node.
func (node *InlineFragment) TokenRange() token.Range { return node.Loc }

//===----------------------------------------------------------------------------------------====//
// 2.9 Input Values
//===----------------------------------------------------------------------------------------====//

// Value represents a GraphQL input value: a literal or a Variable.
//
// Reference: https://facebook.github.io/graphql/June2018/#Value
type Value interface {
	Node

	valueNode()
}

// ValueBase constrains which node kinds may be assigned to Value.
type ValueBase struct{}

func (ValueBase) valueNode() {}

var (
	_ Value = (*Variable)(nil)
	_ Value = (*IntValue)(nil)
	_ Value = (*FloatValue)(nil)
	_ Value = (*StringValue)(nil)
	_ Value = (*BooleanValue)(nil)
	_ Value = (*NullValue)(nil)
	_ Value = (*EnumValue)(nil)
	_ Value = (*ListValue)(nil)
	_ Value = (*ObjectValue)(nil)
)

// Variable represents a reference to a variable, e.g. `$name`.
//
// Reference: https://facebook.github.io/graphql/June2018/#Variable
type Variable struct {
	ValueBase
	Loc token.Range

	Name Name
}

// TokenRange implements Node.
func (node *Variable) TokenRange() token.Range { return node.Loc }

// IntValue represents an integer literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#IntValue
type IntValue struct {
	ValueBase
	Loc token.Range

	Value int64
}

// TokenRange implements Node.
func (node *IntValue) TokenRange() token.Range { return node.Loc }

// FloatValue represents a floating point literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#FloatValue
type FloatValue struct {
	ValueBase
	Loc token.Range

	Value float64
}

// TokenRange implements Node.
func (node *FloatValue) TokenRange() token.Range { return node.Loc }

// StringValue represents a string literal, either plain or block-quoted.
//
// Reference: https://facebook.github.io/graphql/June2018/#StringValue
type StringValue struct {
	ValueBase
	Loc token.Range

	Value string

	// Block is true when the literal was written with triple-quote syntax. Value already has the
	// BlockStringValue() dedent algorithm applied; Block is kept only so a pretty-printer could pick
	// the matching quote style.
	Block bool
}

// TokenRange implements Node.
func (node *StringValue) TokenRange() token.Range { return node.Loc }

// BooleanValue represents a boolean literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#BooleanValue
type BooleanValue struct {
	ValueBase
	Loc token.Range

	Value bool
}

// TokenRange implements Node.
func (node *BooleanValue) TokenRange() token.Range { return node.Loc }

// NullValue represents the `null` literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#NullValue
type NullValue struct {
	ValueBase
	Loc token.Range
}

// TokenRange implements Node.
func (node *NullValue) TokenRange() token.Range { return node.Loc }

// EnumValue represents an enum value literal, a Name that isn't `true`, `false` or `null`.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValue struct {
	ValueBase
	Loc token.Range

	Value string
}

// TokenRange implements Node.
func (node *EnumValue) TokenRange() token.Range { return node.Loc }

// ListValue represents a list literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#ListValue
type ListValue struct {
	ValueBase
	Loc token.Range

	Values []Value
}

// TokenRange implements Node.
func (node *ListValue) TokenRange() token.Range { return node.Loc }

// ObjectValue represents an input object literal.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectValue
type ObjectValue struct {
	ValueBase
	Loc token.Range

	Fields []*ObjectField
}

// TokenRange implements Node.
func (node *ObjectValue) TokenRange() token.Range { return node.Loc }

// ObjectField represents a single name/value pair inside an ObjectValue.
//
// Reference: https://facebook.github.io/graphql/June2018/#ObjectField
type ObjectField struct {
	Loc token.Range

	Name  Name
	Value Value
}

var _ Node = (*ObjectField)(nil)

// TokenRange implements Node.
func (node *ObjectField) TokenRange() token.Range { return node.Loc }

//===----------------------------------------------------------------------------------------====//
// 2.10 Directives
//===----------------------------------------------------------------------------------------====//

// Directive represents a single `@name(args...)` annotation.
//
// Reference: https://facebook.github.io/graphql/June2018/#Directive
type Directive struct {
	Loc token.Range

	Name      Name
	Arguments Arguments
}

var _ Node = (*Directive)(nil)

// TokenRange implements Node.
func (node *Directive) TokenRange() token.Range { return node.Loc }

// Directives is an ordered list of Directive.
type Directives []*Directive

//===----------------------------------------------------------------------------------------====//
// 2.11 Type References
//===----------------------------------------------------------------------------------------====//

// Type represents a reference to a type: a NamedType, a ListType or a NonNullType.
//
// Reference: https://facebook.github.io/graphql/June2018/#Type
type Type interface {
	Node

	// String renders the type reference the way it appears in source, e.g. `[String!]!`.
	String() string

	typeNode()
}

// TypeBase constrains which node kinds may be assigned to Type.
type TypeBase struct{}

func (TypeBase) typeNode() {}

var (
	_ Type = NamedType{}
	_ Type = (*ListType)(nil)
	_ Type = (*NonNullType)(nil)
)

// NamedType represents a reference to a type by name.
//
// Reference: https://facebook.github.io/graphql/June2018/#NamedType
type NamedType struct {
	TypeBase
	Loc token.Range

	Name Name
}

// TokenRange implements Node.
func (node NamedType) TokenRange() token.Range { return node.Loc }

// String implements Type.
func (node NamedType) String() string { return node.Name.Value }

// ListType represents a list type reference, e.g. `[String]`.
//
// Reference: https://facebook.github.io/graphql/June2018/#ListType
type ListType struct {
	TypeBase
	Loc token.Range

	Type Type
}

// TokenRange implements Node.
func (node *ListType) TokenRange() token.Range { return node.Loc }

// String implements Type.
func (node *ListType) String() string { return "[" + node.Type.String() + "]" }

// NonNullType represents a non-null type reference, e.g. `String!`. Type must be a NamedType or a
// ListType; the grammar forbids `T!!`.
//
// Reference: https://facebook.github.io/graphql/June2018/#NonNullType
type NonNullType struct {
	TypeBase
	Loc token.Range

	Type Type
}

// TokenRange implements Node.
func (node *NonNullType) TokenRange() token.Range { return node.Loc }

// String implements Type.
func (node *NonNullType) String() string { return node.Type.String() + "!" }
